package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// MockTelegramServer provides a mock Telegram Bot API server for testing.
type MockTelegramServer struct {
	*httptest.Server
	t        *testing.T
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	captures []Capture
}

// NewMockServer creates a mock Telegram API server.
// The server is automatically closed when the test completes.
func NewMockServer(t *testing.T) *MockTelegramServer {
	t.Helper()

	m := &MockTelegramServer{
		t:        t,
		handlers: make(map[string]http.HandlerFunc),
		captures: make([]Capture, 0),
	}

	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.Server.Close)
	return m
}

func (m *MockTelegramServer) handle(w http.ResponseWriter, r *http.Request) {
	// Read body once for capture
	body, _ := io.ReadAll(r.Body)
	r.Body.Close()

	// Restore body for downstream handler
	r.Body = io.NopCloser(bytes.NewReader(body))

	m.mu.Lock()
	m.captures = append(m.captures, Capture{
		Method:      r.Method,
		Path:        r.URL.Path,
		Headers:     r.Header.Clone(),
		Body:        body,
		ContentType: r.Header.Get("Content-Type"),
		Timestamp:   time.Now(),
	})

	handler, exists := m.handlers[r.URL.Path]
	m.mu.Unlock()

	if exists {
		handler(w, r)
		return
	}

	// Default success response
	ReplyMessage(w, 1)
}

// On registers a handler for a POST path.
//
// Example:
//
//	server.On("/bot123:ABC/sendMessage", func(w http.ResponseWriter, r *http.Request) {
//	    testutil.ReplyMessage(w, 123)
//	})
func (m *MockTelegramServer) On(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// Captures returns all captured requests.
func (m *MockTelegramServer) Captures() []Capture {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Capture{}, m.captures...)
}

// LastCapture returns the most recent captured request.
func (m *MockTelegramServer) LastCapture() *Capture {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.captures) == 0 {
		return nil
	}
	return &m.captures[len(m.captures)-1]
}

// CaptureCount returns the total number of captured requests.
func (m *MockTelegramServer) CaptureCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.captures)
}

// TimeBetweenCaptures returns the duration between two captures.
// Useful for rate-limit testing.
func (m *MockTelegramServer) TimeBetweenCaptures(i, j int) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i < 0 || j < 0 || i >= len(m.captures) || j >= len(m.captures) {
		return 0
	}
	return m.captures[j].Timestamp.Sub(m.captures[i].Timestamp)
}

// BaseURL returns the server's base URL.
// Use this as the API base URL when creating clients.
func (m *MockTelegramServer) BaseURL() string {
	return m.Server.URL
}

// SendMessagePath returns the sendMessage path for a given token.
func (m *MockTelegramServer) SendMessagePath(token string) string {
	return "/bot" + token + "/sendMessage"
}
