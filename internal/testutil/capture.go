package testutil

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Capture represents a captured HTTP request with timestamp.
type Capture struct {
	Method      string
	Path        string
	Headers     http.Header
	Body        []byte
	ContentType string
	Timestamp   time.Time
}

// AssertPath verifies the request path.
func (c *Capture) AssertPath(t *testing.T, expected string) {
	t.Helper()
	assert.Equal(t, expected, c.Path, "unexpected path")
}

// AssertMethod verifies the HTTP method.
func (c *Capture) AssertMethod(t *testing.T, expected string) {
	t.Helper()
	assert.Equal(t, expected, c.Method, "unexpected method")
}

// AssertContentType verifies the Content-Type header contains expected value.
func (c *Capture) AssertContentType(t *testing.T, expected string) {
	t.Helper()
	assert.Contains(t, c.ContentType, expected, "unexpected content-type")
}

// AssertJSONField verifies a field in the JSON body.
func (c *Capture) AssertJSONField(t *testing.T, field string, expected any) {
	t.Helper()
	assert.Equal(t, expected, c.BodyMap(t)[field], "unexpected value for field: "+field)
}

// AssertJSONFieldAbsent verifies a field does NOT exist in the JSON body.
func (c *Capture) AssertJSONFieldAbsent(t *testing.T, field string) {
	t.Helper()
	assert.NotContains(t, c.BodyMap(t), field, "field should be absent: "+field)
}

// BodyMap returns the body as a map.
func (c *Capture) BodyMap(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(c.Body, &m), "failed to decode JSON body")
	return m
}

// BodyString returns the body as a string.
func (c *Capture) BodyString() string {
	return string(c.Body)
}
