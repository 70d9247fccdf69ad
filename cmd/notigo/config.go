package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	yaml "go.yaml.in/yaml/v3"

	"github.com/prilive-com/notigo"
	"github.com/prilive-com/notigo/tg"
	"github.com/prilive-com/notigo/transport"
)

// defaultConfigFile is consulted only when --config is not given. A missing
// default file is not an error; a missing explicit one is.
const defaultConfigFile = "notigo.yaml"

// fileConfig mirrors notigo.Config for YAML decoding. Pointer fields
// distinguish absent from zero so the file only overrides what it sets.
type fileConfig struct {
	Token                 string         `yaml:"token"`
	ChatID                string         `yaml:"chat_id"`
	ParseMode             *string        `yaml:"parse_mode"`
	DisableWebPagePreview *bool          `yaml:"disable_web_page_preview"`
	MessagePrefix         *string        `yaml:"message_prefix"`
	MessageSuffix         *string        `yaml:"message_suffix"`
	Formatting            fileFormatting `yaml:"formatting"`
	Client                fileClient     `yaml:"client"`
}

type fileFormatting struct {
	EscapeMarkdown  *bool `yaml:"escape_markdown"`
	EscapeHTML      *bool `yaml:"escape_html"`
	ObfuscateEmails *bool `yaml:"obfuscate_emails"`
	Truncate        *int  `yaml:"truncate"`
}

type fileClient struct {
	Timeout    *string `yaml:"timeout"`
	RetryCount *int    `yaml:"retry_count"`
	RetryDelay *string `yaml:"retry_delay"`
}

// loadConfig layers defaults, the optional config file, and the environment.
// The environment wins over the file.
func loadConfig(path string) (notigo.Config, error) {
	cfg := notigo.DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := applyFile(&cfg, path, data); err != nil {
			return notigo.Config{}, err
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No default config file; defaults plus environment apply.
	default:
		return notigo.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return notigo.LoadConfigFrom(cfg)
}

func applyFile(cfg *notigo.Config, path string, data []byte) error {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Token != "" {
		cfg.Token = tg.SecretToken(fc.Token)
	}
	if fc.ChatID != "" {
		cfg.ChatID = fc.ChatID
	}
	if fc.ParseMode != nil {
		mode, ok := tg.ParseModeFrom(*fc.ParseMode)
		if !ok {
			return tg.NewConfigError("parse_mode", fmt.Sprintf("unsupported parse mode %q in %s", *fc.ParseMode, path))
		}
		cfg.ParseMode = mode
	}
	if fc.DisableWebPagePreview != nil {
		cfg.DisableWebPagePreview = *fc.DisableWebPagePreview
	}
	if fc.MessagePrefix != nil {
		cfg.MessagePrefix = *fc.MessagePrefix
	}
	if fc.MessageSuffix != nil {
		cfg.MessageSuffix = *fc.MessageSuffix
	}
	if fc.Formatting.EscapeMarkdown != nil {
		cfg.Formatting.EscapeMarkdown = *fc.Formatting.EscapeMarkdown
	}
	if fc.Formatting.EscapeHTML != nil {
		cfg.Formatting.EscapeHTML = *fc.Formatting.EscapeHTML
	}
	if fc.Formatting.ObfuscateEmails != nil {
		cfg.Formatting.ObfuscateEmails = *fc.Formatting.ObfuscateEmails
	}
	if fc.Formatting.Truncate != nil {
		cfg.Formatting.Truncate = *fc.Formatting.Truncate
	}
	if fc.Client.Timeout != nil {
		d, err := time.ParseDuration(*fc.Client.Timeout)
		if err != nil {
			return tg.NewConfigError("timeout", fmt.Sprintf("invalid duration %q in %s", *fc.Client.Timeout, path))
		}
		cfg.Client.Timeout = d
	}
	if fc.Client.RetryCount != nil {
		cfg.Client.RetryCount = *fc.Client.RetryCount
	}
	if fc.Client.RetryDelay != nil {
		d, err := time.ParseDuration(*fc.Client.RetryDelay)
		if err != nil {
			return tg.NewConfigError("retry_delay", fmt.Sprintf("invalid duration %q in %s", *fc.Client.RetryDelay, path))
		}
		cfg.Client.RetryDelay = d
	}

	return nil
}

// newNotifier builds a notifier from the layered configuration and an
// environment-configured transport. The returned close function releases
// both.
func newNotifier(opts *rootOptions) (*notigo.Notifier, func(), error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	logger := opts.logger()

	tcfg, err := transport.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	tr, err := transport.NewFromConfig(tcfg, transport.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	notifier, err := notigo.New(cfg, notigo.WithTransport(tr), notigo.WithLogger(logger))
	if err != nil {
		tr.Close()
		return nil, nil, err
	}

	cleanup := func() {
		notifier.Close()
		tr.Close()
	}
	return notifier, cleanup, nil
}
