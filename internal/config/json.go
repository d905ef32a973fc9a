// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		BcryptCost    int      `json:"bcrypt_cost"`
		CookieSecure  bool     `json:"cookie_secure"`
		LogLevel      string   `json:"log_level"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Auth struct {
		MinLoginLength    int `json:"min_login_length"`
		MaxLoginLength    int `json:"max_login_length"`
		MinPasswordLength int `json:"min_password_length"`
		MaxPasswordLength int `json:"max_password_length"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`

		Files struct {
			UploadDir         string   `json:"upload_dir"`
			AllowedExtensions []string `json:"allowed_extensions"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		MaxUploadSize   int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Workers struct {
		ReportInterval Duration `json:"report_interval"`
		ReportLimit    uint64   `json:"report_limit"`
	} `json:"workers,omitempty"`
}

func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var file StructuredJSONConfig
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return file.structured(), nil
}

func (f *StructuredJSONConfig) structured() *StructuredConfig {
	cfg := new(StructuredConfig)

	cfg.App = App{
		TokenSignKey:  f.App.TokenSignKey,
		TokenIssuer:   f.App.TokenIssuer,
		TokenDuration: time.Duration(f.App.TokenDuration),
		BcryptCost:    f.App.BcryptCost,
		CookieSecure:  f.App.CookieSecure,
		LogLevel:      f.App.LogLevel,
		Version:       f.App.Version,
	}
	cfg.Auth = Auth(f.Auth)

	cfg.Storage.DB = DB(f.Storage.DB)
	cfg.Storage.Files = Files(f.Storage.Files)

	cfg.Server = Server{
		HTTPAddress:     f.Server.HTTPAddress,
		RequestTimeout:  time.Duration(f.Server.RequestTimeout),
		ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		MaxUploadSize:   f.Server.MaxUploadSize,
	}
	cfg.Workers = Workers{
		ReportInterval: time.Duration(f.Workers.ReportInterval),
		ReportLimit:    f.Workers.ReportLimit,
	}
	return cfg
}

// Duration accepts either a Go duration string ("90s") or a number of
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return fmt.Errorf("duration must be a string or nanoseconds, got %s", b)
	}
	*d = Duration(ns)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
