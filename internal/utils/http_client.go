// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client configured
// for talking to the file-sharing server: base URL, cookie jar for the
// session cookie, and redirects left to the caller so upload links can be
// read from the Location header.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080")
//	resp, err := client.R().SetFile("file", "notes.txt").Post("/upload")
//	link := resp.Header().Get("Location")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client for baseURL.
func NewHTTPClient(baseURL string) *HTTPClient {
	jar, _ := cookiejar.New(nil)

	client := resty.New().
		SetBaseURL(baseURL).
		SetCookieJar(jar).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &HTTPClient{Client: client}
}
