// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Request is what a [RecordingServer] saw.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Body     string
	Header   http.Header
}

// RecordingServer starts a TLS server that answers every request with
// status and the JSON response, and returns a function reporting the
// last request. The server is closed when the test completes.
func RecordingServer(t *testing.T, status int, response string) (*httptest.Server, func() Request) {
	t.Helper()
	var mutex sync.Mutex
	var last Request
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)
		mutex.Lock()
		last = Request{
			Method:   request.Method,
			Path:     request.URL.Path,
			RawQuery: request.URL.RawQuery,
			Body:     string(body),
			Header:   request.Header.Clone(),
		}
		mutex.Unlock()
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		io.WriteString(writer, response)
	}))
	t.Cleanup(server.Close)
	return server, func() Request {
		mutex.Lock()
		defer mutex.Unlock()
		return last
	}
}
