// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux without Handler.Init so no services
// are needed.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/sub/{token}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "GET /api/items passes through", method: http.MethodGet, path: "/api/items", expectedStatus: http.StatusOK},
		{name: "POST /api/items passes through", method: http.MethodPost, path: "/api/items", expectedStatus: http.StatusCreated},
		{name: "GET /sub/{token} passes through", method: http.MethodGet, path: "/sub/abc", expectedStatus: http.StatusOK},
		{name: "DELETE /api/items is 404", method: http.MethodDelete, path: "/api/items", expectedStatus: http.StatusNotFound},
		{name: "PATCH /api/items is 404", method: http.MethodPatch, path: "/api/items", expectedStatus: http.StatusNotFound},
		{name: "POST /sub/{token} is 404", method: http.MethodPost, path: "/sub/abc", expectedStatus: http.StatusNotFound},
		{name: "PUT /sub/{token} is 404", method: http.MethodPut, path: "/sub/abc", expectedStatus: http.StatusNotFound},
		{name: "unknown path is 404", method: http.MethodGet, path: "/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_DirectCallWithRegisteredMethodDelegates(t *testing.T) {
	router := buildRouter()
	rr := httptest.NewRecorder()

	CheckHTTPMethod(router)(rr, httptest.NewRequest(http.MethodPost, "/api/items", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
}
