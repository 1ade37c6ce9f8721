// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package unityhttp exposes the state of a unity.Container over HTTP as
// JSON, for debugging running services.
//
//	GET /entries        every registered entry
//	GET /entries/{id}   one entry
//	GET /binds          the bound types
//	GET /validate       the result of Container.Validate
package unityhttp

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/multierr"
	"go.uber.org/unity"
)

type handler struct {
	c *unity.Container
}

// NewHandler returns a handler serving c. Mount it under a prefix with
// http.StripPrefix or chi's Mount.
func NewHandler(c *unity.Container) http.Handler {
	h := &handler{c: c}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/entries", h.entries)
	r.Get("/entries/{id}", h.entry)
	r.Get("/binds", h.binds)
	r.Get("/validate", h.validate)
	return r
}

func (h *handler) entries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.c.Inspect())
}

func (h *handler) entry(w http.ResponseWriter, r *http.Request) {
	res, err := h.c.Resolver(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res.Info())
}

func (h *handler) binds(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.c.BoundTypes())
}

type validateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func (h *handler) validate(w http.ResponseWriter, _ *http.Request) {
	err := h.c.Validate()
	if err == nil {
		writeJSON(w, http.StatusOK, validateResponse{Valid: true})
		return
	}

	resp := validateResponse{}
	for _, e := range multierr.Errors(err) {
		resp.Errors = append(resp.Errors, e.Error())
	}
	writeJSON(w, http.StatusUnprocessableEntity, resp)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
