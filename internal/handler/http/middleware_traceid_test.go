// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		traceID      string
		wantEchoed   bool
		wantNewUUIDs bool
	}{
		{name: "caller trace id is reused", traceID: "my-custom-trace-id", wantEchoed: true},
		{name: "uuid from caller is reused", traceID: "0190a5f2-1c2d-7e3f-8a4b-5c6d7e8f9a0b", wantEchoed: true},
		{name: "missing trace id", traceID: "", wantNewUUIDs: true},
		{name: "trace id with spaces is replaced", traceID: "a b", wantNewUUIDs: true},
		{name: "overlong trace id is replaced", traceID: strings.Repeat("a", maxTraceIDLength+1), wantNewUUIDs: true},
		{name: "non ascii trace id is replaced", traceID: "трасса", wantNewUUIDs: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}
			rr, captured := executeWithTraceID(h, tt.traceID)

			require.NotNil(t, captured)
			got := rr.Header().Get(traceIDHeader)
			if tt.wantEchoed {
				assert.Equal(t, tt.traceID, got)
			}
			if tt.wantNewUUIDs {
				id, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), id.Version())
			}
		})
	}
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	seen := make(map[string]struct{})
	for range 100 {
		rr, _ := executeWithTraceID(h, "")
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestWithTraceID_LoggerInContextCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}

func TestIsValidTraceID(t *testing.T) {
	assert.True(t, isValidTraceID("abc-123_XYZ"))
	assert.False(t, isValidTraceID(""))
	assert.False(t, isValidTraceID("tab\there"))
	assert.False(t, isValidTraceID("new\nline"))
}
