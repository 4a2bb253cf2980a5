package fetch

import (
	"context"
	"felix/internal/core/domain"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		status   int
		headers  map[string]string
		wantOK   bool
		wantBody []byte
	}{
		{
			name:     "success",
			body:     []byte("test\n"),
			status:   http.StatusOK,
			wantOK:   true,
			wantBody: []byte("test\n"),
		},
		{
			name:     "error body is kept",
			body:     []byte("did not understand"),
			status:   http.StatusNotImplemented,
			wantOK:   false,
			wantBody: []byte("did not understand"),
		},
		{
			name:     "headers are sent",
			body:     []byte("ok"),
			status:   http.StatusOK,
			headers:  map[string]string{"User-Agent": "curl/7.68.0"},
			wantOK:   true,
			wantBody: []byte("ok"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tc.headers {
					assert.Equal(t, v, r.Header.Get(k))
				}
				w.WriteHeader(tc.status)
				_, err := w.Write(tc.body)
				assert.NoError(t, err)
			}))
			defer srv.Close()

			res, err := Get(t.Context(), srv.URL, tc.headers)
			require.NoError(t, err)

			assert.Equal(t, tc.status, res.StatusCode)
			assert.Equal(t, tc.wantOK, res.OK())
			assert.Equal(t, tc.wantBody, res.Body)
		})
	}
}

func TestDownload(t *testing.T) {
	tests := []struct {
		name    string
		body    []byte
		status  int
		wantErr bool
	}{
		{
			name:    "success",
			body:    []byte("<html></html>"),
			status:  http.StatusOK,
			wantErr: false,
		},
		{
			name:    "not found",
			body:    []byte("not found"),
			status:  http.StatusNotFound,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, err := w.Write(tc.body)
				assert.NoError(t, err)
			}))
			defer srv.Close()

			res, err := Download(t.Context(), srv.URL)
			if tc.wantErr {
				require.ErrorIs(t, err, domain.ErrUnexpectedStatus)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.body, res)
			}
		})
	}
}

func TestGetCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := Get(ctx, srv.URL, nil)
	require.Error(t, err)
}
