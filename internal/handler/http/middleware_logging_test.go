package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func executeWithLogging(t *testing.T, method, path string, next http.HandlerFunc) (string, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer

	req := httptest.NewRequest(method, path, nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	rec := httptest.NewRecorder()
	(&Handler{}).withLogging(next).ServeHTTP(rec, req)
	return buf.String(), rec
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		next   http.HandlerFunc
		want   []string
	}{
		{
			name:   "GET 200 with body",
			method: http.MethodGet,
			path:   "/users",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("OK"))
			},
			want: []string{`"method":"GET"`, `"uri":"/users"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:   "DELETE 204",
			method: http.MethodDelete,
			path:   "/users/3",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			want: []string{`"method":"DELETE"`, `"uri":"/users/3"`, `"status":204`, `"size":0`},
		},
		{
			name:   "error response",
			method: http.MethodGet,
			path:   "/users/3",
			next: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "forbidden", http.StatusForbidden)
			},
			want: []string{`"status":403`, `"size":10`},
		},
		{
			name:   "handler writes nothing",
			method: http.MethodGet,
			path:   "/",
			next:   func(w http.ResponseWriter, r *http.Request) {},
			want:   []string{`"status":200`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logged, _ := executeWithLogging(t, tt.method, tt.path, tt.next)
			for _, fragment := range tt.want {
				assert.Contains(t, logged, fragment)
			}
		})
	}
}

func TestWithLogging_PassesResponseThrough(t *testing.T) {
	_, rec := executeWithLogging(t, http.MethodGet, "/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Custom", "1")
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("queued"))
	})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "queued", rec.Body.String())
	assert.Equal(t, "1", rec.Header().Get("X-Custom"))
}
