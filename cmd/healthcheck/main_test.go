package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "http://127.0.0.1:8080/api/v1/health"},
		{"garbage", "http://127.0.0.1:8080/api/v1/health"},
		{"0.0.0.0:9090", "http://127.0.0.1:9090/api/v1/health"},
		{":9191", "http://127.0.0.1:9191/api/v1/health"},
		{"10.0.0.5:8080", "http://10.0.0.5:8080/api/v1/health"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, healthURL(tt.in))
		})
	}
}

func TestCheck(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer ok.Close()

	degraded := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"starting"}`))
	}))
	defer degraded.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	assert.Equal(t, 0, check(ok.URL))
	assert.Equal(t, 1, check(degraded.URL))
	assert.Equal(t, 1, check(failing.URL))
	assert.Equal(t, 1, check("http://127.0.0.1:1/api/v1/health"))
}
