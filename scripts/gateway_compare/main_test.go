package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBodiesEqualIgnoresMeta(t *testing.T) {
	a := []byte(`{"data":{"lessons":[]},"meta":{"processing_time_ms":3}}`)
	b := []byte(`{"meta":{"processing_time_ms":9},"data":{"lessons":[]}}`)
	assert.True(t, bodiesEqual(a, b))

	c := []byte(`{"data":{"lessons":[{"id":"l1"}]}}`)
	assert.False(t, bodiesEqual(a, c))

	assert.True(t, bodiesEqual([]byte("a,b\n"), []byte("a,b")))
	assert.False(t, bodiesEqual([]byte("a,b"), []byte("a,c")))
}

func TestCompareTargetSendsToken(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":{"ok":true}}`))
	}))
	defer srv.Close()

	res := compareTarget(&http.Client{Timeout: time.Second}, srv.URL, srv.URL, "tok", target{Path: "api/v1/navigation"})

	assert.NoError(t, res.Error)
	assert.True(t, res.StatusMatch)
	assert.True(t, res.BodyMatch)
	assert.Equal(t, []string{"Bearer tok", "Bearer tok"}, seen)
}
