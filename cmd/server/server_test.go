package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/blogdev/blog-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_GracefulShutdown(t *testing.T) {
	app, _ := newTestApplication(t, testutils.NewMemoryPostStore())

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.serve(ctx, listener, app.setupRouter())
	}()

	url := "http://" + listener.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestStartHTTPServer_ListenError(t *testing.T) {
	occupied, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer occupied.Close()

	app, _ := newTestApplication(t, testutils.NewMemoryPostStore())
	app.config.Server.Port = occupied.Addr().(*net.TCPAddr).Port

	err = app.startHTTPServer(context.Background(), app.setupRouter())
	assert.Error(t, err)
}
