package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/shelfpage/internal/components"
	"github.com/conneroisu/shelfpage/internal/config"
	"github.com/conneroisu/shelfpage/internal/logging"
)

func newServer(t *testing.T, mutate func(cfg *config.Config)) (*PreviewServer, *httptest.Server) {
	t.Helper()

	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}

	s, err := New(cfg, logging.NewNopLogger())
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		_ = s.Shutdown(context.Background())
		ts.Close()
	})
	return s, ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestIndexRendersFreshPage(t *testing.T) {
	_, ts := newServer(t, nil)

	resp, body := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 8, doc.Find("#categories ."+components.CategoryCardClass).Length())
	assert.Equal(t, 8, doc.Find("#bestsellers ."+components.BookCardClass).Length())
	assert.Contains(t, doc.Find("body script").Last().Text(), "/ws")

	_, again := get(t, ts.URL+"/")
	assert.Equal(t, body, again)
}

func TestIndexWithoutHotReload(t *testing.T) {
	_, ts := newServer(t, func(cfg *config.Config) { cfg.Development.HotReload = false })

	_, body := get(t, ts.URL+"/")
	assert.NotContains(t, body, "new WebSocket")
}

func TestIndexHostPageFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(`<html><body><div id="categories"></div></body></html>`), 0o600))

	_, ts := newServer(t, func(cfg *config.Config) {
		cfg.Page.Source = path
		cfg.Development.HotReload = false
	})

	resp, body := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 8, strings.Count(body, `class="category-card`))
	assert.NotContains(t, body, components.BookCardClass)
}

func TestIndexMissingHostPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(`<html></html>`), 0o600))

	_, ts := newServer(t, func(cfg *config.Config) {
		cfg.Page.Source = path
		cfg.Development.HotReload = false
	})
	require.NoError(t, os.Remove(path))

	resp, _ := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthAndVersion(t *testing.T) {
	_, ts := newServer(t, nil)

	resp, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)

	resp, body = get(t, ts.URL+"/version")
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, `"go_version"`)

	resp, _ = get(t, ts.URL+"/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFileChangePushesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(`<html><body></body></html>`), 0o600))

	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Page.Source = path
	cfg.Development.DebounceMS = 20

	s, err := New(cfg, logging.NewNopLogger())
	require.NoError(t, err)
	require.NotNil(t, s.watcher)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	require.Eventually(t, func() bool { return s.Addr() != "" }, 2*time.Second, 10*time.Millisecond)

	dialCtx, dialCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer dialCancel()
	conn, _, err := websocket.Dial(dialCtx, "ws://"+s.Addr()+"/ws", nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	require.Eventually(t, func() bool { return s.Hub().ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(`<html><body><p>edited</p></body></html>`), 0o600))

	readCtx, readCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer readCancel()
	_, data, err := conn.Read(readCtx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"reload"}`, string(data))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestStartReportsListenFailure(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = taken.Addr().(*net.TCPAddr).Port

	s, err := New(cfg, nil)
	require.NoError(t, err)
	defer s.Shutdown(context.Background())

	err = s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot listen")
}

func TestNewRejectsNilConfig(t *testing.T) {
	_, err := New(nil, nil)
	require.Error(t, err)
}
