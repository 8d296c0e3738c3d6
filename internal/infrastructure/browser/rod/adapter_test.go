package rod

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Headless)
	assert.Equal(t, 500*time.Millisecond, cfg.SlowMotion)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.False(t, cfg.NoSandbox, "Should be secure by default")
	assert.False(t, cfg.DevTools)
}

func TestIsJPEGPath(t *testing.T) {
	assert.True(t, isJPEGPath("shot.jpg"))
	assert.True(t, isJPEGPath("shot.JPEG"))
	assert.False(t, isJPEGPath("screenshot.png"))
	assert.False(t, isJPEGPath("shot"))
}

// The remaining tests launch a real headless Chrome.

func newTestAdapter(t *testing.T) *BrowserAdapter {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser integration test in short mode")
	}

	cfg := DefaultConfig()
	cfg.Headless = true
	cfg.SlowMotion = 0
	cfg.NoSandbox = true

	adapter, err := NewBrowserAdapter(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(adapter.Close)
	return adapter
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>Test Page</title><script>window.x = 1;</script></head>
<body>
<h1>Hello World</h1>
<input id="q" type="text">
<button id="go" onclick="document.querySelector('h1').textContent='Clicked'">Go</button>
</body>
</html>`)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestBrowserAdapter_NavigateAndGetText(t *testing.T) {
	adapter := newTestAdapter(t)
	server := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, adapter.Navigate(ctx, server.URL))
	assert.Equal(t, server.URL+"/", adapter.CurrentURL())

	text, err := adapter.GetText(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", text)
}

func TestBrowserAdapter_ClickAndType(t *testing.T) {
	adapter := newTestAdapter(t)
	server := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, adapter.Navigate(ctx, server.URL))

	require.NoError(t, adapter.Click(ctx, "#go"))
	text, err := adapter.GetText(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, "Clicked", text)

	require.NoError(t, adapter.Type(ctx, "#q", "golang"))
}

func TestBrowserAdapter_GetText_MissingElement(t *testing.T) {
	adapter := newTestAdapter(t)
	server := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, adapter.Navigate(ctx, server.URL))

	_, err := adapter.GetText(ctx, "#does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element not found")
}

func TestBrowserAdapter_Screenshot(t *testing.T) {
	adapter := newTestAdapter(t)
	server := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, adapter.Navigate(ctx, server.URL))

	path := filepath.Join(t.TempDir(), "screenshot.png")
	require.NoError(t, adapter.Screenshot(ctx, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestBrowserAdapter_GetPageInfo(t *testing.T) {
	adapter := newTestAdapter(t)
	server := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, adapter.Navigate(ctx, server.URL))

	info, err := adapter.GetPageInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Test Page", info.Title)
	assert.Contains(t, info.Content, "Hello World")
	assert.NotContains(t, info.Content, "window.x", "scripts must be cleaned out")
	assert.LessOrEqual(t, len(info.Content), 1000)
}
