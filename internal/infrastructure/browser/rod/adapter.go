package rod

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"

	"react-browser-agent/internal/application/port/output"
)

const maxPageContentLen = 1000

var _ output.BrowserPort = (*BrowserAdapter)(nil)

// BrowserAdapter owns a single Chrome instance and the one page the agent
// drives. Not safe for concurrent use; a run owns its browser exclusively.
type BrowserAdapter struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	timeout  time.Duration
}

type Config struct {
	Headless   bool
	SlowMotion time.Duration
	Timeout    time.Duration
	NoSandbox  bool
	DevTools   bool
}

func DefaultConfig() Config {
	return Config{
		Headless:   false,
		SlowMotion: 500 * time.Millisecond,
		Timeout:    10 * time.Second,
	}
}

func NewBrowserAdapter(ctx context.Context, cfg Config) (*BrowserAdapter, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	l := launcher.New().
		Headless(cfg.Headless).
		Devtools(cfg.DevTools).
		NoSandbox(cfg.NoSandbox)

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().
		ControlURL(url).
		SlowMotion(cfg.SlowMotion)
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &BrowserAdapter{
		browser:  browser,
		launcher: l,
		page:     page,
		timeout:  cfg.Timeout,
	}, nil
}

func (b *BrowserAdapter) Navigate(ctx context.Context, url string) error {
	if err := b.page.Context(ctx).Navigate(url); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	if err := b.page.WaitLoad(); err != nil {
		return fmt.Errorf("page load failed: %w", err)
	}
	b.page.WaitIdle(5 * time.Second)
	return nil
}

func (b *BrowserAdapter) Click(ctx context.Context, selector string) error {
	el, err := b.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	b.page.WaitIdle(2 * time.Second)
	return nil
}

func (b *BrowserAdapter) Type(ctx context.Context, selector, text string) error {
	el, err := b.element(ctx, selector)
	if err != nil {
		return err
	}

	// Clear existing content before typing, matching fill semantics.
	if err := el.SelectAllText(); err == nil {
		_ = el.Input("")
	}

	if err := el.Input(text); err != nil {
		return fmt.Errorf("input failed: %w", err)
	}
	return nil
}

func (b *BrowserAdapter) GetText(ctx context.Context, selector string) (string, error) {
	el, err := b.element(ctx, selector)
	if err != nil {
		return "", err
	}
	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Screenshot captures the page and saves it to path. JPEG output goes
// through an extra resize pass so oversized captures stay small.
func (b *BrowserAdapter) Screenshot(ctx context.Context, path string) error {
	format := proto.PageCaptureScreenshotFormatPng
	req := &proto.PageCaptureScreenshot{Format: format}

	if isJPEGPath(path) {
		req.Format = proto.PageCaptureScreenshotFormatJpeg
		req.Quality = gson.Int(80)
	}

	imgBytes, err := b.page.Context(ctx).Screenshot(false, req)
	if err != nil {
		return fmt.Errorf("screenshot failed: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		return fmt.Errorf("image decode failed: %w", err)
	}
	if img.Bounds().Dx() > 1920 {
		img = imaging.Resize(img, 1920, 0, imaging.Lanczos)
	}

	if err := imaging.Save(img, path, imaging.JPEGQuality(jpeg.DefaultQuality)); err != nil {
		return fmt.Errorf("failed to save screenshot: %w", err)
	}
	return nil
}

// GetPageInfo returns URL, title and a cleaned, truncated slice of the page
// body for quick inspection.
func (b *BrowserAdapter) GetPageInfo(ctx context.Context) (*output.PageInfo, error) {
	info, err := b.page.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to read page info: %w", err)
	}

	content := ""
	if html, err := b.page.HTML(); err == nil {
		content = CleanHTML(html, nil)
		if len(content) > maxPageContentLen {
			content = content[:maxPageContentLen]
		}
	}

	return &output.PageInfo{
		URL:     info.URL,
		Title:   info.Title,
		Content: content,
	}, nil
}

func (b *BrowserAdapter) CurrentURL() string {
	info, err := b.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

func (b *BrowserAdapter) Close() {
	if b.browser != nil {
		_ = b.browser.Close()
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher.Cleanup()
	}
}

// element resolves a selector, accepting XPath when it looks like one.
func (b *BrowserAdapter) element(ctx context.Context, selector string) (*rod.Element, error) {
	page := b.page.Context(ctx).Timeout(b.timeout)

	var el *rod.Element
	var err error
	if strings.HasPrefix(selector, "/") || strings.HasPrefix(selector, "(") {
		el, err = page.ElementX(selector)
	} else {
		el, err = page.Element(selector)
	}
	if err != nil {
		return nil, fmt.Errorf("element not found: %s: %w", selector, err)
	}
	return el, nil
}

func isJPEGPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg")
}
