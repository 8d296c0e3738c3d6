package output

import "context"

// PageInfo is a lightweight snapshot of the current page.
type PageInfo struct {
	URL     string
	Title   string
	Content string
}

type BrowserPort interface {
	Navigate(ctx context.Context, url string) error
	Click(ctx context.Context, selector string) error
	Type(ctx context.Context, selector, text string) error
	GetText(ctx context.Context, selector string) (string, error)
	Screenshot(ctx context.Context, path string) error

	GetPageInfo(ctx context.Context) (*PageInfo, error)
	CurrentURL() string
	Close()
}
