package rod

import (
	"strings"

	"golang.org/x/net/html"
)

// CleanConfig controls which parts of a page survive cleaning.
type CleanConfig struct {
	TagsToRemove  []string
	AttrsToRemove []string
	MaxOutputSize int
}

var defaultCleanConfig = CleanConfig{
	TagsToRemove: []string{
		"script", "style", "noscript", "svg", "iframe",
		"link", "meta", "head", "title",
	},
	AttrsToRemove: []string{
		"style", "srcset", "sizes", "loading", "decoding", "tabindex",
	},
	MaxOutputSize: 130_000,
}

// CleanHTML strips scripts, styling and other noise from raw page HTML so
// the remainder fits into a model observation. On parse failure the raw
// input is returned unchanged.
func CleanHTML(rawHTML string, cfg *CleanConfig) string {
	if cfg == nil {
		cfg = &defaultCleanConfig
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return rawHTML
	}

	body := findBody(doc)
	if body == nil {
		return rawHTML
	}

	cleanNode(body, cfg)

	var sb strings.Builder
	if err := html.Render(&sb, body); err != nil {
		return rawHTML
	}

	out := sb.String()
	if cfg.MaxOutputSize > 0 && len(out) > cfg.MaxOutputSize {
		out = out[:cfg.MaxOutputSize]
	}
	return out
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

func cleanNode(n *html.Node, cfg *CleanConfig) {
	if n.Type == html.CommentNode {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		return
	}
	if n.Type != html.ElementNode {
		return
	}

	for _, tag := range cfg.TagsToRemove {
		if n.Data == tag {
			if n.Parent != nil {
				n.Parent.RemoveChild(n)
			}
			return
		}
	}

	n.Attr = filterAttrs(n.Attr, cfg)

	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		cleanNode(c, cfg)
		c = next
	}
}

func filterAttrs(attrs []html.Attribute, cfg *CleanConfig) []html.Attribute {
	var kept []html.Attribute
	for _, attr := range attrs {
		if removeAttr(attr, cfg) {
			continue
		}
		kept = append(kept, attr)
	}
	return kept
}

func removeAttr(attr html.Attribute, cfg *CleanConfig) bool {
	for _, name := range cfg.AttrsToRemove {
		if attr.Key == name {
			return true
		}
	}
	// Event handlers carry no useful signal for the agent.
	return strings.HasPrefix(attr.Key, "on")
}
