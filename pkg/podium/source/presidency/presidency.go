// Package presidency implements source.Source against an HTML archive of
// presidential documents. A catalog page links each document; a document
// page carries the speaker byline, a date line, and the body paragraphs.
package presidency

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/cognicore/podium/pkg/podium/internalerr"
	"github.com/cognicore/podium/pkg/podium/source"
)

// Node classes used by the archive markup.
const (
	titleClass = "diet-title"
	dateClass  = "date-display-single"
	bodyClass  = "field-docs-content"
)

// docPathPrefix marks catalog anchors that point at documents.
const docPathPrefix = "/documents/"

// Client fetches catalog and document pages from one archive host.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// New creates a client for the archive at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListDocumentIDs fetches the catalog page and returns the document paths
// it links, in page order, deduplicated.
func (c *Client) ListDocumentIDs(ctx context.Context, catalog string) ([]string, error) {
	root, err := c.get(ctx, catalog)
	if err != nil {
		return nil, err
	}

	var ids []string
	seen := make(map[string]struct{})
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "a" {
			return
		}
		href := attr(n, "href")
		if !strings.Contains(href, docPathPrefix) {
			return
		}
		// Normalize absolute links back to paths.
		if i := strings.Index(href, docPathPrefix); i > 0 {
			href = href[i:]
		}
		if _, ok := seen[href]; ok {
			return
		}
		seen[href] = struct{}{}
		ids = append(ids, href)
	})
	return ids, nil
}

// Fetch retrieves one document page and extracts its raw pieces.
func (c *Client) Fetch(ctx context.Context, id string) (source.RawDocument, error) {
	root, err := c.get(ctx, id)
	if err != nil {
		return source.RawDocument{}, err
	}

	doc := source.RawDocument{ID: id}
	if n := findByClass(root, titleClass); n != nil {
		doc.Title = strings.TrimSpace(collectText(n))
	}
	if n := findByClass(root, dateClass); n != nil {
		doc.Date = strings.TrimSpace(collectText(n))
	}
	if body := findByClass(root, bodyClass); body != nil {
		walk(body, func(n *html.Node) {
			if n.Type != html.ElementNode || n.Data != "p" {
				return
			}
			if p := strings.TrimSpace(collectText(n)); p != "" {
				doc.Paragraphs = append(doc.Paragraphs, p)
			}
		})
	}
	return doc, nil
}

func (c *Client) get(ctx context.Context, path string) (*html.Node, error) {
	url := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrSourceUnavailable, url, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrSourceUnavailable, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: HTTP %d", internalerr.ErrSourceUnavailable, url, resp.StatusCode)
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrSourceUnavailable, url, err)
	}
	return root, nil
}

// walk visits every node in the tree in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// findByClass returns the first node carrying the given class.
func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// collectText concatenates the text nodes under n.
func collectText(n *html.Node) string {
	var buf strings.Builder
	walk(n, func(node *html.Node) {
		if node.Type == html.TextNode {
			buf.WriteString(node.Data)
		}
	})
	return buf.String()
}
