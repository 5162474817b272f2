package service

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"

	"aicompliance/internal/model"
)

const newsUserAgent = "Mozilla/5.0 (compatible; ComplianceNewsBot/1.0)"

// NewsFetcher retrieves candidate items from one regulatory source.
// Fetchers are best-effort: a failing source returns what it got so far.
type NewsFetcher interface {
	Name() string
	Fetch(ctx context.Context) []model.NewsCandidate
}

// EURLexFetcher scrapes the EUR-Lex search pages for AI-related legislation
type EURLexFetcher struct {
	client  *resty.Client
	baseURL string
}

// NewEURLexFetcher creates an EUR-Lex fetcher
func NewEURLexFetcher() *EURLexFetcher {
	return &EURLexFetcher{
		client:  resty.New().SetTimeout(30 * time.Second).SetHeader("User-Agent", newsUserAgent),
		baseURL: "https://eur-lex.europa.eu",
	}
}

func (f *EURLexFetcher) Name() string { return "EUR-Lex" }

func (f *EURLexFetcher) Fetch(ctx context.Context) []model.NewsCandidate {
	queries := []string{
		"artificial intelligence",
		"GDPR artificial intelligence",
		"medical devices AI",
	}

	var items []model.NewsCandidate
	for _, query := range queries {
		searchURL := fmt.Sprintf("%s/search.html?scope=EURLEX&text=%s&lang=en&type=quick", f.baseURL, url.QueryEscape(query))

		root, err := f.fetchHTML(ctx, searchURL)
		if err != nil {
			log.Printf("EUR-Lex search %q failed: %v", query, err)
			continue
		}

		// Top 3 results per search
		for _, result := range findAllByClass(root, "div", "SearchResult", 3) {
			link := findByClass(result, "a", "title")
			if link == nil {
				continue
			}

			summary := ""
			if node := findByClass(result, "div", "summary"); node != nil {
				summary = truncate(nodeText(node), 300)
			}

			items = append(items, model.NewsCandidate{
				Title:    nodeText(link),
				URL:      resolveURL(f.baseURL, attr(link, "href")),
				Summary:  summary,
				Source:   "EUR-Lex",
				Category: "regulation",
				Language: "en",
			})
		}
	}

	log.Printf("Scraped %d items from EUR-Lex", len(items))
	return items
}

func (f *EURLexFetcher) fetchHTML(ctx context.Context, url string) (*html.Node, error) {
	return fetchHTML(ctx, f.client, url)
}

// BOEFetcher scrapes the Boletín Oficial del Estado search pages
type BOEFetcher struct {
	client  *resty.Client
	baseURL string
}

// NewBOEFetcher creates a BOE fetcher
func NewBOEFetcher() *BOEFetcher {
	return &BOEFetcher{
		client:  resty.New().SetTimeout(30 * time.Second).SetHeader("User-Agent", newsUserAgent),
		baseURL: "https://www.boe.es",
	}
}

func (f *BOEFetcher) Name() string { return "BOE" }

func (f *BOEFetcher) Fetch(ctx context.Context) []model.NewsCandidate {
	terms := []string{
		"inteligencia artificial",
		"dispositivos médicos",
		"protección datos",
	}

	var items []model.NewsCandidate
	for _, term := range terms {
		searchURL := fmt.Sprintf("%s/buscar/doc.php?texto=%s", f.baseURL, url.QueryEscape(term))

		root, err := fetchHTML(ctx, f.client, searchURL)
		if err != nil {
			log.Printf("BOE search %q failed: %v", term, err)
			continue
		}

		for _, result := range findAllByClass(root, "div", "resultado_busqueda", 3) {
			heading := findNode(result, "h3")
			if heading == nil {
				continue
			}
			link := findNode(heading, "a")
			if link == nil {
				continue
			}

			summary := ""
			if node := findNode(result, "p"); node != nil {
				summary = truncate(nodeText(node), 300)
			}

			items = append(items, model.NewsCandidate{
				Title:      nodeText(link),
				URL:        resolveURL(f.baseURL, attr(link, "href")),
				Summary:    summary,
				Source:     "BOE",
				Category:   "regulation",
				Language:   "es",
				SearchTerm: term,
			})
		}
	}

	log.Printf("Scraped %d items from BOE", len(items))
	return items
}

func fetchHTML(ctx context.Context, client *resty.Client, url string) (*html.Node, error) {
	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}
	return html.Parse(strings.NewReader(resp.String()))
}

func resolveURL(base, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// findAllByClass collects up to limit element nodes with the given tag and a
// class attribute containing class
func findAllByClass(root *html.Node, tag, class string, limit int) []*html.Node {
	var nodes []*html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag && hasClass(n, class) {
			nodes = append(nodes, n)
			if len(nodes) >= limit {
				return false
			}
		}
		return true
	})
	return nodes
}

func findByClass(root *html.Node, tag, class string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag && hasClass(n, class) {
			found = n
			return false
		}
		return true
	})
	return found
}

func findNode(root *html.Node, tag string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag && n != root {
			found = n
			return false
		}
		return true
	})
	return found
}

// walk traverses depth-first; visit returning false stops the traversal
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
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

func nodeText(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(node *html.Node) bool {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		return true
	})
	return strings.TrimSpace(sb.String())
}
