package news

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/hqnews/internal/util"
)

type ScraperOptions struct {
	Homepage      string
	Label         string
	HeadlineClass string
	Attempts      int
	Log           interface{ Debugf(string, ...any) }
}

// Scraper pulls a single headline out of an HTML page.
type Scraper struct {
	client   *http.Client
	homepage string
	label    string
	selector string
	attempts int
	log      interface{ Debugf(string, ...any) }
}

func NewScraper(c *http.Client, opts ScraperOptions) *Scraper {
	return &Scraper{
		client:   c,
		homepage: opts.Homepage,
		label:    opts.Label,
		selector: headlineSelector(opts.HeadlineClass),
		attempts: max(1, opts.Attempts),
		log:      opts.Log,
	}
}

// headlineSelector matches anchors carrying class among their classes.
func headlineSelector(class string) string {
	return fmt.Sprintf("a[class~=%q]", strings.TrimSpace(class))
}

func (s *Scraper) debugf(format string, args ...any) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}

func (s *Scraper) fetchDOM(ctx context.Context, target string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fetchErr(FailureNetwork, target, err)
	}

	resp, err := util.DoWithRetry(s.client, req, s.attempts, 500*time.Millisecond)
	if err != nil {
		return nil, fetchErr(FailureNetwork, target, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fetchErr(FailureStatus, target, fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fetchErr(FailureParse, target, err)
	}

	return doc, nil
}

// Headline returns the first headline link of the configured homepage.
func (s *Scraper) Headline(ctx context.Context) (Item, error) {
	doc, err := s.fetchDOM(ctx, s.homepage)
	if err != nil {
		return Item{}, err
	}

	item, ok := s.firstHeadline(doc, s.homepage)
	if !ok {
		return Item{}, fetchErr(FailureNotFound, s.homepage, fmt.Errorf("no element matches %s", s.selector))
	}

	item.Source = s.label
	s.debugf("Headline found: %q -> %s", item.Title, item.Link)

	return item, nil
}

// Article resolves a user-supplied page. Homepages are handled like the
// automatic source; article pages fall back to their own title metadata.
func (s *Scraper) Article(ctx context.Context, pageURL string) (Item, error) {
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return Item{}, ErrMissingURL
	}

	u, err := url.Parse(pageURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		if err == nil {
			err = errors.New("only absolute http(s) URLs are supported")
		}
		return Item{}, fetchErr(FailureParse, pageURL, err)
	}

	doc, err := s.fetchDOM(ctx, pageURL)
	if err != nil {
		return Item{}, err
	}

	source := strings.TrimPrefix(u.Hostname(), "www.")

	if item, ok := s.firstHeadline(doc, pageURL); ok {
		item.Source = source
		return item, nil
	}

	title := articleTitle(doc)
	if title == "" {
		return Item{}, fetchErr(FailureNotFound, pageURL, errors.New("page has no headline or title"))
	}

	return Item{Title: title, Link: pageURL, Source: source}, nil
}

func (s *Scraper) firstHeadline(doc *goquery.Document, pageURL string) (Item, bool) {
	a := doc.Find(s.selector).First()
	if a.Length() == 0 {
		return Item{}, false
	}

	link := LinkPlaceholder
	if href, ok := a.Attr("href"); ok && strings.TrimSpace(href) != "" {
		link = resolveURL(pageURL, strings.TrimSpace(href))
	}

	return Item{
		Title: strings.TrimSpace(a.Text()),
		Link:  link,
	}, true
}

func articleTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if t := collapseSpace(og); t != "" {
			return t
		}
	}

	if t := collapseSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}

	return collapseSpace(doc.Find("title").First().Text())
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func resolveURL(baseURL, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if u.IsAbs() {
		return u.String()
	}

	b, err := url.Parse(baseURL)
	if err != nil {
		return href
	}

	return b.ResolveReference(u).String()
}
