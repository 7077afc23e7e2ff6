// Package news resolves the headline that seeds a comic: a best-effort scrape
// of a news homepage, a manually typed title, or an arbitrary article URL.
// Scraping uses goquery and reports failures as *FetchError so callers can
// tell network, status, parse and missing-element failures apart.
package news
