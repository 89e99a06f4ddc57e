// Package preflight inspects a storefront deployment over plain HTTP
// before any browser is launched. It parses the landing page markup and
// reports whether the regions the suite drives are present, so a broken
// deploy fails fast instead of burning browser timeouts.
package preflight

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var (
	ErrUnreachable = errors.New("storefront unreachable")
	ErrBadStatus   = errors.New("storefront returned an unexpected status")
)

// Report describes what the landing page markup carries
type Report struct {
	Title          string
	SectionPresent bool
	Heading        string
	CardCount      int
	SearchBox      bool
	CartLink       bool
	Problems       []string
}

// Ready reports whether the landing page carries everything the suite
// needs. An empty catalog is not a problem here; the suite has its own
// say about counts.
func (r *Report) Ready() bool {
	return len(r.Problems) == 0
}

// Check fetches the landing page and inspects its markup statically.
// Network failures wrap ErrUnreachable; a non-200 answer wraps
// ErrBadStatus.
func Check(ctx context.Context, baseURL string) (*Report, error) {
	client := &http.Client{Timeout: 15 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build landing page request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse landing page: %w", err)
	}

	return inspect(doc), nil
}

func inspect(doc *goquery.Document) *Report {
	report := &Report{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	section := doc.Find(`section[data-testid="hot-sellers"]`)
	report.SectionPresent = section.Length() > 0
	if !report.SectionPresent {
		report.Problems = append(report.Problems, "hot sellers section is missing")
	} else {
		report.Heading = strings.TrimSpace(section.Find("h2").First().Text())
		if report.Heading != "Hot Sellers" {
			report.Problems = append(report.Problems, fmt.Sprintf("hot sellers heading reads %q", report.Heading))
		}
		report.CardCount = section.Find(`[data-testid="product-card"]`).Length()
		section.Find(`[data-testid="product-card"]`).Each(func(i int, card *goquery.Selection) {
			link := card.Find("a.product-link").First()
			if link.Length() == 0 {
				report.Problems = append(report.Problems, fmt.Sprintf("card %d has no product link", i))
				return
			}
			if href, _ := link.Attr("href"); href == "" {
				report.Problems = append(report.Problems, fmt.Sprintf("card %d product link has no href", i))
			}
		})
	}

	report.SearchBox = doc.Find(`input[placeholder="Search products"]`).Length() > 0
	if !report.SearchBox {
		report.Problems = append(report.Problems, "search box is missing")
	}

	report.CartLink = doc.Find(`a[title="Cart"]`).Length() > 0
	if !report.CartLink {
		report.Problems = append(report.Problems, "cart link is missing")
	}

	return report
}
