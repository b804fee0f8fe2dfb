package scrape

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"olxgrab/record"
)

// BaseOrigin is the root URL used to resolve relative listing links.
const BaseOrigin = "https://www.olx.in"

// ExtractFields resolves the five record fields from one listing card.
// Each field tries its selector chain independently and falls back to the
// sentinel, so a partial card still yields a record. The second return is
// false when the record fails the title validity rule and must be dropped.
func ExtractFields(card *goquery.Selection) (record.Record, bool) {
	rec := record.Record{
		Title:    firstText(card, titleSelectors),
		Price:    extractPrice(card),
		Location: firstText(card, locationSelectors),
		URL:      extractURL(card),
		ImageURL: extractImage(card),
	}
	return rec, rec.Valid()
}

// firstText returns the trimmed text of the first selector candidate that
// matches an element with non-empty text, or the sentinel.
func firstText(card *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(card.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return record.Sentinel
}

// extractPrice walks the price selector chain. A candidate only qualifies
// when its text carries a currency symbol or at least one digit; labels
// like "Contact seller" are passed over.
func extractPrice(card *goquery.Selection) string {
	for _, sel := range priceSelectors {
		text := strings.TrimSpace(card.Find(sel).First().Text())
		if text == "" {
			continue
		}
		if priceLike(text) {
			return text
		}
	}
	return record.Sentinel
}

func priceLike(text string) bool {
	if strings.ContainsAny(text, "₹$€£") {
		return true
	}
	for _, r := range text {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// extractURL takes the first anchor with an href anywhere under the card
// and resolves relative links against the site origin.
func extractURL(card *goquery.Selection) string {
	href, ok := card.Find("a[href]").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return record.Sentinel
	}
	return resolveHref(href)
}

// resolveHref rewrites a relative href to an absolute URL under
// BaseOrigin. Already-absolute hrefs pass through unchanged.
func resolveHref(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	base, err := url.Parse(BaseOrigin)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// extractImage returns the src of the first image under the card.
func extractImage(card *goquery.Selection) string {
	if src, ok := card.Find("img").First().Attr("src"); ok && strings.TrimSpace(src) != "" {
		return src
	}
	return record.Sentinel
}
