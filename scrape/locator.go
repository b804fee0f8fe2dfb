package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Locate returns the listing card nodes on one parsed page. The ordered
// structural selectors are tried first; the first selector with any match
// wins and the rest are skipped, even when the match count looks
// implausible. An empty result is not an error.
func Locate(doc *goquery.Document) []*goquery.Selection {
	for _, sel := range cardSelectors {
		if matches := doc.Find(sel); matches.Length() > 0 {
			return split(matches)
		}
	}
	return fallbackScan(doc)
}

// fallbackScan is a best-effort heuristic for markup none of the
// structural selectors recognize: any block node whose own text mentions
// "car". It can and does return unrelated nodes.
func fallbackScan(doc *goquery.Document) []*goquery.Selection {
	var cards []*goquery.Selection
	doc.Find("div, li").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(strings.ToLower(ownText(s)), "car") {
			cards = append(cards, s)
		}
	})
	return cards
}

// ownText returns the node's direct text, so a parent is not matched on
// account of its children.
func ownText(s *goquery.Selection) string {
	return s.Contents().FilterFunction(func(_ int, c *goquery.Selection) bool {
		return c.Get(0).Type == html.TextNode
	}).Text()
}

func split(matches *goquery.Selection) []*goquery.Selection {
	cards := make([]*goquery.Selection, 0, matches.Length())
	matches.Each(func(_ int, s *goquery.Selection) {
		cards = append(cards, s)
	})
	return cards
}
