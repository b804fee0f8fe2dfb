package scrape

import (
	"fmt"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olxgrab/record"
)

// cardFixture parses a single listing card with the given inner markup.
func cardFixture(t *testing.T, inner string) *goquery.Selection {
	t.Helper()
	doc := docFromHTML(t, fmt.Sprintf(
		`<html><body><ul><li data-aut-id="itemBox">%s</li></ul></body></html>`, inner))
	cards := Locate(doc)
	require.Len(t, cards, 1)
	return cards[0]
}

// TestExtractFields_WellFormedCard verifies all five fields resolve from a
// complete card.
func TestExtractFields_WellFormedCard(t *testing.T) {
	card := cardFixture(t, `
		<a href="/item/car-cover-sedan-123"><img src="https://img.olx.in/123.jpg"></a>
		<h6>Waterproof car cover</h6>
		<span class="_2b6f3">₹ 1,499</span>
		<span class="_2e28f">Mumbai, Maharashtra</span>`)

	rec, ok := ExtractFields(card)
	require.True(t, ok)

	assert.Equal(t, "Waterproof car cover", rec.Title)
	assert.Equal(t, "₹ 1,499", rec.Price)
	assert.Equal(t, "Mumbai, Maharashtra", rec.Location)
	assert.Equal(t, "https://www.olx.in/item/car-cover-sedan-123", rec.URL)
	assert.Equal(t, "https://img.olx.in/123.jpg", rec.ImageURL)
}

// TestExtractFields_TitleFallbackChain verifies later title selectors are
// tried when the first ones don't match.
func TestExtractFields_TitleFallbackChain(t *testing.T) {
	card := cardFixture(t, `<span data-aut-id="itemTitle">Body cover XL</span>`)

	rec, ok := ExtractFields(card)
	require.True(t, ok)
	assert.Equal(t, "Body cover XL", rec.Title)
}

// TestExtractFields_NoTitle verifies a card with no matching title
// selector yields an invalid record even when other fields resolve.
func TestExtractFields_NoTitle(t *testing.T) {
	card := cardFixture(t, `
		<a href="https://www.olx.in/item/999">link</a>
		<span class="price">₹ 500</span>`)

	rec, ok := ExtractFields(card)
	assert.False(t, ok)
	assert.Equal(t, record.Sentinel, rec.Title)
	// The other fields still resolved independently.
	assert.Equal(t, "₹ 500", rec.Price)
	assert.Equal(t, "https://www.olx.in/item/999", rec.URL)
}

// TestExtractPrice_Acceptance verifies the price qualification rule: a
// candidate needs a currency symbol or at least one digit.
func TestExtractPrice_Acceptance(t *testing.T) {
	tests := []struct {
		name     string
		inner    string
		expected string
	}{
		{
			name:     "currency symbol",
			inner:    `<h6>x</h6><span class="price">₹ 1,500</span>`,
			expected: "₹ 1,500",
		},
		{
			name:     "digits only",
			inner:    `<h6>x</h6><span class="price">1500 negotiable</span>`,
			expected: "1500 negotiable",
		},
		{
			name:     "dollar sign without digits",
			inner:    `<h6>x</h6><span class="price">$$$</span>`,
			expected: "$$$",
		},
		{
			name:     "no digits no currency",
			inner:    `<h6>x</h6><span class="price">Contact seller</span>`,
			expected: record.Sentinel,
		},
		{
			name:     "no price element at all",
			inner:    `<h6>x</h6>`,
			expected: record.Sentinel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := ExtractFields(cardFixture(t, tt.inner))
			assert.Equal(t, tt.expected, rec.Price)
		})
	}
}

// TestExtractPrice_RejectedCandidateTriesNext verifies a disqualified
// candidate does not stop the chain.
func TestExtractPrice_RejectedCandidateTriesNext(t *testing.T) {
	card := cardFixture(t, `
		<h6>x</h6>
		<span class="_2b6f3">Price on request</span>
		<span data-aut-id="itemPrice">₹ 2,000</span>`)

	rec, _ := ExtractFields(card)
	assert.Equal(t, "₹ 2,000", rec.Price)
}

// TestExtractFields_RelativeURLResolved verifies relative hrefs are
// resolved against the base origin.
func TestExtractFields_RelativeURLResolved(t *testing.T) {
	card := cardFixture(t, `<h6>x</h6><a href="/item/abc-456">view</a>`)

	rec, _ := ExtractFields(card)
	assert.Equal(t, "https://www.olx.in/item/abc-456", rec.URL)
}

// TestExtractFields_AbsoluteURLPassthrough verifies absolute hrefs pass
// through unchanged.
func TestExtractFields_AbsoluteURLPassthrough(t *testing.T) {
	card := cardFixture(t, `<h6>x</h6><a href="https://elsewhere.example.com/item/1">view</a>`)

	rec, _ := ExtractFields(card)
	assert.Equal(t, "https://elsewhere.example.com/item/1", rec.URL)
}

// TestExtractFields_FirstAnchorWins verifies the first anchor under the
// card supplies the URL.
func TestExtractFields_FirstAnchorWins(t *testing.T) {
	card := cardFixture(t, `
		<h6>x</h6>
		<a href="/item/first">one</a>
		<a href="/item/second">two</a>`)

	rec, _ := ExtractFields(card)
	assert.Equal(t, "https://www.olx.in/item/first", rec.URL)
}

// TestExtractFields_PartialCard verifies unresolved fields fall back to
// the sentinel without invalidating the record.
func TestExtractFields_PartialCard(t *testing.T) {
	card := cardFixture(t, `<h6>Only a title</h6>`)

	rec, ok := ExtractFields(card)
	require.True(t, ok)

	assert.Equal(t, "Only a title", rec.Title)
	assert.Equal(t, record.Sentinel, rec.Price)
	assert.Equal(t, record.Sentinel, rec.Location)
	assert.Equal(t, record.Sentinel, rec.URL)
	assert.Equal(t, record.Sentinel, rec.ImageURL)
}

// TestExtractFields_WhitespaceTrimmed verifies extracted text is trimmed.
func TestExtractFields_WhitespaceTrimmed(t *testing.T) {
	card := cardFixture(t, `
		<h6>
			Roomy car cover
		</h6>
		<span class="location">  Pune  </span>`)

	rec, ok := ExtractFields(card)
	require.True(t, ok)
	assert.Equal(t, "Roomy car cover", rec.Title)
	assert.Equal(t, "Pune", rec.Location)
}

// TestResolveHref covers the resolution table directly.
func TestResolveHref(t *testing.T) {
	tests := []struct {
		name     string
		href     string
		expected string
	}{
		{
			name:     "absolute https",
			href:     "https://www.olx.in/item/1",
			expected: "https://www.olx.in/item/1",
		},
		{
			name:     "absolute http",
			href:     "http://other.example.com/x",
			expected: "http://other.example.com/x",
		},
		{
			name:     "root relative",
			href:     "/item/2",
			expected: "https://www.olx.in/item/2",
		},
		{
			name:     "bare path",
			href:     "item/3",
			expected: "https://www.olx.in/item/3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveHref(tt.href))
		})
	}
}
