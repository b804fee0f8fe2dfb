package scrape

// CSS selectors used across the scraper. The site's generated class names
// churn between deploys, so every lookup carries ordered fallbacks from
// most to least specific; the first match wins.
var (
	cardSelectors = []string{
		`[data-aut-id="itemBox"]`,
		`li.EIR5N`,
		`div._2fp1f`,
		`.item-card`,
		`[class*="item"]`,
	}

	titleSelectors = []string{
		`h6`,
		`[data-aut-id="itemTitle"]`,
		`.title`,
		`h6._2caa7`,
	}

	priceSelectors = []string{
		`span._2b6f3`,
		`[data-aut-id="itemPrice"]`,
		`.price`,
		`span[class*="price"]`,
	}

	locationSelectors = []string{
		`span._2e28f`,
		`[data-aut-id="item-location"]`,
		`.location`,
	}
)
