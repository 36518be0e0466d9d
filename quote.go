package coinwatch

// Quote is the current market price of one coin as served by the feed.
// Quotes are transient: fetched for one report and thrown away.
type Quote struct {
	ID       string
	PriceUSD Money
}

// quoteIndex builds the id to price lookup. On a duplicated id the last
// quote wins, a well-formed feed has none.
func quoteIndex(quotes []Quote) map[string]Money {
	index := make(map[string]Money, len(quotes))
	for _, q := range quotes {
		index[q.ID] = q.PriceUSD
	}
	return index
}
