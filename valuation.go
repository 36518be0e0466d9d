package coinwatch

// Valuation is one purchase valued at the current price.
type Valuation struct {
	Coin     string
	Date     string
	Amount   Amount
	BuyPrice Money
	NowPrice Money
	Change   Percent // now price as a percentage of buy price, 100 is break-even
	WinLoss  Money   // (now - buy) x amount
}

// Gained reports whether the purchase is at or above break-even.
func (v Valuation) Gained() bool { return v.Change >= 100 }

// ValuationReport is the outcome of valuing a whole trade book at current
// prices: one row per purchase and the grand total.
type ValuationReport struct {
	Rows  []Valuation
	Total Money
}

// NewValuationReport values every recorded purchase of book at the prices
// in quotes.
//
// The join is an inner join on the coin id, driven by the feed: coins
// appear in quote order, filtered by book membership, and purchases keep
// their recorded order within a coin. A tracked coin the feed does not
// quote is silently skipped, so is a quoted coin the book does not track.
func NewValuationReport(quotes []Quote, book *TradeBook) *ValuationReport {
	report := &ValuationReport{}
	index := quoteIndex(quotes)
	for _, q := range quotes {
		if !book.Has(q.ID) {
			continue
		}
		now := index[q.ID]
		for _, t := range book.Trades(q.ID) {
			winLoss := now.Sub(t.Price).Mul(t.Amount)
			report.Rows = append(report.Rows, Valuation{
				Coin:     q.ID,
				Date:     t.Date,
				Amount:   t.Amount,
				BuyPrice: t.Price,
				NowPrice: now,
				Change:   now.PercentOf(t.Price),
				WinLoss:  winLoss,
			})
			report.Total = report.Total.Add(winLoss)
		}
	}
	return report
}

// Invested returns the dollars spent across all reported purchases.
func (r *ValuationReport) Invested() Money {
	var total Money
	for _, v := range r.Rows {
		total = total.Add(v.BuyPrice.Mul(v.Amount))
	}
	return total
}

// Value returns the current worth of all reported purchases.
func (r *ValuationReport) Value() Money {
	var total Money
	for _, v := range r.Rows {
		total = total.Add(v.NowPrice.Mul(v.Amount))
	}
	return total
}
