package renderer

import (
	"fmt"
	"strings"

	"github.com/c0debrain/coinwatch"
)

// Column layout of the win/loss table. The widths and decimal places are
// part of the output contract, scripts parse this.
const (
	amountWidth   = 13
	amountPlaces  = 8
	priceWidth    = 12
	pricePlaces   = 5
	percentWidth  = 10
	percentPlaces = 1
	winLossWidth  = 10
	winLossPlaces = 2
)

var reportColumns = []string{"coin", "buy date", "amount", "buy price", "now price", "percentage", "win/loss"}

// Report renders the win/loss table: one row per purchase, coins grouped in
// feed order with a rule closing each group, and a last TOTAL row. The
// win/loss cell is colored by the percentage column, red below break-even,
// green at or above it.
func Report(r *coinwatch.ValuationReport, p Palette) string {
	t := NewTable(len(reportColumns)).SetWidths(
		defaultColumnWidth, // coin
		defaultColumnWidth, // buy date
		amountWidth,
		priceWidth, // buy price
		priceWidth, // now price
		percentWidth,
		winLossWidth,
	)

	var b strings.Builder
	fmt.Fprintln(&b, t.Row(reportColumns...))
	fmt.Fprintln(&b, t.Rule())

	for i, v := range r.Rows {
		winLoss := Fixed(v.WinLoss.Decimal(), winLossWidth, winLossPlaces)
		if v.Gained() {
			winLoss = p.Good() + winLoss + p.Reset()
		} else {
			winLoss = p.Bad() + winLoss + p.Reset()
		}
		fmt.Fprintln(&b, t.Row(
			v.Coin,
			v.Date,
			Fixed(v.Amount.Decimal(), amountWidth, amountPlaces),
			Fixed(v.BuyPrice.Decimal(), priceWidth, pricePlaces),
			Fixed(v.NowPrice.Decimal(), priceWidth, pricePlaces),
			Fixed(float64(v.Change), percentWidth, percentPlaces),
			winLoss,
		))
		if i == len(r.Rows)-1 || r.Rows[i+1].Coin != v.Coin {
			fmt.Fprintln(&b, t.Rule())
		}
	}

	// a negative total is always wrapped in the negative color, a
	// non-negative one only when colors are on.
	total := Fixed(r.Total.Decimal(), winLossWidth, winLossPlaces)
	switch {
	case r.Total.IsNegative():
		total = p.Bad() + total + p.Reset()
	case p.Enabled():
		total = p.Good() + total + p.Reset()
	}
	fmt.Fprintln(&b, t.Row("TOTAL", "", "", "", "", "", total))

	return b.String()
}
