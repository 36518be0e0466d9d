package renderer

import (
	"bytes"

	"github.com/c0debrain/coinwatch"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the win/loss report as a markdown document, the
// view behind the -md flag and the grounding context of the assistant.
func ReportMarkdown(r *coinwatch.ValuationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Win/Loss Report")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Win/Loss"),
			md.Bold(r.Total.SignedString()),
		},
		Rows: [][]string{
			{"Invested", r.Invested().String()},
			{"Current Value", r.Value().String()},
		},
	})

	if len(r.Rows) > 0 {
		doc.H2("Purchases")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Coin", "Buy Date", "Amount", "Buy Price", "Now Price", "Percentage", "Win/Loss"},
		}
		for _, v := range r.Rows {
			table.Rows = append(table.Rows, []string{
				v.Coin,
				v.Date,
				v.Amount.String(),
				v.BuyPrice.String(),
				v.NowPrice.String(),
				v.Change.String(),
				v.WinLoss.SignedString(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

// QuotesMarkdown renders the current price of every tracked coin the feed
// quotes, with the position held and what it is worth.
func QuotesMarkdown(quotes []coinwatch.Quote, book *coinwatch.TradeBook) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market Quotes")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Coin", "Price", "Held", "Value"},
	}
	for _, q := range quotes {
		if !book.Has(q.ID) {
			continue
		}
		var held coinwatch.Amount
		for _, t := range book.Trades(q.ID) {
			held = held.Add(t.Amount)
		}
		table.Rows = append(table.Rows, []string{
			q.ID,
			q.PriceUSD.String(),
			held.String(),
			q.PriceUSD.Mul(held).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// GlobalMarkdown renders the market-wide footer of the quotes screen.
func GlobalMarkdown(totalCap coinwatch.Money, dominance coinwatch.Percent) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{md.Bold("Market"), ""},
		Rows: [][]string{
			{"Total market cap", totalCap.String()},
			{"Bitcoin dominance", dominance.String()},
		},
	})

	return doc.String()
}
