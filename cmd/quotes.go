package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/c0debrain/coinwatch/cmc"
	"github.com/c0debrain/coinwatch/renderer"
	"github.com/google/subcommands"
)

// quotesCmd holds the flags for the 'quotes' subcommand.
type quotesCmd struct {
	limit int
}

func (*quotesCmd) Name() string     { return "quotes" }
func (*quotesCmd) Synopsis() string { return "display current prices of the tracked coins" }
func (*quotesCmd) Usage() string {
	return `cw quotes [-limit n]

  Fetches current prices of the tracked coins, and the market-wide figures.
`
}

func (c *quotesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", 0, "number of quotes to fetch, 0 for the whole feed")
}

func (c *quotesCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client := cmc.NewClient()
	client.Limit = c.limit

	quotes, err := client.Ticker(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	doc := renderer.QuotesMarkdown(quotes, book)

	// the market-wide figures are a nicety, the quotes stand without them
	if global, err := client.Global(ctx); err != nil {
		log.Println("warning, could not fetch global metrics:", err)
	} else {
		doc += "\n" + renderer.GlobalMarkdown(global.TotalMarketCapUSD, global.BitcoinDominance)
	}

	printMarkdown(doc)
	return subcommands.ExitSuccess
}
