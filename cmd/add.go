package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/c0debrain/coinwatch"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	coin   string
	amount string
	price  string
	date   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a coin purchase in the trade book" }
func (*addCmd) Usage() string {
	return `cw add -coin <id> -amount <quantity> -price <dollars> [-d <date>]

  Records a purchase in the trade book:
  - coin: the feed id of the coin (e.g., "bitcoin"). Run 'cw quotes' to list them.
  - amount: the quantity bought (e.g., "0.5").
  - price: the unit price paid, in dollars (e.g., "9000").
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.coin, "coin", "", "Coin id as the price feed spells it (required)")
	f.StringVar(&c.amount, "amount", "", "Quantity bought (required)")
	f.StringVar(&c.price, "price", "", "Unit price paid in dollars (required)")
	f.StringVar(&c.date, "d", time.Now().Format("2006-01-02"), "Purchase date (defaults to today)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.coin == "" || c.amount == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -coin, -amount and -price flags are required.")
		return subcommands.ExitUsageError
	}

	amount, err := coinwatch.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	price, err := coinwatch.ParseUSD(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	book.Add(c.coin, coinwatch.NewTrade(amount, price, c.date))

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Recorded %s %s at %s on %s.\n", c.amount, c.coin, price, c.date)
	return subcommands.ExitSuccess
}
