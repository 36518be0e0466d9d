package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/c0debrain/coinwatch"
	"github.com/c0debrain/coinwatch/cmc"
	"github.com/c0debrain/coinwatch/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	noColor  bool
	markdown bool
	watch    int
	limit    int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a win/loss report of the recorded purchases" }
func (*reportCmd) Usage() string {
	return `cw report [-no-color] [-md] [-w n] [-limit n]

  Fetches current prices and displays the win/loss of every recorded purchase.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	f.BoolVar(&c.markdown, "md", false, "render the report as markdown")
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
	f.IntVar(&c.limit, "limit", 0, "number of quotes to fetch, 0 for the whole feed")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client := cmc.NewClient()
	client.Limit = c.limit

	for {
		quotes, err := client.Ticker(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		report := coinwatch.NewValuationReport(quotes, book)

		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		if c.markdown {
			printMarkdown(renderer.ReportMarkdown(report))
		} else {
			fmt.Print(renderer.Report(report, renderer.NewPalette(!c.noColor)))
		}

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}
