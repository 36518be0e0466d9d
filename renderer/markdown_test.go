package renderer

import (
	"strings"
	"testing"

	"github.com/c0debrain/coinwatch"
)

func TestReportMarkdown(t *testing.T) {
	got := ReportMarkdown(demoReport())

	for _, want := range []string{
		"# Win/Loss Report",
		"**Total Win/Loss**",
		"+$170.00",
		"## Purchases",
		"bitcoin",
		"2024-01-15",
		"$900.00",   // invested: 5x100 + 1x200 + 10x20
		"$1,070.00", // current value: 6x150 + 10x17
		"150.00%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report does not mention %q:\n%s", want, got)
		}
	}
}

func TestReportMarkdownEmpty(t *testing.T) {
	got := ReportMarkdown(coinwatch.NewValuationReport(nil, coinwatch.NewTradeBook()))

	if !strings.Contains(got, "# Win/Loss Report") {
		t.Errorf("report lost its title:\n%s", got)
	}
	if strings.Contains(got, "## Purchases") {
		t.Errorf("empty report should not list purchases:\n%s", got)
	}
}

func TestQuotesMarkdown(t *testing.T) {
	book := coinwatch.NewTradeBook()
	book.Add("bitcoin",
		coinwatch.NewTrade(coinwatch.A(0.5), coinwatch.USD(9000), "2017-12-05"),
		coinwatch.NewTrade(coinwatch.A(0.25), coinwatch.USD(12000), "2018-01-10"),
	)
	book.Track("ethereum")

	quotes := []coinwatch.Quote{
		{ID: "bitcoin", PriceUSD: coinwatch.USD(10000)},
		{ID: "dogecoin", PriceUSD: coinwatch.USD(0.1)},
	}
	got := QuotesMarkdown(quotes, book)

	for _, want := range []string{
		"# Market Quotes",
		"bitcoin",
		"$10,000.00", // quote
		"0.75",       // held
		"$7,500.00",  // value
	} {
		if !strings.Contains(got, want) {
			t.Errorf("quotes do not mention %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "dogecoin") {
		t.Errorf("quotes mention an untracked coin:\n%s", got)
	}
}

func TestGlobalMarkdown(t *testing.T) {
	got := GlobalMarkdown(coinwatch.USD(795891394001.0), coinwatch.Percent(64.64))

	for _, want := range []string{
		"**Market**",
		"Total market cap",
		"$795,891,394,001.00",
		"Bitcoin dominance",
		"64.64%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("global metrics do not mention %q:\n%s", want, got)
		}
	}
}
