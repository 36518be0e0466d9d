package coinwatch

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func TestDecodeBook(t *testing.T) {
	const doc = `# my coins
coins:
  bitcoin:
    - amount: 0.5
      price: 9000
      date: 2017-12-05
    - amount: "0.25"
      price: "12000.50"
      date: "2018-01-10"
  ethereum: []
`
	book, err := DecodeBook(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeBook returned an error: %v", err)
	}

	want := []string{"bitcoin", "ethereum"}
	if got := slices.Collect(book.Coins()); !slices.Equal(got, want) {
		t.Fatalf("incorrect coin order. Got: %v, want: %v", got, want)
	}

	trades := book.Trades("bitcoin")
	if len(trades) != 2 {
		t.Fatalf("Trades(%q) returned %d trades, want 2", "bitcoin", len(trades))
	}
	if !trades[0].Amount.Equal(A(0.5)) || !trades[0].Price.Equal(USD(9000)) || trades[0].Date != "2017-12-05" {
		t.Errorf("incorrect first trade. Got: %v", trades[0])
	}
	// quoting scalars must make no difference
	if !trades[1].Amount.Equal(A(0.25)) || !trades[1].Price.Equal(USD(12000.50)) || trades[1].Date != "2018-01-10" {
		t.Errorf("incorrect second trade. Got: %v", trades[1])
	}

	if got := book.Trades("ethereum"); len(got) != 0 {
		t.Errorf("Trades(%q) returned %d trades, want 0", "ethereum", len(got))
	}
}

// TestDecodeBook_KeyOrder checks that coins come out in document order, not
// sorted, whatever the order is.
func TestDecodeBook_KeyOrder(t *testing.T) {
	const doc = `coins:
  zcash: []
  bitcoin: []
  monero: []
`
	book, err := DecodeBook(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeBook returned an error: %v", err)
	}
	want := []string{"zcash", "bitcoin", "monero"}
	if got := slices.Collect(book.Coins()); !slices.Equal(got, want) {
		t.Errorf("incorrect coin order. Got: %v, want: %v", got, want)
	}
}

func TestDecodeBook_Empty(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"Empty Document", ""},
		{"Comment Only", "# nothing tracked yet\n"},
		{"Null Coins", "coins:\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			book, err := DecodeBook(strings.NewReader(tc.doc))
			if err != nil {
				t.Fatalf("DecodeBook returned an error: %v", err)
			}
			if book.Len() != 0 {
				t.Errorf("incorrect length. Got: %d, want: 0", book.Len())
			}
		})
	}
}

func TestDecodeBook_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"Coins As List", "coins:\n  - bitcoin\n"},
		{"Bad Amount", "coins:\n  bitcoin:\n    - amount: lots\n      price: 100\n      date: 2024-01-15\n"},
		{"Bad Price", "coins:\n  bitcoin:\n    - amount: 1\n      price: cheap\n      date: 2024-01-15\n"},
		{"Purchases As Scalar", "coins:\n  bitcoin: 42\n"},
		{"Not YAML", "coins: [unclosed\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeBook(strings.NewReader(tc.doc)); err == nil {
				t.Error("DecodeBook should have returned an error")
			}
		})
	}
}

// The starter configuration written on first run must of course load.
func TestStarterConfig(t *testing.T) {
	book, err := DecodeBook(strings.NewReader(StarterConfig))
	if err != nil {
		t.Fatalf("DecodeBook returned an error: %v", err)
	}
	want := []string{"bitcoin", "ethereum"}
	if got := slices.Collect(book.Coins()); !slices.Equal(got, want) {
		t.Errorf("incorrect coin order. Got: %v, want: %v", got, want)
	}
}

func TestEncodeBook(t *testing.T) {
	book := NewTradeBook()
	book.Add("bitcoin", NewTrade(A(0.5), USD(9000), "2017-12-05"))
	book.Track("ethereum")

	var buf bytes.Buffer
	if err := EncodeBook(&buf, book); err != nil {
		t.Fatalf("EncodeBook returned an error: %v", err)
	}

	want := `coins:
  bitcoin:
    - amount: 0.5
      price: 9000
      date: "2017-12-05"
  ethereum: []
`
	if got := buf.String(); got != want {
		t.Errorf("incorrect document.\nGot:\n%s\nwant:\n%s", got, want)
	}
}

func TestBookRoundTrip(t *testing.T) {
	book := NewTradeBook()
	book.Add("zcash", NewTrade(A(3), USD(45.70), "2024-03-20"))
	book.Add("bitcoin",
		NewTrade(A(0.5), USD(9000), "2017-12-05"),
		NewTrade(A(0.25), USD(12000), "2018-01-10"),
	)
	book.Track("dogecoin")

	var buf bytes.Buffer
	if err := EncodeBook(&buf, book); err != nil {
		t.Fatalf("EncodeBook returned an error: %v", err)
	}
	decoded, err := DecodeBook(&buf)
	if err != nil {
		t.Fatalf("DecodeBook returned an error: %v", err)
	}

	if got, want := slices.Collect(decoded.Coins()), slices.Collect(book.Coins()); !slices.Equal(got, want) {
		t.Fatalf("incorrect coin order. Got: %v, want: %v", got, want)
	}
	for coin := range book.Coins() {
		trades, decodedTrades := book.Trades(coin), decoded.Trades(coin)
		if len(trades) != len(decodedTrades) {
			t.Fatalf("incorrect trade count for %q. Got: %d, want: %d", coin, len(decodedTrades), len(trades))
		}
		for i := range trades {
			a, b := trades[i], decodedTrades[i]
			if !a.Amount.Equal(b.Amount) || !a.Price.Equal(b.Price) || a.Date != b.Date {
				t.Errorf("incorrect trade %d for %q. Got: %v, want: %v", i, coin, b, a)
			}
		}
	}
}
