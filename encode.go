package coinwatch

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// The trade book is persisted as a single YAML document:
//
//	coins:
//	  bitcoin:
//	    - amount: 0.5
//	      price: 9000
//	      date: 2017-12-05
//	  ethereum: []
//
// The coins mapping is walked as a raw node, not a Go map, because the
// order of the keys is the order of the report.

// StarterConfig is the trade book written on first run. It tracks the two
// usual suspects and shows how to record a purchase.
const StarterConfig = `# coinwatch trade book.
#
# Record each purchase under its coin id, the id the price feed uses
# (run 'cw quotes' to see them). For example:
#
# coins:
#   bitcoin:
#     - amount: 0.5
#       price: 9000
#       date: 2017-12-05
coins:
  bitcoin: []
  ethereum: []
`

// DecodeBook reads a trade book, preserving the coin order of the document.
func DecodeBook(r io.Reader) (*TradeBook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read trade book: %w", err)
	}
	var doc struct {
		Coins yaml.Node `yaml:"coins"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not parse trade book: %w", err)
	}

	book := NewTradeBook()
	if doc.Coins.IsZero() || doc.Coins.Tag == "!!null" {
		// no coins section yet, a valid empty book
		return book, nil
	}
	if doc.Coins.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("coins must be a mapping of coin id to purchase list")
	}
	for i := 0; i+1 < len(doc.Coins.Content); i += 2 {
		id, seq := doc.Coins.Content[i], doc.Coins.Content[i+1]
		var trades []Trade
		if err := seq.Decode(&trades); err != nil {
			return nil, fmt.Errorf("invalid purchases for %q: %w", id.Value, err)
		}
		book.Add(id.Value, trades...)
	}
	return book, nil
}

// EncodeBook writes the trade book in canonical form, keeping the coin
// order. Comments of the original document are not kept.
func EncodeBook(w io.Writer, book *TradeBook) error {
	coins := &yaml.Node{Kind: yaml.MappingNode}
	for coin := range book.Coins() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: coin}
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		if trades := book.Trades(coin); len(trades) > 0 {
			if err := seq.Encode(trades); err != nil {
				return fmt.Errorf("could not encode purchases for %q: %w", coin, err)
			}
		}
		coins.Content = append(coins.Content, key, seq)
	}
	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "coins"},
		coins,
	}}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode trade book: %w", err)
	}
	return enc.Close()
}
