package coinwatch

import "iter"

// TradeBook holds every tracked coin and its recorded purchases. Coins keep
// the order they were added in, which is the configuration order, because
// that order is part of how the report reads.
type TradeBook struct {
	coins []string
	index map[string][]Trade
}

// NewTradeBook returns a new empty trade book.
func NewTradeBook() *TradeBook {
	return &TradeBook{
		coins: make([]string, 0),
		index: make(map[string][]Trade),
	}
}

// Track declares a coin in the book, with no purchases yet. Tracking an
// already known coin does nothing.
func (b *TradeBook) Track(coin string) {
	if _, ok := b.index[coin]; ok {
		return
	}
	b.coins = append(b.coins, coin)
	b.index[coin] = nil
}

// Add records purchases of a coin, tracking it on first sight.
func (b *TradeBook) Add(coin string, trades ...Trade) {
	b.Track(coin)
	b.index[coin] = append(b.index[coin], trades...)
}

func (b *TradeBook) Has(coin string) bool {
	_, ok := b.index[coin]
	return ok
}

// Trades returns the recorded purchases of a coin in recording order, nil
// for an unknown coin.
func (b *TradeBook) Trades(coin string) []Trade { return b.index[coin] }

// Len returns the number of tracked coins.
func (b *TradeBook) Len() int { return len(b.coins) }

// Coins iterates over tracked coins in configuration order.
func (b *TradeBook) Coins() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, coin := range b.coins {
			if !yield(coin) {
				return
			}
		}
	}
}
