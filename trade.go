package coinwatch

// Trade is one recorded purchase of a coin: how much was bought, at what
// unit price, and when. Trades are loaded from the configuration file and
// never change afterwards.
type Trade struct {
	Amount Amount `yaml:"amount"`
	Price  Money  `yaml:"price"`
	Date   string `yaml:"date"`
}

// NewTrade records a purchase of amount coins at price dollars each on date.
// The date is kept as given, conventionally yyyy-mm-dd.
func NewTrade(amount Amount, price Money, date string) Trade {
	return Trade{Amount: amount, Price: price, Date: date}
}

// Cost returns the dollars spent on this purchase.
func (t Trade) Cost() Money { return t.Price.Mul(t.Amount) }
