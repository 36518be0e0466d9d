package coinwatch

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Money represents a US dollar value. The whole program quotes in USD, the
// currency the public ticker reports.
type Money struct {
	value decimal.Decimal
}

func USD[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseUSD reads a dollar value from its decimal representation.
func ParseUSD(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid dollar value %q: %w", s, err)
	}
	return Money{value: d}, nil
}

// String returns the value formatted as dollars and cents, e.g. "$1,234.56".
func (m Money) String() string {
	cur := money.New(0, money.USD).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(n Amount) Money       { return Money{value: m.value.Mul(n.value)} }
func (m Money) Decimal() decimal.Decimal { return m.value }

// PercentOf returns m as a percentage of n: 100 means m equals n. When n is
// zero the result is 0, the degenerate no-cost-basis case.
func (m Money) PercentOf(n Money) Percent {
	if n.value.IsZero() {
		return 0
	}
	return Percent(m.value.Div(n.value).InexactFloat64() * 100)
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// UnmarshalYAML coerces the scalar to a decimal, so malformed numbers are
// rejected once at load time.
func (m *Money) UnmarshalYAML(node *yaml.Node) error {
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("invalid dollar value %q: %w", node.Value, err)
	}
	m.value = d
	return nil
}

// MarshalYAML emits the value as a bare number.
func (m Money) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: m.value.String()}, nil
}
