// Package cmc fetches cryptocurrency prices from the CoinMarketCap public
// ticker, the unauthenticated v1 JSON API.
package cmc

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/c0debrain/coinwatch"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// DefaultURL is the base of the public API.
const DefaultURL = "https://api.coinmarketcap.com/v1/"

// Client queries the public ticker. The zero value is not usable, use
// NewClient.
type Client struct {
	// URL is the API base; swap it for a mirror or a test server.
	URL string
	// Limit caps how many quotes the feed returns, 0 for the whole list.
	Limit int

	client  *http.Client
	limiter *rate.Limiter
}

// NewClient returns a client of the public API. Requests are paced to stay
// within the ticker's advertised budget of 10 a minute.
func NewClient() *Client {
	return &Client{
		URL:     DefaultURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Every(6*time.Second), 1),
	}
}

// ticker is the wire shape of one feed entry. price_usd comes sometimes
// quoted, sometimes bare, and the decimal decoder accepts both; dead
// listings carry null and are dropped.
type ticker struct {
	ID       string           `json:"id"`
	PriceUSD *decimal.Decimal `json:"price_usd"`
}

// Ticker fetches the current price list, in feed order.
func (c *Client) Ticker(ctx context.Context) ([]coinwatch.Quote, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	addr := fmt.Sprintf("%sticker/?limit=%d", c.URL, c.Limit)
	var list []ticker
	if err := jwget(c.client, addr, &list); err != nil {
		return nil, fmt.Errorf("error fetching ticker: %w", err)
	}
	quotes := make([]coinwatch.Quote, 0, len(list))
	for _, t := range list {
		if t.PriceUSD == nil {
			continue
		}
		quotes = append(quotes, coinwatch.Quote{ID: t.ID, PriceUSD: coinwatch.USD(*t.PriceUSD)})
	}
	return quotes, nil
}

// GlobalMetrics is the market-wide snapshot served next to the ticker.
type GlobalMetrics struct {
	TotalMarketCapUSD coinwatch.Money
	BitcoinDominance  coinwatch.Percent
}

// Global fetches the market-wide figures.
func (c *Client) Global(ctx context.Context) (*GlobalMetrics, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	var jobj any
	if err := jwget(c.client, c.URL+"global/", &jobj); err != nil {
		return nil, fmt.Errorf("error fetching global metrics: %w", err)
	}
	totalCap, err := jfloat(jobj, "$.total_market_cap_usd")
	if err != nil {
		return nil, err
	}
	dominance, err := jfloat(jobj, "$.bitcoin_percentage_of_market_cap")
	if err != nil {
		return nil, err
	}
	return &GlobalMetrics{
		TotalMarketCapUSD: coinwatch.USD(totalCap),
		BitcoinDominance:  coinwatch.Percent(dominance),
	}, nil
}

// jfloat extracts a single number from a decoded JSON document.
func jfloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		// sometimes this kind of API returns the value as a string
		sval, ok := jval.(string)
		if !ok {
			return 0, fmt.Errorf("error parsing %q: not a number: %v", path, jval)
		}
		sval = strings.ReplaceAll(sval, ",", "")
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return 0, fmt.Errorf("error parsing %q: invalid number %q: %w", path, sval, err)
		}
	}
	return val, nil
}
