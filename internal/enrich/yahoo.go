package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shanehull/icchain/internal/model"
)

const (
	DefaultYahooURL = "https://query2.finance.yahoo.com"
	yahooSearchPath = "/v1/finance/search"
)

var ErrNoQuote = errors.New("no quote found")

type yahooSearchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		Exchange  string `json:"exchange"`
		ExchDisp  string `json:"exchDisp"`
		QuoteType string `json:"quoteType"`
	} `json:"quotes"`
}

// YahooClient searches Yahoo Finance for a ticker by company name.
type YahooClient struct {
	http   *resty.Client
	logger *slog.Logger
}

func NewYahooClient(baseURL string, timeout time.Duration, logger *slog.Logger) *YahooClient {
	if baseURL == "" {
		baseURL = DefaultYahooURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetHeader("accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &YahooClient{http: client, logger: logger}
}

func (c *YahooClient) Lookup(ctx context.Context, name string) (model.ForeignMapping, error) {
	var out yahooSearchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":           name,
			"quotesCount": "1",
			"newsCount":   "0",
		}).
		SetResult(&out).
		Get(yahooSearchPath)
	if err != nil {
		return model.ForeignMapping{}, fmt.Errorf("yahoo search %q: %w", name, err)
	}
	if resp.IsError() {
		return model.ForeignMapping{}, fmt.Errorf("yahoo search %q: status %d", name, resp.StatusCode())
	}

	for _, q := range out.Quotes {
		if q.Symbol == "" {
			continue
		}
		exchange := q.ExchDisp
		if exchange == "" {
			exchange = q.Exchange
		}
		c.logger.Debug("Yahoo quote found", "name", name, "symbol", q.Symbol, "exchange", exchange)
		return model.ForeignMapping{Name: name, Symbol: q.Symbol, Exchange: exchange}, nil
	}
	return model.ForeignMapping{}, ErrNoQuote
}
