// Package stocks fetches latest share prices from an external
// market-data API.
package stocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"finview/internal/core"
	applog "finview/internal/log"
)

// Price is a single watchlist entry of the homepage snapshot.
type Price struct {
	Stock string `json:"stock"`
	Price string `json:"price"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *applog.Logger
}

func New(baseURL, apiKey string, logger *applog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.WithComponent(applog.ComponentStocks),
	}
}

type profileEntry struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// Prices fetches the latest price for each ticker in order,
// sequentially. Unlike the currency client there is no per-entry
// degradation: any HTTP failure or empty response body aborts the
// whole batch with no partial results.
func (c *Client) Prices(ctx context.Context, tickers []string) ([]Price, error) {
	out := make([]Price, 0, len(tickers))
	for _, ticker := range tickers {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			fmt.Sprintf("%s/%s?apikey=%s", c.baseURL, ticker, c.apiKey), nil)
		if err != nil {
			return nil, fmt.Errorf("%w: build request for %s: %v", core.ErrExternalAPI, ticker, err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: quote %s: %v", core.ErrExternalAPI, ticker, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			c.logger.Error("stock lookup failed",
				applog.FieldTicker, ticker,
				applog.FieldStatus, resp.StatusCode,
			)
			return nil, fmt.Errorf("%w: quote %s: status %d", core.ErrExternalAPI, ticker, resp.StatusCode)
		}

		var entries []profileEntry
		err = json.NewDecoder(resp.Body).Decode(&entries)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: decode quote for %s: %v", core.ErrExternalAPI, ticker, err)
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("%w: empty quote for %s", core.ErrExternalAPI, ticker)
		}
		out = append(out, Price{Stock: ticker, Price: fmt.Sprintf("%.2f", entries[0].Price)})
	}
	return out, nil
}
