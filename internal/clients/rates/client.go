// Package rates fetches one-unit currency conversions from an external
// exchange-rates API.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"finview/internal/core"
	applog "finview/internal/log"
)

// Rate is a single watchlist entry of the homepage snapshot. Rate holds
// the formatted value, or the literal "Error" when the API answered
// with a non-success status for that currency.
type Rate struct {
	Currency string `json:"currency"`
	Rate     string `json:"rate"`
}

type Client struct {
	baseURL    string
	apiKey     string
	target     string
	httpClient *http.Client
	logger     *applog.Logger
}

func New(baseURL, apiKey, target string, logger *applog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		target:     target,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.WithComponent(applog.ComponentRates),
	}
}

type convertResponse struct {
	Result float64 `json:"result"`
}

// Convert performs a one-unit conversion to the target currency for
// each code in order, sequentially. A non-success status degrades that
// entry to the "Error" sentinel and the batch continues; a transport
// or decode failure fails the whole batch.
func (c *Client) Convert(ctx context.Context, currencies []string) ([]Rate, error) {
	out := make([]Rate, 0, len(currencies))
	for _, cur := range currencies {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/convert", nil)
		if err != nil {
			return nil, fmt.Errorf("%w: build request for %s: %v", core.ErrExternalAPI, cur, err)
		}
		q := url.Values{}
		q.Set("amount", "1")
		q.Set("from", cur)
		q.Set("to", c.target)
		req.URL.RawQuery = q.Encode()
		req.Header.Set("apikey", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: convert %s: %v", core.ErrExternalAPI, cur, err)
		}
		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			c.logger.Warn("rate lookup failed",
				applog.FieldCurrency, cur,
				applog.FieldStatus, resp.StatusCode,
			)
			out = append(out, Rate{Currency: cur, Rate: "Error"})
			continue
		}

		var body convertResponse
		err = json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: decode rate for %s: %v", core.ErrExternalAPI, cur, err)
		}
		out = append(out, Rate{Currency: cur, Rate: fmt.Sprintf("%.2f", body.Result)})
	}
	return out, nil
}
