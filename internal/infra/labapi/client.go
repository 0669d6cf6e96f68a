// Package labapi fetches QC runs from the laboratory information API.
package labapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"qc_review_bot/internal/domain/analyte"
)

// Client implements analyte.Source over the lab API's AnalyteReport endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ analyte.Source = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchMeasurements calls GET {base}/AnalyteReport/{analyteName}. Every
// failure, including a non-2xx status or an undecodable body, wraps
// analyte.ErrNetwork.
func (c *Client) FetchMeasurements(ctx context.Context, analyteName string) ([]analyte.RawRecord, error) {
	endpoint := c.baseURL + "/AnalyteReport/" + url.PathEscape(analyteName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", analyte.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", analyte.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: GET %s: %s", analyte.ErrNetwork, endpoint, resp.Status)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var records []analyte.RawRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", analyte.ErrNetwork, err)
	}
	return records, nil
}
