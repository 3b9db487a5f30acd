package statsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eventlane/internal/domain"
)

type hitBody struct {
	App       string `json:"app"`
	URI       string `json:"uri"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

type httpStatsClient struct {
	client  *http.Client
	baseURL string
}

// New returns a client for the statistics service at baseURL.
func New(client *http.Client, baseURL string) domain.StatsClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpStatsClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *httpStatsClient) RecordHit(ctx context.Context, hit domain.EndpointHit) error {
	body, err := json.Marshal(hitBody{
		App:       hit.App,
		URI:       hit.URI,
		IP:        hit.IP,
		Timestamp: domain.FormatDateTime(hit.Timestamp),
	})
	if err != nil {
		return fmt.Errorf("encode hit: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hit", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send hit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("stats service returned status: %d", resp.StatusCode)
	}
	return nil
}

func (c *httpStatsClient) GetStats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]domain.ViewStats, error) {
	params := url.Values{}
	params.Set("start", domain.FormatDateTime(start))
	params.Set("end", domain.FormatDateTime(end))
	for _, uri := range uris {
		params.Add("uris", uri)
	}
	params.Set("unique", strconv.FormatBool(unique))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats service returned status: %d", resp.StatusCode)
	}
	var stats []domain.ViewStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("decode stats response: %w", err)
	}
	return stats, nil
}
