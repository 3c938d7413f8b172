// File: internal/geo/geo.go
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"coursehub/internal/cache"

	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	defaultBaseURL = "https://ipinfo.io"
	cacheKeyPrefix = "geoip:"
	cacheTTL       = 24 * time.Hour
)

// Client 查詢 IP 的國家代碼
// ipinfo.io 的呼叫包在斷路器內，結果以 Redis 記憶化一天
type Client struct {
	baseURL string
	http    *http.Client
	cache   cache.Cache
	breaker *gobreaker.CircuitBreaker[string]
}

func NewClient(c cache.Cache) *Client {
	breaker := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "ipinfo",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
		cache:   c,
		breaker: breaker,
	}
}

type ipInfo struct {
	Country string `json:"country"`
}

// Country 回傳 IP 所屬國家代碼，快取命中時不打外部服務
func (c *Client) Country(ctx context.Context, ip string) (string, error) {
	// 快取未命中或故障都降級為直接查詢
	key := cacheKeyPrefix + ip
	if cached, err := c.cache.Get(ctx, key).Result(); err == nil && cached != "" {
		return cached, nil
	}

	country, err := c.breaker.Execute(func() (string, error) {
		return c.lookup(ctx, ip)
	})
	if err != nil {
		return "", err
	}

	c.cache.Set(ctx, key, country, cacheTTL)
	return country, nil
}

func (c *Client) lookup(ctx context.Context, ip string) (string, error) {
	url := fmt.Sprintf("%s/%s/json", c.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ipinfo 回應 %d", resp.StatusCode)
	}

	var info ipInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", err
	}
	if info.Country == "" {
		return "", fmt.Errorf("ipinfo 回應缺少 country 欄位")
	}
	return info.Country, nil
}
