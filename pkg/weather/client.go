package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrMissingAPIKey = errors.New("未配置 API key")
	ErrBadAPIKey     = errors.New("API key 无效")
	ErrCityNotFound  = errors.New("城市不存在")
)

// Report 一次天气查询的结果
type Report struct {
	City        string
	Country     string
	Temperature float64
	FeelsLike   float64
	Humidity    int
	Description string
	WindSpeed   float64
	FromCache   bool
}

// Client OpenWeatherMap 当前天气接口的客户端
type Client struct {
	baseURL string
	apiKey  string
	units   string
	cache   *Cache
	httpc   *http.Client
	log     *zerolog.Logger
}

func NewClient(baseURL, apiKey, units string, log *zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		units:   units,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// WithCache 启用查询缓存
func (c *Client) WithCache(cache *Cache) *Client {
	c.cache = cache
	return c
}

// openweathermap 返回的 JSON 中需要的字段
type apiResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Fetch 查询城市当前天气，优先命中缓存
func (c *Client) Fetch(ctx context.Context, city string) (*Report, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	if c.cache != nil {
		report, ok, err := c.cache.Get(city)
		if err != nil {
			c.log.Warn().Err(err).Str("city", city).Msg("读取缓存失败，回退到接口查询")
		} else if ok {
			c.log.Debug().Str("city", city).Msg("命中天气缓存")
			report.FromCache = true
			return report, nil
		}
	}

	report, err := c.fetchRemote(ctx, city)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Put(report); err != nil {
			c.log.Warn().Err(err).Str("city", city).Msg("写入缓存失败")
		}
	}

	return report, nil
}

func (c *Client) fetchRemote(ctx context.Context, city string) (*Report, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", c.units)

	requestURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("构建请求失败: %w", err)
	}

	c.log.Debug().Str("city", city).Msg("请求天气接口")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求天气接口失败: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("%w (HTTP %d)", ErrBadAPIKey, resp.StatusCode)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrCityNotFound, city)
	default:
		return nil, fmt.Errorf("天气接口返回异常状态: HTTP %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}

	report := &Report{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		report.Description = payload.Weather[0].Description
	}

	return report, nil
}
