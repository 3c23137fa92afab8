// Package weather fetches current conditions from OpenWeather.
package weather

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"smartcrop/pkg/agronomy"
	"smartcrop/pkg/upstream"
)

var (
	ErrNotConfigured = errors.New("weather service is not configured")
	ErrFetch         = errors.New("failed to fetch weather data, check the location name")
)

type Conditions struct {
	Location    string          `json:"location"`
	Country     string          `json:"country,omitempty"`
	Temperature float64         `json:"temperature"`
	Humidity    float64         `json:"humidity"`
	Condition   string          `json:"condition"`
	Description string          `json:"description"`
	Season      agronomy.Season `json:"season"`
}

type Client struct {
	api     *upstream.Client
	baseURL string
	key     string
}

func NewClient(api *upstream.Client, baseURL, key string) *Client {
	return &Client{api: api, baseURL: strings.TrimRight(baseURL, "/"), key: key}
}

func (c *Client) Configured() bool { return c.key != "" }

// Current returns metric conditions for a free-text location. Season is left
// for the caller to fill.
func (c *Client) Current(ctx context.Context, location string) (*Conditions, error) {
	location = strings.TrimSpace(location)
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if location == "" {
		return nil, ErrFetch
	}
	var raw struct {
		Name string `json:"name"`
		Sys  struct {
			Country string `json:"country"`
		} `json:"sys"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
	}
	q := url.Values{"q": {location}, "units": {"metric"}, "appid": {c.key}}
	if err := c.api.GetJSON(ctx, c.baseURL+"/weather", q, nil, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	out := &Conditions{
		Location:    raw.Name,
		Country:     raw.Sys.Country,
		Temperature: raw.Main.Temp,
		Humidity:    raw.Main.Humidity,
	}
	if len(raw.Weather) > 0 {
		out.Condition = raw.Weather[0].Main
		out.Description = raw.Weather[0].Description
	}
	if out.Location == "" {
		out.Location = location
	}
	return out, nil
}
