package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
)

var ErrWeatherUnavailable = errors.New("failed to fetch weather data")

// Weather is the subset of current conditions used for disease risk.
type Weather struct {
	City              string
	TemperatureKelvin float64
	Humidity          float64
}

// WeatherProvider fetches current weather for a city.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (*Weather, error)
}

// OpenWeatherClient talks to the OpenWeatherMap current weather endpoint.
type OpenWeatherClient struct {
	client  *fasthttp.Client
	baseURL string
	apiKey  string
	timeout time.Duration
}

func NewOpenWeatherClient(baseURL, apiKey string, timeout time.Duration) *OpenWeatherClient {
	return &OpenWeatherClient{
		client: &fasthttp.Client{
			Name:                "ekrishi",
			MaxIdleConnDuration: time.Minute,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
	}
}

type owmResponse struct {
	Name string `json:"name"`
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
}

// CurrentWeather issues a single request bounded by the client timeout or the
// context deadline, whichever is sooner. There is no retry.
func (w *OpenWeatherClient) CurrentWeather(ctx context.Context, city string) (*Weather, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := w.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	endpoint, err := w.requestURL(city)
	if err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(endpoint)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := w.client.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: upstream status %d", ErrWeatherUnavailable, status)
	}

	var body owmResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrWeatherUnavailable, err)
	}
	if body.Main == nil {
		return nil, fmt.Errorf("%w: response has no main section", ErrWeatherUnavailable)
	}

	name := body.Name
	if name == "" {
		name = city
	}
	return &Weather{
		City:              name,
		TemperatureKelvin: body.Main.Temp,
		Humidity:          body.Main.Humidity,
	}, nil
}

func (w *OpenWeatherClient) requestURL(city string) (string, error) {
	u, err := url.Parse(w.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid weather base url: %w", err)
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("appid", w.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
