package weather

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
	"unicode"
	"unicode/utf8"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Report — погода в том виде, в котором её ждёт виджет портала
type Report struct {
	City        string  `json:"city"`
	Temperature int     `json:"temperature"`
	FeelsLike   int     `json:"feels_like"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// UpstreamError — ошибка погодного API с его собственным статусом.
// Статус пробрасывается клиенту как есть.
type UpstreamError struct {
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("weather API error: %s", e.Status)
}

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// owmResponse — нужная часть ответа OpenWeatherMap
type owmResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current запрашивает текущую погоду. Портал российский, поэтому к городу
// всегда добавляется суффикс страны, единицы метрические, описание на русском.
func (cl *Client) Current(city string) (*Report, error) {
	params := url.Values{}
	params.Set("q", city+",RU")
	params.Set("appid", cl.APIKey)
	params.Set("units", "metric")
	params.Set("lang", "ru")

	resp, err := cl.HTTPClient.Get(cl.BaseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var data owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	report := &Report{
		City:        data.Name,
		Temperature: int(math.Round(data.Main.Temp)),
		FeelsLike:   int(math.Round(data.Main.FeelsLike)),
		Humidity:    data.Main.Humidity,
		WindSpeed:   data.Wind.Speed,
	}
	if len(data.Weather) > 0 {
		report.Description = capitalize(data.Weather[0].Description)
		report.Icon = data.Weather[0].Icon
	}
	return report, nil
}

// capitalize поднимает первую букву строки с учётом кириллицы
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
