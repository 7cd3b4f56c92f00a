package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"deskclock/internal/jsonutil"

	"github.com/rs/zerolog"
)

// DefaultAreaCode is the JMA forecast area for Tokyo.
const DefaultAreaCode = "130000"

const jmaBaseURL = "https://www.jma.go.jp/bosai/forecast/data/forecast"

// The JMA feed carries no humidity; report a fixed default.
const defaultHumidity = 50

// JMAClient fetches the Japan Meteorological Agency forecast feed for a
// single area and normalizes it into a WeatherInfo snapshot.
type JMAClient struct {
	baseURL  string
	areaCode string
	client   *http.Client
	log      zerolog.Logger
}

// NewJMAClient creates a client for the given area code (e.g. "130000" for
// Tokyo, "400000" for Fukuoka).
func NewJMAClient(areaCode string, client *http.Client, log zerolog.Logger) *JMAClient {
	if areaCode == "" {
		areaCode = DefaultAreaCode
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &JMAClient{
		baseURL:  jmaBaseURL,
		areaCode: areaCode,
		client:   client,
		log:      log,
	}
}

// forecastDocument mirrors the slice of the JMA payload we consume: the
// first document's time series, where series 0 carries weather text/codes
// and series 2 carries temperatures.
type forecastDocument struct {
	TimeSeries []forecastSeries `json:"timeSeries"`
}

type forecastSeries struct {
	Areas []forecastArea `json:"areas"`
}

type forecastArea struct {
	Weathers     []string `json:"weathers"`
	WeatherCodes []string `json:"weatherCodes"`
	Temps        []string `json:"temps"`
}

// Fetch retrieves and parses the forecast for the configured area.
func (c *JMAClient) Fetch(ctx context.Context) (WeatherInfo, error) {
	url := fmt.Sprintf("%s/%s.json", c.baseURL, c.areaCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return WeatherInfo{}, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return WeatherInfo{}, fmt.Errorf("jma forecast request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return WeatherInfo{}, fmt.Errorf("jma forecast: unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return WeatherInfo{}, fmt.Errorf("jma forecast read: %w", err)
	}

	docs, err := jsonutil.UnmarshalArray[forecastDocument](body, "jma forecast")
	if err != nil {
		return WeatherInfo{}, err
	}
	info := normalizeForecast(docs[0])
	c.log.Debug().
		Str("area", c.areaCode).
		Str("code", info.WeatherCode).
		Float64("temperature", info.Temperature).
		Msg("weather fetched")
	return info, nil
}

// normalizeForecast converts the raw document into a display snapshot.
// Missing fields degrade to sentinels rather than failing the whole fetch.
func normalizeForecast(doc forecastDocument) WeatherInfo {
	weatherArea := seriesArea(doc, 0)
	tempArea := seriesArea(doc, 2)

	code := firstString(weatherArea.WeatherCodes)
	description := firstString(weatherArea.Weathers)
	if description == "" {
		description = descriptionForCode(code)
	}

	temperature := 0.0
	if t := firstString(tempArea.Temps); t != "" {
		if parsed, err := strconv.ParseFloat(t, 64); err == nil {
			temperature = parsed
		}
	}

	return WeatherInfo{
		Description: description,
		Temperature: temperature,
		Humidity:    defaultHumidity,
		Icon:        iconForCode(code),
		WeatherCode: code,
	}
}

func seriesArea(doc forecastDocument, i int) forecastArea {
	if i >= len(doc.TimeSeries) || len(doc.TimeSeries[i].Areas) == 0 {
		return forecastArea{}
	}
	return doc.TimeSeries[i].Areas[0]
}

func firstString(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// iconForCode maps JMA weather codes onto OpenWeatherMap icon identifiers,
// which is what the view's icon URL template expects.
func iconForCode(code string) string {
	switch code {
	case "100", "123", "124", "130", "131":
		return "01d"
	case "101", "132", "140", "170":
		return "02d"
	case "102", "104", "115", "116", "141", "142":
		return "03d"
	case "103", "106", "107", "108", "128", "143", "150":
		return "04d"
	case "110", "111", "112", "113", "114", "118", "119", "125",
		"126", "127", "153", "154", "155":
		return "09d"
	case "117", "181":
		return "11d"
	case "120", "121", "122", "156", "157", "160":
		return "13d"
	case "":
		return IconUnknown
	default:
		return "50d"
	}
}

// descriptionForCode translates a JMA weather code into text, used when the
// feed omits the weather description.
func descriptionForCode(code string) string {
	switch code {
	case "100", "140":
		return "Clear"
	case "101", "141":
		return "Partly cloudy"
	case "102", "142":
		return "Clear, occasional rain"
	case "103":
		return "Clear with showers"
	case "104":
		return "Clear, occasional snow"
	case "105":
		return "Clear with snow showers"
	case "106", "107":
		return "Clear with rain or snow"
	case "108":
		return "Clear with thunderstorms"
	case "110", "111", "150":
		return "Cloudy"
	case "112", "113":
		return "Cloudy with rain"
	case "114", "115":
		return "Cloudy with snow"
	case "116", "117":
		return "Cloudy with rain or snow"
	case "118", "119":
		return "Cloudy with thunderstorms"
	case "120", "121", "122", "160":
		return "Rain"
	case "123", "124":
		return "Rain with snow"
	case "125", "126", "127":
		return "Rain with thunderstorms"
	case "130", "131", "132", "170":
		return "Snow"
	case "128":
		return "Snow with thunderstorms"
	case "181":
		return "Thunderstorms"
	default:
		return IconUnknown
	}
}
