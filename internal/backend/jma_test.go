package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastPayload = `[
  {
    "timeSeries": [
      {"areas": [{"weathers": ["Cloudy"], "weatherCodes": ["110"]}]},
      {"areas": [{"pops": ["10", "20"]}]},
      {"areas": [{"temps": ["20.5", "28.1"]}]}
    ]
  },
  {"timeSeries": []}
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *JMAClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewJMAClient("130000", srv.Client(), zerolog.Nop())
	c.baseURL = srv.URL
	return c
}

func TestJMAClient_Fetch(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(forecastPayload))
	})

	info, err := c.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/130000.json", gotPath)
	assert.Equal(t, "Cloudy", info.Description)
	assert.Equal(t, "110", info.WeatherCode)
	assert.Equal(t, 20.5, info.Temperature)
	assert.Equal(t, defaultHumidity, info.Humidity)
	assert.Equal(t, "09d", info.Icon)
}

func TestJMAClient_Fetch_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestJMAClient_Fetch_EmptyPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := c.Fetch(context.Background())
	require.Error(t, err)
}

func TestJMAClient_Fetch_MalformedPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	})

	_, err := c.Fetch(context.Background())
	require.Error(t, err)
}

func TestNormalizeForecast_MissingSeries(t *testing.T) {
	info := normalizeForecast(forecastDocument{})

	assert.Equal(t, IconUnknown, info.Icon)
	assert.Equal(t, IconUnknown, info.Description)
	assert.Equal(t, "", info.WeatherCode)
	assert.Equal(t, 0.0, info.Temperature)
}

func TestNormalizeForecast_DescriptionFallsBackToCode(t *testing.T) {
	doc := forecastDocument{
		TimeSeries: []forecastSeries{
			{Areas: []forecastArea{{WeatherCodes: []string{"100"}}}},
		},
	}
	info := normalizeForecast(doc)

	assert.Equal(t, "Clear", info.Description)
	assert.Equal(t, "01d", info.Icon)
}

func TestNormalizeForecast_UnparseableTemperature(t *testing.T) {
	doc := forecastDocument{
		TimeSeries: []forecastSeries{
			{Areas: []forecastArea{{Weathers: []string{"Clear"}, WeatherCodes: []string{"100"}}}},
			{},
			{Areas: []forecastArea{{Temps: []string{"not a number"}}}},
		},
	}
	info := normalizeForecast(doc)

	assert.Equal(t, 0.0, info.Temperature)
}

func TestIconForCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"100", "01d"},
		{"101", "02d"},
		{"102", "03d"},
		{"103", "04d"},
		{"110", "09d"},
		{"117", "11d"},
		{"120", "13d"},
		{"999", "50d"},
		{"", IconUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, iconForCode(tt.code), "code %q", tt.code)
	}
}

func TestDescriptionForCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"100", "Clear"},
		{"110", "Cloudy"},
		{"120", "Rain"},
		{"130", "Snow"},
		{"181", "Thunderstorms"},
		{"999", IconUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, descriptionForCode(tt.code), "code %q", tt.code)
	}
}
