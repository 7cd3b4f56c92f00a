package backend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeatherInfo_IconURL(t *testing.T) {
	tests := []struct {
		icon string
		want string
	}{
		{"01d", "https://openweathermap.org/img/wn/01d@2x.png"},
		{"13d", "https://openweathermap.org/img/wn/13d@2x.png"},
		{IconUnknown, ""},
		{IconError, ""},
	}
	for _, tt := range tests {
		w := WeatherInfo{Icon: tt.icon}
		assert.Equal(t, tt.want, w.IconURL(), "icon %q", tt.icon)
	}
}

func TestWeatherInfo_HasReading(t *testing.T) {
	assert.True(t, WeatherInfo{Icon: "01d"}.HasReading())
	assert.False(t, PlaceholderWeather().HasReading())
	assert.False(t, ErrorWeather().HasReading())
}

func TestErrorWeather(t *testing.T) {
	w := ErrorWeather()
	assert.Equal(t, WeatherErrorText, w.Description)
	assert.Equal(t, IconError, w.Icon)
	assert.Zero(t, w.Temperature)
	assert.Zero(t, w.Humidity)
}

func TestIconURLTemplate_Substitution(t *testing.T) {
	// The template is filled by direct substitution; the identifier ends up
	// verbatim in the URL.
	assert.Equal(t,
		"https://openweathermap.org/img/wn/XYZ@2x.png",
		fmt.Sprintf(IconURLTemplate, "XYZ"))
}
