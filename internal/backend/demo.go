package backend

import "time"

// demoSnapshots rotate by wall-clock minute so the demo view changes over
// time without any network access.
var demoSnapshots = [3]WeatherInfo{
	{
		Description: "Clear",
		Temperature: 22.5,
		Humidity:    45,
		Icon:        "01d",
		WeatherCode: "100",
	},
	{
		Description: "Cloudy",
		Temperature: 18.3,
		Humidity:    65,
		Icon:        "03d",
		WeatherCode: "110",
	},
	{
		Description: "Light rain",
		Temperature: 15.8,
		Humidity:    78,
		Icon:        "10d",
		WeatherCode: "120",
	},
}

// DemoProvider serves fixed demo weather data, used as the fallback tier
// when the real fetch fails (and as the primary source in demo mode).
type DemoProvider struct {
	now func() time.Time
}

// NewDemoProvider creates a provider; now may be nil for wall-clock time.
func NewDemoProvider(now func() time.Time) *DemoProvider {
	if now == nil {
		now = time.Now
	}
	return &DemoProvider{now: now}
}

// Snapshot returns the demo record for the current minute.
func (p *DemoProvider) Snapshot() WeatherInfo {
	return demoSnapshots[p.now().Minute()%len(demoSnapshots)]
}
