package command

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockWeatherReporter struct {
	report   string
	location string
	options  string
}

func (m *MockWeatherReporter) Report(_ context.Context, location, options string) (string, error) {
	m.location = location
	m.options = options
	return m.report, nil
}

func TestParseWeatherRequest(t *testing.T) {
	type TestCase struct {
		description string
		args        []string
		want        WeatherRequest
		wantOptions string
	}

	testCases := []TestCase{
		{
			description: "location only",
			args:        []string{"berlin"},
			want:        WeatherRequest{Location: "berlin", Units: "m"},
			wantOptions: "m0qnTAF",
		},
		{
			description: "days and units",
			args:        []string{"muc", "2", "uM"},
			want:        WeatherRequest{Location: "muc", Days: 2, Units: "uM"},
			wantOptions: "uM2nTAF",
		},
		{
			description: "units without days",
			args:        []string{"muc", "u"},
			want:        WeatherRequest{Location: "muc", Units: "u"},
			wantOptions: "u0qnTAF",
		},
		{
			description: "unknown units become part of the location",
			args:        []string{"new", "york"},
			want:        WeatherRequest{Location: "new york", Units: "m"},
			wantOptions: "m0qnTAF",
		},
		{
			description: "png suffix is removed",
			args:        []string{"berlin.png"},
			want:        WeatherRequest{Location: "berlin", Units: "m"},
			wantOptions: "m0qnTAF",
		},
		{
			description: "days are clamped",
			args:        []string{"oslo", "9"},
			want:        WeatherRequest{Location: "oslo", Days: 3, Units: "m"},
			wantOptions: "m3nTAF",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			got, err := ParseWeatherRequest(testCase.args)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
			assert.Equal(t, testCase.wantOptions, got.Options())
		})
	}
}

func TestParseWeatherRequest_MissingLocation(t *testing.T) {
	_, err := ParseWeatherRequest(nil)
	require.EqualError(t, err, "location is a required argument that is missing.")
}

func report(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestFormatWeather(t *testing.T) {
	current := report("Weather report: berlin", "", "  \\  /   Sunny", "   .-.   20 °C", "   ―( )― ↗ 11 km/h",
		"    `-'  10 km", "   /  \\  0.0 mm", "")

	forecast := report("Weather report: berlin", "", "l2", "l3", "l4", "l5", "l6",
		"day one", "day two", "", "Location: Berlin, Germany", "")

	type TestCase struct {
		description string
		report      string
		req         WeatherRequest
		want        string
		wantOK      bool
	}

	testCases := []TestCase{
		{
			description: "too few lines",
			report:      report("a", "b", "c"),
			req:         WeatherRequest{Location: "berlin"},
			want:        "the weather api returned an invalid response, try again later",
			wantOK:      true,
		},
		{
			description: "current weather",
			report:      current,
			req:         WeatherRequest{Location: "berlin"},
			want:        "```\n" + current + "```",
			wantOK:      true,
		},
		{
			description: "unknown location is suppressed",
			report:      report("Sorry, we processed more than 1M requests", "", "", "", "", "", "", ""),
			req:         WeatherRequest{Location: "berlin"},
			wantOK:      false,
		},
		{
			description: "error on second line is suppressed",
			report:      report("Weather report", "ERROR: Unknown location", "", "", "", "", "", ""),
			req:         WeatherRequest{Location: "atlantis"},
			wantOK:      false,
		},
		{
			description: "second line is fine for the moon",
			report:      report("Moon", "  phase", "", "", "", "", "", ""),
			req:         WeatherRequest{Location: "moon@2024-01-01"},
			want:        "```\n" + report("Moon", "  phase", "", "", "", "", "", "") + "```",
			wantOK:      true,
		},
		{
			description: "forecast drops header and location lines",
			report:      forecast,
			req:         WeatherRequest{Location: "berlin", Days: 2},
			want:        "```\n" + report("Weather report: berlin", "day one", "day two", "") + "```",
			wantOK:      true,
		},
		{
			description: "too long",
			report:      report("W", "", "", "", "", "", "", strings.Repeat("x", 2000)),
			req:         WeatherRequest{Location: "berlin"},
			want:        "Sorry - response longer than 2000 characters",
			wantOK:      true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			got, ok := FormatWeather(testCase.report, testCase.req)
			assert.Equal(t, testCase.wantOK, ok)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestWeather_Respond(t *testing.T) {
	t.Run("invalid response yields only the provider error", func(t *testing.T) {
		sender := &MockReplier{}
		reporter := &MockWeatherReporter{report: "short\nreport"}

		err := NewWeather(reporter, sender, "weather").Respond(t.Context(), time.Second, newMessage(`weather "new york" 1 u`))
		require.NoError(t, err)

		assert.Equal(t, "new york", reporter.location)
		assert.Equal(t, "u1nTAF", reporter.options)
		assert.Equal(t, []string{"the weather api returned an invalid response, try again later"}, sender.Messages)
		assert.Empty(t, sender.Errors)
	})

	t.Run("suppressed report sends nothing", func(t *testing.T) {
		sender := &MockReplier{}
		reporter := &MockWeatherReporter{report: report("Sorry", "", "", "", "", "", "", "")}

		err := NewWeather(reporter, sender, "weather").Respond(t.Context(), time.Second, newMessage("weather xyz"))
		require.NoError(t, err)
		assert.Empty(t, sender.Messages)
	})
}
