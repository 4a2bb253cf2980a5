package command

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxForecastDays     = 3
	minReportLines      = 8
	forecastHeaderLines = 7
	weatherMessageLimit = 2000

	weatherInvalidResponse = "the weather api returned an invalid response, try again later"
	weatherTooLong         = "Sorry - response longer than 2000 characters"
)

var weatherUnits = []string{"m", "u", "mM", "uM"}

type Weather struct {
	reporter port.WeatherReporter
	sender   port.TextSender
	command  string
}

func NewWeather(reporter port.WeatherReporter, sender port.TextSender, command string) *Weather {
	return &Weather{reporter: reporter, sender: sender, command: command}
}

func (w *Weather) GetCommand() string {
	return w.command
}

func (w *Weather) GetAliases() []string {
	return nil
}

// WeatherRequest is the parsed argument list of the weather command.
type WeatherRequest struct {
	Location string
	Days     int
	Units    string
}

// Moon reports whether the moon phase was requested, its report has a different layout.
func (r WeatherRequest) Moon() bool {
	return strings.HasPrefix(r.Location, "moon")
}

// Options renders the query string understood by the weather service.
func (r WeatherRequest) Options() string {
	quiet := ""
	if r.Days == 0 {
		quiet = "q"
	}

	return r.Units + strconv.Itoa(r.Days) + quiet + "nTAF"
}

// ParseWeatherRequest reads "location [days] [units]". An unknown units token is taken as part
// of the location.
func ParseWeatherRequest(args []string) (WeatherRequest, error) {
	if len(args) == 0 {
		return WeatherRequest{}, missingArgument("location")
	}

	req := WeatherRequest{Location: args[0], Units: "m"}
	rest := args[1:]

	if len(rest) > 0 {
		if days, err := strconv.Atoi(rest[0]); err == nil {
			req.Days = min(max(days, 0), maxForecastDays)
			rest = rest[1:]
		}
	}

	if len(rest) > 0 {
		if slices.Contains(weatherUnits, rest[0]) {
			req.Units = rest[0]
		} else {
			req.Location = req.Location + " " + rest[0]
		}
	}

	req.Location = strings.ReplaceAll(req.Location, ".png", "")

	return req, nil
}

func (w *Weather) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, w.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := ParseWeatherRequest(SplitArgs(ParseCommandArgs(message.Text)))
	if err != nil {
		return w.sender.NotifyAndReturnError(ctx, err, message)
	}

	report, err := w.reporter.Report(ctx, req.Location, req.Options())
	if err != nil {
		return w.sender.NotifyAndReturnError(ctx, fmt.Errorf("failed to fetch weather: %w", err), message)
	}

	reply, ok := FormatWeather(report, req)
	if !ok {
		l.Debug().Str("location", req.Location).Msg("weather report suppressed")
		return nil
	}

	_, err = w.sender.SendMessageReply(ctx, message, reply)

	return err
}

// FormatWeather turns a raw report into a code block. ok is false when the report must not be
// answered at all: an unknown location, or a second line that carries an error text.
func FormatWeather(report string, req WeatherRequest) (string, bool) {
	lines := strings.Split(report, "\n")
	if len(lines) < minReportLines {
		return weatherInvalidResponse, true
	}

	if strings.Contains(lines[0], "Sorry") || (lines[1] != "" && !req.Moon()) {
		return "", false
	}

	if req.Days > 0 {
		lines = append([]string{lines[0]}, lines[forecastHeaderLines:]...)
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		if len(lines) > 0 && strings.HasPrefix(lines[len(lines)-1], "Location") {
			lines = lines[:len(lines)-1]
		}
	}

	block := "```\n" + strings.Join(lines, "\n") + "```"
	if utf8.RuneCountInString(block) > weatherMessageLimit {
		return weatherTooLong, true
	}

	return block, true
}
