package command

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"fmt"
	"runtime"
	"runtime/debug"
	"runtime/metrics"
	"time"
)

// Debug reports runtime statistics and the state of the status code cache.
type Debug struct {
	textSender port.TextSender
	cache      port.StatusCodes
	command    string
}

func NewDebug(sender port.TextSender, cache port.StatusCodes, command string) *Debug {
	return &Debug{textSender: sender, cache: cache, command: command}
}

func (d *Debug) GetCommand() string {
	return d.command
}

func (d *Debug) GetAliases() []string {
	return nil
}

const kb = 1024
const debugTemplate = "```\n" + `allocated mem: %d KB
goroutines running: %d
heap: %d KB
stack: %d KB
compiled with %s for %s-%s
status cats loaded: %t
status dogs loaded: %t
joke categories loaded: %t
` + "```"
const metricCount = 3

func (d *Debug) Respond(ctx context.Context, _ time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, d.command, message)

	data := make([]metrics.Sample, metricCount)
	data[0] = metrics.Sample{Name: "/memory/classes/heap/objects:bytes"}
	data[1] = metrics.Sample{Name: "/memory/classes/heap/stacks:bytes"}
	data[2] = metrics.Sample{Name: "/memory/classes/total:bytes"}

	metrics.Read(data)

	for _, sample := range data {
		l.Debug().Str("name", sample.Name).Msgf("%d", sample.Value.Uint64())
	}

	l.Info().Msg("handling request")

	var goos, goarch string
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "GOOS":
				goos = setting.Value
			case "GOARCH":
				goarch = setting.Value
			}
		}
	}

	_, catErr := d.cache.CatCodes()
	_, dogErr := d.cache.DogCodes()
	_, chuckErr := d.cache.ChuckCategories()

	_, err := d.textSender.SendMessageReply(ctx, message,
		fmt.Sprintf(
			debugTemplate,
			data[2].Value.Uint64()/kb,
			runtime.NumGoroutine(),
			data[0].Value.Uint64()/kb,
			data[1].Value.Uint64()/kb,
			runtime.Version(), goos, goarch,
			catErr == nil, dogErr == nil, chuckErr == nil,
		))
	if err != nil {
		return err
	}

	return nil
}
