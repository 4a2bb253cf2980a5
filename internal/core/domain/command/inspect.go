package command

import (
	"bufio"
	"context"
	"embed"
	"errors"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"
	"time"
)

//go:embed *.go
var sources embed.FS

const (
	inspectLimit      = 1900
	zeroWidthSpace    = "\u200b"
	sourcePathAnchor  = "internal/"
	respondMethodName = "Respond"
)

var errSourceNotFound = errors.New("source not found")

// Inspect posts the source of a command handler with a link to the same lines in the repository.
type Inspect struct {
	registry port.CommandRegistry
	sender   port.TextSender
	repoURL  string
	command  string
}

func NewInspect(registry port.CommandRegistry, sender port.TextSender, repoURL, command string) *Inspect {
	return &Inspect{
		registry: registry,
		sender:   sender,
		repoURL:  strings.TrimSuffix(repoURL, "/"),
		command:  command,
	}
}

func (i *Inspect) GetCommand() string {
	return i.command
}

func (i *Inspect) GetAliases() []string {
	return nil
}

func (i *Inspect) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, i.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	name := ParseCommand(ParseCommandArgs(message.Text))
	if name == "" {
		return i.sender.NotifyAndReturnError(ctx, missingArgument("command_name"), message)
	}

	target, err := i.registry.Get(name)
	if err != nil {
		l.Debug().Str("target", name).Msg("no such command, ignoring")
		return nil
	}

	file, line, err := respondLocation(target)
	if err != nil {
		l.Debug().Err(err).Str("target", name).Msg("no source location")
		return nil
	}

	source, err := ExtractFunction(sources, path.Base(file), line)
	if err != nil {
		l.Debug().Err(err).Str("file", file).Msg("source not embedded")
		return nil
	}

	_, err = i.sender.SendMessageReply(ctx, message,
		fmt.Sprintf("<%s/blob/master/%s#L%d>\n", i.repoURL, RepoPath(file), line)+FormatSource(source))

	return err
}

// respondLocation returns the file and line where the Respond method of handler is declared.
func respondLocation(handler port.Command) (string, int, error) {
	method, ok := reflect.TypeOf(handler).MethodByName(respondMethodName)
	if !ok {
		return "", 0, errSourceNotFound
	}

	fn := runtime.FuncForPC(method.Func.Pointer())
	if fn == nil {
		return "", 0, errSourceNotFound
	}

	file, line := fn.FileLine(fn.Entry())

	return file, line, nil
}

// RepoPath cuts a compiled file path down to its path inside the repository.
func RepoPath(file string) string {
	file = strings.ReplaceAll(file, "\\", "/")
	if idx := strings.Index(file, sourcePathAnchor); idx >= 0 {
		return file[idx:]
	}

	return path.Base(file)
}

// ExtractFunction returns the lines of the function starting at line up to its closing brace.
func ExtractFunction(fsys embed.FS, name string, line int) (string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errSourceNotFound, err)
	}
	defer f.Close()

	var (
		lines []string
		n     int
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		n++
		if n < line {
			continue
		}

		lines = append(lines, scanner.Text())
		if scanner.Text() == "}" {
			return strings.Join(lines, "\n"), nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	if len(lines) == 0 {
		return "", errSourceNotFound
	}

	return strings.Join(lines, "\n"), nil
}

// FormatSource wraps source in a code block. Backticks are broken up so the source cannot close
// the block early.
func FormatSource(source string) string {
	sanitized := []rune(strings.ReplaceAll(source, "`", zeroWidthSpace+"`"))
	text := string(sanitized)
	if len(sanitized) > inspectLimit {
		text = string(sanitized[:inspectLimit]) + "\n[...]"
	}

	return "```go\n" + text + "\n```"
}
