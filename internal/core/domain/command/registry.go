package command

import (
	"errors"
	"felix/internal/core/port"
	"slices"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

type Registry struct {
	commands map[string]port.Command
}

// Register adds the handler under its command name and every alias. An alias never replaces an
// already registered name.
func (r *Registry) Register(handler port.Command) {
	if r.commands == nil {
		r.commands = make(map[string]port.Command)
	}

	name := strings.ToLower(handler.GetCommand())
	log.Info().Str("handler", name).Strs("aliases", handler.GetAliases()).Msg("adding command handler to registry")
	r.commands[name] = handler

	for _, alias := range handler.GetAliases() {
		alias = strings.ToLower(alias)
		if existing, ok := r.commands[alias]; ok && existing != handler {
			log.Warn().Str("alias", alias).Str("handler", name).Msg("alias already taken, skipping")
			continue
		}
		r.commands[alias] = handler
	}
}

func (r *Registry) Get(command string) (port.Command, error) {
	log.Debug().Interface("command", command).Msg("fetching command handler from registry")

	if r.commands == nil {
		err := errors.New("can't fetch command, registry not initialized")
		return nil, err
	}

	handler, ok := r.commands[strings.ToLower(command)]
	if !ok {
		return nil, errors.New("command not found")
	}

	return handler, nil
}

// ListCommands returns the primary command names in alphabetical order, aliases are left out.
func (r *Registry) ListCommands() []string {
	keys := make([]string, 0, len(r.commands))

	for k, handler := range r.commands {
		if strings.EqualFold(k, handler.GetCommand()) {
			keys = append(keys, k)
		}
	}

	slices.Sort(keys)

	return keys
}

// ParseCommandArgs drops the first word and returns the rest of the text.
func ParseCommandArgs(args string) string {
	args = strings.TrimSpace(args)

	i := strings.IndexFunc(args, unicode.IsSpace)
	if i < 0 {
		return ""
	}

	return strings.TrimSpace(args[i:])
}

// ParseCommand returns the first word of the text in lower case.
func ParseCommand(args string) string {
	command := strings.Fields(args)
	if len(command) == 0 {
		return ""
	}

	return strings.ToLower(command[0])
}

// SplitArgs splits text on whitespace, a double quoted part stays one argument.
func SplitArgs(text string) []string {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		started bool
	)

	for _, r := range text {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case !quoted && (r == ' ' || r == '\t' || r == '\n'):
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}

	if started {
		args = append(args, current.String())
	}

	return args
}
