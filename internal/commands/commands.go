// Package commands exposes the operations the UI may call by name.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/five82/tally/internal/facts"
)

// Command names accepted by Invoke.
const (
	CommandGreet         = "greet"
	CommandGetRandomData = "get_random_data"
)

// ErrUnknownCommand is returned by Invoke for unregistered names.
var ErrUnknownCommand = errors.New("unknown command")

// Handler runs one command with its JSON-encoded arguments.
type Handler func(ctx context.Context, args json.RawMessage) (string, error)

// Service is the command layer. It is safe for concurrent use after New.
type Service struct {
	fetcher  facts.Fetcher
	handlers map[string]Handler
}

// Greet formats the greeting for name.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}

// New builds a Service that fetches random data through fetcher.
func New(fetcher facts.Fetcher) *Service {
	s := &Service{fetcher: fetcher}
	s.handlers = map[string]Handler{
		CommandGreet:         s.invokeGreet,
		CommandGetRandomData: s.invokeRandomData,
	}
	return s
}

// RandomData returns a display string for one fact, or an error whose message
// is meant to be displayed as-is.
func (s *Service) RandomData(ctx context.Context) (string, error) {
	if s == nil || s.fetcher == nil {
		return "", fmt.Errorf("no fetcher configured")
	}
	return s.fetcher.RandomData(ctx)
}

// Invoke dispatches a command by name.
func (s *Service) Invoke(ctx context.Context, name string, args json.RawMessage) (string, error) {
	h, ok := s.handlers[name]
	if !ok {
		return "", fmt.Errorf("%w: %q (known: %s)", ErrUnknownCommand, name, strings.Join(s.Names(), ", "))
	}
	return h(ctx, args)
}

// Names lists the registered command names in sorted order.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type greetArgs struct {
	Name string `json:"name"`
}

func (s *Service) invokeGreet(_ context.Context, args json.RawMessage) (string, error) {
	var in greetArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &in); err != nil {
			return "", fmt.Errorf("decode greet args: %w", err)
		}
	}
	return Greet(in.Name), nil
}

func (s *Service) invokeRandomData(ctx context.Context, _ json.RawMessage) (string, error) {
	return s.RandomData(ctx)
}
