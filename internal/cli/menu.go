package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// ErrExit is returned by an option to end the menu loop.
var ErrExit = errors.New("exit requested")

// Option is one numbered entry of the menu.
type Option interface {
	// Choice returns what the user types to pick it (e.g. "1").
	Choice() string
	Label() string
	Handle(ctx context.Context, s *Session) error
}

// Session is the line-based conversation with the user.
type Session struct {
	in    *bufio.Scanner
	out   io.Writer
	once  sync.Once
	lines chan line
}

type line struct {
	text string
	err  error
}

// Prompt prints label and reads one trimmed line. It returns io.EOF
// once the input is exhausted and ctx.Err() as soon as ctx is done,
// even while no line has arrived yet.
func (s *Session) Prompt(ctx context.Context, label string) (string, error) {
	s.once.Do(s.startReader)
	fmt.Fprint(s.out, label)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// startReader moves the blocking Scan calls off the caller's goroutine.
// The reader stays parked on Scan after a cancellation; the process is
// about to exit at that point.
func (s *Session) startReader() {
	s.lines = make(chan line)
	go func() {
		defer close(s.lines)
		for s.in.Scan() {
			s.lines <- line{text: s.in.Text()}
		}
		if err := s.in.Err(); err != nil {
			s.lines <- line{err: err}
		}
	}()
}

// Print writes text as-is.
func (s *Session) Print(text string) {
	fmt.Fprint(s.out, text)
}

// Menu routes each choice to the option registered for it.
type Menu struct {
	log     zerolog.Logger
	title   string
	session *Session
	options map[string]Option
	choices []string
}

// NewMenu creates an empty menu reading from in and writing to out.
func NewMenu(title string, in io.Reader, out io.Writer, baseLogger *zerolog.Logger) *Menu {
	return &Menu{
		log:     baseLogger.With().Str("component", "menu").Logger(),
		title:   title,
		session: &Session{in: bufio.NewScanner(in), out: out},
		options: make(map[string]Option),
	}
}

// RegisterOption adds an option. A later option with the same
// choice replaces the earlier one in place.
func (m *Menu) RegisterOption(opt Option) {
	choice := opt.Choice()
	if _, exists := m.options[choice]; !exists {
		m.choices = append(m.choices, choice)
	}
	m.options[choice] = opt
	m.log.Debug().Str("choice", choice).Str("label", opt.Label()).Msg("Registered menu option")
}

// Run shows the menu until an option returns ErrExit, the input
// ends, or ctx is cancelled. Option failures are printed and the
// loop continues.
func (m *Menu) Run(ctx context.Context) error {
	labels := make(map[string]string, len(m.options))
	for choice, opt := range m.options {
		labels[choice] = opt.Label()
	}
	text := NewBuilder().WithTitle(m.title).WithNumberedOptions(m.choices, labels).Build()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.session.Print(text)
		choice, err := m.session.Prompt(ctx, "Choose an option: ")
		if errors.Is(err, io.EOF) {
			m.log.Info().Msg("Input closed, leaving menu")
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			return fmt.Errorf("read choice: %w", err)
		}

		opt, ok := m.options[choice]
		if !ok {
			m.session.Print("Invalid option.\n")
			continue
		}

		log := m.log.With().Str("choice", choice).Logger()
		log.Debug().Msg("Routing to menu option")

		err = opt.Handle(ctx, m.session)
		switch {
		case errors.Is(err, ErrExit):
			return nil
		case errors.Is(err, io.EOF):
			log.Info().Msg("Input closed, leaving menu")
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			log.Error().Err(err).Msg("Menu option failed")
			m.session.Print(fmt.Sprintf("Error: %s\n", err))
		}
	}
}
