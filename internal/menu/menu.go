// Package menu implements the interactive text front-end over the same
// services as the HTTP API.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SscSPs/lending_catalog/internal/apperrors"
	portssvc "github.com/SscSPs/lending_catalog/internal/core/ports/services"
	"github.com/SscSPs/lending_catalog/internal/middleware"
)

// Menu drives the text front-end. It reads one answer per line from in and
// writes screens to out.
type Menu struct {
	services *portssvc.ServiceContainer
	in       *bufio.Scanner
	out      io.Writer
	styles   styles
	pause    bool
	eof      bool
	logger   *slog.Logger
}

// Option configures a Menu.
type Option func(*Menu)

// WithPause makes the menu wait for Enter after each listing. Use it when
// the input is a terminal.
func WithPause(pause bool) Option {
	return func(m *Menu) {
		m.pause = pause
	}
}

// WithLogger sets the logger used for unexpected failures.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) {
		m.logger = logger
	}
}

// New creates a Menu over the given services.
func New(services *portssvc.ServiceContainer, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		services: services,
		in:       bufio.NewScanner(in),
		out:      out,
		styles:   newStyles(out),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the main menu until the user quits or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	ctx = middleware.WithLogger(ctx, m.logger)

	for {
		choice, ok := m.choose("Lending catalog", []string{
			"Members",
			"Items",
			"Loans",
			"Statistics",
			"Quit",
		})
		if !ok {
			return nil
		}

		switch choice {
		case 1:
			m.loop(ctx, "Members", memberActions(m))
		case 2:
			m.loop(ctx, "Items", itemActions(m))
		case 3:
			m.loop(ctx, "Loans", loanActions(m))
		case 4:
			m.loop(ctx, "Statistics", statsActions(m))
		case 5:
			m.println("Goodbye!")
			return nil
		}

		if m.done() {
			return nil
		}
	}
}

// action is one entry of a sub-menu.
type action struct {
	label string
	run   func(ctx context.Context)
}

// loop shows a sub-menu until the user picks the trailing "Back" entry.
func (m *Menu) loop(ctx context.Context, title string, actions []action) {
	labels := make([]string, 0, len(actions)+1)
	for _, a := range actions {
		labels = append(labels, a.label)
	}
	labels = append(labels, "Back to main menu")

	for {
		choice, ok := m.choose(title, labels)
		if !ok || choice == len(labels) {
			return
		}
		actions[choice-1].run(ctx)
		if m.done() {
			return
		}
	}
}

// choose prints a numbered menu and reads a choice. It re-prompts on an
// invalid answer and reports false once the input is exhausted.
func (m *Menu) choose(title string, options []string) (int, bool) {
	for {
		m.println("")
		m.println(m.styles.title.Render(title))
		for i, opt := range options {
			m.printf("  %d. %s\n", i+1, opt)
		}

		answer, ok := m.ask("Choice")
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(options) {
			m.warn(fmt.Sprintf("Choose a number between 1 and %d", len(options)))
			continue
		}
		return n, true
	}
}

// ask prints label and returns the trimmed next line.
func (m *Menu) ask(label string) (string, bool) {
	m.printf("%s: ", m.styles.prompt.Render(label))
	if !m.in.Scan() {
		m.eof = true
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// askDefault is ask with a current value kept on an empty answer.
func (m *Menu) askDefault(label, current string) (string, bool) {
	answer, ok := m.ask(fmt.Sprintf("%s [%s]", label, current))
	if !ok {
		return "", false
	}
	if answer == "" {
		return current, true
	}
	return answer, true
}

// askID reads a positive numeric id.
func (m *Menu) askID(label string) (int64, bool) {
	answer, ok := m.ask(label)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(answer, 10, 64)
	if err != nil || id <= 0 {
		m.fail(apperrors.NewValidationError("id", "must be a positive integer"))
		return 0, false
	}
	return id, true
}

// askOptionalInt reads an integer; an empty answer yields nil.
func (m *Menu) askOptionalInt(label, field string) (*int, bool) {
	answer, ok := m.ask(label)
	if !ok || answer == "" {
		return nil, ok
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		m.fail(apperrors.NewValidationError(field, "must be a number"))
		return nil, false
	}
	return &n, true
}

// confirm asks a yes/no question. Only o, oui, y and yes count as yes.
func (m *Menu) confirm(question string) bool {
	answer, ok := m.ask(question + " (y/n)")
	if !ok {
		return false
	}
	switch strings.ToLower(answer) {
	case "o", "oui", "y", "yes":
		return true
	default:
		return false
	}
}

// wait blocks on Enter when pausing is enabled.
func (m *Menu) wait() {
	if !m.pause {
		return
	}
	m.printf("\n%s", m.styles.muted.Render("Press Enter to continue..."))
	if !m.in.Scan() {
		m.eof = true
	}
}

// done reports whether the input has been exhausted.
func (m *Menu) done() bool {
	return m.eof
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) success(msg string) {
	m.println(m.styles.success.Render("✓ " + msg))
}

func (m *Menu) warn(msg string) {
	m.println(m.styles.failure.Render("✗ " + msg))
}

// fail prints err. Storage failures are logged and shown without detail.
func (m *Menu) fail(err error) {
	appErr, ok := apperrors.As(err)
	if !ok || appErr.Kind == apperrors.KindStorage {
		m.logger.Error("Menu action failed", slog.String("error", err.Error()))
		m.warn("Unexpected error, see the logs")
		return
	}
	m.warn(appErr.Message)
}
