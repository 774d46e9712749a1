// Package console is the interactive terminal front end: a welcome menu, then a
// dashboard for the logged-in account.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/onlinebanking/pkg/domain"
	accountsvc "github.com/amirasaad/onlinebanking/pkg/service/account"
	"github.com/amirasaad/onlinebanking/pkg/service/auth"
	"github.com/amirasaad/onlinebanking/pkg/statement"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// errQuit ends the session loop: the user chose to exit or input ran out.
var errQuit = errors.New("quit")

type palette struct {
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	credit  *color.Color
	debit   *color.Color
	muted   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		success: color.New(color.FgGreen, color.Bold),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
		credit:  color.New(color.FgGreen),
		debit:   color.New(color.FgRed),
		muted:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.success, p.warn, p.fail, p.credit, p.debit, p.muted} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Border(lipgloss.DoubleBorder()).
	BorderForeground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}).
	Padding(0, 2)

// Console drives the menus over a pair of streams.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	auth     *auth.Service
	accounts *accountsvc.Service
	logger   *slog.Logger
	colors   palette
	now      func() time.Time

	readSecret      func() (string, error)
	statementDir    string
	statementFormat statement.Format
}

// Option configures a Console.
type Option func(*Console)

// WithColor turns ANSI colors on or off. Colors are off by default.
func WithColor(enabled bool) Option {
	return func(c *Console) { c.colors = newPalette(enabled) }
}

// WithTerminal reads passwords from the terminal fd without echo.
func WithTerminal(fd int) Option {
	return func(c *Console) {
		c.readSecret = func() (string, error) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(c.out)
			return string(b), err
		}
	}
}

// WithStatements sets where and in which format statements are exported.
func WithStatements(dir string, format statement.Format) Option {
	return func(c *Console) {
		c.statementDir = dir
		c.statementFormat = format
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) { c.logger = logger }
}

// WithClock sets the time source used for statement file names.
func WithClock(now func() time.Time) Option {
	return func(c *Console) { c.now = now }
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, authSvc *auth.Service, accounts *accountsvc.Service, opts ...Option) *Console {
	c := &Console{
		in:              bufio.NewReader(in),
		out:             out,
		auth:            authSvc,
		accounts:        accounts,
		logger:          slog.Default(),
		colors:          newPalette(false),
		now:             time.Now,
		statementDir:    ".",
		statementFormat: statement.FormatXLSX,
	}
	c.readSecret = c.readLine
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the welcome menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := c.welcome(ctx)
		if errors.Is(err, errQuit) {
			c.println("\nGoodbye.")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		if errors.Is(err, io.EOF) {
			return "", errQuit
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

func (c *Console) promptSecret(label string) (string, error) {
	fmt.Fprint(c.out, label)
	s, err := c.readSecret()
	if errors.Is(err, io.EOF) {
		return "", errQuit
	}
	return s, err
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) header(title string) {
	c.println()
	c.println(headerStyle.Render(title))
}

func (c *Console) success(topic, message string) {
	c.colors.success.Fprintf(c.out, "\n[%s] %s\n", topic, message)
}

// report prints err the way the user should see it. Only errors without a
// user-facing message are logged.
func (c *Console) report(err error) {
	if de, ok := domain.AsError(err); ok {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNotFound) {
			c.colors.fail.Fprintf(c.out, "\n[%s] %s\n", de.Topic, de.Message)
			return
		}
		c.colors.warn.Fprintf(c.out, "\n[%s] %s\n", de.Topic, de.Message)
		return
	}
	c.logger.Error("Operation failed", "error", err)
	c.colors.fail.Fprintln(c.out, "\n[ERROR] The operation could not be completed. See the log for details.")
}
