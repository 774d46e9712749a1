// Command cli runs the interactive online banking console.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/amirasaad/onlinebanking/infra/initializer"
	"github.com/amirasaad/onlinebanking/internal/console"
	"github.com/amirasaad/onlinebanking/pkg/config"
	"github.com/amirasaad/onlinebanking/pkg/statement"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "online banking:", err)
		os.Exit(1)
	}
}

func run() (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := initializer.InitializeDependencies(ctx, cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := svc.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	format, err := statement.ParseFormat(cfg.Statement.Format)
	if err != nil {
		return err
	}
	statementDir, err := cfg.Statement.ResolveDir(svc.Deps.Paths.DataDir)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	opts := []console.Option{
		console.WithLogger(svc.Deps.Logger),
		console.WithStatements(statementDir, format),
		console.WithColor(!color.NoColor && config.ColorEnabled()),
	}
	if interactive && config.MaskPasswords() {
		opts = append(opts, console.WithTerminal(int(os.Stdin.Fd())))
	}
	for _, r := range svc.Reports {
		if r.Skipped > 0 {
			color.New(color.FgYellow).Fprintf(os.Stdout, "[SYS] %d malformed record(s) skipped in %s.\n", r.Skipped, r.Path)
		}
	}
	fmt.Fprintf(os.Stdout, "[SYS] Loaded %d existing accounts.\n", svc.Reports[0].Loaded)

	return console.New(os.Stdin, os.Stdout, svc.Auth, svc.Account, opts...).Run(ctx)
}
