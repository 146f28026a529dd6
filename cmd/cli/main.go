package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-faster/errors"
	"github.com/vk/prodcat/internal/app"
	"github.com/vk/prodcat/internal/cli"
	"github.com/vk/prodcat/internal/hcl"
)

// main is the entrypoint for the prodcat application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. The session talks over in and out; usage text and logs go to errW.
func run(ctx context.Context, in io.Reader, out, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors, so we recover here to
	// provide a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("application startup panicked | %v", r)
		}
	}()

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl.NewLoader()
	catalogApp := app.NewApp(in, out, errW, appConfig, loader)

	return catalogApp.Run(ctx)
}
