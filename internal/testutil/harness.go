package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/prodcat/internal/catalog"
	"github.com/vk/prodcat/internal/config"
	"github.com/vk/prodcat/internal/ctxlog"
	"github.com/vk/prodcat/internal/inmemorystore"
	"github.com/vk/prodcat/internal/product"
	"github.com/vk/prodcat/internal/session"
	"github.com/vk/prodcat/internal/terminal"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// ScriptResult holds the outcome of a scripted session.
type ScriptResult struct {
	Output    string
	LogOutput string
	Err       error
	State     session.State
	Store     catalog.Store
}

// Products lists the store contents in insertion order.
func (r *ScriptResult) Products(t *testing.T) []product.Product {
	t.Helper()
	products, err := r.Store.List(context.Background())
	require.NoError(t, err)
	return products
}

type scriptConfig struct {
	commands config.Commands
	seed     []product.Product
	clear    bool
}

// ScriptOption customises RunScript.
type ScriptOption func(*scriptConfig)

// WithCommands overrides the default menu tokens.
func WithCommands(c config.Commands) ScriptOption {
	return func(sc *scriptConfig) { sc.commands = c }
}

// WithSeed pre-loads products before the session starts.
func WithSeed(products ...product.Product) ScriptOption {
	return func(sc *scriptConfig) { sc.seed = append(sc.seed, products...) }
}

// WithClearScreen keeps the ANSI clear sequences in the captured output.
func WithClearScreen() ScriptOption {
	return func(sc *scriptConfig) { sc.clear = true }
}

// Lines joins user input lines, each terminated by a newline.
func Lines(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// RunScript feeds input to a fresh session over an in-memory store and
// returns everything it printed. The session ends when the script quits or
// runs out of input.
func RunScript(t *testing.T, input string, opts ...ScriptOption) *ScriptResult {
	t.Helper()

	sc := &scriptConfig{commands: config.Default().Commands}
	for _, opt := range opts {
		opt(sc)
	}

	logBuffer := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logBuffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	store := inmemorystore.New()
	for _, p := range sc.seed {
		require.NoError(t, store.Add(ctx, p))
	}

	out := &bytes.Buffer{}
	var termOpts []terminal.Option
	if !sc.clear {
		termOpts = append(termOpts, terminal.WithoutClear())
	}
	console := terminal.NewConsole(strings.NewReader(input), out, termOpts...)

	s := session.New(console, store, sc.commands)
	err := s.Run(ctx)

	if os.Getenv("PRODCAT_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &ScriptResult{
		Output:    out.String(),
		LogOutput: logBuffer.String(),
		Err:       err,
		State:     s.State(),
		Store:     store,
	}
}
