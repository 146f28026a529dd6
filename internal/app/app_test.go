package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/prodcat/internal/terminal"
	"github.com/vk/prodcat/internal/testutil"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		cfg       Config
		expectErr bool
	}{
		{name: "defaults", cfg: Config{LogLevel: "warn", LogFormat: "text"}},
		{name: "json debug", cfg: Config{LogLevel: "debug", LogFormat: "json", ConfigPath: "x.hcl"}},
		{name: "bad level", cfg: Config{LogLevel: "loud", LogFormat: "text"}, expectErr: true},
		{name: "bad format", cfg: Config{LogLevel: "info", LogFormat: "yaml"}, expectErr: true},
		{name: "empty", cfg: Config{}, expectErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewConfig(tc.cfg)

			if tc.expectErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid configuration")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg, *got)
		})
	}
}

func TestApp_RunWithDefaults(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	a, out, logs := SetupAppTest(t, &Config{LogFormat: "text"}, testutil.Lines("Fruit", "Apple", "1.50", "q", "q"))

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"Fruit\tApple\t1.5"}, testutil.CatalogRows(t, out.String()))
	assert.Contains(t, out.String(), terminal.ClearSequence, "screen clearing is on by default")
	assert.Contains(t, logs.String(), "App.Run method finished.")
}

func TestApp_SeedImportAndSettings(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	settings := writeFile(t, "settings.hcl", `
		commands {
		  quit = "X"
		}
		display {
		  clear_screen = true
		}
		product {
		  category = "Dairy"
		  name     = "Milk"
		  price    = 0.99
		}
	`)
	csv := writeFile(t, "products.csv", "category,name,price\nFruit,Apple,1.50\nSnacks,Chips,3\n")
	cfg := &Config{ConfigPath: settings, ImportPath: csv, NoClear: true}

	a, out, logs := SetupAppTest(t, cfg, testutil.Lines("x", "X"))

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "X", a.Settings().Commands.Quit)
	assert.Equal(t, []string{
		"Dairy\tMilk\t0.99",
		"Fruit\tApple\t1.5",
		"Snacks\tChips\t3",
	}, testutil.CatalogRows(t, out.String()))
	assert.Equal(t, "5.49", testutil.LastTotal(t, out.String()))
	assert.NotContains(t, out.String(), terminal.ClearSequence, "NoClear overrides the settings file")

	products, err := a.Store().List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Milk", products[0].Name, "seed products come before imported ones")
	assert.Contains(t, logs.String(), "products=3")
}

func TestNewApp_StartupFailuresPanic(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cfg     func(t *testing.T) *Config
		message string
	}{
		{
			name: "broken settings",
			cfg: func(t *testing.T) *Config {
				return &Config{ConfigPath: writeFile(t, "bad.hcl", `commands {`)}
			},
			message: "failed to load settings",
		},
		{
			name: "invalid import row",
			cfg: func(t *testing.T) *Config {
				return &Config{ImportPath: writeFile(t, "bad.csv", "category,name,price\nFruit,Apple,free\n")}
			},
			message: "row 2",
		},
		{
			name: "missing import file",
			cfg: func(t *testing.T) *Config {
				return &Config{ImportPath: filepath.Join(t.TempDir(), "absent.csv")}
			},
			message: "failed to import products",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := tc.cfg(t)

			defer func() {
				r := recover()
				require.NotNil(t, r, "NewApp should panic")
				err, ok := r.(error)
				require.True(t, ok, "panic value should be an error")
				assert.Contains(t, err.Error(), tc.message)
			}()
			SetupAppTest(t, cfg, "")
		})
	}
}

func TestApp_RunEndOfInput(t *testing.T) {
	t.Parallel()

	a, _, logs := SetupAppTest(t, &Config{NoClear: true}, "Fruit\n")

	err := a.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "End of input")
}
