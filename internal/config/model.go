package config

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/vk/prodcat/internal/product"
	"github.com/vk/prodcat/internal/validator"
)

// Default command tokens.
const (
	DefaultAddToken    = "P"
	DefaultSearchToken = "S"
	DefaultQuitToken   = "Q"
)

// Model is the unified representation of all session settings.
type Model struct {
	Commands Commands
	Display  Display
	// Seed products are added to the catalog, in order, before the first
	// prompt is shown.
	Seed []product.Product
}

// Commands holds the menu tokens. Tokens are compared case-insensitively.
type Commands struct {
	Add    string `validate:"token"`
	Search string `validate:"token"`
	Quit   string `validate:"token"`
}

// Display controls terminal rendering.
type Display struct {
	ClearScreen bool
}

// Default returns the settings used when no file overrides them.
func Default() *Model {
	return &Model{
		Commands: Commands{
			Add:    DefaultAddToken,
			Search: DefaultSearchToken,
			Quit:   DefaultQuitToken,
		},
		Display: Display{ClearScreen: true},
	}
}

var validate = validator.New()

// Validate checks that every token is usable and that no two tokens collide.
func (m *Model) Validate() error {
	if err := validate.Struct(m.Commands); err != nil {
		return errors.Wrap(err, "invalid commands")
	}

	seen := map[string]string{}
	for name, token := range map[string]string{
		"add":    m.Commands.Add,
		"search": m.Commands.Search,
		"quit":   m.Commands.Quit,
	} {
		key := strings.ToUpper(token)
		if other, dup := seen[key]; dup {
			return errors.Errorf("commands %q and %q share the token %q", other, name, token)
		}
		seen[key] = name
	}
	return nil
}
