package session

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vk/prodcat/internal/ctxlog"
	"github.com/vk/prodcat/internal/product"
	"github.com/vk/prodcat/internal/terminal"
)

// Prompter reads validated, cancelable answers from a terminal. Invalid
// answers are reported and re-prompted inside the call; only read failures
// (including io.EOF) are returned as errors.
type Prompter struct {
	term terminal.Terminal
	quit string
}

// NewPrompter creates a Prompter that treats quit as the cancel token.
func NewPrompter(term terminal.Terminal, quit string) *Prompter {
	return &Prompter{term: term, quit: quit}
}

// IsQuit reports whether s, once trimmed, is the quit token.
func (p *Prompter) IsQuit(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), p.quit)
}

// ReadCancelableLine asks for a non-empty line. The answer is returned
// trimmed with its case preserved.
func (p *Prompter) ReadCancelableLine(ctx context.Context, prompt string) (Result[string], error) {
	for {
		input, err := p.readTrimmed(prompt)
		if err != nil {
			return Result[string]{}, err
		}
		if input == "" {
			p.reject(ctx, ErrEmptyInput, msgEmptyInput)
			continue
		}
		if p.IsQuit(input) {
			return Cancelled[string](), nil
		}
		return Value(input), nil
	}
}

// ReadValidPrice asks for a strictly positive decimal. Only the quit token
// cancels; anything else that is not a positive number is re-prompted.
func (p *Prompter) ReadValidPrice(ctx context.Context, prompt string) (Result[decimal.Decimal], error) {
	for {
		input, err := p.readTrimmed(prompt)
		if err != nil {
			return Result[decimal.Decimal]{}, err
		}
		if p.IsQuit(input) {
			return Cancelled[decimal.Decimal](), nil
		}
		price, err := product.ParsePrice(input)
		if err != nil {
			ctxlog.FromContext(ctx).Debug("Price rejected.", "input", input, "error", err)
			p.reject(ctx, ErrInvalidPrice, msgInvalidPrice)
			continue
		}
		return Value(price), nil
	}
}

func (p *Prompter) readTrimmed(prompt string) (string, error) {
	p.term.Write(prompt)
	line, err := p.term.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// reject reports a validation failure on the terminal.
func (p *Prompter) reject(ctx context.Context, kind error, message string) {
	ctxlog.FromContext(ctx).Debug("Input rejected.", "kind", kind)
	p.term.WriteLine(errorPrefix + message)
}
