package session

import (
	"context"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/vk/prodcat/internal/catalog"
	"github.com/vk/prodcat/internal/config"
	"github.com/vk/prodcat/internal/ctxlog"
	"github.com/vk/prodcat/internal/product"
	"github.com/vk/prodcat/internal/terminal"
)

// State is a node of the session state machine.
type State int

const (
	StateAdding State = iota
	StateListing
	StateSearching
	StateExiting
)

func (s State) String() string {
	switch s {
	case StateAdding:
		return "adding"
	case StateListing:
		return "listing"
	case StateSearching:
		return "searching"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Session is one interactive catalog run.
type Session struct {
	term     terminal.Terminal
	store    catalog.Store
	commands config.Commands
	prompt   *Prompter
	state    State
}

// New creates a session over term that keeps its products in store. The
// session starts in StateAdding.
func New(term terminal.Terminal, store catalog.Store, commands config.Commands) *Session {
	return &Session{
		term:     term,
		store:    store,
		commands: commands,
		prompt:   NewPrompter(term, commands.Quit),
		state:    StateAdding,
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Run drives the state machine until the user quits or input ends. Both are
// a normal end of the session and return nil; errors are only returned for
// read failures other than io.EOF, store failures and context cancellation.
func (s *Session) Run(ctx context.Context) error {
	ctx = ctxlog.With(ctx, "component", "session")
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Session started.", "state", s.state)

	for s.state != StateExiting {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := s.step(ctx)
		if errors.Is(err, io.EOF) {
			logger.Debug("End of input, closing session.", "state", s.state)
			s.state = StateExiting
			break
		}
		if err != nil {
			return errors.Wrapf(err, "session %s", s.state)
		}

		logger.Debug("Session transition.", "from", s.state, "to", next)
		s.state = next
	}

	logger.Debug("Session finished.")
	return nil
}

func (s *Session) step(ctx context.Context) (State, error) {
	switch s.state {
	case StateAdding:
		return s.addProducts(ctx)
	case StateListing:
		return s.showCatalog(ctx)
	case StateSearching:
		return s.searchProduct(ctx)
	default:
		return StateExiting, errors.Errorf("unexpected state %d", s.state)
	}
}

// addProducts runs the add loop until a prompt is cancelled.
func (s *Session) addProducts(ctx context.Context) (State, error) {
	for {
		s.term.ClearScreen()
		s.term.WriteLine(banner(s.commands.Quit))

		category, err := s.prompt.ReadCancelableLine(ctx, PromptCategory)
		if err != nil || category.IsCancelled() {
			return StateListing, err
		}
		name, err := s.prompt.ReadCancelableLine(ctx, PromptName)
		if err != nil || name.IsCancelled() {
			return StateListing, err
		}
		price, err := s.prompt.ReadValidPrice(ctx, PromptPrice)
		if err != nil || price.IsCancelled() {
			return StateListing, err
		}

		c, _ := category.Get()
		n, _ := name.Get()
		pr, _ := price.Get()
		p, err := product.New(c, n, pr)
		if err != nil {
			return StateExiting, err
		}
		if err := s.store.Add(ctx, p); err != nil {
			return StateExiting, errors.Wrap(err, "add product")
		}

		ctxlog.FromContext(ctx).Debug("Product added.", "category", p.Category, "name", p.Name, "price", p.Price.String())
		s.term.WriteLine(msgAdded)
	}
}

// showCatalog prints every product by ascending price with the exact total,
// then waits for a menu command.
func (s *Session) showCatalog(ctx context.Context) (State, error) {
	products, err := s.store.List(ctx)
	if err != nil {
		return StateExiting, errors.Wrap(err, "list products")
	}
	sorted := catalog.SortByPrice(products)

	s.term.ClearScreen()
	s.term.WriteLine(Header)
	for _, p := range sorted {
		s.term.WriteLine(p.String())
	}
	s.term.WriteLine(totalPrefix + catalog.Total(sorted).String())

	return s.dispatch(ctx)
}

// searchProduct looks a name up and prints matches in insertion order. An
// empty or quit query ends the session without showing the menu again.
func (s *Session) searchProduct(ctx context.Context) (State, error) {
	logger := ctxlog.FromContext(ctx)

	s.term.Write(PromptSearch)
	line, err := s.term.ReadLine()
	if err != nil {
		return StateExiting, err
	}
	query := strings.TrimSpace(line)
	if query == "" {
		s.prompt.reject(ctx, ErrEmptyInput, msgEmptyName)
		return StateExiting, nil
	}
	if s.prompt.IsQuit(query) {
		return StateExiting, nil
	}

	matches, err := s.store.FindByName(ctx, query)
	if err != nil {
		return StateExiting, errors.Wrap(err, "search products")
	}
	logger.Debug("Search finished.", "query", query, "matches", len(matches))

	s.term.ClearScreen()
	s.term.WriteLine(Header)
	if len(matches) == 0 {
		s.term.WriteLine("")
		s.prompt.reject(ctx, ErrNoResults, msgNoResults)
	}
	for _, p := range matches {
		s.term.WriteLine(resultPrefix + p.String())
	}

	return s.dispatch(ctx)
}

// dispatch shows the menu and reads commands until one is recognised. Blank
// lines are ignored silently.
func (s *Session) dispatch(ctx context.Context) (State, error) {
	s.term.WriteLine(menu(s.commands.Add, s.commands.Search, s.commands.Quit))

	for {
		s.term.Write(PromptCommand)
		line, err := s.term.ReadLine()
		if err != nil {
			return StateExiting, err
		}

		cmd := strings.TrimSpace(line)
		switch {
		case cmd == "":
			continue
		case strings.EqualFold(cmd, s.commands.Add):
			return StateAdding, nil
		case strings.EqualFold(cmd, s.commands.Search):
			return StateSearching, nil
		case strings.EqualFold(cmd, s.commands.Quit):
			return StateExiting, nil
		default:
			s.prompt.reject(ctx, ErrInvalidCommand, msgInvalidCmd)
		}
	}
}
