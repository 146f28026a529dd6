package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the set of top-level blocks a settings file may contain.
// Unknown blocks or attributes are rejected by the decoder.
type fileRoot struct {
	Commands []*commandsBlock `hcl:"commands,block"`
	Display  []*displayBlock  `hcl:"display,block"`
	Products []*productBlock  `hcl:"product,block"`
}

// commandsBlock overrides menu tokens. Omitted tokens keep their defaults.
type commandsBlock struct {
	Add    *string `hcl:"add,optional"`
	Search *string `hcl:"search,optional"`
	Quit   *string `hcl:"quit,optional"`
}

type displayBlock struct {
	ClearScreen *bool `hcl:"clear_screen,optional"`
}

// productBlock is a seed product. Price stays an expression so it can be
// written either as a number or as a string.
type productBlock struct {
	Category string         `hcl:"category"`
	Name     string         `hcl:"name"`
	Price    hcl.Expression `hcl:"price"`
}
