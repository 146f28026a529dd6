package hcl

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/prodcat/internal/config"
	"github.com/vk/prodcat/internal/ctxlog"
	"github.com/vk/prodcat/internal/fsutil"
	"github.com/vk/prodcat/internal/product"
)

// Extension of settings files picked up from directories.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every settings file under paths and merges them, in path and
// then file order, over the defaults.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered settings files.", "count", len(files))

	model := config.Default()
	var commandsFrom, displayFrom string
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, errors.Wrapf(diags, "failed to parse settings file %s", file)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, errors.Wrapf(diags, "failed to decode settings file %s", file)
		}

		for _, c := range root.Commands {
			if commandsFrom != "" {
				return nil, errors.Errorf("duplicate commands block in %s (first defined in %s)", file, commandsFrom)
			}
			commandsFrom = file
			applyCommands(&model.Commands, c)
		}
		for _, d := range root.Display {
			if displayFrom != "" {
				return nil, errors.Errorf("duplicate display block in %s (first defined in %s)", file, displayFrom)
			}
			displayFrom = file
			if d.ClearScreen != nil {
				model.Display.ClearScreen = *d.ClearScreen
			}
		}
		for _, pb := range root.Products {
			p, err := translateProduct(pb)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid product at %s", pb.Price.Range())
			}
			model.Seed = append(model.Seed, p)
		}
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.",
		"files", len(files),
		"seed_products", len(model.Seed),
		"clear_screen", model.Display.ClearScreen,
	)
	return model, nil
}

func applyCommands(dst *config.Commands, c *commandsBlock) {
	if c.Add != nil {
		dst.Add = *c.Add
	}
	if c.Search != nil {
		dst.Search = *c.Search
	}
	if c.Quit != nil {
		dst.Quit = *c.Quit
	}
}

func translateProduct(pb *productBlock) (product.Product, error) {
	price, err := decodePrice(pb.Price)
	if err != nil {
		return product.Product{}, err
	}
	return product.New(pb.Category, pb.Name, price)
}

// findAllHCLFiles expands paths into a de-duplicated list of settings files.
// Missing paths are not an error; a file given explicitly is used whatever
// its extension.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			allFiles = append(allFiles, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "error accessing path %s", path)
		}

		if !info.IsDir() {
			add(filepath.Clean(path))
			continue
		}

		found, err := fsutil.FindFilesByExtension(path, Extension)
		if err != nil {
			return nil, errors.Wrapf(err, "scan %s", path)
		}
		for _, f := range found {
			add(filepath.Clean(f))
		}
	}
	return allFiles, nil
}
