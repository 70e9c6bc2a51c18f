package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
	"github.com/secmon-lab/vatika/pkg/domain/model"
)

// File reads the catalog from a local JSON or TOML file. The file is read on
// every fetch so edits show up on the next initialize.
//
// JSON files hold either a plant array or {"plants": [...]}. TOML files hold
// [[plants]] tables.
type File struct {
	path string
}

var _ interfaces.CatalogService = &File{}

// NewFile creates a catalog source for path
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, goerr.New("catalog file path is required")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".toml":
	default:
		return nil, goerr.New("unsupported catalog file type", goerr.V("path", path))
	}

	return &File{path: path}, nil
}

type tomlCatalog struct {
	Plants []*model.Plant `toml:"plants"`
}

func (f *File) FetchPlants(ctx context.Context) ([]*model.Plant, error) {
	// #nosec G304 - path is provided by CLI flag
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, goerr.Wrap(model.ErrCatalog, "failed to read catalog file",
			goerr.V("path", f.path),
			goerr.V("cause", err.Error()),
		)
	}

	if strings.EqualFold(filepath.Ext(f.path), ".toml") {
		var c tomlCatalog
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, goerr.Wrap(model.ErrCatalog, "failed to parse TOML catalog",
				goerr.V("path", f.path),
				goerr.V("cause", err.Error()),
			)
		}
		return c.Plants, nil
	}

	var wrapped wrappedPayload
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Plants != nil {
		return wrapped.Plants, nil
	}

	plants, err := decodePlants(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid catalog file", goerr.V("path", f.path))
	}
	return plants, nil
}
