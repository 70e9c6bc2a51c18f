package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
	"github.com/secmon-lab/vatika/pkg/service/catalog"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const (
	CatalogSourceFile      = "file"
	CatalogSourceHTTP      = "http"
	CatalogSourceFirestore = "firestore"
)

// catalogRepositoryProvider is implemented by repositories that also store
// the plant catalog
type catalogRepositoryProvider interface {
	Catalog() interfaces.CatalogRepository
}

// Catalog holds CLI flags for the plant catalog source
type Catalog struct {
	source  string
	path    string
	url     string
	timeout time.Duration
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog-source",
			Usage:       "Plant catalog source (file, http or firestore)",
			Value:       CatalogSourceFile,
			Category:    "Catalog",
			Sources:     cli.EnvVars("VATIKA_CATALOG_SOURCE"),
			Destination: &c.source,
		},
		&cli.StringFlag{
			Name:        "catalog-path",
			Usage:       "Plant catalog file, JSON or TOML (used with file source)",
			Value:       "plants.json",
			Category:    "Catalog",
			Sources:     cli.EnvVars("VATIKA_CATALOG_PATH"),
			Destination: &c.path,
		},
		&cli.StringFlag{
			Name:        "catalog-url",
			Usage:       "Plant catalog endpoint returning a JSON array (used with http source)",
			Category:    "Catalog",
			Sources:     cli.EnvVars("VATIKA_CATALOG_URL"),
			Destination: &c.url,
		},
		&cli.DurationFlag{
			Name:        "catalog-timeout",
			Usage:       "Timeout of a catalog fetch over HTTP",
			Value:       30 * time.Second,
			Category:    "Catalog",
			Sources:     cli.EnvVars("VATIKA_CATALOG_TIMEOUT"),
			Destination: &c.timeout,
		},
	}
}

// Source returns the configured catalog source type
func (c *Catalog) Source() string {
	return c.source
}

// LogAttrs returns log attributes for the catalog configuration
func (c *Catalog) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("source", c.source),
		slog.String("path", c.path),
		slog.String("url", c.url),
		slog.Duration("timeout", c.timeout),
	}
}

// Configure returns the catalog source. The firestore source reads the
// plants collection of repo, so repo must be the Firestore backend.
func (c *Catalog) Configure(repo interfaces.Repository) (interfaces.CatalogService, error) {
	switch c.source {
	case CatalogSourceFile:
		svc, err := catalog.NewFile(c.path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to configure file catalog")
		}
		logging.Default().Info("Using file catalog", "path", c.path)
		return svc, nil

	case CatalogSourceHTTP:
		if c.url == "" {
			return nil, goerr.Wrap(ErrMissingConfig, "catalog-url is required when using http catalog source")
		}
		svc, err := catalog.NewHTTP(c.url, &http.Client{Timeout: c.timeout})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to configure http catalog")
		}
		logging.Default().Info("Using HTTP catalog", "url", c.url)
		return svc, nil

	case CatalogSourceFirestore:
		p, ok := repo.(catalogRepositoryProvider)
		if !ok {
			return nil, goerr.Wrap(ErrInvalidConfig, "firestore catalog source requires the firestore repository backend")
		}
		logging.Default().Info("Using Firestore catalog")
		return p.Catalog(), nil

	default:
		return nil, goerr.Wrap(ErrInvalidConfig, "invalid catalog source", goerr.V(SourceKey, c.source))
	}
}
