package catalog

import (
	"context"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
	"github.com/secmon-lab/vatika/pkg/domain/model"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
	"github.com/secmon-lab/vatika/pkg/utils/safe"
)

// maxResponseSize bounds the catalog body read into memory
const maxResponseSize = 32 << 20

// HTTP fetches the catalog from a remote plants API
type HTTP struct {
	url        string
	httpClient *http.Client
}

var _ interfaces.CatalogService = &HTTP{}

// NewHTTP creates a catalog client for the endpoint at url
func NewHTTP(url string, httpClient *http.Client) (*HTTP, error) {
	if url == "" {
		return nil, goerr.New("catalog URL is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTP{
		url:        url,
		httpClient: httpClient,
	}, nil
}

func (c *HTTP) FetchPlants(ctx context.Context) ([]*model.Plant, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create catalog request", goerr.V("url", c.url))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(model.ErrCatalog, "failed to fetch plants",
			goerr.V("url", c.url),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(ctx, resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, goerr.Wrap(model.ErrCatalog, "failed to read catalog response",
			goerr.V("url", c.url),
			goerr.V("cause", err.Error()),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.Wrap(model.ErrCatalog, "failed to fetch plants",
			goerr.V("url", c.url),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	plants, err := decodePlants(body)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid catalog response", goerr.V("url", c.url))
	}

	logging.From(ctx).Info("Fetched plant catalog", "url", c.url, "count", len(plants))
	return plants, nil
}
