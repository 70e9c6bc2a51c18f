package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/model"
)

// errorPayload is the body the catalog API returns when it cannot serve plants
type errorPayload struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// wrappedPayload is the layout of bundled catalog files: {"plants": [...]}
type wrappedPayload struct {
	Plants []*model.Plant `json:"plants"`
}

// decodePlants accepts a JSON array of plants or an error payload. Any other
// shape is malformed.
func decodePlants(data []byte) ([]*model.Plant, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, goerr.Wrap(model.ErrCatalog, "empty catalog response")
	}

	switch data[0] {
	case '[':
		var plants []*model.Plant
		if err := json.Unmarshal(data, &plants); err != nil {
			return nil, goerr.Wrap(model.ErrCatalog, "malformed plant list", goerr.V("cause", err.Error()))
		}
		return plants, nil

	case '{':
		var payload errorPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, goerr.Wrap(model.ErrCatalog, "malformed catalog response", goerr.V("cause", err.Error()))
		}
		if payload.Error != "" {
			return nil, goerr.Wrap(model.ErrCatalog, "catalog API error",
				goerr.V("error", payload.Error),
				goerr.V("details", payload.Details),
			)
		}
		return nil, goerr.Wrap(model.ErrCatalog, "catalog response is not a plant list")

	default:
		return nil, goerr.Wrap(model.ErrCatalog, "catalog response is not a plant list")
	}
}
