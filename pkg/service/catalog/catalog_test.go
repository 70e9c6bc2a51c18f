package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vatika/pkg/domain/model"
	"github.com/secmon-lab/vatika/pkg/service/catalog"
)

const plantsJSON = `[
  {"id":"neem","name":"Neem","scientificName":"Azadirachta indica","description":"Tree","uses":["Skin care"],"regions":["India"],"conditions":["Acne"],"category":["tree"]},
  {"id":"tulsi","name":"Tulsi","scientificName":"Ocimum tenuiflorum","description":"Herb","uses":["Tea"],"regions":["India"],"conditions":["Cough"]}
]`

func newCatalogServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTP_FetchPlants(t *testing.T) {
	ctx := context.Background()

	t.Run("returns plants in catalog order", func(t *testing.T) {
		srv := newCatalogServer(t, http.StatusOK, plantsJSON)
		c, err := catalog.NewHTTP(srv.URL, srv.Client())
		gt.NoError(t, err).Required()

		plants, err := c.FetchPlants(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, plants).Length(2).Required()
		gt.Value(t, plants[0].ID).Equal(model.PlantID("neem"))
		gt.Value(t, plants[1].ScientificName).Equal("Ocimum tenuiflorum")
		gt.Value(t, plants[1].Category).Nil()
	})

	t.Run("empty array is returned as is", func(t *testing.T) {
		srv := newCatalogServer(t, http.StatusOK, `[]`)
		c, err := catalog.NewHTTP(srv.URL, srv.Client())
		gt.NoError(t, err).Required()

		plants, err := c.FetchPlants(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, plants).Length(0)
	})

	t.Run("non-2xx status is a catalog error", func(t *testing.T) {
		srv := newCatalogServer(t, http.StatusInternalServerError, `oops`)
		c, err := catalog.NewHTTP(srv.URL, srv.Client())
		gt.NoError(t, err).Required()

		_, err = c.FetchPlants(ctx)
		gt.Error(t, err).Is(model.ErrCatalog)
	})

	t.Run("error payload is a catalog error", func(t *testing.T) {
		srv := newCatalogServer(t, http.StatusOK, `{"error":"database down","details":"timeout"}`)
		c, err := catalog.NewHTTP(srv.URL, srv.Client())
		gt.NoError(t, err).Required()

		_, err = c.FetchPlants(ctx)
		gt.Error(t, err).Is(model.ErrCatalog)
	})

	t.Run("object without error field is malformed", func(t *testing.T) {
		srv := newCatalogServer(t, http.StatusOK, `{"count":2}`)
		c, err := catalog.NewHTTP(srv.URL, srv.Client())
		gt.NoError(t, err).Required()

		_, err = c.FetchPlants(ctx)
		gt.Error(t, err).Is(model.ErrCatalog)
	})

	t.Run("scalar body is malformed", func(t *testing.T) {
		srv := newCatalogServer(t, http.StatusOK, `"plants"`)
		c, err := catalog.NewHTTP(srv.URL, srv.Client())
		gt.NoError(t, err).Required()

		_, err = c.FetchPlants(ctx)
		gt.Error(t, err).Is(model.ErrCatalog)
	})

	t.Run("unreachable server is a catalog error", func(t *testing.T) {
		srv := newCatalogServer(t, http.StatusOK, plantsJSON)
		url := srv.URL
		srv.Close()

		c, err := catalog.NewHTTP(url, nil)
		gt.NoError(t, err).Required()

		_, err = c.FetchPlants(ctx)
		gt.Error(t, err).Is(model.ErrCatalog)
	})

	t.Run("URL is required", func(t *testing.T) {
		_, err := catalog.NewHTTP("", nil)
		gt.Value(t, err).NotNil()
	})
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestFile_FetchPlants(t *testing.T) {
	ctx := context.Background()

	t.Run("reads JSON array", func(t *testing.T) {
		c, err := catalog.NewFile(writeFile(t, "plants.json", plantsJSON))
		gt.NoError(t, err).Required()

		plants, err := c.FetchPlants(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, plants).Length(2)
	})

	t.Run("reads JSON wrapped in plants key", func(t *testing.T) {
		c, err := catalog.NewFile(writeFile(t, "plants.json", `{"plants":`+plantsJSON+`}`))
		gt.NoError(t, err).Required()

		plants, err := c.FetchPlants(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, plants).Length(2)
		gt.Value(t, plants[0].Name).Equal("Neem")
	})

	t.Run("reads TOML tables", func(t *testing.T) {
		c, err := catalog.NewFile(writeFile(t, "plants.toml", `
[[plants]]
id = "aloe"
name = "Aloe Vera"
scientific_name = "Aloe barbadensis miller"
description = "Succulent"
uses = ["Burns", "Skin care"]
regions = ["Arabia"]
conditions = ["Sunburn"]
category = ["succulent"]

[[plants]]
id = "ginger"
name = "Ginger"
scientific_name = "Zingiber officinale"
uses = ["Nausea"]
`))
		gt.NoError(t, err).Required()

		plants, err := c.FetchPlants(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, plants).Length(2).Required()
		gt.Value(t, plants[0].ScientificName).Equal("Aloe barbadensis miller")
		gt.Value(t, plants[0].Uses).Equal([]string{"Burns", "Skin care"})
		gt.Value(t, plants[1].Category).Nil()
	})

	t.Run("missing file is a catalog error", func(t *testing.T) {
		c, err := catalog.NewFile(filepath.Join(t.TempDir(), "missing.json"))
		gt.NoError(t, err).Required()

		_, err = c.FetchPlants(ctx)
		gt.Error(t, err).Is(model.ErrCatalog)
	})

	t.Run("broken TOML is a catalog error", func(t *testing.T) {
		c, err := catalog.NewFile(writeFile(t, "plants.toml", `[[plants]`))
		gt.NoError(t, err).Required()

		_, err = c.FetchPlants(ctx)
		gt.Error(t, err).Is(model.ErrCatalog)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := catalog.NewFile("plants.yaml")
		gt.Value(t, err).NotNil()
	})
}
