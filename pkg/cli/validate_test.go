package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vatika/pkg/cli"
)

const validCatalog = `[
  {"id": "neem", "name": "Neem", "scientificName": "Azadirachta indica", "uses": ["Skin care", "Dental care"], "category": ["tree"]},
  {"id": "tulsi", "name": "Tulsi", "scientificName": "Ocimum tenuiflorum", "uses": ["Cough", "Stress"], "category": ["herb"]}
]`

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestRun_ValidateCommand_ValidCatalog(t *testing.T) {
	path := writeCatalog(t, "plants.json", validCatalog)

	err := cli.Run(context.Background(), []string{"vatika", "validate", "--catalog-path", path}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_TOMLCatalog(t *testing.T) {
	path := writeCatalog(t, "plants.toml", `
[[plants]]
id = "aloe"
name = "Aloe Vera"
scientific_name = "Aloe barbadensis miller"
uses = ["Burns"]
`)

	err := cli.Run(context.Background(), []string{"vatika", "validate", "--catalog-path", path}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_InvalidCatalog(t *testing.T) {
	testCases := map[string]string{
		"empty list":   `[]`,
		"duplicate id": `[{"id": "neem", "name": "Neem"}, {"id": "neem", "name": "Neem again"}]`,
		"missing id":   `[{"name": "Nameless"}]`,
		"error body":   `{"error": "catalog unavailable"}`,
	}

	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			path := writeCatalog(t, "plants.json", content)
			err := cli.Run(context.Background(), []string{"vatika", "validate", "--catalog-path", path}, "test")
			gt.Value(t, err).NotNil()
		})
	}
}

func TestRun_ValidateCommand_MissingCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.json")

	err := cli.Run(context.Background(), []string{"vatika", "validate", "--catalog-path", path}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_ValidateCommand_InvalidSource(t *testing.T) {
	err := cli.Run(context.Background(), []string{"vatika", "validate", "--catalog-source", "ftp"}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_DailyCommand(t *testing.T) {
	path := writeCatalog(t, "plants.json", validCatalog)
	dbPath := filepath.Join(t.TempDir(), "vatika.db")

	args := []string{"vatika", "daily",
		"--catalog-path", path,
		"--repository-backend", "sqlite",
		"--sqlite-path", dbPath,
	}
	gt.NoError(t, cli.Run(context.Background(), args, "test"))

	// Second run in the same day reuses the persisted state
	gt.NoError(t, cli.Run(context.Background(), args, "test"))
}

func TestRun_AskCommand(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("VATIKA_OPENAI_API_KEY", "")
	t.Setenv("VATIKA_GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("VATIKA_GEMINI_PROJECT", "")
	t.Setenv("VATIKA_OLLAMA_MODEL", "")

	t.Run("development falls back to a sample answer", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{"vatika", "ask",
			"--env", "development",
			"--plant-name", "Neem",
			"--scientific-name", "Azadirachta indica",
			"--question", "Is it good for skin?",
		}, "test")
		gt.NoError(t, err)
	})

	t.Run("production fails without providers", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{"vatika", "ask",
			"--env", "production",
			"--plant-name", "Neem",
			"--scientific-name", "Azadirachta indica",
			"--question", "Is it good for skin?",
		}, "test")
		gt.Value(t, err).NotNil()
	})

	t.Run("qa without question is rejected", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{"vatika", "ask",
			"--env", "development",
			"--plant-name", "Neem",
			"--scientific-name", "Azadirachta indica",
		}, "test")
		gt.Value(t, err).NotNil()
	})
}

func TestRun_SeedCommand_DryRun(t *testing.T) {
	path := writeCatalog(t, "plants.json", validCatalog)

	err := cli.Run(context.Background(), []string{"vatika", "seed", "--file", path, "--dry-run"}, "test")
	gt.NoError(t, err)
}

func TestRun_SeedCommand_UnsupportedBackend(t *testing.T) {
	path := writeCatalog(t, "plants.json", validCatalog)

	err := cli.Run(context.Background(), []string{"vatika", "seed",
		"--file", path,
		"--repository-backend", "memory",
	}, "test")
	gt.Value(t, err).NotNil()
}
