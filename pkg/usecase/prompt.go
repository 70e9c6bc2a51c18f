package usecase

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/model"
	"github.com/secmon-lab/vatika/pkg/domain/types"
)

//go:embed prompt/qa.md
var qaPromptTmpl string

//go:embed prompt/insights.md
var insightsPromptTmpl string

var (
	qaPrompt       = template.Must(template.New("qa").Parse(qaPromptTmpl))
	insightsPrompt = template.Must(template.New("insights").Parse(insightsPromptTmpl))
)

type promptData struct {
	PlantName      string
	ScientificName string
	Question       string
}

// BuildPrompt renders the provider prompt. Output depends only on the request.
func BuildPrompt(req *model.AnswerRequest) (string, error) {
	data := promptData{
		PlantName:      strings.TrimSpace(req.PlantName),
		ScientificName: strings.TrimSpace(req.ScientificName),
	}

	tmpl := insightsPrompt
	if req.Kind.Normalize() == types.AnswerKindQA {
		tmpl = qaPrompt
		data.Question = strings.TrimSpace(req.Question)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to render prompt", goerr.V("kind", req.Kind))
	}
	return buf.String(), nil
}
