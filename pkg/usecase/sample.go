package usecase

import (
	"fmt"
	"strings"
)

// SampleAnswer is the canned answer served in development when no provider
// could answer. It is pure and always succeeds.
func SampleAnswer(plantName, scientificName, question string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Here is some information about %s (%s):\n\n", plantName, scientificName)
	sb.WriteString("Medicinal Properties:\n")
	sb.WriteString("- Anti-inflammatory\n")
	sb.WriteString("- Antioxidant properties\n")
	sb.WriteString("- Digestive aid\n\n")
	sb.WriteString("Traditional Uses:\n")
	sb.WriteString("- Used in traditional medicine for digestive issues\n")
	sb.WriteString("- Applied topically for skin conditions\n")
	sb.WriteString("- Consumed as a tea for relaxation\n\n")

	if question != "" {
		fmt.Fprintf(&sb, "Regarding your question: \"%s\"\n", question)
		sb.WriteString("This is a sample response as the AI service is currently unavailable.\n")
		sb.WriteString("Please ensure you have valid API keys configured.\n\n")
	}

	sb.WriteString("Note: This is a sample response. Please configure valid API keys for actual AI-generated responses.")
	return sb.String()
}
