package cli

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/secmon-lab/vatika/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

var (
	headingColor = color.New(color.FgGreen, color.Bold)
	subtleColor  = color.New(color.FgHiBlack)
	errorColor   = color.New(color.FgRed, color.Bold)
)

func outputOf(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// printPlant writes a short human readable summary of a plant
func printPlant(w io.Writer, p *model.Plant) {
	headingColor.Fprintf(w, "%s", p.Name)
	subtleColor.Fprintf(w, " (%s)\n", p.ScientificName)
	if p.Description != "" {
		_, _ = io.WriteString(w, p.Description+"\n")
	}
	if uses := p.TopUses(3); len(uses) > 0 {
		_, _ = io.WriteString(w, "Uses: "+strings.Join(uses, ", ")+"\n")
	}
	if len(p.Regions) > 0 {
		_, _ = io.WriteString(w, "Regions: "+strings.Join(p.Regions, ", ")+"\n")
	}
}
