package export

import (
	"fmt"
	"strings"

	"github.com/kingrea/lifecast/internal/content"
	"github.com/kingrea/lifecast/internal/engine"
	"github.com/kingrea/lifecast/internal/render"
)

// Markdown renders the shareable card: snapshot narrative, pick bullets,
// rationale, and — if an aggregate is present — top-8 frequencies per domain.
func Markdown(pack content.Pack, name, timeline string, p engine.PickSet, agg *engine.Aggregate) string {
	story := render.Narrative(pack, name, timeline, p)

	var md []string
	md = append(md, "# Life Goals Predictor 2050 📅")
	md = append(md, fmt.Sprintf("**Name:** %s  \n**Timeline:** `%s`\n", name, timeline))
	md = append(md, "## Snapshot\n")
	md = append(md, "```text\n"+story+"\n```")
	md = append(md, "## Picks\n")
	for _, domain := range content.Domains {
		trait := p.ByDomain(domain)
		heading := titleDomain(domain)
		if domain == content.DomainFame {
			md = append(md, fmt.Sprintf("- **%s**: %s (%s) [`%s`]", heading, trait.Label, render.FameMeter(trait.Level), trait.ID))
		} else {
			md = append(md, fmt.Sprintf("- **%s**: %s [`%s`]", heading, trait.ShortLabel(), trait.ID))
		}
	}
	md = append(md, "\n## Why this result\n")
	md = append(md, "```text\n"+strings.Join(render.Rationale(p), "\n")+"\n```")
	if agg != nil {
		md = append(md, "\n## Monte Carlo Outlook\n")
		total := agg.Trials
		if total < 1 {
			total = 1
		}
		for _, domain := range content.Domains {
			md = append(md, "### "+titleDomain(domain))
			for _, entry := range agg.Tally(domain).Top(8) {
				pct := float64(entry.Count) / float64(total) * 100
				md = append(md, fmt.Sprintf("- `%s` — **%.1f%%**", entry.ID, pct))
			}
		}
	}
	return strings.Join(md, "\n")
}

func titleDomain(domain content.Domain) string {
	s := string(domain)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
