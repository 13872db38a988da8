// Package render formats tool payloads as Markdown text. Rendering never
// fails: absent upstream data falls back to defined display text instead
// of propagating an error.
package render

import (
	"fmt"
	"strings"

	"github.com/cferro/appledocs-mcp/internal/resolver"
	"github.com/cferro/appledocs-mcp/pkg/types"
)

// Outcome renders a documentation lookup result.
func Outcome(out *resolver.Outcome) string {
	switch out.Kind {
	case resolver.KindSymbol:
		return SymbolDocument(out.Symbol)
	case resolver.KindFramework:
		return FrameworkGuidance(out.Framework)
	default:
		return NotFound(out.NotFound)
	}
}

// SymbolDocument renders one documentation page: title, availability,
// abstract, and topic sections with the titles of their members. Topic
// identifiers missing from the references map are skipped silently.
func SymbolDocument(doc *types.Document) string {
	var b strings.Builder

	title := doc.Metadata.Title
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Platforms:** %s\n\n", types.FormatPlatforms(doc.Metadata.Platforms))

	if abstract := types.FlattenAbstract(doc.Abstract); abstract != "" {
		b.WriteString(abstract)
		b.WriteString("\n\n")
	}

	for _, section := range doc.TopicSections {
		if section.Title == "" {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", section.Title)
		for _, id := range section.Identifiers {
			ref, ok := doc.References.Get(id)
			if !ok || ref.Title == "" {
				continue
			}
			fmt.Fprintf(&b, "- **%s**", ref.Title)
			if desc := types.FlattenAbstract(ref.Abstract); desc != "" {
				fmt.Fprintf(&b, ": %s", desc)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// FrameworkGuidance renders the overview served when a symbol lookup
// turned out to name a framework, including next-step query shapes.
func FrameworkGuidance(g *resolver.FrameworkGuidance) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Framework\n\n", g.Name)
	fmt.Fprintf(&b, "**Platforms:** %s\n\n", g.Platforms)

	if g.Description != "" {
		b.WriteString(g.Description)
		b.WriteString("\n\n")
	}

	if len(g.Topics) > 0 {
		b.WriteString("## Topics\n\n")
		for _, topic := range g.Topics {
			fmt.Fprintf(&b, "- %s (%d symbols)\n", topic.Title, topic.Count)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Next Steps\n\n")
	fmt.Fprintf(&b, "- Search symbols in this framework: `search_symbols` with `framework: %q` and a query like `\"*View*\"`\n", g.Name)
	fmt.Fprintf(&b, "- Look up a specific symbol: `get_documentation` with a path like `%q`\n",
		strings.ToLower(strings.ReplaceAll(g.Name, " ", ""))+"/<symbol>")

	return b.String()
}

// NotFound renders guidance for a path the upstream does not recognize.
func NotFound(g *resolver.NotFoundGuidance) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# No Documentation Found\n\n")
	fmt.Fprintf(&b, "Nothing matches the path %q.\n\n", g.Path)
	b.WriteString("## Suggestions\n\n")
	b.WriteString("- Use `list_technologies` to see available frameworks\n")
	b.WriteString("- Use `search_symbols` with a wildcard query, e.g. `\"*" + g.Path + "*\"`\n")
	b.WriteString("- Check the path spelling; paths look like `uikit/uiviewcontroller`\n")

	return b.String()
}

// TechnologyList renders the technology index split into frameworks and
// other documentation collections.
func TechnologyList(index *types.TechnologyIndex) string {
	var b strings.Builder
	b.WriteString("# Apple Technologies\n\n")

	var frameworks, others []types.Technology
	for _, tech := range index.Technologies() {
		if tech.Title == "" {
			continue
		}
		if tech.IsFramework() {
			frameworks = append(frameworks, tech)
		} else {
			others = append(others, tech)
		}
	}

	writeTechnologies(&b, "Frameworks", frameworks)
	writeTechnologies(&b, "Other Technologies", others)

	return b.String()
}

func writeTechnologies(b *strings.Builder, heading string, techs []types.Technology) {
	if len(techs) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, tech := range techs {
		fmt.Fprintf(b, "- **%s**", tech.Title)
		if desc := types.FlattenAbstract(tech.Abstract); desc != "" {
			fmt.Fprintf(b, ": %s", desc)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// SearchResults renders a ranked result list with its scope description.
func SearchResults(scope string, results []types.SearchResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Search Results (%s)\n\n", scope)
	if len(results) == 0 {
		b.WriteString("No symbols matched. Try a broader wildcard query, e.g. `\"*View*\"`.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%d result(s):\n\n", len(results))
	for i, r := range results {
		fmt.Fprintf(&b, "%d. **%s**", i+1, r.Title)
		if r.SymbolKind != "" {
			fmt.Fprintf(&b, " (%s)", r.SymbolKind)
		}
		b.WriteString("\n")
		if r.Description != "" {
			fmt.Fprintf(&b, "   %s\n", r.Description)
		}
		fmt.Fprintf(&b, "   Framework: %s | Platforms: %s\n", r.Framework, r.Platforms)
		if r.Path != "" {
			fmt.Fprintf(&b, "   Path: %s\n", r.Path)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
