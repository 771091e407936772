package graph

import (
	"io"

	"github.com/LegacyCodeHQ/depmap/depgraph"
	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
	"github.com/LegacyCodeHQ/depmap/depgraph/registry"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

type languageSummary struct {
	files   int
	bytes   uint64
	imports int
}

// writeSummary renders a per-language table of files, bytes read and import
// edges.
func writeSummary(w io.Writer, analysis *Analysis) {
	result := analysis.Result
	byLanguage := make(map[langsupport.Language]*languageSummary)
	row := func(lang langsupport.Language) *languageSummary {
		if _, ok := byLanguage[lang]; !ok {
			byLanguage[lang] = &languageSummary{}
		}
		return byLanguage[lang]
	}

	for _, file := range result.Files {
		s := row(langsupport.Classify(file))
		s.files++
		s.bytes += uint64(analysis.BytesRead[file])
	}
	for _, edge := range result.Edges {
		row(langsupport.Classify(edge.From)).imports++
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Language", "Files", "Read", "Imports"})

	var total languageSummary
	languages := make([]langsupport.Language, 0, len(registry.Modules())+1)
	for _, module := range registry.Modules() {
		languages = append(languages, module.Language())
	}
	languages = append(languages, langsupport.Unsupported)

	for _, lang := range languages {
		s, ok := byLanguage[lang]
		if !ok {
			continue
		}
		name := lang.String()
		if lang == langsupport.Unsupported {
			name = "Other"
		}
		tbl.AppendRow(table.Row{name, s.files, humanize.Bytes(s.bytes), s.imports})
		total.files += s.files
		total.bytes += s.bytes
		total.imports += s.imports
	}

	tbl.AppendFooter(table.Row{"Total", total.files, humanize.Bytes(total.bytes), total.imports})
	tbl.Render()
}

// writeDiagnostics reports skipped files and configs, one per line.
func writeDiagnostics(w io.Writer, diagnostics []depgraph.Diagnostic) {
	if len(diagnostics) == 0 {
		return
	}

	warn := color.New(color.FgYellow)
	for _, d := range diagnostics {
		path := d.Path
		if path == "" {
			path = "(config)"
		}
		_, _ = warn.Fprintf(w, "warning: %s [%s] %s\n", path, d.Kind, d.Message)
	}
	_, _ = color.New(color.Faint).Fprintf(w, "%d file(s) skipped or degraded\n", len(diagnostics))
}
