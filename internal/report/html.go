package report

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/selquery/selq/pkg/types"
)

// HTMLReporter formats inspection data as a standalone HTML page
type HTMLReporter struct{}

// NewHTMLReporter creates a new HTML reporter
func NewHTMLReporter() *HTMLReporter {
	return &HTMLReporter{}
}

// Format renders the inspection as a self-contained HTML document and
// writes it to the writer
func (r *HTMLReporter) Format(insp *types.Inspection, writer io.Writer) error {
	// Group statements per file, sorted for deterministic output
	byFile := make(map[string][]types.StatementInfo)
	for _, info := range insp.Statements {
		byFile[info.File] = append(byFile[info.File], info)
	}
	var files []string
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)

	if err := r.writeHeader(insp, writer); err != nil {
		return err
	}

	if err := r.writeSummary(insp, files, writer); err != nil {
		return err
	}

	for _, file := range files {
		if err := r.writeFileDetail(file, byFile[file], writer); err != nil {
			return err
		}
	}

	return r.writeFooter(writer)
}

// writeHeader writes the HTML document header with CSS
func (r *HTMLReporter) writeHeader(insp *types.Inspection, writer io.Writer) error {
	timestamp := time.Now().Format(time.RFC1123)
	if !insp.Timestamp.IsZero() {
		timestamp = insp.Timestamp.Format(time.RFC1123)
	}

	_, err := fmt.Fprintf(writer, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>selq Inspection Report</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; background: #f5f5f5; color: #333; }
        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }
        header { background: #2c3e50; color: white; padding: 30px 0; margin-bottom: 30px; }
        header h1 { font-size: 2.5em; margin-bottom: 10px; }
        header .meta { opacity: 0.8; font-size: 0.9em; }
        .summary { background: white; border-radius: 8px; padding: 25px; margin-bottom: 30px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .summary h2 { margin-bottom: 20px; color: #2c3e50; }
        .summary-stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; }
        .stat-card { background: #f8f9fa; padding: 20px; border-radius: 6px; border-left: 4px solid #3498db; }
        .stat-card .label { font-size: 0.85em; color: #7f8c8d; text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 8px; }
        .stat-card .value { font-size: 2em; font-weight: bold; color: #2c3e50; }
        .file-detail { background: white; border-radius: 8px; padding: 25px; margin-bottom: 30px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .file-detail h3 { margin-bottom: 15px; color: #2c3e50; font-family: 'Courier New', monospace; }
        .statement { padding: 15px 0; border-bottom: 1px solid #ecf0f1; }
        .statement:last-child { border-bottom: none; }
        .statement .line { font-size: 0.85em; color: #7f8c8d; margin-bottom: 8px; }
        .statement .facts { margin-bottom: 8px; }
        .statement .facts span { display: inline-block; background: #f8f9fa; border-radius: 4px; padding: 2px 10px; margin: 0 8px 4px 0; font-size: 0.9em; }
        .sql { background: #282c34; color: #abb2bf; font-family: 'Courier New', monospace; font-size: 0.9em; line-height: 1.6; border-radius: 6px; padding: 12px 15px; overflow-x: auto; white-space: pre-wrap; }
        footer { text-align: center; padding: 30px 0; color: #7f8c8d; font-size: 0.9em; }
    </style>
</head>
<body>
    <header>
        <div class="container">
            <h1>selq Inspection Report</h1>
            <div class="meta">Generated: %s | Version: %s</div>
        </div>
    </header>
    <div class="container">
`, timestamp, html.EscapeString(insp.Version))
	return err
}

// writeSummary writes the inspection summary section
func (r *HTMLReporter) writeSummary(insp *types.Inspection, files []string, writer io.Writer) error {
	tables := make(map[string]struct{})
	databases := make(map[string]struct{})
	for _, info := range insp.Statements {
		if info.FirstTable != "" {
			tables[info.FirstTable] = struct{}{}
		}
		for _, db := range info.Databases {
			databases[db] = struct{}{}
		}
	}

	_, err := fmt.Fprintf(writer, `        <section class="summary">
            <h2>Overview</h2>
            <div class="summary-stats">
                <div class="stat-card">
                    <div class="label">Statements</div>
                    <div class="value">%d</div>
                </div>
                <div class="stat-card">
                    <div class="label">Files</div>
                    <div class="value">%d</div>
                </div>
                <div class="stat-card">
                    <div class="label">Tables</div>
                    <div class="value">%d</div>
                </div>
                <div class="stat-card">
                    <div class="label">Databases</div>
                    <div class="value">%d</div>
                </div>
            </div>
        </section>

`, len(insp.Statements), len(files), len(tables), len(databases))
	return err
}

// writeFileDetail writes the statements of a single file
func (r *HTMLReporter) writeFileDetail(file string, statements []types.StatementInfo, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, `        <section class="file-detail">
            <h3>%s</h3>
`, html.EscapeString(file))
	if err != nil {
		return err
	}

	for _, info := range statements {
		_, err := fmt.Fprintf(writer, `            <div class="statement">
                <div class="line">line %d</div>
                <div class="facts">%s</div>
                <div class="sql">%s</div>
            </div>
`, info.Line, statementFacts(info), html.EscapeString(info.Statement))
		if err != nil {
			return err
		}
	}

	_, err = writer.Write([]byte(`        </section>

`))
	return err
}

// statementFacts renders the extracted properties of one statement as a
// row of labeled spans, leaving out whatever the statement did not have
func statementFacts(info types.StatementInfo) string {
	var facts []string
	if info.FirstTable != "" {
		facts = append(facts, "table "+info.FirstTable)
	}
	if len(info.Databases) > 0 {
		facts = append(facts, "databases "+strings.Join(info.Databases, ", "))
	}
	if len(info.Columns) > 0 {
		facts = append(facts, "columns "+columnSummary(info.Columns))
	}
	if len(info.Predicates) > 0 {
		facts = append(facts, "predicates "+predicateSummary(info.Predicates))
	}
	if info.OrderBy != "" {
		facts = append(facts, "order by "+info.OrderBy)
	}
	if info.Top > 0 {
		facts = append(facts, fmt.Sprintf("top %d", info.Top))
	}

	var b strings.Builder
	for _, fact := range facts {
		b.WriteString("<span>")
		b.WriteString(html.EscapeString(fact))
		b.WriteString("</span>")
	}
	return b.String()
}

// writeFooter writes the HTML document footer
func (r *HTMLReporter) writeFooter(writer io.Writer) error {
	_, err := io.WriteString(writer, `        <footer>
            Generated by <strong>selq</strong> - SQL SELECT inspection tool
        </footer>
    </div>
</body>
</html>
`)
	return err
}

// FormatString returns the inspection as an HTML string
func (r *HTMLReporter) FormatString(insp *types.Inspection) (string, error) {
	var buf strings.Builder
	if err := r.Format(insp, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this reporter
func (r *HTMLReporter) Name() string {
	return "html"
}
