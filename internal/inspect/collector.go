package inspect

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/selquery/selq"
	"github.com/selquery/selq/internal/discovery"
	"github.com/selquery/selq/internal/errors"
	"github.com/selquery/selq/internal/scan"
	"github.com/selquery/selq/pkg/types"
)

// SchemaVersion is the inspection data schema version
const SchemaVersion = "1.0"

// Collector aggregates statement inspections across files
type Collector struct {
	inspection *types.Inspection
}

// NewCollector creates a new inspection collector
func NewCollector() *Collector {
	return &Collector{
		inspection: &types.Inspection{
			Version:   SchemaVersion,
			Timestamp: time.Now(),
		},
	}
}

// CollectResults merges worker pool results into the aggregate, in input
// order. Files that failed to read are skipped; the first failure is
// returned after all results are merged.
func (c *Collector) CollectResults(results []FileResult) error {
	var firstErr error
	for _, r := range results {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		c.inspection.Statements = append(c.inspection.Statements, r.Statements...)
	}
	return firstErr
}

// Add appends a single statement inspection
func (c *Collector) Add(info types.StatementInfo) {
	c.inspection.Statements = append(c.inspection.Statements, info)
}

// Sort orders the aggregated statements by file, then line
func (c *Collector) Sort() {
	sort.SliceStable(c.inspection.Statements, func(i, j int) bool {
		a, b := c.inspection.Statements[i], c.inspection.Statements[j]
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Line < b.Line
	})
}

// Inspection returns the aggregated inspection data
func (c *Collector) Inspection() *types.Inspection {
	return c.inspection
}

// Reset clears all collected data
func (c *Collector) Reset() {
	c.inspection = &types.Inspection{
		Version:   SchemaVersion,
		Timestamp: time.Now(),
	}
}

// InspectFile reads a discovered file and inspects its SELECT statements
func InspectFile(file discovery.DiscoveredFile) ([]types.StatementInfo, error) {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, errors.NewReadError(file.Path, err.Error())
	}
	return InspectSource(file.RelativePath, string(data)), nil
}

// InspectSource splits src into statements and inspects each SELECT.
// Other statement kinds (DDL, DML, procedural) are skipped.
func InspectSource(file, src string) []types.StatementInfo {
	var infos []types.StatementInfo
	for _, stmt := range scan.SplitStatements(src) {
		if !discovery.IsSelect(stmt.Text) {
			continue
		}
		start := stmt.Pos + leadingSpace(stmt.Text)
		infos = append(infos, inspectStatement(file, lineAt(src, start), stmt.Text))
	}
	return infos
}

// inspectStatement runs every extraction against a single statement
func inspectStatement(file string, line int, stmt string) types.StatementInfo {
	return types.StatementInfo{
		File:       file,
		Line:       line,
		Statement:  strings.TrimSpace(selq.Normalize(stmt)),
		FirstTable: selq.ExtractFirstTableNameFromSelectClauseInSql(stmt),
		Databases:  selq.ExtractDatabaseNamesFromSql(stmt),
		Columns:    selq.ExtractColumnDetailsFromSelectClauseInSql(stmt),
		Predicates: selq.ExtractWhereClausesFromSql(stmt),
		OrderBy:    orderByBody(selq.ExtractOrderByClause(stmt)),
		Top:        selq.ExtractTopNumber(stmt),
	}
}

// orderByBody strips the leading ORDER BY keyword from an extracted
// clause; reports store only the ordering expression.
func orderByBody(clause string) string {
	if end, ok := scan.MatchKeywordAt(clause, 0, "ORDER BY"); ok {
		return strings.TrimSpace(clause[end:])
	}
	return clause
}

// lineAt returns the 1-based line number of byte offset pos in src
func lineAt(src string, pos int) int {
	return 1 + strings.Count(src[:pos], "\n")
}

// leadingSpace returns the number of leading whitespace bytes in s
func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t\n\r"))
}
