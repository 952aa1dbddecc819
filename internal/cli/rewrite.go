package cli

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/selquery/selq"
)

// RewriteOptions selects the conversions to apply to a statement.
// Conversions run in a fixed order: parameter substitution, DISTINCT,
// ORDER BY, TOP, COUNT.
type RewriteOptions struct {
	Top      int
	Count    bool
	Distinct bool
	OrderBy  string
	Params   []string // name=value pairs for @name substitution
}

// Rewrite applies the requested conversions to a statement and prints the
// result. The statement argument "-" reads from stdin. With no conversion
// flags the statement is only normalized.
func Rewrite(statement string, opts RewriteOptions) error {
	sql := statement
	if sql == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		sql = string(data)
	}

	if len(opts.Params) > 0 {
		values := url.Values{}
		for _, p := range opts.Params {
			name, value, ok := strings.Cut(p, "=")
			if !ok {
				return fmt.Errorf("invalid parameter %q (expected name=value)", p)
			}
			values.Set(strings.TrimPrefix(name, "@"), value)
		}
		sql = selq.SubstituteParameters(sql, values)
	}

	converted := false
	if opts.Distinct {
		sql = selq.ConvertSelectStatementToSelectDistinct(sql)
		converted = true
	}
	if opts.OrderBy != "" {
		sql = selq.ConvertSelectStatementToSelectOrderBy(sql, opts.OrderBy)
		converted = true
	}
	if opts.Top > 0 {
		sql = selq.ConvertSelectStatementToSelectTop(sql, opts.Top)
		converted = true
	}
	if opts.Count {
		sql = selq.ConvertSelectStatementToSelectCount(sql)
		converted = true
	}
	if !converted {
		sql = strings.TrimSpace(selq.Normalize(sql))
	}

	if sql == "" {
		return fmt.Errorf("failed to rewrite: not a SELECT statement")
	}

	fmt.Println(sql)
	return nil
}
