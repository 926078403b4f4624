package turns

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Fields returns the report field names in canonical order.
func (r *Result) Fields() []string {
	return []string{"observed", "expected", "variance", "obsdev", "stdev", "zscore", "pvalue"}
}

// Report renders the selected fields as a key/value table. An empty
// fields slice selects every field in canonical order. precision sets
// the number of decimal places for real-valued statistics; a negative
// precision keeps the shortest exact representation. An unknown field
// name is an error.
func (r *Result) Report(fields []string, precision int) (string, error) {
	if len(fields) == 0 {
		fields = r.Fields()
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false

	for _, f := range fields {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "observed":
			tbl.AppendRow(table.Row{"observed", strconv.Itoa(r.Observed)})
		case "expected":
			tbl.AppendRow(table.Row{"expected", formatFloat(r.Expected, precision)})
		case "variance":
			tbl.AppendRow(table.Row{"variance", formatFloat(r.Variance, precision)})
		case "obsdev":
			tbl.AppendRow(table.Row{"obsdev", formatFloat(r.ObsDev, precision)})
		case "stdev":
			tbl.AppendRow(table.Row{"stdev", formatFloat(r.StDev, precision)})
		case "zscore":
			tbl.AppendRow(table.Row{"zscore", formatFloat(r.ZScore, precision)})
		case "pvalue":
			tbl.AppendRow(table.Row{"pvalue", formatFloat(r.PValue, precision)})
		default:
			return "", fmt.Errorf("unknown report field %q", f)
		}
	}
	return tbl.Render(), nil
}

func formatFloat(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
