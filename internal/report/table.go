package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/ut/internal/batch"
	"github.com/DjordjeVuckovic/ut/internal/format"
)

func writeResultTable(w io.Writer, r *format.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Decimal:\t%s\n", r.Decimal)
	if r.HasBases() {
		fmt.Fprintf(tw, "Hex:\t%s\n", r.Hex)
		fmt.Fprintf(tw, "Binary:\t%s\n", r.Binary)
	}

	return tw.Flush()
}

func writeBatchTable(w io.Writer, rep *batch.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if rep.Name != "" {
		fmt.Fprintf(tw, "=== Suite: %s ===\n\n", rep.Name)
	}

	header := []string{"Case", "Expression", "Decimal", "Hex", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, cr := range rep.Cases {
		dec, hex := "-", "-"
		if cr.Result != nil {
			dec = cr.Result.Decimal
			if cr.Result.HasBases() {
				hex = cr.Result.Hex
			}
		} else if cr.ErrorKind != "" {
			dec = cr.ErrorKind + " error"
		}

		status := "PASS"
		if !cr.Passed {
			status = "FAIL: " + cr.Reason
		}
		row := []string{cr.ID, cr.Expr, dec, hex, status}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintf(tw, "\n%d/%d passed\n", rep.Passed, rep.Total)
	return tw.Flush()
}
