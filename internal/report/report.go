package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/ut/internal/batch"
	"github.com/DjordjeVuckovic/ut/internal/format"
)

func WriteResult(w io.Writer, r *format.Result, f Format) error {
	if f == Text {
		return writeResultTable(w, r)
	}
	return encode(w, r, f)
}

func WriteBatch(w io.Writer, rep *batch.Report, f Format) error {
	if f == Text {
		return writeBatchTable(w, rep)
	}
	return encode(w, rep, f)
}

func encode(w io.Writer, v any, f Format) error {
	switch f {
	case JSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", f)
	}
}
