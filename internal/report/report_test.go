package report

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/ut/internal/batch"
	"github.com/DjordjeVuckovic/ut/internal/format"
)

func sampleResult() *format.Result {
	r := format.Format(265, nil)
	r.Expression = "0xFF + 0b1010"
	return &r
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", Text, false},
		{"text", Text, false},
		{"JSON", JSON, false},
		{" yaml ", YAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteResult(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteResult(&buf, sampleResult(), Text))
		assert.Equal(t, "Decimal:  265\nHex:      0x109\nBinary:   0b100001001\n", buf.String())
	})

	t.Run("text without bases", func(t *testing.T) {
		var buf bytes.Buffer
		r := format.Format(0.5, nil)
		require.NoError(t, WriteResult(&buf, &r, Text))
		assert.Equal(t, "Decimal:  0.5\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteResult(&buf, sampleResult(), JSON))
		assert.JSONEq(t, `{"expression":"0xFF + 0b1010","decimal":"265","hex":"0x109","binary":"0b100001001"}`, buf.String())
	})

	t.Run("json omits bases for infinity", func(t *testing.T) {
		var buf bytes.Buffer
		r := format.Format(math.Inf(1), nil)
		require.NoError(t, WriteResult(&buf, &r, JSON))
		assert.JSONEq(t, `{"decimal":"+Inf"}`, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteResult(&buf, sampleResult(), YAML))

		var got map[string]string
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, map[string]string{
			"expression": "0xFF + 0b1010",
			"decimal":    "265",
			"hex":        "0x109",
			"binary":     "0b100001001",
		}, got)
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, WriteResult(&buf, sampleResult(), Format("xml")))
	})
}

func TestWriteBatch(t *testing.T) {
	r := format.Format(8, nil)
	rep := &batch.Report{
		Name:   "smoke",
		Total:  2,
		Passed: 1,
		Failed: 1,
		Cases: []batch.CaseResult{
			{ID: "precedence", Expr: "2 + 2 * 3", Passed: true, Result: &r},
			{ID: "unclosed", Expr: "(2 + 3", ErrorKind: "parse", Error: "parse error", Reason: "unexpected error: parse error"},
		},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteBatch(&buf, rep, Text))
		out := buf.String()
		assert.Contains(t, out, "=== Suite: smoke ===")
		assert.Contains(t, out, "PASS")
		assert.Contains(t, out, "FAIL: unexpected error: parse error")
		assert.Contains(t, out, "parse error")
		assert.Contains(t, out, "1/2 passed")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteBatch(&buf, rep, JSON))
		assert.Contains(t, buf.String(), `"failed": 1`)
		assert.Contains(t, buf.String(), `"error_kind": "parse"`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteBatch(&buf, rep, YAML))

		var got batch.Report
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, 2, got.Total)
		require.Len(t, got.Cases, 2)
		assert.Equal(t, "8", got.Cases[0].Result.Decimal)
	})
}
