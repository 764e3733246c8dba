package base

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/wrike/internal/config"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
)

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Alignment is a table column alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table is the tabular rendering of a result.
type Table struct {
	Headers []string
	Rows    [][]string
	Aligns  []Alignment
}

// Column selects a value from each record for a table column.
type Column struct {
	Header string
	Path   []string
	Align  Alignment
}

// Col is shorthand for a left-aligned Column.
func Col(header string, path ...string) Column {
	return Column{Header: header, Path: path}
}

// RecordTable builds a table with one row per record.
func RecordTable(records []wrike.Record, columns ...Column) *Table {
	t := &Table{}
	for _, col := range columns {
		t.Headers = append(t.Headers, col.Header)
		t.Aligns = append(t.Aligns, col.Align)
	}

	for _, r := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			if v, ok := r.Lookup(col.Path...); ok {
				row[i] = cell(v)
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// cell formats a JSON value for a table cell.
func cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, cell(item))
		}
		return strings.Join(parts, ", ")
	case map[string]any, wrike.Record:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}

// Format returns the output format resolved by Setup.
func (c *Command) Format() string {
	if c.format != "" {
		return c.format
	}
	if isTerminal() {
		return config.OutputTable
	}
	return config.OutputJSON
}

// Render writes v to the UI in the configured format. t is used for the
// table format; a nil t falls back to JSON.
func (c *Command) Render(v any, t *Table) error {
	out, err := render(c.Format(), v, t)
	if err != nil {
		return err
	}
	c.UI.Output(out)
	return nil
}

func render(format string, v any, t *Table) (string, error) {
	switch {
	case format == config.OutputYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("error encoding yaml: %w", err)
		}
		return strings.TrimRight(string(b), "\n"), nil

	case format == config.OutputTable && t != nil:
		return renderTable(t), nil

	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("error encoding json: %w", err)
		}
		return string(b), nil
	}
}

func renderTable(t *Table) string {
	columns := len(t.Headers)
	if columns == 0 {
		return ""
	}

	style := table.StyleRounded
	style.Format.Header = text.FormatDefault

	tw := table.NewWriter()
	tw.SetStyle(style)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = t.Headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range t.Rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(t.Aligns) && t.Aligns[i] == AlignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
