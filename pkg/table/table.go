// Package table prints records as ASCII tables.
package table

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"

	"syncpoint/pkg/json"
)

const (
	DefaultTransverseStringLength = 64
	DefaultPortraitStringLength   = 128
)

// RenderAsTable writes i to w. A map is printed as field/value rows, a slice
// of maps as one row each; fields picks the keys and their order.
func RenderAsTable(w io.Writer, i interface{}, fields []string) error {
	switch x := i.(type) {
	case map[string]interface{}:
		renderShowTable(w, x, fields)
	case []map[string]interface{}:
		renderListTable(w, x, fields)
	default:
		return errors.Errorf("table: cannot render %T", i)
	}
	return nil
}

func renderListTable(w io.Writer, data []map[string]interface{}, fields []string) {
	header := make(table.Row, len(fields))
	for i, f := range fields {
		header[i] = f
	}
	rows := make([]table.Row, len(data))
	for i, d := range data {
		row := make(table.Row, len(fields))
		for k, v := range d {
			index := indexOf(fields, k)
			if index == -1 {
				continue
			}
			row[index] = text.WrapHard(toString(v), DefaultTransverseStringLength)
		}
		rows[i] = row
	}
	render(w, header, rows)
}

func renderShowTable(w io.Writer, data map[string]interface{}, fields []string) {
	header := table.Row{"Field", "Value"}
	rows := make([]table.Row, 0, len(fields))
	for _, f := range fields {
		v, ok := data[f]
		if !ok {
			continue
		}
		rows = append(rows, table.Row{f, text.WrapHard(toString(v), DefaultPortraitStringLength)})
	}
	render(w, header, rows)
}

func render(w io.Writer, header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
}

func indexOf(list []string, target string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return -1
}

func toString(d interface{}) string {
	switch x := d.(type) {
	case bool:
		return fmt.Sprintf("%t", x)
	case string:
		return x
	case int, int64, uint, uint64, float64:
		return fmt.Sprintf("%v", x)
	default:
		j, _ := json.Marshal(d)
		return string(j)
	}
}
