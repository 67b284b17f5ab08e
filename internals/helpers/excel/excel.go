// internals/helpers/excel/excel.go
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Column pairs an internal row key with the human-readable label it is
// exported under. Column order defines spreadsheet column order.
type Column struct {
	Key   string
	Label string
}

// Project reshapes raw joined rows into label-keyed rows, preserving row
// order. No filtering or aggregation, only rename/reshape.
func Project(rows []map[string]interface{}, columns []Column) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		projected := make(map[string]string, len(columns))
		for _, col := range columns {
			projected[col.Label] = cellString(row[col.Key])
		}
		out = append(out, projected)
	}
	return out
}

// Encode writes a header row of labels plus one row per projected entry
// and returns the xlsx buffer.
func Encode(projected []map[string]string, columns []Column) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col.Label); err != nil {
			return nil, err
		}
	}

	for r, row := range projected {
		for i, col := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, row[col.Label]); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
