package steps

import (
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
)

// getCellValue gets a cell value from a table row by column name.
// The first row (table.Rows[0]) is the header.
func getCellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	for i, headerCell := range table.Rows[0].Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}

	return ""
}

func getIntCell(table *godog.Table, row *messages.PickleTableRow, columnName string) (int, error) {
	raw := getCellValue(table, row, columnName)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid integer %q", columnName, raw)
	}
	return value, nil
}

func getFloatCell(table *godog.Table, row *messages.PickleTableRow, columnName string) (float64, error) {
	raw := getCellValue(table, row, columnName)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid number %q", columnName, raw)
	}
	return value, nil
}

// cargoRow is one row of a cargo table: id | weight | count | category | parent
type cargoRow struct {
	id       int
	weight   float64
	count    int
	category string
	parent   string
}

func parseCargoTable(table *godog.Table) ([]cargoRow, error) {
	rows := make([]cargoRow, 0, len(table.Rows))
	for _, row := range table.Rows[1:] {
		id, err := getIntCell(table, row, "id")
		if err != nil {
			return nil, err
		}
		weight, err := getFloatCell(table, row, "weight")
		if err != nil {
			return nil, err
		}
		count, err := getIntCell(table, row, "count")
		if err != nil {
			return nil, err
		}
		rows = append(rows, cargoRow{
			id:       id,
			weight:   weight,
			count:    count,
			category: getCellValue(table, row, "category"),
			parent:   getCellValue(table, row, "parent"),
		})
	}
	return rows, nil
}
