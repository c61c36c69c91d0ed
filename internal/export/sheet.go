// Package export writes a rendered result set to a spreadsheet. Sheet is a
// domain.Container, so it is filled by the same render pass as the screen.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hammamikhairi/cocktailbox/internal/domain"
	"github.com/hammamikhairi/cocktailbox/internal/render"
)

// SheetName is the worksheet the XLSX export writes to.
const SheetName = "Cocktails"

// Header is the column row of both export formats.
var Header = []string{"Name", "Category", "Alcoholic", "Glass", "Ingredients", "Instructions", "Image"}

// Compile-time interface check.
var _ domain.Container = (*Sheet)(nil)

// Sheet collects cards as spreadsheet rows.
type Sheet struct {
	render.Box
}

// NewSheet creates an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{}
}

// Rows returns the header followed by one row per card. Ingredient lines
// are joined with "; ".
func (s *Sheet) Rows() [][]string {
	cards := s.Cards()
	rows := make([][]string, 0, len(cards)+1)
	rows = append(rows, Header)
	for _, c := range cards {
		lines := make([]string, 0, len(c.Ingredients))
		for _, ing := range c.Ingredients {
			lines = append(lines, ing.Line())
		}
		rows = append(rows, []string{
			c.Name, c.Category, c.Alcoholic, c.Glass,
			strings.Join(lines, "; "), c.Instructions, c.Image,
		})
	}
	return rows
}

// WriteCSV writes the rows as CSV.
func (s *Sheet) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(s.Rows()); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteXLSX writes the rows to a workbook at path.
func (s *Sheet) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, row := range s.Rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}

// Save writes to path, choosing the format from the extension (.xlsx or
// .csv).
func (s *Sheet) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return s.WriteXLSX(path)
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		if err := s.WriteCSV(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("unsupported export format %q (want .xlsx or .csv)", filepath.Ext(path))
	}
}
