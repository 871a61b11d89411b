package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"terra-carbon/market-portal/market-portal-backend/internal/admin"
)

var projectColumns = []string{"ID", "Name", "Type", "Country", "Status", "Risk", "Price/t (USD)", "Available (t)", "Issued (t)"}

// ExportProjectsExcel writes the admin project table as an Excel workbook
func ExportProjectsExcel(w io.Writer, projects []admin.ProjectDetail) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Projects"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"166534"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range projectColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(projectColumns), 1)
	if err := f.SetCellStyle(sheet, "A1", endHeader, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for r, p := range projects {
		values := []any{
			p.ID, p.Name, p.ProjectType, p.Country,
			string(p.Status), string(p.RiskRating),
			p.PricePerTonUSD, p.AvailableSupplyTons, p.TotalIssuedTons,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", r+1, err)
			}
		}
	}

	if err := f.AutoFilter(sheet, fmt.Sprintf("A1:%s", endHeader), nil); err != nil {
		return fmt.Errorf("failed to set auto filter: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
