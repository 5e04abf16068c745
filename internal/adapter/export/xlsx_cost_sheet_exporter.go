package export

import (
	"bytes"
	"fmt"

	"import_admin/internal/domain/entities"
	"import_admin/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	costSheetName   = "Costos"
	// first row of the cost table; rows above hold the import header.
	tableStartRow = 7
)

// XLSXCostSheetExporter renders a cost sheet as an Excel workbook.
type XLSXCostSheetExporter struct{}

var _ interfaces.ICostSheetExporter = (*XLSXCostSheetExporter)(nil)

func NewXLSXCostSheetExporter() *XLSXCostSheetExporter {
	return &XLSXCostSheetExporter{}
}

func (e *XLSXCostSheetExporter) ContentType() string {
	return xlsxContentType
}

func (e *XLSXCostSheetExporter) Render(sheet entities.CostSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", costSheetName); err != nil {
		return nil, err
	}

	header := [][2]any{
		{"Importación", sheet.ImportID},
		{"Vehículo", sheet.CarLabel},
		{"Cliente", sheet.ClientName},
		{"Estado", sheet.Status.Label()},
		{"Entrega tentativa", sheet.Delivery},
	}
	for i, kv := range header {
		row := i + 1
		if err := setRow(f, row, kv[0], kv[1]); err != nil {
			return nil, err
		}
	}

	if err := setRow(f, tableStartRow, "Concepto", "Costo real", "Costo cliente", "Margen"); err != nil {
		return nil, err
	}

	row := tableStartRow + 1
	for _, r := range sheet.Rows {
		if err := setRow(f, row, r.Name, r.Real.InexactFloat64(), r.Client.InexactFloat64(), r.Margin.InexactFloat64()); err != nil {
			return nil, err
		}
		row++
	}
	if err := setRow(f, row, "Total",
		sheet.TotalReal.InexactFloat64(),
		sheet.TotalClient.InexactFloat64(),
		sheet.TotalMargin().InexactFloat64(),
	); err != nil {
		return nil, err
	}

	if err := styleSheet(f, row); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(costSheetName, cell, &values)
}

func styleSheet(f *excelize.File, totalRow int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}
	boldMoney, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 4})
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(costSheetName, "A1", "A5", bold); err != nil {
		return err
	}
	if err := f.SetCellStyle(costSheetName, cellName(1, tableStartRow), cellName(4, tableStartRow), bold); err != nil {
		return err
	}
	if totalRow > tableStartRow+1 {
		if err := f.SetCellStyle(costSheetName, cellName(2, tableStartRow+1), cellName(4, totalRow-1), money); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(costSheetName, cellName(1, totalRow), cellName(1, totalRow), bold); err != nil {
		return err
	}
	if err := f.SetCellStyle(costSheetName, cellName(2, totalRow), cellName(4, totalRow), boldMoney); err != nil {
		return err
	}
	return f.SetColWidth(costSheetName, "A", "A", 28)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
