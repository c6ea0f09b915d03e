package exporter

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"mixlattice/internal/model"
)

// 工作表名称是导出格式契约的一部分，不要改动
const (
	SheetDatapoints = "Datapoints"
	SheetParameters = "Parameters"
)

// Exporter Excel 导出器
type Exporter struct{}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export 将设计结果导出为两个工作表：
// Datapoints 为完整配方表，Parameters 为生成时的输入参数回显
func (e *Exporter) Export(result *model.DesignResult) (*excelize.File, error) {
	f := excelize.NewFile()

	f.SetSheetName("Sheet1", SheetDatapoints)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := e.writeDatapoints(f, result); err != nil {
		return nil, err
	}
	f.SetRowStyle(SheetDatapoints, 1, 1, headerStyle)

	if err := e.writeParameters(f, result); err != nil {
		return nil, err
	}
	f.SetRowStyle(SheetParameters, 1, 1, headerStyle)

	return f, nil
}

// writeDatapoints 写入配方数据表
func (e *Exporter) writeDatapoints(f *excelize.File, result *model.DesignResult) error {
	headers := model.DatapointColumns(result.Ingredients)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SheetDatapoints, cell, h)
	}

	for r, row := range result.Rows {
		values := datapointValues(&row)
		for c, val := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(SheetDatapoints, cell, val)
		}
	}

	// 编号列窄一些，数据列按标题长度留宽
	f.SetColWidth(SheetDatapoints, "A", "A", 16)
	if last, err := excelize.ColumnNumberToName(len(headers)); err == nil {
		f.SetColWidth(SheetDatapoints, "B", last, 28)
	}

	return nil
}

// datapointValues 按 DatapointColumns 的列序展开一行数据
func datapointValues(row *model.DesignRow) []interface{} {
	values := []interface{}{row.FormulaNumber}

	for _, v := range row.ProductMass {
		values = append(values, v)
	}
	for _, v := range row.ProductVolume {
		values = append(values, v)
	}
	for _, v := range row.ActiveMass {
		values = append(values, v)
	}
	for _, v := range row.ImpurityMass {
		values = append(values, v)
	}
	for _, v := range row.ProductWtPct {
		values = append(values, v)
	}
	for _, v := range row.ActiveWtPct {
		values = append(values, v)
	}

	return append(values, row.SumMass, row.SumProductWtPct, row.SumActiveWtPct)
}

// writeParameters 写入参数回显表，便于追溯设计是如何生成的
func (e *Exporter) writeParameters(f *excelize.File, result *model.DesignResult) error {
	if _, err := f.NewSheet(SheetParameters); err != nil {
		return fmt.Errorf("failed to create parameters sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Parameter", "Value"},
		{"Global Settings", ""},
		{"Degree (m)", result.Params.Degree},
		{"Total Mass (g)", result.Params.TotalMass},
		{"Replicates", result.Params.Replicates},
		{"Closure Mode", string(result.Params.Closure)},
		{"Design Mode", string(result.Mode)},
		{"Timestamp", time.Now().Format("2006-01-02 15:04:05")},
		{"", ""},
		{"Ingredients Config", ""},
		{"Name", "Purity | Max Active | Density | Is Solvent"},
	}

	for i := range result.Ingredients {
		ing := &result.Ingredients[i]
		info := fmt.Sprintf("%.4g | %.4g | %.4g | %v", ing.Purity, ing.MaxActive, ing.Density, ing.IsSolvent)
		rows = append(rows, []interface{}{ing.Name, info})
	}

	for r, row := range rows {
		for c, val := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			f.SetCellValue(SheetParameters, cell, val)
		}
	}

	f.SetColWidth(SheetParameters, "A", "A", 24)
	f.SetColWidth(SheetParameters, "B", "B", 48)

	return nil
}
