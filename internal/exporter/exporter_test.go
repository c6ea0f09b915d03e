package exporter

import (
	"strconv"
	"testing"

	"mixlattice/internal/designer"
	"mixlattice/internal/model"
)

func createTestResult(t *testing.T) *model.DesignResult {
	t.Helper()

	ings := []model.Ingredient{
		{Name: "A", Purity: 0.98, MaxActive: 0.20, Density: 1.2},
		{Name: "B", Purity: 0.95, MaxActive: 0.15, Density: 0.9},
		{Name: "S", Purity: 1.00, MaxActive: 1.00, Density: 1.0, IsSolvent: true},
	}
	params := model.GlobalParams{Degree: 2, TotalMass: 100, Replicates: 1, Closure: model.ClosureRatio}

	result, err := designer.NewEngine().Evaluate(ings, params)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	return result
}

// TestExportSheets 导出文件包含两个契约工作表
func TestExportSheets(t *testing.T) {
	result := createTestResult(t)

	f, err := NewExporter().Export(result)
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	found := map[string]bool{}
	for _, s := range sheets {
		found[s] = true
	}
	if !found[SheetDatapoints] || !found[SheetParameters] {
		t.Errorf("工作表 = %v, want 包含 %s 与 %s", sheets, SheetDatapoints, SheetParameters)
	}
}

// TestExportDatapoints 数据表表头与行数
func TestExportDatapoints(t *testing.T) {
	result := createTestResult(t)

	f, err := NewExporter().Export(result)
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetDatapoints)
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}

	// 表头 + 每个有效配方一行
	if len(rows) != len(result.Rows)+1 {
		t.Fatalf("数据表行数 = %d, want %d", len(rows), len(result.Rows)+1)
	}

	expectedCols := model.DatapointColumns(result.Ingredients)
	header := rows[0]
	if len(header) != len(expectedCols) {
		t.Fatalf("表头列数 = %d, want %d", len(header), len(expectedCols))
	}
	for i, col := range expectedCols {
		if header[i] != col {
			t.Errorf("表头列 %d = %q, want %q", i, header[i], col)
		}
	}

	// 首列是从 1 开始的配方编号
	for r := 1; r < len(rows); r++ {
		num, err := strconv.Atoi(rows[r][0])
		if err != nil || num != r {
			t.Errorf("行 %d 配方编号 = %q, want %d", r, rows[r][0], r)
		}
	}
}

// TestExportParameters 参数表回显全局设置与原料配置
func TestExportParameters(t *testing.T) {
	result := createTestResult(t)

	f, err := NewExporter().Export(result)
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetParameters)
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}

	cells := map[string]string{}
	for _, row := range rows {
		if len(row) >= 2 {
			cells[row[0]] = row[1]
		}
	}

	if cells["Degree (m)"] != "2" {
		t.Errorf("Degree 回显 = %q, want 2", cells["Degree (m)"])
	}
	if cells["Total Mass (g)"] != "100" {
		t.Errorf("Total Mass 回显 = %q, want 100", cells["Total Mass (g)"])
	}
	if cells["Design Mode"] != string(model.ModeSolvent) {
		t.Errorf("Design Mode 回显 = %q, want %s", cells["Design Mode"], model.ModeSolvent)
	}

	// 每个原料一行参数回显
	for i := range result.Ingredients {
		ing := &result.Ingredients[i]
		if _, ok := cells[ing.Name]; !ok {
			t.Errorf("参数表缺少原料 %s 的回显", ing.Name)
		}
	}
}
