package model

import "fmt"

// 表格列名是对外格式契约（Excel 导出与前端表格共用），
// 活性两列在溶剂模式下对溶剂原料改用合并口径的标题。

const (
	ColFormulaNumber = "Formula Number"
	ColSumMass       = "Sum (Product mass) [g]"
	ColSumProductWt  = "Sum (Product weight) [%]"
	ColSumActiveWt   = "Sum (Active weight) [%]"
)

// ProductMassColumn 产品质量列名
func ProductMassColumn(name string) string {
	return fmt.Sprintf("%s (Product mass) [g]", name)
}

// ProductVolumeColumn 产品体积列名
func ProductVolumeColumn(name string) string {
	return fmt.Sprintf("%s (Product volume) [mL]", name)
}

// ImpurityMassColumn 杂质质量列名
func ImpurityMassColumn(name string) string {
	return fmt.Sprintf("%s (Impurity Mass) [g]", name)
}

// ProductWtColumn 产品质量百分比列名
func ProductWtColumn(name string) string {
	return fmt.Sprintf("%s (Product wt) [%%]", name)
}

// ActiveMassColumn 活性质量列名，溶剂原料使用合并口径标题
func ActiveMassColumn(name string, isSolvent bool) string {
	if isSolvent {
		return fmt.Sprintf("%s (Active Mass + Solvent as active) [g]", name)
	}
	return fmt.Sprintf("%s (Active Mass) [g]", name)
}

// ActiveWtColumn 活性质量百分比列名，溶剂原料使用合并口径标题
func ActiveWtColumn(name string, isSolvent bool) string {
	if isSolvent {
		return fmt.Sprintf("%s (Component Active + Solvent as active, wt) [%%]", name)
	}
	return fmt.Sprintf("%s (Active wt) [%%]", name)
}

// DatapointColumns 数据表完整列序：
// 编号 → 产品质量 → 产品体积 → 活性质量 → 杂质质量 → 产品% → 活性% → 合计
func DatapointColumns(ings []Ingredient) []string {
	cols := []string{ColFormulaNumber}

	for _, ing := range ings {
		cols = append(cols, ProductMassColumn(ing.Name))
	}
	for _, ing := range ings {
		cols = append(cols, ProductVolumeColumn(ing.Name))
	}
	for _, ing := range ings {
		cols = append(cols, ActiveMassColumn(ing.Name, ing.IsSolvent))
	}
	for _, ing := range ings {
		cols = append(cols, ImpurityMassColumn(ing.Name))
	}
	for _, ing := range ings {
		cols = append(cols, ProductWtColumn(ing.Name))
	}
	for _, ing := range ings {
		cols = append(cols, ActiveWtColumn(ing.Name, ing.IsSolvent))
	}

	return append(cols, ColSumMass, ColSumProductWt, ColSumActiveWt)
}
