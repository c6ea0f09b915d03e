package plotter

import (
	"errors"
	"fmt"

	"mixlattice/internal/model"
)

// 前端绘图只负责渲染，这里产出完整的图表配置：
// 选 2 个原料出二元散点图，选 3 个出三元相图

// ErrSelection 选择的原料数量或名称不合法
var ErrSelection = errors.New("invalid plot selection")

// sliceThreshold 切面过滤阈值 (g)：
// 未选中原料的产品质量超过该值的点不属于所选切面，不参与绘图
const sliceThreshold = 0.01

// 图表类型
const (
	KindBinary  = "binary"
	KindTernary = "ternary"
)

// 系列配色，顺序与原料下标对应
var palette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Axis 坐标轴（对应一个选中的原料）
type Axis struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Point 一个可绘制的配方点，Values 与选中原料顺序对齐，取产品质量百分比
type Point struct {
	FormulaNumber int       `json:"formulaNumber"`
	Values        []float64 `json:"values"`
}

// PlotConfig 完整图表配置
type PlotConfig struct {
	Kind   string  `json:"kind"`
	Title  string  `json:"title"`
	Axes   []Axis  `json:"axes"`
	Points []Point `json:"points"`
}

// Build 根据设计结果与选中的原料名构建图表配置
// 必须恰好选择 2 或 3 个原料；标题按设计模式区分质量百分比口径
func Build(result *model.DesignResult, selected []string) (*PlotConfig, error) {
	if len(selected) < 2 || len(selected) > 3 {
		return nil, fmt.Errorf("%w: 需要选择 2 或 3 个原料，当前 %d", ErrSelection, len(selected))
	}

	indices := make([]int, 0, len(selected))
	for _, name := range selected {
		idx := ingredientIndex(result.Ingredients, name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: 未知原料 %q", ErrSelection, name)
		}
		indices = append(indices, idx)
	}

	config := &PlotConfig{
		Kind: KindBinary,
		Axes: make([]Axis, 0, len(indices)),
	}
	if len(indices) == 3 {
		config.Kind = KindTernary
	}

	for _, idx := range indices {
		config.Axes = append(config.Axes, Axis{
			Name:  result.Ingredients[idx].Name,
			Color: palette[idx%len(palette)],
		})
	}

	config.Title = buildTitle(config, result.Mode)

	// 切面过滤：未选中原料必须为（近似）零，保证画出的是真实切面
	for i := range result.Rows {
		row := &result.Rows[i]
		if !onSlice(row, indices) {
			continue
		}

		values := make([]float64, len(indices))
		for j, idx := range indices {
			values[j] = row.ProductWtPct[idx]
		}
		config.Points = append(config.Points, Point{
			FormulaNumber: row.FormulaNumber,
			Values:        values,
		})
	}

	return config, nil
}

// buildTitle 无溶剂时各点只保证配比，标题标注为归一化口径
func buildTitle(config *PlotConfig, mode model.DesignMode) string {
	suffix := "Normalized Product Weight %"
	if mode == model.ModeSolvent {
		suffix = "Product Weight %"
	}

	if config.Kind == KindTernary {
		return fmt.Sprintf("Simplex Lattice - %s (%s; %s; %s)",
			suffix, config.Axes[0].Name, config.Axes[1].Name, config.Axes[2].Name)
	}
	return fmt.Sprintf("%s vs %s (%s)", config.Axes[0].Name, config.Axes[1].Name, suffix)
}

// onSlice 判断配方点是否落在所选切面上
func onSlice(row *model.DesignRow, selected []int) bool {
	for i, mass := range row.ProductMass {
		if containsInt(selected, i) {
			continue
		}
		if mass > sliceThreshold {
			return false
		}
	}
	return true
}

func ingredientIndex(ings []model.Ingredient, name string) int {
	for i := range ings {
		if ings[i].Name == name {
			return i
		}
	}
	return -1
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
