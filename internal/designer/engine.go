package designer

import (
	"fmt"

	"mixlattice/internal/lattice"
	"mixlattice/internal/model"
)

// Engine 配方设计引擎
// 消费格点矩阵与原料参数，产出经过校验的配方表；
// 纯内存计算，无共享状态，同一输入的两次运行结果完全一致
type Engine struct{}

// NewEngine 创建设计引擎
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate 执行一次完整设计
// 配置错误整体中止；单行不可行仅剔除该行并计入原因统计
func (e *Engine) Evaluate(ings []model.Ingredient, params model.GlobalParams) (*model.DesignResult, error) {
	if params.Closure == "" {
		params.Closure = model.ClosureRatio
	}

	if err := ValidateConfig(ings, params); err != nil {
		return nil, err
	}

	points, err := lattice.Generate(len(ings), params.Degree)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	solventIdx := solventIndex(ings)

	result := &model.DesignResult{
		Ingredients:   ings,
		Params:        params,
		Mode:          model.ModePlain,
		SolventIdx:    solventIdx,
		RejectReasons: make(map[model.RejectReason]int),
	}
	if solventIdx >= 0 {
		result.Mode = model.ModeSolvent
	}

	formula := 0
	for _, z := range points {
		row := e.buildRow(z, ings, params, solventIdx)

		reason, ok := checkRow(&row, params, solventIdx)
		if !ok {
			result.RejectedCount++
			result.RejectReasons[reason]++
			result.Rejected = append(result.Rejected, model.RejectedPoint{
				Fractions: z,
				Reason:    reason,
			})
			continue
		}

		// 通过校验后按重复次数原样复制，副本在输出中相邻
		for r := 0; r < params.Replicates; r++ {
			formula++
			replica := row
			replica.FormulaNumber = formula
			result.Rows = append(result.Rows, replica)
		}
	}

	return result, nil
}

// buildRow 将一个格点换算为配方行
//
// 非溶剂原料：
//
//	目标活性 = z_i × 最大活性 × 总质量
//	产品质量 = 目标活性 / 纯度
//
// 溶剂原料作为补齐质量加入，其活性合并全部原料的杂质
func (e *Engine) buildRow(z []float64, ings []model.Ingredient, params model.GlobalParams, solventIdx int) model.DesignRow {
	n := len(ings)

	row := model.DesignRow{
		Fractions:     z,
		TargetActive:  make([]float64, n),
		ProductMass:   make([]float64, n),
		ProductVolume: make([]float64, n),
		ImpurityMass:  make([]float64, n),
		ActiveMass:    make([]float64, n),
		ProductWtPct:  make([]float64, n),
		ActiveWtPct:   make([]float64, n),
	}

	// 1. 非溶剂原料按活性目标换算产品质量
	sumNonSolvent := 0.0
	for i := range ings {
		if i == solventIdx {
			continue
		}
		row.TargetActive[i] = z[i] * ings[i].MaxActive * params.TotalMass
		row.ProductMass[i] = row.TargetActive[i] / ings[i].Purity
		sumNonSolvent += row.ProductMass[i]
	}

	// 2. 溶剂质量 = 总质量 - 非溶剂质量和（可能为负，交给单行校验处理）
	if solventIdx >= 0 {
		row.ProductMass[solventIdx] = params.TotalMass - sumNonSolvent
	}

	// 3. 归一化模式：无溶剂时将质量缩放到恰好闭合
	if solventIdx < 0 && params.Closure == model.ClosureNormalize && sumNonSolvent > 0 {
		scale := params.TotalMass / sumNonSolvent
		for i := range row.ProductMass {
			row.ProductMass[i] *= scale
		}
	}

	// 4. 先算出所有原料的本征活性与杂质，溶剂的活性需要杂质总量
	totalImpurity := 0.0
	for i := range ings {
		row.ImpurityMass[i] = row.ProductMass[i] * ings[i].ImpurityFraction()
		totalImpurity += row.ImpurityMass[i]
	}

	for i := range ings {
		intrinsic := row.ProductMass[i] * ings[i].Purity
		if i == solventIdx {
			// 杂质与溶剂活性视作同一化学物种
			row.ActiveMass[i] = intrinsic + totalImpurity
		} else {
			row.ActiveMass[i] = intrinsic
		}

		row.ProductVolume[i] = row.ProductMass[i] / ings[i].Density
		row.ProductWtPct[i] = row.ProductMass[i] / params.TotalMass * 100.0
		row.ActiveWtPct[i] = row.ActiveMass[i] / params.TotalMass * 100.0

		row.SumMass += row.ProductMass[i]
		row.SumProductWtPct += row.ProductWtPct[i]
		row.SumActiveWtPct += row.ActiveWtPct[i]
	}

	return row
}

// solventIndex 溶剂下标，无溶剂返回 -1
func solventIndex(ings []model.Ingredient) int {
	for i := range ings {
		if ings[i].IsSolvent {
			return i
		}
	}
	return -1
}
