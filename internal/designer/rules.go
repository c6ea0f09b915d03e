package designer

import (
	"fmt"

	"mixlattice/internal/model"
)

const (
	// massClosureTolerance 质量闭合容差：产品质量和不得超过总配方质量的 1%
	massClosureTolerance = 1.01
	// activeSumLimit 活性百分比合计上限，留 0.01 个百分点的浮点余量
	activeSumLimit = 100.01
)

// ValidateConfig 运行前配置校验
// 任何一项不通过都中止整次设计，这里的错误不会落到单行剔除
func ValidateConfig(ings []model.Ingredient, params model.GlobalParams) error {
	if len(ings) < 2 {
		return fmt.Errorf("%w: 至少需要 2 个原料，当前 %d", ErrInvalidConfiguration, len(ings))
	}
	if params.Degree < 1 {
		return fmt.Errorf("%w: 阶数必须不少于 1，当前 %d", ErrInvalidConfiguration, params.Degree)
	}
	if params.TotalMass <= 0 {
		return fmt.Errorf("%w: 总配方质量必须大于 0，当前 %g", ErrInvalidConfiguration, params.TotalMass)
	}
	if params.Replicates < 1 {
		return fmt.Errorf("%w: 重复次数必须不少于 1，当前 %d", ErrInvalidConfiguration, params.Replicates)
	}
	switch params.Closure {
	case model.ClosureRatio, model.ClosureNormalize:
	default:
		return fmt.Errorf("%w: 未知的闭合策略 %q", ErrInvalidConfiguration, params.Closure)
	}

	seen := make(map[string]bool, len(ings))
	solventCount := 0
	for i := range ings {
		ing := &ings[i]

		if errs := ing.Validate(); len(errs) > 0 {
			return fmt.Errorf("%w: 原料 %s - %s", ErrInvalidConfiguration, ing.Name, errs[0].Message)
		}
		if seen[ing.Name] {
			return fmt.Errorf("%w: 原料名称重复 %q", ErrInvalidConfiguration, ing.Name)
		}
		seen[ing.Name] = true

		if ing.MaxActive > ing.Purity {
			return fmt.Errorf("%w: %s 最大活性 %.4g 超过纯度 %.4g", ErrPurityViolation, ing.Name, ing.MaxActive, ing.Purity)
		}
		if ing.IsSolvent {
			solventCount++
		}
	}

	if solventCount > 1 {
		return fmt.Errorf("%w: 共 %d 个", ErrMultipleSolvents, solventCount)
	}

	return nil
}

// checkRow 单行校验，返回首个命中的剔除原因
// 校验顺序与历史实现一致：闭合 → 负溶剂 → 活性上限
func checkRow(row *model.DesignRow, params model.GlobalParams, solventIdx int) (model.RejectReason, bool) {
	if row.SumMass > params.TotalMass*massClosureTolerance {
		return model.RejectMassClosureExceeded, false
	}

	for i, mass := range row.ProductMass {
		if mass < 0 {
			if i == solventIdx {
				return model.RejectNegativeSolventMass, false
			}
			return model.RejectMassClosureExceeded, false
		}
	}

	if row.SumActiveWtPct > activeSumLimit {
		return model.RejectActiveLimitExceeded, false
	}

	return "", true
}
