package designer

import (
	"testing"

	"mixlattice/internal/model"
)

// checkRow 的三条剔除规则用构造行直接覆盖：
// 合法配置下（最大活性不超过纯度）这些边界在引擎里只会因浮点毛刺触发

func baseParams() model.GlobalParams {
	return model.GlobalParams{Degree: 2, TotalMass: 100, Replicates: 1, Closure: model.ClosureRatio}
}

// TestCheckRowAccept 正常行通过
func TestCheckRowAccept(t *testing.T) {
	row := &model.DesignRow{
		ProductMass:    []float64{40, 30, 30},
		SumMass:        100,
		SumActiveWtPct: 99.5,
	}

	reason, ok := checkRow(row, baseParams(), -1)
	if !ok {
		t.Errorf("正常行被剔除, reason = %v", reason)
	}
}

// TestCheckRowMassClosure 质量和超过 1% 容差
func TestCheckRowMassClosure(t *testing.T) {
	tests := []struct {
		name    string
		sumMass float64
		valid   bool
	}{
		{"恰好闭合", 100.0, true},
		{"容差内", 100.9, true},
		{"容差上限", 101.0, true},
		{"超出容差", 101.1, false},
		{"严重超出", 150.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := &model.DesignRow{
				ProductMass:    []float64{tt.sumMass},
				SumMass:        tt.sumMass,
				SumActiveWtPct: 50,
			}

			reason, ok := checkRow(row, baseParams(), -1)
			if ok != tt.valid {
				t.Errorf("SumMass=%v: ok = %v, want %v", tt.sumMass, ok, tt.valid)
			}
			if !tt.valid && reason != model.RejectMassClosureExceeded {
				t.Errorf("reason = %v, want RejectMassClosureExceeded", reason)
			}
		})
	}
}

// TestCheckRowNegativeSolvent 溶剂质量为负
func TestCheckRowNegativeSolvent(t *testing.T) {
	row := &model.DesignRow{
		ProductMass:    []float64{60, 45, -5},
		SumMass:        100,
		SumActiveWtPct: 95,
	}

	reason, ok := checkRow(row, baseParams(), 2)
	if ok {
		t.Fatal("负溶剂行未被剔除")
	}
	if reason != model.RejectNegativeSolventMass {
		t.Errorf("reason = %v, want RejectNegativeSolventMass", reason)
	}
}

// TestCheckRowNegativeMass 非溶剂质量为负归入闭合类剔除
func TestCheckRowNegativeMass(t *testing.T) {
	row := &model.DesignRow{
		ProductMass:    []float64{-1, 50, 51},
		SumMass:        100,
		SumActiveWtPct: 95,
	}

	reason, ok := checkRow(row, baseParams(), 2)
	if ok {
		t.Fatal("负质量行未被剔除")
	}
	if reason != model.RejectMassClosureExceeded {
		t.Errorf("reason = %v, want RejectMassClosureExceeded", reason)
	}
}

// TestCheckRowActiveLimit 活性合计超过 100%
func TestCheckRowActiveLimit(t *testing.T) {
	tests := []struct {
		name      string
		sumActive float64
		valid     bool
	}{
		{"恰好 100", 100.0, true},
		{"浮点余量内", 100.01, true},
		{"超出上限", 100.02, false},
		{"严重超出", 120.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := &model.DesignRow{
				ProductMass:    []float64{50, 50},
				SumMass:        100,
				SumActiveWtPct: tt.sumActive,
			}

			reason, ok := checkRow(row, baseParams(), -1)
			if ok != tt.valid {
				t.Errorf("SumActiveWtPct=%v: ok = %v, want %v", tt.sumActive, ok, tt.valid)
			}
			if !tt.valid && reason != model.RejectActiveLimitExceeded {
				t.Errorf("reason = %v, want RejectActiveLimitExceeded", reason)
			}
		})
	}
}

// TestValidateConfigSolventCount 溶剂数量校验
func TestValidateConfigSolventCount(t *testing.T) {
	ings := []model.Ingredient{
		{Name: "A", Purity: 1.0, MaxActive: 1.0, Density: 1.0, IsSolvent: true},
		{Name: "B", Purity: 1.0, MaxActive: 1.0, Density: 1.0, IsSolvent: true},
		{Name: "C", Purity: 1.0, MaxActive: 1.0, Density: 1.0},
	}

	if err := ValidateConfig(ings, baseParams()); err == nil {
		t.Error("两个溶剂的配置未被拦截")
	}

	ings[1].IsSolvent = false
	if err := ValidateConfig(ings, baseParams()); err != nil {
		t.Errorf("单个溶剂的配置被误拦截: %v", err)
	}
}
