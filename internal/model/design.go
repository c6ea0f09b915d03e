package model

// ClosureMode 无溶剂场景下的质量闭合策略
type ClosureMode string

const (
	// ClosureRatio 仅保证配比，不强制质量和等于总配方质量（默认）
	ClosureRatio ClosureMode = "ratio"
	// ClosureNormalize 按比例缩放所有产品质量，使其和恰好等于总配方质量
	ClosureNormalize ClosureMode = "normalize"
)

// DesignMode 设计结果模式，决定活性列的口径与展示标题
type DesignMode string

const (
	ModePlain   DesignMode = "plain"   // 无溶剂：各原料活性独立核算
	ModeSolvent DesignMode = "solvent" // 有溶剂：溶剂吸收全部杂质作为活性
)

// RejectReason 单行剔除原因
// 剔除是格点探索中的正常结果，不作为错误向上抛出
type RejectReason string

const (
	RejectNegativeSolventMass RejectReason = "negative_solvent_mass"
	RejectMassClosureExceeded RejectReason = "mass_closure_exceeded"
	RejectActiveLimitExceeded RejectReason = "active_limit_exceeded"
)

// Label 剔除原因的表格展示文案
func (r RejectReason) Label() string {
	switch r {
	case RejectNegativeSolventMass:
		return "Negative Solvent Required"
	case RejectMassClosureExceeded:
		return "Sum(Product) > Total Mass"
	case RejectActiveLimitExceeded:
		return "Sum(Active) > 100%"
	}
	return string(r)
}

// GlobalParams 单次设计的全局参数
type GlobalParams struct {
	Degree     int         `json:"degree"`     // 格点阶数 m，步长 1/m
	TotalMass  float64     `json:"totalMass"`  // 总配方质量 (g)
	Replicates int         `json:"replicates"` // 每个格点的重复次数
	Closure    ClosureMode `json:"closure"`    // 质量闭合策略（仅无溶剂场景生效）
}

// DesignRow 一条已通过校验的配方行
// 各切片按原料顺序对齐，校验通过后不再修改
type DesignRow struct {
	FormulaNumber int       `json:"formulaNumber"`
	Fractions     []float64 `json:"fractions"`     // 格点分数 z_i
	TargetActive  []float64 `json:"targetActive"`  // 目标活性质量 (g)
	ProductMass   []float64 `json:"productMass"`   // 产品质量 (g)
	ProductVolume []float64 `json:"productVolume"` // 产品体积 (mL)
	ImpurityMass  []float64 `json:"impurityMass"`  // 杂质质量 (g)
	ActiveMass    []float64 `json:"activeMass"`    // 活性质量 (g)，溶剂行含全部杂质
	ProductWtPct  []float64 `json:"productWtPct"`  // 产品质量百分比 (%)
	ActiveWtPct   []float64 `json:"activeWtPct"`   // 活性质量百分比 (%)

	SumMass         float64 `json:"sumMass"`         // Sum (Product mass) [g]
	SumProductWtPct float64 `json:"sumProductWtPct"` // Sum (Product weight) [%]
	SumActiveWtPct  float64 `json:"sumActiveWtPct"`  // Sum (Active weight) [%]
}

// RejectedPoint 被剔除的格点（用于诊断展示）
type RejectedPoint struct {
	Fractions []float64    `json:"fractions"`
	Reason    RejectReason `json:"reason"`
}

// DesignResult 一次完整设计的输出
type DesignResult struct {
	Ingredients []Ingredient `json:"ingredients"`
	Params      GlobalParams `json:"params"`
	Mode        DesignMode   `json:"mode"`
	SolventIdx  int          `json:"solventIdx"` // 溶剂在原料列表中的下标，无溶剂时为 -1

	Rows          []DesignRow          `json:"rows"`
	RejectedCount int                  `json:"rejectedCount"`
	RejectReasons map[RejectReason]int `json:"rejectReasons"`
	Rejected      []RejectedPoint      `json:"rejected"`
}

// AcceptedCount 有效配方数量（含重复）
func (r *DesignResult) AcceptedCount() int {
	return len(r.Rows)
}

// SolventName 溶剂名称，无溶剂时返回空串
func (r *DesignResult) SolventName() string {
	if r.SolventIdx < 0 {
		return ""
	}
	return r.Ingredients[r.SolventIdx].Name
}
