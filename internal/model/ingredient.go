package model

import "fmt"

// Ingredient 配方原料
// Purity/MaxActive 均为 0~1 的质量分数，Density 单位 g/mL
type Ingredient struct {
	Name      string  `json:"name"`
	Purity    float64 `json:"purity"`    // 活性成分占产品质量的比例
	MaxActive float64 `json:"maxActive"` // 活性成分占总配方质量的上限
	Density   float64 `json:"density"`   // 密度，仅用于体积换算
	IsSolvent bool    `json:"isSolvent"` // 是否为溶剂（每次设计最多一个）
}

// ValidationError 校验错误
type ValidationError struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // error or warning
}

// Validate 校验单个原料参数
// 注意：MaxActive > Purity 属于全局配置错误，由设计引擎在运行前统一拦截
func (i *Ingredient) Validate() []ValidationError {
	var errors []ValidationError

	if i.Name == "" {
		errors = append(errors, ValidationError{
			Field:    "name",
			Message:  "原料名称不能为空",
			Severity: "error",
		})
	}

	if i.Purity <= 0 || i.Purity > 1 {
		errors = append(errors, ValidationError{
			Field:    "purity",
			Message:  "纯度必须在 (0, 1] 范围内",
			Severity: "error",
		})
	}

	if i.MaxActive <= 0 || i.MaxActive > 1 {
		errors = append(errors, ValidationError{
			Field:    "maxActive",
			Message:  "最大活性比例必须在 (0, 1] 范围内",
			Severity: "error",
		})
	}

	if i.Density <= 0 {
		errors = append(errors, ValidationError{
			Field:    "density",
			Message:  "密度必须大于 0",
			Severity: "error",
		})
	}

	return errors
}

// ImpurityFraction 杂质占产品质量的比例
func (i *Ingredient) ImpurityFraction() float64 {
	return 1.0 - i.Purity
}

// String 用于参数回显与日志
func (i *Ingredient) String() string {
	return fmt.Sprintf("%s | %.4g | %.4g | %.4g | %v", i.Name, i.Purity, i.MaxActive, i.Density, i.IsSolvent)
}
