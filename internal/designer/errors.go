package designer

import "errors"

// 运行级配置错误：设计在生成任何行之前整体中止，不产生部分输出
var (
	// ErrPurityViolation 某原料的最大活性比例超过其纯度，物理上不可达
	ErrPurityViolation = errors.New("max active limit exceeds purity")
	// ErrMultipleSolvents 多个原料被标记为溶剂
	ErrMultipleSolvents = errors.New("multiple ingredients marked as solvent")
	// ErrInvalidConfiguration 全局参数或原料参数非法
	ErrInvalidConfiguration = errors.New("invalid design configuration")
)
