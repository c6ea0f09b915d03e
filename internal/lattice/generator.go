package lattice

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration 格点参数非法
var ErrInvalidConfiguration = errors.New("invalid lattice configuration")

// Generate 生成 n 个组分、阶数 m 的单纯形格点矩阵
// 每个格点是 n 个非负整数（和为 m）除以 m 得到的分数向量，
// 按整数组合的字典序输出，相同输入的输出完全一致
func Generate(n, m int) ([][]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: 组分数必须不少于 2，当前 %d", ErrInvalidConfiguration, n)
	}
	if m < 1 {
		return nil, fmt.Errorf("%w: 阶数必须不少于 1，当前 %d", ErrInvalidConfiguration, m)
	}

	points := make([][]float64, 0, Count(n, m))
	current := make([]int, n)
	compose(current, 0, m, func(c []int) {
		z := make([]float64, n)
		for i, v := range c {
			z[i] = float64(v) / float64(m)
		}
		points = append(points, z)
	})

	return points, nil
}

// compose 按字典序枚举和为 remaining 的整数组合
// pos 之前的位置已经确定，最后一个位置直接吃掉余量
func compose(current []int, pos, remaining int, emit func([]int)) {
	if pos == len(current)-1 {
		current[pos] = remaining
		emit(current)
		return
	}
	for v := 0; v <= remaining; v++ {
		current[pos] = v
		compose(current, pos+1, remaining-v, emit)
	}
}

// Count 格点总数 C(m+n-1, n-1)
func Count(n, m int) int {
	if n < 2 || m < 1 {
		return 0
	}
	// 逐项乘除避免阶乘溢出
	result := 1
	for i := 1; i <= n-1; i++ {
		result = result * (m + i) / i
	}
	return result
}
