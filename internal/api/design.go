package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mixlattice/internal/designer"
	"mixlattice/internal/model"
	"mixlattice/internal/plotter"
)

// designRequest 一次设计的完整输入
type designRequest struct {
	Ingredients []model.Ingredient `json:"ingredients"`
	Degree      int                `json:"degree"`
	TotalMass   float64            `json:"totalMass"`
	Replicates  int                `json:"replicates"`
	Closure     string             `json:"closure"`
}

// params 组装全局参数，未填项用界面默认值补齐
func (r *designRequest) params(defaults func() (int, float64, int)) model.GlobalParams {
	degree, totalMass, replicates := defaults()
	if r.Degree > 0 {
		degree = r.Degree
	}
	if r.TotalMass > 0 {
		totalMass = r.TotalMass
	}
	if r.Replicates > 0 {
		replicates = r.Replicates
	}
	return model.GlobalParams{
		Degree:     degree,
		TotalMass:  totalMass,
		Replicates: replicates,
		Closure:    model.ClosureMode(r.Closure),
	}
}

func (h *Handler) designDefaults() (int, float64, int) {
	d := h.cfg.Design
	return d.DefaultDegree, d.DefaultTotalMass, d.DefaultReplicates
}

// designResponse 设计结果响应
type designResponse struct {
	RunID         string                     `json:"runId"`
	Mode          model.DesignMode           `json:"mode"`
	SolventIdx    int                        `json:"solventIdx"`
	Columns       []string                   `json:"columns"`
	Rows          []model.DesignRow          `json:"rows"`
	AcceptedCount int                        `json:"acceptedCount"`
	RejectedCount int                        `json:"rejectedCount"`
	RejectReasons map[model.RejectReason]int `json:"rejectReasons"`
	Rejected      []model.RejectedPoint      `json:"rejected"`
}

// GenerateDesign 生成设计并保存运行历史
// POST /api/design
func (h *Handler) GenerateDesign(c *gin.Context) {
	var req designRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	result, err := h.engine.Evaluate(req.Ingredients, req.params(h.designDefaults))
	if err != nil {
		c.JSON(configErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	runID, err := h.store.SaveRun(result)
	if err != nil {
		// 历史保存失败不影响本次结果返回
		log.Printf("保存运行历史失败: %v", err)
	}

	c.JSON(http.StatusOK, designResponse{
		RunID:         runID,
		Mode:          result.Mode,
		SolventIdx:    result.SolventIdx,
		Columns:       model.DatapointColumns(result.Ingredients),
		Rows:          result.Rows,
		AcceptedCount: result.AcceptedCount(),
		RejectedCount: result.RejectedCount,
		RejectReasons: result.RejectReasons,
		Rejected:      result.Rejected,
	})
}

// plotRequest 绘图输入 = 设计输入 + 选中的原料名
type plotRequest struct {
	designRequest
	Selected []string `json:"selected"`
}

// BuildPlot 生成图表配置（不落运行历史）
// POST /api/design/plot
func (h *Handler) BuildPlot(c *gin.Context) {
	var req plotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	result, err := h.engine.Evaluate(req.Ingredients, req.params(h.designDefaults))
	if err != nil {
		c.JSON(configErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	plot, err := plotter.Build(result, req.Selected)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plot)
}

// configErrorStatus 配置类错误返回 400，其余按服务端错误处理
func configErrorStatus(err error) int {
	switch {
	case errors.Is(err, designer.ErrPurityViolation),
		errors.Is(err, designer.ErrMultipleSolvents),
		errors.Is(err, designer.ErrInvalidConfiguration):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
