package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mixlattice/internal/model"
)

// StatusResponse 系统状态
type StatusResponse struct {
	Name     string `json:"name"`
	RunCount int    `json:"runCount"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	count, err := h.store.CountRuns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Name:     "mixlattice",
		RunCount: count,
	})
}

// GetDefaults 获取前端表单默认参数
// GET /api/defaults
func (h *Handler) GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"degree":     h.cfg.Design.DefaultDegree,
		"totalMass":  h.cfg.Design.DefaultTotalMass,
		"replicates": h.cfg.Design.DefaultReplicates,
		"closureModes": []model.ClosureMode{
			model.ClosureRatio,
			model.ClosureNormalize,
		},
	})
}
