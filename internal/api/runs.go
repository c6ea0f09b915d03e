package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ListRuns 获取运行历史列表
// GET /api/runs
func (h *Handler) ListRuns(c *gin.Context) {
	runs, err := h.store.ListRuns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": runs})
}

// GetRun 获取单次运行的完整记录
// GET /api/runs/:id
func (h *Handler) GetRun(c *gin.Context) {
	record, err := h.store.GetRun(c.Param("id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "运行记录不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteRun 删除一次运行记录
// DELETE /api/runs/:id
func (h *Handler) DeleteRun(c *gin.Context) {
	if err := h.store.DeleteRun(c.Param("id")); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "运行记录不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
