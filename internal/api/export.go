package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mixlattice/internal/config"
)

// downloadTTL 导出文件下载链接有效期
const downloadTTL = 10 * time.Minute

// ExportDesign 生成设计并导出 Excel，返回一次性下载 token
// POST /api/design/export
func (h *Handler) ExportDesign(c *gin.Context) {
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

	if len(result.Rows) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "没有可导出的有效配方"})
		return
	}

	f, err := h.exporter.Export(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("mixlattice_design_%s.xlsx", time.Now().Format("20060102_150405"))
	filePath := config.GetDataPath(h.cfg, "exports", filename)

	if err := f.SaveAs(filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("保存导出文件失败: %v", err)})
		return
	}

	token := h.downloads.put(filePath, filename, downloadTTL)

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"filename": filename,
		"rows":     len(result.Rows),
	})
}

// DownloadExport 下载已导出的文件
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接不存在或已过期"})
		return
	}

	c.FileAttachment(item.filePath, item.filename)
}
