package api

import (
	"github.com/gin-gonic/gin"

	"mixlattice/internal/config"
	"mixlattice/internal/designer"
	"mixlattice/internal/exporter"
	"mixlattice/internal/store"
)

// Handler API 处理器
type Handler struct {
	cfg       *config.AppConfig
	store     *store.Store
	engine    *designer.Engine
	exporter  *exporter.Exporter
	downloads *exportDownloadStore
}

// NewHandler 创建 API 处理器
func NewHandler(cfg *config.AppConfig, st *store.Store) *Handler {
	return &Handler{
		cfg:       cfg,
		store:     st,
		engine:    designer.NewEngine(),
		exporter:  exporter.NewExporter(),
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态与默认参数
	router.GET("/status", h.GetStatus)
	router.GET("/defaults", h.GetDefaults)

	// 设计生成
	router.POST("/design", h.GenerateDesign)
	router.POST("/design/plot", h.BuildPlot)

	// 导出
	router.POST("/design/export", h.ExportDesign)
	router.GET("/export/download/:token", h.DownloadExport)

	// 运行历史
	router.GET("/runs", h.ListRuns)
	router.GET("/runs/:id", h.GetRun)
	router.DELETE("/runs/:id", h.DeleteRun)
}
