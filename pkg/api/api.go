// Package api 提供 HTTP 接口层, 将模拟与对比能力暴露为 JSON API。
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iWorld-y/policy_radar/pkg/compare"
	"github.com/iWorld-y/policy_radar/pkg/engine"
	"github.com/iWorld-y/policy_radar/pkg/indicators"
	"github.com/iWorld-y/policy_radar/pkg/logger"
	"github.com/iWorld-y/policy_radar/pkg/model"
	"github.com/iWorld-y/policy_radar/pkg/refdata"
)

// Handler API 处理器
type Handler struct {
	engine     *engine.Engine
	comparator *compare.Comparator
	indicators indicators.Provider
	ref        *refdata.Data
}

// NewHandler 创建 API 处理器
func NewHandler(e *engine.Engine, c *compare.Comparator, p indicators.Provider, ref *refdata.Data) *Handler {
	return &Handler{engine: e, comparator: c, indicators: p, ref: ref}
}

// Router 构建路由
func Router(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.POST("/simulate", h.Simulate)
		api.POST("/compare", h.Compare)
		api.GET("/history", h.History)
		api.GET("/sectors", h.Sectors)
		api.GET("/policy-types", h.PolicyTypes)
		api.GET("/economic-indicators", h.EconomicIndicators)
	}
	return r
}

// Health 健康检查
// GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Simulate 执行一次政策模拟
// POST /api/simulate
func (h *Handler) Simulate(c *gin.Context) {
	var spec model.PolicySpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"message": err.Error(),
		})
		return
	}

	rec, err := h.engine.Simulate(c.Request.Context(), spec)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// compareRequest 对比请求体
type compareRequest struct {
	Scenarios []model.Scenario `json:"scenarios"`
}

// Compare 对比多个政策场景
// POST /api/compare
func (h *Handler) Compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"message": err.Error(),
		})
		return
	}

	res, err := h.comparator.Compare(c.Request.Context(), req.Scenarios)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// History 查询最近的模拟记录
// GET /api/history?limit=N
func (h *Handler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request format",
				"message": "limit must be an integer",
			})
			return
		}
		limit = n
	}

	records, err := h.engine.History(limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": records, "count": len(records)})
}

// Sectors 返回行业目录与权重
// GET /api/sectors
func (h *Handler) Sectors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sectors": h.ref.Sectors,
		"weights": h.ref.Weights,
	})
}

// PolicyTypes 返回支持的政策类型
// GET /api/policy-types
func (h *Handler) PolicyTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"policy_types": model.AllPolicyTypes()})
}

// EconomicIndicators 返回最新宏观指标与历史
// GET /api/economic-indicators
func (h *Handler) EconomicIndicators(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"latest":  h.indicators.Latest(),
		"history": h.indicators.History(),
	})
}

// writeError 按错误类别映射状态码
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidPolicyInput), errors.Is(err, model.ErrInsufficientScenarios):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": err.Error(),
		})
	case errors.Is(err, model.ErrUpstreamPrediction):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Prediction service unavailable",
			"message": err.Error(),
		})
	default:
		logger.Log.Errorf("请求处理失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": err.Error(),
		})
	}
}
