package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"BranchMap-App/internal/domain/model"
	"BranchMap-App/internal/usecase"
)

// TablesHandler テーブル置換に関するHTTPハンドラー
type TablesHandler struct {
	insight usecase.BranchInsightUseCase
}

// NewTablesHandler TablesHandlerの新しいインスタンスを作成
func NewTablesHandler(insight usecase.BranchInsightUseCase) *TablesHandler {
	return &TablesHandler{insight: insight}
}

// replaceTableRequest POST /api/tables/:name のリクエストボディ
type replaceTableRequest struct {
	Rows []model.Row `json:"rows" binding:"required"`
}

// ReplaceTable POST /api/tables/:name - テーブルの内容を全置換する。
// 置換後は更新マーカーが進み、次回アクセス時にスナップショットが再構築される。
func (h *TablesHandler) ReplaceTable(c *gin.Context) {
	name := c.Param("name")
	if name != model.TableBranches && name != model.TableEmployees {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Table name must be 'branches' or 'employees'",
		})
		return
	}

	var req replaceTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if err := h.insight.ReplaceTable(c.Request.Context(), name, req.Rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to replace table: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"table": name,
		"rows":  len(req.Rows),
	})
}
