package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"BranchMap-App/internal/usecase"
)

// EmployeesHandler 従業員ビューに関するHTTPハンドラー
type EmployeesHandler struct {
	insight usecase.BranchInsightUseCase
}

// NewEmployeesHandler EmployeesHandlerの新しいインスタンスを作成
func NewEmployeesHandler(insight usecase.BranchInsightUseCase) *EmployeesHandler {
	return &EmployeesHandler{insight: insight}
}

// ListEmployees GET /api/employees - 名簿の全行を取得。
// 突合できなかった行も必ず含まれる（突合の成否は matched 属性として返すのみ）。
func (h *EmployeesHandler) ListEmployees(c *gin.Context) {
	snapshot, err := h.insight.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to load snapshot: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employees":   snapshot.Employees,
		"total":       len(snapshot.Employees),
		"diagnostics": snapshot.Diagnostics,
	})
}
