package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"BranchMap-App/internal/domain/helper"
	"BranchMap-App/internal/domain/model"
	"BranchMap-App/internal/usecase"
)

// BranchesHandler 支店ビューに関するHTTPハンドラー
type BranchesHandler struct {
	insight usecase.BranchInsightUseCase
}

// NewBranchesHandler BranchesHandlerの新しいインスタンスを作成
func NewBranchesHandler(insight usecase.BranchInsightUseCase) *BranchesHandler {
	return &BranchesHandler{insight: insight}
}

// branchSummary 一覧用の支店情報
type branchSummary struct {
	DisplayName string  `json:"display_name"`
	Area        string  `json:"area,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PeopleCount int     `json:"people_count"`
}

// ListBranches GET /api/branches - 座標が有効な支店の一覧を取得
func (h *BranchesHandler) ListBranches(c *gin.Context) {
	snapshot, err := h.insight.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to load snapshot: " + err.Error(),
		})
		return
	}

	summaries := make([]branchSummary, 0, len(snapshot.Branches))
	for _, b := range snapshot.Branches {
		summaries = append(summaries, branchSummary{
			DisplayName: b.DisplayName,
			Area:        b.Area,
			Latitude:    b.Latitude,
			Longitude:   b.Longitude,
			PeopleCount: snapshot.PeopleCount(b.NormalizedKey),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"branches":    summaries,
		"diagnostics": snapshot.Diagnostics,
	})
}

// GetBranchDetail GET /api/branches/:unit - 支店詳細と所属従業員を取得
func (h *BranchesHandler) GetBranchDetail(c *gin.Context) {
	unit := c.Param("unit")
	if unit == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Unit name is required",
		})
		return
	}

	snapshot, err := h.insight.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to load snapshot: " + err.Error(),
		})
		return
	}

	branch, ok := snapshot.FindBranch(helper.Normalize(unit))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "No branch matches the given unit name",
		})
		return
	}

	people := snapshot.PeopleByUnit[branch.NormalizedKey]
	if people == nil {
		people = []*model.EmployeeRecord{}
	}

	c.JSON(http.StatusOK, gin.H{
		"branch": branch,
		"people": people,
	})
}

// GetDiagnostics GET /api/diagnostics - 現在のスナップショットの診断情報を取得
func (h *BranchesHandler) GetDiagnostics(c *gin.Context) {
	snapshot, err := h.insight.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to load snapshot: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, snapshot.Diagnostics)
}
