package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"BranchMap-App/internal/domain/model"
	"BranchMap-App/internal/usecase"
)

// RotationsHandler 人事ローテーションバッチに関するHTTPハンドラー
type RotationsHandler struct {
	rotations usecase.RotationUseCase
}

// NewRotationsHandler RotationsHandlerの新しいインスタンスを作成
func NewRotationsHandler(rotations usecase.RotationUseCase) *RotationsHandler {
	return &RotationsHandler{rotations: rotations}
}

// CreateBatch POST /api/rotations - バッチの作成
func (h *RotationsHandler) CreateBatch(c *gin.Context) {
	var req model.RotationBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	batch, err := h.rotations.CreateBatch(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to create rotation batch: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, batch)
}

// ListBatches GET /api/rotations - バッチ一覧の取得
func (h *RotationsHandler) ListBatches(c *gin.Context) {
	batches, err := h.rotations.ListBatches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to list rotation batches: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"batches": batches})
}

// GetBatch GET /api/rotations/:id - バッチ詳細の取得
func (h *RotationsHandler) GetBatch(c *gin.Context) {
	batch, err := h.rotations.GetBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		code := "internal_error"
		if strings.Contains(err.Error(), "見つかりません") {
			status = http.StatusNotFound
			code = "not_found"
		}
		c.JSON(status, gin.H{
			"error":   code,
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, batch)
}

// UpdateBatch PUT /api/rotations/:id - バッチの更新
func (h *RotationsHandler) UpdateBatch(c *gin.Context) {
	var req model.RotationBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	batch, err := h.rotations.UpdateBatch(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to update rotation batch: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, batch)
}

// DeleteBatch DELETE /api/rotations/:id - バッチの削除
func (h *RotationsHandler) DeleteBatch(c *gin.Context) {
	if err := h.rotations.DeleteBatch(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to delete rotation batch: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
