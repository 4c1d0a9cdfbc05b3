package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"BranchMap-App/internal/domain/model"
	"BranchMap-App/internal/usecase"
)

// RoutesHandler 経路クエリに関するHTTPハンドラー
type RoutesHandler struct {
	routeQuery usecase.RouteQueryUseCase
}

// NewRoutesHandler RoutesHandlerの新しいインスタンスを作成
func NewRoutesHandler(routeQuery usecase.RouteQueryUseCase) *RoutesHandler {
	return &RoutesHandler{routeQuery: routeQuery}
}

// QueryRoute GET /api/route?from=<unit>&to=<unit>&alternatives=true|false
// 経路プロバイダの失敗は理由（timeout / provider / status など）付きで502として返す。
// 失敗を空の経路リストとして誤魔化すことはしない。
func (h *RoutesHandler) QueryRoute(c *gin.Context) {
	fromUnit := c.Query("from")
	toUnit := c.Query("to")
	if fromUnit == "" || toUnit == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Both 'from' and 'to' unit names are required",
		})
		return
	}
	wantAlternatives := c.DefaultQuery("alternatives", "true") != "false"

	response, err := h.routeQuery.QueryRoute(c.Request.Context(), fromUnit, toUnit, wantAlternatives)
	if err != nil {
		if errors.Is(err, model.ErrUnknownUnit) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": err.Error(),
			})
			return
		}

		var routingErr *model.RoutingUnavailableError
		if errors.As(err, &routingErr) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   "routing_unavailable",
				"reason":  string(routingErr.Reason),
				"message": routingErr.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to query route: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
