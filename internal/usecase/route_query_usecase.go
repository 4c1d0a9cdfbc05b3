package usecase

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"BranchMap-App/internal/domain/helper"
	"BranchMap-App/internal/domain/model"
	"BranchMap-App/internal/domain/repository"
	"BranchMap-App/internal/domain/service"
)

// RouteQueryUseCase 2支店間の経路クエリを処理する。
// 方位角と大圏距離は純粋計算、経路候補は外部プロバイダから同期取得する。
type RouteQueryUseCase interface {
	QueryRoute(ctx context.Context, fromUnit, toUnit string, wantAlternatives bool) (*model.RouteQueryResponse, error)
}

// routeQueryUseCaseImpl はRouteQueryUseCaseの実装
type routeQueryUseCaseImpl struct {
	insight    BranchInsightUseCase
	directions repository.DirectionsProvider
	multiplier float64
}

// NewRouteQueryUseCase 新しいRouteQueryUseCaseインスタンスを作成。
// 所要時間レンジの倍率は環境変数 ROUTE_DURATION_MULTIPLIER から読む（デフォルト2.0）。
func NewRouteQueryUseCase(insight BranchInsightUseCase, directions repository.DirectionsProvider) RouteQueryUseCase {
	multiplier := model.DefaultDurationMultiplier
	if raw := os.Getenv("ROUTE_DURATION_MULTIPLIER"); raw != "" {
		if m, err := strconv.ParseFloat(raw, 64); err == nil && m >= 1 {
			multiplier = m
		} else {
			log.Printf("⚠️ ROUTE_DURATION_MULTIPLIER の値 %q は無効です。デフォルト %.1f を使用します", raw, model.DefaultDurationMultiplier)
		}
	}
	return &routeQueryUseCaseImpl{
		insight:    insight,
		directions: directions,
		multiplier: multiplier,
	}
}

// QueryRoute 出発・到着のユニット名から経路クエリを実行する。
// 経路プロバイダの失敗はそのまま *model.RoutingUnavailableError として伝播する。
func (u *routeQueryUseCaseImpl) QueryRoute(ctx context.Context, fromUnit, toUnit string, wantAlternatives bool) (*model.RouteQueryResponse, error) {
	snapshot, err := u.insight.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	origin, ok := snapshot.FindBranch(helper.Normalize(fromUnit))
	if !ok {
		return nil, fmt.Errorf("出発ユニット %q: %w", fromUnit, model.ErrUnknownUnit)
	}
	dest, ok := snapshot.FindBranch(helper.Normalize(toUnit))
	if !ok {
		return nil, fmt.Errorf("到着ユニット %q: %w", toUnit, model.ErrUnknownUnit)
	}

	originPt := origin.ToLatLng()
	destPt := dest.ToLatLng()

	alternatives, err := u.directions.FetchRoutes(ctx, originPt, destPt, wantAlternatives)
	if err != nil {
		return nil, err
	}

	// 表示用の所要時間レンジを付与（順序はプロバイダのまま）
	for i := range alternatives {
		alternatives[i].DurationRange = service.DurationRange(alternatives[i].DurationSeconds, u.multiplier)
	}

	return &model.RouteQueryResponse{
		FromUnit:     origin.DisplayName,
		ToUnit:       dest.DisplayName,
		Origin:       originPt,
		Destination:  destPt,
		BearingDeg:   helper.InitialBearing(originPt, destPt),
		HaversineKm:  helper.HaversineDistanceKm(originPt, destPt),
		Alternatives: alternatives,
	}, nil
}
