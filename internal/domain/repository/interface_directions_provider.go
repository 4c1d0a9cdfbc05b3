package repository

import (
	"context"

	"BranchMap-App/internal/domain/model"
)

// DirectionsProvider 外部の経路プロバイダから運転経路の候補を取得するインターフェース。
// 返却順（Ordinal）はプロバイダの順序をそのまま保持する。
// 失敗時は *model.RoutingUnavailableError を返し、リトライや空結果での誤魔化しはしない。
// キャッシュもしない。必要なら呼び出し側が (origin, destination, wantAlternatives) を
// キーに外側で重ねること。
type DirectionsProvider interface {
	FetchRoutes(ctx context.Context, origin, destination model.LatLng, wantAlternatives bool) ([]model.RouteAlternative, error)
}
