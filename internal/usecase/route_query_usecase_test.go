package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"BranchMap-App/internal/domain/model"
)

// fakeDirectionsProvider テスト用の経路プロバイダ
type fakeDirectionsProvider struct {
	routes []model.RouteAlternative
	err    error

	lastOrigin      model.LatLng
	lastDestination model.LatLng
}

func (p *fakeDirectionsProvider) FetchRoutes(ctx context.Context, origin, destination model.LatLng, wantAlternatives bool) ([]model.RouteAlternative, error) {
	p.lastOrigin = origin
	p.lastDestination = destination
	if p.err != nil {
		return nil, p.err
	}
	return p.routes, nil
}

func routeTestInsight(t *testing.T) BranchInsightUseCase {
	t.Helper()
	repo := newFakeDatasetRepository()
	seedBranches(repo, []model.Row{
		{"Unit Kerja": "Branch X", "Latitude": -8.65, "Longitude": 115.21},
		{"Unit Kerja": "Branch Y", "Latitude": -8.79, "Longitude": 116.07},
	})
	seedEmployees(repo, nil)
	return NewBranchInsightUseCase(repo)
}

func TestQueryRoute_Success(t *testing.T) {
	provider := &fakeDirectionsProvider{
		routes: []model.RouteAlternative{
			{Ordinal: 1, DistanceMeters: 125400, DurationSeconds: 1800},
			{Ordinal: 2, DistanceMeters: 131000, DurationSeconds: 2100},
		},
	}
	uc := NewRouteQueryUseCase(routeTestInsight(t), provider)

	resp, err := uc.QueryRoute(context.Background(), " branch x ", "BRANCH Y", true)
	if err != nil {
		t.Fatalf("経路クエリでエラー: %v", err)
	}

	t.Run("表示名と座標", func(t *testing.T) {
		assert.Equal(t, "Branch X", resp.FromUnit)
		assert.Equal(t, "Branch Y", resp.ToUnit)
		assert.InDelta(t, -8.65, provider.lastOrigin.Lat, 1e-9)
		assert.InDelta(t, 116.07, provider.lastDestination.Lng, 1e-9)
	})

	t.Run("方位角と大圏距離", func(t *testing.T) {
		assert.GreaterOrEqual(t, resp.BearingDeg, 0.0)
		assert.Less(t, resp.BearingDeg, 360.0)
		assert.InDelta(t, 96.0, resp.HaversineKm, 10.0)
	})

	t.Run("候補順は維持され所要時間レンジが付く", func(t *testing.T) {
		if assert.Len(t, resp.Alternatives, 2) {
			assert.Equal(t, 1, resp.Alternatives[0].Ordinal)
			assert.Equal(t, 2, resp.Alternatives[1].Ordinal)
			assert.InDelta(t, 1800, resp.Alternatives[0].DurationRange.LowSeconds, 1e-9)
			assert.InDelta(t, 3600, resp.Alternatives[0].DurationRange.HighSeconds, 1e-9)
		}
	})
}

func TestQueryRoute_UnknownUnit(t *testing.T) {
	uc := NewRouteQueryUseCase(routeTestInsight(t), &fakeDirectionsProvider{})

	_, err := uc.QueryRoute(context.Background(), "Branch X", "Branch Z", true)
	assert.True(t, errors.Is(err, model.ErrUnknownUnit), "未知ユニットはErrUnknownUnitを返すべき: %v", err)

	_, err = uc.QueryRoute(context.Background(), "Nowhere", "Branch Y", true)
	assert.True(t, errors.Is(err, model.ErrUnknownUnit))
}

func TestQueryRoute_ProviderFailurePropagates(t *testing.T) {
	provider := &fakeDirectionsProvider{
		err: &model.RoutingUnavailableError{Reason: model.RoutingReasonTimeout, Message: "deadline exceeded"},
	}
	uc := NewRouteQueryUseCase(routeTestInsight(t), provider)

	resp, err := uc.QueryRoute(context.Background(), "Branch X", "Branch Y", false)
	assert.Nil(t, resp)

	var routingErr *model.RoutingUnavailableError
	if assert.ErrorAs(t, err, &routingErr) {
		assert.Equal(t, model.RoutingReasonTimeout, routingErr.Reason)
	}
}

func TestQueryRoute_MultiplierFromEnv(t *testing.T) {
	t.Setenv("ROUTE_DURATION_MULTIPLIER", "3.0")
	provider := &fakeDirectionsProvider{
		routes: []model.RouteAlternative{{Ordinal: 1, DurationSeconds: 600}},
	}
	uc := NewRouteQueryUseCase(routeTestInsight(t), provider)

	resp, err := uc.QueryRoute(context.Background(), "Branch X", "Branch Y", false)
	assert.NoError(t, err)
	assert.InDelta(t, 1800, resp.Alternatives[0].DurationRange.HighSeconds, 1e-9)
}

func TestQueryRoute_InvalidMultiplierFallsBack(t *testing.T) {
	t.Setenv("ROUTE_DURATION_MULTIPLIER", "0.1")
	provider := &fakeDirectionsProvider{
		routes: []model.RouteAlternative{{Ordinal: 1, DurationSeconds: 600}},
	}
	uc := NewRouteQueryUseCase(routeTestInsight(t), provider)

	resp, err := uc.QueryRoute(context.Background(), "Branch X", "Branch Y", false)
	assert.NoError(t, err)
	assert.InDelta(t, 600*model.DefaultDurationMultiplier, resp.Alternatives[0].DurationRange.HighSeconds, 1e-9)
}
