package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/paulmach/orb"

	"BranchMap-App/internal/domain/model"
)

const defaultOSRMBaseURL = "https://router.project-osrm.org/route/v1/driving"

// OSRMDirectionsProvider はOSRMのdrivingディレクションAPIを使用した経路検索の実装。
// 1リクエスト1往復の同期呼び出しで、リトライもキャッシュもしない。
type OSRMDirectionsProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewOSRMDirectionsProvider は新しいプロバイダを生成する。
// ベースURLとタイムアウトは環境変数 OSRM_BASE_URL / OSRM_TIMEOUT_SECONDS で調整できる。
func NewOSRMDirectionsProvider() *OSRMDirectionsProvider {
	baseURL := os.Getenv("OSRM_BASE_URL")
	if baseURL == "" {
		baseURL = defaultOSRMBaseURL
	}

	timeout := 30 * time.Second
	if raw := os.Getenv("OSRM_TIMEOUT_SECONDS"); raw != "" {
		if sec, err := strconv.Atoi(raw); err == nil && sec > 0 {
			timeout = time.Duration(sec) * time.Second
		}
	}

	return &OSRMDirectionsProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewOSRMDirectionsProviderWithBaseURL テスト用にベースURLを直接指定してプロバイダを生成する
func NewOSRMDirectionsProviderWithBaseURL(baseURL string, timeout time.Duration) *OSRMDirectionsProvider {
	return &OSRMDirectionsProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchRoutes はOSRMを呼び出して2地点間の運転経路の候補を取得する。
// 成功時はプロバイダの返却順を保持した RouteAlternative のスライスを返す。
// 通信失敗・タイムアウト・非200・ペイロード内のエラーコードはいずれも
// *model.RoutingUnavailableError として返す。
func (p *OSRMDirectionsProvider) FetchRoutes(ctx context.Context, origin, destination model.LatLng, wantAlternatives bool) ([]model.RouteAlternative, error) {
	// 1. APIリクエストURLを構築（OSRMは経度が先）
	reqURL := p.buildURL(origin, destination, wantAlternatives)

	// 2. HTTPリクエストを作成・実行
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, &model.RoutingUnavailableError{Reason: model.RoutingReasonTransport, Err: err}
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		reason := model.RoutingReasonTransport
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			reason = model.RoutingReasonTimeout
		}
		return nil, &model.RoutingUnavailableError{Reason: reason, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.RoutingUnavailableError{
			Reason:  model.RoutingReasonStatus,
			Message: fmt.Sprintf("provider returned status %s", resp.Status),
		}
	}

	// 3. JSONレスポンスをパース
	var apiResp osrmRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &model.RoutingUnavailableError{Reason: model.RoutingReasonMalformed, Err: err}
	}

	// プロバイダ自身のエラーコードもハードエラーとして扱う
	if apiResp.Code != "Ok" {
		msg := apiResp.Message
		if msg == "" {
			msg = fmt.Sprintf("provider reported code %q", apiResp.Code)
		}
		return nil, &model.RoutingUnavailableError{Reason: model.RoutingReasonProvider, Message: msg}
	}
	if len(apiResp.Routes) == 0 {
		return nil, &model.RoutingUnavailableError{
			Reason:  model.RoutingReasonProvider,
			Message: "provider returned no routes",
		}
	}

	// 4. ドメインモデルに変換して返す（返却順を Ordinal として保持）
	alternatives := make([]model.RouteAlternative, 0, len(apiResp.Routes))
	for i, route := range apiResp.Routes {
		alt := model.RouteAlternative{
			Ordinal:         i + 1,
			DistanceMeters:  route.Distance,
			DurationSeconds: route.Duration,
			Polyline:        decodePolyline(route.Geometry.Coordinates),
			StreetSequence:  collectStreetSequence(route.Legs),
		}
		alt.Bounds = polylineBounds(alt.Polyline)
		alternatives = append(alternatives, alt)
	}
	return alternatives, nil
}

func (p *OSRMDirectionsProvider) buildURL(origin, destination model.LatLng, wantAlternatives bool) string {
	coords := fmt.Sprintf("%f,%f;%f,%f", origin.Lng, origin.Lat, destination.Lng, destination.Lat)

	params := url.Values{}
	params.Set("overview", "full")
	params.Set("geometries", "geojson")
	params.Set("steps", "true")
	if wantAlternatives {
		params.Set("alternatives", "true")
	} else {
		params.Set("alternatives", "false")
	}

	return fmt.Sprintf("%s/%s?%s", p.baseURL, coords, params.Encode())
}

// decodePolyline GeoJSONの [lon, lat] ペア列を LatLng の列に変換する
func decodePolyline(coords [][]float64) []model.LatLng {
	points := make([]model.LatLng, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		points = append(points, model.LatLng{Lat: c[1], Lng: c[0]})
	}
	return points
}

// collectStreetSequence 各legのstepを順に歩き、道路名の列を作る。
// 空の名前は捨て、直前と同じ名前は1つにまとめる（直進区間の重複対策）。
func collectStreetSequence(legs []osrmLeg) []string {
	var names []string
	for _, leg := range legs {
		for _, step := range leg.Steps {
			n := step.Name
			if n == "" {
				continue
			}
			if len(names) > 0 && names[len(names)-1] == n {
				continue
			}
			names = append(names, n)
		}
	}
	return names
}

// polylineBounds 地図フィッティング用にポリラインの外接矩形を計算する
func polylineBounds(points []model.LatLng) *model.RouteBounds {
	if len(points) == 0 {
		return nil
	}
	bound := orb.Bound{
		Min: orb.Point{points[0].Lng, points[0].Lat},
		Max: orb.Point{points[0].Lng, points[0].Lat},
	}
	for _, pt := range points[1:] {
		bound = bound.Extend(orb.Point{pt.Lng, pt.Lat})
	}
	return &model.RouteBounds{
		MinLat: bound.Min.Lat(),
		MinLng: bound.Min.Lon(),
		MaxLat: bound.Max.Lat(),
		MaxLng: bound.Max.Lon(),
	}
}

// --- OSRM APIのレスポンスをパースするための構造体 ---

type osrmRouteResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message,omitempty"`
	Routes  []osrmRoute `json:"routes"`
}
type osrmRoute struct {
	Distance float64      `json:"distance"` // meters
	Duration float64      `json:"duration"` // seconds
	Geometry osrmGeometry `json:"geometry"`
	Legs     []osrmLeg    `json:"legs"`
}
type osrmGeometry struct {
	Coordinates [][]float64 `json:"coordinates"` // [lon, lat]
}
type osrmLeg struct {
	Steps []osrmStep `json:"steps"`
}
type osrmStep struct {
	Name string `json:"name"`
}
