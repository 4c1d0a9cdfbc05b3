package model

// RouteAlternative 2地点間の候補経路1本。
// Ordinal はプロバイダの返却順そのまま（1始まり）。順序には意味があるため
// 距離や所要時間で並べ替えてはならない。
type RouteAlternative struct {
	Ordinal         int           `json:"ordinal"`
	DistanceMeters  float64       `json:"distance_meters"`
	DurationSeconds float64       `json:"duration_seconds"`
	Polyline        []LatLng      `json:"polyline"`
	StreetSequence  []string      `json:"street_sequence"`
	DurationRange   DurationRange `json:"duration_range"`
	Bounds          *RouteBounds  `json:"bounds,omitempty"`
}

// RouteBounds 経路ポリラインの外接矩形（地図のフィッティング用）
type RouteBounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// DurationRange 所要時間の下限〜上限（秒）。LowSeconds <= HighSeconds が常に成り立つ
type DurationRange struct {
	LowSeconds  float64 `json:"low_seconds"`
	HighSeconds float64 `json:"high_seconds"`
}

// RouteQueryResponse GET /api/route のレスポンス
type RouteQueryResponse struct {
	FromUnit     string             `json:"from_unit"`
	ToUnit       string             `json:"to_unit"`
	Origin       LatLng             `json:"origin"`
	Destination  LatLng             `json:"destination"`
	BearingDeg   float64            `json:"bearing_deg"`
	HaversineKm  float64            `json:"haversine_km"`
	Alternatives []RouteAlternative `json:"alternatives"`
}
