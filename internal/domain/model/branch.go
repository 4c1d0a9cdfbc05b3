package model

// LatLng 緯度経度を表す基本的な型（経路検索などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsValid 緯度 [-90,90]・経度 [-180,180] の範囲内か
func (p LatLng) IsValid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// BranchRecord 支店・拠点1件を表すモデル。
// DisplayName は候補カラムから解決した表示名で、検証後は空にならない。
// NormalizedKey は結合専用の正規化キーで、画面には出さない。
type BranchRecord struct {
	DisplayName   string  `json:"display_name"`
	NormalizedKey string  `json:"-"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Area          string  `json:"area,omitempty"`
	Row           Row     `json:"attributes"`
}

// ToLatLng 支店の位置情報をLatLng型に変換
func (b *BranchRecord) ToLatLng() LatLng {
	return LatLng{Lat: b.Latitude, Lng: b.Longitude}
}

// EmployeeRecord 名簿の1行を表すモデル。
// NormalizedKey は所属ユニットカラムが解決できなかった場合 nil になり、
// その行は拠点別の集計からは外れるが、名簿系の表示には残る。
type EmployeeRecord struct {
	NormalizedKey *string `json:"-"`
	Matched       bool    `json:"matched"`
	Row           Row     `json:"attributes"`
}
