package helper

import (
	"math"

	"BranchMap-App/internal/domain/model"
)

// earthRadiusKm 平均地球半径 (km)
const earthRadiusKm = 6371.0088

// HaversineDistanceKm は2地点間の大圏距離を計算する (km)。
// 対称（a,bを入れ替えても同じ値）で、同一地点なら0になる。
func HaversineDistanceKm(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Asin(math.Sqrt(a))
	return earthRadiusKm * c
}

// InitialBearing は出発方位角を度で返す。範囲は [0, 360)、0=北、90=東。
// 同一地点同士の結果は不定なので呼び出し側が特定の値に依存してはならない。
func InitialBearing(from, to model.LatLng) float64 {
	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLng := (to.Lng - from.Lng) * math.Pi / 180
	x := math.Sin(dLng) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	deg := math.Atan2(x, y) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}
