package helper

import (
	"math"
	"testing"

	"BranchMap-App/internal/domain/model"
)

// バリ島内の実在座標を使ったテストデータ
var (
	denpasar = model.LatLng{Lat: -8.65, Lng: 115.21}
	mataram  = model.LatLng{Lat: -8.79, Lng: 116.07}
)

func TestHaversineDistanceKm(t *testing.T) {
	t.Run("対称性", func(t *testing.T) {
		d1 := HaversineDistanceKm(denpasar, mataram)
		d2 := HaversineDistanceKm(mataram, denpasar)
		if math.Abs(d1-d2) > 1e-9 {
			t.Errorf("距離が対称ではありません: %f != %f", d1, d2)
		}
	})

	t.Run("同一地点はゼロ", func(t *testing.T) {
		if d := HaversineDistanceKm(denpasar, denpasar); d != 0 {
			t.Errorf("同一地点の距離は0であるべき: %f", d)
		}
	})

	t.Run("既知の距離", func(t *testing.T) {
		// デンパサール〜マタラム間はおよそ96km
		d := HaversineDistanceKm(denpasar, mataram)
		if d < 90 || d > 105 {
			t.Errorf("距離が想定範囲外: %f km", d)
		}
	})

	t.Run("赤道上の経度1度", func(t *testing.T) {
		a := model.LatLng{Lat: 0, Lng: 0}
		b := model.LatLng{Lat: 0, Lng: 1}
		d := HaversineDistanceKm(a, b)
		// 平均半径6371.0088kmでの1度 ≈ 111.19km
		if math.Abs(d-111.19) > 0.5 {
			t.Errorf("赤道上の経度1度の距離が想定外: %f km", d)
		}
	})
}

func TestInitialBearing(t *testing.T) {
	t.Run("真東は90度", func(t *testing.T) {
		a := model.LatLng{Lat: 0, Lng: 0}
		b := model.LatLng{Lat: 0, Lng: 1}
		if bearing := InitialBearing(a, b); math.Abs(bearing-90) > 1e-6 {
			t.Errorf("真東の方位角は90度であるべき: %f", bearing)
		}
	})

	t.Run("真北は0度", func(t *testing.T) {
		a := model.LatLng{Lat: 0, Lng: 0}
		b := model.LatLng{Lat: 1, Lng: 0}
		if bearing := InitialBearing(a, b); math.Abs(bearing) > 1e-6 {
			t.Errorf("真北の方位角は0度であるべき: %f", bearing)
		}
	})

	t.Run("真西は270度", func(t *testing.T) {
		a := model.LatLng{Lat: 0, Lng: 0}
		b := model.LatLng{Lat: 0, Lng: -1}
		if bearing := InitialBearing(a, b); math.Abs(bearing-270) > 1e-6 {
			t.Errorf("真西の方位角は270度であるべき: %f", bearing)
		}
	})

	t.Run("範囲は常に0以上360未満", func(t *testing.T) {
		points := []model.LatLng{
			denpasar, mataram,
			{Lat: 35.0, Lng: 135.0},
			{Lat: -33.9, Lng: 151.2},
			{Lat: 51.5, Lng: -0.1},
			{Lat: -8.65, Lng: -115.21},
		}
		for _, from := range points {
			for _, to := range points {
				if from == to {
					continue
				}
				bearing := InitialBearing(from, to)
				if bearing < 0 || bearing >= 360 {
					t.Errorf("方位角が範囲外: %f (from=%v to=%v)", bearing, from, to)
				}
			}
		}
	})
}
