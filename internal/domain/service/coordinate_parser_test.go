package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"BranchMap-App/internal/domain/model"
)

func TestEnsureLatLng_CombinedColumn(t *testing.T) {
	t.Run("複合カラムのパース", func(t *testing.T) {
		ds := model.NewDataset([]model.Row{
			{"Unit Kerja": "Branch X", "Latitude_Longitude": "-8.65,115.21"},
			{"Unit Kerja": "Branch Y", "Latitude_Longitude": " -8.79 , 116.07 "},
		})
		diag := &model.LoadDiagnostics{}
		out := EnsureLatLng(ds, diag)

		assert.Len(t, out.Rows, 2)
		lat, _ := out.Rows[0].Float64Cell("Latitude")
		lng, _ := out.Rows[0].Float64Cell("Longitude")
		assert.InDelta(t, -8.65, lat, 1e-9)
		assert.InDelta(t, 115.21, lng, 1e-9)
		assert.Equal(t, 0, diag.DroppedCoordinate)
	})

	t.Run("カンマ無しは除外", func(t *testing.T) {
		ds := model.NewDataset([]model.Row{
			{"Unit Kerja": "Branch X", "Latitude_Longitude": "-8.65"},
		})
		diag := &model.LoadDiagnostics{}
		out := EnsureLatLng(ds, diag)

		assert.Len(t, out.Rows, 0)
		assert.Equal(t, 1, diag.DroppedCoordinate)
	})

	t.Run("数値にならない側があれば除外", func(t *testing.T) {
		ds := model.NewDataset([]model.Row{
			{"Latitude_Longitude": "abc,98.25"},
			{"Latitude_Longitude": "12.5,xyz"},
			{"Latitude_Longitude": "12.5, 98.25"},
		})
		diag := &model.LoadDiagnostics{}
		out := EnsureLatLng(ds, diag)

		// 有効なのは最後の1行だけ。0埋めで残ることはない
		assert.Len(t, out.Rows, 1)
		lat, _ := out.Rows[0].Float64Cell("Latitude")
		lng, _ := out.Rows[0].Float64Cell("Longitude")
		assert.InDelta(t, 12.5, lat, 1e-9)
		assert.InDelta(t, 98.25, lng, 1e-9)
		assert.Equal(t, 2, diag.DroppedCoordinate)
	})

	t.Run("カンマが複数ある場合は最初の1つで分割", func(t *testing.T) {
		ds := model.NewDataset([]model.Row{
			{"Latitude_Longitude": "-8.65,115.21,extra"},
		})
		out := EnsureLatLng(ds, nil)
		// "115.21,extra" は数値にならないため除外される
		assert.Len(t, out.Rows, 0)
	})
}

func TestEnsureLatLng_DedicatedColumns(t *testing.T) {
	t.Run("専用カラムはそのまま使われる", func(t *testing.T) {
		ds := model.NewDataset([]model.Row{
			{"Unit Kerja": "Branch X", "Latitude": -8.65, "Longitude": 115.21},
		})
		out := EnsureLatLng(ds, nil)
		assert.Len(t, out.Rows, 1)
	})

	t.Run("範囲外の座標は除外", func(t *testing.T) {
		ds := model.NewDataset([]model.Row{
			{"Latitude": 91.0, "Longitude": 115.21},
			{"Latitude": -8.65, "Longitude": 181.0},
			{"Latitude": -8.65, "Longitude": 115.21},
		})
		diag := &model.LoadDiagnostics{}
		out := EnsureLatLng(ds, diag)
		assert.Len(t, out.Rows, 1)
		assert.Equal(t, 2, diag.DroppedCoordinate)
	})

	t.Run("文字列の数値セルもパースされる", func(t *testing.T) {
		ds := model.NewDataset([]model.Row{
			{"Latitude": "-8.65", "Longitude": "115.21"},
		})
		out := EnsureLatLng(ds, nil)
		assert.Len(t, out.Rows, 1)
		lat, _ := out.Rows[0].Float64Cell("Latitude")
		assert.InDelta(t, -8.65, lat, 1e-9)
	})
}

func TestEnsureLatLng_NoCoordinateColumns(t *testing.T) {
	ds := model.NewDataset([]model.Row{
		{"Unit Kerja": "Branch X"},
	})
	diag := &model.LoadDiagnostics{}
	out := EnsureLatLng(ds, diag)

	// 座標機能は無効になるが、エラーにはならない
	assert.Len(t, out.Rows, 0)
	assert.Contains(t, diag.UnavailableFeatures, "coordinates")
}
