package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"BranchMap-App/internal/domain/model"
)

// EnsureLatLng 支店データセットに有効な Latitude / Longitude カラムを揃える。
//
//   - 専用の緯度・経度カラムが両方ある場合はそれを使い、範囲検証のみ行う
//   - ない場合は "lat,lon" 形式の複合カラムを探し、最初のカンマで分割してパースする
//   - どちらか一方でもパースできない・範囲外・非有限な行は出力から除外する（0埋めはしない）
//
// 除外行数は diag に記録される（行単位のソフトエラーであり、全体は止めない）。
// 出力の全行は有効な float64 の Latitude / Longitude セルを持つ。
func EnsureLatLng(ds *model.Dataset, diag *model.LoadDiagnostics) *model.Dataset {
	if ds.IsEmpty() {
		return ds
	}

	latCol, latOK := ResolveColumn(ds, model.LatitudeColumnCandidates)
	lngCol, lngOK := ResolveColumn(ds, model.LongitudeColumnCandidates)

	if latOK && lngOK {
		return filterValidLatLng(ds, latCol, lngCol, diag)
	}

	combined, ok := ResolveColumn(ds, model.CombinedLatLngColumnCandidates)
	if !ok {
		if diag != nil {
			diag.MarkUnavailable("coordinates")
			diag.AddWarning("座標カラムが解決できないため、地理機能は無効です")
		}
		return &model.Dataset{Columns: ds.Columns}
	}

	out := &model.Dataset{Columns: append([]string{}, ds.Columns...)}
	if !ds.HasColumn("Latitude") {
		out.Columns = append(out.Columns, "Latitude")
	}
	if !ds.HasColumn("Longitude") {
		out.Columns = append(out.Columns, "Longitude")
	}

	dropped := 0
	for _, row := range ds.Rows {
		lat, lng, ok := splitCombinedLatLng(row[combined])
		if !ok || !validLatLng(lat, lng) {
			dropped++
			continue
		}
		parsed := row.Clone()
		parsed["Latitude"] = lat
		parsed["Longitude"] = lng
		out.Rows = append(out.Rows, parsed)
	}
	if diag != nil && dropped > 0 {
		diag.DroppedCoordinate += dropped
		diag.AddWarning(fmt.Sprintf("座標をパースできない行を%d件除外しました", dropped))
	}
	return out
}

// splitCombinedLatLng "<lat>,<lon>" 形式の値を分割してパースする。
// カンマが複数ある場合は最初の1つで分割する。
func splitCombinedLatLng(v any) (float64, float64, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, 0, false
	}
	left, right, found := strings.Cut(strings.TrimSpace(s), ",")
	if !found {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(left), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(right), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// filterValidLatLng 専用カラムを持つデータセットから座標が有効な行だけを残す
func filterValidLatLng(ds *model.Dataset, latCol, lngCol string, diag *model.LoadDiagnostics) *model.Dataset {
	out := &model.Dataset{Columns: append([]string{}, ds.Columns...)}
	dropped := 0
	for _, row := range ds.Rows {
		lat, latOK := coordCell(row, latCol)
		lng, lngOK := coordCell(row, lngCol)
		if !latOK || !lngOK || !validLatLng(lat, lng) {
			dropped++
			continue
		}
		parsed := row.Clone()
		parsed["Latitude"] = lat
		parsed["Longitude"] = lng
		out.Rows = append(out.Rows, parsed)
	}
	if diag != nil && dropped > 0 {
		diag.DroppedCoordinate += dropped
		diag.AddWarning(fmt.Sprintf("座標が無効な行を%d件除外しました", dropped))
	}
	return out
}

// coordCell 数値セルまたは数値文字列セルからfloat64を取り出す
func coordCell(row model.Row, col string) (float64, bool) {
	if f, ok := row.Float64Cell(col); ok {
		return f, true
	}
	if s, ok := row.StringCell(col); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			return f, true
		}
	}
	return 0, false
}

func validLatLng(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
