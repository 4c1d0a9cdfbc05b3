package model

// データセットのカラム名は提供元によって揺れがあるため、
// 候補リストを優先順で宣言しておき SchemaResolver で解決する。
// 順序に意味がある（より具体的な名前が先）。

// BranchUnitColumnCandidates 支店データセットの名称・ユニットカラムの候補
var BranchUnitColumnCandidates = []string{"Unit Kerja", "Kantor", "Nama Cabang", "Nama Unit"}

// EmployeeUnitColumnCandidates 従業員データセットの所属ユニットカラムの候補
var EmployeeUnitColumnCandidates = []string{"Unit Kerja", "Kantor", "Nama Cabang", "Unit"}

// LatitudeColumnCandidates 緯度カラムの候補
var LatitudeColumnCandidates = []string{"Latitude"}

// LongitudeColumnCandidates 経度カラムの候補
var LongitudeColumnCandidates = []string{"Longitude"}

// CombinedLatLngColumnCandidates "lat,lon" 形式の複合カラムの候補
var CombinedLatLngColumnCandidates = []string{"Latitude_Longitude"}

// AreaColumnCandidates エリア分類カラムの候補（色分け・グルーピング用）
var AreaColumnCandidates = []string{"AREA", "Area", "Wilayah", "Regional", "Kanwil"}

// BranchDisplayNameCandidates 表示名カラムの候補
var BranchDisplayNameCandidates = []string{"Nama Kantor", "Kantor", "Nama Cabang", "Unit Kerja", "Nama Unit"}

// PlaceholderTokens 欠損値とみなす文字列表現
var PlaceholderTokens = map[string]struct{}{
	"-":    {},
	"–":    {},
	"—":    {},
	"N/A":  {},
	"NA":   {},
	"n/a":  {},
	"na":   {},
	"":     {},
	"None": {},
	"null": {},
	"Null": {},
}

// テーブル名（ストレージ層と共有）
const (
	TableBranches  = "branches"
	TableEmployees = "employees"
)

// DefaultDurationMultiplier 所要時間レンジのデフォルト倍率。
// プロバイダの所要時間は自由流を前提としており、この地域の実走は大幅に遅い。
// 環境変数 ROUTE_DURATION_MULTIPLIER で調整可能（較正済みの統計値ではない）。
const DefaultDurationMultiplier = 2.0
