package model

// LoadDiagnostics データ読み込み・突合時のソフトエラーを集約する診断情報。
// ソフトエラーは処理を止めず、ここに記録してプレゼンテーション層へ伝える。
type LoadDiagnostics struct {
	BranchUnitColumn    string   `json:"branch_unit_column,omitempty"`
	EmployeeUnitColumn  string   `json:"employee_unit_column,omitempty"`
	DisplayNameColumn   string   `json:"display_name_column,omitempty"`
	AreaColumn          string   `json:"area_column,omitempty"`
	DroppedCoordinate   int      `json:"dropped_coordinate_rows"`
	ReconcileDegraded   bool     `json:"reconcile_degraded"`
	UnavailableFeatures []string `json:"unavailable_features,omitempty"`
	Warnings            []string `json:"warnings,omitempty"`
}

// AddWarning 警告を追記する
func (d *LoadDiagnostics) AddWarning(msg string) {
	d.Warnings = append(d.Warnings, msg)
}

// MarkUnavailable カラム解決に失敗して使えなくなった機能を記録する
func (d *LoadDiagnostics) MarkUnavailable(feature string) {
	d.UnavailableFeatures = append(d.UnavailableFeatures, feature)
}
