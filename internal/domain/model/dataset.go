package model

// Row データセットの1行。スキーマが柔軟なため任意のカラムをそのまま保持する
type Row map[string]any

// Dataset ストレージから読み込んだ表形式データ（branches / employees）
type Dataset struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// NewDataset 行データからDatasetを構築する（カラム集合は全行の和集合、初出順）
func NewDataset(rows []Row) *Dataset {
	ds := &Dataset{Rows: rows}
	seen := make(map[string]struct{})
	for _, row := range rows {
		for col := range row {
			if _, ok := seen[col]; !ok {
				seen[col] = struct{}{}
				ds.Columns = append(ds.Columns, col)
			}
		}
	}
	return ds
}

// HasColumn 指定カラムが存在するか（大文字小文字を区別する完全一致）
func (ds *Dataset) HasColumn(name string) bool {
	for _, col := range ds.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// IsEmpty 行が1件もないか
func (ds *Dataset) IsEmpty() bool {
	return ds == nil || len(ds.Rows) == 0
}

// Float64Cell 行から数値セルを取得する。JSONデコード経由の数値型に対応
func (r Row) Float64Cell(col string) (float64, bool) {
	v, ok := r[col]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// StringCell 行から文字列セルを取得する。値が存在しない・nilの場合はfalse
func (r Row) StringCell(col string) (string, bool) {
	v, ok := r[col]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return "", false
}

// Clone 行のシャローコピーを返す
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
