package model

// ReconcileResult 支店データセットと従業員データセットの突合結果。
// 従業員行は突合の成否にかかわらず1行も落とさない。
type ReconcileResult struct {
	Branches     []*BranchRecord              `json:"branches"`
	Employees    []*EmployeeRecord            `json:"employees"`
	PeopleByUnit map[string][]*EmployeeRecord `json:"-"`
	BranchByKey  map[string]*BranchRecord     `json:"-"`
	Diagnostics  *LoadDiagnostics             `json:"diagnostics"`
}

// FindBranch 正規化済みキーで支店を引く
func (r *ReconcileResult) FindBranch(normalizedKey string) (*BranchRecord, bool) {
	b, ok := r.BranchByKey[normalizedKey]
	return b, ok
}

// PeopleCount 指定キーに紐づく従業員数
func (r *ReconcileResult) PeopleCount(normalizedKey string) int {
	return len(r.PeopleByUnit[normalizedKey])
}

// BranchOfEmployee 従業員の所属支店を引く（未突合ならfalse）
func (r *ReconcileResult) BranchOfEmployee(e *EmployeeRecord) (*BranchRecord, bool) {
	if e == nil || e.NormalizedKey == nil {
		return nil, false
	}
	return r.FindBranch(*e.NormalizedKey)
}
