package service

import (
	"BranchMap-App/internal/domain/helper"
	"BranchMap-App/internal/domain/model"
)

// Reconcile 支店データセットと従業員データセットを正規化キーで突合する。
//
//   - 支店側・従業員側それぞれのユニットカラムを候補リストから解決する
//   - 両側のキーを正規化し、支店→所属者（0人以上）、従業員→所属支店（高々1つ）の対応を作る
//   - 従業員行は突合できなくても絶対に落とさない。突合の成否は属性（Matched）に過ぎない
//   - 支店側のキーカラムが解決できない場合も突合自体は成功し、全支店の所属者は空、
//     全従業員のキーはnilになる（縮退は報告対象の警告であり失敗ではない）
func Reconcile(branches, employees *model.Dataset) *model.ReconcileResult {
	diag := &model.LoadDiagnostics{}
	result := &model.ReconcileResult{
		PeopleByUnit: make(map[string][]*model.EmployeeRecord),
		BranchByKey:  make(map[string]*model.BranchRecord),
		Diagnostics:  diag,
	}

	branchCol, branchOK := ResolveColumn(branches, model.BranchUnitColumnCandidates)
	if branchOK {
		diag.BranchUnitColumn = branchCol
	} else {
		diag.ReconcileDegraded = true
		diag.MarkUnavailable("branch_unit_column")
		diag.AddWarning("支店側のユニットカラムが解決できません。突合は縮退モードで続行します")
	}

	employeeCol, employeeOK := ResolveColumn(employees, model.EmployeeUnitColumnCandidates)
	if employeeOK {
		diag.EmployeeUnitColumn = employeeCol
	} else if employees != nil && !employees.IsEmpty() {
		diag.ReconcileDegraded = true
		diag.MarkUnavailable("employee_unit_column")
		diag.AddWarning("従業員側のユニットカラムが解決できません。所属の紐付けは行われません")
	}

	nameCol, nameOK := ResolveColumn(branches, model.BranchDisplayNameCandidates)
	if nameOK {
		diag.DisplayNameColumn = nameCol
	}
	areaCol, areaOK := ResolveColumn(branches, model.AreaColumnCandidates)
	if areaOK {
		diag.AreaColumn = areaCol
	} else if branches != nil && !branches.IsEmpty() {
		diag.MarkUnavailable("area")
	}

	if branches != nil {
		for _, row := range branches.Rows {
			record := &model.BranchRecord{Row: row}
			if lat, ok := row.Float64Cell("Latitude"); ok {
				record.Latitude = lat
			}
			if lng, ok := row.Float64Cell("Longitude"); ok {
				record.Longitude = lng
			}
			if branchOK {
				if key := helper.NormalizeCell(row[branchCol]); key != nil {
					record.NormalizedKey = *key
				}
			}
			record.DisplayName = branchDisplayName(row, nameCol, branchCol, nameOK, branchOK)
			if areaOK {
				if s, ok := row.StringCell(areaCol); ok && !helper.IsPlaceholder(s) {
					record.Area = s
				}
			}
			result.Branches = append(result.Branches, record)
			if record.NormalizedKey != "" {
				// 同一キーの重複は先勝ち
				if _, exists := result.BranchByKey[record.NormalizedKey]; !exists {
					result.BranchByKey[record.NormalizedKey] = record
				}
			}
		}
	}

	if employees != nil {
		for _, row := range employees.Rows {
			record := &model.EmployeeRecord{Row: row}
			if employeeOK {
				record.NormalizedKey = helper.NormalizeCell(row[employeeCol])
			}
			if record.NormalizedKey != nil {
				if _, ok := result.BranchByKey[*record.NormalizedKey]; ok {
					record.Matched = true
					result.PeopleByUnit[*record.NormalizedKey] = append(result.PeopleByUnit[*record.NormalizedKey], record)
				}
			}
			result.Employees = append(result.Employees, record)
		}
	}

	return result
}

// branchDisplayName 表示名を候補から決める。表示名カラム→ユニットカラムの順でフォールバック
func branchDisplayName(row model.Row, nameCol, unitCol string, nameOK, unitOK bool) string {
	if nameOK {
		if s, ok := row.StringCell(nameCol); ok && !helper.IsPlaceholder(s) {
			return s
		}
	}
	if unitOK {
		if s, ok := row.StringCell(unitCol); ok && !helper.IsPlaceholder(s) {
			return s
		}
	}
	return "—"
}
