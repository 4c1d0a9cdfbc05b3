package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"BranchMap-App/internal/domain/model"
)

func testBranchDataset() *model.Dataset {
	return model.NewDataset([]model.Row{
		{"Unit Kerja": "Branch X", "Latitude": -8.65, "Longitude": 115.21, "AREA": "DENPASAR"},
		{"Unit Kerja": "Branch Y", "Latitude": -8.79, "Longitude": 116.07, "AREA": "MATARAM"},
	})
}

func TestReconcile(t *testing.T) {
	t.Run("正規化キーでの突合", func(t *testing.T) {
		employees := model.NewDataset([]model.Row{
			{"Nama": "Ayu", "Unit Kerja": " BRANCH X "},
			{"Nama": "Budi", "Unit Kerja": "Branch Y"},
			{"Nama": "Citra", "Unit Kerja": "Branch Z"},
		})
		result := Reconcile(testBranchDataset(), employees)

		// 空白・大文字小文字の揺れがあっても突合できる
		key := "branch x"
		assert.Equal(t, 1, result.PeopleCount(key))
		assert.True(t, result.Employees[0].Matched)
		assert.True(t, result.Employees[1].Matched)
		// 存在しないユニットの行は未突合だが保持される
		assert.False(t, result.Employees[2].Matched)
	})

	t.Run("従業員行は1行も落とさない", func(t *testing.T) {
		employees := model.NewDataset([]model.Row{
			{"Nama": "Ayu", "Unit Kerja": "Branch X"},
			{"Nama": "Budi"},
			{"Nama": "Citra", "Unit Kerja": nil},
			{"Nama": "Dewi", "Unit Kerja": "-"},
		})
		result := Reconcile(testBranchDataset(), employees)

		assert.Len(t, result.Employees, len(employees.Rows))

		// 紐付いた人数の合計は従業員総数を超えない
		total := 0
		for key := range result.PeopleByUnit {
			total += result.PeopleCount(key)
		}
		assert.LessOrEqual(t, total, len(employees.Rows))
	})

	t.Run("キーが解決できない行はNormalizedKeyがnil", func(t *testing.T) {
		employees := model.NewDataset([]model.Row{
			{"Nama": "Budi", "Unit Kerja": "-"},
		})
		result := Reconcile(testBranchDataset(), employees)
		assert.Nil(t, result.Employees[0].NormalizedKey)
		assert.False(t, result.Employees[0].Matched)
	})

	t.Run("支店側キーカラムが無い場合は縮退モード", func(t *testing.T) {
		branches := model.NewDataset([]model.Row{
			{"Gedung": "HQ", "Latitude": -8.65, "Longitude": 115.21},
		})
		employees := model.NewDataset([]model.Row{
			{"Nama": "Ayu", "Unit Kerja": "Branch X"},
		})
		result := Reconcile(branches, employees)

		// 突合自体は成功し、全支店の所属者は空になる
		assert.True(t, result.Diagnostics.ReconcileDegraded)
		assert.Len(t, result.Branches, 1)
		assert.Len(t, result.Employees, 1)
		assert.Empty(t, result.PeopleByUnit)
	})

	t.Run("エリアと表示名の解決", func(t *testing.T) {
		result := Reconcile(testBranchDataset(), nil)
		assert.Equal(t, "DENPASAR", result.Branches[0].Area)
		assert.Equal(t, "Branch X", result.Branches[0].DisplayName)
		assert.Equal(t, "Unit Kerja", result.Diagnostics.BranchUnitColumn)
	})

	t.Run("従業員側の候補カラムのフォールバック", func(t *testing.T) {
		employees := model.NewDataset([]model.Row{
			{"Nama": "Ayu", "Kantor": "Branch X"},
		})
		result := Reconcile(testBranchDataset(), employees)
		assert.Equal(t, "Kantor", result.Diagnostics.EmployeeUnitColumn)
		assert.True(t, result.Employees[0].Matched)
	})
}
