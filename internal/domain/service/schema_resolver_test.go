package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"BranchMap-App/internal/domain/model"
)

func datasetWithColumns(cols ...string) *model.Dataset {
	row := model.Row{}
	for _, c := range cols {
		row[c] = "x"
	}
	return model.NewDataset([]model.Row{row})
}

func TestResolveColumn(t *testing.T) {
	t.Run("候補の優先順で最初に存在するカラムを返す", func(t *testing.T) {
		ds := datasetWithColumns("B", "C")
		col, ok := ResolveColumn(ds, []string{"A", "B", "C"})
		assert.True(t, ok)
		assert.Equal(t, "B", col)
	})

	t.Run("完全一致が優先される", func(t *testing.T) {
		ds := datasetWithColumns("unit kerja", "Kantor")
		// "Unit Kerja" は完全一致しないため、1パス目では "Kantor" が勝つ
		col, ok := ResolveColumn(ds, []string{"Unit Kerja", "Kantor"})
		assert.True(t, ok)
		assert.Equal(t, "Kantor", col)
	})

	t.Run("2パス目は大文字小文字を無視する", func(t *testing.T) {
		ds := datasetWithColumns("UNIT KERJA")
		col, ok := ResolveColumn(ds, []string{"Unit Kerja", "Kantor"})
		assert.True(t, ok)
		assert.Equal(t, "UNIT KERJA", col)
	})

	t.Run("部分一致はしない", func(t *testing.T) {
		ds := datasetWithColumns("Nama Unit Kerja Lengkap")
		_, ok := ResolveColumn(ds, []string{"Unit Kerja"})
		assert.False(t, ok)
	})

	t.Run("どの候補も無ければfalse", func(t *testing.T) {
		ds := datasetWithColumns("X", "Y")
		col, ok := ResolveColumn(ds, []string{"A", "B"})
		assert.False(t, ok)
		assert.Equal(t, "", col)
	})

	t.Run("nilデータセットはfalse", func(t *testing.T) {
		_, ok := ResolveColumn(nil, []string{"A"})
		assert.False(t, ok)
	})

	t.Run("決定的であること", func(t *testing.T) {
		ds := datasetWithColumns("Kantor", "Nama Cabang")
		first, _ := ResolveColumn(ds, model.BranchUnitColumnCandidates)
		for i := 0; i < 10; i++ {
			col, _ := ResolveColumn(ds, model.BranchUnitColumnCandidates)
			assert.Equal(t, first, col)
		}
	})
}
