package service

import (
	"strings"

	"BranchMap-App/internal/domain/model"
)

// ResolveColumn 候補リストを優先順に走査し、データセットに実在する最初のカラム名を返す。
// 1パス目は大文字小文字を区別する完全一致。全候補が外れた場合のみ、
// 2パス目として大文字小文字を無視した一致を同じ優先順で試す。
// 部分一致はしない。見つからなければ ("", false) を返すが、これはエラーではなく
// 「この機能はこのデータセットでは使えない」という意味で扱う。
func ResolveColumn(ds *model.Dataset, candidates []string) (string, bool) {
	if ds == nil {
		return "", false
	}

	for _, cand := range candidates {
		for _, col := range ds.Columns {
			if col == cand {
				return col, true
			}
		}
	}

	// 2パス目: 大文字小文字を無視した一致（候補順は維持）
	lower := make(map[string]string, len(ds.Columns))
	for _, col := range ds.Columns {
		lc := strings.ToLower(col)
		if _, ok := lower[lc]; !ok {
			lower[lc] = col
		}
	}
	for _, cand := range candidates {
		if col, ok := lower[strings.ToLower(cand)]; ok {
			return col, true
		}
	}

	return "", false
}
