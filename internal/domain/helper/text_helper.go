package helper

import (
	"fmt"
	"strings"

	"BranchMap-App/internal/domain/model"
)

// Normalize 自由入力の識別子を結合用キーに正規化する。
// 前後の空白を除去して小文字化するだけで、曖昧一致はしない。冪等。
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeCell データセットのセル値を正規化キーに変換する。
// nil・非文字列・プレースホルダ文字列（"-", "N/A" など）は欠損としてnilを返す。
func NormalizeCell(v any) *string {
	if v == nil {
		return nil
	}
	var raw string
	switch s := v.(type) {
	case string:
		raw = s
	case fmt.Stringer:
		raw = s.String()
	default:
		raw = fmt.Sprintf("%v", v)
	}
	trimmed := strings.TrimSpace(raw)
	if _, ok := model.PlaceholderTokens[trimmed]; ok {
		return nil
	}
	key := Normalize(trimmed)
	return &key
}

// IsPlaceholder セル値が欠損扱いのプレースホルダかどうか
func IsPlaceholder(s string) bool {
	_, ok := model.PlaceholderTokens[strings.TrimSpace(s)]
	return ok
}
