package repository

import (
	"context"

	"BranchMap-App/internal/domain/model"
)

// DatasetRepository 表形式データセットの読み書きインターフェース。
// このエンジンはテーブルの読み込みと全置換のみ行い、部分更新はしない。
// Marker はデータソースの更新を検出するための単調増加値（最終書き込み時刻など）で、
// 呼び出し側はこの値が変わったらキャッシュを全再構築する。
type DatasetRepository interface {
	ReadTable(ctx context.Context, name string) (*model.Dataset, error)
	ReplaceTable(ctx context.Context, name string, ds *model.Dataset) error
	Marker(ctx context.Context) (int64, error)
}
