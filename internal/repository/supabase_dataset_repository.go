package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"BranchMap-App/internal/domain/model"
	"BranchMap-App/internal/domain/repository"
	"BranchMap-App/internal/infrastructure/database"
)

// SupabaseDatasetRepository Supabase (PostgREST) を使用したデータセットリポジトリ
type SupabaseDatasetRepository struct {
	client *database.SupabaseClient
}

// NewSupabaseDatasetRepository 新しいSupabaseDatasetRepositoryインスタンスを作成
func NewSupabaseDatasetRepository(client *database.SupabaseClient) repository.DatasetRepository {
	return &SupabaseDatasetRepository{client: client}
}

// datasetRowDB dataset_rows テーブルの1行
type datasetRowDB struct {
	Dataset string    `json:"dataset"`
	Idx     int       `json:"idx"`
	Payload model.Row `json:"payload"`
}

// datasetMetaDB dataset_meta テーブルの1行
type datasetMetaDB struct {
	Dataset       string `json:"dataset"`
	UpdatedAtUnix int64  `json:"updated_at_unix"`
}

// ReadTable 指定テーブルの全行を読み込む
func (r *SupabaseDatasetRepository) ReadTable(ctx context.Context, name string) (*model.Dataset, error) {
	data, _, err := r.client.GetClient().From("dataset_rows").
		Select("idx,payload", "exact", false).
		Eq("dataset", name).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("テーブル %s の読み込みに失敗: %w", name, err)
	}

	var rows []datasetRowDB
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("テーブル %s のJSONアンマーシャル失敗: %w", name, err)
	}

	// PostgRESTの返却順に依存せず idx で並べ直す
	sort.Slice(rows, func(i, j int) bool { return rows[i].Idx < rows[j].Idx })

	records := make([]model.Row, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Payload)
	}
	return model.NewDataset(records), nil
}

// ReplaceTable テーブルの内容を全置換し、更新マーカーを進める
func (r *SupabaseDatasetRepository) ReplaceTable(ctx context.Context, name string, ds *model.Dataset) error {
	// 既存行の削除
	_, _, err := r.client.GetClient().From("dataset_rows").
		Delete("", "").
		Eq("dataset", name).
		Execute()
	if err != nil {
		return fmt.Errorf("テーブル %s の削除に失敗: %w", name, err)
	}

	if len(ds.Rows) > 0 {
		inserts := make([]datasetRowDB, 0, len(ds.Rows))
		for i, row := range ds.Rows {
			inserts = append(inserts, datasetRowDB{Dataset: name, Idx: i, Payload: row})
		}
		data, err := json.Marshal(inserts)
		if err != nil {
			return fmt.Errorf("テーブル %s のJSONマーシャル失敗: %w", name, err)
		}
		_, _, err = r.client.GetClient().From("dataset_rows").
			Insert(string(data), false, "", "", "").
			Execute()
		if err != nil {
			return fmt.Errorf("テーブル %s の行挿入に失敗: %w", name, err)
		}
	}

	meta, err := json.Marshal(datasetMetaDB{Dataset: name, UpdatedAtUnix: time.Now().UnixNano()})
	if err != nil {
		return fmt.Errorf("テーブル %s のマーカーのマーシャル失敗: %w", name, err)
	}
	_, _, err = r.client.GetClient().From("dataset_meta").
		Insert(string(meta), true, "dataset", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("テーブル %s のマーカー更新に失敗: %w", name, err)
	}
	return nil
}

// Marker 全テーブルの最終書き込み時刻の最大値を返す
func (r *SupabaseDatasetRepository) Marker(ctx context.Context) (int64, error) {
	data, _, err := r.client.GetClient().From("dataset_meta").
		Select("dataset,updated_at_unix", "exact", false).
		Execute()
	if err != nil {
		return 0, fmt.Errorf("更新マーカーの取得に失敗: %w", err)
	}

	var metas []datasetMetaDB
	if err := json.Unmarshal(data, &metas); err != nil {
		return 0, fmt.Errorf("更新マーカーのJSONアンマーシャル失敗: %w", err)
	}

	var max int64
	for _, m := range metas {
		if m.UpdatedAtUnix > max {
			max = m.UpdatedAtUnix
		}
	}
	return max, nil
}
