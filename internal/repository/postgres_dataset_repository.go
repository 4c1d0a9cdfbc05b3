package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"BranchMap-App/internal/domain/model"
	"BranchMap-App/internal/domain/repository"
	"BranchMap-App/internal/infrastructure/database"
)

// PostgresDatasetRepository PostgreSQL直接接続を使用したデータセットリポジトリ
type PostgresDatasetRepository struct {
	client *database.PostgreSQLClient
}

// NewPostgresDatasetRepository 新しいPostgresDatasetRepositoryインスタンスを作成
func NewPostgresDatasetRepository(client *database.PostgreSQLClient) repository.DatasetRepository {
	return &PostgresDatasetRepository{client: client}
}

// ReadTable 指定テーブルの全行を読み込む
func (r *PostgresDatasetRepository) ReadTable(ctx context.Context, name string) (*model.Dataset, error) {
	rows, err := r.client.DB.QueryContext(ctx,
		`SELECT payload FROM dataset_rows WHERE dataset = $1 ORDER BY idx`, name)
	if err != nil {
		return nil, fmt.Errorf("テーブル %s の読み込みに失敗: %w", name, err)
	}
	defer rows.Close()

	var records []model.Row
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("テーブル %s の行スキャンに失敗: %w", name, err)
		}
		var row model.Row
		if err := json.Unmarshal(payload, &row); err != nil {
			return nil, fmt.Errorf("テーブル %s の行デコードに失敗: %w", name, err)
		}
		records = append(records, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("テーブル %s の読み込み中にエラー: %w", name, err)
	}

	return model.NewDataset(records), nil
}

// ReplaceTable テーブルの内容を全置換し、更新マーカーを進める
func (r *PostgresDatasetRepository) ReplaceTable(ctx context.Context, name string, ds *model.Dataset) error {
	tx, err := r.client.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dataset_rows WHERE dataset = $1`, name); err != nil {
		return fmt.Errorf("テーブル %s の削除に失敗: %w", name, err)
	}

	for i, row := range ds.Rows {
		payload, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("テーブル %s の行エンコードに失敗: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO dataset_rows (dataset, idx, payload) VALUES ($1, $2, $3)`,
			name, i, payload); err != nil {
			return fmt.Errorf("テーブル %s の行挿入に失敗: %w", name, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO dataset_meta (dataset, updated_at_unix) VALUES ($1, $2)
		 ON CONFLICT (dataset) DO UPDATE SET updated_at_unix = EXCLUDED.updated_at_unix`,
		name, time.Now().UnixNano()); err != nil {
		return fmt.Errorf("テーブル %s のマーカー更新に失敗: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("テーブル %s のコミットに失敗: %w", name, err)
	}
	return nil
}

// Marker 全テーブルの最終書き込み時刻の最大値を返す
func (r *PostgresDatasetRepository) Marker(ctx context.Context) (int64, error) {
	var marker sql.NullInt64
	err := r.client.DB.QueryRowContext(ctx,
		`SELECT MAX(updated_at_unix) FROM dataset_meta`).Scan(&marker)
	if err != nil {
		return 0, fmt.Errorf("更新マーカーの取得に失敗: %w", err)
	}
	if !marker.Valid {
		return 0, nil
	}
	return marker.Int64, nil
}
