package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// SQLiteClient ローカルSQLiteファイルへの接続クライアント（デフォルトのストレージ）
type SQLiteClient struct {
	DB   *sql.DB
	Path string
}

// NewSQLiteClient 新しいSQLiteクライアントを作成し、スキーマを初期化する
func NewSQLiteClient() (*SQLiteClient, error) {
	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "branch_dashboard.db"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("SQLite接続の初期化に失敗: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("SQLiteへの接続に失敗: %w", err)
	}

	// スキーマは固定カラムを持たない。行はJSONペイロードとして保存する
	schema := []string{
		`CREATE TABLE IF NOT EXISTS dataset_rows (
			dataset TEXT NOT NULL,
			idx     INTEGER NOT NULL,
			payload TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS dataset_meta (
			dataset         TEXT PRIMARY KEY,
			updated_at_unix INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_dataset_rows_dataset ON dataset_rows(dataset)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("SQLiteスキーマの初期化に失敗: %w", err)
		}
	}

	return &SQLiteClient{DB: db, Path: path}, nil
}

// Close データベース接続を閉じる
func (sc *SQLiteClient) Close() error {
	if sc.DB != nil {
		return sc.DB.Close()
	}
	return nil
}

// HealthCheck データベース接続のヘルスチェック
func (sc *SQLiteClient) HealthCheck() error {
	if sc.DB == nil {
		return fmt.Errorf("SQLiteクライアントが初期化されていません")
	}
	return sc.DB.Ping()
}
