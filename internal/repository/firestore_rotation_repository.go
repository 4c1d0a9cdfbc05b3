package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"BranchMap-App/internal/domain/model"
	"BranchMap-App/internal/domain/repository"
)

const rotationCollection = "rotationBatches"

// FirestoreRotationRepository Firestoreを使用したローテーションバッチリポジトリ
type FirestoreRotationRepository struct {
	client *firestore.Client
}

// NewFirestoreRotationRepository 新しいFirestoreRotationRepositoryインスタンスを作成
func NewFirestoreRotationRepository(client *firestore.Client) repository.RotationRepository {
	return &FirestoreRotationRepository{client: client}
}

// Create ローテーションバッチを保存する。IDが未設定ならuuidを採番する
func (r *FirestoreRotationRepository) Create(ctx context.Context, batch *model.RotationBatch) error {
	if batch.ID == "" {
		batch.ID = fmt.Sprintf("rot_%s", uuid.New().String())
	}
	if batch.CreatedAt.IsZero() {
		batch.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(rotationCollection).Doc(batch.ID).Set(ctx, batch.ToFirestoreRotationBatch())
	if err != nil {
		log.Printf("❌ Failed to save rotation batch %s: %v", batch.ID, err)
		return fmt.Errorf("ローテーションバッチの保存に失敗しました: %w", err)
	}
	return nil
}

// GetByID 指定IDのローテーションバッチを取得する
func (r *FirestoreRotationRepository) GetByID(ctx context.Context, id string) (*model.RotationBatch, error) {
	doc, err := r.client.Collection(rotationCollection).Doc(id).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("ローテーションバッチが見つかりません: %s", id)
		}
		return nil, fmt.Errorf("ローテーションバッチの取得に失敗しました: %w", err)
	}

	var data model.FirestoreRotationBatch
	if err := doc.DataTo(&data); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}
	return data.ToRotationBatch(id), nil
}

// List 全ローテーションバッチを取得する
func (r *FirestoreRotationRepository) List(ctx context.Context) ([]*model.RotationBatch, error) {
	docs, err := r.client.Collection(rotationCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("ローテーションバッチ一覧の取得に失敗しました: %w", err)
	}

	batches := make([]*model.RotationBatch, 0, len(docs))
	for _, doc := range docs {
		var data model.FirestoreRotationBatch
		if err := doc.DataTo(&data); err != nil {
			return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
		}
		batches = append(batches, data.ToRotationBatch(doc.Ref.ID))
	}
	return batches, nil
}

// Update 既存のローテーションバッチを上書きする
func (r *FirestoreRotationRepository) Update(ctx context.Context, batch *model.RotationBatch) error {
	if batch.ID == "" {
		return fmt.Errorf("更新対象のIDが指定されていません")
	}
	_, err := r.client.Collection(rotationCollection).Doc(batch.ID).Set(ctx, batch.ToFirestoreRotationBatch())
	if err != nil {
		return fmt.Errorf("ローテーションバッチの更新に失敗しました: %w", err)
	}
	return nil
}

// Delete 指定IDのローテーションバッチを削除する
func (r *FirestoreRotationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(rotationCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("ローテーションバッチの削除に失敗しました: %w", err)
	}
	return nil
}
