package repository

import (
	"context"

	"BranchMap-App/internal/domain/model"
)

// RotationRepository 人事ローテーションバッチの永続化インターフェース
type RotationRepository interface {
	Create(ctx context.Context, batch *model.RotationBatch) error
	GetByID(ctx context.Context, id string) (*model.RotationBatch, error)
	List(ctx context.Context) ([]*model.RotationBatch, error)
	Update(ctx context.Context, batch *model.RotationBatch) error
	Delete(ctx context.Context, id string) error
}
