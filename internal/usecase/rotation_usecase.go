package usecase

import (
	"context"
	"fmt"
	"time"

	"BranchMap-App/internal/domain/model"
	"BranchMap-App/internal/domain/repository"
)

// RotationUseCase 人事ローテーションバッチのCRUDを処理する
type RotationUseCase interface {
	CreateBatch(ctx context.Context, req *model.RotationBatchRequest) (*model.RotationBatch, error)
	GetBatch(ctx context.Context, id string) (*model.RotationBatch, error)
	ListBatches(ctx context.Context) ([]*model.RotationBatch, error)
	UpdateBatch(ctx context.Context, id string, req *model.RotationBatchRequest) (*model.RotationBatch, error)
	DeleteBatch(ctx context.Context, id string) error
}

// rotationUseCaseImpl はRotationUseCaseの実装
type rotationUseCaseImpl struct {
	rotationRepo repository.RotationRepository
}

// NewRotationUseCase 新しいRotationUseCaseインスタンスを作成
func NewRotationUseCase(rotationRepo repository.RotationRepository) RotationUseCase {
	return &rotationUseCaseImpl{rotationRepo: rotationRepo}
}

func (u *rotationUseCaseImpl) CreateBatch(ctx context.Context, req *model.RotationBatchRequest) (*model.RotationBatch, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("バッチ名は必須です")
	}
	batch := &model.RotationBatch{
		Name:          req.Name,
		LetterNumber:  req.LetterNumber,
		EffectiveDate: req.EffectiveDate,
		Area:          req.Area,
		Notes:         req.Notes,
		Items:         req.Items,
		CreatedAt:     time.Now(),
	}
	if err := u.rotationRepo.Create(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

func (u *rotationUseCaseImpl) GetBatch(ctx context.Context, id string) (*model.RotationBatch, error) {
	return u.rotationRepo.GetByID(ctx, id)
}

func (u *rotationUseCaseImpl) ListBatches(ctx context.Context) ([]*model.RotationBatch, error) {
	return u.rotationRepo.List(ctx)
}

func (u *rotationUseCaseImpl) UpdateBatch(ctx context.Context, id string, req *model.RotationBatchRequest) (*model.RotationBatch, error) {
	existing, err := u.rotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = req.Name
	existing.LetterNumber = req.LetterNumber
	existing.EffectiveDate = req.EffectiveDate
	existing.Area = req.Area
	existing.Notes = req.Notes
	existing.Items = req.Items
	if err := u.rotationRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *rotationUseCaseImpl) DeleteBatch(ctx context.Context, id string) error {
	return u.rotationRepo.Delete(ctx, id)
}
