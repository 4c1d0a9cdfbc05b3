package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"BranchMap-App/internal/domain/model"
	"BranchMap-App/internal/domain/repository"
	"BranchMap-App/internal/domain/service"
)

// BranchInsightUseCase 支店・従業員データセットの突合済みビューを提供する。
// ビューはストレージの更新マーカーをキーにメモ化され、マーカーが変わると
// 全体を作り直す（差分更新はしない）。
type BranchInsightUseCase interface {
	// Snapshot は現在の突合済みビューを返す（必要なら再構築する）
	Snapshot(ctx context.Context) (*model.ReconcileResult, error)

	// ReplaceTable はテーブルを全置換する。次のSnapshot呼び出しで再構築される
	ReplaceTable(ctx context.Context, name string, rows []model.Row) error
}

// branchInsightUseCaseImpl はBranchInsightUseCaseの実装
type branchInsightUseCaseImpl struct {
	datasetRepo repository.DatasetRepository

	mu           sync.Mutex
	cached       *model.ReconcileResult
	cachedMarker int64
	hasCache     bool
}

// NewBranchInsightUseCase 新しいBranchInsightUseCaseインスタンスを作成
func NewBranchInsightUseCase(datasetRepo repository.DatasetRepository) BranchInsightUseCase {
	return &branchInsightUseCaseImpl{datasetRepo: datasetRepo}
}

// Snapshot は現在の突合済みビューを返す。
// マーカーが前回構築時と同じならキャッシュをそのまま返す。
func (u *branchInsightUseCaseImpl) Snapshot(ctx context.Context) (*model.ReconcileResult, error) {
	marker, err := u.datasetRepo.Marker(ctx)
	if err != nil {
		return nil, fmt.Errorf("更新マーカーの取得に失敗: %w", err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.hasCache && u.cachedMarker == marker {
		return u.cached, nil
	}

	result, err := u.rebuild(ctx)
	if err != nil {
		return nil, err
	}

	u.cached = result
	u.cachedMarker = marker
	u.hasCache = true
	return result, nil
}

// rebuild ストレージから両テーブルを読み直してビューを作り直す
func (u *branchInsightUseCaseImpl) rebuild(ctx context.Context) (*model.ReconcileResult, error) {
	log.Printf("🔄 データセットのスナップショットを再構築します")

	branches, err := u.datasetRepo.ReadTable(ctx, model.TableBranches)
	if err != nil {
		return nil, fmt.Errorf("支店テーブルの読み込みに失敗: %w", err)
	}
	employees, err := u.datasetRepo.ReadTable(ctx, model.TableEmployees)
	if err != nil {
		return nil, fmt.Errorf("従業員テーブルの読み込みに失敗: %w", err)
	}

	// 座標の解決・検証（無効行はここで地理サブシステムから除外される）
	coordDiag := &model.LoadDiagnostics{}
	geoBranches := service.EnsureLatLng(branches, coordDiag)

	result := service.Reconcile(geoBranches, employees)

	// 座標パース時の診断を突合結果の診断へ集約する
	result.Diagnostics.DroppedCoordinate += coordDiag.DroppedCoordinate
	result.Diagnostics.Warnings = append(result.Diagnostics.Warnings, coordDiag.Warnings...)
	result.Diagnostics.UnavailableFeatures = append(result.Diagnostics.UnavailableFeatures, coordDiag.UnavailableFeatures...)

	log.Printf("✅ スナップショット構築完了 (支店: %d件, 従業員: %d件, 座標除外: %d件)",
		len(result.Branches), len(result.Employees), result.Diagnostics.DroppedCoordinate)
	return result, nil
}

// ReplaceTable テーブルを全置換する
func (u *branchInsightUseCaseImpl) ReplaceTable(ctx context.Context, name string, rows []model.Row) error {
	if name != model.TableBranches && name != model.TableEmployees {
		return fmt.Errorf("未知のテーブル名: %s", name)
	}
	if err := u.datasetRepo.ReplaceTable(ctx, name, model.NewDataset(rows)); err != nil {
		return err
	}
	log.Printf("✅ テーブル %s を置換しました (%d行)", name, len(rows))
	return nil
}
