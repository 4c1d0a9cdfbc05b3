package model

import "time"

// RotationBatch 人事ローテーションの1バッチ（gerbong）。
// 対象者のリストと発令情報をまとめて管理する。
type RotationBatch struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	LetterNumber  string         `json:"letter_number"`
	EffectiveDate string         `json:"effective_date"`
	Area          string         `json:"area,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	Items         []RotationItem `json:"items"`
	CreatedAt     time.Time      `json:"created_at"`
}

// RotationItem ローテーション対象者1名分の行き先情報
type RotationItem struct {
	EmployeeID     string `json:"employee_id"`
	TargetPosition string `json:"target_position"`
	TargetUnit     string `json:"target_unit"`
}

// RotationBatchRequest バッチ作成・更新リクエスト
type RotationBatchRequest struct {
	Name          string         `json:"name" binding:"required"`
	LetterNumber  string         `json:"letter_number"`
	EffectiveDate string         `json:"effective_date"`
	Area          string         `json:"area"`
	Notes         string         `json:"notes"`
	Items         []RotationItem `json:"items"`
}

// FirestoreRotationBatch Firestore保存用の構造体
type FirestoreRotationBatch struct {
	Name          string         `firestore:"name"`
	LetterNumber  string         `firestore:"letter_number"`
	EffectiveDate string         `firestore:"effective_date"`
	Area          string         `firestore:"area"`
	Notes         string         `firestore:"notes"`
	Items         []RotationItem `firestore:"items"`
	CreatedAt     time.Time      `firestore:"created_at"`
}

// ToFirestoreRotationBatch RotationBatchをFirestore保存用に変換
func (rb *RotationBatch) ToFirestoreRotationBatch() *FirestoreRotationBatch {
	return &FirestoreRotationBatch{
		Name:          rb.Name,
		LetterNumber:  rb.LetterNumber,
		EffectiveDate: rb.EffectiveDate,
		Area:          rb.Area,
		Notes:         rb.Notes,
		Items:         rb.Items,
		CreatedAt:     rb.CreatedAt,
	}
}

// ToRotationBatch Firestoreのデータをドキュメント IDとともに復元する
func (frb *FirestoreRotationBatch) ToRotationBatch(id string) *RotationBatch {
	return &RotationBatch{
		ID:            id,
		Name:          frb.Name,
		LetterNumber:  frb.LetterNumber,
		EffectiveDate: frb.EffectiveDate,
		Area:          frb.Area,
		Notes:         frb.Notes,
		Items:         frb.Items,
		CreatedAt:     frb.CreatedAt,
	}
}
