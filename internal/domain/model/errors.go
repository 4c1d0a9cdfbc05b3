package model

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit 指定されたユニット名が現在のスナップショットに存在しない
var ErrUnknownUnit = errors.New("unknown unit")

// RoutingFailureReason 経路取得が失敗した理由の分類
type RoutingFailureReason string

const (
	// RoutingReasonTimeout タイムアウトを含む通信エラー
	RoutingReasonTimeout RoutingFailureReason = "timeout"
	// RoutingReasonTransport 通信そのものの失敗（接続不可など）
	RoutingReasonTransport RoutingFailureReason = "transport"
	// RoutingReasonStatus HTTPステータスが200以外
	RoutingReasonStatus RoutingFailureReason = "status"
	// RoutingReasonProvider プロバイダがペイロード内でエラーコードを返した
	RoutingReasonProvider RoutingFailureReason = "provider"
	// RoutingReasonMalformed レスポンスの形式が不正
	RoutingReasonMalformed RoutingFailureReason = "malformed"
)

// RoutingUnavailableError 外部経路プロバイダ呼び出しの失敗。
// リトライはせず、プロバイダのメッセージがあればそのまま保持して呼び出し元へ返す。
// タイムアウトも非OKレスポンスも同じ型として扱う。
type RoutingUnavailableError struct {
	Reason  RoutingFailureReason
	Message string
	Err     error
}

func (e *RoutingUnavailableError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("routing unavailable (%s): %s", e.Reason, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("routing unavailable (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("routing unavailable (%s)", e.Reason)
}

func (e *RoutingUnavailableError) Unwrap() error {
	return e.Err
}

// IsRoutingUnavailable エラーがRoutingUnavailableErrorかどうか判定する
func IsRoutingUnavailable(err error) bool {
	var target *RoutingUnavailableError
	return errors.As(err, &target)
}
