package service

import "BranchMap-App/internal/domain/model"

// DurationRange プロバイダの所要時間（秒）から表示用のレンジを作る。
// 下限はプロバイダの値そのまま、上限は倍率を掛けた値。
// 倍率が1未満の場合は1に切り上げ、常に Low <= High を保証する。
func DurationRange(baseSeconds, multiplier float64) model.DurationRange {
	if multiplier < 1 {
		multiplier = 1
	}
	return model.DurationRange{
		LowSeconds:  baseSeconds,
		HighSeconds: baseSeconds * multiplier,
	}
}
