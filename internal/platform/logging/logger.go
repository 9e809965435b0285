// Package logging は設定から zap のロガーを組み立てます。
package logging

import (
	"fmt"

	"github.com/ogurasousui/employee-directory/internal/platform/config"
	"go.uber.org/zap"
)

// New は設定に従ってロガーを生成します。verbose が真なら debug まで出力します。
func New(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: parse level: %w", err)
	}
	if verbose {
		level.SetLevel(zap.DebugLevel)
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	// 標準出力は CLI の表示に使うため、ログは標準エラーにだけ出します。
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}
