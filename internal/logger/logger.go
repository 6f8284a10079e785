package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"deskpet/config"
)

// New 按配置创建 zap logger：开发模式输出带颜色的控制台日志，否则输出 JSON
func New(cfg config.LogConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	// 级别写错了就退回 info
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	return zapConfig.Build(zap.AddCaller())
}
