package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the logger options read from the service config file.
type Config struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

var global *zap.SugaredLogger = zap.NewNop().Sugar()

// InitGlobalLogger replaces the package-level logger. Call once at startup,
// before any other package logs.
func InitGlobalLogger(cfg *Config) {
	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	if level, err := zapcore.ParseLevel(cfg.Level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return
	}

	global = l.Sugar()
}

func Debug(msg string, keyValues ...any) {
	global.Debugw(msg, keyValues...)
}

func Info(msg string, keyValues ...any) {
	global.Infow(msg, keyValues...)
}

func Warn(msg string, keyValues ...any) {
	global.Warnw(msg, keyValues...)
}

func Error(msg string, keyValues ...any) {
	global.Errorw(msg, keyValues...)
}
