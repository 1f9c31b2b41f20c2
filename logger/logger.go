package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"reddys-kitchen/config"
)

// New builds the service logger. Development environments get a colored
// console encoder, everything else JSON.
func New(cfg *config.Config, service string) *zap.Logger {
	var zcfg zap.Config
	if cfg.Server.AppEnv == "development" {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.Logger.Encoding != "" && cfg.Server.AppEnv != "development" {
		zcfg.Encoding = cfg.Logger.Encoding
	}
	if level, err := zapcore.ParseLevel(cfg.Logger.Level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	zcfg.DisableCaller = cfg.Logger.DisableCaller
	zcfg.DisableStacktrace = cfg.Logger.DisableStacktrace

	log, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log.With(zap.String("service", service))
}
