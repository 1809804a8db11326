package main

import (
	"fmt"

	"github.com/alexflint/go-arg"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type serverArgs struct {
	Port uint `arg:"--port,env:SCHEMAD_PORT" default:"2425"`
	Dev  bool `arg:"--dev,env:SCHEMAD_DEV" default:"true"`
}

func setupLogger(dev bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if dev {
		logger, err = zap.NewDevelopment()
	} else {
		config := zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		logger, err = config.Build(
			zap.AddCaller(),
			zap.AddStacktrace(zap.ErrorLevel),
		)
	}
	if err != nil {
		panic(fmt.Sprintf("failed to construct logger: %v", err))
	}
	_ = zap.ReplaceGlobals(logger)
	return logger
}

func main() {
	var flags serverArgs
	arg.MustParse(&flags)
	logger := setupLogger(flags.Dev)
	defer func() { _ = logger.Sync() }()
	if !flags.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	s := newServer()
	logger.Info("starting schemad", zap.Uint("port", flags.Port))
	if err := s.Run(fmt.Sprintf(":%d", flags.Port)); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
