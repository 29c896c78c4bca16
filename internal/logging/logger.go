package logging

import (
	"log"

	"go.uber.org/zap"
)

// NewLogger cria o logger da aplicação. Em produção usa o encoder JSON
// do zap; em desenvolvimento, o encoder legível de console.
func NewLogger(production bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	return logger
}
