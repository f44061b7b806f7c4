package injector

import (
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/config"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/observability/log"
)

// ProvideLogger builds the application logger from configuration.
func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.NewWithOptions(log.Options{
		Level:    cfg.LogLevel(),
		Encoding: cfg.Log.Encoding,
		Sampling: cfg.Log.Sampling,
	})
}
