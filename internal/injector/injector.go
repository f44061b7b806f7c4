//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/app"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/config"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/observability/log"
)

func InitializeApp(cfg *config.Config) *app.App {
	wire.Build(ProvideLogger, wire.Bind(new(log.Log), new(*log.Logger)), app.New)
	return nil
}
