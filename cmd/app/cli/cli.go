package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"exusiai.dev/demoapi/internal/app"
	"exusiai.dev/demoapi/internal/app/appcontext"
)

func Start(module fx.Option) {
	if err := app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to start app")
	}
}

// DepsFn defers building the fx graph until a command actually runs, so that
// `--help` and flag errors never touch configuration or logging.
func DepsFn[T any]() func() T {
	return func() T {
		var deps T
		Start(fx.Populate(&deps))
		return deps
	}
}
