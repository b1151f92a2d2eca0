package testentry

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"exusiai.dev/demoapi/internal/app"
	"exusiai.dev/demoapi/internal/app/appcontext"
)

func Populate(t zerolog.TestingLog, targets ...any) {
	opts := app.Options(appcontext.Declare(appcontext.EnvTest))
	// for testing, logger is too annoying. therefore, we use a NopLogger here
	opts = append(opts, fx.NopLogger)
	opts = append(opts, fx.Populate(targets...))
	opts = append(opts, fx.Invoke(func() {
		log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
	}))

	fxApp := fx.New(
		opts...,
	)

	if err := fxApp.Start(context.Background()); err != nil {
		panic(err)
	}
}
