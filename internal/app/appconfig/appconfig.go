package appconfig

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"exusiai.dev/demoapi/internal/app/appcontext"
)

const envPrefix = "demoapi"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	// the logger is not configured yet, so only a present but unreadable .env is worth reporting
	err := godotenv.Load(".env")
	if err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err = envconfig.Process(envPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(envPrefix, &config)
		return nil, fmt.Errorf("failed to parse configuration: %w. More info on how to configure demoapi is located at https://pkg.go.dev/exusiai.dev/demoapi/internal/app/appconfig#ConfigSpec", err)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
