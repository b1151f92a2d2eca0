package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"gopkg.in/natefinch/lumberjack.v2"

	"exusiai.dev/demoapi/internal/app/appconfig"
	"exusiai.dev/demoapi/internal/app/appcontext"
)

func TestWritersPerEnv(t *testing.T) {
	conf := &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			LogDir:       t.TempDir(),
			LogMaxSizeMB: 1,
		},
		AppContext: appcontext.Declare(appcontext.EnvCLI),
	}

	ws := writers(conf)
	if assert.Len(t, ws, 2) {
		rotating, ok := ws[0].(*lumberjack.Logger)
		assert.True(t, ok, "expect the first writer to be the rotating log file")
		assert.Equal(t, 1, rotating.MaxSize)
		_, ok = ws[1].(zerolog.ConsoleWriter)
		assert.True(t, ok, "expect a console writer when JSON logs are disabled")
	}

	conf.AppContext = appcontext.Declare(appcontext.EnvTest)
	assert.Len(t, writers(conf), 1)
}

func TestConfigureLevel(t *testing.T) {
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })

	conf := &appconfig.Config{AppContext: appcontext.Declare(appcontext.EnvTest)}
	Configure(conf)
	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())

	conf.DevMode = true
	Configure(conf)
	assert.Equal(t, zerolog.TraceLevel, log.Logger.GetLevel())
}
