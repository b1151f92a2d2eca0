package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"

	"exusiai.dev/demoapi/internal/app/appconfig"
	"exusiai.dev/demoapi/internal/app/appcontext"
)

func Configure(conf *appconfig.Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var level zerolog.Level
	if conf.DevMode {
		level = zerolog.TraceLevel
	} else {
		level = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers(conf)...)).
		With().
		Timestamp().
		Logger().
		Level(level)
}

func writers(conf *appconfig.Config) []io.Writer {
	var console io.Writer
	if conf.LogJson {
		console = os.Stderr
	} else {
		console = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339Nano,
		}
	}

	// tests replace the output with a zerolog.TestWriter and must not leave log files behind
	if conf.AppContext.Env == appcontext.EnvTest {
		return []io.Writer{console}
	}

	return []io.Writer{
		&lumberjack.Logger{
			Filename:   filepath.Join(conf.LogDir, "app.log"),
			MaxSize:    conf.LogMaxSizeMB,
			MaxBackups: conf.LogMaxBackups,
			MaxAge:     conf.LogMaxAgeDays,
		},
		console,
	}
}
