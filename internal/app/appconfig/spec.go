package appconfig

import (
	"exusiai.dev/demoapi/internal/app/appcontext"
	"exusiai.dev/demoapi/internal/pkg/codec"
)

type ConfigSpec struct {
	// LogJson is whether to write JSON logs (instead of pretty-print logs) to stderr for the ease of log collection.
	// Stdout is never used for logs since commands write their documents there.
	LogJson bool `split_words:"true" default:"false"`

	// DevMode to indicate development mode. When true, logs are written at trace level.
	DevMode bool `split_words:"true"`

	// LogDir is the directory the rotating log file app.log is written into.
	LogDir string `required:"true" split_words:"true" default:"logs"`

	// LogMaxSizeMB is the size in megabytes at which app.log gets rotated.
	LogMaxSizeMB int `split_words:"true" default:"100"`

	// LogMaxBackups is the number of rotated log files to retain.
	LogMaxBackups int `split_words:"true" default:"3"`

	// LogMaxAgeDays is the number of days to retain rotated log files.
	LogMaxAgeDays int `split_words:"true" default:"28"`

	// DefaultFormat is the document format used when neither a flag nor a file extension names one.
	// Valid values are: json, msgpack.
	DefaultFormat codec.Format `required:"true" split_words:"true" default:"json"`

	// PrettyJSON is whether JSON documents are written indented.
	PrettyJSON bool `split_words:"true" default:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
