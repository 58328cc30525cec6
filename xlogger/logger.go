package xlogger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level      string `yaml:"level" json:"level" toml:"level" default:"info"`
	LogType    string `yaml:"log_type" json:"log_type" toml:"log_type" default:"text"`
	AddSource  bool   `yaml:"add_source" json:"add_source" toml:"add_source"`
	SourcePath string `yaml:"source_path" json:"source_path" toml:"source_path"`

	// Output defaults to os.Stderr so that command output on stdout stays clean.
	Output io.Writer `yaml:"-" json:"-" toml:"-"`
}

func New(conf Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   conf.AddSource,
		Level:       getLogLevel(conf.Level),
		ReplaceAttr: replaceAttr(conf),
	}

	output := conf.Output
	if output == nil {
		output = os.Stderr
	}

	return slog.New(getHandler(conf.LogType, output, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Err wraps an error into an "error" attribute.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

func getLogLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getHandler(logType string, w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(logType) {
	case "json":
		return slog.NewJSONHandler(w, opts)

	default:
		return slog.NewTextHandler(w, opts)
	}
}

func replaceAttr(conf Config) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		if attr.Key != slog.SourceKey {
			return attr
		}

		source, ok := attr.Value.Any().(*slog.Source)
		if !ok || source == nil {
			return attr
		}

		file := source.File
		if len(conf.SourcePath) > 0 {
			if strings.HasPrefix(file, conf.SourcePath) {
				file = strings.TrimPrefix(file, conf.SourcePath)
			} else if index := strings.Index(file, conf.SourcePath); index > 0 {
				file = file[index+len(conf.SourcePath):]
			}
		}

		return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", file, source.Line))
	}
}
