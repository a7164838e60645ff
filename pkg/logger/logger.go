package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config opciones para el logger.
type Config struct {
	Env       string // development -> consola legible; production -> JSON
	Level     string // trace, debug, info, warn, error
	File      string // opcional: también escribe JSON en un archivo rotado
	MaxSizeMB int    // tamaño máximo antes de rotar (MB)
}

// Logger wrapper sobre zerolog para inyección y consistencia.
type Logger struct {
	zl zerolog.Logger
}

// New crea un logger estructurado. En development usa salida legible; en production JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	if cfg.File != "" {
		size := cfg.MaxSizeMB
		if size <= 0 {
			size = 10
		}
		w = zerolog.MultiLevelWriter(w, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    size,
			MaxBackups: 3,
			Compress:   true,
		})
	}

	level := parseLevel(cfg.Level)
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// Redirigir el logger global de zerolog para librerías que lo usen
	log.Logger = zl

	return &Logger{zl: zl}
}

// Nop devuelve un logger que descarta todo (tests y valor por defecto del motor).
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// FromZerolog envuelve un zerolog.Logger ya construido.
func FromZerolog(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug, Info, Warn, Error delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
