// Package logger arma el logger estructurado compartido por los binarios de
// la API y del seed. En development escribe consola legible; en cualquier otro
// entorno escribe JSON por línea, con el nombre del servicio como campo fijo.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env      string // development -> consola legible; resto -> JSON
	Level    string // trace, debug, info, warn, error
	Servicio string // se estampa como campo "servicio" en cada línea
}

// Logger envuelve zerolog para inyectarlo como dependencia concreta.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según la configuración. Un nivel no reconocido cae
// en info en lugar de fallar: el logging nunca impide arrancar el proceso.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if cfg.Servicio != "" {
		ctx = ctx.Str("servicio", cfg.Servicio)
	}
	zl := ctx.Logger()

	// Las librerías que usan el logger global de zerolog escriben aquí también.
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos adicionales.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger interno para quien necesite la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
