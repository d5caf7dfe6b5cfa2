package logger

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type palette struct {
	reset, red, green, yellow, blue, purple, cyan, gray, bold string
}

var (
	ansi = palette{
		reset:  "\033[0m",
		red:    "\033[31m",
		green:  "\033[32m",
		yellow: "\033[33m",
		blue:   "\033[34m",
		purple: "\033[35m",
		cyan:   "\033[36m",
		gray:   "\033[37m",
		bold:   "\033[1m",
	}

	plain = palette{}

	// exactly three digits in the HTTP status range
	statusCodeRegex = regexp.MustCompile(`^[1-5]\d{2}$`)
)

// Init configures the global zerolog logger for the given environment.
// Output is coloured only when stdout is a terminal.
func Init(env string) {
	p := plain
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		p = ansi
	}

	log.Logger = New(consoleWriter(os.Stdout, p), env)

	switch env {
	case "development", "dev", "local":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// New builds a logger writing to w and tagged with env.
func New(w io.Writer, env string) zerolog.Logger {
	return zerolog.New(w).
		With().
		Timestamp().
		Str("env", env).
		Logger()
}

func consoleWriter(out io.Writer, p palette) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "02.01.2006 15:04:05",
		NoColor:    p == plain,
		FormatLevel: func(i interface{}) string {
			level := strings.ToUpper(fmt.Sprintf("%s", i))
			switch level {
			case "DEBUG":
				return fmt.Sprintf("%s●%s", p.gray, p.reset)
			case "INFO":
				return fmt.Sprintf("%s●%s", p.blue, p.reset)
			case "WARN":
				return fmt.Sprintf("%s●%s", p.yellow, p.reset)
			case "ERROR", "FATAL":
				return fmt.Sprintf("%s●%s", p.red, p.reset)
			default:
				return level
			}
		},
		FormatMessage: func(i interface{}) string {
			msg := fmt.Sprintf("%-35s", i)

			switch {
			case strings.Contains(msg, "Request completed"):
				return fmt.Sprintf("%s%s%s", p.gray, msg, p.reset)
			case strings.Contains(msg, "Request started"):
				return fmt.Sprintf("%s%s%s", p.bold, msg, p.reset)
			}

			return msg
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s%s%s=", p.cyan, i, p.reset)
		},
		FormatFieldValue: func(i interface{}) string {
			val := fmt.Sprintf("%s", i)

			switch val {
			case "GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS":
				return fmt.Sprintf("%s%s%s", p.purple, val, p.reset)
			}

			if statusCodeRegex.MatchString(val) {
				switch val[0] {
				case '2':
					return fmt.Sprintf("%s%s%s", p.green, val, p.reset)
				case '3':
					return fmt.Sprintf("%s%s%s", p.yellow, val, p.reset)
				case '4', '5':
					return fmt.Sprintf("%s%s%s", p.red, val, p.reset)
				}
			}

			return val
		},
	}
}
