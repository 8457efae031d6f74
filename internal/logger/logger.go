package logger

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rollbar/rollbar-go"
)

// Logger пишет обычные строки лога и после EnableRollbar дублирует
// предупреждения и ошибки в Rollbar.
type Logger struct {
	std     *log.Logger
	rollbar bool
}

func New(out io.Writer) *Logger {
	return &Logger{std: log.New(out, "", log.LstdFlags)}
}

func Default() *Logger {
	return New(os.Stderr)
}

func Discard() *Logger {
	return New(io.Discard)
}

func (l *Logger) EnableRollbar(token, env, version string) {
	if token == "" {
		return
	}
	rollbar.SetToken(token)
	rollbar.SetEnvironment(env)
	rollbar.SetCodeVersion(version)
	rollbar.SetEnabled(true)
	l.rollbar = true
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.std.Printf("INFO "+format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.std.Print("WARN " + msg)
	if l.rollbar {
		rollbar.Warning(msg)
	}
}

func (l *Logger) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.std.Print("ERROR " + msg)
	if l.rollbar {
		rollbar.Error(msg)
	}
}

func (l *Logger) Fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if l.rollbar {
		rollbar.Critical(msg)
		rollbar.Wait()
	}
	l.std.Fatal("FATAL " + msg)
}

// Close отправляет накопленное в Rollbar
func (l *Logger) Close() {
	if l.rollbar {
		rollbar.Close()
	}
}
