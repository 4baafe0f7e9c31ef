package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// LogLevel orders the severities; messages below the configured level are
// dropped.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	ERROR
)

// Logger writes leveled, colored lines to one output. Safe for concurrent
// use.
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	targets map[LogLevel]*log.Logger
}

// GlobalLogger is usable immediately at INFO on stdout; InitLogger replaces
// it once with the configured output and level.
var GlobalLogger = newLogger(os.Stdout, INFO)

var once sync.Once

// InitLogger configures the global logger. Later calls are no-ops so
// package init order cannot reconfigure it.
func InitLogger(output io.Writer, level string) {
	once.Do(func() {
		if output == nil {
			output = os.Stdout
		}
		GlobalLogger = newLogger(output, parseLevel(level))
	})
}

func parseLevel(level string) LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

func newLogger(output io.Writer, level LogLevel) *Logger {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		level: level,
		targets: map[LogLevel]*log.Logger{
			DEBUG: log.New(output, color.BlueString("DEBUG: "), flags),
			INFO:  log.New(output, color.GreenString("INFO: "), flags),
			ERROR: log.New(output, color.RedString("ERROR: "), flags),
		},
	}
}

// write emits one line at the given level. Calldepth 3 makes Lshortfile
// report the caller of the exported method, not this file.
func (l *Logger) write(level LogLevel, line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	l.targets[level].Output(3, line)
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.write(DEBUG, fmt.Sprintf(format, v...))
}

func (l *Logger) Printf(format string, v ...interface{}) {
	l.write(INFO, fmt.Sprintf(format, v...))
}

func (l *Logger) Println(v ...interface{}) {
	l.write(INFO, fmt.Sprintln(v...))
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.write(ERROR, fmt.Sprintf(format, v...))
}
