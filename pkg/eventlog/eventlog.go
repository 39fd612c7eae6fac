// Package eventlog appends tab-delimited, correlation-tagged lines to
// per-channel log files. Write failures never propagate to callers; they
// go to the process log only.
package eventlog

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	RequestLog = "reqLog.log"
	ErrorLog   = "errLog.log"
)

type Logger struct {
	dir string
}

func New(dir string) *Logger {
	return &Logger{dir: dir}
}

// Log appends one line to the named file under the log directory:
// date<TAB>time<TAB>uuid<TAB>entry. The directory is created on first use.
func (l *Logger) Log(entry, file string) {
	line := time.Now().Format("20060102\t15:04:05") + "\t" + uuid.NewString() + "\t" + entry + "\n"

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		log.Printf("eventlog: creating %s: %v", l.dir, err)
		return
	}

	f, err := os.OpenFile(filepath.Join(l.dir, file), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("eventlog: opening %s: %v", file, err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		log.Printf("eventlog: writing %s: %v", file, err)
	}
}
