package logging

import (
	"fmt"
	"os"
	"sync"
)

// Full-screen programs own the terminal while the alt screen is up, so
// their diagnostics go to a side file instead of stderr.

var (
	debugMu   sync.Mutex
	debugFile *os.File
	debugLog  *Logger
)

// DebugToFile routes subsequent Debugf calls to the named file, appending
// if it already exists.
func DebugToFile(path string) error {
	debugMu.Lock()
	defer debugMu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	debugFile = f
	debugLog = New(Config{Level: LevelDebug, Output: f})
	return nil
}

// Debugf writes one formatted line to the debug file. A no-op until
// DebugToFile has been called.
func Debugf(format string, args ...any) {
	debugMu.Lock()
	defer debugMu.Unlock()

	if debugLog == nil {
		return
	}
	debugLog.Debug(fmt.Sprintf(format, args...))
}

// CloseDebugFile stops file logging and closes the file.
func CloseDebugFile() {
	debugMu.Lock()
	defer debugMu.Unlock()

	if debugFile != nil {
		debugFile.Close()
		debugFile = nil
		debugLog = nil
	}
}
