package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	WarningLog = log.New(io.Discard, "", 0)
	InfoLog    = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
	DebugLog   = log.New(io.Discard, "", 0)
)

var debugEnabled = os.Getenv("DEBUG") == "true" || os.Getenv("DEBUG") == "1"

var logFileName = filepath.Join(os.TempDir(), "journal.log")

var globalLogFile *os.File

const logFlags = log.Ldate | log.Ltime | log.Lshortfile

// Initialize should be called once at the beginning of the program to set up logging.
// defer Close() after calling this function. Log lines go to a file in the os temp
// directory so stdout stays reserved for command output.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Fallback to stderr
		setOutput(os.Stderr)
		fmt.Fprintf(os.Stderr, "Warning: using stderr for logging: %v\n", err)
		return
	}

	setOutput(f)
	globalLogFile = f
}

func setOutput(w io.Writer) {
	InfoLog = log.New(w, "INFO:", logFlags)
	WarningLog = log.New(w, "WARNING:", logFlags)
	ErrorLog = log.New(w, "ERROR:", logFlags)
	if debugEnabled {
		DebugLog = log.New(w, "DEBUG:", logFlags)
	} else {
		DebugLog = log.New(io.Discard, "", 0)
	}
}

// Close releases the log file. Safe to call when Initialize fell back to stderr.
func Close() {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	setOutput(io.Discard)
}

// FileName returns the path log lines are written to.
func FileName() string {
	return logFileName
}
