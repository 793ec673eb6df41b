package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// ANSI colors, disabled when stdout is not a terminal.
const (
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

func colorize(color, s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	return color + s + colorReset
}

func logLine(levelColor, level, tag, msg string) {
	ts := time.Now().Format("15:04:05")
	fmt.Printf("%s %s %s %s\n",
		colorize(colorGray, ts),
		colorize(levelColor, fmt.Sprintf("%-7s", level)),
		colorize(colorBold, "["+tag+"]"),
		msg)
}

// Info logs a routine message under a component tag.
func Info(tag, msg string) {
	logLine(colorCyan, "INFO", tag, msg)
}

// Success logs a completed operation.
func Success(tag, msg string) {
	logLine(colorGreen, "OK", tag, msg)
}

// Warn logs a recoverable problem.
func Warn(tag, msg string) {
	logLine(colorYellow, "WARN", tag, msg)
}

// Error logs a failure.
func Error(tag, msg string) {
	logLine(colorRed, "ERROR", tag, msg)
}

// Banner prints the startup banner with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Println(colorize(colorCyan, "============================================"))
	fmt.Println(colorize(colorBold, "  Wealth Projector "+version))
	fmt.Println(colorize(colorCyan, "============================================"))
}

// Server announces the listen address.
func Server(addr string) {
	Success("Server", fmt.Sprintf("Listening on http://%s", addr))
}

// Section prints a titled divider for grouped stats output.
func Section(title string) {
	fmt.Println(colorize(colorCyan, "-- "+title+" --"))
}

// Stats prints a single aligned key/value stat line.
func Stats(key string, value interface{}) {
	fmt.Printf("   %-14s %v\n", key, value)
}
