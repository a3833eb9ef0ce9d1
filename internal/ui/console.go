package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI Color Codes
const (
	Reset   = "\033[0m"
	Cyan    = "\033[36m"
	Magenta = "\033[35m"
	Yellow  = "\033[33m"
	Red     = "\033[31m"
	Green   = "\033[32m"
)

// Console prints tagged status lines. Colors are only emitted on a terminal.
type Console struct {
	w     io.Writer
	color bool
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w, color: isColorTerminal(w)}
}

func isColorTerminal(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (c *Console) line(color, tag, msg string) {
	if c.color {
		fmt.Fprintf(c.w, "%s[%s] %s%s\n", color, tag, Reset, msg)
		return
	}
	fmt.Fprintf(c.w, "[%s] %s\n", tag, msg)
}

func (c *Console) Info(msg string) {
	c.line(Cyan, "INFO", msg)
}

func (c *Console) Success(msg string) {
	c.line(Green, "SUCCESS", msg)
}

func (c *Console) Warning(msg string) {
	c.line(Yellow, "WARNING", msg)
}

func (c *Console) Error(msg string) {
	c.line(Red, "ERROR", msg)
}

func (c *Console) Header(title string) {
	if c.color {
		fmt.Fprintf(c.w, "\n%s=== %s ===%s\n", Magenta, title, Reset)
		return
	}
	fmt.Fprintf(c.w, "\n=== %s ===\n", title)
}
