package main

import (
	"fmt"
	"io"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// printer writes the CLI's human-facing output. Colors are dropped when
// the output is not a terminal.
type printer struct {
	w     io.Writer
	color bool
}

func (p *printer) paint(color, prefix, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if p.color {
		fmt.Fprintf(p.w, "%s%s%s%s\n", color, prefix, msg, colorReset)
		return
	}
	fmt.Fprintf(p.w, "%s%s\n", prefix, msg)
}

func (p *printer) Info(format string, a ...any) {
	p.paint(colorBlue, "ℹ ", format, a...)
}

func (p *printer) Success(format string, a ...any) {
	p.paint(colorGreen, "✓ ", format, a...)
}

func (p *printer) Warning(format string, a ...any) {
	p.paint(colorYellow, "⚠ ", format, a...)
}

func (p *printer) Error(format string, a ...any) {
	p.paint(colorRed, "✗ ", format, a...)
}

func (p *printer) Header(title string) {
	fmt.Fprintln(p.w)
	p.paint(colorYellow, "", "=== %s ===", title)
}

func (p *printer) Line(format string, a ...any) {
	fmt.Fprintf(p.w, format+"\n", a...)
}
