package main

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// stdLogger adapts the standard log package to si5351.Logger.
type stdLogger struct {
	l *log.Logger
}

func newStdLogger(w io.Writer) *stdLogger {
	return &stdLogger{l: log.New(w, "si5351regs: ", 0)}
}

func (s *stdLogger) Debug(msg string, kv ...interface{}) { s.print("DEBUG", msg, kv) }
func (s *stdLogger) Info(msg string, kv ...interface{})  { s.print("INFO", msg, kv) }
func (s *stdLogger) Error(msg string, kv ...interface{}) { s.print("ERROR", msg, kv) }

func (s *stdLogger) print(level, msg string, kv []interface{}) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", level, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	if len(kv)%2 == 1 {
		fmt.Fprintf(&b, " %v", kv[len(kv)-1])
	}
	s.l.Print(b.String())
}
