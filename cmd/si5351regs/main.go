// Si5351regs prints the Si5351 field catalog and converts between field
// assignments and register map files.
//
//	si5351regs catalog
//	si5351regs encode [-q] [-v] [-f SCRIPT] [-xtal-cl NAME] [-clkin-div NAME] [ASSIGN]...
//	si5351regs decode FILE
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type command interface {
	String() string
	Usage() string
	Main(args ...string) error
}

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	// isTerminal reports whether stdout gets the aligned table layout.
	isTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd())
	}
)

var commands = []command{
	catalogCommand{},
	encodeCommand{},
	decodeCommand{},
}

func main() {
	if err := run(os.Args[1:]...); err != nil {
		fmt.Fprintln(stderr, "si5351regs:", err)
		os.Exit(1)
	}
}

func run(args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command\n%s", usage())
	}
	for _, c := range commands {
		if c.String() == args[0] {
			return c.Main(args[1:]...)
		}
	}
	switch args[0] {
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage())
		return nil
	}
	return fmt.Errorf("%s: unknown command\n%s", args[0], usage())
}

func usage() string {
	var b strings.Builder
	b.WriteString("usage:\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "\tsi5351regs %s\n", c.Usage())
	}
	return b.String()
}
