package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"

	"github.com/moffa90/go-si5351/regfile"
	"github.com/moffa90/go-si5351/regmap"
	"github.com/moffa90/go-si5351/si5351"
)

type encodeCommand struct{}

func (encodeCommand) String() string { return "encode" }

func (encodeCommand) Usage() string {
	return "encode [-q] [-v] [-f SCRIPT] [-xtal-cl NAME] [-clkin-div NAME] [ASSIGN]..."
}

// Main packs the assignments into a register image. Script assignments
// come first, then -xtal-cl and -clkin-div, then the command line, so later
// ones win. With -q the configuration is only checked.
func (encodeCommand) Main(args ...string) error {
	flag, args := flags.New(args, "-q", "-v")
	parm, args := parms.New(args, "-f", "-xtal-cl", "-clkin-div")

	var assigns []string
	if fn := parm.ByName["-f"]; len(fn) > 0 {
		f, err := os.Open(fn)
		if err != nil {
			return err
		}
		script, err := readScript(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", fn, err)
		}
		assigns = append(assigns, script...)
	}
	for _, name := range []string{"-xtal-cl", "-clkin-div"} {
		if s := parm.ByName[name]; len(s) > 0 {
			assigns = append(assigns, name[1:]+"="+s)
		}
	}
	assigns = append(assigns, args...)

	opts, err := parseAssignments(assigns)
	if err != nil {
		return err
	}
	if flag.ByName["-v"] {
		opts = append(opts, si5351.WithLogger(newStdLogger(stderr)))
	}

	img, err := si5351.New(opts...).Image()
	if err != nil {
		return err
	}
	if flag.ByName["-q"] {
		return nil
	}
	if isTerminal() {
		return writeTable(img)
	}
	return regfile.Write(stdout, img)
}

func writeTable(img *regmap.Image) error {
	tw := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ADDR\tHEX\tBINARY")
	for _, r := range img.Registers() {
		fmt.Fprintf(tw, "%d\t0x%02X\t%08b\n", r.Addr, r.Value, r.Value)
	}
	return tw.Flush()
}
