package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/moffa90/go-si5351/field"
)

type catalogCommand struct{}

func (catalogCommand) String() string { return "catalog" }
func (catalogCommand) Usage() string  { return "catalog" }

func (catalogCommand) Main(args ...string) error {
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}

	tw := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tWIDTH\tCODE\tVALUE")
	for _, g := range field.Groups() {
		for _, c := range g.Codes {
			fmt.Fprintf(tw, "%s\t%d\t%s\t0b%0*b\n", g.Name, g.Width, c.Name, g.Width, c.Value)
		}
	}
	return tw.Flush()
}
