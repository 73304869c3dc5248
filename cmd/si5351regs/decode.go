package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/moffa90/go-si5351/field"
	"github.com/moffa90/go-si5351/regfile"
	"github.com/moffa90/go-si5351/regmap"
	"github.com/moffa90/go-si5351/si5351"
)

type decodeCommand struct{}

func (decodeCommand) String() string { return "decode" }
func (decodeCommand) Usage() string  { return "decode FILE" }

// Main prints the fields of a register map file. Off a terminal the output
// is an encode script that reproduces the file.
func (decodeCommand) Main(args ...string) error {
	switch len(args) {
	case 0:
		return fmt.Errorf("FILE: missing")
	case 1:
	default:
		return fmt.Errorf("%v: unexpected", args[1:])
	}

	img, err := regfile.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	cfg, err := si5351.Decode(img)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if isTerminal() {
		return writeFieldTable(cfg)
	}
	writeScript(stdout, cfg)
	return nil
}

func writeScript(w io.Writer, cfg *si5351.Config) {
	fmt.Fprintf(w, "xtal-cl=%s\n", cfg.XtalLoad)
	fmt.Fprintf(w, "clkin-div=%s\n", cfg.ClkinDiv)
	fmt.Fprintf(w, "fanout=%s\n", formatFanout(cfg.Fanout))
	for _, p := range []field.PLL{field.PLLA, field.PLLB} {
		name := "pll" + strings.ToLower(p.String())
		fmt.Fprintf(w, "%s-src=%s\n", name, cfg.PLLSource[p])
		if d := cfg.PLLDivider[p]; !d.IsZero() {
			fmt.Fprintf(w, "%s-div=%s\n", name, formatDivider(d))
		}
	}

	for clk, o := range cfg.Outputs {
		fmt.Fprintf(w, "clk%d.oeb=%s clk%d.pdn=%s clk%d.src=%s clk%d.pll=%s clk%d.drive=%s clk%d.inv=%s clk%d.dis=%s",
			clk, o.Enable, clk, o.Power, clk, o.ClockSource, clk, o.Source,
			clk, o.Drive, clk, o.Inversion, clk, o.DisableState)
		if !o.Divider.IsZero() {
			fmt.Fprintf(w, " clk%d.div=%s", clk, formatDivider(o.Divider))
		}
		fmt.Fprintf(w, " clk%d.rdiv=%s", clk, o.RDiv)
		if clk < regmap.NumFractionalMultiSynths {
			fmt.Fprintf(w, " clk%d.divby4=%s clk%d.phase=%d", clk, o.DivBy4, clk, o.Phase)
		}
		fmt.Fprintln(w)
	}
}

func writeFieldTable(cfg *si5351.Config) error {
	tw := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "XTAL_CL\t%s\n", cfg.XtalLoad)
	fmt.Fprintf(tw, "CLKIN_DIV\t%s\n", cfg.ClkinDiv)
	fmt.Fprintf(tw, "FANOUT_EN\t%s\n", formatFanout(cfg.Fanout))
	for _, p := range []field.PLL{field.PLLA, field.PLLB} {
		d := "-"
		if !cfg.PLLDivider[p].IsZero() {
			d = formatDivider(cfg.PLLDivider[p])
		}
		fmt.Fprintf(tw, "PLL%s\t%s\t%s\n", p, cfg.PLLSource[p], d)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "CLK\tOEB\tPDN\tSRC\tMS_SRC\tIDRV\tINV\tDIS\tDIV\tR_DIV\tDIVBY4\tPHOFF")
	for clk, o := range cfg.Outputs {
		d := "-"
		if !o.Divider.IsZero() {
			d = formatDivider(o.Divider)
		}
		divBy4, phase := "-", "-"
		if clk < regmap.NumFractionalMultiSynths {
			divBy4, phase = o.DivBy4.String(), o.Phase.String()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			clk, o.Enable, o.Power, o.ClockSource, o.Source, o.Drive,
			o.Inversion, o.DisableState, d, o.RDiv, divBy4, phase)
	}
	return tw.Flush()
}
