package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/moffa90/go-si5351/field"
	"github.com/moffa90/go-si5351/regmap"
	"github.com/moffa90/go-si5351/si5351"
)

// readScript returns the assignments of a script, one or more per line.
// Lines are split like a shell would, so "#" starts a comment.
func readScript(r io.Reader) ([]string, error) {
	var assigns []string
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		words, err := shlex.Split(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		assigns = append(assigns, words...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return assigns, nil
}

// parseAssignments turns KEY=VALUE words into Config options. Keys of the
// form clkN.KEY configure output N; every other key is global. All
// assignments to one output are collected into a single WithOutput.
func parseAssignments(assigns []string) ([]si5351.Option, error) {
	var opts []si5351.Option
	var outputs [regmap.NumClocks][]si5351.OutputOption
	var touched [regmap.NumClocks]bool

	for _, a := range assigns {
		key, value, ok := strings.Cut(a, "=")
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("%s: expected KEY=VALUE", a)
		}
		key = strings.ToLower(key)

		if clk, k, ok := clockKey(key); ok {
			if clk < 0 || clk >= regmap.NumClocks {
				return nil, fmt.Errorf("%s: %w: %d", a, regmap.ErrClockIndex, clk)
			}
			opt, err := outputOption(k, value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", a, err)
			}
			outputs[clk] = append(outputs[clk], opt)
			touched[clk] = true
			continue
		}

		opt, err := globalOption(key, value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a, err)
		}
		opts = append(opts, opt)
	}

	for clk := range outputs {
		if touched[clk] {
			opts = append(opts, si5351.WithOutput(clk, outputs[clk]...))
		}
	}
	return opts, nil
}

// clockKey splits "clk3.drive" into 3 and "drive".
func clockKey(key string) (int, string, bool) {
	if !strings.HasPrefix(key, "clk") {
		return 0, "", false
	}
	n, k, ok := strings.Cut(strings.TrimPrefix(key, "clk"), ".")
	if !ok {
		return 0, "", false
	}
	clk, err := strconv.Atoi(n)
	if err != nil {
		return 0, "", false
	}
	return clk, k, true
}

func globalOption(key, value string) (si5351.Option, error) {
	switch key {
	case "xtal-cl":
		v, err := field.Lookup(field.GroupXtalLoad, value)
		if err != nil {
			return nil, err
		}
		return si5351.WithCrystalLoad(field.XtalLoad(v)), nil
	case "clkin-div":
		v, err := field.Lookup(field.GroupClkinDiv, value)
		if err != nil {
			return nil, err
		}
		return si5351.WithClkinDiv(field.ClkinDiv(v)), nil
	case "plla-src", "pllb-src":
		v, err := field.Lookup(field.GroupPLLSource, value)
		if err != nil {
			return nil, err
		}
		return si5351.WithPLLSource(pllOf(key), field.PLLSource(v)), nil
	case "plla-div", "pllb-div":
		d, err := parseDivider(value)
		if err != nil {
			return nil, err
		}
		return si5351.WithPLLDivider(pllOf(key), d), nil
	case "fanout":
		f, err := parseFanout(value)
		if err != nil {
			return nil, err
		}
		return si5351.WithFanout(f), nil
	}
	return nil, fmt.Errorf("unknown key %q", key)
}

func pllOf(key string) field.PLL {
	if strings.HasPrefix(key, "pllb") {
		return field.PLLB
	}
	return field.PLLA
}

func outputOption(key, value string) (si5351.OutputOption, error) {
	if key == "div" {
		d, err := parseDivider(value)
		if err != nil {
			return nil, err
		}
		return si5351.Divider(d), nil
	}
	if key == "phase" {
		p, err := parsePhase(value)
		if err != nil {
			return nil, err
		}
		return si5351.Phase(p), nil
	}

	group, ok := outputGroups[key]
	if !ok {
		return nil, fmt.Errorf("unknown key %q", key)
	}
	v, err := field.Lookup(group, value)
	if err != nil {
		return nil, err
	}

	switch key {
	case "drive":
		return si5351.Drive(field.DriveCurrent(v)), nil
	case "src":
		return si5351.Source(field.ClockSource(v)), nil
	case "pll":
		return si5351.FromPLL(field.MSSource(v).PLL()), nil
	case "inv":
		return func(o *si5351.Output) { o.Inversion = field.Inversion(v) }, nil
	case "dis":
		return si5351.DisabledState(field.DisableState(v)), nil
	case "rdiv":
		return si5351.Divide(field.RDiv(v)), nil
	case "divby4":
		if field.MSDivBy4(v) == field.MSDivBy4Enable {
			return si5351.DivideBy4(), nil
		}
		return func(o *si5351.Output) { o.DivBy4 = field.MSDivBy4(v) }, nil
	case "oeb":
		return func(o *si5351.Output) { o.Enable = field.OutputEnable(v) }, nil
	default: // pdn
		return func(o *si5351.Output) { o.Power = field.PowerDown(v) }, nil
	}
}

var outputGroups = map[string]string{
	"drive":  field.GroupDriveCurrent,
	"src":    field.GroupClockSource,
	"pll":    field.GroupMSSource,
	"inv":    field.GroupInversion,
	"dis":    field.GroupDisableState,
	"rdiv":   field.GroupRDiv,
	"divby4": field.GroupMSDivBy4,
	"oeb":    field.GroupOutputEnable,
	"pdn":    field.GroupPowerDown,
}

// parseDivider accepts "A" and "A+B/C".
func parseDivider(s string) (regmap.Divider, error) {
	a, frac, hasFrac := strings.Cut(s, "+")
	ia, err := strconv.ParseUint(a, 10, 32)
	if err != nil {
		return regmap.Divider{}, fmt.Errorf("invalid divider %q", s)
	}
	if !hasFrac {
		return regmap.IntegerDivider(uint32(ia)), nil
	}

	b, c, ok := strings.Cut(frac, "/")
	if !ok {
		return regmap.Divider{}, fmt.Errorf("invalid divider %q: want A+B/C", s)
	}
	ib, err := strconv.ParseUint(b, 10, 32)
	if err != nil {
		return regmap.Divider{}, fmt.Errorf("invalid divider %q", s)
	}
	ic, err := strconv.ParseUint(c, 10, 32)
	if err != nil {
		return regmap.Divider{}, fmt.Errorf("invalid divider %q", s)
	}
	return regmap.Divider{A: uint32(ia), B: uint32(ib), C: uint32(ic)}, nil
}

// formatDivider is the inverse of parseDivider. The short form is only used
// for c == 1 so that the denominator written to P3 survives.
func formatDivider(d regmap.Divider) string {
	if d.B == 0 && d.C == 1 {
		return strconv.FormatUint(uint64(d.A), 10)
	}
	return d.String()
}

// parsePhase accepts a catalog name or a raw offset.
func parsePhase(s string) (field.PhaseOffset, error) {
	if v, err := field.Lookup(field.GroupPhaseOffset, s); err == nil {
		return field.PhaseOffset(v), nil
	}
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil || !field.PhaseOffset(n).Valid() {
		return 0, &regmap.FieldError{Field: field.GroupPhaseOffset, Value: uint32(n)}
	}
	return field.PhaseOffset(n), nil
}

// parseFanout accepts "none" or a comma separated subset of clkin, xtal
// and ms.
func parseFanout(s string) (regmap.Fanouts, error) {
	f := regmap.Fanouts{
		Clkin:      field.FanoutDisable,
		Xtal:       field.FanoutDisable,
		MultiSynth: field.FanoutDisable,
	}
	if strings.EqualFold(s, "none") {
		return f, nil
	}
	for _, name := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "clkin":
			f.Clkin = field.FanoutEnable
		case "xtal":
			f.Xtal = field.FanoutEnable
		case "ms":
			f.MultiSynth = field.FanoutEnable
		default:
			return f, fmt.Errorf("unknown fanout %q", name)
		}
	}
	return f, nil
}

// formatFanout is the inverse of parseFanout.
func formatFanout(f regmap.Fanouts) string {
	var names []string
	if f.Clkin == field.FanoutEnable {
		names = append(names, "clkin")
	}
	if f.Xtal == field.FanoutEnable {
		names = append(names, "xtal")
	}
	if f.MultiSynth == field.FanoutEnable {
		names = append(names, "ms")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
