package field

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is one named value of a field group.
type Code struct {
	// Name is the short name of the code, e.g. "8mA"
	Name string

	// Value is the raw bit pattern
	Value uint8
}

// Group describes one field group of the catalog.
type Group struct {
	// Name is the datasheet name of the field, e.g. "CLK_IDRV"
	Name string

	// Width is the field width in bits
	Width int

	// Codes lists the named codes in ascending value order
	Codes []Code
}

// Group names as returned by Groups and accepted by Lookup.
const (
	GroupPLL          = "PLL"
	GroupXtalLoad     = "XTAL_CL"
	GroupClkinDiv     = "CLKIN_DIV"
	GroupPLLSource    = "PLL_SRC"
	GroupMSSource     = "MS_SRC"
	GroupMSDivBy4     = "MS_DIVBY4"
	GroupOutputEnable = "CLK_OEB"
	GroupPowerDown    = "CLK_PDN"
	GroupDisableState = "CLK_DIS_STATE"
	GroupDriveCurrent = "CLK_IDRV"
	GroupClockSource  = "CLK_SRC"
	GroupPhaseOffset  = "CLK_PHOFF"
	GroupInversion    = "CLK_INV"
	GroupRDiv         = "R_DIV"
	GroupFanout       = "FANOUT_EN"
)

var (
	pllCodes          = []Code{{"A", 0}, {"B", 1}}
	xtalLoadCodes     = []Code{{"6pF", 0b01}, {"8pF", 0b10}, {"10pF", 0b11}}
	clkinDivCodes     = []Code{{"div1", 0b00}, {"div2", 0b01}, {"div4", 0b10}, {"div8", 0b11}}
	pllSourceCodes    = []Code{{"XTAL", 0}, {"CLKIN", 1}}
	msSourceCodes     = []Code{{"PLLA", 0}, {"PLLB", 1}}
	msDivBy4Codes     = []Code{{"disable", 0b00}, {"enable", 0b11}}
	outputEnableCodes = []Code{{"enable", 0}, {"disable", 1}}
	powerDownCodes    = []Code{{"on", 0}, {"off", 1}}
	disableStateCodes = []Code{{"low", 0b00}, {"high", 0b01}, {"highz", 0b10}, {"never", 0b11}}
	driveCurrentCodes = []Code{{"2mA", 0b00}, {"4mA", 0b01}, {"6mA", 0b10}, {"8mA", 0b11}}
	clockSourceCodes  = []Code{{"XTAL", 0b00}, {"CLKIN", 0b01}, {"MS04", 0b10}, {"MS", 0b11}}
	phaseOffsetCodes  = []Code{{"zero", 0}}
	inversionCodes    = []Code{{"normal", 0}, {"inverted", 1}}
	rDivCodes         = []Code{
		{"div1", 0b000}, {"div2", 0b001}, {"div4", 0b010}, {"div8", 0b011},
		{"div16", 0b100}, {"div32", 0b101}, {"div64", 0b110}, {"div128", 0b111},
	}
	fanoutCodes = []Code{{"disable", 0}, {"enable", 1}}
)

var catalog = []Group{
	{GroupPLL, PLLWidth, pllCodes},
	{GroupXtalLoad, XtalLoadWidth, xtalLoadCodes},
	{GroupClkinDiv, ClkinDivWidth, clkinDivCodes},
	{GroupPLLSource, PLLSourceWidth, pllSourceCodes},
	{GroupMSSource, MSSourceWidth, msSourceCodes},
	{GroupMSDivBy4, MSDivBy4Width, msDivBy4Codes},
	{GroupOutputEnable, OutputEnableWidth, outputEnableCodes},
	{GroupPowerDown, PowerDownWidth, powerDownCodes},
	{GroupDisableState, DisableStateWidth, disableStateCodes},
	{GroupDriveCurrent, DriveCurrentWidth, driveCurrentCodes},
	{GroupClockSource, ClockSourceWidth, clockSourceCodes},
	{GroupPhaseOffset, PhaseOffsetWidth, phaseOffsetCodes},
	{GroupInversion, InversionWidth, inversionCodes},
	{GroupRDiv, RDivWidth, rDivCodes},
	{GroupFanout, FanoutWidth, fanoutCodes},
}

// Groups returns every field group of the catalog. The returned slice is a
// copy and may be modified by the caller.
func Groups() []Group {
	out := make([]Group, len(catalog))
	for i, g := range catalog {
		out[i] = Group{
			Name:  g.Name,
			Width: g.Width,
			Codes: append([]Code(nil), g.Codes...),
		}
	}
	return out
}

// Lookup returns the raw value of the code called name in the given group.
// Both names are matched case-insensitively.
//
// Example:
//
//	v, err := field.Lookup(field.GroupRDiv, "div64") // 0b110
func Lookup(group, name string) (uint8, error) {
	for _, g := range catalog {
		if !strings.EqualFold(g.Name, group) {
			continue
		}
		for _, c := range g.Codes {
			if strings.EqualFold(c.Name, name) {
				return c.Value, nil
			}
		}
		return 0, fmt.Errorf("%w: %q in %s", ErrUnknownCode, name, g.Name)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
}

func nameOf(codes []Code, v uint8) (string, bool) {
	for _, c := range codes {
		if c.Value == v {
			return c.Name, true
		}
	}
	return "", false
}

func hasCode(codes []Code, v uint8) bool {
	_, ok := nameOf(codes, v)
	return ok
}

func stringOf(codes []Code, typ string, v uint8) string {
	if s, ok := nameOf(codes, v); ok {
		return s
	}
	return typ + "(" + strconv.Itoa(int(v)) + ")"
}

// String returns the catalog name of the PLL code.
func (p PLL) String() string { return stringOf(pllCodes, "PLL", uint8(p)) }

// String returns the catalog name of the XtalLoad code.
func (x XtalLoad) String() string { return stringOf(xtalLoadCodes, "XtalLoad", uint8(x)) }

// String returns the catalog name of the ClkinDiv code.
func (d ClkinDiv) String() string { return stringOf(clkinDivCodes, "ClkinDiv", uint8(d)) }

// String returns the catalog name of the PLLSource code.
func (s PLLSource) String() string { return stringOf(pllSourceCodes, "PLLSource", uint8(s)) }

// String returns the catalog name of the MSSource code.
func (s MSSource) String() string { return stringOf(msSourceCodes, "MSSource", uint8(s)) }

// String returns the catalog name of the MSDivBy4 code.
func (d MSDivBy4) String() string { return stringOf(msDivBy4Codes, "MSDivBy4", uint8(d)) }

// String returns the catalog name of the OutputEnable code.
func (e OutputEnable) String() string { return stringOf(outputEnableCodes, "OutputEnable", uint8(e)) }

// String returns the catalog name of the PowerDown code.
func (p PowerDown) String() string { return stringOf(powerDownCodes, "PowerDown", uint8(p)) }

// String returns the catalog name of the DisableState code.
func (s DisableState) String() string { return stringOf(disableStateCodes, "DisableState", uint8(s)) }

// String returns the catalog name of the DriveCurrent code.
func (d DriveCurrent) String() string { return stringOf(driveCurrentCodes, "DriveCurrent", uint8(d)) }

// String returns the catalog name of the ClockSource code.
func (s ClockSource) String() string { return stringOf(clockSourceCodes, "ClockSource", uint8(s)) }

// String returns the catalog name of the Inversion code.
func (i Inversion) String() string { return stringOf(inversionCodes, "Inversion", uint8(i)) }

// String returns the catalog name of the RDiv code.
func (r RDiv) String() string { return stringOf(rDivCodes, "RDiv", uint8(r)) }

// String returns the catalog name of the Fanout code.
func (f Fanout) String() string { return stringOf(fanoutCodes, "Fanout", uint8(f)) }

// String names the zero offset and prints any other offset in decimal.
func (p PhaseOffset) String() string {
	if s, ok := nameOf(phaseOffsetCodes, uint8(p)); ok {
		return s
	}
	return strconv.Itoa(int(p))
}

// Valid reports whether the value is a defined PLL code.
func (p PLL) Valid() bool { return hasCode(pllCodes, uint8(p)) }

// Valid reports whether the value is a defined XtalLoad code.
func (x XtalLoad) Valid() bool { return hasCode(xtalLoadCodes, uint8(x)) }

// Valid reports whether the value is a defined ClkinDiv code.
func (d ClkinDiv) Valid() bool { return hasCode(clkinDivCodes, uint8(d)) }

// Valid reports whether the value is a defined PLLSource code.
func (s PLLSource) Valid() bool { return hasCode(pllSourceCodes, uint8(s)) }

// Valid reports whether the value is a defined MSSource code.
func (s MSSource) Valid() bool { return hasCode(msSourceCodes, uint8(s)) }

// Valid reports whether the value is a defined MSDivBy4 code.
func (d MSDivBy4) Valid() bool { return hasCode(msDivBy4Codes, uint8(d)) }

// Valid reports whether the value is a defined OutputEnable code.
func (e OutputEnable) Valid() bool { return hasCode(outputEnableCodes, uint8(e)) }

// Valid reports whether the value is a defined PowerDown code.
func (p PowerDown) Valid() bool { return hasCode(powerDownCodes, uint8(p)) }

// Valid reports whether the value is a defined DisableState code.
func (s DisableState) Valid() bool { return hasCode(disableStateCodes, uint8(s)) }

// Valid reports whether the value is a defined DriveCurrent code.
func (d DriveCurrent) Valid() bool { return hasCode(driveCurrentCodes, uint8(d)) }

// Valid reports whether the value is a defined ClockSource code.
func (s ClockSource) Valid() bool { return hasCode(clockSourceCodes, uint8(s)) }

// Valid reports whether the value is a defined Inversion code.
func (i Inversion) Valid() bool { return hasCode(inversionCodes, uint8(i)) }

// Valid reports whether the value is a defined RDiv code.
func (r RDiv) Valid() bool { return hasCode(rDivCodes, uint8(r)) }

// Valid reports whether the value is a defined Fanout code.
func (f Fanout) Valid() bool { return hasCode(fanoutCodes, uint8(f)) }

// Valid reports whether the offset fits the 7-bit CLKx_PHOFF field. Only the
// zero offset is named, but the register accepts any value in range.
func (p PhaseOffset) Valid() bool { return p < 1<<PhaseOffsetWidth }
