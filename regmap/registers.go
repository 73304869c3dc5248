package regmap

import (
	"fmt"

	"github.com/moffa90/go-si5351/field"
)

// Control holds the fields of a CLKx control register.
type Control struct {
	// PowerDown gates the output driver (CLKx_PDN)
	PowerDown field.PowerDown

	// IntegerMode forces the MultiSynth into integer mode (MSx_INT). For
	// CLK6 and CLK7 the same bit position holds FBA_INT and FBB_INT.
	IntegerMode bool

	// Source selects the PLL feeding the MultiSynth (MSx_SRC)
	Source field.MSSource

	// Inversion selects the output polarity (CLKx_INV)
	Inversion field.Inversion

	// ClockSource selects the signal routed to the output (CLKx_SRC)
	ClockSource field.ClockSource

	// Drive is the output driver strength (CLKx_IDRV)
	Drive field.DriveCurrent
}

// ControlRegister returns the address of the CLKx control register.
func ControlRegister(clk int) (uint8, error) {
	if err := checkClock(clk, NumClocks); err != nil {
		return 0, err
	}
	return uint8(RegCLK0Control + clk), nil
}

// EncodeControl packs a CLKx control register.
//
// Register layout:
//
//	[PDN][INT][MS_SRC][INV][CLK_SRC(2)][IDRV(2)]
func EncodeControl(c Control) (byte, error) {
	switch {
	case !c.PowerDown.Valid():
		return 0, &FieldError{Field: field.GroupPowerDown, Value: uint32(c.PowerDown)}
	case !c.Source.Valid():
		return 0, &FieldError{Field: field.GroupMSSource, Value: uint32(c.Source)}
	case !c.Inversion.Valid():
		return 0, &FieldError{Field: field.GroupInversion, Value: uint32(c.Inversion)}
	case !c.ClockSource.Valid():
		return 0, &FieldError{Field: field.GroupClockSource, Value: uint32(c.ClockSource)}
	case !c.Drive.Valid():
		return 0, &FieldError{Field: field.GroupDriveCurrent, Value: uint32(c.Drive)}
	}

	var b byte
	b |= c.PowerDown.Bits() << ctrlPDNShift
	if c.IntegerMode {
		b |= 1 << ctrlIntShift
	}
	b |= c.Source.Bits() << ctrlSrcShift
	b |= c.Inversion.Bits() << ctrlInvShift
	b |= c.ClockSource.Bits() << ctrlClkShift
	b |= c.Drive.Bits() << ctrlIDRVShift
	return b, nil
}

// DecodeControl unpacks a CLKx control register.
func DecodeControl(b byte) Control {
	return Control{
		PowerDown:   field.PowerDown(b >> ctrlPDNShift & mask1),
		IntegerMode: b>>ctrlIntShift&mask1 == 1,
		Source:      field.MSSource(b >> ctrlSrcShift & mask1),
		Inversion:   field.Inversion(b >> ctrlInvShift & mask1),
		ClockSource: field.ClockSource(b >> ctrlClkShift & mask2),
		Drive:       field.DriveCurrent(b >> ctrlIDRVShift & mask2),
	}
}

// EncodeOutputEnable packs the eight active-low output enables into
// RegOutputEnable. Bit n holds CLKn_OEB.
func EncodeOutputEnable(oeb [NumClocks]field.OutputEnable) (byte, error) {
	var b byte
	for clk, e := range oeb {
		if !e.Valid() {
			return 0, &FieldError{Field: field.GroupOutputEnable, Value: uint32(e)}
		}
		b |= e.Bits() << clk
	}
	return b, nil
}

// DecodeOutputEnable unpacks RegOutputEnable.
func DecodeOutputEnable(b byte) [NumClocks]field.OutputEnable {
	var oeb [NumClocks]field.OutputEnable
	for clk := range oeb {
		oeb[clk] = field.OutputEnable(b >> clk & mask1)
	}
	return oeb
}

// DisableStateRegister returns the address of the register holding
// CLKx_DIS_STATE for the given clock.
func DisableStateRegister(clk int) (uint8, error) {
	if err := checkClock(clk, NumClocks); err != nil {
		return 0, err
	}
	if clk < 4 {
		return RegCLK30DisableState, nil
	}
	return RegCLK74DisableState, nil
}

// SetDisableState returns reg with the CLKx_DIS_STATE field of clk replaced
// by s. Clock n occupies bits 2(n mod 4)+1 and 2(n mod 4).
func SetDisableState(reg byte, clk int, s field.DisableState) (byte, error) {
	if err := checkClock(clk, NumClocks); err != nil {
		return 0, err
	}
	if !s.Valid() {
		return 0, &FieldError{Field: field.GroupDisableState, Value: uint32(s)}
	}
	shift := uint(clk%4) * field.DisableStateWidth
	reg &^= mask2 << shift
	reg |= s.Bits() << shift
	return reg, nil
}

// DisableStateOf extracts the CLKx_DIS_STATE field of clk from reg.
func DisableStateOf(reg byte, clk int) field.DisableState {
	shift := uint(clk%4) * field.DisableStateWidth
	return field.DisableState(reg >> shift & mask2)
}

// PLLInput holds the fields of RegPLLInputSource.
type PLLInput struct {
	ClkinDiv field.ClkinDiv
	PLLA     field.PLLSource
	PLLB     field.PLLSource
}

// EncodePLLInputSource packs RegPLLInputSource.
//
// Register layout:
//
//	[CLKIN_DIV(2)][0][0][PLLB_SRC][PLLA_SRC][0][0]
func EncodePLLInputSource(in PLLInput) (byte, error) {
	switch {
	case !in.ClkinDiv.Valid():
		return 0, &FieldError{Field: field.GroupClkinDiv, Value: uint32(in.ClkinDiv)}
	case !in.PLLA.Valid():
		return 0, &FieldError{Field: "PLLA_SRC", Value: uint32(in.PLLA)}
	case !in.PLLB.Valid():
		return 0, &FieldError{Field: "PLLB_SRC", Value: uint32(in.PLLB)}
	}
	return in.ClkinDiv.Bits()<<clkinDivShift |
		in.PLLB.Bits()<<pllBSrcShift |
		in.PLLA.Bits()<<pllASrcShift, nil
}

// DecodePLLInputSource unpacks RegPLLInputSource.
func DecodePLLInputSource(b byte) PLLInput {
	return PLLInput{
		ClkinDiv: field.ClkinDiv(b >> clkinDivShift & mask2),
		PLLA:     field.PLLSource(b >> pllASrcShift & mask1),
		PLLB:     field.PLLSource(b >> pllBSrcShift & mask1),
	}
}

// Source returns the reference source of the given PLL.
func (in PLLInput) Source(p field.PLL) field.PLLSource {
	if p == field.PLLB {
		return in.PLLB
	}
	return in.PLLA
}

// EncodeCrystalLoad packs RegCrystalLoad. The reserved low bits are set to
// the value the datasheet requires.
func EncodeCrystalLoad(x field.XtalLoad) (byte, error) {
	if !x.Valid() {
		return 0, &FieldError{Field: field.GroupXtalLoad, Value: uint32(x)}
	}
	return x.Bits()<<xtalLoadShift | xtalLoadReserved, nil
}

// DecodeCrystalLoad unpacks RegCrystalLoad.
func DecodeCrystalLoad(b byte) field.XtalLoad {
	return field.XtalLoad(b >> xtalLoadShift & mask2)
}

// Fanouts holds the three fanout enables of RegFanoutEnable.
type Fanouts struct {
	Clkin      field.Fanout
	Xtal       field.Fanout
	MultiSynth field.Fanout
}

// EncodeFanout packs RegFanoutEnable.
//
// Register layout:
//
//	[CLKIN_FANOUT_EN][XO_FANOUT_EN][0][MS_FANOUT_EN][0][0][0][0]
func EncodeFanout(f Fanouts) (byte, error) {
	switch {
	case !f.Clkin.Valid():
		return 0, &FieldError{Field: "CLKIN_FANOUT_EN", Value: uint32(f.Clkin)}
	case !f.Xtal.Valid():
		return 0, &FieldError{Field: "XO_FANOUT_EN", Value: uint32(f.Xtal)}
	case !f.MultiSynth.Valid():
		return 0, &FieldError{Field: "MS_FANOUT_EN", Value: uint32(f.MultiSynth)}
	}
	return f.Clkin.Bits()<<clkinFanoutShift |
		f.Xtal.Bits()<<xoFanoutShift |
		f.MultiSynth.Bits()<<msFanoutShift, nil
}

// DecodeFanout unpacks RegFanoutEnable.
func DecodeFanout(b byte) Fanouts {
	return Fanouts{
		Clkin:      field.Fanout(b >> clkinFanoutShift & mask1),
		Xtal:       field.Fanout(b >> xoFanoutShift & mask1),
		MultiSynth: field.Fanout(b >> msFanoutShift & mask1),
	}
}

// PhaseOffsetRegister returns the address of CLKx_PHOFF. Only CLK0..CLK5
// have a phase offset register.
func PhaseOffsetRegister(clk int) (uint8, error) {
	if err := checkClock(clk, NumFractionalMultiSynths); err != nil {
		return 0, err
	}
	return uint8(RegCLK0PhaseOffset + clk), nil
}

// EncodePhaseOffset packs a CLKx_PHOFF register.
func EncodePhaseOffset(p field.PhaseOffset) (byte, error) {
	if !p.Valid() {
		return 0, &FieldError{Field: field.GroupPhaseOffset, Value: uint32(p)}
	}
	return p.Bits() & mask7, nil
}

// DecodePhaseOffset unpacks a CLKx_PHOFF register.
func DecodePhaseOffset(b byte) field.PhaseOffset {
	return field.PhaseOffset(b & mask7)
}

// EncodeR67 packs RegR67Div.
//
// Register layout:
//
//	[0][R7_DIV(3)][0][R6_DIV(3)]
func EncodeR67(r6, r7 field.RDiv) (byte, error) {
	if !r6.Valid() {
		return 0, &FieldError{Field: "R6_DIV", Value: uint32(r6)}
	}
	if !r7.Valid() {
		return 0, &FieldError{Field: "R7_DIV", Value: uint32(r7)}
	}
	return r7.Bits()<<r7DivShift | r6.Bits()<<r6DivShift, nil
}

// DecodeR67 unpacks RegR67Div.
func DecodeR67(b byte) (r6, r7 field.RDiv) {
	return field.RDiv(b >> r6DivShift & mask3), field.RDiv(b >> r7DivShift & mask3)
}

func checkClock(clk, limit int) error {
	if clk < 0 || clk >= limit {
		return fmt.Errorf("%w: %d (valid 0-%d)", ErrClockIndex, clk, limit-1)
	}
	return nil
}
