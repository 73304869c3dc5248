package field

// PLL selects one of the two internal PLLs.
type PLL uint8

// PLL indexes.
const (
	PLLA PLL = 0
	PLLB PLL = 1
)

// PLLWidth is the bit width of a PLL index.
const PLLWidth = 1

// XtalLoad is the internal crystal load capacitance code (XTAL_CL).
type XtalLoad uint8

// Crystal load capacitance codes. 0b00 is reserved.
const (
	// XtalLoad6pF selects 6 pF
	XtalLoad6pF XtalLoad = 0b01

	// XtalLoad8pF selects 8 pF
	XtalLoad8pF XtalLoad = 0b10

	// XtalLoad10pF selects 10 pF, the power-on value
	XtalLoad10pF XtalLoad = 0b11

	// DefaultXtalLoad is the load capacitance used when none is configured
	DefaultXtalLoad = XtalLoad10pF
)

// XtalLoadWidth is the bit width of XTAL_CL.
const XtalLoadWidth = 2

// ClkinDiv is the CLKIN input pre-divider (CLKIN_DIV). Si5351C only.
type ClkinDiv uint8

// CLKIN divider codes.
const (
	ClkinDiv1 ClkinDiv = 0b00
	ClkinDiv2 ClkinDiv = 0b01
	ClkinDiv4 ClkinDiv = 0b10
	ClkinDiv8 ClkinDiv = 0b11
)

// ClkinDivWidth is the bit width of CLKIN_DIV.
const ClkinDivWidth = 2

// PLLSource is the reference input of a PLL (PLLx_SRC).
type PLLSource uint8

// PLL reference source codes.
const (
	// PLLSourceXtal feeds the PLL from the crystal oscillator
	PLLSourceXtal PLLSource = 0

	// PLLSourceClkin feeds the PLL from the CLKIN pin (Si5351C only)
	PLLSourceClkin PLLSource = 1

	// DefaultPLLSource is the PLL reference used when none is configured
	DefaultPLLSource = PLLSourceXtal
)

// PLLSourceWidth is the bit width of PLLx_SRC.
const PLLSourceWidth = 1

// MSSource is the PLL feeding a MultiSynth stage (MSx_SRC).
type MSSource uint8

// MultiSynth source codes. The codes are the PLL indexes.
const (
	MSSourcePLLA = MSSource(PLLA)
	MSSourcePLLB = MSSource(PLLB)

	// DefaultMSSource is the MultiSynth source used when none is configured
	DefaultMSSource = MSSourcePLLA
)

// MSSourceWidth is the bit width of MSx_SRC.
const MSSourceWidth = 1

// MSDivBy4 enables the MultiSynth integer divide-by-4 path (MSx_DIVBY4).
// Only the two named codes are defined.
type MSDivBy4 uint8

// MultiSynth divide-by-4 codes.
const (
	MSDivBy4Disable MSDivBy4 = 0b00
	MSDivBy4Enable  MSDivBy4 = 0b11
)

// MSDivBy4Width is the bit width of MSx_DIVBY4.
const MSDivBy4Width = 2

// OutputEnable is the active-low output enable bit (CLKx_OEB).
type OutputEnable uint8

// Output enable codes.
const (
	OutputEnabled  OutputEnable = 0
	OutputDisabled OutputEnable = 1
)

// OutputEnableWidth is the bit width of CLKx_OEB.
const OutputEnableWidth = 1

// PowerDown gates power to an output driver (CLKx_PDN).
type PowerDown uint8

// Output power codes.
const (
	PowerOn  PowerDown = 0
	PowerOff PowerDown = 1
)

// PowerDownWidth is the bit width of CLKx_PDN.
const PowerDownWidth = 1

// DisableState is the level an output drives while disabled (CLKx_DIS_STATE).
type DisableState uint8

// Disabled output state codes.
const (
	// DisableLow drives the output low
	DisableLow DisableState = 0b00

	// DisableHigh drives the output high
	DisableHigh DisableState = 0b01

	// DisableHighZ leaves the output in high impedance
	DisableHighZ DisableState = 0b10

	// DisableNever keeps the output running regardless of OEB
	DisableNever DisableState = 0b11
)

// DisableStateWidth is the bit width of CLKx_DIS_STATE.
const DisableStateWidth = 2

// DriveCurrent is the output driver strength (CLKx_IDRV).
type DriveCurrent uint8

// Drive current codes.
const (
	Drive2mA DriveCurrent = 0b00
	Drive4mA DriveCurrent = 0b01
	Drive6mA DriveCurrent = 0b10
	Drive8mA DriveCurrent = 0b11
)

// DriveCurrentWidth is the bit width of CLKx_IDRV.
const DriveCurrentWidth = 2

// ClockSource is the signal routed to an output (CLKx_SRC).
type ClockSource uint8

// Output source codes.
const (
	// ClockSourceXtal routes the crystal oscillator to the output
	ClockSourceXtal ClockSource = 0b00

	// ClockSourceClkin routes the CLKIN input to the output
	ClockSourceClkin ClockSource = 0b01

	// ClockSourceMS04 routes MultiSynth 0 (CLK0-3) or MultiSynth 4 (CLK4-7)
	ClockSourceMS04 ClockSource = 0b10

	// ClockSourceMS routes the output's own MultiSynth
	ClockSourceMS ClockSource = 0b11
)

// ClockSourceWidth is the bit width of CLKx_SRC.
const ClockSourceWidth = 2

// PhaseOffset is the initial phase offset of an output (CLKx_PHOFF),
// in quarter periods of the feeding PLL.
type PhaseOffset uint8

// PhaseOffsetZero starts the output with no phase offset.
const PhaseOffsetZero PhaseOffset = 0

// PhaseOffsetWidth is the bit width of CLKx_PHOFF.
const PhaseOffsetWidth = 7

// Inversion selects the output polarity (CLKx_INV).
type Inversion uint8

// Output polarity codes.
const (
	NotInverted Inversion = 0

	// Inverted shifts the output by 180 degrees
	Inverted Inversion = 1
)

// InversionWidth is the bit width of CLKx_INV.
const InversionWidth = 1

// RDiv is the power-of-two output divider (Rx_DIV). The divide ratio is
// 2 raised to the code.
type RDiv uint8

// Output divider codes.
const (
	RDiv1   RDiv = 0b000
	RDiv2   RDiv = 0b001
	RDiv4   RDiv = 0b010
	RDiv8   RDiv = 0b011
	RDiv16  RDiv = 0b100
	RDiv32  RDiv = 0b101
	RDiv64  RDiv = 0b110
	RDiv128 RDiv = 0b111
)

// RDivWidth is the bit width of Rx_DIV.
const RDivWidth = 3

// Fanout enables one of the CLKIN, XO or MultiSynth fanout buffers
// (CLKIN_FANOUT_EN, XO_FANOUT_EN, MS_FANOUT_EN).
type Fanout uint8

// Fanout codes.
const (
	FanoutDisable Fanout = 0b0
	FanoutEnable  Fanout = 0b1
)

// FanoutWidth is the bit width of each fanout enable.
const FanoutWidth = 1

// Bits returns the raw bit pattern.
func (p PLL) Bits() uint8 { return uint8(p) }

// Bits returns the raw bit pattern.
func (x XtalLoad) Bits() uint8 { return uint8(x) }

// Bits returns the raw bit pattern.
func (d ClkinDiv) Bits() uint8 { return uint8(d) }

// Bits returns the raw bit pattern.
func (s PLLSource) Bits() uint8 { return uint8(s) }

// Bits returns the raw bit pattern.
func (s MSSource) Bits() uint8 { return uint8(s) }

// Bits returns the raw bit pattern.
func (d MSDivBy4) Bits() uint8 { return uint8(d) }

// Bits returns the raw bit pattern.
func (e OutputEnable) Bits() uint8 { return uint8(e) }

// Bits returns the raw bit pattern.
func (p PowerDown) Bits() uint8 { return uint8(p) }

// Bits returns the raw bit pattern.
func (s DisableState) Bits() uint8 { return uint8(s) }

// Bits returns the raw bit pattern.
func (d DriveCurrent) Bits() uint8 { return uint8(d) }

// Bits returns the raw bit pattern.
func (s ClockSource) Bits() uint8 { return uint8(s) }

// Bits returns the raw bit pattern.
func (p PhaseOffset) Bits() uint8 { return uint8(p) }

// Bits returns the raw bit pattern.
func (i Inversion) Bits() uint8 { return uint8(i) }

// Bits returns the raw bit pattern.
func (r RDiv) Bits() uint8 { return uint8(r) }

// Bits returns the raw bit pattern.
func (f Fanout) Bits() uint8 { return uint8(f) }

// PLL returns the PLL index encoded by the MultiSynth source.
func (s MSSource) PLL() PLL { return PLL(s) }

// Source returns the MultiSynth source code selecting p.
func (p PLL) Source() MSSource { return MSSource(p) }
