package regmap

// NumClocks is the number of clock outputs on the largest family member.
const NumClocks = 8

// NumRegisters is the size of the register address space.
const NumRegisters = 256

// Register addresses per AN619.
const (
	// RegDeviceStatus reports SYS_INIT, LOL and LOS flags
	RegDeviceStatus = 0

	// RegOutputEnable holds CLKx_OEB for all eight outputs, bit n = CLKn
	RegOutputEnable = 3

	// RegPLLInputSource holds CLKIN_DIV and the PLL reference selects
	RegPLLInputSource = 15

	// RegCLK0Control is the first of eight CLKx control registers (16..23)
	RegCLK0Control = 16

	// RegCLK30DisableState holds CLKx_DIS_STATE for CLK0..CLK3
	RegCLK30DisableState = 24

	// RegCLK74DisableState holds CLKx_DIS_STATE for CLK4..CLK7
	RegCLK74DisableState = 25

	// RegPLLAParams is the first byte of the PLL A feedback divider block
	RegPLLAParams = 26

	// RegPLLBParams is the first byte of the PLL B feedback divider block
	RegPLLBParams = 34

	// RegMS0Params is the first byte of the MultiSynth 0 block; MSn starts at
	// RegMS0Params + n*ParamBlockSize for n < 6
	RegMS0Params = 42

	// RegMS6Params holds the MultiSynth 6 integer divider
	RegMS6Params = 90

	// RegMS7Params holds the MultiSynth 7 integer divider
	RegMS7Params = 91

	// RegR67Div holds the R6 and R7 output dividers
	RegR67Div = 92

	// RegCLK0PhaseOffset is the first of six CLKx_PHOFF registers (165..170)
	RegCLK0PhaseOffset = 165

	// RegCrystalLoad holds XTAL_CL
	RegCrystalLoad = 183

	// RegFanoutEnable holds the three fanout enables
	RegFanoutEnable = 187
)

// ParamBlockSize is the size of a PLL or MultiSynth parameter block.
const ParamBlockSize = 8

// NumFractionalMultiSynths is the number of MultiSynths with a full parameter
// block and a phase offset register (MS0..MS5).
const NumFractionalMultiSynths = 6

// Bit positions inside RegPLLInputSource.
const (
	clkinDivShift = 6
	pllBSrcShift  = 3
	pllASrcShift  = 2
)

// Bit positions inside a CLKx control register.
const (
	ctrlPDNShift  = 7
	ctrlIntShift  = 6
	ctrlSrcShift  = 5
	ctrlInvShift  = 4
	ctrlClkShift  = 2
	ctrlIDRVShift = 0
)

// Bit positions inside byte 2 of a MultiSynth parameter block and RegR67Div.
const (
	rDivShift   = 4
	divBy4Shift = 2
	r6DivShift  = 0
	r7DivShift  = 4
)

// Bit positions inside RegFanoutEnable.
const (
	clkinFanoutShift = 7
	xoFanoutShift    = 6
	msFanoutShift    = 4
)

// Crystal load register layout. The low six bits must be written as 010010b.
const (
	xtalLoadShift    = 6
	xtalLoadReserved = 0b010010
)

// Divider limits per AN619.
const (
	// MaxDenominator is the largest c of a fractional divider a + b/c
	MaxDenominator = 1<<20 - 1

	// MinPLLMultiplier and MaxPLLMultiplier bound the PLL feedback divider
	MinPLLMultiplier = 15
	MaxPLLMultiplier = 90

	// MinMultiSynthDivider and MaxMultiSynthDivider bound the fractional
	// MultiSynth divider; integer 4 and 6 are also accepted
	MinMultiSynthDivider = 8
	MaxMultiSynthDivider = 2048

	// MinMS67Divider and MaxMS67Divider bound the even integer MS6/MS7 divider
	MinMS67Divider = 6
	MaxMS67Divider = 254
)

// Masks of the field widths in the register map.
const (
	mask1 = 0b1
	mask2 = 0b11
	mask3 = 0b111
	mask7 = 0x7F
)
