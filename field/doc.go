// Package field catalogs the register fields of the Si5351 family of I2C clock
// generators.
//
// Every configurable bitfield of the chip is modelled as its own type with an
// underlying uint8, so a drive-current code cannot be passed where a clock
// source is expected:
//
//	var drive field.DriveCurrent = field.Drive8mA
//	raw := drive.Bits() // 0b11
//
// The catalog holds constants only. It does not validate combinations of
// fields; package regmap places the codes into register bytes and package
// si5351 checks cross-field constraints such as divide-by-4 mode.
//
// # Field Groups
//
//	PLL            1 bit   PLL A / PLL B
//	XtalLoad       2 bits  6, 8 or 10 pF (0 is not a valid code)
//	ClkinDiv       2 bits  CLKIN pre-divider 1, 2, 4, 8
//	PLLSource      1 bit   crystal / CLKIN
//	MSSource       1 bit   PLL A / PLL B
//	MSDivBy4       2 bits  disabled (00) / enabled (11)
//	OutputEnable   1 bit   active-low OEB
//	PowerDown      1 bit   powered / off
//	DisableState   2 bits  low, high, high-Z, never disabled
//	DriveCurrent   2 bits  2, 4, 6, 8 mA
//	ClockSource    2 bits  XTAL, CLKIN, MS0/MS4, own MultiSynth
//	PhaseOffset    7 bits  only the zero offset is named
//	Inversion      1 bit   normal / inverted
//	RDiv           3 bits  output divider 2^code
//	Fanout         1 bit   disabled / enabled
//
// # Lookup By Name
//
// Groups and Lookup expose the same table by name, for tools that read
// configurations from text:
//
//	code, err := field.Lookup("CLK_IDRV", "8mA") // 3
//
// # Reference
//
// Skyworks/Silicon Labs AN619, "Manually Generating an Si5351 Register Map".
package field
