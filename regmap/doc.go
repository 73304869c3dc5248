// Package regmap places the codes of package field into the Si5351 register
// map.
//
// Each Encode function packs one register (or one 8-byte parameter block)
// and rejects codes that are not defined for the field with a *FieldError.
// Each Decode function performs the inverse and never fails; the caller can
// check the decoded codes with their Valid methods.
//
// # Register Map
//
//	  3        CLKx_OEB, bit n = CLKn
//	 15        [CLKIN_DIV(2)][0][0][PLLB_SRC][PLLA_SRC][0][0]
//	 16-23     [PDN][MS_INT][MS_SRC][INV][CLK_SRC(2)][IDRV(2)]
//	 24-25     CLKx_DIS_STATE, two bits per clock
//	 26-33     PLL A feedback divider
//	 34-41     PLL B feedback divider
//	 42-89     MultiSynth 0..5 dividers, R_DIV and MS_DIVBY4
//	 90-91     MultiSynth 6 and 7 integer dividers
//	 92        [0][R7_DIV(3)][0][R6_DIV(3)]
//	165-170    CLKx_PHOFF
//	183        [XTAL_CL(2)][010010]
//	187        [CLKIN_FANOUT_EN][XO_FANOUT_EN][0][MS_FANOUT_EN][0000]
//
// # Dividers
//
// PLL and MultiSynth dividers are fractional ratios a + b/c. They are stored
// as the three parameters P1, P2 and P3:
//
//	block, err := regmap.EncodePLL(regmap.Divider{A: 36, B: 0, C: 1})
//	img.SetBlock(regmap.RegPLLAParams, block)
//
// Choosing the dividers for a target frequency is outside this package.
//
// # Images
//
// An Image collects register values by address. It does not order writes or
// talk to the bus; that belongs to the driver using it.
package regmap
