// Package si5351 assembles complete Si5351 configurations and packs them into
// register images.
//
// # Overview
//
// A Config collects every setting the chip takes: crystal load, PLL
// reference sources and feedback dividers, fanout enables and the eight
// clock outputs. Options start from the catalog defaults of package field:
//   - crystal load 10 pF
//   - both PLLs referenced to the crystal
//   - MultiSynths fed from PLL A
//   - outputs not mentioned are disabled and powered down
//
// # Basic Usage
//
//	cfg := si5351.New(
//	    si5351.WithPLLDivider(field.PLLA, regmap.IntegerDivider(36)),
//	    si5351.WithOutput(0,
//	        si5351.Divider(regmap.IntegerDivider(90)),
//	        si5351.Drive(field.Drive4mA),
//	    ),
//	)
//
//	img, err := cfg.Image()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range img.Registers() {
//	    fmt.Printf("%3d = 0x%02X\n", r.Addr, r.Value)
//	}
//
// Dividers are taken as given. Choosing them for a target frequency, and
// writing the image to the chip over I2C, are left to the caller.
//
// # Validation
//
// The encoders in package regmap reject codes that are undefined for their
// field. Validate adds the checks that span several fields, chiefly the
// divide-by-4 mode: it is only available on MultiSynth 0..5 and requires a
// divider of exactly 4 with an R divider of 1.
//
//	err := cfg.Validate()
//	var oe *si5351.OutputError
//	if errors.As(err, &oe) {
//	    fmt.Printf("CLK%d is misconfigured: %v\n", oe.Clock, oe.Err)
//	}
//
// # Decoding
//
// Decode turns a register image back into a Config, for inspecting a
// register map exported by another tool or read back from a device.
//
// # Logging
//
// Provide a Logger to trace register packing:
//
//	cfg := si5351.New(si5351.WithLogger(myLogger))
package si5351
