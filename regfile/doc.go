// Package regfile reads and writes Si5351 register map files.
//
// # File Format
//
// The format follows the register export of ClockBuilder Pro: comment lines
// starting with '#', an "Address,Data" header and one register per line.
//
//	# Si5351A Rev B Configuration Register Export Header
//	Address,Data
//	3,FEh
//	16,4Fh
//	183,D2h
//
// Addresses are decimal (or 0x-prefixed hex); data is hex with an "h"
// suffix (or 0x-prefixed hex, or decimal).
//
// The result is a regmap.Image that can be decoded with si5351.Decode.
package regfile
