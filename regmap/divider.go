package regmap

import (
	"fmt"

	"github.com/moffa90/go-si5351/field"
)

// Divider is a fractional divide ratio a + b/c as used by the PLL feedback
// dividers and the MultiSynth dividers. Computing a divider for a target
// frequency is left to the caller.
type Divider struct {
	A uint32
	B uint32
	C uint32
}

// IntegerDivider returns the divider a + 0/1.
func IntegerDivider(a uint32) Divider {
	return Divider{A: a, B: 0, C: 1}
}

// IsZero reports whether the divider is unset.
func (d Divider) IsZero() bool {
	return d == Divider{}
}

// IsInteger reports whether the divider has no fractional part.
func (d Divider) IsInteger() bool {
	return d.B == 0
}

// Ratio returns the divide ratio as a float.
func (d Divider) Ratio() float64 {
	if d.C == 0 {
		return float64(d.A)
	}
	return float64(d.A) + float64(d.B)/float64(d.C)
}

func (d Divider) String() string {
	return fmt.Sprintf("%d+%d/%d", d.A, d.B, d.C)
}

// params converts the divider into the P1, P2 and P3 register parameters:
//
//	P1 = 128a + floor(128b/c) - 512
//	P2 = 128b - c*floor(128b/c)
//	P3 = c
func (d Divider) params() (p1, p2, p3 uint32) {
	f := 128 * uint64(d.B) / uint64(d.C)
	p1 = uint32(128*uint64(d.A) + f - 512)
	p2 = uint32(128*uint64(d.B) - uint64(d.C)*f)
	p3 = d.C
	return p1, p2, p3
}

// dividerFromParams inverts params.
func dividerFromParams(p1, p2, p3 uint32) Divider {
	if p3 == 0 {
		return Divider{}
	}
	x := uint64(p1) + 512
	a := x / 128
	f := x % 128
	b := (uint64(p2) + uint64(p3)*f) / 128
	return Divider{A: uint32(a), B: uint32(b), C: p3}
}

// checkFraction validates the b/c part shared by every fractional divider.
func checkFraction(stage string, d Divider) error {
	if d.C == 0 || d.C > MaxDenominator {
		return &DividerError{Stage: stage, Divider: d,
			Reason: fmt.Sprintf("denominator must be 1-%d", MaxDenominator)}
	}
	if d.B >= d.C {
		return &DividerError{Stage: stage, Divider: d, Reason: "numerator must be less than denominator"}
	}
	return nil
}

// packParams lays out an 8-byte parameter block:
//
//	[P3 15:8][P3 7:0][HDR|P1 17:16][P1 15:8][P1 7:0][P3 19:16|P2 19:16][P2 15:8][P2 7:0]
//
// hdr carries R_DIV and MS_DIVBY4 for MultiSynth blocks and is zero for PLLs.
func packParams(p1, p2, p3 uint32, hdr byte) [ParamBlockSize]byte {
	return [ParamBlockSize]byte{
		byte(p3 >> 8),
		byte(p3),
		hdr | byte(p1>>16)&mask2,
		byte(p1 >> 8),
		byte(p1),
		byte(p3>>16)&0x0F<<4 | byte(p2>>16)&0x0F,
		byte(p2 >> 8),
		byte(p2),
	}
}

func unpackParams(b [ParamBlockSize]byte) (p1, p2, p3 uint32) {
	p3 = uint32(b[5]>>4)<<16 | uint32(b[0])<<8 | uint32(b[1])
	p1 = uint32(b[2]&mask2)<<16 | uint32(b[3])<<8 | uint32(b[4])
	p2 = uint32(b[5]&0x0F)<<16 | uint32(b[6])<<8 | uint32(b[7])
	return p1, p2, p3
}

// PLLParamsRegister returns the first address of the feedback divider block
// of the given PLL.
func PLLParamsRegister(p field.PLL) (uint8, error) {
	switch p {
	case field.PLLA:
		return RegPLLAParams, nil
	case field.PLLB:
		return RegPLLBParams, nil
	default:
		return 0, &FieldError{Field: field.GroupPLL, Value: uint32(p)}
	}
}

// EncodePLL packs a PLL feedback divider block. The divider must lie between
// MinPLLMultiplier and MaxPLLMultiplier.
func EncodePLL(d Divider) ([ParamBlockSize]byte, error) {
	if err := checkFraction("PLL", d); err != nil {
		return [ParamBlockSize]byte{}, err
	}
	if d.A < MinPLLMultiplier || d.A > MaxPLLMultiplier || (d.A == MaxPLLMultiplier && d.B != 0) {
		return [ParamBlockSize]byte{}, &DividerError{Stage: "PLL", Divider: d,
			Reason: fmt.Sprintf("ratio must be %d-%d", MinPLLMultiplier, MaxPLLMultiplier)}
	}
	p1, p2, p3 := d.params()
	return packParams(p1, p2, p3, 0), nil
}

// DecodePLL unpacks a PLL feedback divider block.
func DecodePLL(b [ParamBlockSize]byte) Divider {
	return dividerFromParams(unpackParams(b))
}

// MultiSynthParamsRegister returns the first address of the parameter block
// of MultiSynth n, for n in 0..5.
func MultiSynthParamsRegister(n int) (uint8, error) {
	if err := checkClock(n, NumFractionalMultiSynths); err != nil {
		return 0, err
	}
	return uint8(RegMS0Params + n*ParamBlockSize), nil
}

// MultiSynth holds the contents of a MultiSynth parameter block.
type MultiSynth struct {
	Divider Divider
	RDiv    field.RDiv
	DivBy4  field.MSDivBy4
}

// EncodeMultiSynth packs a MultiSynth 0..5 parameter block including the
// R_DIV and MS_DIVBY4 fields.
//
// With divide-by-4 enabled the divider must be exactly 4 and the block is
// written as P1 = 0, P2 = 0, P3 = 1. Otherwise the divider must lie between
// MinMultiSynthDivider and MaxMultiSynthDivider, or be the integer 6.
func EncodeMultiSynth(ms MultiSynth) ([ParamBlockSize]byte, error) {
	var zero [ParamBlockSize]byte
	d := ms.Divider

	if !ms.RDiv.Valid() {
		return zero, &FieldError{Field: field.GroupRDiv, Value: uint32(ms.RDiv)}
	}
	if !ms.DivBy4.Valid() {
		return zero, &FieldError{Field: field.GroupMSDivBy4, Value: uint32(ms.DivBy4)}
	}

	hdr := ms.RDiv.Bits()<<rDivShift | ms.DivBy4.Bits()<<divBy4Shift

	if ms.DivBy4 == field.MSDivBy4Enable {
		if d.A != 4 || d.B != 0 {
			return zero, &DividerError{Stage: "MultiSynth", Divider: d,
				Reason: "divide-by-4 requires an integer divider of 4"}
		}
		return packParams(0, 0, 1, hdr), nil
	}

	if err := checkFraction("MultiSynth", d); err != nil {
		return zero, err
	}
	switch {
	case d.A == 4 && d.B == 0:
		return zero, &DividerError{Stage: "MultiSynth", Divider: d,
			Reason: "divide by 4 requires MS_DIVBY4 enabled"}
	case d.A == 6 && d.B == 0:
	case d.A < MinMultiSynthDivider || d.A > MaxMultiSynthDivider ||
		(d.A == MaxMultiSynthDivider && d.B != 0):
		return zero, &DividerError{Stage: "MultiSynth", Divider: d,
			Reason: fmt.Sprintf("ratio must be 4, 6 or %d-%d", MinMultiSynthDivider, MaxMultiSynthDivider)}
	}

	p1, p2, p3 := d.params()
	return packParams(p1, p2, p3, hdr), nil
}

// DecodeMultiSynth unpacks a MultiSynth 0..5 parameter block.
func DecodeMultiSynth(b [ParamBlockSize]byte) MultiSynth {
	ms := MultiSynth{
		RDiv:   field.RDiv(b[2] >> rDivShift & mask3),
		DivBy4: field.MSDivBy4(b[2] >> divBy4Shift & mask2),
	}
	if ms.DivBy4 == field.MSDivBy4Enable {
		ms.Divider = IntegerDivider(4)
		return ms
	}
	ms.Divider = dividerFromParams(unpackParams(b))
	return ms
}

// MS67ParamsRegister returns the address of the MultiSynth 6 or 7 divider.
func MS67ParamsRegister(n int) (uint8, error) {
	switch n {
	case 6:
		return RegMS6Params, nil
	case 7:
		return RegMS7Params, nil
	default:
		return 0, fmt.Errorf("%w: %d (valid 6-7)", ErrClockIndex, n)
	}
}

// EncodeMS67 packs the MultiSynth 6 or 7 divider, an even integer between
// MinMS67Divider and MaxMS67Divider.
func EncodeMS67(d Divider) (byte, error) {
	if d.B != 0 || d.A%2 != 0 || d.A < MinMS67Divider || d.A > MaxMS67Divider {
		return 0, &DividerError{Stage: "MS6/7", Divider: d,
			Reason: fmt.Sprintf("ratio must be an even integer %d-%d", MinMS67Divider, MaxMS67Divider)}
	}
	return byte(d.A), nil
}

// DecodeMS67 unpacks the MultiSynth 6 or 7 divider.
func DecodeMS67(b byte) Divider {
	return IntegerDivider(uint32(b))
}
