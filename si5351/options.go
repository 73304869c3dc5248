package si5351

import (
	"fmt"

	"github.com/moffa90/go-si5351/field"
	"github.com/moffa90/go-si5351/regmap"
)

// Option is a functional option for configuring a Config.
type Option func(*Config)

// OutputOption is a functional option for configuring one clock output.
type OutputOption func(*Output)

// WithCrystalLoad sets the internal crystal load capacitance.
// Default is field.DefaultXtalLoad (10 pF).
//
// Example:
//
//	cfg := si5351.New(si5351.WithCrystalLoad(field.XtalLoad8pF))
func WithCrystalLoad(x field.XtalLoad) Option {
	return func(c *Config) {
		c.XtalLoad = x
	}
}

// WithClkinDiv sets the CLKIN pre-divider (Si5351C only).
func WithClkinDiv(d field.ClkinDiv) Option {
	return func(c *Config) {
		c.ClkinDiv = d
	}
}

// WithPLLSource sets the reference input of a PLL.
// Default is field.DefaultPLLSource (crystal) for both PLLs.
//
// Example:
//
//	cfg := si5351.New(si5351.WithPLLSource(field.PLLB, field.PLLSourceClkin))
func WithPLLSource(p field.PLL, s field.PLLSource) Option {
	return func(c *Config) {
		if int(p) >= len(c.PLLSource) {
			c.setOptErr(&regmap.FieldError{Field: field.GroupPLL, Value: uint32(p)})
			return
		}
		c.PLLSource[p] = s
	}
}

// WithPLLDivider sets the feedback divider of a PLL. The divider is taken
// as given; choosing it for a target VCO frequency is up to the caller.
//
// Example:
//
//	// 25 MHz crystal * 36 = 900 MHz
//	cfg := si5351.New(si5351.WithPLLDivider(field.PLLA, regmap.IntegerDivider(36)))
func WithPLLDivider(p field.PLL, d regmap.Divider) Option {
	return func(c *Config) {
		if int(p) >= len(c.PLLDivider) {
			c.setOptErr(&regmap.FieldError{Field: field.GroupPLL, Value: uint32(p)})
			return
		}
		c.PLLDivider[p] = d
	}
}

// WithFanout sets the CLKIN, XO and MultiSynth fanout enables.
// Default is all disabled.
func WithFanout(f regmap.Fanouts) Option {
	return func(c *Config) {
		c.Fanout = f
	}
}

// WithOutput enables output clk and applies the output options to it. The
// output starts from enabled, powered, own MultiSynth fed by
// field.DefaultMSSource, 8 mA drive.
//
// Example:
//
//	cfg := si5351.New(
//	    si5351.WithOutput(0,
//	        si5351.FromPLL(field.PLLB),
//	        si5351.Divider(regmap.IntegerDivider(36)),
//	        si5351.Divide(field.RDiv4),
//	    ),
//	)
func WithOutput(clk int, opts ...OutputOption) Option {
	return func(c *Config) {
		if clk < 0 || clk >= len(c.Outputs) {
			c.setOptErr(fmt.Errorf("%w: %d", regmap.ErrClockIndex, clk))
			return
		}
		o := enabledOutput()
		for _, opt := range opts {
			opt(&o)
		}
		c.Outputs[clk] = o
	}
}

// WithLogger sets a logger for register packing.
//
// Example:
//
//	cfg := si5351.New(si5351.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// Drive sets the output driver strength.
func Drive(d field.DriveCurrent) OutputOption {
	return func(o *Output) {
		o.Drive = d
	}
}

// Source routes a signal to the output.
func Source(s field.ClockSource) OutputOption {
	return func(o *Output) {
		o.ClockSource = s
	}
}

// FromPLL selects the PLL feeding the output's MultiSynth.
func FromPLL(p field.PLL) OutputOption {
	return func(o *Output) {
		o.Source = p.Source()
	}
}

// Invert shifts the output by 180 degrees.
func Invert() OutputOption {
	return func(o *Output) {
		o.Inversion = field.Inverted
	}
}

// DisabledState sets the level driven while the output is disabled.
func DisabledState(s field.DisableState) OutputOption {
	return func(o *Output) {
		o.DisableState = s
	}
}

// Divider sets the MultiSynth divider of the output.
func Divider(d regmap.Divider) OutputOption {
	return func(o *Output) {
		o.Divider = d
	}
}

// Divide sets the R output divider.
func Divide(r field.RDiv) OutputOption {
	return func(o *Output) {
		o.RDiv = r
	}
}

// DivideBy4 selects the MultiSynth divide-by-4 path, used for outputs above
// 150 MHz. It replaces any divider set before it.
func DivideBy4() OutputOption {
	return func(o *Output) {
		o.Divider = regmap.IntegerDivider(4)
		o.DivBy4 = field.MSDivBy4Enable
	}
}

// Phase sets the initial phase offset of the output.
func Phase(p field.PhaseOffset) OutputOption {
	return func(o *Output) {
		o.Phase = p
	}
}

// Disabled leaves the output powered but disabled through OEB.
func Disabled() OutputOption {
	return func(o *Output) {
		o.Enable = field.OutputDisabled
	}
}

// PoweredDown disables the output and gates its driver.
func PoweredDown() OutputOption {
	return func(o *Output) {
		o.Enable = field.OutputDisabled
		o.Power = field.PowerOff
	}
}
