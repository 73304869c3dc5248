package si5351

import (
	"fmt"

	"github.com/moffa90/go-si5351/field"
	"github.com/moffa90/go-si5351/regmap"
)

// Output holds the configuration of one clock output.
type Output struct {
	// Enable is the active-low output enable
	Enable field.OutputEnable

	// Power gates the output driver
	Power field.PowerDown

	// Source selects the PLL feeding the MultiSynth
	Source field.MSSource

	// ClockSource selects the signal routed to the output pin
	ClockSource field.ClockSource

	// Drive is the output driver strength
	Drive field.DriveCurrent

	// Inversion selects the output polarity
	Inversion field.Inversion

	// DisableState is the level driven while disabled
	DisableState field.DisableState

	// Divider is the MultiSynth divider. The zero value leaves the
	// MultiSynth parameter registers out of the image.
	Divider regmap.Divider

	// RDiv is the power-of-two output divider
	RDiv field.RDiv

	// DivBy4 selects the divide-by-4 path
	DivBy4 field.MSDivBy4

	// Phase is the initial phase offset (CLK0..CLK5 only)
	Phase field.PhaseOffset
}

// Config is a complete Si5351 configuration. Build one with New and turn it
// into register values with Image.
type Config struct {
	// XtalLoad is the internal crystal load capacitance
	XtalLoad field.XtalLoad

	// ClkinDiv is the CLKIN pre-divider
	ClkinDiv field.ClkinDiv

	// PLLSource is the reference input of PLL A and PLL B, indexed by field.PLL
	PLLSource [2]field.PLLSource

	// PLLDivider is the feedback divider of PLL A and PLL B, indexed by
	// field.PLL. A zero divider leaves the PLL registers out of the image.
	PLLDivider [2]regmap.Divider

	// Fanout holds the fanout buffer enables
	Fanout regmap.Fanouts

	// Outputs holds CLK0..CLK7
	Outputs [regmap.NumClocks]Output

	// Logger is used for logging register packing (optional)
	Logger Logger

	optErr error
}

// defaultConfig returns the default configuration: catalog defaults for the
// crystal and PLLs, every fanout off, every output disabled and powered down.
func defaultConfig() Config {
	c := Config{
		XtalLoad:  field.DefaultXtalLoad,
		ClkinDiv:  field.ClkinDiv1,
		PLLSource: [2]field.PLLSource{field.DefaultPLLSource, field.DefaultPLLSource},
	}
	for i := range c.Outputs {
		c.Outputs[i] = disabledOutput()
	}
	return c
}

// enabledOutput is the starting point of an output configured by WithOutput.
func enabledOutput() Output {
	return Output{
		Enable:       field.OutputEnabled,
		Power:        field.PowerOn,
		Source:       field.DefaultMSSource,
		ClockSource:  field.ClockSourceMS,
		Drive:        field.Drive8mA,
		Inversion:    field.NotInverted,
		DisableState: field.DisableLow,
		RDiv:         field.RDiv1,
		DivBy4:       field.MSDivBy4Disable,
		Phase:        field.PhaseOffsetZero,
	}
}

// disabledOutput is the state of an output nobody configured.
func disabledOutput() Output {
	o := enabledOutput()
	o.Enable = field.OutputDisabled
	o.Power = field.PowerOff
	o.Drive = field.Drive2mA
	return o
}

// New creates a Config from the defaults and the given options.
//
// Example:
//
//	cfg := si5351.New(
//	    si5351.WithCrystalLoad(field.XtalLoad8pF),
//	    si5351.WithPLLDivider(field.PLLA, regmap.IntegerDivider(36)),
//	    si5351.WithOutput(0, si5351.Divider(regmap.IntegerDivider(90))),
//	)
//	img, err := cfg.Image()
func New(opts ...Option) *Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

func (c *Config) setOptErr(err error) {
	if c.optErr == nil {
		c.optErr = err
	}
}

// Validate checks the constraints that span several fields and therefore
// cannot be caught by the encoders of package regmap:
//   - divide-by-4 is only available on MultiSynth 0..5, needs an integer
//     divider of 4 and an R divider of 1
//   - outputs 0..5 keep R_DIV and MS_DIVBY4 in the MultiSynth block, so
//     setting either requires a MultiSynth divider
//   - only outputs 0..5 have a phase offset register
func (c *Config) Validate() error {
	if c.optErr != nil {
		return c.optErr
	}

	for clk, o := range c.Outputs {
		if err := validateOutput(clk, o); err != nil {
			return &OutputError{Clock: clk, Err: err}
		}
	}
	return nil
}

func validateOutput(clk int, o Output) error {
	fractional := clk < regmap.NumFractionalMultiSynths

	if o.DivBy4 == field.MSDivBy4Enable {
		switch {
		case !fractional:
			return fmt.Errorf("%w: not available on MultiSynth %d", ErrDivBy4, clk)
		case o.Divider.A != 4 || o.Divider.B != 0:
			return fmt.Errorf("%w: divider %s, want 4", ErrDivBy4, o.Divider)
		case o.RDiv != field.RDiv1:
			return fmt.Errorf("%w: R divider %s, want div1", ErrDivBy4, o.RDiv)
		}
	}

	if fractional && o.Divider.IsZero() && (o.RDiv != field.RDiv1 || o.DivBy4 != field.MSDivBy4Disable) {
		return fmt.Errorf("%w: R_DIV and MS_DIVBY4 live in the MultiSynth %d block", ErrNoDivider, clk)
	}

	if !fractional && o.Phase != field.PhaseOffsetZero {
		return ErrPhaseOffset
	}
	return nil
}

// integerMode reports the value of bit 6 of the control register of clk. For
// CLK0..CLK5 it is MSx_INT; for CLK6 and CLK7 the bit is FBA_INT and FBB_INT.
func (c *Config) integerMode(clk int, o Output) bool {
	switch clk {
	case 6:
		d := c.PLLDivider[field.PLLA]
		return !d.IsZero() && d.IsInteger()
	case 7:
		d := c.PLLDivider[field.PLLB]
		return !d.IsZero() && d.IsInteger()
	default:
		return !o.Divider.IsZero() && o.Divider.IsInteger()
	}
}

// Image validates the configuration and packs it into register values.
//
// The image always contains the output enable, PLL input source, CLKx
// control, disable state, R6/R7 divider, phase offset, crystal load and
// fanout registers. PLL and MultiSynth parameter blocks are included only
// for dividers that are set.
func (c *Config) Image() (*regmap.Image, error) {
	if err := c.Validate(); err != nil {
		c.logError("invalid configuration", "error", err)
		return nil, err
	}

	img := regmap.NewImage()

	var oeb [regmap.NumClocks]field.OutputEnable
	for clk, o := range c.Outputs {
		oeb[clk] = o.Enable
	}
	b, err := regmap.EncodeOutputEnable(oeb)
	if err != nil {
		return nil, fmt.Errorf("output enable: %w", err)
	}
	img.Set(regmap.RegOutputEnable, b)

	b, err = regmap.EncodePLLInputSource(regmap.PLLInput{
		ClkinDiv: c.ClkinDiv,
		PLLA:     c.PLLSource[field.PLLA],
		PLLB:     c.PLLSource[field.PLLB],
	})
	if err != nil {
		return nil, fmt.Errorf("PLL input source: %w", err)
	}
	img.Set(regmap.RegPLLInputSource, b)

	for p, d := range c.PLLDivider {
		if d.IsZero() {
			continue
		}
		block, err := regmap.EncodePLL(d)
		if err != nil {
			return nil, fmt.Errorf("PLL %s: %w", field.PLL(p), err)
		}
		addr, _ := regmap.PLLParamsRegister(field.PLL(p))
		img.SetBlock(addr, block)
		c.logDebug("packed PLL", "pll", field.PLL(p).String(), "divider", d.String())
	}

	var disState [2]byte
	for clk, o := range c.Outputs {
		if err := c.packOutput(img, clk, o); err != nil {
			return nil, &OutputError{Clock: clk, Err: err}
		}
		reg := &disState[clk/4]
		if *reg, err = regmap.SetDisableState(*reg, clk, o.DisableState); err != nil {
			return nil, &OutputError{Clock: clk, Err: err}
		}
	}
	img.Set(regmap.RegCLK30DisableState, disState[0])
	img.Set(regmap.RegCLK74DisableState, disState[1])

	b, err = regmap.EncodeR67(c.Outputs[6].RDiv, c.Outputs[7].RDiv)
	if err != nil {
		return nil, fmt.Errorf("R6/R7 divider: %w", err)
	}
	img.Set(regmap.RegR67Div, b)

	b, err = regmap.EncodeCrystalLoad(c.XtalLoad)
	if err != nil {
		return nil, fmt.Errorf("crystal load: %w", err)
	}
	img.Set(regmap.RegCrystalLoad, b)

	b, err = regmap.EncodeFanout(c.Fanout)
	if err != nil {
		return nil, fmt.Errorf("fanout: %w", err)
	}
	img.Set(regmap.RegFanoutEnable, b)

	c.logInfo("packed register image", "registers", img.Len())
	return img, nil
}

// packOutput writes the control, MultiSynth and phase offset registers of
// one output.
func (c *Config) packOutput(img *regmap.Image, clk int, o Output) error {
	ctrl, err := regmap.EncodeControl(regmap.Control{
		PowerDown:   o.Power,
		IntegerMode: c.integerMode(clk, o),
		Source:      o.Source,
		Inversion:   o.Inversion,
		ClockSource: o.ClockSource,
		Drive:       o.Drive,
	})
	if err != nil {
		return err
	}
	addr, err := regmap.ControlRegister(clk)
	if err != nil {
		return err
	}
	img.Set(addr, ctrl)

	if clk >= regmap.NumFractionalMultiSynths {
		if o.Divider.IsZero() {
			return nil
		}
		b, err := regmap.EncodeMS67(o.Divider)
		if err != nil {
			return err
		}
		addr, err := regmap.MS67ParamsRegister(clk)
		if err != nil {
			return err
		}
		img.Set(addr, b)
		c.logDebug("packed output", "clk", clk, "ctrl", fmt.Sprintf("0x%02X", ctrl), "divider", o.Divider.String())
		return nil
	}

	if !o.Divider.IsZero() {
		block, err := regmap.EncodeMultiSynth(regmap.MultiSynth{
			Divider: o.Divider,
			RDiv:    o.RDiv,
			DivBy4:  o.DivBy4,
		})
		if err != nil {
			return err
		}
		addr, err := regmap.MultiSynthParamsRegister(clk)
		if err != nil {
			return err
		}
		img.SetBlock(addr, block)
	}

	ph, err := regmap.EncodePhaseOffset(o.Phase)
	if err != nil {
		return err
	}
	addr, err = regmap.PhaseOffsetRegister(clk)
	if err != nil {
		return err
	}
	img.Set(addr, ph)

	c.logDebug("packed output", "clk", clk, "ctrl", fmt.Sprintf("0x%02X", ctrl), "divider", o.Divider.String())
	return nil
}

// requiredRegisters lists the registers Decode cannot do without.
var requiredRegisters = []uint8{
	regmap.RegOutputEnable,
	regmap.RegPLLInputSource,
	regmap.RegCLK30DisableState,
	regmap.RegCLK74DisableState,
	regmap.RegCrystalLoad,
	regmap.RegFanoutEnable,
}

// Decode rebuilds a Config from a register image, e.g. one read back from a
// device or loaded with package regfile. Optional registers that are absent
// decode to their defaults. The returned Config is not validated.
//
// Bit 6 of the CLKx control registers (MSx_INT, or FBA_INT/FBB_INT for CLK6
// and CLK7) is not kept. Image sets it whenever the matching divider has no
// fractional part, so an image that leaves it clear on an integer divider is
// not reproduced byte for byte.
func Decode(img *regmap.Image) (*Config, error) {
	for _, addr := range requiredRegisters {
		if !img.Has(addr) {
			return nil, fmt.Errorf("%w: %d", ErrMissingRegister, addr)
		}
	}
	for clk := 0; clk < regmap.NumClocks; clk++ {
		addr, _ := regmap.ControlRegister(clk)
		if !img.Has(addr) {
			return nil, fmt.Errorf("%w: %d", ErrMissingRegister, addr)
		}
	}

	get := func(addr uint8) byte {
		v, _ := img.Get(addr)
		return v
	}

	cfg := defaultConfig()
	cfg.XtalLoad = regmap.DecodeCrystalLoad(get(regmap.RegCrystalLoad))
	cfg.Fanout = regmap.DecodeFanout(get(regmap.RegFanoutEnable))

	in := regmap.DecodePLLInputSource(get(regmap.RegPLLInputSource))
	cfg.ClkinDiv = in.ClkinDiv
	cfg.PLLSource = [2]field.PLLSource{in.PLLA, in.PLLB}

	for _, p := range []field.PLL{field.PLLA, field.PLLB} {
		addr, _ := regmap.PLLParamsRegister(p)
		if block, ok := img.Block(addr); ok {
			cfg.PLLDivider[p] = regmap.DecodePLL(block)
		}
	}

	oeb := regmap.DecodeOutputEnable(get(regmap.RegOutputEnable))
	r6, r7 := regmap.DecodeR67(get(regmap.RegR67Div))

	for clk := range cfg.Outputs {
		addr, _ := regmap.ControlRegister(clk)
		ctrl := regmap.DecodeControl(get(addr))
		disAddr, _ := regmap.DisableStateRegister(clk)

		o := Output{
			Enable:       oeb[clk],
			Power:        ctrl.PowerDown,
			Source:       ctrl.Source,
			ClockSource:  ctrl.ClockSource,
			Drive:        ctrl.Drive,
			Inversion:    ctrl.Inversion,
			DisableState: regmap.DisableStateOf(get(disAddr), clk),
			RDiv:         field.RDiv1,
			DivBy4:       field.MSDivBy4Disable,
			Phase:        field.PhaseOffsetZero,
		}

		switch {
		case clk < regmap.NumFractionalMultiSynths:
			msAddr, _ := regmap.MultiSynthParamsRegister(clk)
			if block, ok := img.Block(msAddr); ok {
				ms := regmap.DecodeMultiSynth(block)
				o.Divider, o.RDiv, o.DivBy4 = ms.Divider, ms.RDiv, ms.DivBy4
			}
			phAddr, _ := regmap.PhaseOffsetRegister(clk)
			o.Phase = regmap.DecodePhaseOffset(get(phAddr))
		default:
			msAddr, _ := regmap.MS67ParamsRegister(clk)
			if v, ok := img.Get(msAddr); ok {
				o.Divider = regmap.DecodeMS67(v)
			}
			if clk == 6 {
				o.RDiv = r6
			} else {
				o.RDiv = r7
			}
		}

		cfg.Outputs[clk] = o
	}

	return &cfg, nil
}
