package regmap

// Register is one register address and its value.
type Register struct {
	Addr  uint8
	Value byte
}

// Image is a snapshot of register values keyed by address. It records which
// registers have been set but says nothing about the order they should be
// written in.
//
// The zero value is an empty image ready to use.
type Image struct {
	regs [NumRegisters]byte
	set  [NumRegisters]bool
	n    int
}

// NewImage returns an empty image.
func NewImage() *Image {
	return &Image{}
}

// Set stores v at addr.
func (m *Image) Set(addr uint8, v byte) {
	if !m.set[addr] {
		m.set[addr] = true
		m.n++
	}
	m.regs[addr] = v
}

// SetBlock stores a parameter block starting at addr.
func (m *Image) SetBlock(addr uint8, b [ParamBlockSize]byte) {
	for i, v := range b {
		m.Set(addr+uint8(i), v)
	}
}

// Get returns the value at addr and whether it has been set.
func (m *Image) Get(addr uint8) (byte, bool) {
	return m.regs[addr], m.set[addr]
}

// Block returns the parameter block starting at addr. ok is false unless
// every byte of the block has been set.
func (m *Image) Block(addr uint8) (b [ParamBlockSize]byte, ok bool) {
	for i := range b {
		a := int(addr) + i
		if a >= NumRegisters || !m.set[a] {
			return b, false
		}
		b[i] = m.regs[a]
	}
	return b, true
}

// Has reports whether addr has been set.
func (m *Image) Has(addr uint8) bool {
	return m.set[addr]
}

// Len returns the number of registers set.
func (m *Image) Len() int {
	return m.n
}

// Registers returns every set register in ascending address order.
func (m *Image) Registers() []Register {
	out := make([]Register, 0, m.n)
	for a := 0; a < NumRegisters; a++ {
		if m.set[a] {
			out = append(out, Register{Addr: uint8(a), Value: m.regs[a]})
		}
	}
	return out
}
