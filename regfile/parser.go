package regfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/moffa90/go-si5351/regmap"
)

// Constants for register map file parsing.
const (
	// CommentPrefix starts a comment line
	CommentPrefix = "#"

	// HeaderLine is the optional column header
	HeaderLine = "Address,Data"

	// FieldSeparator separates the address and data columns
	FieldSeparator = ","
)

// Parse parses a register map file from the given file path.
// Returns the register image or an error if parsing fails.
//
// Example:
//
//	img, err := regfile.Parse("Si5351-RevB-Registers.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d registers\n", img.Len())
func Parse(path string) (*regmap.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a register map from any io.Reader.
//
// Each data line holds one register:
//
//	ADDRESS,DATA
//
// ADDRESS is decimal or 0x-prefixed hex. DATA is hex with an "h" suffix
// (as ClockBuilder Pro writes it), 0x-prefixed hex, or decimal. Blank lines,
// lines starting with '#' and the "Address,Data" header are skipped.
// An address may appear only once.
func ParseReader(r io.Reader) (*regmap.Image, error) {
	scanner := bufio.NewScanner(r)
	img := regmap.NewImage()

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		if strings.EqualFold(strings.ReplaceAll(line, " ", ""), HeaderLine) {
			continue
		}

		addr, value, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if img.Has(addr) {
			return nil, fmt.Errorf("line %d: duplicate address %d", lineNum, addr)
		}
		img.Set(addr, value)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if img.Len() == 0 {
		return nil, fmt.Errorf("no registers found in file")
	}

	return img, nil
}

// parseLine parses one "ADDRESS,DATA" line.
func parseLine(line string) (uint8, byte, error) {
	parts := strings.Split(line, FieldSeparator)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected ADDRESS%sDATA, got %q", FieldSeparator, line)
	}

	addr, err := parseNumber(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid address: %w", err)
	}
	if addr >= regmap.NumRegisters {
		return 0, 0, fmt.Errorf("address %d out of range (0-%d)", addr, regmap.NumRegisters-1)
	}

	value, err := parseNumber(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid data: %w", err)
	}
	if value > 0xFF {
		return 0, 0, fmt.Errorf("data 0x%X does not fit in a byte", value)
	}

	return uint8(addr), byte(value), nil
}

// parseNumber accepts "12", "0x0C" and "0Ch".
func parseNumber(s string) (uint64, error) {
	switch {
	case s == "":
		return 0, fmt.Errorf("empty value")
	case strings.HasSuffix(s, "h") || strings.HasSuffix(s, "H"):
		return strconv.ParseUint(s[:len(s)-1], 16, 16)
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		return strconv.ParseUint(s[2:], 16, 16)
	default:
		return strconv.ParseUint(s, 10, 16)
	}
}
