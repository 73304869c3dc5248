package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moffa90/go-si5351/field"
	"github.com/moffa90/go-si5351/regmap"
	"github.com/moffa90/go-si5351/si5351"
)

// capture redirects stdout into a buffer for the duration of the test.
func capture(t *testing.T, tty bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldErr, oldTTY := stdout, stderr, isTerminal
	stdout, stderr = &buf, &buf
	isTerminal = func() bool { return tty }
	t.Cleanup(func() {
		stdout, stderr, isTerminal = oldOut, oldErr, oldTTY
	})
	return &buf
}

func TestParseAssignments(t *testing.T) {
	opts, err := parseAssignments([]string{
		"plla-div=36",
		"clk0.div=100",
		"CLK0.RDIV=div64",
		"clk3.drive=4mA", "clk3.pll=PLLB", "clk3.inv=inverted", "clk3.src=XTAL", "clk3.oeb=disable", "clk3.dis=highz",
		"xtal-cl=6pF",
		"pllb-src=CLKIN",
		"clkin-div=div8",
		"fanout=xtal,ms",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := si5351.New(opts...)
	if cfg.XtalLoad != field.XtalLoad6pF {
		t.Errorf("XtalLoad = %v, want 6pF", cfg.XtalLoad)
	}
	if cfg.PLLDivider[field.PLLA] != regmap.IntegerDivider(36) {
		t.Errorf("PLL A divider = %v", cfg.PLLDivider[field.PLLA])
	}

	img, err := cfg.Image()
	if err != nil {
		t.Fatalf("Image() unexpected error: %v", err)
	}
	for _, tt := range []struct {
		addr uint8
		want byte
	}{
		{regmap.RegCrystalLoad, 0x52},
		{regmap.RegPLLInputSource, 0xC8},
		{regmap.RegFanoutEnable, 0x50},
		{regmap.RegOutputEnable, 0xFE},
		{16, 0x4F},
		{19, 0x31},
		{regmap.RegCLK30DisableState, 0x80},
		{44, 0x60},
	} {
		if got, _ := img.Get(tt.addr); got != tt.want {
			t.Errorf("register %d = 0x%02X, want 0x%02X", tt.addr, got, tt.want)
		}
	}
}

func TestParseAssignmentsErrors(t *testing.T) {
	tests := []struct {
		name    string
		assign  string
		wantErr error
		errMsg  string
	}{
		{name: "missing value", assign: "clk0.drive", errMsg: "expected KEY=VALUE"},
		{name: "empty value", assign: "clk0.drive=", errMsg: "expected KEY=VALUE"},
		{name: "clock out of range", assign: "clk8.drive=2mA", wantErr: regmap.ErrClockIndex},
		{name: "unknown code", assign: "clk0.drive=3mA", wantErr: field.ErrUnknownCode},
		{name: "unknown output key", assign: "clk0.speed=fast", errMsg: "unknown key"},
		{name: "unknown global key", assign: "speed=fast", errMsg: "unknown key"},
		{name: "bad divider", assign: "clk0.div=1+2", errMsg: "want A+B/C"},
		{name: "bad phase", assign: "clk0.phase=200", errMsg: "invalid CLK_PHOFF"},
		{name: "bad fanout", assign: "fanout=pll", errMsg: "unknown fanout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAssignments([]string{tt.assign})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %v, want substring %q", err, tt.errMsg)
			}
		})
	}
}

func TestParseDivider(t *testing.T) {
	tests := []struct {
		in      string
		want    regmap.Divider
		wantErr bool
	}{
		{in: "36", want: regmap.IntegerDivider(36)},
		{in: "36+1/3", want: regmap.Divider{A: 36, B: 1, C: 3}},
		{in: "36+0/5", want: regmap.Divider{A: 36, B: 0, C: 5}},
		{in: "x", wantErr: true},
		{in: "36+1", wantErr: true},
		{in: "36+a/3", wantErr: true},
		{in: "36+1/c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDivider(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDivider(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseDivider(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if s := formatDivider(got); s != tt.in {
				t.Errorf("formatDivider() = %q, want %q", s, tt.in)
			}
		})
	}
}

func TestFanout(t *testing.T) {
	for _, s := range []string{"none", "clkin", "xtal,ms", "clkin,xtal,ms"} {
		f, err := parseFanout(s)
		if err != nil {
			t.Fatalf("parseFanout(%q) unexpected error: %v", s, err)
		}
		if got := formatFanout(f); got != s {
			t.Errorf("formatFanout(parseFanout(%q)) = %q", s, got)
		}
	}
}

func TestReadScript(t *testing.T) {
	script := "# PLL A at 900 MHz\nplla-div=36\n\nclk0.div=100 'clk0.drive=4mA' # 9 MHz\n"
	got, err := readScript(strings.NewReader(script))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"plla-div=36", "clk0.div=100", "clk0.drive=4mA"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("readScript() = %q, want %q", got, want)
	}

	if _, err := readScript(strings.NewReader("clk0.drive='4mA\n")); err == nil {
		t.Error("expected error for unterminated quote")
	}
}

func TestRun(t *testing.T) {
	buf := capture(t, false)

	if err := run(); err == nil {
		t.Error("expected error for missing command")
	}
	if err := run("frobnicate"); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("run(frobnicate) = %v", err)
	}
	if err := run("help"); err != nil {
		t.Fatalf("run(help) unexpected error: %v", err)
	}
	for _, c := range commands {
		if !strings.Contains(buf.String(), c.Usage()) {
			t.Errorf("usage should mention %q", c.Usage())
		}
	}
}

func TestCatalogCommand(t *testing.T) {
	buf := capture(t, true)

	if err := run("catalog"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, s := range []string{"GROUP", "CLK_IDRV", "8mA", "0b11", "R_DIV", "div128", "0b111"} {
		if !strings.Contains(out, s) {
			t.Errorf("catalog output missing %q", s)
		}
	}

	if err := run("catalog", "extra"); err == nil {
		t.Error("expected error for extra argument")
	}
}

func TestEncodeCommand(t *testing.T) {
	t.Run("register file", func(t *testing.T) {
		buf := capture(t, false)
		if err := run("encode", "plla-div=36", "clk0.div=100"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, s := range []string{"Address,Data\n", "\n3,FEh\n", "\n16,4Fh\n", "\n183,D2h\n"} {
			if !strings.Contains(out, s) {
				t.Errorf("output missing %q:\n%s", s, out)
			}
		}
	})

	t.Run("table", func(t *testing.T) {
		buf := capture(t, true)
		if err := run("encode", "clk0.div=100"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "ADDR") || !strings.Contains(buf.String(), "0x4F") {
			t.Errorf("unexpected table:\n%s", buf.String())
		}
	})

	t.Run("quiet", func(t *testing.T) {
		buf := capture(t, false)
		if err := run("encode", "-q", "-xtal-cl", "8pF", "clk0.div=100"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("quiet encode printed %q", buf.String())
		}
	})

	t.Run("crystal load flag", func(t *testing.T) {
		buf := capture(t, false)
		if err := run("encode", "-xtal-cl", "6pF"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n183,52h\n") {
			t.Errorf("output missing crystal load:\n%s", buf.String())
		}
	})

	t.Run("verbose", func(t *testing.T) {
		buf := capture(t, false)
		if err := run("encode", "-v", "-q", "plla-div=36"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "INFO packed register image") {
			t.Errorf("verbose encode should log, got %q", buf.String())
		}
	})

	t.Run("invalid configuration", func(t *testing.T) {
		capture(t, false)
		err := run("encode", "clk6.divby4=enable")
		if !si5351.IsOutputError(err) {
			t.Errorf("error = %v, want OutputError", err)
		}
	})

	t.Run("missing script", func(t *testing.T) {
		capture(t, false)
		if err := run("encode", "-f", filepath.Join(t.TempDir(), "missing")); err == nil {
			t.Error("expected error for missing script")
		}
	})
}

func TestDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	regs := filepath.Join(dir, "regs.txt")
	script := filepath.Join(dir, "script.txt")

	buf := capture(t, false)
	if err := run("encode",
		"plla-div=36", "pllb-div=32+1/2", "fanout=ms",
		"clk0.div=100", "clk0.rdiv=div4", "clk0.phase=12",
		"clk1.pll=PLLB", "clk1.divby4=enable",
		"clk2.div=50+3/7", "clk2.inv=inverted", "clk2.oeb=disable",
		"clk6.div=20", "clk6.rdiv=div8", "clk6.drive=6mA",
	); err != nil {
		t.Fatalf("encode unexpected error: %v", err)
	}
	first := buf.String()
	if err := os.WriteFile(regs, []byte(first), 0o644); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := run("decode", regs); err != nil {
		t.Fatalf("decode unexpected error: %v", err)
	}
	decoded := buf.String()
	for _, s := range []string{"plla-div=36\n", "pllb-div=32+1/2\n", "fanout=ms\n", "clk0.div=100", "clk2.div=50+3/7", "clk6.rdiv=div8"} {
		if !strings.Contains(decoded, s) {
			t.Errorf("decoded script missing %q:\n%s", s, decoded)
		}
	}
	if err := os.WriteFile(script, []byte(decoded), 0o644); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := run("encode", "-f", script); err != nil {
		t.Fatalf("re-encode unexpected error: %v", err)
	}
	if buf.String() != first {
		t.Errorf("re-encoded register file differs\nfirst:\n%s\nsecond:\n%s", first, buf.String())
	}
}

func TestDecodeKeepsDenominator(t *testing.T) {
	dir := t.TempDir()
	regs := filepath.Join(dir, "regs.txt")
	script := filepath.Join(dir, "script.txt")

	buf := capture(t, false)
	if err := run("encode", "plla-div=36+0/5", "clk0.div=100+0/3"); err != nil {
		t.Fatalf("encode unexpected error: %v", err)
	}
	first := buf.String()
	for _, s := range []string{"\n27,05h\n", "\n43,03h\n"} {
		if !strings.Contains(first, s) {
			t.Fatalf("register file missing %q:\n%s", s, first)
		}
	}
	if err := os.WriteFile(regs, []byte(first), 0o644); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := run("decode", regs); err != nil {
		t.Fatalf("decode unexpected error: %v", err)
	}
	decoded := buf.String()
	for _, s := range []string{"plla-div=36+0/5\n", "clk0.div=100+0/3"} {
		if !strings.Contains(decoded, s) {
			t.Errorf("decoded script missing %q:\n%s", s, decoded)
		}
	}
	if err := os.WriteFile(script, []byte(decoded), 0o644); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := run("encode", "-f", script); err != nil {
		t.Fatalf("re-encode unexpected error: %v", err)
	}
	if buf.String() != first {
		t.Errorf("re-encoded register file differs\nfirst:\n%s\nsecond:\n%s", first, buf.String())
	}
}

func TestDecodeCommandErrors(t *testing.T) {
	capture(t, false)

	if err := run("decode"); err == nil {
		t.Error("expected error for missing file")
	}
	if err := run("decode", "a", "b"); err == nil {
		t.Error("expected error for extra argument")
	}

	partial := filepath.Join(t.TempDir(), "partial.txt")
	if err := os.WriteFile(partial, []byte("3,FFh\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run("decode", partial); !errors.Is(err, si5351.ErrMissingRegister) {
		t.Errorf("error = %v, want ErrMissingRegister", err)
	}
}

func TestDecodeTable(t *testing.T) {
	dir := t.TempDir()
	regs := filepath.Join(dir, "regs.txt")

	buf := capture(t, false)
	if err := run("encode", "clk0.div=100"); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(regs, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	buf = capture(t, true)
	if err := run("decode", regs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"XTAL_CL", "10pF", "MS_SRC", "PHOFF"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("table missing %q:\n%s", s, buf.String())
		}
	}
}
