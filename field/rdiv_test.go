package field

import (
	"math"
	"testing"
)

func TestRDivCodeIsLog2(t *testing.T) {
	codes := []RDiv{RDiv1, RDiv2, RDiv4, RDiv8, RDiv16, RDiv32, RDiv64, RDiv128}
	for k, r := range codes {
		if int(r) != k {
			t.Errorf("code for ratio %d = %d, want %d", 1<<k, r, k)
		}
		if r.Ratio() != 1<<k {
			t.Errorf("%v.Ratio() = %d, want %d", r, r.Ratio(), 1<<k)
		}
	}
}

func TestRDivForRatio(t *testing.T) {
	tests := []struct {
		ratio   int
		want    RDiv
		wantErr bool
	}{
		{ratio: 1, want: RDiv1},
		{ratio: 2, want: RDiv2},
		{ratio: 64, want: RDiv64},
		{ratio: 128, want: RDiv128},
		{ratio: 0, wantErr: true},
		{ratio: -4, wantErr: true},
		{ratio: 3, wantErr: true},
		{ratio: 96, wantErr: true},
		{ratio: 256, wantErr: true},
	}

	for _, tt := range tests {
		got, err := RDivForRatio(tt.ratio)
		if tt.wantErr {
			if !IsRatioError(err) {
				t.Errorf("RDivForRatio(%d) error = %v, want RatioError", tt.ratio, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("RDivForRatio(%d) unexpected error: %v", tt.ratio, err)
			continue
		}
		if got != tt.want {
			t.Errorf("RDivForRatio(%d) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestNearestRDiv(t *testing.T) {
	tests := []struct {
		name    string
		ratio   float64
		want    RDiv
		wantErr bool
	}{
		{name: "exact", ratio: 16, want: RDiv16},
		{name: "round down", ratio: 5, want: RDiv4},
		{name: "round up", ratio: 7, want: RDiv8},
		{name: "tie goes low", ratio: 6, want: RDiv4},
		{name: "just above tie", ratio: 6.01, want: RDiv8},
		{name: "near max", ratio: 127.5, want: RDiv128},
		{name: "one", ratio: 1, want: RDiv1},
		{name: "below one", ratio: 0.9, wantErr: true},
		{name: "above max", ratio: 128.1, wantErr: true},
		{name: "NaN", ratio: math.NaN(), wantErr: true},
		{name: "infinite", ratio: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NearestRDiv(tt.ratio)
			if tt.wantErr {
				if !IsRatioError(err) {
					t.Fatalf("error = %v, want RatioError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NearestRDiv(%g) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestRatioErrorMessage(t *testing.T) {
	err := &RatioError{Ratio: 3}
	want := "unsupported output divider ratio 3: must be a power of two from 1 to 128"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
