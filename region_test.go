package escp

import (
	"errors"
	"math"
	"testing"
)

func TestNewRegion(t *testing.T) {
	type tc struct {
		x, y, width, height int
		wantErr             error
	}

	tests := map[string]tc{
		"valid": {
			x: 0, y: 0, width: 80, height: 25,
		},
		"exact page": {
			x: 0, y: 0, width: 160, height: 51,
		},
		"bottom right cell": {
			x: 159, y: 50, width: 1, height: 1,
		},
		"one column too wide": {
			x: 0, y: 0, width: 161, height: 51,
			wantErr: &RegionOutOfBoundsError{X: 0, Y: 0, Width: 161, Height: 51},
		},
		"one row too tall": {
			x: 0, y: 0, width: 160, height: 52,
			wantErr: &RegionOutOfBoundsError{X: 0, Y: 0, Width: 160, Height: 52},
		},
		"offset pushes out": {
			x: 100, y: 0, width: 80, height: 25,
			wantErr: &RegionOutOfBoundsError{X: 100, Y: 0, Width: 80, Height: 25},
		},
		"negative position": {
			x: -1, y: 0, width: 10, height: 10,
			wantErr: &RegionOutOfBoundsError{X: -1, Y: 0, Width: 10, Height: 10},
		},
		"zero width": {
			x: 0, y: 0, width: 0, height: 10,
			wantErr: &InvalidDimensionsError{Width: 0, Height: 10},
		},
		"zero height": {
			x: 0, y: 0, width: 10, height: 0,
			wantErr: &InvalidDimensionsError{Width: 10, Height: 0},
		},
		"overflowing arithmetic": {
			x: math.MaxInt, y: 0, width: 1, height: 1,
			wantErr: &RegionOutOfBoundsError{X: math.MaxInt, Y: 0, Width: 1, Height: 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := NewRegion(tt.x, tt.y, tt.width, tt.height)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("NewRegion() error = %v, want nil", err)
				}
				if r.X() != tt.x || r.Y() != tt.y || r.Width() != tt.width || r.Height() != tt.height {
					t.Errorf("NewRegion() = (%d,%d %dx%d), want (%d,%d %dx%d)",
						r.X(), r.Y(), r.Width(), r.Height(), tt.x, tt.y, tt.width, tt.height)
				}
				return
			}
			if err == nil {
				t.Fatal("NewRegion() error = nil, want error")
			}
			switch want := tt.wantErr.(type) {
			case *RegionOutOfBoundsError:
				var got *RegionOutOfBoundsError
				if !errors.As(err, &got) {
					t.Fatalf("error = %v, want *RegionOutOfBoundsError", err)
				}
				if *got != *want {
					t.Errorf("error = %+v, want %+v", got, want)
				}
			case *InvalidDimensionsError:
				var got *InvalidDimensionsError
				if !errors.As(err, &got) {
					t.Fatalf("error = %v, want *InvalidDimensionsError", err)
				}
				if *got != *want {
					t.Errorf("error = %+v, want %+v", got, want)
				}
			}
		})
	}
}

func TestFullPage(t *testing.T) {
	r := FullPage()
	if r.X() != 0 || r.Y() != 0 || r.Width() != PageWidth || r.Height() != PageHeight {
		t.Errorf("FullPage() = (%d,%d %dx%d), want (0,0 160x51)", r.X(), r.Y(), r.Width(), r.Height())
	}
}

func TestRegion_SplitVertical(t *testing.T) {
	full := FullPage()

	top, bottom, err := full.SplitVertical(10)
	if err != nil {
		t.Fatalf("SplitVertical(10) error = %v", err)
	}
	if top.Y() != 0 || top.Height() != 10 {
		t.Errorf("top = (y=%d h=%d), want (y=0 h=10)", top.Y(), top.Height())
	}
	if bottom.Y() != 10 || bottom.Height() != 41 {
		t.Errorf("bottom = (y=%d h=%d), want (y=10 h=41)", bottom.Y(), bottom.Height())
	}
	if top.Width() != full.Width() || bottom.Width() != full.Width() {
		t.Error("split parts do not share parent width")
	}

	// Oversized and degenerate splits fail.
	for _, h := range []int{60, 51, 0, -1} {
		if _, _, err := full.SplitVertical(h); err == nil {
			t.Errorf("SplitVertical(%d) error = nil, want *InvalidSplitError", h)
		}
	}

	var splitErr *InvalidSplitError
	_, _, err = full.SplitVertical(60)
	if !errors.As(err, &splitErr) {
		t.Fatalf("error = %v, want *InvalidSplitError", err)
	}
	if splitErr.ParentSize != 51 || splitErr.SplitSize != 60 {
		t.Errorf("error = %+v, want parent 51 split 60", splitErr)
	}
}

func TestRegion_SplitHorizontal(t *testing.T) {
	full := FullPage()

	left, right, err := full.SplitHorizontal(40)
	if err != nil {
		t.Fatalf("SplitHorizontal(40) error = %v", err)
	}
	if left.X() != 0 || left.Width() != 40 {
		t.Errorf("left = (x=%d w=%d), want (x=0 w=40)", left.X(), left.Width())
	}
	if right.X() != 40 || right.Width() != 120 {
		t.Errorf("right = (x=%d w=%d), want (x=40 w=120)", right.X(), right.Width())
	}

	if _, _, err := full.SplitHorizontal(200); err == nil {
		t.Error("SplitHorizontal(200) error = nil, want *InvalidSplitError")
	}
}

func TestRegion_WithPadding(t *testing.T) {
	r, err := NewRegion(0, 0, 100, 50)
	if err != nil {
		t.Fatal(err)
	}

	padded, err := r.WithPadding(2, 5, 2, 5)
	if err != nil {
		t.Fatalf("WithPadding() error = %v", err)
	}
	if padded.X() != 5 || padded.Y() != 2 || padded.Width() != 90 || padded.Height() != 46 {
		t.Errorf("WithPadding() = (%d,%d %dx%d), want (5,2 90x46)",
			padded.X(), padded.Y(), padded.Width(), padded.Height())
	}

	small, err := NewRegion(0, 0, 20, 10)
	if err != nil {
		t.Fatal(err)
	}

	// Padding that meets or exceeds an axis fails, equality included.
	if _, err := small.WithPadding(5, 0, 10, 0); err == nil {
		t.Error("vertical padding 15 of height 10: error = nil, want error")
	}
	if _, err := small.WithPadding(0, 15, 0, 10); err == nil {
		t.Error("horizontal padding 25 of width 20: error = nil, want error")
	}
	if _, err := small.WithPadding(5, 0, 5, 0); err == nil {
		t.Error("vertical padding equal to height: error = nil, want error")
	}
	if _, err := small.WithPadding(-1, 0, 0, 0); err == nil {
		t.Error("negative padding: error = nil, want error")
	}
}
