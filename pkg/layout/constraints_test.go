package layout

import (
	"testing"

	"github.com/grindlemire/tuicore/pkg/geometry"
)

func assertValid(t *testing.T, c Constraints) {
	t.Helper()
	if c.MinWidth() > c.MaxWidth() || c.MinHeight() > c.MaxHeight() {
		t.Fatalf("constraints %v have min > max", c)
	}
}

func TestConstraints_MakeTight(t *testing.T) {
	type tc struct {
		start   Constraints
		width   int
		wantMin int
		wantMax int
	}

	tests := map[string]tc{
		"within range": {start: New(10, 10), width: 4, wantMin: 4, wantMax: 4},
		"above max":    {start: New(10, 10), width: 20, wantMin: 10, wantMax: 10},
		"below min":    {start: Tight(6, 6), width: 2, wantMin: 6, wantMax: 6},
		"unbounded":    {start: Loose(), width: 7, wantMin: 7, wantMax: 7},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := tt.start
			c.MakeWidthTight(tt.width)
			assertValid(t, c)
			if c.MinWidth() != tt.wantMin || c.MaxWidth() != tt.wantMax {
				t.Errorf("MakeWidthTight(%d) = %v, want min %d max %d", tt.width, c, tt.wantMin, tt.wantMax)
			}

			h := tt.start
			h.MakeHeightTight(tt.width)
			assertValid(t, h)
			if h.MinHeight() != tt.wantMin || h.MaxHeight() != tt.wantMax {
				t.Errorf("MakeHeightTight(%d) = %v, want min %d max %d", tt.width, h, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestConstraints_SubMax(t *testing.T) {
	type tc struct {
		start   Constraints
		n       int
		wantMin int
		wantMax int
	}

	tests := map[string]tc{
		"loose":           {start: New(10, 10), n: 3, wantMin: 0, wantMax: 7},
		"floors at zero":  {start: New(2, 2), n: 5, wantMin: 0, wantMax: 0},
		"min follows max": {start: Tight(5, 5), n: 2, wantMin: 3, wantMax: 3},
		"unbounded":       {start: Loose(), n: 4, wantMin: 0, wantMax: Unbounded},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := tt.start
			c.SubMaxWidth(tt.n)
			c.SubMaxHeight(tt.n)
			assertValid(t, c)
			if c.MinWidth() != tt.wantMin || c.MaxWidth() != tt.wantMax {
				t.Errorf("SubMaxWidth(%d) = %v, want min %d max %d", tt.n, c, tt.wantMin, tt.wantMax)
			}
			if c.MinHeight() != tt.wantMin || c.MaxHeight() != tt.wantMax {
				t.Errorf("SubMaxHeight(%d) = %v, want min %d max %d", tt.n, c, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestConstraints_SetMaxNeverRaises(t *testing.T) {
	c := New(5, 5)
	c.SetMaxWidth(9)
	c.SetMaxHeight(3)
	if c.MaxWidth() != 5 {
		t.Errorf("SetMaxWidth(9) raised max to %d", c.MaxWidth())
	}
	if c.MaxHeight() != 3 {
		t.Errorf("SetMaxHeight(3) = %d, want 3", c.MaxHeight())
	}

	tight := Tight(6, 6)
	tight.SetMaxWidth(2)
	assertValid(t, tight)
	if tight.MinWidth() != 2 {
		t.Errorf("min after SetMaxWidth(2) = %d, want 2", tight.MinWidth())
	}
}

func TestConstraints_SetMin(t *testing.T) {
	c := New(4, 4)
	c.SetMinWidth(10)
	c.SetMinHeight(-1)
	assertValid(t, c)
	if c.MinWidth() != 4 || c.MinHeight() != 0 {
		t.Errorf("SetMin() = %v, want min 4x0", c)
	}
}

func TestConstraints_Constrain(t *testing.T) {
	c := New(10, 4)
	c.SetMinWidth(2)

	type tc struct {
		in, want geometry.Size
	}

	tests := map[string]tc{
		"inside":    {in: geometry.NewSize(5, 3), want: geometry.NewSize(5, 3)},
		"too small": {in: geometry.NewSize(0, 0), want: geometry.NewSize(2, 0)},
		"too large": {in: geometry.NewSize(20, 9), want: geometry.NewSize(10, 4)},
		"negative":  {in: geometry.NewSize(-3, -1), want: geometry.NewSize(2, 0)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := c.Constrain(tt.in)
			if got != tt.want {
				t.Errorf("Constrain(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if !c.Contains(got) {
				t.Errorf("Contains(%v) = false for constrained size", got)
			}
		})
	}
}

func TestViewport_Constraints(t *testing.T) {
	v := NewViewport(geometry.NewSize(80, 24))
	c := v.Constraints()
	if c.MinWidth() != 0 || c.MaxWidth() != 80 || c.MaxHeight() != 24 {
		t.Errorf("Constraints() = %v, want [0..80 x 0..24]", c)
	}
	r := v.Region()
	if !r.Contains(geometry.NewPos(79, 23)) || r.Contains(geometry.NewPos(80, 0)) {
		t.Errorf("Region() = %v, want 0,0..79,23", r)
	}
}

func TestEdges(t *testing.T) {
	e := EdgeTRBL(1, 2, 3, 4)
	if e.Size() != geometry.NewSize(6, 4) {
		t.Errorf("Size() = %v, want 6x4", e.Size())
	}
	if e.Offset() != geometry.NewLocalPos(4, 1) {
		t.Errorf("Offset() = %v, want (4,1)", e.Offset())
	}
	if !EdgeAll(0).IsZero() {
		t.Error("EdgeAll(0).IsZero() = false")
	}
}
