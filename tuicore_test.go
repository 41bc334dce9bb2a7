package tuicore

import (
	"errors"
	"testing"

	"github.com/grindlemire/tuicore/pkg/blueprint"
	"github.com/grindlemire/tuicore/pkg/surface"
	"github.com/grindlemire/tuicore/pkg/value"
	"github.com/grindlemire/tuicore/pkg/widgets"
)

func TestRenderString(t *testing.T) {
	type tc struct {
		bps    []blueprint.Blueprint
		width  int
		height int
		want   string
	}

	tests := map[string]tc{
		"empty": {
			width:  2,
			height: 1,
			want:   "",
		},
		"text": {
			bps:    []blueprint.Blueprint{blueprint.Element("text").WithValue(value.Str("hey"))},
			width:  5,
			height: 1,
			want:   "hey",
		},
		"border around text": {
			bps: []blueprint.Blueprint{
				blueprint.Element("border", blueprint.Element("text").WithValue(value.Str("ok"))).
					With("border-style", value.Str("rounded")),
			},
			width:  6,
			height: 3,
			want:   "╭──╮\n│ok│\n╰──╯",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := RenderString(tt.bps, tt.width, tt.height)
			if err != nil {
				t.Fatalf("RenderString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderString_Errors(t *testing.T) {
	if _, err := RenderString(nil, -1, 2); err == nil {
		t.Error("RenderString() with negative width: error = nil, want error")
	}

	bps := []blueprint.Blueprint{blueprint.Element("nope")}
	_, err := RenderString(bps, 2, 2)
	if !errors.Is(err, widgets.ErrUnknownWidget) {
		t.Errorf("RenderString() error = %v, want %v", err, widgets.ErrUnknownWidget)
	}
}

func TestBuildScene(t *testing.T) {
	scene, err := blueprint.DecodeTOML([]byte(`
[viewport]
width = 4
height = 1

[[node]]
widget = "text"
value = "abcdef"
attributes = { wrap = "overflow" }
`))
	if err != nil {
		t.Fatalf("DecodeTOML() error = %v", err)
	}

	f, err := BuildScene(scene)
	if err != nil {
		t.Fatalf("BuildScene() error = %v", err)
	}

	buf := surface.NewBuffer(8, 2)
	f.Render(buf)
	if got, want := f.Viewport().Size().Width, 4; got != want {
		t.Errorf("Viewport().Size().Width = %d, want %d", got, want)
	}
	if got, want := buf.StringTrimmed(), "abcd\n"; got != want {
		t.Errorf("StringTrimmed() = %q, want %q", got, want)
	}
}
