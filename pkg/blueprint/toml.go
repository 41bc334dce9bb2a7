package blueprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/grindlemire/tuicore/pkg/value"
)

// ErrInvalidNode is returned for a scene node that cannot be turned into
// a blueprint.
var ErrInvalidNode = errors.New("invalid blueprint node")

// Scene is a decoded TOML scene file.
type Scene struct {
	// Width and Height are the requested viewport. Zero means the
	// renderer's size.
	Width  int
	Height int
	Nodes  []Blueprint
}

type sceneDoc struct {
	Viewport struct {
		Width  int `toml:"width"`
		Height int `toml:"height"`
	} `toml:"viewport"`
	Nodes []docNode `toml:"node"`
}

type docNode struct {
	Widget     string         `toml:"widget"`
	Value      any            `toml:"value"`
	Attributes map[string]any `toml:"attributes"`
	Children   []docNode      `toml:"children"`

	For string `toml:"for"`
	In  []any  `toml:"in"`

	If   any         `toml:"if"`
	Else []docBranch `toml:"else"`

	Component string `toml:"component"`
}

type docBranch struct {
	If       any       `toml:"if"`
	Children []docNode `toml:"children"`
}

// Decode reads a scene from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Scene, error) {
	var doc sceneDoc
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if doc.Viewport.Width < 0 || doc.Viewport.Height < 0 {
		return nil, fmt.Errorf("decode scene: negative viewport %dx%d", doc.Viewport.Width, doc.Viewport.Height)
	}

	nodes, err := convertAll(doc.Nodes, "node")
	if err != nil {
		return nil, err
	}
	return &Scene{Width: doc.Viewport.Width, Height: doc.Viewport.Height, Nodes: nodes}, nil
}

// DecodeTOML decodes a scene held in memory.
func DecodeTOML(data []byte) (*Scene, error) {
	return Decode(bytes.NewReader(data))
}

// Load decodes the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func convertAll(nodes []docNode, path string) ([]Blueprint, error) {
	out := make([]Blueprint, 0, len(nodes))
	for i, n := range nodes {
		bp, err := n.convert(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, bp)
	}
	return out, nil
}

func (n docNode) convert(path string) (Blueprint, error) {
	var kinds []string
	if n.Widget != "" {
		kinds = append(kinds, "widget")
	}
	if n.For != "" {
		kinds = append(kinds, "for")
	}
	if n.If != nil {
		kinds = append(kinds, "if")
	}
	if n.Component != "" {
		kinds = append(kinds, "component")
	}
	if len(kinds) != 1 {
		return nil, fmt.Errorf("%w: %s: want exactly one of widget, for, if, component; got [%s]",
			ErrInvalidNode, path, strings.Join(kinds, ", "))
	}
	if kinds[0] != "widget" && (n.Value != nil || len(n.Attributes) > 0) {
		return nil, fmt.Errorf("%w: %s: only widgets take a value or attributes", ErrInvalidNode, path)
	}
	if kinds[0] != "if" && len(n.Else) > 0 {
		return nil, fmt.Errorf("%w: %s: else without if", ErrInvalidNode, path)
	}

	children, err := convertAll(n.Children, path+".children")
	if err != nil {
		return nil, err
	}

	switch kinds[0] {
	case "widget":
		return n.single(path, children)
	case "for":
		data := make([]value.Value, 0, len(n.In))
		for i, raw := range n.In {
			v, err := convertValue(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.in[%d]: %v", ErrInvalidNode, path, i, err)
			}
			data = append(data, v)
		}
		return &Loop{Binding: n.For, Data: data, Body: children}, nil
	case "if":
		cond, err := convertValue(n.If)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.if: %v", ErrInvalidNode, path, err)
		}
		cf := &ControlFlow{If: Branch{Cond: &cond, Body: children}}
		for i, e := range n.Else {
			branch, err := e.convert(fmt.Sprintf("%s.else[%d]", path, i))
			if err != nil {
				return nil, err
			}
			cf.Elses = append(cf.Elses, branch)
		}
		return cf, nil
	default:
		return &Component{Name: n.Component, Body: children}, nil
	}
}

func (n docNode) single(path string, children []Blueprint) (*Single, error) {
	s := &Single{Ident: n.Widget, Children: children}
	if n.Value != nil {
		v, err := convertValue(n.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.value: %v", ErrInvalidNode, path, err)
		}
		s.Value = &v
	}

	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		v, err := convertValue(n.Attributes[k])
		if err != nil {
			return nil, fmt.Errorf("%w: %s.attributes.%s: %v", ErrInvalidNode, path, k, err)
		}
		s.Attributes = append(s.Attributes, Attribute{Key: k, Value: v})
	}
	return s, nil
}

func (b docBranch) convert(path string) (Branch, error) {
	children, err := convertAll(b.Children, path+".children")
	if err != nil {
		return Branch{}, err
	}
	branch := Branch{Body: children}
	if b.If != nil {
		cond, err := convertValue(b.If)
		if err != nil {
			return Branch{}, fmt.Errorf("%w: %s.if: %v", ErrInvalidNode, path, err)
		}
		branch.Cond = &cond
	}
	return branch, nil
}

// convertValue maps a decoded TOML value onto an attribute value.
// Strings that parse as a hex colour become colours.
func convertValue(raw any) (value.Value, error) {
	switch v := raw.(type) {
	case string:
		if strings.HasPrefix(v, "#") {
			if h, err := value.ParseHex(v); err == nil {
				return value.Color(h), nil
			}
		}
		return value.Str(v), nil
	case int64:
		return value.Int(v), nil
	case bool:
		return value.Bool(v), nil
	default:
		return value.Value{}, fmt.Errorf("unsupported value %v (%T)", raw, raw)
	}
}
