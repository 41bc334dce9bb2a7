package blueprint

import "github.com/grindlemire/tuicore/pkg/value"

// Blueprint is a node of a widget tree description: a *Single, *Loop,
// *ControlFlow or *Component.
type Blueprint interface {
	blueprint()
}

// Attribute is a single resolved attribute of an element.
type Attribute struct {
	Key   string
	Value value.Value
}

// Single describes one widget.
type Single struct {
	Ident      string
	Attributes []Attribute
	Value      *value.Value
	Children   []Blueprint
}

// Loop repeats Body once per item of Data.
type Loop struct {
	Binding string
	Data    []value.Value
	Body    []Blueprint
}

// Branch is one arm of a ControlFlow. A nil Cond always holds.
type Branch struct {
	Cond *value.Value
	Body []Blueprint
}

// Holds reports whether the branch condition is truthy.
func (b Branch) Holds() bool {
	return b.Cond == nil || b.Cond.Truthy()
}

// ControlFlow shows the first branch whose condition holds.
type ControlFlow struct {
	If    Branch
	Elses []Branch
}

// Component wraps the instantiated body of a named component.
type Component struct {
	Name string
	Body []Blueprint
}

func (*Single) blueprint()      {}
func (*Loop) blueprint()        {}
func (*ControlFlow) blueprint() {}
func (*Component) blueprint()   {}

// Element returns a Single for ident with the given children.
func Element(ident string, children ...Blueprint) *Single {
	return &Single{Ident: ident, Children: children}
}

// With appends an attribute and returns s.
func (s *Single) With(key string, v value.Value) *Single {
	s.Attributes = append(s.Attributes, Attribute{Key: key, Value: v})
	return s
}

// WithValue sets the element's own value and returns s.
func (s *Single) WithValue(v value.Value) *Single {
	s.Value = &v
	return s
}
