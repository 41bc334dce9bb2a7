package widgets

import "github.com/grindlemire/tuicore/pkg/value"

// WidgetKind is the payload of a tree node. The set of kinds is closed:
// an element, or one of the structural markers produced from control flow,
// loops and components.
type WidgetKind interface {
	widgetKind()
}

// ControlFlow groups an If and its Else branches.
type ControlFlow struct{}

// If is the first branch of a ControlFlow. Its children render only when Show is set.
type If struct {
	Show bool
}

// Else is a later branch of a ControlFlow.
type Else struct {
	Show bool
}

// Loop is the parent of one Iteration per data item.
type Loop struct {
	Binding string
}

// Iteration holds one item of a Loop.
type Iteration struct {
	Binding string
	Index   int
	Value   value.Value
}

// Component marks the root of an instantiated component.
type Component struct {
	Name string
}

func (*Element) widgetKind()     {}
func (*ControlFlow) widgetKind() {}
func (*If) widgetKind()          {}
func (*Else) widgetKind()        {}
func (*Loop) widgetKind()        {}
func (*Iteration) widgetKind()   {}
func (*Component) widgetKind()   {}
