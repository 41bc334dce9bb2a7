// Package layout provides the constraint type negotiated between widgets
// during the layout pass, the viewport that bounds a frame, and edge insets.
//
// Constraints flow top-down: a widget narrows the constraints it received
// before handing them to its children, and reduces the children's sizes
// into its own. Every mutation keeps min <= max on both axes.
package layout
