package column

import "github.com/turgutahmet/xlsxstream/cellmodel"

// AnyColumn is the type-erased view of a Column[R, I, O] that a Sheet[R] actually
// needs: one column can't carry its Input/Output type parameters into a
// []AnyColumn[R] slice, so Sheet only ever sees this narrower interface. Every
// *Column[R, I, O], for any I and O, satisfies AnyColumn[R] automatically — no
// wrapper or boxing struct is needed, since Go interfaces are satisfied structurally
// and none of these methods mention I or O.
type AnyColumn[R any] interface {
	Name() string
	Width() (uint32, bool)
	BodyStyle() *CellStyleOverride
	HeaderStyle() *CellStyleOverride
	ShouldEmit(r R) bool
	Emit(r R, row, col uint32) cellmodel.Cell
}
