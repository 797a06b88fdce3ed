package column

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/turgutahmet/xlsxstream/cellmodel"
)

type widget struct {
	Name string
	Price float64
	Qty *int64
}

func TestTextColumnEmit(t *testing.T) {
	col := TextColumn[widget]("Name", func(w widget) TextValue { return Text(w.Name) })
	cell := col.Emit(widget{Name: "Bolt"}, 1, 0)
	require.Equal(t, uint32(1), cell.Row)
	text, ok := cell.Value.(cellmodel.Text)
	require.True(t, ok)
	require.NotNil(t, text.Value)
	require.Equal(t, "Bolt", *text.Value)
}

func TestWithWidthDoesNotMutateOriginal(t *testing.T) {
	col := TextColumn[widget]("Name", func(w widget) TextValue { return Text(w.Name) })
	widened := col.WithWidth(20)

	_, hasOrig := col.Width()
	w, hasWidened := widened.Width()
	require.False(t, hasOrig)
	require.True(t, hasWidened)
	require.Equal(t, uint32(20), w)
}

func TestNilPolicyDefaultValueSubstitutesOnNull(t *testing.T) {
	col := IntColumn[widget]("Qty", func(w widget) IntValue {
			if w.Qty == nil {
				return NullInt()
			}
			return Int(*w.Qty)
		}).WithNilPolicy(NilPolicy[IntValue]{Kind: DefaultValue, Default: Int(0)})

	cell := col.Emit(widget{Name: "Bolt"}, 1, 1)
	n, ok := cell.Value.(cellmodel.Integer)
	require.True(t, ok)
	require.NotNil(t, n.Value)
	require.Equal(t, int64(0), *n.Value)
}

func TestWhenSuppressesEmission(t *testing.T) {
	col := TextColumn[widget]("Name", func(w widget) TextValue { return Text(w.Name) }).
	When(func(w widget) bool { return w.Price > 0 })

	require.False(t, col.ShouldEmit(widget{Name: "Free", Price: 0}))
	require.True(t, col.ShouldEmit(widget{Name: "Paid", Price: 1}))
}

func TestIfAppliesConditionalMapping(t *testing.T) {
	col := TextColumn[widget]("Status", func(w widget) TextValue { return Text(w.Name) }).
	If(
		func(w widget) bool { return w.Price > 100 },
		func(v TextValue) TextValue { return Text("premium") },
		func(v TextValue) TextValue { return Text("standard") },
	)

	cheap := col.Emit(widget{Name: "Bolt", Price: 1}, 1, 0)
	pricey := col.Emit(widget{Name: "Gadget", Price: 200}, 2, 0)
	text1 := cheap.Value.(cellmodel.Text)
	text2 := pricey.Value.(cellmodel.Text)
	require.Equal(t, "standard", *text1.Value)
	require.Equal(t, "premium", *text2.Value)
}

func TestToStringTransformChainsOffResolvedValue(t *testing.T) {
	qty := IntColumn[widget]("Qty", func(w widget) IntValue {
			if w.Qty == nil {
				return NullInt()
			}
			return Int(*w.Qty)
		})
	asText := qty.ToString(IntToString)

	q := int64(42)
	cell := asText.Emit(widget{Qty: &q}, 1, 0)
	text := cell.Value.(cellmodel.Text)
	require.Equal(t, "42", *text.Value)
}

func TestToStringTransformPropagatesNull(t *testing.T) {
	qty := IntColumn[widget]("Qty", func(w widget) IntValue {
			if w.Qty == nil {
				return NullInt()
			}
			return Int(*w.Qty)
		})
	asText := qty.ToString(IntToString)

	cell := asText.Emit(widget{}, 1, 0)
	text := cell.Value.(cellmodel.Text)
	require.Nil(t, text.Value)
}

func TestAnyColumnSatisfiedByGenericColumn(t *testing.T) {
	var _ AnyColumn[widget] = TextColumn[widget]("Name", func(w widget) TextValue { return Text(w.Name) })
	var _ AnyColumn[widget] = IntColumn[widget]("Qty", func(w widget) IntValue { return NullInt() })
}

func TestRatioToPercentageTransform(t *testing.T) {
	price := NumberColumn[widget]("Price", func(w widget) NumberValue { return Number(w.Price) })
	pct := price.ToPercentage(RatioToPercentage(1))

	cell := pct.Emit(widget{Price: 0.125}, 1, 0)
	p := cell.Value.(cellmodel.Percentage)
	require.NotNil(t, p.Value)
	require.Equal(t, uint8(1), p.Precision)
}
