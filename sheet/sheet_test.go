package sheet

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/turgutahmet/xlsxstream/column"
	"github.com/turgutahmet/xlsxstream/sharedstrings"
	"github.com/turgutahmet/xlsxstream/stylesheet"
)

type row struct {
	Name string
	Paid bool
}

func textCol(name string) *column.Column[row, column.TextValue, column.TextValue] {
	return column.TextColumn[row](name, func(r row) column.TextValue { return column.Text(r.Name) })
}

func TestBuildEmitsHeaderAndDataRows(t *testing.T) {
	s := New[row]("Report")
	s.AddColumn(textCol("Name"))
	require.NoError(t, s.LoadData(context.Background()))
	s.SetData([]row{{Name: "Alice"}, {Name: "Bob"}})

	ss := stylesheet.New()
	strs := sharedstrings.New()
	xml, meta, err := s.Build(1, "rId1", ss, strs)
	require.NoError(t, err)
	require.Equal(t, 2, meta.DataRowCount)
	require.Equal(t, 1, meta.ActiveColumnCount)
	require.Contains(t, string(xml), `<row r="1">`)
	require.Contains(t, string(xml), `<row r="3">`)
}

func TestResolveActiveColumnsEmptyWhenNoRecords(t *testing.T) {
	s := New[row]("Empty")
	s.AddColumn(textCol("Name"))
	require.NoError(t, s.LoadData(context.Background()))

	active := s.resolveActiveColumns()
	require.Empty(t, active)
}

func TestInactiveColumnExcludedFromEmission(t *testing.T) {
	s := New[row]("Report")
	s.AddColumn(textCol("Name"))
	s.AddColumn(column.TextColumn[row]("PaidOnly", func(r row) column.TextValue { return column.Text("x") }).
		When(func(r row) bool { return r.Paid }))
	s.SetData([]row{{Name: "Alice", Paid: false}})

	active := s.resolveActiveColumns()
	require.Len(t, active, 1)
}

func TestColumnWidthPropagationRespectsExplicitSheetStyle(t *testing.T) {
	s := New[row]("Report")
	s.AddColumn(textCol("Name").WithWidth(30))
	s.Style.ColumnWidths[1] = ColumnWidth{Width: 10, IsCustom: true}
	s.SetData([]row{{Name: "Alice"}})

	ss := stylesheet.New()
	strs := sharedstrings.New()
	_, _, err := s.Build(1, "rId1", ss, strs)
	require.NoError(t, err)
	require.Equal(t, float64(10), s.Style.ColumnWidths[1].Width, "explicit sheet-style width must win")
}

func TestColumnWidthPropagationAppliesWhenUnset(t *testing.T) {
	s := New[row]("Report")
	s.AddColumn(textCol("Name").WithWidth(30))
	s.SetData([]row{{Name: "Alice"}})

	ss := stylesheet.New()
	strs := sharedstrings.New()
	xml, _, err := s.Build(1, "rId1", ss, strs)
	require.NoError(t, err)
	require.Equal(t, float64(30), s.Style.ColumnWidths[1].Width)
	require.Contains(t, string(xml), `width="30"`)
}

type failingProvider struct{}

func (failingProvider) Load() ([]row, error) { return nil, errors.New("boom") }

func TestLoadDataPropagatesProviderError(t *testing.T) {
	s := New[row]("Report")
	s.SetDataProvider(failingProvider{})
	err := s.LoadData(context.Background())
	require.Error(t, err)
}

func TestLoadDataIsIdempotent(t *testing.T) {
	s := New[row]("Report")
	s.SetData([]row{{Name: "Alice"}})
	require.NoError(t, s.LoadData(context.Background()))
	require.NoError(t, s.LoadData(context.Background()))
	require.Len(t, s.loaded, 1)
}

func TestDimensionRangeOmittedWhenNoCells(t *testing.T) {
	s := New[row]("Empty")
	s.HasHeader = false
	ss := stylesheet.New()
	strs := sharedstrings.New()
	xml, meta, err := s.Build(1, "rId1", ss, strs)
	require.NoError(t, err)
	require.Nil(t, meta.DataRange)
	require.True(t, strings.Contains(string(xml), `ref="A1"`))
}
