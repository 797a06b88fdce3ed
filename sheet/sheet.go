// Package sheet implements the Sheet Assembler: active-column
// resolution, header/data row emission, column-width propagation, and sheetN.xml
// serialization.
//
// Grounded on turgutahmet-kolayxlsxstream/writer.go's sheetWriter/startNewSheet
// bookkeeping (row buffering, the running dimension range), generalized from a
// flat []string row model to the typed Column[R, I, O] pipeline.
package sheet

import (
	"context"

	"github.com/turgutahmet/xlsxstream/column"
)

// SyncProvider is the synchronous half of DataProvider capability pair.
type SyncProvider[R any] interface {
	Load() ([]R, error)
}

// AsyncProvider is the asynchronous half.
type AsyncProvider[R any] interface {
	LoadAsync(ctx context.Context) ([]R, error)
}

// Sheet is a single typed worksheet: a column set plus a data source. It is
// single-writer — LoadData runs at most once per build, after which the sheet is
// effectively immutable.
type Sheet[R any] struct {
	Name string
	HasHeader bool
	Style SheetStyle
	Columns []column.AnyColumn[R]

	syncProvider SyncProvider[R]
	asyncProvider AsyncProvider[R]
	loaded []R
	loadedSet bool
}

// New returns a Sheet with header emission on and Excel's default presentation.
func New[R any](name string) *Sheet[R] {
	return &Sheet[R]{
		Name: name,
		HasHeader: true,
		Style: DefaultSheetStyle(),
	}
}

// AddColumn appends a column and returns the sheet for chaining.
func (s *Sheet[R]) AddColumn(c column.AnyColumn[R]) *Sheet[R] {
	s.Columns = append(s.Columns, c)
	return s
}

// SetData loads the sheet eagerly with an in-memory slice, bypassing any provider.
func (s *Sheet[R]) SetData(data []R) *Sheet[R] {
	s.loaded = data
	s.loadedSet = true
	return s
}

// SetDataProvider installs a synchronous provider, clearing any async provider.
func (s *Sheet[R]) SetDataProvider(p SyncProvider[R]) *Sheet[R] {
	s.syncProvider = p
	s.asyncProvider = nil
	return s
}

// SetDataProviderAsync installs an asynchronous provider, clearing any sync
// provider.
func (s *Sheet[R]) SetDataProviderAsync(p AsyncProvider[R]) *Sheet[R] {
	s.asyncProvider = p
	s.syncProvider = nil
	return s
}

// LoadData populates the sheet's record set exactly once. A nil provider (and no
// prior SetData call) yields an empty sheet rather than an error.
// When only a sync provider is set, LoadData falls back to it even though LoadData
// itself is asynchronous-shaped.
func (s *Sheet[R]) LoadData(ctx context.Context) error {
	if s.loadedSet {
		return nil
	}
	switch {
	case s.asyncProvider != nil:
		data, err := s.asyncProvider.LoadAsync(ctx)
		if err != nil {
			return err
		}
		s.loaded = data
	case s.syncProvider != nil:
		data, err := s.syncProvider.Load()
		if err != nil {
			return err
		}
		s.loaded = data
	default:
		s.loaded = nil
	}
	s.loadedSet = true
	return nil
}

// resolveActiveColumns returns the indices of Columns active for at least one
// loaded record. An empty record set yields zero active columns (step
// 1's explicit edge case).
func (s *Sheet[R]) resolveActiveColumns() []int {
	active := make([]bool, len(s.Columns))
	for _, r := range s.loaded {
		for i, c := range s.Columns {
			if active[i] {
				continue
			}
			if c.ShouldEmit(r) {
				active[i] = true
			}
		}
	}
	idx := make([]int, 0, len(active))
	for i, a := range active {
		if a {
			idx = append(idx, i)
		}
	}
	return idx
}
