// Package styletheme loads a reusable house style from TOML, as a convenience layer
// over stylesheet.CellStyle/sheet.SheetStyle construction — the configuration
// ambient concern, realized with the TOML library already
// present in the example pack (uppercaveman-go-1/go.mod, dolthub-dolt/go.mod).
package styletheme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/turgutahmet/xlsxstream/sheet"
	"github.com/turgutahmet/xlsxstream/stylesheet"
)

// FontConfig mirrors stylesheet.Font's fields in TOML-friendly form.
type FontConfig struct {
	Name string `toml:"name"`
	Size float64 `toml:"size"`
	Bold bool `toml:"bold"`
	Italic bool `toml:"italic"`
	Underline bool `toml:"underline"`
	ColorARGB string `toml:"color_argb"`
}

// FillConfig mirrors stylesheet.Fill.
type FillConfig struct {
	PatternType string `toml:"pattern_type"`
	FgColorARGB string `toml:"fg_color_argb"`
	BgColorARGB string `toml:"bg_color_argb"`
}

// StyleConfig mirrors stylesheet.CellStyle's font/fill pair — the two fields a
// house theme most commonly wants to pin; alignment/border are left to callers who
// need more than a theme provides.
type StyleConfig struct {
	Font FontConfig `toml:"font"`
	Fill FillConfig `toml:"fill"`
}

// Theme is the parsed house style: a header style, a body style, and the sheet-wide
// defaults every sheet built from it should start with.
type Theme struct {
	HeaderStyle StyleConfig `toml:"header"`
	BodyStyle StyleConfig `toml:"body"`
	DefaultColWidth float64 `toml:"default_col_width"`
	DefaultRowHeight float64 `toml:"default_row_height"`
	TabColor string `toml:"tab_color"`
}

// Load parses a theme from a TOML file.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("styletheme: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses a theme from TOML bytes already in memory.
func Parse(data []byte) (Theme, error) {
	var t Theme
	if _, err := toml.Decode(string(data), &t); err != nil {
		return Theme{}, fmt.Errorf("styletheme: decode: %w", err)
	}
	return t, nil
}

func (c StyleConfig) toCellStyle() stylesheet.CellStyle {
	var cs stylesheet.CellStyle
	if c.Font != (FontConfig{}) {
		cs.Font = stylesheet.Font{
			Set: true,
			Name: c.Font.Name,
			Size: c.Font.Size,
			Bold: c.Font.Bold,
			Italic: c.Font.Italic,
			Underline: c.Font.Underline,
			ColorARGB: c.Font.ColorARGB,
		}
	}
	if c.Fill != (FillConfig{}) {
		cs.Fill = stylesheet.Fill{
			Set: true,
			PatternType: c.Fill.PatternType,
			FgColorARGB: c.Fill.FgColorARGB,
			BgColorARGB: c.Fill.BgColorARGB,
		}
	}
	return cs
}

// ApplyTo folds the theme's defaults into a SheetStyle: header/body styles, column
// width, row height, and tab color, leaving anything already set on style
// untouched where the theme has no opinion.
func (t Theme) ApplyTo(style *sheet.SheetStyle) {
	style.ColumnHeaderStyle = stylesheet.Merge(style.ColumnHeaderStyle, t.HeaderStyle.toCellStyle())
	style.ColumnBodyStyle = stylesheet.Merge(style.ColumnBodyStyle, t.BodyStyle.toCellStyle())
	if t.DefaultColWidth > 0 {
		style.DefaultColWidth = t.DefaultColWidth
	}
	if t.DefaultRowHeight > 0 {
		style.DefaultRowHeight = t.DefaultRowHeight
	}
	if t.TabColor != "" {
		style.TabColor = t.TabColor
	}
}
