package styletheme

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/turgutahmet/xlsxstream/sheet"
)

const sampleTOML = `
default_col_width = 18.5
default_row_height = 16
tab_color = "1F4E78"

[header]
[header.font]
name = "Calibri"
size = 12
bold = true
color_argb = "FFFFFF"

[header.fill]
pattern_type = "solid"
fg_color_argb = "1F4E78"

[body]
[body.font]
name = "Calibri"
size = 11
`

func TestParseTheme(t *testing.T) {
	theme, err := Parse([]byte(sampleTOML))
	require.NoError(t, err)
	require.Equal(t, 18.5, theme.DefaultColWidth)
	require.Equal(t, "1F4E78", theme.TabColor)
	require.True(t, theme.HeaderStyle.Font.Bold)
	require.Equal(t, "solid", theme.HeaderStyle.Fill.PatternType)
}

func TestApplyToFoldsIntoSheetStyle(t *testing.T) {
	theme, err := Parse([]byte(sampleTOML))
	require.NoError(t, err)

	style := sheet.DefaultSheetStyle()
	theme.ApplyTo(&style)

	require.True(t, style.ColumnHeaderStyle.Font.Set)
	require.True(t, style.ColumnHeaderStyle.Font.Bold)
	require.True(t, style.ColumnBodyStyle.Font.Set)
	require.Equal(t, "Calibri", style.ColumnBodyStyle.Font.Name)
	require.Equal(t, 18.5, style.DefaultColWidth)
	require.Equal(t, "1F4E78", style.TabColor)
}

func TestApplyToLeavesUnthemedFieldsAlone(t *testing.T) {
	theme := Theme{}
	style := sheet.DefaultSheetStyle()
	style.DefaultColWidth = 9
	theme.ApplyTo(&style)
	require.Equal(t, float64(9), style.DefaultColWidth)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/theme.toml")
	require.Error(t, err)
}
