package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule(t *testing.T) {
	sheet, err := Parse(`div { width: 100px; height: 50px; color: #ffffff; background: #003300; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)

	rule := sheet.Rules[0]
	require.Equal(t, []Selector{{TagName: "div"}}, rule.Selectors)
	require.Equal(t, []Declaration{
		{Name: "width", Value: Length(100, Px)},
		{Name: "height", Value: Length(50, Px)},
		{Name: "color", Value: ColorOf(Color{255, 255, 255, 255})},
		{Name: "background", Value: ColorOf(Color{0, 0x33, 0, 255})},
	}, rule.Declarations)
}

func TestParseSelectorForms(t *testing.T) {
	sheet, err := Parse(`
		* { margin: 0px; }
		span.note.wide { display: inline; }
		#main { width: 600px; }
		p.intro { padding: 4px; }
	`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 4)

	assert.Equal(t, Selector{}, sheet.Rules[0].Selectors[0])
	assert.Equal(t, Selector{TagName: "span", Classes: []string{"note", "wide"}}, sheet.Rules[1].Selectors[0])
	assert.Equal(t, Selector{ID: "main"}, sheet.Rules[2].Selectors[0])
	assert.Equal(t, Selector{TagName: "p", Classes: []string{"intro"}}, sheet.Rules[3].Selectors[0])
}

func TestParseSelectorListSortedBySpecificity(t *testing.T) {
	sheet, err := Parse(`h1, .title, #page-title { margin: 8px; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)

	// Highest specificity first, so matching can stop at the first hit.
	sels := sheet.Rules[0].Selectors
	require.Len(t, sels, 3)
	assert.Equal(t, "page-title", sels[0].ID)
	assert.Equal(t, []string{"title"}, sels[1].Classes)
	assert.Equal(t, "h1", sels[2].TagName)
}

func TestParseSkipsMalformedRules(t *testing.T) {
	sheet, err := Parse(`
		div { width: 100px; }
		broken { width: ; }
		p { height: 20px; }
	`)
	require.Error(t, err)
	require.Len(t, sheet.Rules, 2)
	assert.Equal(t, "div", sheet.Rules[0].Selectors[0].TagName)
	assert.Equal(t, "p", sheet.Rules[1].Selectors[0].TagName)
}

func TestParseUnknownUnitRejected(t *testing.T) {
	sheet, err := Parse(`div { width: 10em; }`)
	require.Error(t, err)
	assert.Empty(t, sheet.Rules)
}

func TestParseComments(t *testing.T) {
	sheet, err := Parse(`
		/* header styling */
		h1 { /* big */ margin: 16px; }
	`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	require.Equal(t, []Declaration{{Name: "margin", Value: Length(16, Px)}}, sheet.Rules[0].Declarations)
}

func TestParseEmptyInput(t *testing.T) {
	sheet, err := Parse("   \n\t ")
	require.NoError(t, err)
	assert.Empty(t, sheet.Rules)
}

func TestSpecificityOrdering(t *testing.T) {
	id := Selector{ID: "x"}.Specificity()
	twoClasses := Selector{Classes: []string{"a", "b"}}.Specificity()
	oneClass := Selector{TagName: "p", Classes: []string{"a"}}.Specificity()
	tag := Selector{TagName: "p"}.Specificity()
	universal := Selector{}.Specificity()

	assert.True(t, twoClasses.Less(id))
	assert.True(t, oneClass.Less(twoClasses))
	assert.True(t, tag.Less(oneClass))
	assert.True(t, universal.Less(tag))
	assert.False(t, id.Less(id))
}

func TestValueToPx(t *testing.T) {
	assert.Equal(t, 12.5, Length(12.5, Px).ToPx())
	assert.Equal(t, 0.0, Keyword("auto").ToPx())
	assert.Equal(t, 0.0, ColorOf(Color{1, 2, 3, 255}).ToPx())
}
