package importer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Public Food Key", "public_food_key"},
		{"Food Name", "food_name"},
		{"Energy with dietary fibre, equated \n(kJ)", "energy_with_dietary_fibre_equated_(kj)"},
		{"Moisture (water) \r\n(g)", "moisture_(water)_(g)"},
		{"Cobalamin  (B12) \n(ug)", "cobalamin_(b12)_(ug)"},
		{"Ingredient Weight (g)", "ingredient_weight_(g)"},
		{"  padded   header  ", "padded_header"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, normalizeHeader(c.in), "input %q", c.in)
	}
}

func TestNormalizedHeadersMatchColumnTable(t *testing.T) {
	// every canonical column name must be a fixed point of normalization
	for column := range nutrientColumns {
		assert.Equal(t, column, normalizeHeader(column))
	}
	assert.Equal(t, keyColumn, normalizeHeader(keyColumn))
}

func TestParseDecimal(t *testing.T) {
	v := parseDecimal("2.7")
	require.NotNil(t, v)
	assert.InDelta(t, 2.7, *v, 1e-9)

	v = parseDecimal(" 540 ")
	require.NotNil(t, v)
	assert.InDelta(t, 540.0, *v, 1e-9)

	v = parseDecimal("0")
	require.NotNil(t, v)
	assert.Zero(t, *v)

	assert.Nil(t, parseDecimal(""))
	assert.Nil(t, parseDecimal("   "))
	assert.Nil(t, parseDecimal("N/A"))
	assert.Nil(t, parseDecimal("trace"))
}

type sheet struct {
	name string
	rows [][]string
}

func writeWorkbook(t *testing.T, sheets ...sheet) string {
	t.Helper()

	f := excelize.NewFile()
	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for j, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, j+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(s.name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "workbook.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadFoodDetails(t *testing.T) {
	path := writeWorkbook(t, sheet{name: "Foods", rows: [][]string{
		{"Public Food Key", "Classification", "Classification Name", "Food Name", "Food Description", "Derivation", "Sampling Details"},
		{"F002258", "13101", "Rice and rice dishes", "Rice, white, boiled", " Boiled white rice ", "Analysed", "NSW retail"},
	}})

	rows, err := LoadFoodDetails(path)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "F002258", rows[0].PublicFoodKey)
	assert.Equal(t, "13101", rows[0].Classification)
	assert.Equal(t, "Rice, white, boiled", rows[0].Name)
	assert.Equal(t, "Boiled white rice", rows[0].Description)
}

func TestLoadRecipeRows(t *testing.T) {
	path := writeWorkbook(t, sheet{name: "Recipes", rows: [][]string{
		{"Public Food Key", "Food Name", "Ingredient Public Food Key", "Ingredient Name", "Ingredient Weight (g)"},
		{"R100001", "Plain rice bowl", "F002258", "Rice, white, boiled", "200"},
		{"R100001", "Plain rice bowl", "F000001", "Salt", ""},
	}})

	rows, err := LoadRecipeRows(path)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "R100001", rows[0].PublicFoodKey)
	assert.Equal(t, "F002258", rows[0].IngredientPublicFoodKey)
	assert.Equal(t, "200", rows[0].IngredientWeight)
	assert.Equal(t, "", rows[1].IngredientWeight)
}

func nutrientWorkbook(t *testing.T, headers []string, rows ...[]string) string {
	t.Helper()
	data := [][]string{headers}
	data = append(data, rows...)
	return writeWorkbook(t,
		sheet{name: "Summary", rows: [][]string{{"note"}, {"second sheet holds the data"}}},
		sheet{name: "Data", rows: data},
	)
}

func TestLoadNutrientRows(t *testing.T) {
	path := nutrientWorkbook(t,
		[]string{"Public Food Key", "Protein \n(g)", "Energy with dietary fibre, equated \n(kJ)"},
		[]string{"F002258", "2.7", "540"},
		[]string{"F000042", "", "not measured"},
	)

	rows, err := LoadNutrientRows(path)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "F002258", rows[0].PublicFoodKey)
	assert.Equal(t, "2.7", rows[0].Values["protein_(g)"])
	assert.Equal(t, "540", rows[0].Values["energy_with_dietary_fibre_equated_(kj)"])
	assert.Equal(t, "", rows[1].Values["protein_(g)"])
}

func TestLoadNutrientRowsRejectsUnknownColumn(t *testing.T) {
	path := nutrientWorkbook(t,
		[]string{"Public Food Key", "Protein \n(g)", "Mystery Nutrient (g)"},
		[]string{"F002258", "2.7", "1.0"},
	)

	_, err := LoadNutrientRows(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery_nutrient_(g)")
}

func TestLoadNutrientRowsRejectsUnknownColumnWithoutDataRows(t *testing.T) {
	// a header-only sheet still validates its columns
	path := nutrientWorkbook(t,
		[]string{"Public Food Key", "Mystery Nutrient (g)"},
	)

	_, err := LoadNutrientRows(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery_nutrient_(g)")
}

func TestLoadNutrientRowsRequiresKeyColumn(t *testing.T) {
	path := nutrientWorkbook(t,
		[]string{"Protein \n(g)"},
		[]string{"2.7"},
	)

	_, err := LoadNutrientRows(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), keyColumn)
}

func TestLoadMissingWorkbook(t *testing.T) {
	_, err := LoadFoodDetails(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
