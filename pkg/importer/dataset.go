package importer

import (
	"fmt"
	"strconv"
	"strings"

	"Nutrition-Catalog/entities"

	"github.com/xuri/excelize/v2"
)

type (
	// FoodDetailRow is one row of the food metadata workbook after header
	// normalization.
	FoodDetailRow struct {
		PublicFoodKey      string
		Classification     string
		ClassificationName string
		Name               string
		Description        string
		Derivation         string
		SamplingDetails    string
	}

	// RecipeRow is one row of the recipe composition workbook. The weight is
	// kept raw so bad cells can be skipped with a warning at import time.
	RecipeRow struct {
		PublicFoodKey           string
		Name                    string
		IngredientPublicFoodKey string
		IngredientName          string
		IngredientWeight        string
	}

	// NutrientRow maps canonical column names to raw cell values for one
	// food of the nutrient workbook.
	NutrientRow struct {
		PublicFoodKey string
		Values        map[string]string
	}
)

// nutrientColumns is the explicit mapping from canonical spreadsheet header
// to nutrient field. Headers outside this table (plus public_food_key) make
// the nutrient sheet fail loudly at load time.
var nutrientColumns = map[string]func(*entities.NutrientValues, *float64){
	"energy_with_dietary_fibre_equated_(kj)":            func(n *entities.NutrientValues, v *float64) { n.Energy = v },
	"energy_without_dietary_fibre_equated_(kj)":         func(n *entities.NutrientValues, v *float64) { n.EnergyWithoutFiber = v },
	"moisture_(water)_(g)":                              func(n *entities.NutrientValues, v *float64) { n.Water = v },
	"protein_(g)":                                       func(n *entities.NutrientValues, v *float64) { n.Protein = v },
	"fat_total_(g)":                                     func(n *entities.NutrientValues, v *float64) { n.Fat = v },
	"available_carbohydrate_without_sugar_alcohols_(g)": func(n *entities.NutrientValues, v *float64) { n.Carbohydrates = v },
	"total_dietary_fibre_(g)":                           func(n *entities.NutrientValues, v *float64) { n.Fiber = v },
	"total_sugars_(g)":                                  func(n *entities.NutrientValues, v *float64) { n.Sugars = v },
	"added_sugars_(g)":                                  func(n *entities.NutrientValues, v *float64) { n.AddedSugars = v },
	"total_saturated_fatty_acids_equated_(g)":           func(n *entities.NutrientValues, v *float64) { n.SaturatedFat = v },
	"total_monounsaturated_fatty_acids_equated_(g)":     func(n *entities.NutrientValues, v *float64) { n.MonounsaturatedFat = v },
	"total_polyunsaturated_fatty_acids_equated_(g)":     func(n *entities.NutrientValues, v *float64) { n.PolyunsaturatedFat = v },
	"total_trans_fatty_acids_imputed_(g)":               func(n *entities.NutrientValues, v *float64) { n.TransFat = v },
	"cholesterol_(mg)":                                  func(n *entities.NutrientValues, v *float64) { n.Cholesterol = v },
	"sodium_(na)_(mg)":                                  func(n *entities.NutrientValues, v *float64) { n.Sodium = v },
	"potassium_(k)_(mg)":                                func(n *entities.NutrientValues, v *float64) { n.Potassium = v },
	"calcium_(ca)_(mg)":                                 func(n *entities.NutrientValues, v *float64) { n.Calcium = v },
	"iron_(fe)_(mg)":                                    func(n *entities.NutrientValues, v *float64) { n.Iron = v },
	"magnesium_(mg)_(mg)":                               func(n *entities.NutrientValues, v *float64) { n.Magnesium = v },
	"zinc_(zn)_(mg)":                                    func(n *entities.NutrientValues, v *float64) { n.Zinc = v },
	"phosphorus_(p)_(mg)":                               func(n *entities.NutrientValues, v *float64) { n.Phosphorus = v },
	"vitamin_a_retinol_equivalents_(ug)":                func(n *entities.NutrientValues, v *float64) { n.VitaminA = v },
	"vitamin_c_(mg)":                                    func(n *entities.NutrientValues, v *float64) { n.VitaminC = v },
	"vitamin_d3_equivalents_(ug)":                       func(n *entities.NutrientValues, v *float64) { n.VitaminD = v },
	"vitamin_e_(mg)":                                    func(n *entities.NutrientValues, v *float64) { n.VitaminE = v },
	"cobalamin_(b12)_(ug)":                              func(n *entities.NutrientValues, v *float64) { n.VitaminB12 = v },
	"total_folates_(ug)":                                func(n *entities.NutrientValues, v *float64) { n.Folate = v },
	"caffeine_(mg)":                                     func(n *entities.NutrientValues, v *float64) { n.Caffeine = v },
	"alcohol_(g)":                                       func(n *entities.NutrientValues, v *float64) { n.Alcohol = v },
}

// nutrientColumnNames lists the database columns touched by a nutrient
// update, so NULL cells overwrite stale values too.
var nutrientColumnNames = []string{
	"energy", "energy_without_fiber", "water", "protein", "fat",
	"carbohydrates", "fiber", "sugars", "added_sugars", "saturated_fat",
	"monounsaturated_fat", "polyunsaturated_fat", "trans_fat", "cholesterol",
	"sodium", "potassium", "calcium", "iron", "magnesium", "zinc",
	"phosphorus", "vitamin_a", "vitamin_c", "vitamin_d", "vitamin_e",
	"vitamin_b12", "folate", "caffeine", "alcohol",
}

const keyColumn = "public_food_key"

// normalizeHeader canonicalizes a spreadsheet header: line breaks and commas
// stripped, whitespace collapsed, lower-cased, underscore-joined.
func normalizeHeader(header string) string {
	header = strings.ReplaceAll(header, "\r\n", "")
	header = strings.ReplaceAll(header, "\n", "")
	header = strings.ReplaceAll(header, ",", "")
	header = strings.Join(strings.Fields(header), " ")
	return strings.ReplaceAll(strings.ToLower(header), " ", "_")
}

// parseDecimal keeps unknown cells NULL: empty or non-numeric values map to
// nil, never zero. Recipe-time aggregation uses the opposite policy.
func parseDecimal(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

// readSheet returns the normalized header row and one map per data row,
// keyed by normalized header.
func readSheet(path string, sheetIndex int) ([]string, []map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheetIndex >= len(sheets) {
		return nil, nil, fmt.Errorf("workbook %s has no sheet at index %d", path, sheetIndex)
	}

	rows, err := f.GetRows(sheets[sheetIndex])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s of %s: %w", sheets[sheetIndex], path, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = normalizeHeader(header)
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = row[i]
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}
	return headers, records, nil
}

func LoadFoodDetails(path string) ([]FoodDetailRow, error) {
	_, records, err := readSheet(path, 0)
	if err != nil {
		return nil, err
	}

	rows := make([]FoodDetailRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, FoodDetailRow{
			PublicFoodKey:      strings.TrimSpace(record[keyColumn]),
			Classification:     strings.TrimSpace(record["classification"]),
			ClassificationName: strings.TrimSpace(record["classification_name"]),
			Name:               strings.TrimSpace(record["food_name"]),
			Description:        strings.TrimSpace(record["food_description"]),
			Derivation:         strings.TrimSpace(record["derivation"]),
			SamplingDetails:    strings.TrimSpace(record["sampling_details"]),
		})
	}
	return rows, nil
}

func LoadRecipeRows(path string) ([]RecipeRow, error) {
	_, records, err := readSheet(path, 0)
	if err != nil {
		return nil, err
	}

	rows := make([]RecipeRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, RecipeRow{
			PublicFoodKey:           strings.TrimSpace(record[keyColumn]),
			Name:                    strings.TrimSpace(record["food_name"]),
			IngredientPublicFoodKey: strings.TrimSpace(record["ingredient_public_food_key"]),
			IngredientName:          strings.TrimSpace(record["ingredient_name"]),
			IngredientWeight:        strings.TrimSpace(record["ingredient_weight_(g)"]),
		})
	}
	return rows, nil
}

// LoadNutrientRows reads the second sheet of the nutrient workbook and
// validates every header against the canonical column table before touching
// any data row. An unknown column is a hard error rather than a silently
// dropped field.
func LoadNutrientRows(path string) ([]NutrientRow, error) {
	headers, records, err := readSheet(path, 1)
	if err != nil {
		return nil, err
	}
	if err := validateNutrientHeaders(headers); err != nil {
		return nil, err
	}

	rows := make([]NutrientRow, 0, len(records))
	for _, record := range records {
		row := NutrientRow{
			PublicFoodKey: strings.TrimSpace(record[keyColumn]),
			Values:        make(map[string]string, len(nutrientColumns)),
		}
		for column := range nutrientColumns {
			row.Values[column] = record[column]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func validateNutrientHeaders(headers []string) error {
	hasKey := false
	for _, header := range headers {
		if header == keyColumn {
			hasKey = true
			continue
		}
		if _, ok := nutrientColumns[header]; !ok {
			return fmt.Errorf("unrecognized nutrient column %q", header)
		}
	}
	if !hasKey {
		return fmt.Errorf("nutrient sheet is missing the %q column", keyColumn)
	}
	return nil
}
