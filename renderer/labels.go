package renderer

import "github.com/etnz/cookiecost"

// Label identifies a user facing text.
type Label string

const (
	Title              Label = "cookieCostCalculator"
	Name               Label = "name"
	BatchSize          Label = "numberOfCookiesInBatch"
	CookingTime        Label = "cookingTime"
	IngredientName     Label = "ingredientName"
	IngredientQuantity Label = "ingredientQuantity"
	Unit               Label = "unit"
	PricePerUnit       Label = "pricePerUnit"
	UnitConversion     Label = "unitConversion"
	Cost               Label = "cost"
	Share              Label = "share"
	TotalCost          Label = "totalCost"
	CostPerUnit        Label = "costPerUnit"
	Ingredients        Label = "ingredients"
	RecentCalculations Label = "recentCalculations"
	LastUpdate         Label = "lastUpdate"
	Minutes            Label = "minutes"
	Untitled           Label = "untitled"
	NoIngredients      Label = "noIngredients"
	NoSaved            Label = "noSavedCalculations"
	NameRequired       Label = "nameRequired"
	EnterName          Label = "enterName"
	ConfirmLoad        Label = "confirmLoad"
	Saved              Label = "saved"
	ImportSuccess      Label = "importSuccess"
	ExportSuccess      Label = "exportSuccess"
	InvalidImport      Label = "invalidImportData"
	English            Label = "english"
	Spanish            Label = "spanish"
)

var labels = map[Label][2]string{
	Title:              {"Cookie Cost Calculator", "Calculadora de Costo de Galletas"},
	Name:               {"Name", "Nombre"},
	BatchSize:          {"Number of Cookies in Batch", "Número de Galletas en Lote"},
	CookingTime:        {"Cooking Time", "Tiempo de Cocción"},
	IngredientName:     {"Ingredient Name", "Nombre del Ingrediente"},
	IngredientQuantity: {"Ingredient Quantity", "Cantidad del Ingrediente"},
	Unit:               {"Unit", "Unidad"},
	PricePerUnit:       {"Price per Unit", "Precio por Unidad"},
	UnitConversion:     {"Unit Conversion", "Conversión de Unidad"},
	Cost:               {"Cost", "Costo"},
	Share:              {"Share", "Porcentaje"},
	TotalCost:          {"Total Cost", "Costo Total"},
	CostPerUnit:        {"Cost per Unit", "Costo por Unidad"},
	Ingredients:        {"Ingredients", "Ingredientes"},
	RecentCalculations: {"Recent Calculations", "Cálculos Recientes"},
	LastUpdate:         {"Last Update", "Última Actualización"},
	Minutes:            {"minutes", "minutos"},
	Untitled:           {"Untitled", "Sin Nombre"},
	NoIngredients:      {"No ingredients yet.", "Aún no hay ingredientes."},
	NoSaved:            {"No saved calculations", "No hay cálculos guardados"},
	NameRequired:       {"Please provide a name for this calculation to save it.", "Por favor, proporciona un nombre para este cálculo para guardarlo."},
	EnterName:          {"Enter calculation name", "Ingrese el nombre del cálculo"},
	ConfirmLoad:        {"Are you sure you want to load this calculation? Unsaved changes will be lost.", "¿Estás seguro de que quieres cargar este cálculo? Los cambios no guardados se perderán."},
	Saved:              {"Calculation saved", "Cálculo guardado"},
	ImportSuccess:      {"Data imported successfully", "Datos importados con éxito"},
	ExportSuccess:      {"Data exported successfully", "Datos exportados con éxito"},
	InvalidImport:      {"Invalid import data", "Datos de importación no válidos"},
	English:            {"English", "Inglés"},
	Spanish:            {"Spanish", "Español"},
}

// T returns the text of 'l' in 'lang'. Unknown labels return their key.
func T(l Label, lang cookiecost.Language) string {
	texts, ok := labels[l]
	if !ok {
		return string(l)
	}
	if lang == cookiecost.Spanish {
		return texts[1]
	}
	return texts[0]
}
