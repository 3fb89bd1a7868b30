package assistant

// GenerateInput is one shopping query. Budget, when set, overrides
// whatever budget the analyzer infers from the prompt text.
type GenerateInput struct {
	Prompt string
	Budget *float64
}

// GenerateOutput is the composed answer returned to the caller.
type GenerateOutput struct {
	Response          string
	DetectedBudget    *float64
	QueriedCategories []string
}

// AnalysisResult is the validated output of the intent analysis stage.
// Categories only contains ids that are members of the catalog.
type AnalysisResult struct {
	Budget     *float64
	Categories []string
}

// ProductsInput selects one page of a category's product list.
type ProductsInput struct {
	Category string
	Page     int
	PageSize int
}
