package model

// Product is one record of the catalog dataset, loaded once at startup.
// Raw fields keep the dataset's original text; PriceBRL carries the
// cleaned, converted price used for filtering.
type Product struct {
	Name          string
	MainCategory  string
	SubCategory   string
	Image         string
	Link          string
	Ratings       string
	NoOfRatings   string
	DiscountPrice string
	ActualPrice   string

	PriceBRL float64
}
