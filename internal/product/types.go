package product

// Record is the wire representation of one product row. Field names
// follow the dataset columns and are part of the pagination contract.
type Record struct {
	Name          string `json:"name"`
	MainCategory  string `json:"main_category"`
	SubCategory   string `json:"sub_category"`
	Image         string `json:"image"`
	Link          string `json:"link"`
	Ratings       string `json:"ratings"`
	NoOfRatings   string `json:"no_of_ratings"`
	DiscountPrice string `json:"discount_price"`
	ActualPrice   string `json:"actual_price"`
}

// Page is one page of a category's product list.
type Page struct {
	Products      []Record `json:"products"`
	Page          int      `json:"page"`
	PageSize      int      `json:"page_size"`
	TotalPages    int      `json:"total_pages"`
	TotalProducts int      `json:"total_products"`
}
