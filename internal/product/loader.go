package product

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"smart-search-products/internal/model"
	"smart-search-products/pkg/log"
)

// inrToBRL is the fixed conversion rate applied to the dataset's ₹
// prices. The dataset snapshot is static, so the rate is too.
const inrToBRL = 0.061

// Load reads one CSV partition per category id from dir ("<id>.csv").
// Categories without a file are skipped with a warning; the returned
// map only contains categories that were actually loaded.
func Load(l log.Logger, dir string, categoryIDs []string) (map[string][]model.Product, error) {
	ctx := context.Background()
	byCat := make(map[string][]model.Product, len(categoryIDs))

	for _, id := range categoryIDs {
		path := filepath.Join(dir, id+".csv")
		products, err := loadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				l.Warnf(ctx, "dataset: no partition for category %q (%s)", id, path)
				continue
			}
			return nil, fmt.Errorf("dataset: failed to load %s: %w", path, err)
		}
		byCat[id] = products
		l.Infof(ctx, "dataset: loaded %d products for category %q", len(products), id)
	}

	if len(byCat) == 0 {
		return nil, fmt.Errorf("dataset: no category partitions found in %s", dir)
	}

	return byCat, nil
}

func loadFile(path string) ([]model.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // dataset rows are occasionally ragged

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var products []model.Product
	for {
		row, err := r.Read()
		if err != nil {
			break
		}

		p := model.Product{
			Name:          field(row, "name"),
			MainCategory:  field(row, "main_category"),
			SubCategory:   field(row, "sub_category"),
			Image:         field(row, "image"),
			Link:          field(row, "link"),
			Ratings:       field(row, "ratings"),
			NoOfRatings:   field(row, "no_of_ratings"),
			DiscountPrice: field(row, "discount_price"),
			ActualPrice:   field(row, "actual_price"),
		}
		if p.Name == "" {
			continue
		}
		p.PriceBRL = CleanPrice(p.ActualPrice) * inrToBRL

		products = append(products, p)
	}

	return products, nil
}

// CleanPrice parses a dataset price string ("₹1,299.00") into a number.
// Returns 0 when the value is missing or unparseable.
func CleanPrice(raw string) float64 {
	cleaned := strings.NewReplacer("₹", "", ",", "", " ", "").Replace(raw)
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
