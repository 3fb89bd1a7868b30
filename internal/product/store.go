package product

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"smart-search-products/internal/model"
	"smart-search-products/pkg/log"
)

const summaryCacheSize = 256

// Store holds the immutable product dataset partitioned by category.
// It is loaded once at process start and is safe for unsynchronized
// concurrent reads; the summary cache is internally synchronized.
type Store struct {
	l     log.Logger
	byCat map[string][]model.Product
	cache *lru.Cache[string, string]
}

// New creates a Store over the given category→products snapshot.
func New(l log.Logger, byCat map[string][]model.Product) *Store {
	cache, _ := lru.New[string, string](summaryCacheSize)
	return &Store{
		l:     l,
		byCat: byCat,
		cache: cache,
	}
}

// Categories returns the ids that actually have a dataset partition.
func (s *Store) Categories() []string {
	out := make([]string, 0, len(s.byCat))
	for id := range s.byCat {
		out = append(out, id)
	}
	return out
}

// Summary returns a bounded text block describing up to limit products
// of the category, keeping only products at or under maxPrice when it
// is set. Returns "" when no product matches. Deterministic for
// identical inputs within a process lifetime, so results are cached.
func (s *Store) Summary(category string, limit int, maxPrice *float64) string {
	key := summaryKey(category, limit, maxPrice)
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	products, ok := s.byCat[category]
	if !ok {
		return ""
	}

	var b strings.Builder
	count := 0
	for _, p := range products {
		if count >= limit {
			break
		}
		if maxPrice != nil && p.PriceBRL > *maxPrice {
			continue
		}
		fmt.Fprintf(&b, "NOME: %s | PRECO: %s | RATING: %s | IMAGEM: %s\n",
			p.Name, FormatBRL(p.PriceBRL), p.Ratings, p.Image)
		count++
	}

	if count == 0 {
		s.cache.Add(key, "")
		return ""
	}

	summary := fmt.Sprintf("Categoria %s (%d itens):\n%s", category, count, b.String())
	s.cache.Add(key, summary)
	return summary
}

// PageOf returns one page of the category's full unfiltered product
// list, with prices rendered in BRL. ErrCategoryNotFound when the
// category has no dataset partition.
func (s *Store) PageOf(category string, page, pageSize int) (Page, error) {
	products, ok := s.byCat[category]
	if !ok {
		return Page{}, ErrCategoryNotFound
	}

	total := len(products)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	records := make([]Record, 0, end-start)
	for _, p := range products[start:end] {
		records = append(records, Record{
			Name:          p.Name,
			MainCategory:  p.MainCategory,
			SubCategory:   p.SubCategory,
			Image:         p.Image,
			Link:          p.Link,
			Ratings:       p.Ratings,
			NoOfRatings:   p.NoOfRatings,
			DiscountPrice: p.DiscountPrice,
			ActualPrice:   FormatBRL(p.PriceBRL),
		})
	}

	return Page{
		Products:      records,
		Page:          page,
		PageSize:      pageSize,
		TotalPages:    totalPages,
		TotalProducts: total,
	}, nil
}

// FormatBRL renders a price as a localized currency string.
func FormatBRL(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

func summaryKey(category string, limit int, maxPrice *float64) string {
	if maxPrice == nil {
		return fmt.Sprintf("%s|%d|-", category, limit)
	}
	return fmt.Sprintf("%s|%d|%v", category, limit, *maxPrice)
}
