package http

import (
	"smart-search-products/internal/assistant"
)

// --- Request DTOs ---

type generateReq struct {
	Prompt string   `json:"prompt" binding:"required"`
	Budget *float64 `json:"budget" binding:"omitempty,gte=0"`
}

func (r generateReq) toInput() assistant.GenerateInput {
	return assistant.GenerateInput{
		Prompt: r.Prompt,
		Budget: r.Budget,
	}
}

type productsReq struct {
	Category string `form:"-"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func (r productsReq) toInput() assistant.ProductsInput {
	page := r.Page
	if page < 1 {
		page = 1
	}
	pageSize := r.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return assistant.ProductsInput{
		Category: r.Category,
		Page:     page,
		PageSize: pageSize,
	}
}

// --- Response DTOs ---

// generateResp field names are the wire contract of POST /generate.
type generateResp struct {
	Response          string   `json:"response"`
	DetectedBudget    *float64 `json:"detected_budget"`
	QueriedCategories []string `json:"queried_categories"`
}

func newGenerateResp(out assistant.GenerateOutput) generateResp {
	categories := out.QueriedCategories
	if categories == nil {
		categories = []string{}
	}
	return generateResp{
		Response:          out.Response,
		DetectedBudget:    out.DetectedBudget,
		QueriedCategories: categories,
	}
}
