package http

import (
	"github.com/gin-gonic/gin"

	"smart-search-products/pkg/response"
)

// Generate godoc
// @Summary     Generate a shopping recommendation
// @Description Runs the intent analysis + grounded composition pipeline for a free-text query.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Query and optional budget ceiling"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Detail "Bad Request"
// @Failure     500 {object} response.Detail "Internal Server Error"
// @Router      /generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newGenerateResp(output))
}

// Categories godoc
// @Summary     List categories
// @Description Returns the full closed category catalog, in catalog order.
// @Tags        Assistant
// @Produce     json
// @Success     200 {array} catalog.Category
// @Router      /categories [GET]
func (h *handler) Categories(c *gin.Context) {
	response.OK(c, h.uc.ListCategories(c.Request.Context()))
}

// Products godoc
// @Summary     List products of a category
// @Description Returns one page of a category's product list with localized prices.
// @Tags        Assistant
// @Produce     json
// @Param       category  path  string true  "Category id"
// @Param       page      query int    false "Page (default: 1)"
// @Param       page_size query int    false "Page size (default: 20)"
// @Success     200 {object} product.Page
// @Failure     404 {object} response.Detail "Category not found"
// @Router      /products/{category} [GET]
func (h *handler) Products(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProductsReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	page, err := h.uc.ListProducts(ctx, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, page)
}
