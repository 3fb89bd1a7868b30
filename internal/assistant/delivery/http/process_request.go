package http

import (
	"github.com/gin-gonic/gin"
)

// processGenerateReq binds and validates the generate request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processProductsReq binds the pagination query parameters and the
// category path parameter.
func (h *handler) processProductsReq(c *gin.Context) (productsReq, error) {
	var req productsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.Category = c.Param("category")
	return req, nil
}
