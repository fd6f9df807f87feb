package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ergoshop/internal/invoice"
	"ergoshop/internal/middleware"
)

// GetMyInvoices lists the authenticated shopper's invoices in creation order.
func GetMyInvoices(invoices *invoice.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /invoices"
		defer handlePanic(c, route)

		trn := c.GetString(middleware.ContextTRN)
		list, err := invoices.ListFor(trn)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

/*
GET /admin/api/invoices
- pagination optional; page + limit absent → all invoices
*/
func GetAllInvoices(invoices *invoice.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/invoices"
		defer handlePanic(c, route)

		all, err := invoices.All()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		pageStr := c.Query("page")
		limitStr := c.Query("limit")
		if pageStr == "" && limitStr == "" {
			c.JSON(http.StatusOK, all)
			return
		}

		page, limit, err := parsePaginationParams(pageStr, limitStr)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
			return
		}

		start := (page - 1) * limit
		if start > len(all) {
			start = len(all)
		}
		end := start + limit
		if end > len(all) {
			end = len(all)
		}

		c.JSON(http.StatusOK, gin.H{
			"data": all[start:end],
			"pagination": gin.H{
				"page":  page,
				"limit": limit,
				"total": len(all),
			},
		})
	}
}
