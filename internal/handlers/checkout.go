package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ergoshop/internal/cart"
	"ergoshop/internal/invoice"
	"ergoshop/internal/middleware"
	"ergoshop/internal/models"
)

type checkoutRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	Zip     string `json:"zip" binding:"required"`
}

// Checkout prices the current cart, commits it as an invoice, and clears the
// cart. A valid bearer token tags the invoice with the caller's TRN;
// otherwise it is a guest order.
func Checkout(ledger *cart.Ledger, invoices *invoice.Ledger, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout"
		defer handlePanic(c, route)

		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		trn, err := middleware.TRNFromHeader(c.GetHeader("Authorization"), secret)
		if err != nil {
			log.Println("[CHECKOUT] [ERROR] token validation failed:", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		lines, err := ledger.Lines()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}
		if len(lines) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "cart is empty")
			return
		}

		customer := models.CustomerInfo{
			Name:    req.Name,
			Address: req.Address,
			City:    req.City,
			Zip:     req.Zip,
		}

		inv, err := invoices.Commit(customer, lines, trn)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		if err := ledger.Clear(); err != nil {
			// The invoice is already durable; an unclear cart is recoverable.
			log.Printf("[%s] cart clear failed after commit: %v", route, err)
		}

		if trn == "" {
			log.Printf("[%s] guest order committed: %s", route, inv.InvoiceNumber)
		} else {
			log.Printf("[%s] order committed for %s: %s", route, trn, inv.InvoiceNumber)
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "thank you " + req.Name + ", your order has been placed",
			"invoice": inv,
		})
	}
}
