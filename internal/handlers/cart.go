package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ergoshop/internal/cart"
)

type addCartItemRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
	Image string  `json:"img"`
}

type setQuantityRequest struct {
	// Qty arrives as a string because it comes straight from a form input;
	// anything unparsable or below 1 is coerced to 1 rather than rejected.
	Qty string `json:"qty"`
}

func GetCart(ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart"
		defer handlePanic(c, route)

		lines, err := ledger.Lines()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		priced := make([]gin.H, 0, len(lines))
		count := 0
		for _, line := range lines {
			lt := cart.PriceLine(line.Price, line.Qty)
			priced = append(priced, gin.H{
				"name":     line.Name,
				"price":    line.Price,
				"qty":      line.Qty,
				"img":      line.Image,
				"subtotal": lt.Subtotal,
				"discount": lt.Discount,
				"tax":      lt.Tax,
				"total":    lt.Total,
			})
			count += line.Qty
		}

		c.JSON(http.StatusOK, gin.H{
			"items":   priced,
			"summary": cart.PriceCart(lines),
			"count":   count,
		})
	}
}

func AddCartItem(ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if err := ledger.AddItem(req.Name, req.Price, req.Image); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		count, err := ledger.ItemCount()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		log.Printf("[%s] added %q, cart count now %d", route, req.Name, count)
		c.JSON(http.StatusOK, gin.H{"message": req.Name + " added to cart", "count": count})
	}
}

func SetCartQuantity(ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/items/:index"
		defer handlePanic(c, route)

		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid line index")
			return
		}

		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		qty, err := strconv.Atoi(req.Qty)
		if err != nil {
			qty = 1
		}

		if err := ledger.SetQuantity(index, qty); err != nil {
			if errors.Is(err, cart.ErrIndexOutOfRange) {
				respondWithError(c, http.StatusNotFound, route, "cart line not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "quantity updated"})
	}
}

func RemoveCartItem(ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/items/:index"
		defer handlePanic(c, route)

		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid line index")
			return
		}

		if err := ledger.RemoveLine(index); err != nil {
			if errors.Is(err, cart.ErrIndexOutOfRange) {
				respondWithError(c, http.StatusNotFound, route, "cart line not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "line removed"})
	}
}

func ClearCart(ledger *cart.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/clear"
		defer handlePanic(c, route)

		if err := ledger.Clear(); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
	}
}
