package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ergoshop/internal/catalog"
	"ergoshop/internal/models"
)

/*
GET /products
- optional ?category= exact match
- optional ?search= case-insensitive name substring
*/
func GetProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		log.Printf("[%s] hit category=%s search=%s", route, c.Query("category"), c.Query("search"))

		products, err := cat.List()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		category := strings.TrimSpace(c.Query("category"))
		search := strings.ToLower(strings.TrimSpace(c.Query("search")))

		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if category != "" && p.Category != category {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
				continue
			}
			filtered = append(filtered, p)
		}

		log.Printf("[%s] returning %d products", route, len(filtered))
		c.JSON(http.StatusOK, filtered)
	}
}

func GetCategories(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /categories"
		defer handlePanic(c, route)

		categories, err := cat.Categories()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}
