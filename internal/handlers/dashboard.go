package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ergoshop/internal/account"
	"ergoshop/internal/dashboard"
	"ergoshop/internal/invoice"
)

// GetDashboard returns the admin frequency tables and the invoice roll-up.
func GetDashboard(registry *account.Registry, invoices *invoice.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/dashboard"
		defer handlePanic(c, route)

		accounts, err := registry.List()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		all, err := invoices.All()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "store error")
			return
		}

		now := time.Now()
		c.JSON(http.StatusOK, gin.H{
			"genderFrequency": dashboard.GenderFrequency(accounts),
			"ageGroups":       dashboard.AgeGroupFrequency(accounts, now),
			"invoices":        dashboard.InvoiceRollup(all),
		})
	}
}
