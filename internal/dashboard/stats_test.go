package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ergoshop/internal/models"
)

var now = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func TestGenderFrequency(t *testing.T) {
	accounts := []models.Account{
		{Gender: "Male"},
		{Gender: "Female"},
		{Gender: "Female"},
		{Gender: "Other"},
	}

	buckets := GenderFrequency(accounts)
	assert.Equal(t, []Bucket{
		{Label: "Male", Count: 1, Percentage: 25},
		{Label: "Female", Count: 2, Percentage: 50},
		{Label: "Other", Count: 1, Percentage: 25},
	}, buckets)
}

func TestGenderFrequencyEmpty(t *testing.T) {
	buckets := GenderFrequency(nil)
	for _, b := range buckets {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.Percentage)
	}
}

func TestAgeGroupFrequency(t *testing.T) {
	accounts := []models.Account{
		{DOB: "2004-01-01"}, // 22
		{DOB: "1995-01-01"}, // 31
		{DOB: "1992-06-15"}, // 34
		{DOB: "1950-01-01"}, // 76
		{DOB: "garbage"},    // skipped, still in the percentage base
	}

	buckets := AgeGroupFrequency(accounts, now)
	assert.Equal(t, "18-25", buckets[0].Label)
	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, 20.0, buckets[0].Percentage)
	assert.Equal(t, 2, buckets[1].Count) // 26-35
	assert.Equal(t, 40.0, buckets[1].Percentage)
	assert.Equal(t, 0, buckets[2].Count)
	assert.Equal(t, 0, buckets[3].Count)
	assert.Equal(t, 1, buckets[4].Count) // 56+
}

func TestPercentageRoundsToOneDecimal(t *testing.T) {
	accounts := []models.Account{
		{Gender: "Male"},
		{Gender: "Female"},
		{Gender: "Female"},
	}
	buckets := GenderFrequency(accounts)
	assert.Equal(t, 33.3, buckets[0].Percentage)
	assert.Equal(t, 66.7, buckets[1].Percentage)
}

func TestInvoiceRollup(t *testing.T) {
	invoices := []models.Invoice{
		{InvoiceNumber: "INV-1", Customer: models.CustomerInfo{Name: "Dana"}, InvoiceDate: now, GrandTotal: 51.75},
		{InvoiceNumber: "INV-2", Customer: models.CustomerInfo{Name: "Lee"}, InvoiceDate: now, GrandTotal: 103.5},
	}

	summaries := InvoiceRollup(invoices)
	assert.Equal(t, []InvoiceSummary{
		{InvoiceNumber: "INV-1", Customer: "Dana", InvoiceDate: now, GrandTotal: 51.75},
		{InvoiceNumber: "INV-2", Customer: "Lee", InvoiceDate: now, GrandTotal: 103.5},
	}, summaries)
}
