package dashboard

import (
	"math"
	"time"

	"ergoshop/internal/account"
	"ergoshop/internal/models"
)

// Bucket is one row of a frequency table.
type Bucket struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// InvoiceSummary is the dashboard roll-up of one committed invoice.
type InvoiceSummary struct {
	InvoiceNumber string    `json:"invoiceNumber"`
	Customer      string    `json:"customer"`
	InvoiceDate   time.Time `json:"invoiceDate"`
	GrandTotal    float64   `json:"grandTotal"`
}

var genderLabels = []string{"Male", "Female", "Other"}

var ageGroups = []struct {
	label    string
	min, max int
}{
	{"18-25", 18, 25},
	{"26-35", 26, 35},
	{"36-45", 36, 45},
	{"46-55", 46, 55},
	{"56+", 56, math.MaxInt},
}

// GenderFrequency counts registered accounts per gender. Percentages are over
// all accounts, so unrecognized gender values lower the sum below 100.
func GenderFrequency(accounts []models.Account) []Bucket {
	counts := make(map[string]int, len(genderLabels))
	for _, a := range accounts {
		counts[a.Gender]++
	}

	buckets := make([]Bucket, 0, len(genderLabels))
	for _, label := range genderLabels {
		buckets = append(buckets, Bucket{
			Label:      label,
			Count:      counts[label],
			Percentage: percentage(counts[label], len(accounts)),
		})
	}
	return buckets
}

// AgeGroupFrequency buckets registered accounts by age at the given time.
// Accounts with an unparsable date of birth are skipped but still count
// toward the percentage base, matching the gender table.
func AgeGroupFrequency(accounts []models.Account, now time.Time) []Bucket {
	counts := make([]int, len(ageGroups))
	for _, a := range accounts {
		age, err := account.Age(a.DOB, now)
		if err != nil {
			continue
		}
		for i, g := range ageGroups {
			if age >= g.min && age <= g.max {
				counts[i]++
				break
			}
		}
	}

	buckets := make([]Bucket, 0, len(ageGroups))
	for i, g := range ageGroups {
		buckets = append(buckets, Bucket{
			Label:      g.label,
			Count:      counts[i],
			Percentage: percentage(counts[i], len(accounts)),
		})
	}
	return buckets
}

// InvoiceRollup summarizes every invoice in ledger order.
func InvoiceRollup(invoices []models.Invoice) []InvoiceSummary {
	summaries := make([]InvoiceSummary, 0, len(invoices))
	for _, inv := range invoices {
		summaries = append(summaries, InvoiceSummary{
			InvoiceNumber: inv.InvoiceNumber,
			Customer:      inv.Customer.Name,
			InvoiceDate:   inv.InvoiceDate,
			GrandTotal:    inv.GrandTotal,
		})
	}
	return summaries
}

// percentage rounds to one decimal, like the dashboard displays it.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}
