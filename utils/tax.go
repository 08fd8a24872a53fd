package utils

// GST split applied to taxable room amounts: 2.5% CGST + 2.5% SGST.
const (
	CGSTRate     = 0.025
	SGSTRate     = 0.025
	TotalTaxRate = CGSTRate + SGSTRate
	TaxDivisor   = 1 + TotalTaxRate // taxable amount from a tax-inclusive total
)

func CalculateCGST(taxableAmount float64) float64 {
	return taxableAmount * CGSTRate
}

func CalculateSGST(taxableAmount float64) float64 {
	return taxableAmount * SGSTRate
}

func CalculateTotalWithTax(taxableAmount float64) float64 {
	return taxableAmount * TaxDivisor
}

// RateOrDefault resolves a per-booking tax-rate override. Both nil and zero
// fall back to the default, matching how unset overrides were stored.
func RateOrDefault(rate *float64, def float64) float64 {
	if rate == nil || *rate == 0 {
		return def
	}
	return *rate
}
