package finance

// Summary holds the metrics derived from a Profile. It is always
// recomputed in full; nothing here is cached or partially updated.
// Amounts are annual unless the field name says monthly.
type Summary struct {
	TotalIncome          float64 `json:"total_income"`
	TotalMonthlyExpenses float64 `json:"total_monthly_expenses"`
	TotalExpenses        float64 `json:"total_expenses"`
	TotalAssets          float64 `json:"total_assets"`
	TotalLiabilities     float64 `json:"total_liabilities"`
	NetWorth             float64 `json:"net_worth"`
	MonthlySurplus       float64 `json:"monthly_surplus"`
	DebtToIncomeRatio    float64 `json:"debt_to_income_ratio"` // percent
	SavingsRate          float64 `json:"savings_rate"`         // percent
}

// CalculateSummary derives a Summary from p. A nil profile yields nil;
// that is the normal "no data" signal, not an error. The function is
// pure and never mutates p.
//
// MonthlySurplus intentionally uses MonthlySalary alone, and
// DebtToIncomeRatio divides point-in-time liabilities by annual income.
// Both quirks are kept for compatibility with the stored summaries
// clients already have.
func CalculateSummary(p *Profile) *Summary {
	if p == nil {
		return nil
	}

	totalIncome := p.MonthlySalary*12 + p.AnnualBonus + p.OtherIncome
	totalMonthly := p.MonthlyRent + p.Utilities + p.FoodExpenses +
		p.Transportation + p.Entertainment + p.Healthcare + p.OtherExpenses
	totalExpenses := totalMonthly * 12
	totalAssets := p.SavingsAccount + p.CheckingAccount + p.Investments +
		p.PropertyValue + p.VehicleValue + p.OtherAssets
	totalLiabilities := p.CreditCardDebt + p.StudentLoans + p.Mortgage +
		p.CarLoan + p.OtherDebts

	s := &Summary{
		TotalIncome:          totalIncome,
		TotalMonthlyExpenses: totalMonthly,
		TotalExpenses:        totalExpenses,
		TotalAssets:          totalAssets,
		TotalLiabilities:     totalLiabilities,
		NetWorth:             totalAssets - totalLiabilities,
		MonthlySurplus:       p.MonthlySalary - totalMonthly,
	}

	// Division-by-zero guard: ratios are 0 when there is no income.
	if totalIncome > 0 {
		s.DebtToIncomeRatio = totalLiabilities / totalIncome * 100
		s.SavingsRate = (totalIncome - totalExpenses) / totalIncome * 100
	}

	return s
}
