// Package finance defines the client financial profile and the pure
// summary metrics derived from it.
package finance

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// RiskTolerance is the client's declared investment risk appetite,
// always one of the three canonical values.
type RiskTolerance string

const (
	RiskLow      RiskTolerance = "Low"
	RiskModerate RiskTolerance = "Moderate"
	RiskHigh     RiskTolerance = "High"
)

// Profile is the structured financial data a client submits. At most
// one live instance exists per client. The reasoning engine treats it
// as read-only input; all monetary fields default to zero.
type Profile struct {
	// Income
	MonthlySalary float64 `json:"monthly_salary" yaml:"monthly_salary"`
	AnnualBonus   float64 `json:"annual_bonus" yaml:"annual_bonus"`
	OtherIncome   float64 `json:"other_income" yaml:"other_income"`

	// Monthly expenses
	MonthlyRent    float64 `json:"monthly_rent" yaml:"monthly_rent"`
	Utilities      float64 `json:"utilities" yaml:"utilities"`
	FoodExpenses   float64 `json:"food_expenses" yaml:"food_expenses"`
	Transportation float64 `json:"transportation" yaml:"transportation"`
	Entertainment  float64 `json:"entertainment" yaml:"entertainment"`
	Healthcare     float64 `json:"healthcare" yaml:"healthcare"`
	OtherExpenses  float64 `json:"other_expenses" yaml:"other_expenses"`

	// Assets
	SavingsAccount  float64 `json:"savings_account" yaml:"savings_account"`
	CheckingAccount float64 `json:"checking_account" yaml:"checking_account"`
	Investments     float64 `json:"investments" yaml:"investments"`
	PropertyValue   float64 `json:"property_value" yaml:"property_value"`
	VehicleValue    float64 `json:"vehicle_value" yaml:"vehicle_value"`
	OtherAssets     float64 `json:"other_assets" yaml:"other_assets"`

	// Liabilities
	CreditCardDebt float64 `json:"credit_card_debt" yaml:"credit_card_debt"`
	StudentLoans   float64 `json:"student_loans" yaml:"student_loans"`
	Mortgage       float64 `json:"mortgage" yaml:"mortgage"`
	CarLoan        float64 `json:"car_loan" yaml:"car_loan"`
	OtherDebts     float64 `json:"other_debts" yaml:"other_debts"`

	// Goals
	FinancialGoals string        `json:"financial_goals" yaml:"financial_goals"`
	RiskTolerance  RiskTolerance `json:"risk_tolerance" yaml:"risk_tolerance"`
}

// LiquidAssets returns the cash the client can reach without selling
// anything, used for emergency-fund analysis.
func (p *Profile) LiquidAssets() float64 {
	return p.SavingsAccount + p.CheckingAccount
}

// NormalizeRiskTolerance coerces any ingested representation of risk
// tolerance to one of the three canonical values. A slice takes its
// last element; strings are trimmed and capitalized; anything that is
// still not Low/Moderate/High — including absent or wrong-typed input —
// becomes Moderate. Runs identically wherever a profile is ingested.
func NormalizeRiskTolerance(raw any) RiskTolerance {
	switch v := raw.(type) {
	case nil:
		return RiskModerate
	case RiskTolerance:
		return normalizeRiskString(string(v))
	case string:
		return normalizeRiskString(v)
	case []string:
		if len(v) == 0 {
			return RiskModerate
		}
		return normalizeRiskString(v[len(v)-1])
	case []any:
		if len(v) == 0 {
			return RiskModerate
		}
		return NormalizeRiskTolerance(v[len(v)-1])
	default:
		return RiskModerate
	}
}

func normalizeRiskString(s string) RiskTolerance {
	s = capitalize(s)
	switch RiskTolerance(s) {
	case RiskLow, RiskModerate, RiskHigh:
		return RiskTolerance(s)
	default:
		return RiskModerate
	}
}

// capitalize trims s and matches the ingestion rule: first rune upper,
// remainder lower.
func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
