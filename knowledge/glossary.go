// Package knowledge holds the static financial knowledge the chatbot
// draws on: a glossary of terms, a hierarchical topic graph flattened
// at load time, and a small FAQ corpus searched by term-weighted
// similarity. Everything is immutable after NewStore returns, so
// lookups need no synchronization.
package knowledge

// glossary maps display term → definition. Lookup goes through the
// normalized form; the display casing is kept for responses.
var glossary = []Term{
	{"Net Worth", "The total value of your assets minus liabilities. Calculated as: Assets - Liabilities."},
	{"Debt-to-Income Ratio", "Your monthly debt payments divided by your gross monthly income."},
	{"Savings Rate", "The percentage of your income that you're saving each month."},
	{"Emergency Fund", "Savings to cover 3-6 months of living expenses for financial emergencies."},
	{"Asset Allocation", "How your investments are distributed among different asset classes like stocks, bonds, and cash."},
	{"Diversification", "Spreading investments across different assets to reduce risk."},
	{"401(k)", "Employer-sponsored retirement account with tax advantages."},
	{"IRA", "Individual Retirement Account with tax benefits."},
	{"Roth Conversion", "Moving funds from a traditional IRA to a Roth IRA, with tax implications."},
	{"Refinancing", "Replacing an existing loan with a new one, typically to get better terms."},
	{"Amortization", "The process of paying off debt with regular payments over time."},
	{"Tax Deductions", "Expenses that can be subtracted from your income to reduce taxable income."},
	{"Life Insurance", "Policy that pays out to beneficiaries upon the policyholder's death."},
	{"Mutual Fund", "A pooled investment vehicle that collects money from many investors to invest in a diversified portfolio of securities. Managed by professional fund managers."},
	{"SIP", "Systematic Investment Plan - A method of investing in mutual funds where you invest a fixed amount regularly."},
	{"NAV", "Net Asset Value - The per-share value of a mutual fund, calculated by dividing total assets minus liabilities by number of shares."},
	{"Expense Ratio", "The annual fee charged by mutual funds, expressed as a percentage of your investment."},
}

// Term is a single glossary entry.
type Term struct {
	Name       string
	Definition string
}
