package advisor

import (
	"fmt"
	"strings"

	"github.com/finsage/finsage/finance"
	"github.com/finsage/finsage/internal/money"
	"github.com/finsage/finsage/internal/textnorm"
)

func contains(msg, kw string) bool {
	return textnorm.ContainsWord(msg, kw)
}

// emergencyFundTarget is six months of expenses.
func emergencyFundTarget(s *finance.Summary) float64 {
	return s.TotalExpenses / 2
}

func netWorthAdvisor() Advisor {
	return Advisor{
		Name:     "net_worth",
		Keywords: []string{"net worth", "wealth", "total value", "financially healthy"},
		Respond: func(p *finance.Profile, s *finance.Summary, msg string) string {
			var context string
			switch {
			case s.NetWorth < 0:
				context = " Focus on reducing debt and building positive net worth."
			case s.NetWorth < s.TotalIncome:
				context = " Consider increasing savings and investments to grow your net worth."
			default:
				context = " You're doing well! Consider strategies to preserve and grow your wealth."
			}
			return fmt.Sprintf("Your current net worth is %s.%s", money.Format(s.NetWorth), context)
		},
	}
}

func savingsAdvisor() Advisor {
	return Advisor{
		Name:     "savings",
		Keywords: []string{"save", "saving", "savings", "emergency fund"},
		Respond: func(p *finance.Profile, s *finance.Summary, msg string) string {
			var b strings.Builder
			fmt.Fprintf(&b, "Your savings rate is %s of your income.", money.Percent(s.SavingsRate))

			switch {
			case s.SavingsRate < 15:
				b.WriteString(" Financial experts typically recommend saving at least 15-20% of income.")
			case s.SavingsRate < 20:
				b.WriteString(" You're making good progress. Consider increasing to 20% for stronger financial security.")
			default:
				b.WriteString(" Excellent savings rate! You're well on track for financial goals.")
			}

			if s.MonthlySurplus > 0 {
				fmt.Fprintf(&b, "\n\nYou have a monthly surplus of %s. Consider automating this amount into a high-yield savings account.",
					money.Format(s.MonthlySurplus))
			} else if s.MonthlySurplus < 0 {
				b.WriteString("\n\nYou're spending more than you earn. Let's work on reducing expenses first.")
			}

			target := emergencyFundTarget(s)
			liquid := p.LiquidAssets()
			if liquid < target {
				fmt.Fprintf(&b, "\n\nPriority: build an emergency fund of %s (6 months of expenses). You currently have %s in liquid savings.",
					money.Format(target), money.Format(liquid))
			} else {
				b.WriteString("\n\nGreat! You have a solid emergency fund. Consider investing additional savings for long-term growth.")
			}
			return b.String()
		},
	}
}

func debtAdvisor() Advisor {
	return Advisor{
		Name:     "debt",
		Keywords: []string{"debt", "loan", "credit card", "mortgage", "owe"},
		Respond: func(p *finance.Profile, s *finance.Summary, msg string) string {
			if s.TotalLiabilities == 0 {
				return "Congratulations! You're debt-free. Focus on building wealth through savings and investments."
			}

			var b strings.Builder
			fmt.Fprintf(&b, "You have %s in total debt. ", money.Format(s.TotalLiabilities))
			switch {
			case s.DebtToIncomeRatio > 40:
				b.WriteString("Your debt-to-income ratio is high. Focus on aggressive debt repayment.")
			case s.DebtToIncomeRatio > 20:
				b.WriteString("Your debt level is manageable but could be improved.")
			default:
				b.WriteString("Your debt level is reasonable.")
			}

			if p.CreditCardDebt > 0 {
				fmt.Fprintf(&b, "\n\nPriority: pay off your credit card debt (%s) first - it likely has the highest interest rate.",
					money.Format(p.CreditCardDebt))
			}
			b.WriteString("\n\nConsider the debt avalanche method: pay minimums on all debts, then put extra money toward the highest interest rate debt.")
			return b.String()
		},
	}
}

func retirementAdvisor() Advisor {
	return Advisor{
		Name:     "retirement",
		Keywords: []string{"retire", "retirement", "401k", "401(k)", "ira"},
		Respond: func(p *finance.Profile, s *finance.Summary, msg string) string {
			var b strings.Builder
			fmt.Fprintf(&b, "You have %s in investments working toward retirement.", money.Format(p.Investments))

			if p.Investments < s.TotalIncome {
				b.WriteString(" Consider increasing retirement contributions to build your nest egg faster.")
			} else {
				b.WriteString(" You're building a solid base. Continue regular contributions.")
			}

			if s.MonthlySurplus > 0 {
				fmt.Fprintf(&b, "\n\nWith your monthly surplus of %s, maximize tax-advantaged accounts like a 401(k) or IRA before taxable investing.",
					money.Format(s.MonthlySurplus))
			}
			return b.String()
		},
	}
}

func incomeAdvisor() Advisor {
	return Advisor{
		Name:     "income",
		Keywords: []string{"income", "earn", "salary"},
		Respond: func(p *finance.Profile, s *finance.Summary, msg string) string {
			var b strings.Builder
			fmt.Fprintf(&b, "Your total annual income is %s", money.Format(s.TotalIncome))
			var parts []string
			if p.MonthlySalary > 0 {
				parts = append(parts, fmt.Sprintf("%s/month salary", money.Format(p.MonthlySalary)))
			}
			if p.AnnualBonus > 0 {
				parts = append(parts, fmt.Sprintf("%s annual bonus", money.Format(p.AnnualBonus)))
			}
			if p.OtherIncome > 0 {
				parts = append(parts, fmt.Sprintf("%s other income", money.Format(p.OtherIncome)))
			}
			if len(parts) > 0 {
				fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
			}
			b.WriteString(".")
			return b.String()
		},
	}
}

func budgetAdvisor() Advisor {
	return Advisor{
		Name:     "budget",
		Keywords: []string{"budget", "expense", "spending", "money management"},
		Respond: func(p *finance.Profile, s *finance.Summary, msg string) string {
			var b strings.Builder
			b.WriteString("Here's your budget analysis:\n")
			if s.MonthlySurplus < 0 {
				b.WriteString("\nWarning: you're spending more than you earn. Here are the areas to focus on:\n")
			}

			categories := []struct {
				name   string
				amount float64
			}{
				{"Housing", p.MonthlyRent},
				{"Food", p.FoodExpenses},
				{"Transportation", p.Transportation},
				{"Entertainment", p.Entertainment},
				{"Utilities", p.Utilities},
				{"Healthcare", p.Healthcare},
				{"Other", p.OtherExpenses},
			}
			for _, c := range categories {
				if c.amount <= 0 {
					continue
				}
				pct := 0.0
				if p.MonthlySalary > 0 {
					pct = c.amount / p.MonthlySalary * 100
				}
				fmt.Fprintf(&b, "- %s: %s (%s of income)\n", c.name, money.Format(c.amount), money.Percent(pct))
			}

			b.WriteString("\nRecommendations:\n")
			recommended := false
			if p.MonthlySalary > 0 {
				if housing := p.MonthlyRent / p.MonthlySalary * 100; housing > 30 {
					fmt.Fprintf(&b, "- Your housing costs (%s) exceed the recommended 30%% of income. Consider downsizing or finding a roommate.\n",
						money.Percent(housing))
					recommended = true
				}
				if food := p.FoodExpenses / p.MonthlySalary * 100; food > 15 {
					fmt.Fprintf(&b, "- Your food expenses (%s) are high. Try meal planning and cooking at home more often.\n",
						money.Percent(food))
					recommended = true
				}
			}
			if !recommended {
				b.WriteString("- Your spending is within common guidelines. Keep tracking it monthly.\n")
			}
			return strings.TrimRight(b.String(), "\n")
		},
	}
}

func investmentAdvisor() Advisor {
	return Advisor{
		Name:     "investment",
		Keywords: []string{"invest", "investing", "investment", "investments", "stocks", "portfolio"},
		Respond: func(p *finance.Profile, s *finance.Summary, msg string) string {
			var b strings.Builder
			b.WriteString("Here's my investment advice:\n")

			if p.LiquidAssets() < emergencyFundTarget(s) {
				b.WriteString("\nBefore investing, build an emergency fund of 6 months of expenses. This should be your first priority.\n")
			}
			if p.CreditCardDebt > 0 {
				b.WriteString("\nPay off high-interest credit card debt before investing - the guaranteed 'return' of debt elimination often beats market returns.\n")
			}
			if s.MonthlySurplus > 0 {
				fmt.Fprintf(&b, "\nWith your monthly surplus of %s, you could invest regularly. ", money.Format(s.MonthlySurplus))
			}

			switch p.RiskTolerance {
			case finance.RiskLow:
				b.WriteString("\nGiven your low risk tolerance, consider bonds, CDs, and stable value funds.")
			case finance.RiskHigh:
				b.WriteString("\nWith your high risk tolerance, you might consider growth stocks and emerging market funds.")
			default:
				b.WriteString("\nWith moderate risk tolerance, a balanced portfolio of stocks and bonds (like 70/30) could work well.")
			}
			return b.String()
		},
	}
}

func insuranceAdvisor() Advisor {
	return Advisor{
		Name:     "insurance",
		Keywords: []string{"insurance", "insure", "coverage"},
		Respond: func(p *finance.Profile, s *finance.Summary, msg string) string {
			var b strings.Builder
			b.WriteString("Here's your insurance needs analysis:\n")
			b.WriteString("\nHealth insurance is essential to protect against medical expenses.")
			if s.TotalAssets > 500000 {
				b.WriteString("\nWith substantial assets, life insurance can protect your family's financial future.")
			}
			if p.PropertyValue > 0 {
				b.WriteString("\nYou own property. Make sure homeowners insurance covers its replacement value.")
			}
			if p.MonthlySalary > 3000 {
				b.WriteString("\nDisability insurance can protect your income if you're unable to work.")
			}
			return b.String()
		},
	}
}

func taxAdvisor() Advisor {
	return Advisor{
		Name:     "tax",
		Keywords: []string{"tax", "taxes", "deduction"},
		Respond: func(p *finance.Profile, s *finance.Summary, msg string) string {
			var b strings.Builder
			b.WriteString("Here's your tax planning analysis:\n")

			if s.TotalIncome > 40000 {
				b.WriteString("\nConsider contributing to tax-advantaged retirement accounts to reduce taxable income.")
			}
			if p.Mortgage > 0 {
				b.WriteString("\nYour mortgage interest may be deductible if you itemize.")
			}
			if p.StudentLoans > 0 {
				b.WriteString("\nStudent loan interest is deductible up to the annual limit.")
			}
			if s.TotalIncome > 0 {
				bracket := estimateTaxBracket(s.TotalIncome)
				fmt.Fprintf(&b, "\n\nEstimated federal tax bracket: %d%%.", bracket)
				if bracket >= 22 {
					b.WriteString(" Consider tax-loss harvesting and other advanced strategies.")
				}
			}
			return b.String()
		},
	}
}

// estimateTaxBracket maps annual income to a simplified federal
// bracket.
func estimateTaxBracket(income float64) int {
	switch {
	case income <= 11000:
		return 10
	case income <= 44725:
		return 12
	case income <= 95375:
		return 22
	case income <= 182100:
		return 24
	case income <= 231250:
		return 32
	case income <= 578125:
		return 35
	default:
		return 37
	}
}

func goalsAdvisor() Advisor {
	return Advisor{
		Name:     "goals",
		Keywords: []string{"goal", "plan", "target"},
		Respond: func(p *finance.Profile, s *finance.Summary, msg string) string {
			if strings.TrimSpace(p.FinancialGoals) == "" {
				return "You haven't set any financial goals yet. Common goals include: retirement savings, buying a home, education funding, or debt freedom. Let me know if you'd like help setting specific goals!"
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Your stated goals: %s\n", strings.TrimSpace(p.FinancialGoals))
			if s.MonthlySurplus > 0 {
				fmt.Fprintf(&b, "\nYour monthly surplus of %s is what funds these goals. Automate transfers toward them each payday.",
					money.Format(s.MonthlySurplus))
			} else {
				b.WriteString("\nYou currently have no monthly surplus to fund these goals. Start by trimming expenses or growing income.")
			}
			if s.SavingsRate < 15 {
				b.WriteString("\nRaising your savings rate toward 15-20% will accelerate every goal on this list.")
			}
			return b.String()
		},
	}
}

func collegeAdvisor() Advisor {
	return Advisor{
		Name:     "college",
		Keywords: []string{"college", "education", "tuition"},
		Respond: func(p *finance.Profile, s *finance.Summary, msg string) string {
			// Projection constants: average public college cost today,
			// a decade out, 5% education inflation.
			const (
				currentAnnualCost = 25000.0
				yearsOut          = 10
				inflation         = 0.05
			)
			futureCost := currentAnnualCost
			for i := 0; i < yearsOut; i++ {
				futureCost *= 1 + inflation
			}
			total := futureCost * 4

			var b strings.Builder
			b.WriteString("College planning advice:\n")
			fmt.Fprintf(&b, "\n- Projected annual cost in %d years: %s", yearsOut, money.Format(futureCost))
			fmt.Fprintf(&b, "\n- Total 4-year cost: %s", money.Format(total))
			perYear := total / yearsOut
			fmt.Fprintf(&b, "\n\nSaving %s per year in a 529 plan or Coverdell ESA would fully fund it.", money.Format(perYear))
			if s.MonthlySurplus*12 < perYear {
				b.WriteString(" That exceeds your current surplus, so consider a partial-funding target or additional income.")
			}
			return b.String()
		},
	}
}

func homeAdvisor() Advisor {
	return Advisor{
		Name:     "home",
		Keywords: []string{"house", "home", "mortgage", "buying property"},
		Respond: func(p *finance.Profile, s *finance.Summary, msg string) string {
			var b strings.Builder
			b.WriteString("Home buying analysis:\n")

			if p.PropertyValue > 0 || p.Mortgage > 0 {
				b.WriteString("\nYou own a home. Consider these strategies:")
				if p.Mortgage > 0 {
					fmt.Fprintf(&b, "\n- Mortgage balance: %s. Consider refinancing if rates have dropped since you got your mortgage.",
						money.Format(p.Mortgage))
				} else {
					b.WriteString("\n- You own your home free and clear!")
				}
				if p.PropertyValue > 0 {
					fmt.Fprintf(&b, "\n- Estimated home value: %s", money.Format(p.PropertyValue))
				}
				return b.String()
			}

			b.WriteString("\nYou don't currently own a home. Home buying considerations:")
			affordable := s.TotalIncome * 3
			down := affordable * 0.2
			fmt.Fprintf(&b, "\n- Based on your income, you might afford a home up to %s", money.Format(affordable))
			fmt.Fprintf(&b, "\n- Recommended 20%% down payment: %s", money.Format(down))
			if liquid := p.LiquidAssets(); liquid > 0 {
				fmt.Fprintf(&b, "\n- You have %s in liquid savings toward a down payment", money.Format(liquid))
			}

			switch {
			case s.DebtToIncomeRatio > 43:
				b.WriteString("\n\nYour debt-to-income ratio is high for mortgage approval. Pay down debt first.")
			case s.DebtToIncomeRatio > 36:
				b.WriteString("\n\nYour debt-to-income ratio is borderline. Consider reducing debt before buying.")
			default:
				b.WriteString("\n\nYour debt-to-income ratio is good for mortgage approval.")
			}
			return b.String()
		},
	}
}
