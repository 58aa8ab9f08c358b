package vagas

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const salaryToAgree = "A combinar"

var brazilianPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatSalary renders a salary in Brazilian reais. Zero means the salary is
// to be agreed.
func FormatSalary(amount float64) string {
	if amount <= 0 {
		return salaryToAgree
	}
	return "R$ " + brazilianPrinter.Sprintf("%.2f", amount)
}
