package insight

import (
	"fmt"
	"strings"

	"pocketledger/internal/models"
)

// NoTransactionsReply is what the model is told to answer for an empty list.
const NoTransactionsReply = "No transactions to analyze."

const promptTemplate = `You are a financial advisor. Analyze these transactions (income and expenses) for the selected period (%s).

Transactions:
%s

Please provide:
1. A brief summary of financial health (income vs spending).
2. One specific actionable tip to save money or optimize budget.
3. Keep the tone encouraging but professional.
4. If data is empty, say "` + NoTransactionsReply + `"
5. Keep it under 150 words.
`

// SummaryLine renders one transaction for the prompt, e.g.
// "2024-03-10: [EXPENSE] Groceries - ₹100 (weekly shop)".
func SummaryLine(t models.Transaction, currencySymbol string) string {
	return fmt.Sprintf("%s: [%s] %s - %s%s (%s)",
		t.Date, strings.ToUpper(string(t.Type)), t.Category, currencySymbol, t.Amount.String(), t.Note)
}

// BuildPrompt renders the fixed instruction template around one summary
// line per transaction.
func BuildPrompt(transactions []models.Transaction, contextLabel, currencySymbol string) string {
	lines := make([]string, 0, len(transactions))
	for _, t := range transactions {
		lines = append(lines, SummaryLine(t, currencySymbol))
	}
	return fmt.Sprintf(promptTemplate, contextLabel, strings.Join(lines, "\n"))
}
