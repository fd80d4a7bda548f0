package store

import "gmartin/finboard/internal/models"

// DefaultCategories returns the built-in UK spending categories used when no
// persisted store exists yet. Keywords are stored normalized (upper case).
func DefaultCategories() []models.CategoryConfig {
	return []models.CategoryConfig{
		{Name: models.CategoryUncategorized, Keywords: []string{}},
		{Name: "Groceries", Keywords: []string{"COOP", "TESCO", "SAINSBURY", "ALDI", "LIDL", "ASDA", "MORRISONS", "WAITROSE"}},
		{Name: "Dining & Pubs", Keywords: []string{"COSTA", "STARBUCKS", "CAFE", "RESTAURANT", "PUB", "BAR", "DORSET ARMS", "MARINERS INN"}},
		{Name: "Transport", Keywords: []string{"TRANSPORT", "TAXI", "UBER", "TRAIN", "BUS", "FUEL", "PARKING"}},
		{Name: "Shopping", Keywords: []string{"AMAZON", "NEXT", "MARKS", "SPENCER", "BOOTS"}},
		{Name: "Bills & Utilities", Keywords: []string{"ELECTRIC", "GAS", "WATER", "COUNCIL TAX", "TV LICENSE", "INTERNET", "PHONE", "GOOGLE ONE"}},
		{Name: "Entertainment", Keywords: []string{"CINEMA", "NETFLIX", "SPOTIFY", "STEAM", "EVE ONLINE"}},
		{Name: "Health", Keywords: []string{"NHS", "PHARMACY", "DENTAL", "OPTICAL"}},
		{Name: "Rent & Housing", Keywords: []string{"RENT", "MORTGAGE", "INSURANCE"}},
		{Name: "Transfers", Keywords: []string{"REVOLUT", "TRANSFER", "BGC", "SAVINGS"}},
		{Name: "Direct Debits", Keywords: []string{"DDR", "DIRECT DEBIT"}},
		{Name: "Salary", Keywords: []string{"ARCADIA EXPR SALARY"}},
		{Name: "Bonus", Keywords: []string{"ARCADIA EXPR BONUS"}},
		{Name: "Interest", Keywords: []string{"INTEREST"}},
		{Name: "Refunds", Keywords: []string{"REFUND", "REBATE"}},
		{Name: "Other Income", Keywords: []string{}},
	}
}
