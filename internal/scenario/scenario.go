// Package scenario defines the roadmap's life-transition scenarios: their
// milestone checklists and cost calculator categories.
package scenario

import "strings"

// Scenario is one roadmap entry.
type Scenario struct {
	Key        string
	Name       string
	Glyph      string
	Summary    string
	Milestones []string // seeds the checklist
	CostLabels []string // fixed cost calculator categories, in order
}

// All lists the scenarios in roadmap order.
var All = []Scenario{
	{
		Key:     "starting-college",
		Name:    "Starting College",
		Glyph:   "◇",
		Summary: "Plan tuition, housing and the first semester's costs.",
		Milestones: []string{
			"Submit the FAFSA",
			"Compare financial aid offers",
			"Apply for scholarships",
			"Build a semester budget",
			"Open a student checking account",
		},
		CostLabels: []string{"Tuition & Fees", "Housing", "Meal Plan", "Books & Supplies", "Transportation", "Personal"},
	},
	{
		Key:     "first-job",
		Name:    "First Job",
		Glyph:   "▣",
		Summary: "Set up your paycheck, benefits and savings habits.",
		Milestones: []string{
			"Review your first pay stub",
			"Enroll in employer benefits",
			"Start retirement contributions",
			"Set up automatic savings",
			"Build a 3-month emergency fund",
		},
		CostLabels: []string{"Work Wardrobe", "Commute", "Lunches", "Relocation", "Professional Fees"},
	},
	{
		Key:     "moving-out",
		Name:    "Moving Out",
		Glyph:   "⌂",
		Summary: "Estimate move-in costs and monthly living expenses.",
		Milestones: []string{
			"Set a rent limit",
			"Save for the security deposit",
			"Compare renter's insurance",
			"Set up utilities",
			"Plan moving day costs",
		},
		CostLabels: []string{"Security Deposit", "First Month Rent", "Moving Truck", "Furniture", "Utility Setup", "Renter's Insurance"},
	},
	{
		Key:     "paying-off-debt",
		Name:    "Paying Off Debt",
		Glyph:   "◎",
		Summary: "List your balances and pick a payoff strategy.",
		Milestones: []string{
			"List every balance and rate",
			"Choose avalanche or snowball",
			"Set a monthly payoff amount",
			"Call lenders about lower rates",
			"Stop adding new balances",
		},
		CostLabels: []string{"Credit Cards", "Student Loans", "Car Loan", "Personal Loans", "Medical Bills"},
	},
}

// ByKey finds a scenario by key or by case-insensitive name.
func ByKey(key string) (Scenario, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, s := range All {
		if s.Key == k || strings.ToLower(s.Name) == k {
			return s, true
		}
	}
	return Scenario{}, false
}

// Keys returns every scenario key in roadmap order.
func Keys() []string {
	keys := make([]string, len(All))
	for i, s := range All {
		keys[i] = s.Key
	}
	return keys
}
