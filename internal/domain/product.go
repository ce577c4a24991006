package domain

// UnrankedProduct is the display rank for product names the table doesn't know.
const UnrankedProduct = 99

// productRanks maps a product name to its display-order rank. Listings are
// sorted ascending by rank; ties keep their original relative order.
var productRanks = map[string]int{}

func init() {
	groups := []struct {
		rank  int
		names []string
	}{
		{1, []string{ // savings
			"Saving Account", "Super Saving", "Smart Saving Plus",
			"FLEXI DAILY ACCOUNT", "FLEXI DAILY SAVING ACCOUNT",
			"SCHY-DMND-SAVING", "SCHY-GOLD-SAVING", "SCHY-SLVR-SAVING",
		}},
		{2, []string{ // recurring deposits
			"Recurring Deposit", "RD101", "SFR-RD",
			"SCHY-DMND-RD", "SCHY-GOLD-RD", "SCHY-SLVR-RD",
		}},
		{3, []string{ // fixed deposits
			"FIX DEPOSIT", "SFR-FD", "SFC-FD", "SFW-FD",
			"SMART PLUS FD", "SCHY-DMND-FD", "SCHY-GOLD-FD", "SCHY-SLVR-FD",
		}},
		{4, []string{
			"Capital Builder 60", "Capital Builder 72", "Capital Builder 84",
		}},
		{5, []string{
			"Wealth Creator 24", "Wealth Creator 30",
			"Wealth Creator 36", "Wealth Creator 48", "SFW-WC",
		}},
		{6, []string{ // MIS / schemes
			"MIS", "Silver 20", "Silver 25",
			"Akshaya Tritiya", "Dhan Vruddhi Yojana",
		}},
		{7, []string{ // loans
			"Personal Loan", "Education Loan", "Vehicle Loan",
			"Business Loan", "Gold Loan", "Group Loan",
			"Consumer Loan", "Flexi Loan",
		}},
	}
	for _, g := range groups {
		for _, n := range g.names {
			productRanks[n] = g.rank
		}
	}
}

// ProductRank returns the display rank for a product name, or UnrankedProduct
// when the name is not in the table. Pure function; safe for concurrent use.
func ProductRank(name string) int {
	if r, ok := productRanks[name]; ok {
		return r
	}
	return UnrankedProduct
}
