package model

// Known account addresses and their display labels. Matching is exact and
// case-sensitive.
var accountLabels = map[string]string{
	"0xf00EbF44706A84d73698D51390a6801215fF338c": "Supplier#1",
	"0x2074b4e9bE42c7724C936c16795C42c04e83d7ae": "Supplier#2",
	"0x3421668462324bFB48EA07D0B12243091CD09759": "Company",
	"0xf5D0a9A8cCC008Bc72c6e708F5A7871d094B7E11": "Customer",
}

// AccountLabel returns the display label for an account address. Unknown
// addresses are returned verbatim.
func AccountLabel(account string) string {
	if label, ok := accountLabels[account]; ok {
		return label
	}
	return account
}
