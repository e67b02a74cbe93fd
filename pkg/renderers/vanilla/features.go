package vanilla

// Feature is a highlight card shown below the form.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DefaultFeatures returns the four highlight cards of the builder page.
func DefaultFeatures() []Feature {
	return []Feature{
		{Title: "ERC20 Standard", Description: "Full ERC20 compliance"},
		{Title: "Security", Description: "OpenZeppelin audited"},
		{Title: "Vesting", Description: "Customizable periods"},
		{Title: "Whitelist", Description: "KYC support ready"},
	}
}
