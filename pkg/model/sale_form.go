package model

// Field names of the token sale form.
const (
	FieldName          = "name"
	FieldSymbol        = "symbol"
	FieldDecimals      = "decimals"
	FieldTotalSupply   = "totalSupply"
	FieldRate          = "rate"
	FieldVestingPeriod = "vestingPeriod"
	FieldSoftCap       = "softCap"
	FieldHardCap       = "hardCap"
)

// Section identifiers of the token sale form.
const (
	SectionBasic    = "basic"
	SectionAdvanced = "advanced"
)

// DigitsPattern is the pattern every integer field must match before it is
// coerced. It admits no sign, no whitespace and no separators.
const DigitsPattern = `^\d+$`

// SaleFormID identifies the token sale form.
const SaleFormID = "tokenSale"

// SaleForm returns the token sale form definition: eight fields split across
// the "Basic Configuration" and "Advanced Settings" tabs.
func SaleForm() FormModel {
	return FormModel{
		ID:          SaleFormID,
		Title:       "Token Sale Contract Builder",
		Description: "Create your custom ERC20 token sale smart contract with advanced features and security",
		SubmitLabel: "Generate Contract",
		Sections: []Section{
			{
				ID:          SectionBasic,
				Title:       "Basic Configuration",
				Heading:     "Token Information",
				Description: "Configure the basic parameters of your ERC20 token",
				Fields:      []string{FieldName, FieldSymbol, FieldDecimals, FieldTotalSupply},
			},
			{
				ID:          SectionAdvanced,
				Title:       "Advanced Settings",
				Heading:     "Sale Configuration",
				Description: "Set up the parameters for your token sale",
				Fields:      []string{FieldRate, FieldVestingPeriod, FieldSoftCap, FieldHardCap},
			},
		},
		Fields: []Field{
			textField(FieldName, "Token Name", "My Token", "The full name of your token", "Token name is required"),
			textField(FieldSymbol, "Token Symbol", "MTK", "The trading symbol (3-4 characters)", "Token symbol is required"),
			integerField(FieldDecimals, "Decimals", "Number of decimal places (usually 18)", "18", FormatUint8, "0", "18"),
			integerField(FieldTotalSupply, "Total Supply", "Total number of tokens to mint", "1000000", FormatUint256, "1", ""),
			integerField(FieldRate, "Token Rate", "Tokens per ETH", "1000", FormatUint256, "1", ""),
			integerField(FieldVestingPeriod, "Vesting Period (days)", "Token lock period after sale", "180", FormatUint64, "0", ""),
			integerField(FieldSoftCap, "Soft Cap (ETH)", "Minimum goal for the sale", "100", FormatUint256, "0", ""),
			integerField(FieldHardCap, "Hard Cap (ETH)", "Maximum amount to raise", "1000", FormatUint256, "1", ""),
		},
		Metadata: map[string]string{
			"page.title":       "Token Sale Smart Contract Builder",
			"page.description": "Create and customize your ERC20 token sale smart contract",
		},
	}
}

func textField(name, label, placeholder, help, requiredMessage string) Field {
	return Field{
		Name:        name,
		Type:        FieldTypeString,
		Required:    true,
		Label:       label,
		Placeholder: placeholder,
		Description: help,
		Validations: []ValidationRule{
			{Kind: ValidationRuleMinLength, Params: map[string]string{"value": "1"}, Message: requiredMessage},
		},
		UIHints: map[string]string{"inputType": "text"},
	}
}

func integerField(name, label, help, def, format, minValue, maxValue string) Field {
	rules := []ValidationRule{
		{Kind: ValidationRulePattern, Params: map[string]string{"pattern": DigitsPattern}},
		{Kind: ValidationRuleMin, Params: map[string]string{"value": minValue}},
	}
	if maxValue != "" {
		rules = append(rules, ValidationRule{Kind: ValidationRuleMax, Params: map[string]string{"value": maxValue}})
	}
	return Field{
		Name:        name,
		Type:        FieldTypeInteger,
		Format:      format,
		Required:    true,
		Label:       label,
		Description: help,
		Default:     def,
		Validations: rules,
		UIHints:     map[string]string{"inputType": "number"},
	}
}
