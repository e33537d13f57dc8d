package entities

// Formula versions selectable through Settings.FormulaVersion.
//
// The financial formulas changed across the life of the original sheets:
// version 1 predates the taxes/discounts item fields, version 2 derives the
// selling price from them and subtracts them from the electronics surcharge
// base. The version is an explicit tag on the dataset, never inferred.
const (
	FormulaVersionLegacy  = 1
	FormulaVersionCurrent = 2
)

const (
	DefaultExchangeRate   = 40.5
	DefaultPricePerKg     = 15.43
	DefaultFormulaVersion = FormulaVersionCurrent
)

// Settings is the process-wide singleton configuration: the local-currency
// exchange rate (units per USD) and the logistics price per kilogram, plus
// the formula version governing derived-field computation.
type Settings struct {
	ExchangeRate   float64 `json:"exchangeRate"`
	PricePerKg     float64 `json:"pricePerKg"`
	FormulaVersion int     `json:"formulaVersion,omitempty"`
}

// DefaultSettings returns the settings used before any remote pull succeeds
// and whenever the remote settings tab is empty.
func DefaultSettings() Settings {
	return Settings{
		ExchangeRate:   DefaultExchangeRate,
		PricePerKg:     DefaultPricePerKg,
		FormulaVersion: DefaultFormulaVersion,
	}
}

// Version returns the effective formula version, defaulting to current for
// datasets persisted before the tag existed.
func (s Settings) Version() int {
	if s.FormulaVersion == FormulaVersionLegacy {
		return FormulaVersionLegacy
	}
	return FormulaVersionCurrent
}
