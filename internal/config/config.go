package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Store    StoreConfig
	Currency CurrencyConfig
	Pricing  PricingConfig
	Shift    ShiftConfig
	Receipt  ReceiptConfig
}

type StoreConfig struct {
	Name    string
	Address string
	Phone   string
	TaxID   string
}

type CurrencyConfig struct {
	Code   string
	Locale string
}

type PricingConfig struct {
	// TaxRatePercent is the VAT rate applied to tax-applicable products
	// (12 for the Philippine deployment).
	TaxRatePercent float64
	// ClampNegativeNet caps a line's net at zero when a fixed discount
	// exceeds the gross. Off by default: the observed product lets the
	// net go negative.
	ClampNegativeNet bool
}

type ShiftConfig struct {
	// Variance thresholds are absolute peso amounts. A drawer gap at or
	// below Warning is normal; above Critical is critical.
	VarianceWarning  float64
	VarianceCritical float64
}

type ReceiptConfig struct {
	// Width is the print width in characters: 32 for 58mm paper, 48 for 80mm.
	Width int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("STORE_NAME", "Tindahan POS")
	viper.SetDefault("STORE_ADDRESS", "")
	viper.SetDefault("STORE_PHONE", "")
	viper.SetDefault("STORE_TAX_ID", "")
	viper.SetDefault("CURRENCY_CODE", "PHP")
	viper.SetDefault("CURRENCY_LOCALE", "en-PH")
	viper.SetDefault("TAX_RATE_PERCENT", 12.0)
	viper.SetDefault("PRICING_CLAMP_NEGATIVE_NET", false)
	viper.SetDefault("SHIFT_VARIANCE_WARNING", 50.0)
	viper.SetDefault("SHIFT_VARIANCE_CRITICAL", 500.0)
	viper.SetDefault("RECEIPT_WIDTH", 32)

	return &Config{
		Store: StoreConfig{
			Name:    viper.GetString("STORE_NAME"),
			Address: viper.GetString("STORE_ADDRESS"),
			Phone:   viper.GetString("STORE_PHONE"),
			TaxID:   viper.GetString("STORE_TAX_ID"),
		},
		Currency: CurrencyConfig{
			Code:   viper.GetString("CURRENCY_CODE"),
			Locale: viper.GetString("CURRENCY_LOCALE"),
		},
		Pricing: PricingConfig{
			TaxRatePercent:   viper.GetFloat64("TAX_RATE_PERCENT"),
			ClampNegativeNet: viper.GetBool("PRICING_CLAMP_NEGATIVE_NET"),
		},
		Shift: ShiftConfig{
			VarianceWarning:  viper.GetFloat64("SHIFT_VARIANCE_WARNING"),
			VarianceCritical: viper.GetFloat64("SHIFT_VARIANCE_CRITICAL"),
		},
		Receipt: ReceiptConfig{
			Width: viper.GetInt("RECEIPT_WIDTH"),
		},
	}
}
