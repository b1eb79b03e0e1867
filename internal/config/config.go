package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port string

	// Pricing constants; defaults match the storefront UI.
	TaxRate           float64
	ShippingThreshold float64
	ShippingFlatFee   float64

	// Empty disables the broker and selects the no-op publisher.
	RabbitURL string

	// CORS
	CORSAllowOrigins []string
}

func Load() Config {
	return Config{
		Port:              getenv("PORT", "8080"),
		TaxRate:           parseFloat(getenv("TAX_RATE", "0.18"), 0.18),
		ShippingThreshold: parseFloat(getenv("SHIPPING_THRESHOLD", "5000"), 5000),
		ShippingFlatFee:   parseFloat(getenv("SHIPPING_FLAT_FEE", "99"), 99),
		RabbitURL:         os.Getenv("RABBITMQ_URL"),
		CORSAllowOrigins:  splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseFloat(v string, def float64) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
