package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/warp/invoice-engine/billing"
)

// rateFile is the on-disk shape of rates.yaml:
//
//	rates:
//	  Software Engineer: "150"
//	  Architect: "200.00"
type rateFile struct {
	Rates map[string]string `yaml:"rates"`
}

// LoadRateBook reads a skill -> hourly rate table from a YAML file.
// Rates are decimal strings; a malformed rate is a hard error.
func LoadRateBook(path string) (billing.MapRateBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate book %s: %w", path, err)
	}

	var rf rateFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rate book %s: %w", path, err)
	}

	book := make(billing.MapRateBook, len(rf.Rates))
	for skill, raw := range rf.Rates {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("rate for skill %q: %w", skill, err)
		}
		if rate.IsNegative() {
			return nil, fmt.Errorf("rate for skill %q: negative rate %s", skill, raw)
		}
		book[billing.Skill(skill)] = billing.MoneyFromDecimal(rate)
	}
	return book, nil
}
