package finplan

import (
	"encoding/json"
	"fmt"
)

// Classification buckets an expense category for reporting purposes.
type Classification int

const (
	// Opex is the default bucket for general operating expenses.
	Opex Classification = iota
	// Personnel covers payroll, contractors and related taxes.
	Personnel
	// ProductDevelopment covers engineering and product spend.
	ProductDevelopment
	// SalesAndMarketing covers go-to-market spend.
	SalesAndMarketing
)

func (c Classification) String() string {
	switch c {
	case Personnel:
		return "personnel"
	case ProductDevelopment:
		return "product-development"
	case SalesAndMarketing:
		return "sales-and-marketing"
	case Opex:
		return "opex"
	default:
		return "unknown"
	}
}

// ParseClassification parses a string into a Classification.
func ParseClassification(s string) (Classification, error) {
	switch s {
	case "personnel":
		return Personnel, nil
	case "product-development":
		return ProductDevelopment, nil
	case "sales-and-marketing":
		return SalesAndMarketing, nil
	case "opex", "":
		return Opex, nil
	default:
		return 0, fmt.Errorf("unknown classification: %q", s)
	}
}

func (c Classification) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Classification) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseClassification(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
