package finplan

import (
	"time"

	"github.com/operandum/finplan/period"
)

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// jan is the first period of the planning horizon.
var jan = period.New(2025, time.January)

// flat builds a series holding the same value over the first n months.
func flat(v float64, n int) *period.Series {
	s := &period.Series{}
	for i := 0; i < n; i++ {
		s.Set(jan.Add(i), v)
	}
	return s
}

// seq builds a series from consecutive monthly values starting Jan 2025.
func seq(values ...float64) *period.Series {
	s := &period.Series{}
	for i, v := range values {
		s.Set(jan.Add(i), v)
	}
	return s
}

// subscriber creates a stakeholder with the given monthly new-customer,
// churn and price assumptions.
func subscriber(d *Document, name string, newCustomers, churn, price *period.Series) {
	d.Subscription[name] = &SubscriptionAssumption{
		NewCustomers: *newCustomers,
		ChurnPct:     *churn,
		Price:        *price,
	}
}

// expense creates an expense category holding the given series.
func expense(d *Document, name string, s *period.Series) {
	d.Liquidity.Categories[name] = &Category{Classification: Opex, Editable: true}
	d.Liquidity.Expenses[name] = s
	d.Liquidity.CategoryOrder = append(d.Liquidity.CategoryOrder, name)
}
