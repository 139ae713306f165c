package finplan

import (
	"fmt"

	"github.com/operandum/finplan/period"
)

// KPISet is the indicator snapshot of one period.
type KPISet struct {
	Month       period.Period
	Currency    string
	Subscribers float64
	MRR         Money
	ARPC        Money
	Churn       Percent
	LTV         Money
	Balance     Money
	Runway      int // months until the balance goes negative, -1 if never
}

// NewKPISet builds the indicator snapshot of a period under the nominal
// sensitivity.
func (d *Document) NewKPISet(on period.Period) (*KPISet, error) {
	if period.Index(on) < 0 {
		return nil, fmt.Errorf("month %s outside the planning horizon (%s-%s)", on, period.Start(), period.End())
	}
	return &KPISet{
		Month:       on,
		Currency:    d.Currency,
		Subscribers: d.TotalActiveSubscribers(on),
		MRR:         d.Money(d.MRR(on)),
		ARPC:        d.Money(d.ARPC(on)),
		Churn:       d.BlendedChurnPct(on),
		LTV:         d.Money(d.LTV(on)),
		Balance:     d.Money(d.BalanceAt(on, Nominal)),
		Runway:      d.Runway(on, Nominal),
	}, nil
}
