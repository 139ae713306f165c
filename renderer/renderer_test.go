package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/operandum/finplan"
	"github.com/operandum/finplan/period"
)

// plan builds a small but complete document exercising every report.
func plan(t *testing.T) *finplan.Document {
	t.Helper()
	d := finplan.NewDocument()
	s := &finplan.SubscriptionAssumption{}
	for _, on := range period.Horizon() {
		s.NewCustomers.Set(on, 5)
		s.ChurnPct.Set(on, 2)
		s.Price.Set(on, 100)
	}
	d.Subscription["Acme"] = s
	d.Liquidity.StartingBalance = 10000
	d.SetBudget(period.New(2025, time.January), finplan.StreamSubscription, 400)
	d.Recompute()
	return d
}

func TestIncomeMarkdown(t *testing.T) {
	r, err := plan(t).NewIncomeStatement(2025)
	if err != nil {
		t.Fatal(err)
	}
	got := IncomeMarkdown(r)
	for _, want := range []string{"# Income Statement 2025", "Net Income", "Jan 2025", "2025 |"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestLiquidityMarkdownShowsSensitivity(t *testing.T) {
	d := plan(t)
	s := finplan.Sensitivity{RevenueFactor: 0.8, ExpenseFactor: 1.1}
	r, err := d.NewLiquidityReport(2025, s)
	if err != nil {
		t.Fatal(err)
	}
	got := LiquidityMarkdown(r)
	for _, want := range []string{"# Liquidity 2025", "Balance", "revenue x0.80", "expenses x1.10"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRevenueMarkdownListsStreams(t *testing.T) {
	r, err := plan(t).NewRevenueDetail(2025)
	if err != nil {
		t.Fatal(err)
	}
	got := RevenueMarkdown(r)
	for _, want := range []string{"# Revenue 2025", "Subscription", "Transactional", "Implementation", "Maintenance"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestGrossProfitMarkdownHasYearlySection(t *testing.T) {
	r, err := plan(t).NewGrossProfitDetail(2025)
	if err != nil {
		t.Fatal(err)
	}
	got := GrossProfitMarkdown(r)
	for _, want := range []string{"# Gross Profit 2025", "## By stream", "Subscription"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestBudgetMarkdownHasBothSections(t *testing.T) {
	r, err := plan(t).NewBudgetVariance(period.New(2025, time.January))
	if err != nil {
		t.Fatal(err)
	}
	got := BudgetMarkdown(r)
	for _, want := range []string{"Budget vs Actual", "Month to date", "Year to date", finplan.StreamSubscription} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestKPIMarkdownRunwayBeyondHorizon(t *testing.T) {
	r, err := plan(t).NewKPISet(period.New(2025, time.June))
	if err != nil {
		t.Fatal(err)
	}
	got := KPIMarkdown(r)
	for _, want := range []string{"KPIs", "MRR", "Runway", "beyond horizon"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestAnnualMarkdownHasAllYears(t *testing.T) {
	got := AnnualMarkdown(plan(t).NewAnnualSummary())
	for _, want := range []string{"Annual Summary", "2025", "2030", "Subscribers"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
