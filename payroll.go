package finplan

import (
	"maps"
	"slices"

	"github.com/operandum/finplan/period"
)

// The payroll sub-engine turns headcount entries into the monthly amounts
// of the Payroll and Contractors expense categories, and attributes actual
// disbursements to departments.

// Pay types of an employee.
const (
	PaySalary = "salary"
	PayHourly = "hourly"
)

// DefaultWeeklyHours applies to hourly employees with no explicit hours.
const DefaultWeeklyHours = 40.0

// hourlyWeeksPerMonth converts weekly hours to a monthly amount.
const hourlyWeeksPerMonth = 4.33

// Employee is one salaried or hourly headcount entry.
type Employee struct {
	Name         string        `json:"name"`
	Department   string        `json:"department"`
	PayType      string        `json:"pay_type"` // salary or hourly
	AnnualSalary float64       `json:"annual_salary,omitempty"`
	HourlyRate   float64       `json:"hourly_rate,omitempty"`
	WeeklyHours  float64       `json:"weekly_hours,omitempty"`
	Bonuses      period.Series `json:"bonuses"`
	HireDate     Date          `json:"hire_date"`
	Termination  Date          `json:"termination_date"`
}

// Contractor is one contracted-capacity entry: a number of resources billed
// at an hourly rate.
type Contractor struct {
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Resources  float64 `json:"resources"`
	HourlyRate float64 `json:"hourly_rate"`
	StartDate  Date    `json:"start_date"`
	EndDate    Date    `json:"end_date"`
}

// PayrollData holds the headcount model and the payroll tax rate.
type PayrollData struct {
	TaxPct      float64       `json:"payroll_tax_rate"` // percent on base + bonuses
	Employees   []*Employee   `json:"employees"`
	Contractors []*Contractor `json:"contractors"`
}

// activeOn is the date-range containment predicate shared by employees and
// contractors: the range contains the first calendar day of the period.
// A zero start means "since forever", a zero end means "still active".
func activeOn(start, end Date, on period.Period) bool {
	day := on.FirstDay()
	first := NewDate(day.Year(), day.Month(), day.Day())
	if !start.IsZero() && start.After(first) {
		return false
	}
	if !end.IsZero() && end.Before(first) {
		return false
	}
	return true
}

// ActiveIn reports whether the employee is on payroll for the period.
func (e *Employee) ActiveIn(on period.Period) bool {
	return activeOn(e.HireDate, e.Termination, on)
}

// ActiveIn reports whether the contractor is engaged for the period.
func (c *Contractor) ActiveIn(on period.Period) bool {
	return activeOn(c.StartDate, c.EndDate, on)
}

// payPeriodsInMonth counts the biweekly paydays falling in a period. Paydays
// run every 14 days from the first Friday of the planning horizon.
func payPeriodsInMonth(on period.Period) int {
	// first Friday of Jan 2025 is the 3rd.
	anchor := NewDate(2025, 1, 3)
	first := on.FirstDay()
	next := on.Add(1).FirstDay()

	count := 0
	for d := anchor; d.time().Before(next); d = NewDate(d.Year(), d.Month(), d.Day()+14) {
		if !d.time().Before(first) {
			count++
		}
	}
	return count
}

// BasePay is the employee's pre-tax pay for the period, before bonuses:
// a 26-pay-period fraction of salary per payday for salaried staff, or
// rate times weekly hours times 4.33 for hourly staff.
func (e *Employee) BasePay(on period.Period) float64 {
	if !e.ActiveIn(on) {
		return 0
	}
	switch e.PayType {
	case PayHourly:
		hours := e.WeeklyHours
		if hours == 0 {
			hours = DefaultWeeklyHours
		}
		return e.HourlyRate * hours * hourlyWeeksPerMonth
	default: // salary
		return e.AnnualSalary / 26 * float64(payPeriodsInMonth(on))
	}
}

// MonthlyCost is the contractor's cost for the period: resources times rate
// times 40 hours times 4 weeks.
func (c *Contractor) MonthlyCost(on period.Period) float64 {
	if !c.ActiveIn(on) {
		return 0
	}
	return c.Resources * c.HourlyRate * 40 * 4
}

// EmployeePayroll is the total employee cost of a period: base pay plus
// bonuses, grossed up by the payroll tax rate.
func (d *Document) EmployeePayroll(on period.Period) float64 {
	var total float64
	for _, e := range d.Payroll.Employees {
		pay := e.BasePay(on) + e.Bonuses.Get(on)
		total += pay * (1 + d.Payroll.TaxPct/100)
	}
	return total
}

// ContractorCost is the total contractor cost of a period.
func (d *Document) ContractorCost(on period.Period) float64 {
	var total float64
	for _, c := range d.Payroll.Contractors {
		total += c.MonthlyCost(on)
	}
	return total
}

// SyncPayrollExpenses writes the theoretical payroll and contractor costs
// into their liquidity expense categories over the whole horizon, creating
// the two system-managed categories when absent.
func (d *Document) SyncPayrollExpenses() {
	for _, name := range []string{CategoryPayroll, CategoryContractors} {
		if _, ok := d.Liquidity.Categories[name]; !ok {
			d.Liquidity.Categories[name] = &Category{Classification: Personnel}
			d.Liquidity.CategoryOrder = append(d.Liquidity.CategoryOrder, name)
		}
	}
	payroll, contractors := &period.Series{}, &period.Series{}
	for _, on := range period.Horizon() {
		payroll.Set(on, d.EmployeePayroll(on))
		contractors.Set(on, d.ContractorCost(on))
	}
	d.Liquidity.Expenses[CategoryPayroll] = payroll
	d.Liquidity.Expenses[CategoryContractors] = contractors
}

// Departments returns the sorted set of departments present in the
// headcount model.
func (d *Document) Departments() []string {
	visited := make(map[string]struct{})
	for _, e := range d.Payroll.Employees {
		visited[e.Department] = struct{}{}
	}
	for _, c := range d.Payroll.Contractors {
		visited[c.Department] = struct{}{}
	}
	names := slices.Collect(maps.Keys(visited))
	slices.Sort(names)
	return names
}

// TheoreticalByDepartment computes the undisbursed per-department headcount
// cost of a period (employees grossed up by tax, plus contractors).
func (d *Document) TheoreticalByDepartment(on period.Period) map[string]float64 {
	theoretical := make(map[string]float64)
	for _, e := range d.Payroll.Employees {
		pay := e.BasePay(on) + e.Bonuses.Get(on)
		theoretical[e.Department] += pay * (1 + d.Payroll.TaxPct/100)
	}
	for _, c := range d.Payroll.Contractors {
		theoretical[c.Department] += c.MonthlyCost(on)
	}
	return theoretical
}

// AllocateByDepartment spreads an actual disbursed amount across
// departments using the theoretical ratio of the period: department share =
// theoretical department amount / theoretical total. Allocating real cash
// by the synthetic ratio lets actual disbursements differ from the
// headcount model while still attributing spend by department. A zero
// theoretical total allocates nothing.
func (d *Document) AllocateByDepartment(on period.Period, actual float64) map[string]float64 {
	theoretical := d.TheoreticalByDepartment(on)
	var total float64
	for _, v := range theoretical {
		total += v
	}
	allocated := make(map[string]float64, len(theoretical))
	if total == 0 {
		return allocated
	}
	for department, v := range theoretical {
		allocated[department] = actual * v / total
	}
	return allocated
}
