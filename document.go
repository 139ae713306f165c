package finplan

import (
	"fmt"
	"maps"
	"slices"

	"github.com/operandum/finplan/period"
)

// Revenue stream names. They double as line-item keys in budget snapshots,
// next to the expense category names.
const (
	StreamSubscription   = "Subscription"
	StreamTransactional  = "Transactional"
	StreamImplementation = "Implementation"
	StreamMaintenance    = "Maintenance"
)

// Streams lists the four revenue streams in reporting order.
var Streams = []string{StreamSubscription, StreamTransactional, StreamImplementation, StreamMaintenance}

// Expense categories managed by the payroll sub-engine.
const (
	CategoryPayroll     = "Payroll"
	CategoryContractors = "Contractors"
)

// DefaultGrossProfitPct applies to non-subscription streams with no explicit
// gross-profit assumption.
const DefaultGrossProfitPct = 70.0

// SubscriptionAssumption holds the monthly subscription inputs of one stakeholder.
type SubscriptionAssumption struct {
	NewCustomers period.Series `json:"new_customers"`
	Price        period.Series `json:"price"`
	ChurnPct     period.Series `json:"churn_rate"` // percent, 0..100
}

// FeeAssumption holds one-time fee inputs (implementation or maintenance)
// of one stakeholder: a monthly volume and a unit fee.
type FeeAssumption struct {
	Volume period.Series `json:"volume"`
	Fee    period.Series `json:"fee"`
}

// TransactionalAssumption holds the monthly transactional inputs of one category.
type TransactionalAssumption struct {
	Volume      period.Series `json:"volume"`
	Price       period.Series `json:"price"`
	ReferralPct period.Series `json:"referral_fee"` // percent of volume*price earned
}

// HostingConfig parameterizes the SaaS hosting cost model.
type HostingConfig struct {
	FixedCost              period.Series `json:"monthly_fixed_cost"`
	VariablePerCustomer    period.Series `json:"monthly_variable_cost_per_customer"`
	GoLiveMonth            period.Period `json:"go_live_month"`
	CapitalizeBeforeGoLive bool          `json:"capitalize_before_go_live"`
}

// Category describes one expense category of the liquidity plan.
type Category struct {
	Classification Classification `json:"classification"`
	Editable       bool           `json:"editable"`
}

// LiquidityData holds the cash-flow side of the plan: inflows beyond
// revenue, categorized expense disbursements, and the starting balance.
// CategoryOrder is the single canonical iteration order for every
// downstream table (SG&A, disbursements, budget line items).
type LiquidityData struct {
	StartingBalance float64                   `json:"starting_balance"`
	OtherReceipts   period.Series             `json:"other_receipts"`
	Investment      period.Series             `json:"investment"`
	Expenses        map[string]*period.Series `json:"expenses"`
	Categories      map[string]*Category      `json:"categories"`
	CategoryOrder   []string                  `json:"category_order"`
}

// Document is the complete planning model: every assumption table plus the
// derived blocks recomputed from them. It is an explicit value passed into
// every engine function; callers own the single shared instance and its
// lifecycle (load at session start, save on explicit action).
type Document struct {
	Currency string `json:"currency,omitempty"`

	Subscription   map[string]*SubscriptionAssumption  `json:"subscription_assumptions"`
	Implementation map[string]*FeeAssumption           `json:"implementation_assumptions"`
	Maintenance    map[string]*FeeAssumption           `json:"maintenance_assumptions"`
	Transactional  map[string]*TransactionalAssumption `json:"transactional_assumptions"`

	Hosting        HostingConfig             `json:"hosting_data"`
	DirectCosts    period.Series             `json:"direct_costs"` // subscription direct COGS
	GrossProfitPct map[string]*period.Series `json:"gross_profit_data"`

	Liquidity LiquidityData `json:"liquidity_data"`
	Payroll   PayrollData   `json:"payroll_data"`
	Budget    BudgetData    `json:"budget_data"`

	// Derived blocks. Never edited directly: recomputed from the assumption
	// tables by Recompute before any rendering or export.
	Revenue map[string]*period.Series `json:"revenue,omitempty"`
	COGS    map[string]*period.Series `json:"cogs,omitempty"`
	SGA     map[string]*period.Series `json:"sga_expenses,omitempty"`
}

// NewDocument creates a default-initialized document: empty assumption
// tables, USD reporting, and the two payroll-managed expense categories.
func NewDocument() *Document {
	d := &Document{Currency: "USD"}
	d.normalize()
	d.Liquidity.Categories[CategoryPayroll] = &Category{Classification: Personnel}
	d.Liquidity.Categories[CategoryContractors] = &Category{Classification: Personnel}
	d.Liquidity.CategoryOrder = []string{CategoryPayroll, CategoryContractors}
	d.Liquidity.Expenses[CategoryPayroll] = &period.Series{}
	d.Liquidity.Expenses[CategoryContractors] = &period.Series{}
	return d
}

// normalize replaces nil maps by empty ones so that missing nested keys read
// as empty, never as errors.
func (d *Document) normalize() {
	if d.Currency == "" {
		d.Currency = "USD"
	}
	if d.Subscription == nil {
		d.Subscription = make(map[string]*SubscriptionAssumption)
	}
	if d.Implementation == nil {
		d.Implementation = make(map[string]*FeeAssumption)
	}
	if d.Maintenance == nil {
		d.Maintenance = make(map[string]*FeeAssumption)
	}
	if d.Transactional == nil {
		d.Transactional = make(map[string]*TransactionalAssumption)
	}
	if d.GrossProfitPct == nil {
		d.GrossProfitPct = make(map[string]*period.Series)
	}
	if d.Liquidity.Expenses == nil {
		d.Liquidity.Expenses = make(map[string]*period.Series)
	}
	if d.Liquidity.Categories == nil {
		d.Liquidity.Categories = make(map[string]*Category)
	}
	if d.Budget == nil {
		d.Budget = make(BudgetData)
	}
	if d.Revenue == nil {
		d.Revenue = make(map[string]*period.Series)
	}
	if d.COGS == nil {
		d.COGS = make(map[string]*period.Series)
	}
	if d.SGA == nil {
		d.SGA = make(map[string]*period.Series)
	}
}

// Money wraps an amount in the document's reporting currency.
func (d *Document) Money(v float64) Money { return M(v, d.Currency) }

// Stakeholders returns the sorted union of all stakeholder names present in
// the subscription, implementation and maintenance assumption tables.
func (d *Document) Stakeholders() []string {
	visited := make(map[string]struct{})
	for name := range d.Subscription {
		visited[name] = struct{}{}
	}
	for name := range d.Implementation {
		visited[name] = struct{}{}
	}
	for name := range d.Maintenance {
		visited[name] = struct{}{}
	}
	names := slices.Collect(maps.Keys(visited))
	slices.Sort(names)
	return names
}

// TransactionalCategories returns the sorted transactional category names.
func (d *Document) TransactionalCategories() []string {
	names := slices.Collect(maps.Keys(d.Transactional))
	slices.Sort(names)
	return names
}

// subscriptionOf returns the stakeholder's subscription assumptions, or an
// empty value when absent. It never creates an entry.
func (d *Document) subscriptionOf(name string) *SubscriptionAssumption {
	if a, ok := d.Subscription[name]; ok {
		return a
	}
	return &SubscriptionAssumption{}
}

// EnsureStakeholder creates zero-filled assumption entries for a stakeholder
// in all three per-stakeholder tables.
func (d *Document) EnsureStakeholder(name string) {
	if _, ok := d.Subscription[name]; !ok {
		d.Subscription[name] = &SubscriptionAssumption{}
	}
	if _, ok := d.Implementation[name]; !ok {
		d.Implementation[name] = &FeeAssumption{}
	}
	if _, ok := d.Maintenance[name]; !ok {
		d.Maintenance[name] = &FeeAssumption{}
	}
}

// EnsureTransactionalCategory creates a zero-filled transactional entry.
func (d *Document) EnsureTransactionalCategory(name string) {
	if _, ok := d.Transactional[name]; !ok {
		d.Transactional[name] = &TransactionalAssumption{}
	}
}

// grossProfitPctOf returns the gross-profit percentage assumption of a
// stream at a period, defaulting to DefaultGrossProfitPct when unset.
func (d *Document) grossProfitPctOf(stream string, on period.Period) float64 {
	if s, ok := d.GrossProfitPct[stream]; ok {
		return s.GetDefault(on, DefaultGrossProfitPct)
	}
	return DefaultGrossProfitPct
}

// ExpenseCategories returns the expense category names in their canonical
// user-defined order.
func (d *Document) ExpenseCategories() []string {
	return slices.Clone(d.Liquidity.CategoryOrder)
}

// expenseOf returns the expense series of a category, or an empty series
// when absent.
func (d *Document) expenseOf(category string) *period.Series {
	if s, ok := d.Liquidity.Expenses[category]; ok && s != nil {
		return s
	}
	return &period.Series{}
}

// AddCategory appends a new expense category at the end of the canonical
// order. Adding an existing category is an error.
func (d *Document) AddCategory(name string, class Classification) error {
	if _, exists := d.Liquidity.Categories[name]; exists {
		return fmt.Errorf("category %q already exists", name)
	}
	d.Liquidity.Categories[name] = &Category{Classification: class, Editable: true}
	d.Liquidity.Expenses[name] = &period.Series{}
	d.Liquidity.CategoryOrder = append(d.Liquidity.CategoryOrder, name)
	// budget snapshots learn the new key lazily, see PatchBudgetKeys.
	d.PatchBudgetKeys()
	return nil
}

// RemoveCategory purges a category from the definitions, the amounts, and
// the order list. All three or none: an unknown category is an error and
// leaves the document untouched.
func (d *Document) RemoveCategory(name string) error {
	if _, exists := d.Liquidity.Categories[name]; !exists {
		return fmt.Errorf("unknown category %q", name)
	}
	delete(d.Liquidity.Categories, name)
	delete(d.Liquidity.Expenses, name)
	if i := slices.Index(d.Liquidity.CategoryOrder, name); i >= 0 {
		d.Liquidity.CategoryOrder = slices.Delete(d.Liquidity.CategoryOrder, i, i+1)
	}
	// Budget snapshots keep the orphaned key to preserve historical edits.
	return nil
}

// MoveCategory moves a category to a new position in the canonical order.
func (d *Document) MoveCategory(name string, to int) error {
	i := slices.Index(d.Liquidity.CategoryOrder, name)
	if i < 0 {
		return fmt.Errorf("unknown category %q", name)
	}
	if to < 0 || to >= len(d.Liquidity.CategoryOrder) {
		return fmt.Errorf("position %d out of range", to)
	}
	order := slices.Delete(d.Liquidity.CategoryOrder, i, i+1)
	d.Liquidity.CategoryOrder = slices.Insert(order, to, name)
	return nil
}

// BudgetKeys returns the line-item key set of budget snapshots: the revenue
// streams followed by the expense categories in canonical order.
func (d *Document) BudgetKeys() []string {
	keys := slices.Clone(Streams)
	return append(keys, d.Liquidity.CategoryOrder...)
}

// Recompute re-derives every dependent block from the assumption tables, in
// dependency order: cohorts feed revenue, revenue feeds COGS, liquidity
// categories feed SG&A. Callers run it after loading and after any edit,
// before rendering or exporting.
func (d *Document) Recompute() {
	d.normalize()
	d.SyncPayrollExpenses()
	d.RecomputeRevenue()
	d.RecomputeCOGS()
	d.SyncSGAFromLiquidity()
}
