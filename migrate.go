package finplan

import (
	"log"
	"slices"
)

// Category-name migrations. Plan files written by earlier versions carry
// category names that were since renamed; Migrate moves the old keys to
// the new ones and deletes the old. Running it on an already-migrated
// document is a no-op.

// categoryRenames maps legacy category names to their current name, in
// application order.
var categoryRenames = []struct{ old, new string }{
	{"Salaries", CategoryPayroll},
	{"Salaries & Wages", CategoryPayroll},
	{"Consultants", CategoryContractors},
	{"Outsourcing", CategoryContractors},
}

// Migrate applies the schema migrations to the document in place. It is
// idempotent: a document with no legacy keys is left untouched.
func (d *Document) Migrate() {
	for _, r := range categoryRenames {
		d.renameCategory(r.old, r.new)
	}
}

// renameCategory moves a category's definition, amounts, order slot and
// budget line items from old to new. Amounts merge additively when the new
// category already holds values.
func (d *Document) renameCategory(old, new string) {
	_, hadCategory := d.Liquidity.Categories[old]
	_, hadExpenses := d.Liquidity.Expenses[old]
	if !hadCategory && !hadExpenses {
		return
	}
	log.Printf("migrate-category old=%q new=%q", old, new)

	if c, ok := d.Liquidity.Categories[old]; ok {
		if _, exists := d.Liquidity.Categories[new]; !exists {
			d.Liquidity.Categories[new] = c
		}
		delete(d.Liquidity.Categories, old)
	}

	if s, ok := d.Liquidity.Expenses[old]; ok && s != nil {
		target, exists := d.Liquidity.Expenses[new]
		if !exists || target == nil {
			d.Liquidity.Expenses[new] = s
		} else {
			for on, v := range s.Values() {
				target.Add(on, v)
			}
		}
		delete(d.Liquidity.Expenses, old)
	}

	if i := slices.Index(d.Liquidity.CategoryOrder, old); i >= 0 {
		if slices.Contains(d.Liquidity.CategoryOrder, new) {
			d.Liquidity.CategoryOrder = slices.Delete(d.Liquidity.CategoryOrder, i, i+1)
		} else {
			d.Liquidity.CategoryOrder[i] = new
		}
	}

	for _, snapshot := range d.Budget {
		if v, ok := snapshot[old]; ok {
			snapshot[new] += v
			delete(snapshot, old)
		}
	}
}
