// Package finplan implements the calculation engine of a multi-year financial
// planning model for a single operating company.
//
// All assumptions live in one Document: per-stakeholder subscription inputs
// (new customers, price, churn), one-time implementation and maintenance
// fees, transactional volumes, hosting cost parameters, categorized expense
// disbursements, headcount, and budget snapshots. From those the engine
// deterministically derives the dependent statements:
//
//   - subscription cohort running totals under compounding churn,
//   - revenue by stream and in total,
//   - hosting cost and COGS (with pre-go-live capitalization),
//   - gross profit, gross margin and net income,
//   - monthly net cash flow and the cumulative cash balance,
//   - budget-vs-actual variances for month and year-to-date views.
//
// The engine is stateless: every derivation recomputes from the assumption
// tables, so a Document loaded, recomputed and rendered always reflects its
// latest edits. Persistence is a single human-readable JSON file (or the
// remote equivalent), written wholesale; concurrent editors are last-write-
// wins at document granularity, by design.
//
// This package serves as the foundational logic for the `fin` command-line
// tool.
package finplan
