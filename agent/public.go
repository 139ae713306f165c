package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/operandum/finplan"
	"github.com/operandum/finplan/docs"
	"github.com/operandum/finplan/period"
	"github.com/operandum/finplan/renderer"
)

const model = "gemini-2.5-pro"

// newFacilitator builds the expert that fronts the conversation. It has no
// Description: nobody declares it as a tool.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is planning the finances of a subscription business. He is here primarily to
			understand his plan: revenue, costs, cash position, budget deviations.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you know his plan, check it first to understand his
			stakeholders, expense categories and horizon.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewStrategist creates the market-knowledge expert, grounded with search.
func NewStrategist() *Expert {
	return &Expert{
		Name: "Strategist",
		Description: `This is an expert SaaS strategist,
		very well aware of subscription business models, pricing, churn benchmarks
		and the latest news about the market.
		Ask the Strategist whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in subscription businesses: pricing, retention, unit economics,
			go-to-market. You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's plan.
				`}}},
		},
	}
}

// NewAnalyst creates the expert in charge of reading the user's plan.
func NewAnalyst() *Expert {
	lib := []Function{IncomeStatement, Liquidity, KPIs, AnnualSummary}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's financial plan.
		He can compute the income statement, the cash projection, the indicators and the
		yearly summary from the plan's assumptions.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a financial analyst in charge of the user's plan.
				You know how to use the Tools to extract relevant figures from the plan.
				You are part of a team of experts, yours is everything about the user's plan.
				They might ask you questions about it, pardon their approximative language and
				figure out what they meant.

				Use the available tools to get information about the plan
				  - income statement of a year
				  - cash projection of a year
				  - indicators of a month
				  - the whole-horizon summary
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// failure builds the error response of a function call.
func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

// success builds the markdown output response of a function call.
func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

// loadPlan reads the plan file and recomputes the derived blocks.
func loadPlan() (*finplan.Document, error) {
	d, err := finplan.Load(finplan.DefaultPlanFile)
	if err != nil {
		return nil, fmt.Errorf("could not load plan: %w", err)
	}
	d.Recompute()
	return d, nil
}

var yearSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"year": {
			Type:        genai.TypeInteger,
			Description: "The calendar year to report on, within the planning horizon (2025-2030).",
		},
	},
	Required: []string{"year"},
}

func parseYear(args map[string]any) (int, error) {
	jyear, ok := args["year"]
	if !ok {
		return 0, fmt.Errorf("argument 'year' is required")
	}
	// genai decodes JSON numbers as float64.
	year, ok := jyear.(float64)
	if !ok {
		return 0, fmt.Errorf("argument 'year' is not a number as expected but %T", jyear)
	}
	return int(year), nil
}

func parseMonth(args map[string]any) (period.Period, error) {
	jmonth, hasMonth := args["month"]
	if !hasMonth {
		return period.Start(), nil
	}
	smonth, ok := jmonth.(string)
	if !ok {
		return period.Period{}, fmt.Errorf("argument 'month' is not a string as expected but %T", jmonth)
	}
	on, err := period.Parse(smonth)
	if err != nil {
		return period.Period{}, fmt.Errorf("argument 'month' must be a valid month got %q. Below is the doc about the format\n\n%s", smonth, must(docs.GetTopic("periods")))
	}
	return on, nil
}

var IncomeStatement = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "IncomeStatement",
		Description: `IncomeStatement computes the monthly income statement of one year: revenue, COGS, gross profit and margin, SG&A and net income, with the yearly rollup.`,
		Parameters:  yearSchema,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted income statement of the year.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		year, err := parseYear(args)
		if err != nil {
			return failure(id, "IncomeStatement", err)
		}
		d, err := loadPlan()
		if err != nil {
			return failure(id, "IncomeStatement", err)
		}
		report, err := d.NewIncomeStatement(year)
		if err != nil {
			return failure(id, "IncomeStatement", err)
		}
		return success(id, "IncomeStatement", renderer.IncomeMarkdown(report))
	},
}

var Liquidity = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "Liquidity",
		Description: `Liquidity computes the cash projection of one year: monthly receipts, disbursements, net movement and the cumulative balance.`,
		Parameters:  yearSchema,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted cash projection of the year.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		year, err := parseYear(args)
		if err != nil {
			return failure(id, "Liquidity", err)
		}
		d, err := loadPlan()
		if err != nil {
			return failure(id, "Liquidity", err)
		}
		report, err := d.NewLiquidityReport(year, finplan.Nominal)
		if err != nil {
			return failure(id, "Liquidity", err)
		}
		return success(id, "Liquidity", renderer.LiquidityMarkdown(report))
	},
}

var KPIs = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "KPIs",
		Description: `KPIs computes the indicators of one month: active subscribers, MRR, ARPC, churn, LTV, cash balance and runway.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"month": {
					Type:        genai.TypeString,
					Description: `The month to report on, like "Jan 2025". The start of the horizon is the default.`,
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted indicator table of the month.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		on, err := parseMonth(args)
		if err != nil {
			return failure(id, "KPIs", err)
		}
		d, err := loadPlan()
		if err != nil {
			return failure(id, "KPIs", err)
		}
		report, err := d.NewKPISet(on)
		if err != nil {
			return failure(id, "KPIs", err)
		}
		return success(id, "KPIs", renderer.KPIMarkdown(report))
	},
}

var AnnualSummary = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "AnnualSummary",
		Description: `AnnualSummary condenses the whole planning horizon into one column per year.`,
		Parameters:  &genai.Schema{Type: genai.TypeObject},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted yearly summary of the whole horizon.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		d, err := loadPlan()
		if err != nil {
			return failure(id, "AnnualSummary", err)
		}
		return success(id, "AnnualSummary", renderer.AnnualMarkdown(d.NewAnnualSummary()))
	},
}
