package cmd

import (
	"log"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/operandum/finplan"
)

// configFile is the project-local configuration, next to the plan file.
const configFile = "finplan.toml"

// Config holds the application configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Budget  BudgetConfig  `toml:"budget"`
	Payroll PayrollConfig `toml:"payroll"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	PlanFile string `toml:"plan_file"`
	Remote   string `toml:"remote,omitempty"`
}

// BudgetConfig holds budget engine settings.
type BudgetConfig struct {
	SyncCap int `toml:"sync_cap"` // max months walked by one budget sync
}

// PayrollConfig holds payroll engine overrides.
type PayrollConfig struct {
	TaxPct *float64 `toml:"tax_pct,omitempty"` // overrides the plan's payroll tax rate
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		General: GeneralConfig{PlanFile: finplan.DefaultPlanFile},
		Budget:  BudgetConfig{SyncCap: finplan.DefaultBudgetSyncCap},
	}
}

// loadConfig reads finplan.toml from the working directory, returning
// defaults when absent. A broken config file is worth a warning, not a
// crash: the defaults still work.
func loadConfig() Config {
	cfg := defaultConfig()

	data, err := os.ReadFile(configFile)
	if err != nil {
		return cfg
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		log.Printf("invalid config file=%q err=%q, using defaults", configFile, err)
		return defaultConfig()
	}
	if cfg.General.PlanFile == "" {
		cfg.General.PlanFile = finplan.DefaultPlanFile
	}
	if cfg.Budget.SyncCap <= 0 {
		cfg.Budget.SyncCap = finplan.DefaultBudgetSyncCap
	}
	return cfg
}
