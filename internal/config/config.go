// Package config loads application configuration from file and
// environment and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fused-score combination rules for the identity matcher.
const (
	CombineMax  = "max"
	CombineMean = "mean"
)

// Config holds the full application configuration.
type Config struct {
	Reconcile ReconcileConfig `yaml:"reconcile" mapstructure:"reconcile"`
	Identity  IdentityConfig  `yaml:"identity" mapstructure:"identity"`
	Columns   ColumnsConfig   `yaml:"columns" mapstructure:"columns"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// ReconcileConfig configures the exact-match vocabulary pass.
type ReconcileConfig struct {
	// FieldPairs lists the columns checked against the picklist, in
	// order. Each entry is "master_col:picklist_col", or a bare name
	// when both sides share it.
	FieldPairs []string `yaml:"field_pairs" mapstructure:"field_pairs"`
	// SeniorityColumn is the optional picklist column holding the
	// recognized seniority vocabulary.
	SeniorityColumn string `yaml:"seniority_column" mapstructure:"seniority_column"`
}

// IdentityConfig holds the tunable thresholds of the company↔domain
// matcher. Scores are on the 0–100 fuzzy-ratio scale.
type IdentityConfig struct {
	StrongThreshold       int    `yaml:"strong_threshold" mapstructure:"strong_threshold"`
	Threshold             int    `yaml:"threshold" mapstructure:"threshold"`
	PartialBoostThreshold int    `yaml:"partial_boost_threshold" mapstructure:"partial_boost_threshold"`
	Combine               string `yaml:"combine" mapstructure:"combine"`
	ShortLabelMax         int    `yaml:"short_label_max" mapstructure:"short_label_max"`
	MinLabelLen           int    `yaml:"min_label_len" mapstructure:"min_label_len"`
}

// ColumnsConfig lists the case-insensitive column-name candidates tried
// in order when auto-detecting each logical role.
type ColumnsConfig struct {
	Company  []string `yaml:"company" mapstructure:"company"`
	Domain   []string `yaml:"domain" mapstructure:"domain"`
	JobTitle []string `yaml:"job_title" mapstructure:"job_title"`
}

// OutputConfig configures result emission.
type OutputConfig struct {
	// Suffix is appended to the master file's stem to derive the
	// default output path.
	Suffix string `yaml:"suffix" mapstructure:"suffix"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// FieldPair names one master column and the picklist column it is
// checked against.
type FieldPair struct {
	Master   string
	Picklist string
}

// ParseFieldPairs expands "master:picklist" entries; a bare name pairs
// a column with itself. Blank entries are dropped.
func ParseFieldPairs(entries []string) []FieldPair {
	pairs := make([]FieldPair, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		master, picklist, found := strings.Cut(e, ":")
		if !found {
			picklist = master
		}
		pairs = append(pairs, FieldPair{
			Master:   strings.TrimSpace(master),
			Picklist: strings.TrimSpace(picklist),
		})
	}
	return pairs
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("RECONCILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("reconcile.field_pairs", []string{
		"c_industry", "asset_title", "lead_country", "departments", "c_state",
	})
	v.SetDefault("reconcile.seniority_column", "seniority")
	v.SetDefault("identity.strong_threshold", 85)
	v.SetDefault("identity.threshold", 70)
	v.SetDefault("identity.partial_boost_threshold", 70)
	v.SetDefault("identity.combine", CombineMax)
	v.SetDefault("identity.short_label_max", 4)
	v.SetDefault("identity.min_label_len", 3)
	v.SetDefault("columns.company", []string{"companyname", "company", "company name", "company_name"})
	v.SetDefault("columns.domain", []string{"website", "domain", "email domain", "email_domain"})
	v.SetDefault("columns.job_title", []string{"jobtitle", "job title", "job_title"})
	v.SetDefault("output.suffix", " - Full_Check_Results")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
