package identity

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/reconcile-cli/internal/config"
)

// DefaultConfig returns an IdentityConfig with the thresholds the
// cascade was tuned against.
func DefaultConfig() config.IdentityConfig {
	return config.IdentityConfig{
		StrongThreshold:       85,
		Threshold:             70,
		PartialBoostThreshold: 70,
		Combine:               config.CombineMax,
		ShortLabelMax:         4,
		MinLabelLen:           3,
	}
}

// ValidateConfig checks that an IdentityConfig is internally consistent.
func ValidateConfig(c config.IdentityConfig) error {
	var errs []string

	thresholds := map[string]int{
		"strong_threshold":        c.StrongThreshold,
		"threshold":               c.Threshold,
		"partial_boost_threshold": c.PartialBoostThreshold,
	}
	for name, v := range thresholds {
		if v < 0 || v > 100 {
			errs = append(errs, fmt.Sprintf("%s must be between 0 and 100", name))
		}
	}

	if c.Threshold > c.StrongThreshold {
		errs = append(errs, "threshold must be <= strong_threshold")
	}
	if c.Combine != config.CombineMax && c.Combine != config.CombineMean {
		errs = append(errs, fmt.Sprintf("combine must be %q or %q", config.CombineMax, config.CombineMean))
	}
	if c.MinLabelLen < 1 {
		errs = append(errs, "min_label_len must be >= 1")
	}
	if c.ShortLabelMax < c.MinLabelLen {
		errs = append(errs, "short_label_max must be >= min_label_len")
	}

	if len(errs) > 0 {
		return eris.Errorf("identity: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
