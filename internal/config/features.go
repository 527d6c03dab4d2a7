package config

import (
	"fmt"
	"slices"
	"strings"
)

// Optional pipeline modules selectable through FEATURES.
const (
	FeatureWeb             = "web"
	FeatureAPI             = "api"
	FeatureSecurityHeaders = "security-headers"
	FeatureCompression     = "compression"
	FeatureCORS            = "cors"
	FeatureMetrics         = "metrics"
	FeatureRateLimit       = "rate-limit"
	FeatureBackup          = "backup"
)

var knownFeatures = []string{
	FeatureWeb,
	FeatureAPI,
	FeatureSecurityHeaders,
	FeatureCompression,
	FeatureCORS,
	FeatureMetrics,
	FeatureRateLimit,
	FeatureBackup,
}

// FeatureSet is the resolved capability set of the running process.
type FeatureSet map[string]struct{}

// Enabled reports whether feature is part of the set.
func (s FeatureSet) Enabled(feature string) bool {
	_, ok := s[feature]
	return ok
}

// List returns the enabled features in a stable order.
func (s FeatureSet) List() []string {
	out := make([]string, 0, len(s))
	for _, f := range knownFeatures {
		if s.Enabled(f) {
			out = append(out, f)
		}
	}
	return out
}

// ParseFeatures resolves names into a FeatureSet. Names are trimmed and
// lowercased; empty entries are ignored. An unknown name is an error
// wrapping ErrUnknownFeature.
func ParseFeatures(names []string) (FeatureSet, error) {
	set := make(FeatureSet, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if !slices.Contains(knownFeatures, name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
		}
		set[name] = struct{}{}
	}
	return set, nil
}

// FeatureSet resolves the configured features, including the legacy
// ENABLE_BACKUP_SCHEDULE switch.
func (cfg *StructuredConfig) FeatureSet() (FeatureSet, error) {
	set, err := ParseFeatures(cfg.Features)
	if err != nil {
		return nil, err
	}
	if cfg.EnableBackupSchedule {
		set[FeatureBackup] = struct{}{}
	}
	return set, nil
}
