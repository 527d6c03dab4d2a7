// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// Upload mirror kinds accepted by Storage.Mirror.Kind.
const (
	MirrorNone  = ""
	MirrorS3    = "s3"
	MirrorAzure = "azure"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if !slices.Contains([]string{EnvDevelopment, EnvProduction, EnvTest}, cfg.App.Env) {
		return fmt.Errorf("%w: unknown APP_ENV %q", ErrInvalidAppConfigs, cfg.App.Env)
	}
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.BodyLimit <= 0 {
		return fmt.Errorf("%w: address, request timeout and body limit are required", ErrInvalidServerConfigs)
	}
	if cfg.Server.TrustProxy != nil && *cfg.Server.TrustProxy < 0 {
		return fmt.Errorf("%w: negative trust proxy depth", ErrInvalidServerConfigs)
	}

	if cfg.Storage.Uploads.Dir == "" || cfg.Storage.Uploads.MaxSize <= 0 {
		return fmt.Errorf("%w: upload dir and max size are required", ErrInvalidStorageConfigs)
	}

	if err := cfg.Storage.Mirror.validate(); err != nil {
		return err
	}

	features, err := cfg.FeatureSet()
	if err != nil {
		return err
	}
	if features.Enabled(FeatureRateLimit) && (cfg.Server.RateLimit <= 0 || cfg.Server.RateBurst <= 0) {
		return fmt.Errorf("%w: rate-limit feature needs a positive rate and burst", ErrInvalidServerConfigs)
	}
	if features.Enabled(FeatureBackup) && (cfg.Workers.BackupSchedule == "" || cfg.Workers.BackupDir == "") {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (m Mirror) validate() error {
	switch m.Kind {
	case MirrorNone:
		return nil
	case MirrorS3:
		if m.Bucket == "" {
			return fmt.Errorf("%w: s3 mirror needs a bucket", ErrInvalidMirrorConfigs)
		}
	case MirrorAzure:
		if m.AccountURL == "" || m.Container == "" {
			return fmt.Errorf("%w: azure mirror needs an account url and a container", ErrInvalidMirrorConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidMirrorConfigs, m.Kind)
	}
	return nil
}
