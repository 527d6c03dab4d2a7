package config

import "time"

// Runtime modes accepted by App.Env.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

const (
	defaultAppName         = "Billiard POS"
	defaultTokenIssuer     = "billiard-pos"
	defaultTokenDuration   = 24 * time.Hour
	defaultHTTPAddress     = ":3000"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultBodyLimit       = 2 << 20
	defaultTrustProxy      = 1
	defaultUploadsDir      = "uploads"
	defaultUploadMaxSize   = 5 << 20
	defaultRateLimit       = 10
	defaultRateBurst       = 20
	defaultBackupSchedule  = "0 3 * * *"
	defaultBackupDir       = "backups"
)

// DefaultFeatures is used when FEATURES is not configured.
var DefaultFeatures = []string{FeatureWeb, FeatureAPI, FeatureSecurityHeaders, FeatureCompression}

func defaults() *StructuredConfig {
	trustProxy := defaultTrustProxy
	return &StructuredConfig{
		App: App{
			Env:           EnvProduction,
			Name:          defaultAppName,
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			BodyLimit:       defaultBodyLimit,
			TrustProxy:      &trustProxy,
			RateLimit:       defaultRateLimit,
			RateBurst:       defaultRateBurst,
		},
		Storage: Storage{
			Uploads: Uploads{
				Dir:     defaultUploadsDir,
				MaxSize: defaultUploadMaxSize,
			},
		},
		Features: append([]string(nil), DefaultFeatures...),
		Workers: Workers{
			BackupSchedule: defaultBackupSchedule,
			BackupDir:      defaultBackupDir,
		},
	}
}
