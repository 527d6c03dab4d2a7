package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the JSON or YAML
// configuration file.
type StructuredFileConfig struct {
	App struct {
		Env           string   `json:"env" yaml:"env"`
		Name          string   `json:"name" yaml:"name"`
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		Version       string   `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		BodyLimit       int64    `json:"body_limit" yaml:"body_limit"`
		TrustProxy      *int     `json:"trust_proxy" yaml:"trust_proxy"`
		CORSOrigins     []string `json:"cors_origins" yaml:"cors_origins"`
		RateLimit       float64  `json:"rate_limit" yaml:"rate_limit"`
		RateBurst       int      `json:"rate_burst" yaml:"rate_burst"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Uploads struct {
			Dir     string `json:"dir" yaml:"dir"`
			MaxSize int64  `json:"max_size" yaml:"max_size"`
		} `json:"uploads,omitempty" yaml:"uploads,omitempty"`

		Mirror Mirror `json:"mirror,omitempty" yaml:"mirror,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Features []string `json:"features" yaml:"features"`

	Workers struct {
		BackupSchedule string `json:"backup_schedule" yaml:"backup_schedule"`
		BackupDir      string `json:"backup_dir" yaml:"backup_dir"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:           f.App.Env,
			Name:          f.App.Name,
			TokenSignKey:  f.App.TokenSignKey,
			TokenIssuer:   f.App.TokenIssuer,
			TokenDuration: time.Duration(f.App.TokenDuration),
			Version:       f.App.Version,
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
			BodyLimit:       f.Server.BodyLimit,
			TrustProxy:      f.Server.TrustProxy,
			CORSOrigins:     f.Server.CORSOrigins,
			RateLimit:       f.Server.RateLimit,
			RateBurst:       f.Server.RateBurst,
		},
		Storage: Storage{
			DB: DB{
				DSN: f.Storage.DB.DSN,
			},
			Uploads: Uploads{
				Dir:     f.Storage.Uploads.Dir,
				MaxSize: f.Storage.Uploads.MaxSize,
			},
			Mirror: f.Storage.Mirror,
		},
		Features: f.Features,
		Workers: Workers{
			BackupSchedule: f.Workers.BackupSchedule,
			BackupDir:      f.Workers.BackupDir,
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(n)
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
