package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment
// variables.
type AppConfig struct {
	// BloomFPRate is the target false-positive rate for the anchor
	// prefilter built on ruleset updates.
	BloomFPRate float64 `koanf:"bloom_fp_rate" validate:"required,gt=0,lt=1"`

	// CacheSize is the per-anchor rule cache capacity; 0 disables
	// the cache.
	CacheSize int `koanf:"cache_size" validate:"gte=0"`

	// DBPath is the compiled-ruleset database location. Empty keeps
	// the ruleset in memory only.
	DBPath string `koanf:"db_path"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// ICANNOnly drops PRIVATE-section rules when loading the list.
	ICANNOnly bool `koanf:"icann_only"`

	// ListPath points at a public_suffix_list.dat file. Empty runs
	// with no explicit rules: every suffix is the default rule.
	ListPath string `koanf:"list_path"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or
	// "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
}

// envLoader loads environment variables with the prefix "NAMEVET_",
// lowercasing keys and stripping the prefix. It can be mocked in
// tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "NAMEVET_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "NAMEVET_")), value
		},
	}), nil)
}

// Load parses environment variables and returns an AppConfig
// instance. It applies default values and runs validation
// automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	// Load default values using the structs provider.
	k.Load(structs.Provider(AppConfig{
		BloomFPRate: 0.01,
		CacheSize:   1024,
		Env:         "prod",
		LogLevel:    "info",
	}, "koanf"), nil)

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
