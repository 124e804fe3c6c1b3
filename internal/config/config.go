// Package config loads, validates, and writes the leetup config file.
//
// The file is YAML under ~/.leetup by default. Decoded values are
// validated against an embedded CUE schema before anything else touches
// them, so the rest of the program can trust URLs to be URLs and the
// cache TTL to parse.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Config is the effective leetup configuration.
type Config struct {
	BaseURL     string  `yaml:"base_url" json:"base_url"`
	ProblemsURL string  `yaml:"problems_url" json:"problems_url"`
	Cache       Cache   `yaml:"cache" json:"cache"`
	Session     Session `yaml:"session" json:"session"`
}

// Cache configures the catalog snapshot cache.
type Cache struct {
	Path string `yaml:"path" json:"path"`
	TTL  string `yaml:"ttl" json:"ttl"`
}

// Session configures authenticated access to the API.
type Session struct {
	Cookie string `yaml:"cookie" json:"cookie"`
}

// TTLDuration parses the cache TTL. The schema guarantees duration
// syntax for validated configs.
func (c Cache) TTLDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0, fmt.Errorf("cache ttl: %w", err)
	}
	return d, nil
}

// Default returns the configuration used when no config file exists.
// The cache lands next to the config file under ~/.leetup.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".leetup")

	return Config{
		BaseURL:     "https://leetcode.com",
		ProblemsURL: "https://leetcode.com/api/problems/all",
		Cache: Cache{
			Path: filepath.Join(dir, "cache.db"),
			TTL:  "24h",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".leetup", "config.yaml")
}

// Load reads and validates the config file at path. A missing file is
// not an error: the defaults are returned, already valid. Unknown YAML
// fields are rejected so typos don't silently become no-ops.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate unifies the config with the embedded CUE schema and reports
// every violation with its field path.
func Validate(cfg Config) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("config schema: %w", err)
	}

	unified := schema.Unify(ctx.Encode(cfg))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		var msgs []string
		for _, e := range cueerrors.Errors(err) {
			msgs = append(msgs, e.Error())
		}
		return fmt.Errorf("invalid config: %v", msgs)
	}

	// The schema can't know whether a syntactically valid duration is
	// sane; parse it once here so later callers can't fail.
	if _, err := cfg.Cache.TTLDuration(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

const fileHeader = `# leetup configuration.
# base_url/problems_url point at the upstream API; session.cookie enables
# done/starred state; cache.ttl is how long a fetched catalog stays fresh.
`

// Write validates cfg and writes it to path atomically, creating parent
// directories as needed. An interrupted write leaves any existing file
// untouched.
func Write(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	content := append([]byte(fileHeader), data...)
	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
