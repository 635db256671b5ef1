package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from both the file and the
// command line.
const (
	DefaultPort            = 9978
	DefaultUpstreamTimeout = 10 * time.Second
)

// Config is the exporter configuration. Fields map 1:1 to config.example.yaml.
type Config struct {
	// IRIAddress is the full URL of the IRI node's command API,
	// e.g. http://localhost:14265.
	IRIAddress string `yaml:"iri_address"`

	// Port is the TCP port the scrape endpoint listens on.
	Port int `yaml:"port"`

	// Verbose enables debug logging, including raw upstream payloads.
	Verbose bool `yaml:"verbose"`

	// ExcludeNeighbors skips the getNeighbors call and its metrics.
	ExcludeNeighbors bool `yaml:"exclude_neighbors"`

	// UpstreamTimeout bounds a single call to the IRI node.
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"`

	// TelemetryPort serves the exporter's own metrics when non-zero.
	TelemetryPort int `yaml:"telemetry_port"`

	// Auth configures how the exporter authenticates to the IRI node.
	Auth AuthConfig `yaml:"auth"`

	// TLS holds optional TLS dial options for https addresses.
	TLS TLSConfig `yaml:"tls"`
}

// AuthConfig specifies the authentication mode for the upstream node.
// Nodes behind a reverse proxy commonly require one of these.
type AuthConfig struct {
	// Mode is one of: mtls | apikey | bearer | basic | none.
	Mode string `yaml:"mode"`

	// mTLS fields, used when Mode == "mtls".
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
	CAFile   string `yaml:"ca_file"`

	// Header is the HTTP header name the API key is sent in (Mode == "apikey").
	Header string `yaml:"header"`
	// KeyEnv is the name of the environment variable that holds the key value.
	KeyEnv string `yaml:"key_env"`

	// TokenEnv is the name of the environment variable that holds the bearer token.
	TokenEnv string `yaml:"token_env"`

	// Username is the literal basic-auth username.
	Username string `yaml:"username"`
	// PasswordEnv is the name of the environment variable that holds the password.
	PasswordEnv string `yaml:"password_env"`
}

// Secrets stay out of the config file; the file only names the variables
// that carry them, and they are read at dial time so a rotated value is picked
// up by the next restart without editing YAML.

// Key is the value sent in Header when Mode is "apikey".
func (a AuthConfig) Key() string { return lookupEnv(a.KeyEnv) }

// Token is the bearer credential when Mode is "bearer".
func (a AuthConfig) Token() string { return lookupEnv(a.TokenEnv) }

// Password pairs with Username when Mode is "basic".
func (a AuthConfig) Password() string { return lookupEnv(a.PasswordEnv) }

// lookupEnv yields "" for an unnamed or unset variable.
func lookupEnv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}

// TLSConfig holds TLS dial options for the upstream node.
type TLSConfig struct {
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`
}

// Load reads and parses the YAML config file at path.
// An empty path yields the defaults; the result is not validated because the
// command line may still supply required fields.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	return cfg, nil
}

// ParseFlags parses args (without the program name) into a validated Config.
// It returns the path of the config file, if one was given, so the caller can
// watch it.
func ParseFlags(args []string) (*Config, string, error) {
	fs := flag.NewFlagSet("iri-exporter", flag.ContinueOnError)
	address := fs.String("a", "", "IRI address, e.g. http://localhost:14265")
	port := fs.Int("p", DefaultPort, "exporter port")
	verbose := fs.Bool("v", false, "verbose logging")
	excludeNeighbors := fs.Bool("n", false, "do not include getNeighbors method results")
	configPath := fs.String("config", "", "optional path to a YAML config file")

	if err := fs.Parse(args); err != nil {
		return nil, "", fmt.Errorf("config: %w", err)
	}

	cfg, err := Load(*configPath)
	if err != nil {
		return nil, "", err
	}

	// Explicit flags win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.IRIAddress = *address
		case "p":
			cfg.Port = *port
		case "v":
			cfg.Verbose = *verbose
		case "n":
			cfg.ExcludeNeighbors = *excludeNeighbors
		}
	})

	if err := Validate(cfg); err != nil {
		return nil, "", fmt.Errorf("config: %w", err)
	}
	return cfg, *configPath, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Port:            DefaultPort,
		UpstreamTimeout: DefaultUpstreamTimeout,
	}
}

// Validate checks required fields and structural constraints.
func Validate(cfg *Config) error {
	if cfg.IRIAddress == "" {
		return errors.New("iri_address is required (-a)")
	}
	u, err := url.Parse(cfg.IRIAddress)
	if err != nil {
		return fmt.Errorf("iri_address %q: %w", cfg.IRIAddress, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("iri_address %q: scheme must be http or https", cfg.IRIAddress)
	}
	if u.Host == "" {
		return fmt.Errorf("iri_address %q: host is required", cfg.IRIAddress)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("port %d is out of range [1, 65535]", cfg.Port)
	}
	if cfg.TelemetryPort < 0 || cfg.TelemetryPort > 65535 {
		return fmt.Errorf("telemetry_port %d is out of range [0, 65535]", cfg.TelemetryPort)
	}
	if cfg.TelemetryPort != 0 && cfg.TelemetryPort == cfg.Port {
		return fmt.Errorf("telemetry_port must differ from port %d", cfg.Port)
	}
	if cfg.UpstreamTimeout < 0 {
		return errors.New("upstream_timeout must not be negative")
	}
	switch cfg.Auth.Mode {
	case "mtls", "apikey", "bearer", "basic", "none", "":
	default:
		return fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
	if cfg.Auth.Mode == "apikey" && cfg.Auth.Header == "" {
		return errors.New("auth.header is required for apikey mode")
	}
	if cfg.Auth.Mode == "mtls" && (cfg.Auth.CertFile == "" || cfg.Auth.KeyFile == "") {
		return errors.New("auth.cert_file and auth.key_file are required for mtls mode")
	}
	return nil
}
