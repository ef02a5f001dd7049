package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/billabong/internal/consent"
	"github.com/starford/billabong/internal/mail"
	"github.com/starford/billabong/internal/models"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Site    SiteConfig        `yaml:"site"`
	SQLite  SQLiteConfig      `yaml:"sqlite"`
	Mail    MailConfig        `yaml:"mail"`
	Consent ConsentConfig     `yaml:"consent"`
	Build   BuildConfig       `yaml:"build"`
	Auth    AuthConfig        `yaml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	for _, v := range []interface{ Validate() error }{
		&c.App, &c.Site, &c.SQLite, &c.Mail, &c.Consent, &c.Build, &c.Auth,
	} {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
	// LiveReload injects the reload script into served pages.
	LiveReload bool `yaml:"live_reload"`
	// ReloadThrottle bounds how often open pages are told to reload.
	ReloadThrottle time.Duration `yaml:"reload_throttle"`
	// CORSOrigins may call the JSON API cross-origin. Pages opened from
	// disk send Origin "null".
	CORSOrigins []string `yaml:"cors_origins"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.ReloadThrottle, validation.Min(time.Duration(0))),
	); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// SiteConfig locates the site root: page markup, includes/, content/ and
// assets.
type SiteConfig struct {
	Root string `yaml:"root"`
	// AutoLocale redirects "/" to "/hu/" for Hungarian Accept-Language.
	AutoLocale bool `yaml:"auto_locale"`
	// Watch reloads content when files under the root change.
	Watch         bool          `yaml:"watch"`
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// Validate validates the site configuration.
func (c *SiteConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.WatchDebounce, validation.Min(time.Duration(0))),
	); err != nil {
		return fmt.Errorf("site: %w", err)
	}
	return nil
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// MailConfig configures the contact form transport. The account ids come
// from the site's config.json; only the server-side secrets live here.
type MailConfig struct {
	Endpoint     string        `yaml:"endpoint"`
	PrivateKey   string        `yaml:"private_key"`
	Recipient    string        `yaml:"recipient"`
	ReadyTimeout time.Duration `yaml:"ready_timeout"`
}

// Validate validates the mail configuration.
func (c *MailConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Endpoint, validation.Required),
		validation.Field(&c.Recipient, validation.Required),
		validation.Field(&c.ReadyTimeout, validation.Required, validation.Min(time.Millisecond)),
	); err != nil {
		return fmt.Errorf("mail: %w", err)
	}
	return nil
}

// ConsentConfig configures the consent cookie.
type ConsentConfig struct {
	CookieName string `yaml:"cookie_name"`
	Secure     bool   `yaml:"secure"`
}

// Validate validates the consent configuration.
func (c *ConsentConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.CookieName, validation.Required),
	)
}

// Jar returns the cookie jar described by c.
func (c *ConsentConfig) Jar() consent.Jar {
	j := consent.NewJar(c.CookieName)
	j.Secure = c.Secure
	return j
}

// BuildConfig configures the static builder.
type BuildConfig struct {
	OutputDir string `yaml:"output_dir"`
	Mode      string `yaml:"mode"`
	Minify    bool   `yaml:"minify"`
}

// Validate validates the build configuration.
func (c *BuildConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.Mode, validation.Required, validation.In(string(models.ModeNetwork), string(models.ModeLocalFile))),
	); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	return nil
}

// RuntimeMode returns the parsed build mode.
func (c *BuildConfig) RuntimeMode() models.RuntimeMode {
	m, err := models.ParseMode(c.Mode)
	if err != nil {
		return models.ModeLocalFile
	}
	return m
}

// AuthConfig holds authentication configuration for the admin endpoints.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local dev.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
			ReloadThrottle: 2 * time.Second,
			CORSOrigins:    []string{"null", "http://localhost:*", "http://127.0.0.1:*"},
		},
		Site: SiteConfig{
			Root:          "./site",
			Watch:         true,
			WatchDebounce: 300 * time.Millisecond,
		},
		SQLite: SQLiteConfig{
			Path: "./billabong.db",
		},
		Mail: MailConfig{
			Endpoint:     mail.DefaultEndpoint,
			Recipient:    mail.DefaultRecipient,
			ReadyTimeout: mail.DefaultReadyWait,
		},
		Consent: ConsentConfig{
			CookieName: consent.DefaultCookieName,
		},
		Build: BuildConfig{
			OutputDir: "./dist",
			Mode:      string(models.ModeLocalFile),
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
