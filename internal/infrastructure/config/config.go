package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	sharedConfig "github.com/orris-inc/helpdesk/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
}

// Load reads configs/config.yaml (when present) and HELPDESK_* environment
// variables. The returned Config is built once and passed down explicitly.
func Load(env string) (*Config, error) {
	return LoadFrom(viper.New(), env, "")
}

// LoadFrom loads configuration using v. An empty configFile searches the default
// config directories; a missing file is not an error because every required value
// can be supplied through the environment.
func LoadFrom(v *viper.Viper, env string, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("HELPDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Names used by earlier deployments of the support desk.
	_ = v.BindEnv("auth.session.secrets", "HELPDESK_AUTH_SESSION_SECRETS", "SESSION_SECRET")
	_ = v.BindEnv("auth.admin_services", "HELPDESK_AUTH_ADMIN_SERVICES", "ADMIN_ROLE")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if mode := mapEnvToMode(env); mode != "" {
		v.Set("server.mode", mode)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Server.IsProduction() {
		config.Auth.Session.Secure = true
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects configurations the server cannot safely start with.
func (c *Config) Validate() error {
	secrets := c.Auth.Session.Secrets[:0:0]
	for _, s := range c.Auth.Session.Secrets {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) == 0 {
		return fmt.Errorf("auth.session.secrets must be set (HELPDESK_AUTH_SESSION_SECRETS or SESSION_SECRET)")
	}
	c.Auth.Session.Secrets = secrets

	admins := c.Auth.AdminServices[:0:0]
	for _, s := range c.Auth.AdminServices {
		if s = strings.TrimSpace(s); s != "" {
			admins = append(admins, s)
		}
	}
	if len(admins) == 0 {
		return fmt.Errorf("auth.admin_services must be set (HELPDESK_AUTH_ADMIN_SERVICES or ADMIN_ROLE)")
	}
	c.Auth.AdminServices = admins

	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	return nil
}

func mapEnvToMode(env string) string {
	switch env {
	case "production", "prod", "release":
		return "release"
	case "development", "dev", "debug":
		return "debug"
	case "test", "testing":
		return "test"
	default:
		return ""
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "helpdesk.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "helpdesk")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.password.bcrypt_cost", 10)
	v.SetDefault("auth.session.cookie_name", "__session")
	v.SetDefault("auth.session.max_age_days", 30)
	v.SetDefault("auth.session.secrets", []string{})
	v.SetDefault("auth.session.secure", false)
	v.SetDefault("auth.session.path", "/")
	v.SetDefault("auth.admin_services", []string{})
	v.SetDefault("auth.logout_on_forbidden", false)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("ratelimit.auth_requests_per_minute", 10)
	v.SetDefault("ratelimit.auth_requests_per_hour", 100)
}
