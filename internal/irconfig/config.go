// Package irconfig loads irdecode's runtime configuration, grounded on the
// teacher's internal/config/config.go: same viper-backed default-then-file-
// then-env precedence, same Load(path) shape.
package irconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for cmd/ir-bridge.
type Config struct {
	Receiver ReceiverConfig `mapstructure:"receiver"`
	MQTT     MQTTConfig     `mapstructure:"mqtt"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Server   ServerConfig   `mapstructure:"server"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Influx   InfluxConfig   `mapstructure:"influx"`
}

// ReceiverConfig configures the GPIO-sourced IR receiver. Protocols is the
// runtime enable list standing in for the compile-time feature flags
// spec.md §6 describes for an embedded build - this host binary is not
// built per-MCU-flash-image, so the same choice is made at startup instead.
type ReceiverConfig struct {
	PinBCM    int      `mapstructure:"pin_bcm"`
	SamplerHz uint32   `mapstructure:"sampler_hz"`
	Protocols []string `mapstructure:"protocols"`
	Backend   string   `mapstructure:"backend"` // gpiocdev, rpio, mock
}

// MQTTConfig configures the command-publish transport.
type MQTTConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Broker   string `mapstructure:"broker"`
	ClientID string `mapstructure:"client_id"`
	Topic    string `mapstructure:"topic"`
	QoS      byte   `mapstructure:"qos"`
	Retain   bool   `mapstructure:"retain"`
}

// StorageConfig configures the SQLite history store and Redis repeat cache.
type StorageConfig struct {
	SQLitePath  string `mapstructure:"sqlite_path"`
	RedisAddr   string `mapstructure:"redis_addr"`
	RedisDB     int    `mapstructure:"redis_db"`
	RepeatTTLMS int    `mapstructure:"repeat_ttl_ms"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

// LoggerConfig configures irlog.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	LogDir string `mapstructure:"log_dir"`
}

// InfluxConfig configures the optional periodic decode-stats export. Addr
// left blank disables the export entirely; the cron flush still runs and
// logs through irlog either way.
type InfluxConfig struct {
	Addr   string `mapstructure:"addr"`
	Token  string `mapstructure:"token"`
	Org    string `mapstructure:"org"`
	Bucket string `mapstructure:"bucket"`
}

// Load reads configuration from file and environment variables, the same
// default-then-file-then-env precedence as the teacher's Load.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		v.AddConfigPath(getConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("irconfig: failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("IRDECODE")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("irconfig: failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("receiver.pin_bcm", 17)
	v.SetDefault("receiver.sampler_hz", 1_000_000)
	v.SetDefault("receiver.protocols", []string{"nec", "rc5"})
	v.SetDefault("receiver.backend", "gpiocdev")

	v.SetDefault("mqtt.enabled", false)
	v.SetDefault("mqtt.broker", "tcp://localhost:1883")
	v.SetDefault("mqtt.client_id", "irdecode")
	v.SetDefault("mqtt.topic", "irdecode")
	v.SetDefault("mqtt.qos", 0)
	v.SetDefault("mqtt.retain", false)

	v.SetDefault("storage.sqlite_path", "./data/irdecode.db")
	v.SetDefault("storage.redis_addr", "")
	v.SetDefault("storage.redis_db", 0)
	v.SetDefault("storage.repeat_ttl_ms", 250)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.jwt_secret", "")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.log_dir", "./logs")

	v.SetDefault("influx.addr", "")
	v.SetDefault("influx.org", "")
	v.SetDefault("influx.bucket", "irdecode")
}

func getConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".irdecode")
}
