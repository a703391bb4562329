package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`

	// DevicePort is the serial port of the HID emulator. Empty means no
	// hardware attached: frames are logged instead of written.
	DevicePort string `mapstructure:"device_port" yaml:"device_port"`
	DeviceBaud int    `mapstructure:"device_baud" yaml:"device_baud"`

	// RepeatInterval is the cadence of command re-emission while a panel
	// control is held.
	RepeatInterval time.Duration `mapstructure:"repeat_interval" yaml:"repeat_interval"`

	DatabasePath string `mapstructure:"database_path" yaml:"database_path"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level"`

	// WSRateLimit caps inbound WebSocket messages per minute per
	// connection. Zero disables the limit.
	WSRateLimit int `mapstructure:"ws_rate_limit" yaml:"ws_rate_limit"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		DevicePort:        "",
		DeviceBaud:        115200,
		RepeatInterval:    100 * time.Millisecond,
		DatabasePath:      "hidlink.db",
		LogLevel:          "info",
		WSRateLimit:       1200,
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.DevicePort != "" {
		c.DevicePort = other.DevicePort
	}
	if other.DeviceBaud != 0 {
		c.DeviceBaud = other.DeviceBaud
	}
	if other.RepeatInterval != 0 {
		c.RepeatInterval = other.RepeatInterval
	}
	if other.DatabasePath != "" {
		c.DatabasePath = other.DatabasePath
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.WSRateLimit != 0 {
		c.WSRateLimit = other.WSRateLimit
	}
}
