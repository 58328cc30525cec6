package main

import (
	"time"

	"github.com/vitalvas/sharerecon/webform"
	"github.com/vitalvas/sharerecon/xconfig"
	"github.com/vitalvas/sharerecon/xlogger"
)

// envPrefix prefixes every configuration environment variable.
const envPrefix = "SHARERECON"

type Config struct {
	Logger xlogger.Config `yaml:"logger" json:"logger" toml:"logger"`
	Server ServerConfig   `yaml:"server" json:"server" toml:"server"`
	Method string         `yaml:"method" json:"method" toml:"method" default:"lagrange"`
}

type ServerConfig struct {
	Listen          string        `yaml:"listen" json:"listen" toml:"listen" default:"127.0.0.1:8080"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" json:"max_body_bytes" toml:"max_body_bytes"`
	ReadTimeout     time.Duration `yaml:"read_timeout" json:"read_timeout" toml:"read_timeout" default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" toml:"shutdown_timeout" default:"5s"`
}

func (c *ServerConfig) Default() {
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = webform.DefaultMaxBodyBytes
	}
}

func loadConfig(path string) (*Config, error) {
	conf := &Config{}
	if err := xconfig.Load(conf, xconfig.WithFiles(path), xconfig.WithEnv(envPrefix)); err != nil {
		return nil, err
	}
	return conf, nil
}
