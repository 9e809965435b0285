package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath は CONFIG_PATH が未指定のときに読む設定ファイルです。
	DefaultPath = "assets/local.yaml"

	defaultLogLevel = "info"
	defaultLocale   = "en"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Directory DirectoryConfig `yaml:"directory"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// LogConfig はロガーの設定です。
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DirectoryConfig は社員名簿セッションの設定です。
type DirectoryConfig struct {
	Locale    string       `yaml:"locale"`
	LocaleTag language.Tag `yaml:"-"`
	// SeedPath が空の場合は組み込みのサンプルデータを使います。
	SeedPath string `yaml:"seed_path"`
}

// Default は設定ファイルがない場合の既定値を返します。
func Default() *Config {
	cfg := &Config{}
	if err := cfg.validateAndNormalize(); err != nil {
		panic(err)
	}
	return cfg
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Resolve は設定ファイルの場所を決めて読み込みます。
// path が空なら CONFIG_PATH、それも空なら DefaultPath を使い、
// DefaultPath が存在しない場合に限り既定値で続行します。
func Resolve(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv("CONFIG_PATH")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath
	}

	cfg, err := Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// RequireServer は gRPC サーバーの起動に必要な項目を検証します。
func (c *Config) RequireServer() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}
	return nil
}

func (c *Config) validateAndNormalize() error {
	c.Server.ListenAddr = strings.TrimSpace(c.Server.ListenAddr)

	if err := c.Log.validateAndNormalize(); err != nil {
		return err
	}

	return c.Directory.validateAndNormalize()
}

func (l *LogConfig) validateAndNormalize() error {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

func (d *DirectoryConfig) validateAndNormalize() error {
	d.Locale = strings.TrimSpace(d.Locale)
	if d.Locale == "" {
		d.Locale = defaultLocale
	}

	tag, err := language.Parse(d.Locale)
	if err != nil {
		return fmt.Errorf("config: directory.locale: %w", err)
	}
	d.LocaleTag = tag

	d.SeedPath = strings.TrimSpace(d.SeedPath)
	return nil
}
