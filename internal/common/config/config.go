package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string   `yaml:"port"`
	Environment  string   `yaml:"env"`
	ReadTimeout  int      `yaml:"read_timeout"`
	WriteTimeout int      `yaml:"write_timeout"`
	Geometry     Geometry `yaml:"geometry"`
}

// Geometry holds the engine tolerance and placement thresholds, in plan
// units.
type Geometry struct {
	Epsilon         float64 `yaml:"epsilon"`
	MinWallLength   float64 `yaml:"min_wall_length"`
	MaxWallLength   float64 `yaml:"max_wall_length"`
	MinWallSpacing  float64 `yaml:"min_wall_spacing"`
	SnapTolerance   float64 `yaml:"snap_tolerance"`
	MaxJoinDistance float64 `yaml:"max_join_distance"`
}

func Defaults() *Config {
	return &Config{
		Port:         "3003",
		Environment:  "development",
		ReadTimeout:  10,
		WriteTimeout: 10,
		Geometry: Geometry{
			Epsilon:         1e-6,
			MinWallLength:   10,
			MaxWallLength:   10000,
			MinWallSpacing:  5,
			SnapTolerance:   10,
			MaxJoinDistance: 50,
		},
	}
}

// Load builds the configuration from the defaults, then the YAML file named
// by PLANNER_CONFIG, then environment variables.
func Load() *Config {
	cfg := Defaults()
	if path := os.Getenv("PLANNER_CONFIG"); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			log.Printf("[CONFIG] Ignoring config file: %v", err)
		}
	}
	cfg.overlayEnv()
	return cfg
}

// LoadFile reads a YAML config over the defaults without looking at the
// environment.
func LoadFile(path string) (*Config, error) {
	cfg := Defaults()
	if err := cfg.overlayFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) overlayEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.Environment = getEnv("ENV", c.Environment)
	c.ReadTimeout = getEnvAsInt("READ_TIMEOUT", c.ReadTimeout)
	c.WriteTimeout = getEnvAsInt("WRITE_TIMEOUT", c.WriteTimeout)

	g := &c.Geometry
	g.Epsilon = getEnvAsFloat("GEOMETRY_EPSILON", g.Epsilon)
	g.MinWallLength = getEnvAsFloat("MIN_WALL_LENGTH", g.MinWallLength)
	g.MaxWallLength = getEnvAsFloat("MAX_WALL_LENGTH", g.MaxWallLength)
	g.MinWallSpacing = getEnvAsFloat("MIN_WALL_SPACING", g.MinWallSpacing)
	g.SnapTolerance = getEnvAsFloat("SNAP_TOLERANCE", g.SnapTolerance)
	g.MaxJoinDistance = getEnvAsFloat("MAX_JOIN_DISTANCE", g.MaxJoinDistance)
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
