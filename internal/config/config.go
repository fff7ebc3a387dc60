// Package config holds the settings shared by the store-art commands and
// loads them from the environment and an optional .env file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/store-art/internal/imaging"
)

// Defaults used when nothing else is configured.
const (
	DefaultSourceDir  = "."
	DefaultPattern    = "Screenshot_*.jpg"
	DefaultSourceFile = "Screenshot_2025-12-25-12-26-16-739_com.theaark.wakt.jpg"
	DefaultOutputName = "feature-graphic.png"
	DefaultFilter     = "lanczos"
	DefaultLogLevel   = "info"

	// DiagLogName is the file that records imaging support failures.
	DiagLogName = "store-art.log"
)

// DefaultTarget is the feature graphic size app stores ask for.
var DefaultTarget = imaging.Size{Width: 1024, Height: 500}

// Environment variables read by FromEnv.
const (
	EnvSourceDir  = "STORE_ART_SOURCE_DIR"
	EnvPattern    = "STORE_ART_PATTERN"
	EnvSourceFile = "STORE_ART_SOURCE_FILE"
	EnvOutput     = "STORE_ART_OUTPUT"
	EnvTargetSize = "STORE_ART_TARGET_SIZE"
	EnvFilter     = "STORE_ART_FILTER"
	EnvGravity    = "STORE_ART_GRAVITY"
	EnvLogLevel   = "STORE_ART_LOG_LEVEL"
	EnvDiagLog    = "STORE_ART_DIAG_LOG"
)

// Config is the complete set of inputs for both commands.
type Config struct {
	// SourceDir is the directory scanned for screenshots and the base for a
	// relative SourceFile.
	SourceDir string
	// Pattern is the filename glob the lister matches inside SourceDir.
	Pattern string
	// SourceFile is the screenshot turned into a feature graphic.
	SourceFile string
	// OutputPath is where the feature graphic is written. Empty means
	// DefaultOutputName inside SourceDir.
	OutputPath string
	// Target is the exact size of the feature graphic.
	Target imaging.Size
	// Filter names the resampling filter.
	Filter string
	// Gravity positions the crop.
	Gravity imaging.Gravity
	// LogLevel is a logrus level name.
	LogLevel string
	// DiagLog is where imaging support failures are recorded. Empty means
	// DiagLogName next to the executable.
	DiagLog string
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		SourceDir:  DefaultSourceDir,
		Pattern:    DefaultPattern,
		SourceFile: DefaultSourceFile,
		Target:     DefaultTarget,
		Filter:     DefaultFilter,
		Gravity:    imaging.GravityCenter,
		LogLevel:   DefaultLogLevel,
	}
}

// Environ returns the process environment layered over the variables in
// dotenv. A missing dotenv file is not an error; variables already set in
// the process win over the file.
func Environ(dotenv string) (map[string]string, error) {
	env := map[string]string{}
	if dotenv != "" {
		fileEnv, err := godotenv.Read(dotenv)
		switch {
		case err == nil:
			env = fileEnv
		case os.IsNotExist(errors.Cause(err)):
		default:
			return nil, errors.Wrapf(err, "failed to read %s", dotenv)
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, "STORE_ART_") {
			env[k] = v
		}
	}
	return env, nil
}

// FromEnv returns Default overridden by the STORE_ART_* entries in env.
func FromEnv(env map[string]string) (Config, error) {
	cfg := Default()

	set := func(key string, dst *string) {
		if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(EnvSourceDir, &cfg.SourceDir)
	set(EnvPattern, &cfg.Pattern)
	set(EnvSourceFile, &cfg.SourceFile)
	set(EnvOutput, &cfg.OutputPath)
	set(EnvFilter, &cfg.Filter)
	set(EnvLogLevel, &cfg.LogLevel)
	set(EnvDiagLog, &cfg.DiagLog)

	var gravity string
	set(EnvGravity, &gravity)
	if gravity != "" {
		g, err := imaging.ParseGravity(gravity)
		if err != nil {
			return Config{}, errors.Wrap(err, EnvGravity)
		}
		cfg.Gravity = g
	}

	var size string
	set(EnvTargetSize, &size)
	if size != "" {
		target, err := imaging.ParseSize(size)
		if err != nil {
			return Config{}, errors.Wrap(err, EnvTargetSize)
		}
		cfg.Target = target
	}

	return cfg, cfg.Validate()
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.SourceDir == "" {
		return errors.New("source directory must not be empty")
	}
	if !c.Target.Valid() {
		return errors.Wrapf(imaging.ErrInvalidSize, "target size %s", c.Target)
	}
	if _, err := imaging.ParseFilter(c.Filter); err != nil {
		return err
	}
	if _, err := imaging.ParseGravity(string(c.Gravity)); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}

// SourcePath returns SourceFile resolved against SourceDir.
func (c Config) SourcePath() string {
	if filepath.IsAbs(c.SourceFile) {
		return c.SourceFile
	}
	return filepath.Join(c.SourceDir, c.SourceFile)
}

// Output returns the feature graphic destination.
func (c Config) Output() string {
	if c.OutputPath != "" {
		return c.OutputPath
	}
	return filepath.Join(c.SourceDir, DefaultOutputName)
}

// DiagLogPath returns where imaging support failures are recorded.
func (c Config) DiagLogPath() string {
	if c.DiagLog != "" {
		return c.DiagLog
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), DiagLogName)
	}
	return DiagLogName
}
