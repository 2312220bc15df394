package config

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"massnet.org/scriptkit/logging"
)

const (
	DefaultConfigFilename  = ".scriptcli.json"
	DefaultLoggingFilename = "scriptcli"
	DefaultLogLevel        = "info"
	DefaultNet             = "mainnet"
	DefaultLogAge          = 7
	defaultAppName         = "scriptcli"
	defaultLogDirname      = "logs"
	maxWorkers             = 1024
)

// Config is the scriptcli configuration. Fields are filled from the config
// file, the environment and flags, in increasing priority.
type Config struct {
	LogDir   string `json:"log_dir" mapstructure:"log_dir"`
	LogLevel string `json:"log_level" mapstructure:"log_level"`
	LogAge   uint32 `json:"log_age" mapstructure:"log_age"`
	Net      string `json:"net" mapstructure:"net"`
	Workers  int    `json:"workers" mapstructure:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		LogDir:   filepath.Join(AppDataDir(defaultAppName, false), defaultLogDirname),
		LogLevel: DefaultLogLevel,
		LogAge:   DefaultLogAge,
		Net:      DefaultNet,
		Workers:  runtime.NumCPU(),
	}
}

// CheckConfig validates cfg and returns the chain parameters it selects.
func CheckConfig(cfg *Config) (*Params, error) {
	if !logging.ValidLevel(cfg.LogLevel) {
		return nil, errors.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	if cfg.Workers < 1 || cfg.Workers > maxWorkers {
		return nil, errors.Errorf("workers must be between 1 and %d, got %d",
			maxWorkers, cfg.Workers)
	}
	return ParamsForNet(cfg.Net)
}

// appDataDir returns the per-user data directory for appName on goos.
func appDataDir(goos, appName string, roaming bool) string {
	appName = strings.TrimPrefix(appName, ".")
	if appName == "" {
		return "."
	}
	appNameUpper := string(unicode.ToUpper(rune(appName[0]))) + appName[1:]
	appNameLower := string(unicode.ToLower(rune(appName[0]))) + appName[1:]

	var homeDir string
	if usr, err := user.Current(); err == nil {
		homeDir = usr.HomeDir
	}
	if homeDir == "" {
		homeDir = os.Getenv("HOME")
	}

	switch goos {
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if roaming || appData == "" {
			appData = os.Getenv("APPDATA")
		}
		if appData != "" {
			return filepath.Join(appData, appNameUpper)
		}
	case "darwin":
		if homeDir != "" {
			return filepath.Join(homeDir, "Library", "Application Support", appNameUpper)
		}
	default:
		if homeDir != "" {
			return filepath.Join(homeDir, "."+appNameLower)
		}
	}
	return "."
}

// AppDataDir returns an operating system specific directory for storing
// application data:
//
//	POSIX (Linux/BSD): ~/.myapp
//	Mac OS: $HOME/Library/Application Support/Myapp
//	Windows: %LOCALAPPDATA%\Myapp
func AppDataDir(appName string, roaming bool) string {
	return appDataDir(runtime.GOOS, appName, roaming)
}
