package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"massnet.org/scriptkit/config"
	apierr "massnet.org/scriptkit/errors"
	"massnet.org/scriptkit/logging"
)

const (
	defaultConfigFilename = config.DefaultConfigFilename
	defaultConfigName     = ".scriptcli"
	envPrefix             = "scriptcli"
)

var (
	cfgFile         string
	usingConfigFile bool
	cfg             = config.DefaultConfig()
	params          *config.Params
	configErr       error
)

func defaultConfig() *config.Config {
	return config.DefaultConfig()
}

// initConfig reads in config file and ENV variables if set. Flags take
// precedence over both.
func initConfig() {
	cfg, params, configErr, usingConfigFile = defaultConfig(), nil, nil, false

	vp := viper.New()
	if cfgFile != "" {
		vp.SetConfigFile(cfgFile)
	} else {
		vp.AddConfigPath("./")
		vp.SetConfigName(defaultConfigName)
		vp.SetConfigType("json")
	}
	vp.SetEnvPrefix(envPrefix)
	vp.AutomaticEnv() // read in environment variables that match

	if err := vp.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		configErr = apierr.New(apierr.ErrAPIConfig, err)
		return
	}

	// If a config file is found, read it in.
	if err := vp.ReadInConfig(); err == nil {
		usingConfigFile = true
	} else if cfgFile != "" {
		configErr = apierr.New(apierr.ErrAPIConfig, err)
		return
	}

	if err := vp.Unmarshal(cfg); err != nil {
		configErr = apierr.New(apierr.ErrAPIConfig, err)
		return
	}

	p, err := config.CheckConfig(cfg)
	if err != nil {
		code := uint32(apierr.ErrAPIConfig)
		if errors.Cause(err) == config.ErrUnknownNet {
			code = apierr.ErrAPINet
		}
		configErr = apierr.New(code, err)
		return
	}
	params = p
}

// initLogger initializes logging module by config. Results go to stdout,
// so log entries are kept out of it.
func initLogger() {
	if configErr != nil {
		return
	}
	if cfg.LogDir == "" {
		logging.InitConsole(cfg.LogLevel)
		return
	}
	if err := logging.Init(cfg.LogDir, config.DefaultLoggingFilename, cfg.LogLevel, cfg.LogAge, true); err != nil {
		configErr = apierr.New(apierr.ErrAPIConfig, err)
	}
}

// logBasicInfo logs the basic info on initializing.
func logBasicInfo() {
	if configErr != nil {
		return
	}
	logging.VPrint(logging.INFO, "using config", logging.LogFormat{
		"file":    usingConfigFile,
		"net":     cfg.Net,
		"workers": cfg.Workers,
	})
}
