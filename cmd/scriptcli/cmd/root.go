package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	apierr "massnet.org/scriptkit/errors"
	"massnet.org/scriptkit/logging"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:           filepath.Base(os.Args[0]),
	Short:         `Command line tools for Bitcoin and Elements scripts`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
}

// stdout receives command results.
var stdout io.Writer = os.Stdout

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout))
}

// Run executes the command line args, writing results and errors to out as
// JSON, and returns the process exit code.
func Run(args []string, out io.Writer) int {
	stdout = out
	RootCmd.SetArgs(args)
	if err := RootCmd.Execute(); err != nil {
		code, msg := apierr.FromError(err)
		logging.VPrint(logging.DEBUG, "command rejected", logging.LogFormat{
			"args": args,
			"code": code,
			"err":  msg,
		})
		printJSON(&errorResult{Code: code, Message: msg})
		return 1
	}
	return 0
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initLogger)
	cobra.OnInitialize(logBasicInfo)

	defaults := defaultConfig()
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+defaultConfigFilename+")")
	RootCmd.PersistentFlags().String("log_dir", defaults.LogDir, "directory for log files, empty to log to stderr")
	RootCmd.PersistentFlags().String("log_level", defaults.LogLevel, "level of logs (trace, debug, info, warn, error, fatal, panic)")
	RootCmd.PersistentFlags().Uint32("log_age", defaults.LogAge, "days to keep rotated log files")
	RootCmd.PersistentFlags().String("net", defaults.Net, "network whose parameters are used")
	RootCmd.PersistentFlags().Int("workers", defaults.Workers, "goroutines used by classify-file")

	RootCmd.AddCommand(classifyCmd)
	RootCmd.AddCommand(classifyFileCmd)
	RootCmd.AddCommand(disasmCmd)

	RootCmd.AddCommand(buildCmd)

	RootCmd.AddCommand(pegoutCmd)
	RootCmd.AddCommand(peginCmd)

	RootCmd.AddCommand(varIntCmd)
	RootCmd.AddCommand(scriptIntCmd)
	RootCmd.AddCommand(netsCmd)
}
