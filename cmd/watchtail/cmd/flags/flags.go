// Package flags holds the flags shared by every watchtail command.
package flags

import (
	"fmt"

	"github.com/spf13/pflag"
)

// GlobalFlags holds the global flag values for the application.
type GlobalFlags struct {
	LogLevel     string
	LogFormatter string
}

var (
	logLevels     = []string{"debug", "info", "warn", "warning", "error", "fatal"}
	logFormatters = []string{"text", "json"}
)

// SetGlobalFlags binds the global flags on the given FlagSet and returns
// the struct the parsed values land in.
func SetGlobalFlags(flags *pflag.FlagSet) *GlobalFlags {
	globalFlags := &GlobalFlags{}

	flags.StringVarP(&globalFlags.LogLevel, "log-level", "l", "info", "verbosity of watchtail diagnostics, one of: debug, info, warn/warning, error, fatal")
	flags.StringVarP(&globalFlags.LogFormatter, "log-formatter", "e", "text", "format of watchtail diagnostics, one of: text, json")

	return globalFlags
}

// ValidateGlobalFlags checks the global flag values before any command runs.
func (globalFlags *GlobalFlags) ValidateGlobalFlags() error {
	if !contains(logLevels, globalFlags.LogLevel) {
		return fmt.Errorf("invalid log level: %s", globalFlags.LogLevel)
	}

	if !contains(logFormatters, globalFlags.LogFormatter) {
		return fmt.Errorf("invalid log formatter: %s", globalFlags.LogFormatter)
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
