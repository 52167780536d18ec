package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

const (
	EnvConfigFile = "PCHART_CONFIG_FILE"
	EnvCurrency   = "PCHART_CURRENCY"
	EnvLogLevel   = "PCHART_LOG_LEVEL"
)

// extensionEnv returns the environment passed to extensions.
func extensionEnv(cfg *Config) []string {
	return []string{
		EnvConfigFile + "=" + *configFile,
		EnvCurrency + "=" + cfg.Currency,
		EnvLogLevel + "=" + cfg.LogLevel,
	}
}

// RunExtension attempts to find and execute an external pchart-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	cfg, log, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 1
	}
	defer log.Sync()
	return runExtension(subcommand, args, cfg, log, os.Stdin, os.Stdout, os.Stderr)
}

func runExtension(subcommand string, args []string, cfg *Config, log *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) (bool, int) {
	name := "pchart-" + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug("extension not found in PATH", zap.String("extension", name), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(), extensionEnv(cfg)...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
