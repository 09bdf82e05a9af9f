package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables read as setting defaults, and passed to extensions.
const (
	EnvDataDir  = "CCC_DATA_DIR"
	EnvCurrency = "CCC_CURRENCY"
	EnvOrigin   = "CCC_ORIGIN"
	EnvVerbose  = "CCC_VERBOSE"
)

// RunExtension attempts to find and execute an external ccc-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "ccc-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("external command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Settings are resolved here so that extensions see the same values as builtin commands.
	cmd.Env = append(os.Environ(),
		EnvDataDir+"="+DataDir(),
		EnvCurrency+"="+Currency(),
		EnvOrigin+"="+Origin(),
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
