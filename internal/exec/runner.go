// Package exec runs the external tools the deploy pipeline drives: cross,
// cargo, ssh, scp, ssh-keygen, and ssh-copy-id. Components depend on the
// Runner interface rather than os/exec so tests can substitute a fake and
// inspect invocations.
package exec

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/crossdeploy/crossdeploy/internal/logger"
)

// Runner executes external commands. The three methods differ only in how
// the child's streams are wired.
type Runner interface {
	// Run executes a command with the terminal fully attached. Used for
	// steps the user watches or interacts with (compiler output, password
	// entry for ssh-copy-id, host key confirmations).
	Run(name string, args ...string) error

	// RunQuiet executes a command with stdin, stdout, and stderr all
	// detached. Used for probes whose only interesting result is the
	// exit status.
	RunQuiet(name string, args ...string) error

	// Output executes a command capturing stdout while stderr streams to
	// the terminal, so tool diagnostics stay visible.
	Output(name string, args ...string) ([]byte, error)
}

// System is the Runner backed by real subprocesses.
type System struct {
	log logger.Logger
}

// NewSystem returns a Runner that spawns real processes and debug-logs
// every invocation.
func NewSystem() *System {
	return &System{log: logger.NewEnvLogger("[exec]")}
}

func (s *System) Run(name string, args ...string) error {
	s.log.Debug("run: %s", commandLine(name, args))

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (s *System) RunQuiet(name string, args ...string) error {
	s.log.Debug("run quiet: %s", commandLine(name, args))

	cmd := exec.Command(name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

func (s *System) Output(name string, args ...string) ([]byte, error) {
	s.log.Debug("run capture: %s", commandLine(name, args))

	cmd := exec.Command(name, args...)
	cmd.Stderr = os.Stderr
	return cmd.Output()
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
