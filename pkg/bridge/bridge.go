package bridge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jumppad-labs/matrixpanel/pkg/clients/command"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/command/types"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/logger"
)

const (
	// DefaultTimeout is the maximum time a device command may run
	DefaultTimeout = 30 * time.Second

	VenvScript = "run_in_venv.sh"
	AppScript  = "app.py"

	successMessage = "Command executed successfully"
)

// ErrNoArguments is returned when a command is run without arguments
var ErrNoArguments = errors.New("no command arguments provided")

// ErrNoProgram is returned when the bridge has no device program configured
var ErrNoProgram = errors.New("no device program configured")

// Bridge relays device commands to the device control program and renders
// the result as text
type Bridge struct {
	command command.Command
	program []string
	dir     string
	timeout time.Duration
	log     logger.Logger
}

// New creates a bridge which runs program in dir, program is the base
// invocation the request arguments are appended to
func New(c command.Command, dir string, program []string, timeout time.Duration, l logger.Logger) *Bridge {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Bridge{
		command: c,
		program: program,
		dir:     dir,
		timeout: timeout,
		log:     l,
	}
}

// ResolveProgram returns the base invocation for the device control program.
// An override is split on whitespace, otherwise the virtualenv wrapper script
// in dir is preferred over running the python app directly.
func ResolveProgram(dir, override string) []string {
	if p := strings.Fields(override); len(p) > 0 {
		return p
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	venv := filepath.Join(abs, VenvScript)
	if _, err := os.Stat(venv); err == nil {
		return []string{"bash", venv}
	}

	return []string{"python3", filepath.Join(abs, AppScript)}
}

// Program returns the base invocation used by the bridge
func (b *Bridge) Program() []string {
	return b.program
}

// Run executes the device program with the given arguments and returns the
// rendered output. Failures of the program are reported in the returned text,
// only a missing argument list or program is returned as an error.
func (b *Bridge) Run(args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrNoArguments
	}

	if len(b.program) == 0 {
		return "", ErrNoProgram
	}

	cmd := append([]string{}, b.program[1:]...)
	cmd = append(cmd, args...)

	b.log.Info("Executing command", "cmd", strings.Join(append([]string{b.program[0]}, cmd...), " "))

	r, err := b.command.Execute(types.CommandConfig{
		Command:          b.program[0],
		Args:             cmd,
		WorkingDirectory: b.dir,
		Timeout:          b.timeout,
	})

	if errors.Is(err, command.ErrorCommandTimeout) {
		b.log.Warn("Command timed out", "timeout", b.timeout)
		return fmt.Sprintf("Command timed out after %d seconds", int(b.timeout.Seconds())), nil
	}

	if err != nil {
		b.log.Error("Error executing command", "error", err)
		return fmt.Sprintf("Error executing command: %s", err), nil
	}

	return Render(r), nil
}

// Render combines the captured output of a command into a single text blob
func Render(r *types.CommandResult) string {
	output := r.Stdout

	if r.Stderr != "" {
		output += "\nErrors: " + r.Stderr
	}

	if r.ExitCode != 0 {
		output += fmt.Sprintf("\nCommand failed with return code: %d", r.ExitCode)
	}

	if output == "" {
		return successMessage
	}

	return output
}
