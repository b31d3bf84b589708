package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/command/types"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/logger"
)

var ErrorCommandTimeout = fmt.Errorf("Command timed out before completing")

// time allowed for the output pipes to drain after the process has exited
const pipeDrainDelay = 2 * time.Second

//go:generate mockery --name Command --filename command.go
type Command interface {
	// Execute runs the command and blocks until it exits or the timeout elapses.
	// A process which exits with a non zero code is not an error, the code is
	// returned in the result. On timeout the process is killed and the partial
	// result is returned together with ErrorCommandTimeout.
	Execute(config types.CommandConfig) (*types.CommandResult, error)
}

// Command executes local commands
type CommandImpl struct {
	timeout time.Duration
	log     logger.Logger
}

// NewCommand creates a new command with the given logger and maximum command time
func NewCommand(maxCommandTime time.Duration, l logger.Logger) Command {
	return &CommandImpl{maxCommandTime, l}
}

// Execute the given command
func (c *CommandImpl) Execute(config types.CommandConfig) (*types.CommandResult, error) {
	timeout := c.timeout
	if config.Timeout != (0 * time.Millisecond) {
		timeout = config.Timeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, config.Command, config.Args...)
	cmd.WaitDelay = pipeDrainDelay

	// add the default environment variables
	cmd.Env = os.Environ()

	if config.Env != nil {
		cmd.Env = append(cmd.Env, config.Env...)
	}

	if config.WorkingDirectory != "" {
		cmd.Dir = config.WorkingDirectory
	}

	result := &types.CommandResult{ID: uuid.New().String()}
	log := c.log.With("id", result.ID)

	stdout := bytes.NewBufferString("")
	stderr := bytes.NewBufferString("")
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if config.StreamOutput {
		hl := logger.LoggerAsHCLogger(c.log).Named(config.Command)
		w := hl.StandardWriter(&hclog.StandardLoggerOptions{InferLevels: true})

		cmd.Stdout = io.MultiWriter(stdout, w)
		cmd.Stderr = io.MultiWriter(stderr, w)
	}

	log.Debug(
		"Running command",
		"cmd", config.Command,
		"args", config.Args,
		"dir", config.WorkingDirectory,
		"env", config.Env,
		"timeout", timeout,
	)

	st := time.Now()

	err := cmd.Start()
	if err != nil {
		log.Debug("Unable to start command", "cmd", config.Command, "error", err)
		return nil, err
	}

	result.PID = cmd.Process.Pid

	err = cmd.Wait()

	result.Duration = time.Since(st)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		log.Debug("Command timed out, process killed", "pid", result.PID, "timeout", timeout)
		result.ExitCode = -1
		return result, ErrorCommandTimeout
	}

	// a background process started by the command can keep the output pipes
	// open after the command exits, the output read before WaitDelay expired
	// is the complete output of the command
	if errors.Is(err, exec.ErrWaitDelay) {
		log.Debug("Output pipes held open after exit", "pid", result.PID)
		err = nil
	}

	if err != nil {
		var exitError *exec.ExitError
		if !errors.As(err, &exitError) {
			return result, err
		}
	}

	result.ExitCode = cmd.ProcessState.ExitCode()

	log.Debug("Command complete", "pid", result.PID, "exit_code", result.ExitCode, "duration", result.Duration)

	return result, nil
}
