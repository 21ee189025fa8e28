package curl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// ExitError reports that curl ran but exited with a non-zero status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("curl exited with status: %d", e.Code)
}

// Runner executes curl, or prints what it would execute.
type Runner struct {
	// Exe is the curl executable; DefaultExe when empty
	Exe string
	// Stdout and Stderr are attached to the subprocess. They default to the
	// process's own streams.
	Stdout io.Writer
	Stderr io.Writer
	// Logger receives debug output; logrus.StandardLogger() when nil
	Logger logrus.FieldLogger
}

func (r *Runner) exe() string {
	if r.Exe == "" {
		return DefaultExe
	}
	return r.Exe
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Logger == nil {
		return logrus.StandardLogger()
	}
	return r.Logger
}

// FormatCommand renders an invocation as a single line, arguments separated
// by one space and not quoted.
func FormatCommand(exe string, args []string) string {
	if len(args) == 0 {
		return exe
	}
	return exe + " " + strings.Join(args, " ")
}

// DryRun writes the command line that Run would execute.
func (r *Runner) DryRun(args []string) error {
	out := r.Stdout
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintln(out, FormatCommand(r.exe(), args))
	return err
}

// Run starts curl with args and waits for it to finish.
//
// A non-zero exit status is returned as *ExitError. Nothing is retried here;
// retries are curl's own --retry.
func (r *Runner) Run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, r.exe(), args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	log := r.logger().WithField("exe", r.exe())
	log.WithField("args", len(args)).Debug("starting curl")

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.WithField("status", exitErr.ExitCode()).Debug("curl failed")
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to execute %s: %w", r.exe(), err)
	}

	log.Debug("curl finished")
	return nil
}
