// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command and waits for it to exit.
// The environment is the process environment with cmd.Env applied on top.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command) error {
	if cmd.Name == "" {
		return nil
	}

	cmdEnv := resolveEnvironment(os.Environ(), cmd.Env)

	// Resolve the executable through the PATH of the child environment.
	executable := cmd.Name
	if !filepath.IsAbs(cmd.Name) {
		if lp, err := lookPath(cmd.Name, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // configured command
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Name
	}
	c.Dir = cmd.Dir
	c.Env = cmdEnv

	stdoutLog := &logWriter{logger: e.logger, level: domain.LogLevelInfo}
	stderrLog := &logWriter{logger: e.logger, level: domain.LogLevelWarn}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	var stdout, stderr io.Writer = stdoutLog, stderrLog
	if v, ok := ports.VertexFromContext(ctx); ok {
		stdout = io.MultiWriter(stdoutLog, v.Stdout())
		stderr = io.MultiWriter(stderrLog, v.Stderr())
	}
	c.Stdout = stdout
	c.Stderr = stderr

	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		err = zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		err = zerr.With(err, "command", strings.Join(cmd.Argv(), " "))
		return errors.Join(domain.ErrProcess, err)
	}

	return nil
}

// logWriter forwards complete lines of child output to the logger.
type logWriter struct {
	logger ports.Logger
	level  domain.LogLevel
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing partial line.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}

	if w.level == domain.LogLevelInfo {
		w.logger.Info(msg)
	} else {
		w.logger.Warn(msg)
	}
}

// resolveEnvironment applies the overrides on top of the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
