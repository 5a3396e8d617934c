package nmcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Rescan modes accepted by Config.Rescan.
const (
	RescanAuto = "auto"
	RescanYes  = "yes"
	RescanNo   = "no"
)

// Field lists requested from nmcli.
const (
	scanFields   = "SSID,SIGNAL,SECURITY,RATE,BARS"
	activeFields = "SSID,ACTIVE"
)

// Config holds the configuration for nmcli invocations.
type Config struct {
	// Path is the nmcli binary.
	// Default: "nmcli" (searches PATH)
	Path string

	// Interface restricts scans to one wireless device. Empty means all.
	Interface string

	// Rescan is passed as --rescan unless it is "auto".
	// Default: "auto"
	Rescan string

	// Timeout bounds each nmcli call.
	// Default: 15 seconds
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Path:    "nmcli",
		Rescan:  RescanAuto,
		Timeout: 15 * time.Second,
	}
}

// Client runs nmcli via os/exec.
type Client struct {
	config Config
	logger *zap.Logger
}

// NewClient creates a new nmcli client with the given configuration.
func NewClient(config Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		config: config,
		logger: logger,
	}
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// ListAccessPoints returns one SSID:SIGNAL:SECURITY:RATE:BARS line per
// access point reported by nmcli.
func (c *Client) ListAccessPoints(ctx context.Context) ([]string, error) {
	args := c.listArgs(scanFields, c.config.Rescan)
	out, err := c.run(ctx, args)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// ActiveNetworks returns SSID:ACTIVE lines. It never triggers a rescan, so it
// reflects the scan ListAccessPoints just performed.
func (c *Client) ActiveNetworks(ctx context.Context) ([]string, error) {
	args := c.listArgs(activeFields, RescanNo)
	out, err := c.run(ctx, args)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

func (c *Client) listArgs(fields, rescan string) []string {
	args := []string{"-t", "-f", fields, "device", "wifi", "list"}
	if c.config.Interface != "" {
		args = append(args, "ifname", c.config.Interface)
	}
	if rescan != "" && rescan != RescanAuto {
		args = append(args, "--rescan", rescan)
	}
	return args
}

// run executes nmcli with args and returns its stdout.
func (c *Client) run(ctx context.Context, args []string) (string, error) {
	path, err := exec.LookPath(c.config.Path)
	if err != nil {
		return "", &NotFoundError{Path: c.config.Path, Err: err}
	}

	runCtx := ctx
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	startTime := time.Now()
	cmd := exec.CommandContext(runCtx, path, args...)
	cmd.Env = append(cmd.Environ(), "LC_ALL=C")
	cmd.WaitDelay = time.Second

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	err = cmd.Run()

	stdout := stdoutBuf.String()
	stderr := strings.TrimSpace(stderrBuf.String())

	c.logger.Debug("nmcli execution complete",
		zap.Strings("args", args),
		zap.Duration("duration", time.Since(startTime)),
		zap.Int("stdout_size", len(stdout)),
		zap.String("stderr", stderr),
	)

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return "", &TimeoutError{
			Args:    args,
			Timeout: c.config.Timeout.String(),
			Err:     runCtx.Err(),
		}
	}

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", &ExecutionError{
			Args:     args,
			ExitCode: exitCode,
			Stderr:   stderr,
			Err:      err,
		}
	}

	if stderr != "" {
		c.logger.Warn("nmcli succeeded but produced stderr",
			zap.Strings("args", args),
			zap.String("stderr", stderr),
		)
	}

	return stdout, nil
}

// Validate checks that the configured binary exists and runs.
func (c *Client) Validate(ctx context.Context) error {
	if _, err := exec.LookPath(c.config.Path); err != nil {
		return &NotFoundError{Path: c.config.Path, Err: err}
	}
	if _, err := c.run(ctx, []string{"--version"}); err != nil {
		return fmt.Errorf("nmcli is not usable: %w", err)
	}
	return nil
}

// splitLines splits nmcli output into lines, keeping leading and trailing
// spaces since they can be part of an SSID.
func splitLines(out string) []string {
	out = strings.TrimRight(out, "\r\n")
	if out == "" {
		return []string{}
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
