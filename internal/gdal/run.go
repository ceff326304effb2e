package gdal

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"satkit/internal/docker"
)

// Mode selects how GDAL binaries are executed.
type Mode string

const (
	// ModeAuto runs local binaries when gdalinfo is on PATH and falls
	// back to Docker otherwise.
	ModeAuto Mode = "auto"
	// ModeLocal always runs GDAL binaries from PATH.
	ModeLocal Mode = "local"
	// ModeDocker always runs GDAL inside a container.
	ModeDocker Mode = "docker"
)

// ModeEnvVar overrides the configured execution mode when set.
const ModeEnvVar = "SATKIT_GDAL_MODE"

// Options configures GDAL execution.
type Options struct {
	Mode        Mode
	DockerImage string
	WorkDir     string
}

var (
	mu         sync.Mutex
	configured = ModeAuto
	client     *docker.Client
)

// Initialize resolves the execution mode and, when Docker is selected,
// verifies the daemon is reachable. Call Shutdown when done.
func Initialize(ctx context.Context, opts Options) error {
	resolved := opts.Mode
	if resolved == "" {
		resolved = ModeAuto
	}
	if resolved == ModeAuto {
		if _, err := exec.LookPath("gdalinfo"); err == nil {
			resolved = ModeLocal
		} else {
			resolved = ModeDocker
		}
	}

	mu.Lock()
	defer mu.Unlock()

	configured = resolved
	if resolved != ModeDocker {
		return nil
	}

	c, err := docker.New(ctx, opts.DockerImage, opts.WorkDir)
	if err != nil {
		return fmt.Errorf("initialize docker runner: %w", err)
	}
	client = c

	return nil
}

// Shutdown releases the Docker runner if one was created.
func Shutdown() {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		client.Close()
		client = nil
	}
	configured = ModeAuto
}

// GetClient returns the Docker runner, or nil when running locally.
func GetClient() *docker.Client {
	mu.Lock()
	defer mu.Unlock()
	return client
}

func activeMode() Mode {
	if env := strings.ToLower(strings.TrimSpace(os.Getenv(ModeEnvVar))); env != "" {
		return Mode(env)
	}

	mu.Lock()
	defer mu.Unlock()
	return configured
}

// Run executes a GDAL command, locally or in a Docker container depending
// on the active mode. It captures stdout/stderr separately and returns a
// detailed error if the command fails.
func Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error) {
	mode := activeMode()

	if mode == ModeLocal {
		return runLocal(ctx, name, args...)
	}

	client := GetClient()
	if client == nil {
		if mode == ModeDocker {
			return "", "", fmt.Errorf("docker client not initialized - call Initialize() first")
		}
		return runLocal(ctx, name, args...)
	}

	return client.Run(ctx, name, args...)
}

func runLocal(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdoutBuf bytes.Buffer
	var stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()
	if err != nil {
		cmdStr := formatCommand(name, args)
		detail := strings.TrimSpace(stderr)
		if detail != "" {
			return stdout, stderr, fmt.Errorf("command %s failed: %w: %s", cmdStr, err, detail)
		}
		return stdout, stderr, fmt.Errorf("command %s failed: %w", cmdStr, err)
	}

	return stdout, stderr, nil
}

func formatCommand(name string, args []string) string {
	parts := []string{quoteArg(name)}
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" || strings.ContainsAny(arg, " \t\n\r\"\\") {
		return strconv.Quote(arg)
	}
	return arg
}
