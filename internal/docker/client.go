// Package docker runs GDAL binaries inside a container via the docker
// CLI, mapping host paths into the container mount.
package docker

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// DefaultImage is the GDAL image used when none is configured.
	DefaultImage = "ghcr.io/osgeo/gdal:latest"
	// ContainerWorkDir is the working directory inside the container.
	ContainerWorkDir = "/work"
)

// Client executes GDAL commands with docker run.
type Client struct {
	image   string
	workDir string
}

// New verifies the Docker daemon is reachable and returns a client that
// mounts workDir at the container working directory. An empty image
// selects DefaultImage, an empty workDir the current directory.
func New(ctx context.Context, image, workDir string) (*Client, error) {
	cmd := exec.CommandContext(ctx, "docker", "ps")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("docker not available: %w", err)
	}

	if image == "" {
		image = DefaultImage
	}
	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = cwd
	}

	return &Client{image: image, workDir: workDir}, nil
}

// Close is a no-op for the CLI-based client.
func (c *Client) Close() error {
	return nil
}

// Run executes a GDAL command in a throwaway container, capturing stdout
// and stderr separately.
func (c *Client) Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error) {
	if err := c.ensureImage(ctx); err != nil {
		return "", "", fmt.Errorf("ensure image: %w", err)
	}

	// Host paths have to be rewritten to their container equivalents.
	// Flags and non-path arguments pass through untouched.
	convertedArgs := make([]string, len(args))
	for i, arg := range args {
		convertedArgs[i] = c.convertArgForDocker(arg)
	}

	dockerArgs := []string{
		"run",
		"--rm",
		"-v", fmt.Sprintf("%s:%s", c.workDir, ContainerWorkDir),
		"-w", ContainerWorkDir,
		c.image,
		name,
	}
	dockerArgs = append(dockerArgs, convertedArgs...)

	cmd := exec.CommandContext(ctx, "docker", dockerArgs...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if err == nil {
		return stdout, stderr, nil
	}

	cmdStr := formatCommand(name, args)
	return stdout, stderr, formatDockerCommandError(cmdStr, err, stderr)
}

func (c *Client) convertArgForDocker(arg string) string {
	if strings.HasPrefix(arg, "-") {
		return arg
	}
	if !shouldConvertPath(arg) {
		return arg
	}

	return c.convertPath(arg)
}

// convertPath maps a host path onto the container mount. Paths under the
// work directory keep their relative layout; anything outside collapses
// to its basename.
func (c *Client) convertPath(filePath string) string {
	if !filepath.IsAbs(filePath) {
		return filepath.Join(ContainerWorkDir, filePath)
	}

	relPath, err := filepath.Rel(c.workDir, filePath)
	if err == nil && !strings.HasPrefix(relPath, "..") {
		return filepath.Join(ContainerWorkDir, relPath)
	}

	return filepath.Join(ContainerWorkDir, filepath.Base(filePath))
}

// ensureImage pulls the configured image if it is not available locally.
func (c *Client) ensureImage(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "docker", "inspect", c.image)
	if err := cmd.Run(); err == nil {
		return nil
	}

	cmd = exec.CommandContext(ctx, "docker", "pull", c.image)
	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	if err == nil {
		return nil
	}

	return formatDockerPullError(err, stderrBuf.String())
}

func formatDockerCommandError(command string, commandErr error, stderr string) error {
	detail := strings.TrimSpace(stderr)
	if detail == "" {
		return fmt.Errorf("command %s failed: %w", command, commandErr)
	}

	return fmt.Errorf("command %s failed: %s", command, detail)
}

func formatDockerPullError(commandErr error, stderr string) error {
	detail := strings.TrimSpace(stderr)
	if detail == "" {
		return fmt.Errorf("pull image: %w", commandErr)
	}

	return fmt.Errorf("pull image: %s", detail)
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

// shouldConvertPath reports whether an argument looks like a file path.
func shouldConvertPath(arg string) bool {
	if arg == "" {
		return false
	}

	if strings.ContainsAny(arg, "/\\") {
		return true
	}

	if strings.HasPrefix(arg, ".") || strings.HasPrefix(arg, "~") {
		return true
	}

	lowerArg := strings.ToLower(arg)
	commonGISExts := ".tif.tiff.tif.zip.asc.grd.hdr.jp2.j2k.img.hdf.h5.nc.netcdf.vrt.xml.geojson.json.shp.shx.dbf.gml.gpkg.las.laz"
	for _, ext := range strings.Split(commonGISExts, ".")[1:] {
		if strings.HasSuffix(lowerArg, "."+ext) {
			return true
		}
	}

	return false
}
