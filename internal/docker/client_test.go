package docker

import (
	"context"
	"os"
	"os/exec"
	"testing"
)

func TestNew(t *testing.T) {
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed")
	}

	ctx := context.Background()
	client, err := New(ctx, "", "")
	if err != nil {
		t.Skipf("docker daemon not reachable: %v", err)
	}
	defer client.Close()

	if client.image != DefaultImage {
		t.Fatalf("expected default image, got %q", client.image)
	}

	cwd, _ := os.Getwd()
	if client.workDir != cwd {
		t.Fatalf("expected workdir %q, got %q", cwd, client.workDir)
	}
}

func TestConvertPath(t *testing.T) {
	cwd, _ := os.Getwd()
	client := &Client{image: DefaultImage, workDir: cwd}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "relative path",
			input:    "test.txt",
			expected: "/work/test.txt",
		},
		{
			name:     "relative path with subdirs",
			input:    "subdir/test.txt",
			expected: "/work/subdir/test.txt",
		},
		{
			name:     "absolute path within workdir",
			input:    cwd + "/test.txt",
			expected: "/work/test.txt",
		},
		{
			name:     "absolute path outside workdir",
			input:    "/elsewhere/test.tif",
			expected: "/work/test.tif",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := client.convertPath(tt.input)
			if result != tt.expected {
				t.Errorf("convertPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestShouldConvertPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "flag", input: "-overwrite", expected: false},
		{name: "bare word", input: "Byte", expected: false},
		{name: "empty", input: "", expected: false},
		{name: "contains separator", input: "data/input.tif", expected: true},
		{name: "relative prefix", input: "./input.tif", expected: true},
		{name: "gis extension", input: "input.tif", expected: true},
		{name: "ascii grid extension", input: "band.asc", expected: true},
		{name: "vrt extension", input: "stack.vrt", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldConvertPath(tt.input); got != tt.expected {
				t.Errorf("shouldConvertPath(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestQuoteArg(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple arg", input: "test", expected: "test"},
		{name: "arg with space", input: "hello world", expected: `"hello world"`},
		{name: "empty string", input: "", expected: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quoteArg(tt.input); got != tt.expected {
				t.Errorf("quoteArg(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
