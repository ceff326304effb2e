package imagery

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReproject(t *testing.T) {
	ctx := context.Background()
	tempDir := t.TempDir()
	writeScript(t, filepath.Join(tempDir, "gdalwarp"), `#!/bin/sh
if [ "$1" != "-t_srs" ] || [ "$3" != "-overwrite" ]; then
	echo "unexpected args: $@" >&2
	exit 1
fi
echo "crs=$2 input=$4" > "$5"
`)
	prependPath(t, tempDir)

	dst := filepath.Join(t.TempDir(), "warped.tif")
	if err := Reproject(ctx, "/tmp/scene.tif", dst, "3857"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	contents, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if got := strings.TrimSpace(string(contents)); got != "crs=EPSG:3857 input=/tmp/scene.tif" {
		t.Fatalf("unexpected gdalwarp invocation: %q", got)
	}
}

func TestReprojectFailure(t *testing.T) {
	ctx := context.Background()
	tempDir := t.TempDir()
	writeScript(t, filepath.Join(tempDir, "gdalwarp"), `#!/bin/sh
echo "cannot open source" >&2
exit 1
`)
	prependPath(t, tempDir)

	err := Reproject(ctx, "/tmp/scene.tif", "/tmp/out.tif", "3857")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "reproject to EPSG:3857") {
		t.Fatalf("expected wrapped reproject error, got %v", err)
	}
}
