package gdal

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractBandGridRunsTranslate(t *testing.T) {
	useLocalGDAL(t)

	ctx := context.Background()
	tempDir := t.TempDir()
	writeScript(t, filepath.Join(tempDir, "gdal_translate"), "#!/bin/sh\n"+
		"if [ \"$1\" != \"-b\" ] || [ \"$2\" != \"2\" ] || [ \"$3\" != \"-of\" ] || [ \"$4\" != \"AAIGrid\" ]; then\n"+
		"  echo \"bad args\" 1>&2\n"+
		"  exit 3\n"+
		"fi\n"+
		"echo input=$5 > \"$6\"\n")

	prependPath(t, tempDir)

	src := filepath.Join(tempDir, "input.tif")
	dst := filepath.Join(tempDir, "band.asc")
	if err := os.WriteFile(src, []byte("data"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	if err := os.WriteFile(dst, []byte("old"), 0o644); err != nil {
		t.Fatalf("write output: %v", err)
	}

	if err := ExtractBandGrid(ctx, src, 2, dst); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(content), "input="+src) {
		t.Fatalf("unexpected output content: %q", string(content))
	}
}

func TestExtractBandGridReturnsError(t *testing.T) {
	useLocalGDAL(t)

	ctx := context.Background()
	tempDir := t.TempDir()
	writeScript(t, filepath.Join(tempDir, "gdal_translate"), "#!/bin/sh\n"+
		"echo nope 1>&2\n"+
		"exit 2\n")

	prependPath(t, tempDir)

	err := ExtractBandGrid(ctx, "/tmp/input.tif", 1, filepath.Join(tempDir, "band.asc"))
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "gdal_translate") {
		t.Fatalf("expected gdal_translate error, got %v", err)
	}
}

func TestBuildVRTSeparateBands(t *testing.T) {
	useLocalGDAL(t)

	ctx := context.Background()
	tempDir := t.TempDir()
	writeScript(t, filepath.Join(tempDir, "gdalbuildvrt"), "#!/bin/sh\n"+
		"if [ \"$1\" != \"-separate\" ]; then\n"+
		"  echo \"bad args\" 1>&2\n"+
		"  exit 3\n"+
		"fi\n"+
		"out=\"$2\"\n"+
		"shift 2\n"+
		"echo sources=$@ > \"$out\"\n")

	prependPath(t, tempDir)

	dst := filepath.Join(tempDir, "stack.vrt")
	sources := []string{
		filepath.Join(tempDir, "b1.asc"),
		filepath.Join(tempDir, "b2.asc"),
	}

	if err := BuildVRT(ctx, dst, sources, true); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(content), sources[0]+" "+sources[1]) {
		t.Fatalf("unexpected output content: %q", string(content))
	}
}

func TestBuildVRTSingleBand(t *testing.T) {
	useLocalGDAL(t)

	ctx := context.Background()
	tempDir := t.TempDir()
	writeScript(t, filepath.Join(tempDir, "gdalbuildvrt"), "#!/bin/sh\n"+
		"out=\"$1\"\n"+
		"shift\n"+
		"echo sources=$@ > \"$out\"\n")

	prependPath(t, tempDir)

	dst := filepath.Join(tempDir, "single.vrt")
	src := filepath.Join(tempDir, "b1.asc")

	if err := BuildVRT(ctx, dst, []string{src}, false); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(content), "sources="+src) {
		t.Fatalf("unexpected output content: %q", string(content))
	}
}

func TestTranslateByte(t *testing.T) {
	useLocalGDAL(t)

	ctx := context.Background()
	tempDir := t.TempDir()
	writeScript(t, filepath.Join(tempDir, "gdal_translate"), "#!/bin/sh\n"+
		"if [ \"$1\" != \"-ot\" ] || [ \"$2\" != \"Byte\" ]; then\n"+
		"  echo \"bad args\" 1>&2\n"+
		"  exit 3\n"+
		"fi\n"+
		"if [ \"$3\" = \"-a_srs\" ]; then\n"+
		"  echo crs=$4 input=$5 > \"$6\"\n"+
		"else\n"+
		"  echo input=$3 > \"$4\"\n"+
		"fi\n")

	prependPath(t, tempDir)

	src := filepath.Join(tempDir, "stack.vrt")
	dst := filepath.Join(tempDir, "byte.tif")

	if err := TranslateByte(ctx, src, dst, "32630"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(content), "crs=EPSG:32630") {
		t.Fatalf("expected crs in output, got %q", string(content))
	}

	plain := filepath.Join(tempDir, "plain.tif")
	if err := TranslateByte(ctx, src, plain, ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	content, err = os.ReadFile(plain)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.Contains(string(content), "crs=") {
		t.Fatalf("expected no crs in output, got %q", string(content))
	}
}

func TestCompressPassesCreationOption(t *testing.T) {
	useLocalGDAL(t)

	ctx := context.Background()
	tempDir := t.TempDir()
	writeScript(t, filepath.Join(tempDir, "gdal_translate"), "#!/bin/sh\n"+
		"if [ \"$1\" != \"-co\" ] || [ \"$2\" != \"COMPRESS=JPEG\" ]; then\n"+
		"  echo \"bad args\" 1>&2\n"+
		"  exit 3\n"+
		"fi\n"+
		"echo input=$3 > \"$4\"\n")

	prependPath(t, tempDir)

	src := filepath.Join(tempDir, "input.tif")
	dst := filepath.Join(tempDir, "compressed.tif")

	if err := Compress(ctx, src, dst, "JPEG"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(content), "input="+src) {
		t.Fatalf("unexpected output content: %q", string(content))
	}
}

func TestCropExtent(t *testing.T) {
	useLocalGDAL(t)

	ctx := context.Background()
	tempDir := t.TempDir()
	writeScript(t, filepath.Join(tempDir, "gdalwarp"), "#!/bin/sh\n"+
		"if [ \"$1\" != \"-te\" ] || [ \"$6\" != \"-overwrite\" ]; then\n"+
		"  echo \"bad args\" 1>&2\n"+
		"  exit 3\n"+
		"fi\n"+
		"echo extent=$2,$3,$4,$5 input=$7 > \"$8\"\n")

	prependPath(t, tempDir)

	src := filepath.Join(tempDir, "input.tif")
	dst := filepath.Join(tempDir, "crop.tif")

	if err := CropExtent(ctx, src, dst, [4]float64{1.5, 2, 3.25, 4}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(content), "extent=1.5,2,3.25,4") {
		t.Fatalf("unexpected output content: %q", string(content))
	}
}

func TestReproject(t *testing.T) {
	useLocalGDAL(t)

	ctx := context.Background()
	tempDir := t.TempDir()
	writeScript(t, filepath.Join(tempDir, "gdalwarp"), "#!/bin/sh\n"+
		"if [ \"$1\" != \"-t_srs\" ] || [ \"$2\" != \"EPSG:3857\" ] || [ \"$3\" != \"-overwrite\" ]; then\n"+
		"  echo \"bad args\" 1>&2\n"+
		"  exit 3\n"+
		"fi\n"+
		"echo input=$4 > \"$5\"\n")

	prependPath(t, tempDir)

	src := filepath.Join(tempDir, "input.tif")
	dst := filepath.Join(tempDir, "warped.tif")

	if err := Reproject(ctx, src, dst, "3857"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(content), "input="+src) {
		t.Fatalf("unexpected output content: %q", string(content))
	}
}

func TestSplitCRSCode(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{ref: "EPSG:4326", want: "4326"},
		{ref: "epsg:32630", want: "32630"},
		{ref: "4326", want: "4326"},
		{ref: "urn:ogc:def:crs:EPSG::4326", want: "4326"},
	}

	for _, tt := range tests {
		if got := SplitCRSCode(tt.ref); got != tt.want {
			t.Fatalf("SplitCRSCode(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}
