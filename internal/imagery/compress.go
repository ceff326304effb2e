package imagery

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"satkit/internal/gdal"
)

// CompressReport summarizes a compression run.
type CompressReport struct {
	Method      string
	InitialSize int64
	FinalSize   int64
	Ratio       float64
}

// Compress rewrites src as a compressed GeoTIFF at dst. When src and dst
// are the same path the compressed copy is staged in a scratch directory
// and swapped in afterwards.
func Compress(ctx context.Context, src, dst, method string) (*CompressReport, error) {
	initial, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	inPlace := src == dst
	target := dst
	if inPlace {
		dir, err := workDir(dst, "compress|"+src)
		if err != nil {
			return nil, err
		}
		defer os.RemoveAll(dir)
		target = filepath.Join(dir, filepath.Base(dst))
	}

	if err := gdal.Compress(ctx, src, target, method); err != nil {
		return nil, err
	}
	if inPlace {
		if err := os.Rename(target, dst); err != nil {
			return nil, fmt.Errorf("replace input: %w", err)
		}
	}

	final, err := os.Stat(dst)
	if err != nil {
		return nil, fmt.Errorf("stat output: %w", err)
	}

	return &CompressReport{
		Method:      method,
		InitialSize: initial.Size(),
		FinalSize:   final.Size(),
		Ratio:       math.RoundToEven(10000*float64(final.Size())/float64(initial.Size())) / 100,
	}, nil
}
