package gdal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Grid represents an ESRI ASCII grid (AAIGrid).
type Grid struct {
	Width     int
	Height    int
	XLLCorner float64
	YLLCorner float64
	CellSize  float64
	NoData    float64
	Data      []float64
}

// ParseAAIGrid reads an ESRI ASCII grid from r.
func ParseAAIGrid(r io.Reader) (Grid, error) {
	reader := bufio.NewReader(r)
	fields, leftover, err := parseHeaderFields(reader)
	if err != nil {
		return Grid{}, err
	}

	width, height, err := parseGridDimensions(fields)
	if err != nil {
		return Grid{}, err
	}

	xll, err := parseHeaderFloat(fields, "xllcorner")
	if err != nil {
		return Grid{}, err
	}
	yll, err := parseHeaderFloat(fields, "yllcorner")
	if err != nil {
		return Grid{}, err
	}
	cellSize, err := parseHeaderFloat(fields, "cellsize")
	if err != nil {
		return Grid{}, err
	}

	// nodata_value is optional, default to -9999 if not present
	nodata, err := parseNoDataValue(fields)
	if err != nil {
		return Grid{}, err
	}

	expected := width * height
	data, err := parseGridData(reader, leftover, expected, nodata)
	if err != nil {
		return Grid{}, err
	}

	err = validateNoTrailingData(reader)
	if err != nil {
		return Grid{}, err
	}

	return Grid{
		Width:     width,
		Height:    height,
		XLLCorner: xll,
		YLLCorner: yll,
		CellSize:  cellSize,
		NoData:    nodata,
		Data:      data,
	}, nil
}

// WriteAAIGrid writes grid to w in ESRI ASCII format, one raster row per
// line.
func WriteAAIGrid(w io.Writer, grid Grid) error {
	if len(grid.Data) != grid.Width*grid.Height {
		return fmt.Errorf("grid data length %d does not match %dx%d", len(grid.Data), grid.Width, grid.Height)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ncols %d\n", grid.Width)
	fmt.Fprintf(bw, "nrows %d\n", grid.Height)
	fmt.Fprintf(bw, "xllcorner %s\n", formatGridFloat(grid.XLLCorner))
	fmt.Fprintf(bw, "yllcorner %s\n", formatGridFloat(grid.YLLCorner))
	fmt.Fprintf(bw, "cellsize %s\n", formatGridFloat(grid.CellSize))
	fmt.Fprintf(bw, "NODATA_value %s\n", formatGridFloat(grid.NoData))

	for row := 0; row < grid.Height; row++ {
		start := row * grid.Width
		for col := 0; col < grid.Width; col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(formatGridFloat(grid.Data[start+col]))
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write grid: %w", err)
	}

	return nil
}

func formatGridFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseHeaderFields scans up to 6 key/value header pairs. The first token
// that does not look like a header key starts the data section and is
// handed back to the caller.
func parseHeaderFields(reader *bufio.Reader) (map[string]string, string, error) {
	fields := make(map[string]string, 6)
	for len(fields) < 6 {
		key, err := scanHeaderToken(reader, "key")
		if err != nil {
			return nil, "", err
		}
		if !isHeaderKey(key) {
			return fields, key, nil
		}

		value, err := scanHeaderToken(reader, "value")
		if err != nil {
			return nil, "", err
		}

		fields[strings.ToLower(key)] = value
	}

	return fields, "", nil
}

func isHeaderKey(token string) bool {
	if token == "" {
		return false
	}
	r := rune(token[0])
	return unicode.IsLetter(r) || r == '_'
}

func scanHeaderToken(reader *bufio.Reader, tokenName string) (string, error) {
	var token string
	_, err := fmt.Fscan(reader, &token)
	if err == nil {
		return token, nil
	}
	if err == io.EOF {
		return "", fmt.Errorf("parse header: unexpected EOF")
	}

	return "", fmt.Errorf("parse header %s: %w", tokenName, err)
}

func parseNoDataValue(fields map[string]string) (float64, error) {
	nodata := -9999.0
	value, ok := fields["nodata_value"]
	if !ok {
		return nodata, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse header: nodata_value=%q: %w", value, err)
	}

	return parsed, nil
}

func parseGridData(reader *bufio.Reader, leftover string, expected int, nodata float64) ([]float64, error) {
	data := make([]float64, 0, expected)
	if leftover != "" {
		if expected == 0 {
			return nil, fmt.Errorf("parse data: unexpected trailing value %q", leftover)
		}
		value, err := strconv.ParseFloat(leftover, 64)
		if err != nil {
			return nil, fmt.Errorf("parse data value: %q: %w", leftover, err)
		}
		data = append(data, value)
	}

	for len(data) < expected {
		value, err := scanDataValue(reader)
		if err == nil {
			data = append(data, value)
			continue
		}

		if err != io.EOF {
			return nil, fmt.Errorf("parse data value: %w", err)
		}

		if len(data) < (expected*99)/100 {
			return nil, fmt.Errorf("parse data: expected %d values, got %d", expected, len(data))
		}

		break
	}

	if len(data) == expected {
		return data, nil
	}

	missing := expected - len(data)
	for i := 0; i < missing; i++ {
		data = append(data, nodata)
	}

	return data, nil
}

func scanDataValue(reader *bufio.Reader) (float64, error) {
	var value float64
	_, err := fmt.Fscan(reader, &value)
	if err != nil {
		return 0, err
	}

	return value, nil
}

func validateNoTrailingData(reader *bufio.Reader) error {
	var extra string
	_, err := fmt.Fscan(reader, &extra)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("parse data: %w", err)
	}

	return fmt.Errorf("parse data: unexpected trailing value %q", extra)
}

func parseGridDimensions(fields map[string]string) (int, int, error) {
	width, err := parseHeaderInt(fields, "ncols")
	if err != nil {
		return 0, 0, err
	}

	height, err := parseHeaderInt(fields, "nrows")
	if err != nil {
		return 0, 0, err
	}

	return width, height, nil
}

func parseHeaderInt(fields map[string]string, key string) (int, error) {
	value, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("parse header: missing %s", key)
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse header: %s=%q: %w", key, value, err)
	}
	return parsed, nil
}

func parseHeaderFloat(fields map[string]string, key string) (float64, error) {
	value, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("parse header: missing %s", key)
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse header: %s=%q: %w", key, value, err)
	}
	return parsed, nil
}
