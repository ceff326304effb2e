// Package postgis parses the geometry text PostGIS emits for box and
// point values and converts the results to GeoJSON feature collections.
package postgis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ErrMalformedGeometry reports geometry text that does not match the
// expected PostGIS shape.
var ErrMalformedGeometry = errors.New("postgis: malformed geometry text")

// ParseBox extracts the two corner coordinates from a PostGIS box string
// such as "BOX(-1.5 50,1.5 52.5)". The first pair becomes Min and the
// second Max as written, without reordering.
func ParseBox(text string) (orb.Bound, error) {
	body := extractBody(text)

	pairs := strings.Split(body, ",")
	if len(pairs) != 2 {
		return orb.Bound{}, fmt.Errorf("box has %d coordinate pairs, want 2: %w", len(pairs), ErrMalformedGeometry)
	}

	min, err := parsePair(pairs[0])
	if err != nil {
		return orb.Bound{}, err
	}

	max, err := parsePair(pairs[1])
	if err != nil {
		return orb.Bound{}, err
	}

	return orb.Bound{Min: min, Max: max}, nil
}

// ParsePoint extracts the coordinate from a PostGIS point string such as
// "POINT(-0.1278 51.5074)".
func ParsePoint(text string) (orb.Point, error) {
	return parsePair(extractBody(text))
}

// ParseGeometry dispatches on the leading geometry tag and returns either
// an orb.Bound or an orb.Point.
func ParseGeometry(text string) (orb.Geometry, error) {
	upper := strings.ToUpper(strings.TrimSpace(text))

	switch {
	case strings.HasPrefix(upper, "BOX"):
		return ParseBox(text)
	case strings.HasPrefix(upper, "POINT"):
		return ParsePoint(text)
	default:
		return nil, fmt.Errorf("unrecognized geometry tag in %q: %w", text, ErrMalformedGeometry)
	}
}

// extractBody returns the coordinate text after the opening parenthesis,
// stripped of closing parentheses and surrounding whitespace.
func extractBody(text string) string {
	if i := strings.LastIndex(text, "("); i >= 0 {
		text = text[i+1:]
	}
	return strings.TrimSpace(strings.ReplaceAll(text, ")", ""))
}

// parsePair parses a single space-separated "lng lat" pair.
func parsePair(raw string) (orb.Point, error) {
	tokens := strings.Split(strings.TrimSpace(raw), " ")
	if len(tokens) != 2 {
		return orb.Point{}, fmt.Errorf("coordinate pair %q has %d fields, want 2: %w", strings.TrimSpace(raw), len(tokens), ErrMalformedGeometry)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(tokens[0]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("coordinate %q: %w", tokens[0], ErrMalformedGeometry)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(tokens[1]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("coordinate %q: %w", tokens[1], ErrMalformedGeometry)
	}

	return orb.Point{lng, lat}, nil
}
