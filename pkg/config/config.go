// Package config loads color override tables for the colorizer.
//
// A config source is either a JSON document on disk or an in-memory mapping,
// shaped as name -> {"code": <int>, ...}. Background variants are keyed with
// a bg_ prefix. Anything malformed fails here, at construction time, so
// rendering never has to deal with a half-built palette.
package config

import (
	"math"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/colordoll/pkg/errors"
)

// Load reads a color override table from a JSON document at path.
func Load(path string) (map[string]int, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load color config from %s", path)
	}
	return parseEntries(k.Raw())
}

// FromMap builds a color override table from an in-memory mapping.
func FromMap(src map[string]interface{}) (map[string]int, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(src, ""), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to read color mapping")
	}
	return parseEntries(k.Raw())
}

// parseEntries validates raw entries and extracts their codes. Extra fields
// beyond "code" are allowed and ignored.
func parseEntries(raw map[string]interface{}) (map[string]int, error) {
	out := make(map[string]int, len(raw))
	for name, value := range raw {
		entry, ok := value.(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrConfigInvalid,
				"invalid color configuration for %q: expected a mapping", name)
		}
		rawCode, ok := entry["code"]
		if !ok {
			return nil, errors.Newf(errors.ErrConfigInvalid,
				"invalid color configuration for %q: missing 'code' field", name)
		}
		code, ok := asCode(rawCode)
		if !ok {
			return nil, errors.Newf(errors.ErrConfigInvalid,
				"invalid color configuration for %q: 'code' must be a non-negative integer", name)
		}
		out[name] = code
	}
	return out, nil
}

func asCode(v interface{}) (int, bool) {
	var code int
	switch n := v.(type) {
	case int:
		code = n
	case int64:
		code = int(n)
	case float64:
		// JSON numbers decode as float64; only integral values are valid codes.
		if n != math.Trunc(n) {
			return 0, false
		}
		code = int(n)
	default:
		return 0, false
	}
	if code < 0 {
		return 0, false
	}
	return code, true
}
