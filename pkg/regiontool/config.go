// Package regiontool implements the ph-region command.
package regiontool

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Config contains the configuration for ph-region. The env struct tag contains
// the environment variable name and the default value if missing, or empty (if
// not ?=). All string arrays are comma-separated.
type Config struct {
	// The minimum log level (e.g., trace, debug, info, warn, error, fatal).
	//
	// Inputs which don't match any region are logged at debug.
	LogLevel zerolog.Level `env:"PHREGION_LOG_LEVEL=info"`

	// Whether to use pretty logs.
	LogPretty bool `env:"PHREGION_LOG_PRETTY=true"`

	// The output format (text, json).
	Output string `env:"PHREGION_OUTPUT=text"`

	// Whether to indent json output.
	OutputIndent bool `env:"PHREGION_OUTPUT_INDENT=true"`

	// The path to the IP2Location database, which should contain at least the
	// country field, and either the region or latlon fields. If not provided,
	// IP lookups are not available.
	IP2Location string `env:"PHREGION_IP2LOCATION"`

	// Region mapping overrides for IP lookups. Comma-separated list of
	// prefix=region, where region is anything which can be parsed as a region
	// (e.g., 10.0.0.0/8=ncr,192.0.2.1=Central Visayas).
	RegionMapOverride []string `env:"PHREGION_REGION_MAP_OVERRIDE"`
}

// UnmarshalEnv unmarshals an array of environment variables into c, setting
// default values as appropriate. If incremental is true, default values will
// not be set for missing env vars, but only for empty ones.
func (c *Config) UnmarshalEnv(es []string, incremental bool) error {
	em := map[string]string{}
	for _, e := range es {
		if strings.HasPrefix(e, "PHREGION_") {
			if k, v, ok := strings.Cut(e, "="); ok {
				em[k] = v
			}
		}
	}
	cv := reflect.ValueOf(c).Elem()
	for _, ctf := range reflect.VisibleFields(cv.Type()) {
		env, ok := ctf.Tag.Lookup("env")
		if !ok {
			continue
		}

		// get the default value, and check if it can be explicitly set to an
		// empty value
		var unsettable bool
		key, val, _ := strings.Cut(env, "=")
		if strings.HasSuffix(key, "?") {
			key = strings.TrimSuffix(key, "?")
			unsettable = true
		}
		if v, exists := em[key]; exists {
			if unsettable || v != "" {
				val = v
			}
			delete(em, key)
		} else if incremental {
			continue
		}

		switch cvf := cv.FieldByName(ctf.Name); cvf.Interface().(type) {
		case string:
			cvf.SetString(val)
		case bool:
			if val == "" {
				cvf.SetBool(false)
			} else if v, err := strconv.ParseBool(val); err == nil {
				cvf.SetBool(v)
			} else {
				return fmt.Errorf("env %s (%T): parse %q: %w", key, cvf.Interface(), val, err)
			}
		case []string:
			if val == "" {
				cvf.Set(reflect.ValueOf([]string{}))
			} else {
				cvf.Set(reflect.ValueOf(strings.Split(val, ",")))
			}
		case zerolog.Level:
			if v, err := zerolog.ParseLevel(val); err == nil {
				cvf.Set(reflect.ValueOf(v))
			} else {
				return fmt.Errorf("env %s (%T): parse %q: %w", key, cvf.Interface(), val, err)
			}
		default:
			return fmt.Errorf("unhandled type %T (%s)", cvf.Interface(), env)
		}
	}
	for key, val := range em {
		if val != "" {
			return fmt.Errorf("unknown environment variable %q", key)
		}
	}
	switch c.Output {
	case "", "text", "json":
	default:
		return fmt.Errorf("env PHREGION_OUTPUT: unknown output format %q", c.Output)
	}
	return nil
}
