package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/swiftly/pkg/config"
)

// envVarPrefix is the prefix for all swiftly environment variables.
const envVarPrefix = "SWIFTLY_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeArgs
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FORMAT":              {field: "format", typ: envTypeString, help: "Output format: stylish, unix, or json"},
	"COLOR":               {field: "color", typ: envTypeString, help: "Color output: auto, always, or never"},
	"LOG_LEVEL":           {field: "log_level", typ: envTypeString, help: "Log level: debug, info, warn, or error"},
	"SWIFTLINT_COMMAND":   {field: "swiftlint.command", typ: envTypeString, help: "swiftlint executable"},
	"SWIFTFORMAT_COMMAND": {field: "swiftformat.command", typ: envTypeString, help: "swiftformat executable"},
	"SWIFTLINT_ARGS":      {field: "swiftlint.args", typ: envTypeArgs, help: "Extra swiftlint lint arguments (space-separated)"},
	"SWIFTFORMAT_ARGS":    {field: "swiftformat.args", typ: envTypeArgs, help: "Extra swiftformat lint arguments (space-separated)"},
	"FIX":                 {field: "fix", typ: envTypeBool, help: "Run the fix pass first: true or false"},
	"STATS":               {field: "stats", typ: envTypeBool, help: "Append a per-rule breakdown: true or false"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with SWIFTLY_ (e.g., SWIFTLY_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeArgs:
		return setArgsField(cfg, mapping.field, strings.Fields(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = value
	case "log_level":
		cfg.LogLevel = value
	case "swiftlint.command":
		cfg.SwiftLint.Command = value
	case "swiftformat.command":
		cfg.SwiftFormat.Command = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "fix":
		cfg.Fix = value
	case "stats":
		cfg.Stats = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setArgsField sets an argument list on the config by field path.
func setArgsField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "swiftlint.args":
		cfg.SwiftLint.Args = value
	case "swiftformat.args":
		cfg.SwiftFormat.Args = value
	default:
		return fmt.Errorf("unknown args field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.help
	}
	return vars
}
