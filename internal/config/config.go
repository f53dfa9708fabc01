// Package config decodes and validates the contents of a .blockexpr.json
// document describing invalid-suffix breaker and unicode-escape width
// overrides. It does not read files, and pkgs/parser does not consult it:
// the parser always uses its built-in identBreaker set and four-character
// escape bound. Validation follows the cache-aside shape
// opal-lang-opal/core/types/validation.go's Validator/validatorCache uses:
// compile the schema once per process and reuse the compiled
// *jsonschema.Schema across loads.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config is the decoded, validated shape of .blockexpr.json. Every field
// is optional; a missing file behaves exactly like Default().
type Config struct {
	// IdentBreakers names a replacement for the set of characters that end
	// an identifier's invalid-suffix check (identBreaker in pkgs/parser,
	// which does not read this field). Empty means "use the built-in set".
	IdentBreakers string `json:"identBreakers,omitempty"`

	// MaxEscapeWidth bounds how many characters a \u escape may consume
	// (the built-in grammar allows zero to four). Zero means "use the
	// built-in bound".
	MaxEscapeWidth int `json:"maxEscapeWidth,omitempty"`
}

// Default returns the configuration used when no .blockexpr.json is
// present or a field is left unset.
func Default() Config {
	return Config{MaxEscapeWidth: 4}
}

const schemaSource = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"identBreakers": {"type": "string"},
		"maxEscapeWidth": {"type": "integer", "minimum": 0, "maximum": 4}
	}
}`

var (
	validatorOnce sync.Once
	validator     *jsonschema.Schema
	validatorErr  error
)

// getValidator compiles schemaSource exactly once per process and reuses
// the result, the same cache-aside shape the teacher's Validator.cache
// gives a per-schema compiled validator instead of recompiling on every
// call.
func getValidator() (*jsonschema.Schema, error) {
	validatorOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("blockexpr://config.json", bytes.NewReader([]byte(schemaSource))); err != nil {
			validatorErr = fmt.Errorf("config: compiling schema: %w", err)
			return
		}
		validator, validatorErr = compiler.Compile("blockexpr://config.json")
	})
	return validator, validatorErr
}

// Load decodes and validates raw as a .blockexpr.json document, returning
// Default() fields merged with whatever raw overrides.
func Load(raw []byte) (Config, error) {
	schema, err := getValidator()
	if err != nil {
		return Config{}, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("config: invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	if cfg.MaxEscapeWidth == 0 {
		cfg.MaxEscapeWidth = 4
	}
	return cfg, nil
}
