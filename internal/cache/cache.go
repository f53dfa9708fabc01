// Package cache persists compiled automaton.DFA tables to disk across
// process runs, keyed by a blake2b fingerprint of the rule set that
// produced them. pkgs/lexer already memoizes a Group's compiled DFA for
// one process's lifetime (see Group.ensureCompiled); this package extends
// that memoization across runs, the same "keyed fingerprint" idea
// opal-lang-opal/runtime/scrubber/scrubber.go uses for redaction keys,
// applied here to a cache key instead. Encoding follows
// opal-lang-opal/core/planfmt/canonical.go's use of fxamacker/cbor for a
// compiled artifact.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/aledsdavies/blockexpr/pkgs/automaton"
)

// Key fingerprints a group's rule set. Callers derive seed from whatever
// uniquely identifies the rule list (its declared patterns' source form);
// pkgs/pattern has no string-rendering of a compiled Pattern, so a seed
// such as the group name plus declaration count is the practical choice.
// pkgs/parser does not call this package; its groups compile in memory
// only.
func Key(seed string) string {
	sum := blake2b.Sum256([]byte(seed))
	return fmt.Sprintf("%x", sum)
}

// Store is an on-disk directory of CBOR-encoded DFA tables, one file per
// Key.
type Store struct {
	dir string
}

// Open returns a Store rooted at dir, creating it if necessary.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: creating %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".cbor")
}

// Load returns the cached DFA for key, or ok=false if nothing is cached
// yet (a cache miss is not an error: the caller compiles and Puts).
func (s *Store) Load(key string) (dfa *automaton.DFA, ok bool, err error) {
	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: reading %s: %w", key, err)
	}
	var d automaton.DFA
	if err := cbor.Unmarshal(raw, &d); err != nil {
		return nil, false, fmt.Errorf("cache: decoding %s: %w", key, err)
	}
	return &d, true, nil
}

// Put writes dfa to the store under key, overwriting any existing entry.
func (s *Store) Put(key string, dfa *automaton.DFA) error {
	raw, err := cbor.Marshal(dfa)
	if err != nil {
		return fmt.Errorf("cache: encoding %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), raw, 0o644); err != nil {
		return fmt.Errorf("cache: writing %s: %w", key, err)
	}
	return nil
}
