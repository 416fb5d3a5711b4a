package layout

import (
	"fmt"
	"strings"
)

// AllowedKeys are the attribute keys permitted in update operations.
// Frame identifies the target record and is handled separately.
var AllowedKeys = []string{"Anchor", "FrameLevel", "X", "Y", "W", "H"}

// Overrides is a validated update: the target frame name plus the
// attribute values to replace or insert.
type Overrides struct {
	Target string
	Attrs  map[string]Value
}

// ParseOverrides validates raw Key=Value tokens against the allow-list
// and coerces each value with the same rules as the parser. Key matching
// is case-insensitive; keys are normalized to their canonical casing.
// Validation is all-or-nothing: any invalid token fails the whole set
// before a single value is applied.
func ParseOverrides(tokens []string) (Overrides, error) {
	overrides := Overrides{Attrs: make(map[string]Value)}

	for _, token := range tokens {
		key, rest, found := strings.Cut(token, "=")
		if !found {
			return Overrides{}, fmt.Errorf("%w: %s", ErrInvalidOverride, token)
		}

		key = strings.TrimSpace(key)

		if strings.EqualFold(key, FrameKey) {
			overrides.Target = strings.TrimSpace(rest)

			continue
		}

		canonical, ok := canonicalKey(key)
		if !ok {
			return Overrides{}, fmt.Errorf("%w: %s", ErrInvalidKey, key)
		}

		overrides.Attrs[canonical] = Coerce(rest)
	}

	if overrides.Target == "" {
		return Overrides{}, ErrFrameTargetRequired
	}

	return overrides, nil
}

func canonicalKey(key string) (string, bool) {
	for _, allowed := range AllowedKeys {
		if strings.EqualFold(key, allowed) {
			return allowed, true
		}
	}

	return "", false
}

// Apply writes the overrides into the matched frame, replacing or
// inserting each key. Lookup is exact and case-sensitive; when several
// frames share the target name only the first match is updated. Frames
// other than the match are untouched. Returns ErrFrameNotFound (and
// mutates nothing) when no frame matches.
func (f *File) Apply(overrides Overrides) error {
	for _, frame := range f.Frames {
		if frame.Name != overrides.Target {
			continue
		}

		for key, value := range overrides.Attrs {
			frame.Attrs[key] = value
		}

		frame.dirty = true

		return nil
	}

	return fmt.Errorf("%w: %s", ErrFrameNotFound, overrides.Target)
}
