package wh40k

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ScopeKind says how many models a wargear option applies to
type ScopeKind string

// Scope kinds
const (
	ScopeAll   ScopeKind = "all"
	ScopeOne   ScopeKind = "one"
	ScopeCount ScopeKind = "count"
)

// ModelScope is descriptive metadata on a wargear option. On the wire it is
// either the string "all", the string "one" or a model count.
type ModelScope struct {
	Kind  ScopeKind
	Count int
}

// ScopeUpTo returns a scope covering up to n models
func ScopeUpTo(n int) ModelScope {
	return ModelScope{Kind: ScopeCount, Count: n}
}

// Label renders the scope for display
func (s ModelScope) Label() string {
	switch s.Kind {
	case ScopeCount:
		return fmt.Sprintf("up to %d models", s.Count)
	case ScopeOne:
		return "1 model"
	default:
		return "all models"
	}
}

// MarshalJSON implements json.Marshaler
func (s ModelScope) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case ScopeCount:
		return []byte(strconv.Itoa(s.Count)), nil
	case ScopeOne:
		return json.Marshal(string(ScopeOne))
	default:
		return json.Marshal(string(ScopeAll))
	}
}

// UnmarshalJSON implements json.Unmarshaler
func (s *ModelScope) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n < 1 {
			return fmt.Errorf("model scope count must be positive, got %d", n)
		}
		*s = ScopeUpTo(n)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("model scope must be \"all\", \"one\" or a number: %w", err)
	}

	switch ScopeKind(str) {
	case ScopeAll, "":
		*s = ModelScope{Kind: ScopeAll}
	case ScopeOne:
		*s = ModelScope{Kind: ScopeOne}
	default:
		return fmt.Errorf("unknown model scope %q", str)
	}
	return nil
}
