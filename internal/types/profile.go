package types

// ProfileKind distinguishes what the extraction service produced.
type ProfileKind string

// Profile kinds
const (
	// ProfileSkills is a deduplicated, lower-cased skill set.
	ProfileSkills ProfileKind = "skills"
	// ProfileRoles is an ordered role list, best match first.
	ProfileRoles ProfileKind = "roles"
)

// Profile is the output of the extraction service: either a skill set or an
// ordered role list, depending on the pipeline mode.
type Profile struct {
	Kind ProfileKind `json:"kind"`
	// Terms holds skill tokens (unordered set semantics, stored sorted) or
	// role labels (ordered, best first, at most three).
	Terms []string `json:"terms"`
	// FromFallback reports whether the deterministic fallback produced the
	// terms instead of the AI path.
	FromFallback bool `json:"from_fallback"`
}

// IsEmpty reports whether the profile carries no usable terms.
func (p Profile) IsEmpty() bool {
	return len(p.Terms) == 0
}
