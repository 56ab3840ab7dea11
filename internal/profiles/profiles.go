package profiles

import (
	"fmt"

	"github.com/harborlight/teamlens/internal/questionbank"
)

// Entry is the authored narrative for one category of one dimension. The
// per-dimension tables are closed-world: every category in a dimension's
// fixed set has an entry, enforced by ValidateContent at startup.
type Entry struct {
	Category     questionbank.Category `json:"category"`
	Title        string                `json:"title"`
	Summary      string                `json:"summary"`
	Strengths    []string              `json:"strengths"`
	Growth       []string              `json:"growth"`
	SupportNeeds []string              `json:"support_needs"`
	RoleGuidance map[Role]string       `json:"role_guidance"`
}

// GuidanceFor returns the role-scoped guidance paragraph for a normalized
// role key.
func (e Entry) GuidanceFor(r Role) string {
	return e.RoleGuidance[r]
}

// CombinedEntry is the narrative for a pair of primary categories across the
// two dimensions. The pair table is open-world: not every one of the sixteen
// combinations is authored.
type CombinedEntry struct {
	Title     string   `json:"title"`
	Narrative string   `json:"narrative"`
	Tips      []string `json:"tips"`
}

// Resolve looks up the per-dimension entry for a category. The lookup is
// total over each dimension's fixed category set; an error here means either
// the category does not belong to the dimension or the content tables are
// broken, which ValidateContent rules out before the service starts.
func Resolve(d questionbank.Dimension, c questionbank.Category) (Entry, error) {
	if !questionbank.IsCategory(d, c) {
		return Entry{}, fmt.Errorf("profiles: category %q is not in dimension %s", c, d)
	}
	table := tableFor(d)
	entry, ok := table[c]
	if !ok {
		return Entry{}, fmt.Errorf("profiles: no authored entry for %s category %q", d, c)
	}
	return entry, nil
}

// ResolveCombined looks up the pair narrative keyed by the Communication
// primary, then the Motivation primary. Absence is a normal outcome, not an
// error; callers omit the combined section when ok is false.
func ResolveCombined(comm, motiv questionbank.Category) (CombinedEntry, bool) {
	inner, ok := combinedProfiles[comm]
	if !ok {
		return CombinedEntry{}, false
	}
	entry, ok := inner[motiv]
	return entry, ok
}

func tableFor(d questionbank.Dimension) map[questionbank.Category]Entry {
	switch d {
	case questionbank.DimensionCommunication:
		return communicationProfiles
	case questionbank.DimensionMotivation:
		return motivationProfiles
	default:
		return nil
	}
}

// ValidateContent checks the authored tables against the fixed category and
// role sets: every category in both dimensions must have an entry, and every
// entry must carry guidance for every role key. A failure is a static content
// defect and the process must not start with it.
func ValidateContent() error {
	for _, d := range []questionbank.Dimension{questionbank.DimensionCommunication, questionbank.DimensionMotivation} {
		table := tableFor(d)
		for _, c := range questionbank.Categories(d) {
			entry, ok := table[c]
			if !ok {
				return fmt.Errorf("profiles: dimension %s is missing an entry for category %q", d, c)
			}
			if entry.Summary == "" || len(entry.Strengths) == 0 || len(entry.SupportNeeds) == 0 {
				return fmt.Errorf("profiles: entry for %s/%q is incomplete", d, c)
			}
			for _, r := range Roles() {
				if entry.RoleGuidance[r] == "" {
					return fmt.Errorf("profiles: entry for %s/%q lacks guidance for role %q", d, c, r)
				}
			}
		}
	}
	for comm, inner := range combinedProfiles {
		if !questionbank.IsCategory(questionbank.DimensionCommunication, comm) {
			return fmt.Errorf("profiles: combined table keyed by unknown communication category %q", comm)
		}
		for motiv, entry := range inner {
			if !questionbank.IsCategory(questionbank.DimensionMotivation, motiv) {
				return fmt.Errorf("profiles: combined table keyed by unknown motivation category %q", motiv)
			}
			if entry.Narrative == "" {
				return fmt.Errorf("profiles: combined entry %s-%s has no narrative", comm, motiv)
			}
		}
	}
	return nil
}
