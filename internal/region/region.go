// Package region maps Korean administrative districts to their mortgage
// regulation zones and the LTV ceilings those zones impose.
package region

import "strings"

// Profile describes one district's regulatory designation. Profiles are
// static catalog data; Classify returns copies, never shared state.
type Profile struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Speculative bool     `yaml:"speculative"`
	Adjusted    bool     `yaml:"adjusted"`
	Aliases     []string `yaml:"aliases,omitempty"`
}

// Zone labels, from most to least restricted.
const (
	ZoneSpeculative = "speculative"
	ZoneAdjusted    = "adjusted"
	ZoneUnregulated = "unregulated"
)

// Zone returns the zone label for the profile. Speculative-overheated
// districts are also adjusted districts; the stricter label wins.
func (p Profile) Zone() string {
	switch {
	case p.Speculative:
		return ZoneSpeculative
	case p.Adjusted:
		return ZoneAdjusted
	default:
		return ZoneUnregulated
	}
}

// LTVLimit resolves the maximum loan-to-value percentage for a buyer in
// this district. The first-home flag takes precedence over house count;
// multi-home owners in speculative zones get no loan at all.
func (p Profile) LTVLimit(firstHome bool, houseCount int) int {
	switch {
	case p.Speculative:
		switch {
		case firstHome:
			return 50
		case houseCount == 1:
			return 30
		default:
			return 0
		}
	case p.Adjusted:
		switch {
		case firstHome:
			return 70
		case houseCount == 1:
			return 60
		default:
			return 30
		}
	default:
		return 70
	}
}

// DefaultProfile is returned for identifiers the catalog does not know.
// Unknown districts are treated as unregulated rather than rejected.
func DefaultProfile() Profile {
	return Profile{ID: "other", Name: "Other"}
}

// normalizeID canonicalizes a region identifier for catalog lookup.
func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
