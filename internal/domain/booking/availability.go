package booking

import (
	"fmt"
	"strings"
)

type OverlapPolicy string

const (
	// PolicyLegacy flags a conflict when the new start falls in [b.start, b.end)
	// or the new end falls in (b.start, b.end]. A new slot that strictly
	// contains an existing one is NOT a conflict under this policy.
	PolicyLegacy OverlapPolicy = "legacy"
	// PolicyStrict flags any half-open overlap, containment included.
	PolicyStrict OverlapPolicy = "strict"
)

func ParseOverlapPolicy(s string) (OverlapPolicy, error) {
	switch p := OverlapPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyLegacy, PolicyStrict:
		return p, nil
	case "":
		return PolicyLegacy, nil
	default:
		return "", fmt.Errorf("unknown overlap policy %q (want %q or %q)", s, PolicyLegacy, PolicyStrict)
	}
}

func (p OverlapPolicy) String() string {
	return string(p)
}

// Overlaps reports whether candidate collides with existing. The caller is
// responsible for comparing slots of the same room and date only.
func (p OverlapPolicy) Overlaps(candidate, existing TimeSlot) bool {
	if p == PolicyStrict {
		return candidate.start < existing.end && candidate.end > existing.start
	}
	startInside := candidate.start >= existing.start && candidate.start < existing.end
	endInside := candidate.end > existing.start && candidate.end <= existing.end
	return startInside || endInside
}

// Availability decides whether a slot is free on a room given the bookings
// already stored.
type Availability struct {
	policy OverlapPolicy
}

func NewAvailability(policy OverlapPolicy) *Availability {
	if policy == "" {
		policy = PolicyLegacy
	}
	return &Availability{policy: policy}
}

func (a *Availability) Policy() OverlapPolicy {
	return a.policy
}

func (a *Availability) IsAvailable(existing []*Booking, roomID int64, slot TimeSlot) bool {
	return a.FirstConflict(existing, roomID, slot) == nil
}

// FirstConflict returns the earliest stored booking that blocks slot, or nil.
func (a *Availability) FirstConflict(existing []*Booking, roomID int64, slot TimeSlot) *Booking {
	for _, b := range existing {
		if b.roomID != roomID || !b.timeSlot.SameDate(slot) {
			continue
		}
		if a.policy.Overlaps(slot, b.timeSlot) {
			return b
		}
	}
	return nil
}
