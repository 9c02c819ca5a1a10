package simconfig

import (
	"fmt"
	"time"
)

// PatternKind selects the spawn logic used while a pattern is active.
type PatternKind string

const (
	PatternHorizontalBones PatternKind = "horizontal_bones"
	PatternVerticalBones   PatternKind = "vertical_bones"
	PatternRisingBones     PatternKind = "rising_bones"
	PatternGasterBlaster   PatternKind = "gaster_blaster"
	PatternDVDLogo         PatternKind = "dvd_logo"
	PatternSplitLifts      PatternKind = "split_lifts"
)

// Valid reports whether k is a known pattern kind.
func (k PatternKind) Valid() bool {
	switch k {
	case PatternHorizontalBones, PatternVerticalBones, PatternRisingBones,
		PatternGasterBlaster, PatternDVDLogo, PatternSplitLifts:
		return true
	}
	return false
}

// Cadenced reports whether the pattern spawns on the periodic spawn timer.
// The DVD logo is the only one-shot pattern.
func (k PatternKind) Cadenced() bool {
	return k.Valid() && k != PatternDVDLogo
}

// AttackPattern is one timed entry of the battle script.
type AttackPattern struct {
	Name       string      `yaml:"name"`
	DurationMS int         `yaml:"durationMs"`
	Kind       PatternKind `yaml:"kind"`
}

// Duration returns the pattern length as a time.Duration.
func (p AttackPattern) Duration() time.Duration {
	return time.Duration(p.DurationMS) * time.Millisecond
}

// DisplaySeconds is the attack countdown shown when the pattern starts.
func (p AttackPattern) DisplaySeconds() int {
	return (p.DurationMS + 999) / 1000
}

func (p AttackPattern) String() string {
	return fmt.Sprintf("%s (%s, %dms)", p.Name, p.Kind, p.DurationMS)
}
