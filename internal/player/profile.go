// Package player holds the persisted player state: the profile, per-hole
// notes, and the club bag.
//
// All three are plain JSON-serializable values. The caddie service loads
// them from the store, mutates them, and writes them back wholesale.
package player

import (
	"strings"
	"unicode"
)

// DefaultAvatarColor is used when the profile has no avatar color set.
const DefaultAvatarColor = "#22c55e"

// Profile is the singleton player profile. It is overwritten wholesale on
// every save. Avatar fields are opaque to the advice engine.
type Profile struct {
	Name        string `json:"name,omitempty"`
	Handicap    string `json:"handicap,omitempty"`
	Shape       string `json:"shape,omitempty"`
	AvatarColor string `json:"avatarColor,omitempty"`
	AvatarTone  string `json:"avatarTone,omitempty"`
	AvatarHat   string `json:"avatarHat,omitempty"`
}

// Normalize trims every free-text field.
func (p Profile) Normalize() Profile {
	return Profile{
		Name:        strings.TrimSpace(p.Name),
		Handicap:    strings.TrimSpace(p.Handicap),
		Shape:       strings.TrimSpace(p.Shape),
		AvatarColor: strings.TrimSpace(p.AvatarColor),
		AvatarTone:  strings.TrimSpace(p.AvatarTone),
		AvatarHat:   strings.TrimSpace(p.AvatarHat),
	}
}

// Initials returns up to two upper-cased initials of the player's name.
// An empty name is treated as "You", so the result is never empty.
func (p Profile) Initials() string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = "You"
	}

	initials := make([]rune, 0, 2)
	for _, part := range strings.Fields(name) {
		initials = append(initials, unicode.ToUpper([]rune(part)[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// Color returns the avatar color, or DefaultAvatarColor when unset.
func (p Profile) Color() string {
	if p.AvatarColor == "" {
		return DefaultAvatarColor
	}
	return p.AvatarColor
}
