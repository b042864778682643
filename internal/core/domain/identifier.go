// Package domain contains the core domain models for mod items and stat modifiers.
package domain

import "strings"

// ModNamespace is the identifier prefix that routes an item to this system.
// Matching is case-insensitive; everything after the prefix is case-sensitive.
const ModNamespace = "mod:"

// IsModIdentifier reports whether id carries the mod namespace marker.
func IsModIdentifier(id string) bool {
	return len(id) >= len(ModNamespace) && strings.EqualFold(id[:len(ModNamespace)], ModNamespace)
}

// CanonicalID normalizes the namespace prefix of id to lower case.
// It returns false if id is not a mod identifier or has an empty name.
func CanonicalID(id string) (string, bool) {
	if !IsModIdentifier(id) {
		return "", false
	}
	name := id[len(ModNamespace):]
	if strings.TrimSpace(name) == "" {
		return "", false
	}
	return ModNamespace + name, true
}
