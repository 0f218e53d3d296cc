// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// BulletEntry is one reusable, untailored accomplishment from the master bullet list
type BulletEntry struct {
	Bullet string `json:"bullet" yaml:"bullet"`
}

// TailoredBullets is the ordered list of bullets returned by the tailoring step.
// The order is the model's order and is never re-sorted downstream.
type TailoredBullets []string

// BulletTexts returns the text of each entry, preserving order
func BulletTexts(entries []BulletEntry) []string {
	texts := make([]string, 0, len(entries))
	for _, e := range entries {
		texts = append(texts, e.Bullet)
	}
	return texts
}
