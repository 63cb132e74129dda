// Package ingredient maps free-text ingredient names to canonical slugs.
//
// Slugs are stable identifiers used as lookup keys by the icon-generation
// service. Known phrases resolve through a curated synonym table; anything
// else falls back to generic slugification. All functions are pure.
package ingredient

import (
	"regexp"
	"strings"
)

// =============================================================================
// Slug Resolution
// =============================================================================

var (
	// Matches characters that cannot appear in a slug.
	invalidChars = regexp.MustCompile(`[^a-z0-9 -]+`)
	// Matches runs of whitespace.
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// Matches runs of hyphens.
	hyphenRuns = regexp.MustCompile(`-+`)
)

// Resolve converts a display name and optional variant qualifier to a
// canonical slug.
//
// Lookup order:
//  1. Exact phrase in the synonym table. Curated compound entries are
//     authored in natural word order ("red onion"), so both join orders
//     are consulted: "<name> <variant>" first, then "<variant> <name>".
//  2. Base name alone in the synonym table. With a variant, the mapped
//     slug's first hyphen segment becomes the root and the variant is
//     appended: a known base with an unseen variant still produces a
//     structured slug ("onion" + "purple" -> "onion-purple").
//  3. Generic slugification of the combined phrase, no restructuring.
//
// Resolve always returns a string; empty input yields an empty slug.
//
// Example:
//
//	Resolve("scallion", "")      // returns "onion-green"
//	Resolve("Yellow Onion", "")  // returns "onion-yellow"
//	Resolve("onion", "purple")   // returns "onion-purple"
//	Resolve("dragon fruit", "")  // returns "dragon-fruit"
func Resolve(name, variant string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	qual := strings.ToLower(strings.TrimSpace(variant))

	if qual == "" {
		if slug, ok := synonyms[base]; ok {
			return slug
		}
		return Slugify(base)
	}

	if slug, ok := synonyms[base+" "+qual]; ok {
		return slug
	}
	if slug, ok := synonyms[qual+" "+base]; ok {
		return slug
	}

	if slug, ok := synonyms[base]; ok {
		sq := Slugify(qual)
		if sq == "" {
			return slug
		}
		root, _, _ := strings.Cut(slug, "-")
		return root + "-" + sq
	}

	return Slugify(base + " " + qual)
}

// Slugify converts free text to a slug: lowercase, whitespace runs become
// single hyphens, characters outside [a-z0-9-] are dropped, hyphen runs
// collapse, leading and trailing hyphens are trimmed.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = invalidChars.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// =============================================================================
// Display Formatting
// =============================================================================

// ToDisplay converts a slug back to a human-readable label: hyphens become
// spaces and each word is capitalized. Lossy; not an inverse of Resolve,
// since synonyms collapse many names onto one slug.
//
// Example:
//
//	ToDisplay("onion-yellow") // returns "Onion Yellow"
func ToDisplay(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
