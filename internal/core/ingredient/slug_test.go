package ingredient

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Resolve Tests
// =============================================================================

func TestResolve_ExactPhrase(t *testing.T) {
	result := Resolve("scallion", "")
	assert.Equal(t, "onion-green", result)
}

func TestResolve_ExactCompoundPhrase(t *testing.T) {
	result := Resolve("yellow onion", "")
	assert.Equal(t, "onion-yellow", result)
}

func TestResolve_CaseAndWhitespaceInsensitive(t *testing.T) {
	result := Resolve("  Yellow Onion  ", "")
	assert.Equal(t, "onion-yellow", result)
}

func TestResolve_AllCuratedPhrases(t *testing.T) {
	// Every curated phrase must resolve to exactly its mapped slug.
	for phrase, slug := range Synonyms() {
		assert.Equal(t, slug, Resolve(phrase, ""), "phrase %q", phrase)
	}
}

func TestResolve_KnownBaseUnknownVariant(t *testing.T) {
	// "onion purple" is not curated, but "onion" is; the mapped slug's
	// root carries the unseen variant.
	result := Resolve("onion", "purple")
	assert.Equal(t, "onion-purple", result)
}

func TestResolve_NaturalOrderCompoundViaVariant(t *testing.T) {
	// The curated entry is "red onion"; the variant form must hit the
	// exact-phrase branch through the reversed join order.
	result := Resolve("onion", "red")
	assert.Equal(t, "onion-red", result)
}

func TestResolve_VariantExactMatchBeatsRestructuring(t *testing.T) {
	// "sweet potato" maps to "potato-sweet"; the exact-phrase branch must
	// win over restructuring "potato" + "sweet".
	result := Resolve("potato", "sweet")
	assert.Equal(t, "potato-sweet", result)
}

func TestResolve_KnownBaseNoVariant(t *testing.T) {
	result := Resolve("shallot", "")
	assert.Equal(t, "onion-shallot", result)
}

func TestResolve_UnknownFallback(t *testing.T) {
	result := Resolve("Completely Unknown Vegetable", "")
	assert.Equal(t, "completely-unknown-vegetable", result)
}

func TestResolve_UnknownBaseWithVariant(t *testing.T) {
	// Unknown base: no restructuring, the combined phrase is slugified.
	result := Resolve("rambutan", "hairy")
	assert.Equal(t, "rambutan-hairy", result)
}

func TestResolve_VariantCaseInsensitive(t *testing.T) {
	result := Resolve("Onion", "PURPLE")
	assert.Equal(t, "onion-purple", result)
}

func TestResolve_EmptyInput(t *testing.T) {
	result := Resolve("", "")
	assert.Equal(t, "", result)
}

func TestResolve_SlugInvariant(t *testing.T) {
	// Resolved slugs contain only lowercase alphanumerics and hyphens,
	// with no leading or trailing hyphen.
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	inputs := [][2]string{
		{"scallion", ""},
		{"Yellow Onion", ""},
		{"onion", "purple"},
		{"Fancy! Imported? Cheese.", ""},
		{"star fruit", "ripe"},
	}
	for _, in := range inputs {
		slug := Resolve(in[0], in[1])
		assert.Regexp(t, valid, slug, "input %q/%q", in[0], in[1])
	}
}

// =============================================================================
// Slugify Tests
// =============================================================================

func TestSlugify_Basic(t *testing.T) {
	result := Slugify("Hello World")
	assert.Equal(t, "hello-world", result)
}

func TestSlugify_RemovesSpecialChars(t *testing.T) {
	result := Slugify("My App 2.0!")
	assert.Equal(t, "my-app-20", result)
}

func TestSlugify_CollapsesWhitespace(t *testing.T) {
	result := Slugify("hello   world")
	assert.Equal(t, "hello-world", result)
}

func TestSlugify_TrimsHyphens(t *testing.T) {
	result := Slugify("  -- trim me --  ")
	assert.Equal(t, "trim-me", result)
}

func TestSlugify_PreservesHyphens(t *testing.T) {
	result := Slugify("sun-dried tomato")
	assert.Equal(t, "sun-dried-tomato", result)
}

func TestSlugify_EmptyString(t *testing.T) {
	result := Slugify("")
	assert.Equal(t, "", result)
}

func TestSlugify_OnlySpecialChars(t *testing.T) {
	result := Slugify("!@#$%^&*()")
	assert.Equal(t, "", result)
}

// =============================================================================
// ToDisplay Tests
// =============================================================================

func TestToDisplay_Basic(t *testing.T) {
	result := ToDisplay("onion-yellow")
	assert.Equal(t, "Onion Yellow", result)
}

func TestToDisplay_SingleWord(t *testing.T) {
	result := ToDisplay("garlic")
	assert.Equal(t, "Garlic", result)
}

func TestToDisplay_NotAnInverse(t *testing.T) {
	// Synonyms collapse: "scallion" resolves to "onion-green", which
	// displays as "Onion Green", not "Scallion".
	display := ToDisplay(Resolve("scallion", ""))
	assert.Equal(t, "Onion Green", display)
}

func TestToDisplay_Empty(t *testing.T) {
	result := ToDisplay("")
	assert.Equal(t, "", result)
}
