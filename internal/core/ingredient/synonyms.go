package ingredient

// =============================================================================
// Synonym Table
// =============================================================================

// synonyms maps curated ingredient phrases to canonical slugs.
//
// Keys are normalized phrases: lowercase, trimmed, single spaces between
// words. Compound entries are authored in natural word order ("red onion",
// not "onion red"); Resolve consults both orderings. The table is fixed at
// process start and never mutated.
var synonyms = map[string]string{
	// Onions and alliums
	"onion":        "onion-yellow",
	"yellow onion": "onion-yellow",
	"red onion":    "onion-red",
	"white onion":  "onion-white",
	"sweet onion":  "onion-sweet",
	"shallot":      "onion-shallot",
	"scallion":     "onion-green",
	"green onion":  "onion-green",
	"spring onion": "onion-green",
	"garlic":       "garlic",
	"garlic clove": "garlic",
	"chives":       "chives",
	"leek":         "leek",

	// Tomatoes
	"tomato":        "tomato",
	"roma tomato":   "tomato-roma",
	"plum tomato":   "tomato-roma",
	"cherry tomato": "tomato-cherry",
	"grape tomato":  "tomato-cherry",

	// Peppers
	"bell pepper":  "pepper-bell",
	"capsicum":     "pepper-bell",
	"chili pepper": "pepper-chili",
	"chile pepper": "pepper-chili",
	"jalapeno":     "pepper-jalapeno",

	// Herbs
	"cilantro":         "cilantro",
	"fresh cilantro":   "cilantro",
	"coriander leaves": "cilantro",
	"parsley":          "parsley",
	"basil":            "basil",
	"fresh basil":      "basil",

	// Root vegetables
	"potato":        "potato",
	"russet potato": "potato-russet",
	"sweet potato":  "potato-sweet",
	"yam":           "potato-sweet",
	"carrot":        "carrot",
	"baby carrot":   "carrot-baby",
	"ginger":        "ginger",
	"fresh ginger":  "ginger",

	// Mushrooms
	"mushroom":            "mushroom",
	"button mushroom":     "mushroom-button",
	"cremini mushroom":    "mushroom-cremini",
	"portobello mushroom": "mushroom-portobello",

	// Dairy and eggs
	"butter":          "butter",
	"unsalted butter": "butter",
	"salted butter":   "butter-salted",
	"milk":            "milk",
	"whole milk":      "milk",
	"skim milk":       "milk-skim",
	"heavy cream":     "cream-heavy",
	"whipping cream":  "cream-heavy",
	"sour cream":      "cream-sour",
	"egg":             "egg",
	"eggs":            "egg",

	// Oils
	"olive oil":              "oil-olive",
	"extra virgin olive oil": "oil-olive",
	"vegetable oil":          "oil-vegetable",
	"canola oil":             "oil-canola",
	"sesame oil":             "oil-sesame",

	// Baking
	"flour":               "flour",
	"all purpose flour":   "flour",
	"whole wheat flour":   "flour-wheat",
	"sugar":               "sugar",
	"brown sugar":         "sugar-brown",
	"powdered sugar":      "sugar-powdered",
	"confectioners sugar": "sugar-powdered",
	"salt":                "salt",
	"kosher salt":         "salt-kosher",
	"sea salt":            "salt-sea",
	"baking soda":         "baking-soda",
	"baking powder":       "baking-powder",

	// Proteins
	"chicken":        "chicken",
	"chicken breast": "chicken-breast",
	"chicken thigh":  "chicken-thigh",
	"beef":           "beef",
	"ground beef":    "beef-ground",
	"minced beef":    "beef-ground",
	"pork":           "pork",
	"bacon":          "bacon",
	"tofu":           "tofu",

	// Grains
	"rice":         "rice",
	"white rice":   "rice",
	"brown rice":   "rice-brown",
	"basmati rice": "rice-basmati",
	"pasta":        "pasta",
	"spaghetti":    "pasta-spaghetti",

	// Citrus
	"lemon": "lemon",
	"lime":  "lime",
}

// Synonyms returns a copy of the synonym table. Exposed for table-driven
// callers (e.g. the warm driver's default list); mutations do not affect
// resolution.
func Synonyms() map[string]string {
	out := make(map[string]string, len(synonyms))
	for k, v := range synonyms {
		out[k] = v
	}
	return out
}
