package nlp

import "regexp"

// Labels names the entity classes a profile emits. An empty label disables
// that class.
type Labels struct {
	Person   string
	Org      string
	Location string
	Norp     string
	Date     string
	Fallback string
}

// profile is the rule set behind one language model.
type profile struct {
	code   string
	labels Labels

	// connectors may appear lowercase inside a multi-word name.
	connectors map[string]struct{}
	// leading words are stripped from the front of a capitalized run.
	leading map[string]struct{}
	// breakers never belong to a name (month and weekday names).
	breakers map[string]struct{}

	orgKeywords  map[string]struct{}
	places       map[string]struct{}
	demonyms     map[string]struct{}
	personTitles map[string]struct{}

	// abbreviations keep a trailing dot inside a name ("Prof.", "St.").
	abbreviations map[string]struct{}
	// strict drops single capitalized words that no rule recognizes.
	strict bool

	datePattern *regexp.Regexp
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var places = set(
	"zurich", "zürich", "zuerich", "geneva", "genf", "genève", "basel", "bern", "berne",
	"lausanne", "lugano", "lucerne", "luzern", "st. gallen", "winterthur", "davos",
	"switzerland", "schweiz", "suisse", "svizzera", "germany", "deutschland",
	"france", "frankreich", "italy", "italien", "austria", "österreich",
	"europe", "europa", "china", "japan", "india", "indien", "brazil", "brasilien",
	"united states", "usa", "u.s.", "united kingdom", "uk", "england", "london",
	"paris", "berlin", "munich", "münchen", "vienna", "wien", "rome", "rom", "milan",
	"mailand", "new york", "boston", "california", "kalifornien", "tokyo", "beijing",
	"peking", "singapore", "singapur", "africa", "afrika", "asia", "asien",
	"antarctica", "antarktis", "alps", "alpen", "rhine", "rhein", "hönggerberg",
)

var orgKeywords = set(
	"university", "universität", "universitat", "université", "università",
	"institute", "institut", "institution", "school", "schule", "hochschule",
	"college", "academy", "akademie", "foundation", "stiftung", "council", "rat",
	"department", "departement", "center", "centre", "zentrum", "laboratory",
	"lab", "labor", "labs", "inc", "ltd", "corp", "corporation", "company",
	"ag", "gmbh", "sa", "group", "gruppe", "association", "verband", "verein",
	"agency", "office", "amt", "bundesamt", "ministry", "ministerium", "commission",
	"kommission", "society", "gesellschaft", "network", "netzwerk", "bank",
	"museum", "library", "bibliothek", "hospital", "spital", "klinik", "press",
	"eth", "epfl", "empa", "eawag", "psi", "wsl", "snf", "snsf", "cern", "nasa",
	"esa", "uzh", "mit", "un", "eu", "who", "oecd", "google", "microsoft", "ibm",
)

var english = &profile{
	code: "en",
	labels: Labels{
		Person:   "PERSON",
		Org:      "ORG",
		Location: "GPE",
		Norp:     "NORP",
		Date:     "DATE",
		Fallback: "ORG",
	},
	connectors: set("of", "for", "de", "von", "van", "der", "la", "le", "di", "du"),
	leading: set(
		"the", "a", "an", "this", "that", "these", "those", "in", "on", "at", "for",
		"with", "from", "by", "as", "but", "and", "or", "if", "it", "its", "he",
		"she", "they", "we", "i", "you", "our", "their", "his", "her", "my", "after",
		"before", "when", "while", "during", "since", "today", "yesterday", "however",
		"also", "there", "here", "what", "how", "why", "who", "where", "which",
		"according", "about", "all", "both", "each", "every", "many", "most", "some",
		"such", "so", "then", "thus", "to", "under", "until", "more", "one", "two",
		"first", "last", "next", "not", "no", "yes", "mr", "mrs", "ms", "dr", "prof",
		"professor", "president", "read", "see", "find", "learn", "contact",
	),
	breakers: set(
		"january", "february", "march", "april", "may", "june", "july", "august",
		"september", "october", "november", "december", "monday", "tuesday",
		"wednesday", "thursday", "friday", "saturday", "sunday",
	),
	orgKeywords:  orgKeywords,
	places:       places,
	demonyms:     set("swiss", "german", "french", "italian", "european", "american", "british", "chinese", "japanese", "austrian", "indian"),
	personTitles: set("mr", "mrs", "ms", "dr", "prof", "professor", "president", "sir", "dame", "director"),
	abbreviations: set(
		"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "vs", "etc", "e.g", "i.e",
		"inc", "ltd", "co", "corp", "no", "fig", "approx", "dept", "est", "jan", "feb",
		"mar", "apr", "jun", "jul", "aug", "sep", "sept", "oct", "nov", "dec", "u.s",
		"ph.d", "al", "cf", "ca",
	),
	datePattern: regexp.MustCompile(
		`\b(?:\d{1,2}(?:st|nd|rd|th)?\s+)?(?:January|February|March|April|May|June|July|August|September|October|November|December)(?:\s+\d{1,2}(?:st|nd|rd|th)?)?(?:,?\s+\d{4})?\b|\b(?:19|20)\d{2}\b`,
	),
}

var german = &profile{
	code: "de",
	labels: Labels{
		Person:   "PER",
		Org:      "ORG",
		Location: "LOC",
		Norp:     "MISC",
		Fallback: "MISC",
	},
	connectors: set("für", "von", "van", "de", "zu"),
	leading: set(
		"der", "die", "das", "den", "dem", "des", "ein", "eine", "einer", "einem",
		"einen", "eines", "im", "in", "am", "an", "auf", "aus", "mit", "für", "von",
		"vom", "zum", "zur", "bei", "nach", "seit", "über", "unter", "und", "oder",
		"aber", "es", "er", "sie", "wir", "ich", "ihr", "sein", "seine", "ihre",
		"unser", "unsere", "dieser", "diese", "dieses", "heute", "gestern", "auch",
		"so", "wie", "was", "wer", "dass", "als", "wenn", "doch", "damit", "da",
		"hier", "dort", "jetzt", "nun", "alle", "viele", "mehr", "neue", "neuen",
		"herr", "frau", "prof", "dr", "professor", "professorin", "präsident",
		"präsidentin", "laut", "gemäss", "gemäß", "weitere", "kontakt",
	),
	breakers: set(
		"januar", "jänner", "februar", "märz", "april", "mai", "juni", "juli",
		"august", "september", "oktober", "november", "dezember", "montag",
		"dienstag", "mittwoch", "donnerstag", "freitag", "samstag", "sonntag",
	),
	orgKeywords:  orgKeywords,
	places:       places,
	demonyms:     set("schweizer", "schweizerische", "schweizerischen", "deutsche", "deutschen", "europäische", "europäischen", "französische", "italienische"),
	personTitles: set("herr", "frau", "dr", "prof", "professor", "professorin", "präsident", "präsidentin", "direktor", "direktorin", "rektor", "rektorin"),
	abbreviations: set(
		"dr", "prof", "hr", "fr", "nr", "bzw", "z.b", "u.a", "d.h", "usw", "ca", "vgl",
		"evtl", "ggf", "inkl", "exkl", "abs", "art", "bsp", "st", "str", "jan", "feb",
		"apr", "jun", "jul", "aug", "sept", "okt", "nov", "dez", "s", "mio", "mrd",
	),
	strict: true,
}

var profiles = map[string]*profile{
	english.code: english,
	german.code:  german,
}
