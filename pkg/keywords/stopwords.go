package keywords

// Stopword lists per ISO 639-1 code. A language without a list has no
// keyword extractor.
var stopwords = map[string]map[string]struct{}{
	"en": englishStopwords,
	"de": germanStopwords,
	"fr": frenchStopwords,
	"it": italianStopwords,
}

var englishStopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "across": {}, "after": {}, "afterwards": {},
	"again": {}, "against": {}, "all": {}, "almost": {}, "alone": {}, "along": {},
	"already": {}, "also": {}, "although": {}, "always": {}, "am": {}, "among": {},
	"amongst": {}, "amount": {}, "an": {}, "and": {}, "another": {}, "any": {},
	"anyhow": {}, "anyone": {}, "anything": {}, "anyway": {}, "anywhere": {},
	"are": {}, "aren't": {}, "around": {}, "as": {}, "at": {},

	"back": {}, "be": {}, "became": {}, "because": {}, "become": {}, "becomes": {},
	"becoming": {}, "been": {}, "before": {}, "beforehand": {}, "behind": {},
	"being": {}, "below": {}, "beside": {}, "besides": {}, "between": {},
	"beyond": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "can't": {}, "cannot": {}, "could": {}, "couldn't": {},

	"did": {}, "didn't": {}, "do": {}, "does": {}, "doesn't": {}, "doing": {},
	"don't": {}, "done": {}, "down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "elsewhere": {}, "enough": {},
	"entirely": {}, "especially": {}, "etc": {}, "even": {}, "ever": {},
	"every": {}, "everyone": {}, "everything": {}, "everywhere": {},

	"few": {}, "for": {}, "former": {}, "formerly": {}, "from": {},
	"further": {},

	"had": {}, "hadn't": {}, "has": {}, "hasn't": {}, "have": {}, "haven't": {},
	"having": {}, "he": {}, "he'd": {}, "he'll": {}, "he's": {}, "hence": {},
	"her": {}, "here": {}, "hereafter": {}, "hereby": {}, "herein": {},
	"here's": {}, "hereupon": {}, "hers": {}, "herself": {}, "him": {},
	"himself": {}, "his": {}, "how": {}, "however": {},

	"i": {}, "i'd": {}, "i'll": {}, "i'm": {}, "i've": {},
	"if": {}, "in": {}, "indeed": {}, "into": {}, "is": {}, "isn't": {},
	"it": {}, "it's": {}, "its": {}, "itself": {},

	"just": {},

	"keep": {},

	"last": {}, "latter": {}, "latterly": {}, "least": {}, "less": {},
	"let": {}, "let's": {}, "like": {}, "likely": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "maybe": {}, "me": {},
	"meanwhile": {}, "might": {}, "mine": {}, "more": {}, "moreover": {},
	"most": {}, "mostly": {}, "much": {}, "must": {}, "mustn't": {},
	"my": {}, "myself": {},

	"neither": {}, "never": {}, "nevertheless": {}, "next": {}, "no": {},
	"nobody": {}, "none": {}, "noone": {}, "nor": {}, "not": {},
	"nothing": {}, "now": {}, "nowhere": {},

	"of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "one": {},
	"only": {}, "onto": {}, "or": {}, "other": {}, "others": {},
	"otherwise": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {},
	"over": {}, "own": {},

	"part": {}, "per": {}, "perhaps": {}, "please": {}, "put": {},

	"rather": {}, "re": {}, "same": {}, "see": {}, "seem": {}, "seemed": {},
	"seeming": {}, "seems": {}, "several": {}, "she": {}, "she'd": {},
	"she'll": {}, "she's": {}, "should": {}, "shouldn't": {}, "since": {},
	"so": {}, "some": {}, "somehow": {}, "someone": {}, "something": {},
	"sometime": {}, "sometimes": {}, "somewhere": {}, "still": {},
	"such": {},

	"take": {}, "than": {}, "that": {}, "that's": {}, "the": {},
	"their": {}, "theirs": {}, "them": {}, "themselves": {}, "then": {},
	"thence": {}, "there": {}, "thereafter": {}, "thereby": {},
	"therefore": {}, "therein": {}, "there's": {}, "thereupon": {},
	"these": {}, "they": {}, "they'd": {}, "they'll": {}, "they're": {},
	"they've": {}, "this": {}, "those": {}, "through": {}, "throughout": {},
	"thru": {}, "thus": {}, "to": {}, "together": {}, "too": {},
	"toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},

	"very": {}, "via": {},

	"was": {}, "wasn't": {}, "we": {}, "we'd": {}, "we'll": {},
	"we're": {}, "we've": {}, "well": {}, "were": {}, "weren't": {},
	"what": {}, "whatever": {}, "what's": {}, "when": {}, "whence": {},
	"whenever": {}, "where": {}, "whereafter": {}, "whereas": {},
	"whereby": {}, "wherein": {}, "where's": {}, "whereupon": {},
	"wherever": {}, "whether": {}, "which": {}, "while": {}, "whither": {},
	"who": {}, "who'd": {}, "whoever": {}, "who'll": {}, "who's": {},
	"whose": {}, "why": {}, "with": {}, "within": {}, "without": {},
	"won't": {}, "would": {}, "wouldn't": {},

	"yet": {}, "you": {}, "you'd": {}, "you'll": {}, "you're": {},
	"you've": {}, "your": {}, "yours": {}, "yourself": {}, "yourselves": {},

	// Additional contractions and variants
	"ain't": {}, "it'll": {}, "shan't": {}, "that'll": {}, "when's": {},

	// Common web/UI noise words
	"click": {}, "clickable": {}, "clicked": {}, "clicking": {},
	"button": {}, "link": {}, "menu": {},
	"redirected": {}, "redirect": {}, "redirecting": {},
	"page": {}, "pages": {}, "website": {}, "site": {},
	"home": {}, "homepage": {},
	"search": {}, "searching": {}, "searched": {},
	"loading": {}, "loaded": {}, "load": {}, "loads": {},
}

var germanStopwords = words(
	"aber", "alle", "allem", "allen", "aller", "alles", "als", "also", "am", "an",
	"ander", "andere", "anderen", "anderer", "anderes", "auch", "auf", "aus", "bei",
	"beim", "bin", "bis", "bist", "da", "damit", "dann", "das", "dass", "daß", "dem",
	"den", "denn", "der", "des", "dessen", "deshalb", "die", "dies", "diese", "diesem",
	"diesen", "dieser", "dieses", "doch", "dort", "du", "durch", "ein", "eine", "einem",
	"einen", "einer", "eines", "er", "es", "etwa", "euch", "für", "gegen", "gibt",
	"hat", "hatte", "hätte", "haben", "hier", "hin", "hinter", "ich", "ihm", "ihn",
	"ihnen", "ihr", "ihre", "ihrem", "ihren", "ihrer", "im", "immer", "in", "indem",
	"ins", "ist", "ja", "jede", "jedem", "jeden", "jeder", "jedes", "jetzt", "kann",
	"kein", "keine", "können", "könnte", "man", "manche", "mehr", "mein", "mit",
	"muss", "musste", "nach", "nicht", "nichts", "noch", "nun", "nur", "ob", "oder",
	"ohne", "sehr", "sein", "seine", "seinem", "seinen", "seiner", "seit", "sich",
	"sie", "sind", "so", "solche", "soll", "sollen", "sondern", "sowie", "über", "um",
	"und", "uns", "unser", "unsere", "unter", "viel", "viele", "vom", "von", "vor",
	"wann", "war", "waren", "warum", "was", "weil", "welche", "welchem", "welchen",
	"welcher", "wenn", "wer", "werden", "wie", "wieder", "will", "wir", "wird",
	"wo", "wurde", "wurden", "zu", "zum", "zur", "zwar", "zwischen",
	"seite", "klicken", "link", "menü", "suche", "startseite", "download",
)

var frenchStopwords = words(
	"a", "à", "afin", "ai", "ainsi", "alors", "au", "aucun", "aussi", "autre", "aux",
	"avec", "avoir", "bien", "c", "ça", "car", "ce", "ceci", "cela", "celle", "celui",
	"ces", "cet", "cette", "chaque", "chez", "comme", "comment", "d", "dans", "de",
	"des", "donc", "dont", "du", "elle", "elles", "en", "encore", "entre", "est",
	"et", "été", "être", "eu", "fait", "faire", "il", "ils", "j", "je", "l", "la",
	"le", "les", "leur", "leurs", "lui", "m", "ma", "mais", "me", "même", "mes",
	"moi", "mon", "n", "ne", "ni", "nos", "notre", "nous", "on", "ont", "ou", "où",
	"par", "pas", "peu", "peut", "plus", "pour", "pourquoi", "qu", "quand", "que",
	"quel", "quelle", "qui", "s", "sa", "sans", "se", "ses", "si", "son", "sont",
	"sous", "sur", "t", "ta", "te", "tes", "toi", "ton", "tous", "tout", "toute",
	"très", "tu", "un", "une", "vers", "vos", "votre", "vous", "y",
	"page", "cliquer", "lien", "menu", "recherche", "accueil",
)

var italianStopwords = words(
	"a", "ad", "agli", "al", "alla", "alle", "allo", "anche", "ancora", "c", "che",
	"chi", "ci", "come", "con", "contro", "cui", "da", "dal", "dalla", "dalle",
	"degli", "dei", "del", "della", "delle", "dello", "di", "dove", "e", "è", "ed",
	"era", "essere", "fa", "fra", "gli", "ha", "hanno", "i", "il", "in", "io", "l",
	"la", "le", "lei", "li", "lo", "loro", "lui", "ma", "mi", "mio", "ne", "nei",
	"nel", "nella", "nelle", "no", "noi", "non", "nostro", "o", "ogni", "per",
	"perché", "più", "poi", "quale", "quando", "quella", "quelle", "quelli", "quello",
	"questa", "queste", "questi", "questo", "se", "sei", "si", "sia", "siamo", "sono",
	"su", "sua", "sue", "sui", "sul", "sulla", "suo", "suoi", "tra", "tu", "tutti",
	"tutto", "un", "una", "uno", "vi", "voi",
	"pagina", "cliccare", "collegamento", "menu", "ricerca",
)

func words(list ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// IsStopword reports whether word is a stopword in language code.
func IsStopword(code, word string) bool {
	_, ok := stopwords[code][word]
	return ok
}
