package analysis

// The model replies in Italian; downstream consumers index in English. The
// tables below drive the bilingual heuristics: category keyword sets,
// object lookup, semantic tag hits, number words and negation phrases.
// English keywords are included alongside so mixed-language replies still
// classify.

// categorySet pairs a scene category with its trigger keywords.
type categorySet struct {
	category string
	keywords []string
}

// categoryPriority is checked in order; the first matching set wins.
// Food and document signals are more specific than broad scene descriptors,
// so they outrank them deliberately.
var categoryPriority = []categorySet{
	{CategoryFood, []string{
		"cibo", "piatto", "pasta", "pizza", "pietanza", "cena", "pranzo",
		"colazione", "dolce", "torta", "pane", "formaggio", "ristorante",
		"food", "dish", "meal", "dessert", "cake", "restaurant", "breakfast",
	}},
	{CategoryDocument, []string{
		"documento", "pagina", "foglio", "modulo", "ricevuta", "scontrino",
		"lettera", "certificato", "manoscritto",
		"document", "page", "receipt", "form", "letter", "certificate",
	}},
	{CategoryNature, []string{
		"natura", "albero", "alberi", "bosco", "foresta", "montagna",
		"montagne", "fiore", "fiori", "prato", "lago", "fiume", "mare",
		"spiaggia", "tramonto", "collina",
		"nature", "tree", "trees", "forest", "mountain", "flower", "meadow",
		"lake", "river", "beach", "sunset",
	}},
	{CategoryVehicle, []string{
		"automobile", "macchina", "veicolo", "treno", "aereo", "bicicletta",
		"moto", "motocicletta", "autobus", "barca", "camion",
		"vehicle", "car", "train", "plane", "airplane", "bicycle",
		"motorcycle", "bus", "boat", "truck",
	}},
	{CategoryPeople, []string{
		"persona", "persone", "uomo", "donna", "ragazzo", "ragazza",
		"bambino", "bambina", "famiglia", "gruppo", "volto", "volti",
		"sorriso", "ritratto",
		"person", "people", "man", "woman", "child", "family", "group",
		"portrait", "smile",
	}},
	{CategoryUrban, []string{
		"città", "strada", "edificio", "edifici", "palazzo", "piazza",
		"grattacielo", "marciapiede", "urbano",
		"city", "street", "building", "buildings", "square", "skyscraper",
		"urban", "sidewalk",
	}},
	{CategoryOutdoor, []string{
		"esterno", "all'aperto", "giardino", "parco", "cielo", "sole",
		"campagna", "cortile",
		"outdoor", "outdoors", "outside", "garden", "park", "sky",
		"countryside",
	}},
	{CategoryIndoor, []string{
		"interno", "stanza", "camera", "cucina", "soggiorno", "salotto",
		"ufficio", "corridoio", "bagno",
		"indoor", "indoors", "inside", "room", "kitchen", "office",
		"bedroom", "hallway",
	}},
}

// objectEntry maps a source-language keyword to the canonical object name.
type objectEntry struct {
	keyword   string
	canonical string
}

// objectTable is scanned in order; matches dedup on the canonical name.
var objectTable = []objectEntry{
	{"tavolo", "table"}, {"table", "table"},
	{"sedia", "chair"}, {"chair", "chair"},
	{"finestra", "window"}, {"window", "window"},
	{"porta", "door"}, {"door", "door"},
	{"macchina", "car"}, {"automobile", "car"}, {"car", "car"},
	{"albero", "tree"}, {"alberi", "tree"}, {"tree", "tree"},
	{"fiore", "flower"}, {"fiori", "flower"}, {"flower", "flower"},
	{"cane", "dog"}, {"dog", "dog"},
	{"gatto", "cat"}, {"cat", "cat"},
	{"libro", "book"}, {"libri", "book"}, {"book", "book"},
	{"telefono", "phone"}, {"cellulare", "phone"}, {"phone", "phone"},
	{"computer", "computer"}, {"portatile", "laptop"}, {"laptop", "laptop"},
	{"bicicletta", "bicycle"}, {"bicycle", "bicycle"},
	{"lampada", "lamp"}, {"lamp", "lamp"},
	{"quadro", "painting"}, {"painting", "painting"},
	{"orologio", "clock"}, {"clock", "clock"},
	{"tazza", "cup"}, {"cup", "cup"},
	{"bicchiere", "glass"}, {"glass", "glass"},
	{"bottiglia", "bottle"}, {"bottle", "bottle"},
	{"piatto", "plate"}, {"plate", "plate"},
	{"torta", "cake"}, {"cake", "cake"},
	{"pane", "bread"}, {"bread", "bread"},
	{"montagna", "mountain"}, {"mountain", "mountain"},
	{"ponte", "bridge"}, {"bridge", "bridge"},
	{"treno", "train"}, {"train", "train"},
	{"barca", "boat"}, {"boat", "boat"},
	{"cartello", "sign"}, {"insegna", "sign"}, {"sign", "sign"},
	{"divano", "sofa"}, {"sofa", "sofa"},
	{"letto", "bed"}, {"bed", "bed"},
	{"specchio", "mirror"}, {"mirror", "mirror"},
	{"zaino", "backpack"}, {"backpack", "backpack"},
	{"ombrello", "umbrella"}, {"umbrella", "umbrella"},
}

// semanticTagTable: extra descriptive tags mined from the prose after the
// category and object tags.
var semanticTagTable = []objectEntry{
	{"moderno", "modern"}, {"moderna", "modern"}, {"modern", "modern"},
	{"antico", "vintage"}, {"antica", "vintage"}, {"vintage", "vintage"},
	{"luminoso", "bright"}, {"luminosa", "bright"}, {"bright", "bright"},
	{"colorato", "colorful"}, {"colorata", "colorful"}, {"colorful", "colorful"},
	{"tecnologia", "technology"}, {"technology", "technology"},
	{"viaggio", "travel"}, {"travel", "travel"},
	{"festa", "celebration"}, {"celebration", "celebration"},
	{"arte", "art"}, {"art", "art"},
	{"sport", "sport"},
	{"musica", "music"}, {"music", "music"},
	{"notte", "night"}, {"notturno", "night"}, {"night", "night"},
	{"estate", "summer"}, {"summer", "summer"},
	{"inverno", "winter"}, {"winter", "winter"},
	{"tramonto", "sunset"}, {"sunset", "sunset"},
	{"mare", "sea"}, {"sea", "sea"},
	{"famiglia", "family"}, {"family", "family"},
}

// numberWords maps number words one through ten to integers, both
// languages.
var numberWords = map[string]int{
	"uno": 1, "una": 1, "un": 1,
	"due": 2, "tre": 3, "quattro": 4, "cinque": 5,
	"sei": 6, "sette": 7, "otto": 8, "nove": 9, "dieci": 10,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// faceNegationPhrases force the face count to zero when present, always
// overriding any positive match.
var faceNegationPhrases = []string{
	"non ci sono persone",
	"non ci sono volti",
	"non sono visibili persone",
	"non sono presenti persone",
	"nessuna persona",
	"nessun volto",
	"senza persone",
	"no people visible",
	"no faces visible",
	"no people",
	"no faces",
	"no visible people",
	"no visible faces",
}

// textNegationPhrases force the extracted-text list empty when present.
var textNegationPhrases = []string{
	"non c'è testo",
	"non è presente testo",
	"non è visibile alcun testo",
	"nessun testo visibile",
	"nessun testo",
	"senza testo",
	"no visible text",
	"no text visible",
	"no readable text",
	"no text is visible",
}

// tagTranslations maps foreign-vocabulary tags to canonical tags for the
// normalizer. Unmapped tags pass through unchanged.
var tagTranslations = map[string]string{
	"cibo":       "food",
	"natura":     "nature",
	"persone":    "people",
	"documento":  "document",
	"veicolo":    "vehicle",
	"interno":    "indoor",
	"esterno":    "outdoor",
	"città":      "city",
	"viaggio":    "travel",
	"tramonto":   "sunset",
	"spiaggia":   "beach",
	"montagna":   "mountain",
	"famiglia":   "family",
	"amici":      "friends",
	"festa":      "party",
	"cena":       "dinner",
	"moderno":    "modern",
	"luminoso":   "bright",
	"tecnologia": "technology",
	"arte":       "art",
	"notte":      "night",
	"estate":     "summer",
	"inverno":    "winter",
	"mare":       "sea",
	"sorriso":    "smile",
}
