package analysis

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractQuotedText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "quoted sign text",
			input:    `Sul cartello si legge "APERTO 24H".`,
			expected: []string{"APERTO 24H"},
		},
		{
			name:     "multiple quotes deduplicated in order",
			input:    `Si legge "MENU" in alto e "MENU" in basso, poi "PIZZA".`,
			expected: []string{"MENU", "PIZZA"},
		},
		{
			name:     "label prefixed without quotes",
			input:    `Il cartello dice benvenuti a Roma. Altro testo segue.`,
			expected: []string{"benvenuti a Roma"},
		},
		{
			name:     "negation forces empty despite quotes",
			input:    `C'è un'insegna con "BAR" ma non c'è testo leggibile. Nessun testo visibile.`,
			expected: nil,
		},
		{
			name:     "no text at all",
			input:    "Un prato verde sotto il sole.",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Extract(tt.input)
			if len(record.ExtractedText) != len(tt.expected) {
				t.Fatalf("ExtractedText = %v, want %v", record.ExtractedText, tt.expected)
			}
			for i, want := range tt.expected {
				if record.ExtractedText[i] != want {
					t.Errorf("ExtractedText[%d] = %q, want %q", i, record.ExtractedText[i], want)
				}
			}
		})
	}
}

func TestExtractCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "food outranks people",
			input:    "Una pizza fumante sul tavolo mentre due persone sorridono.",
			expected: CategoryFood,
		},
		{
			name:     "document outranks indoor",
			input:    "Una ricevuta appoggiata sul tavolo della stanza.",
			expected: CategoryDocument,
		},
		{
			name:     "nature",
			input:    "Un sentiero tra gli alberi del bosco.",
			expected: CategoryNature,
		},
		{
			name:     "vehicle",
			input:    "Una macchina rossa parcheggiata.",
			expected: CategoryVehicle,
		},
		{
			name:     "people",
			input:    "Una famiglia riunita per la foto.",
			expected: CategoryPeople,
		},
		{
			name:     "urban",
			input:    "Una strada affollata al centro.",
			expected: CategoryUrban,
		},
		{
			name:     "indoor",
			input:    "La cucina è ordinata e pulita.",
			expected: CategoryIndoor,
		},
		{
			name:     "no keyword matches",
			input:    "Qualcosa di indefinito.",
			expected: CategoryOther,
		},
		{
			name:     "whole word matching avoids partial hits",
			input:    "Il terreno è sconnesso.", // "treno" should not match inside "terreno"
			expected: CategoryOther,
		},
		{
			name:     "english keywords classify too",
			input:    "A delicious meal on the table.",
			expected: CategoryFood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Extract(tt.input)
			if record.SceneCategory != tt.expected {
				t.Errorf("SceneCategory = %q, want %q", record.SceneCategory, tt.expected)
			}
		})
	}
}

func TestExtractCategoryClosedSet(t *testing.T) {
	inputs := []string{
		"",
		"Testo qualunque senza parole chiave.",
		"Una pizza in una strada con tre persone e un treno.",
		strings.Repeat("montagna cucina documento ", 50),
	}

	for _, input := range inputs {
		record := Extract(input)
		if !ValidCategory(record.SceneCategory) {
			t.Errorf("Extract(%q) produced category %q outside the closed set", input, record.SceneCategory)
		}
	}
}

func TestExtractFaces(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "digit form",
			input:    "Ci sono 3 persone davanti alla fontana.",
			expected: 3,
		},
		{
			name:     "word number",
			input:    "Due persone sorridono.",
			expected: 2,
		},
		{
			name:     "word number singular",
			input:    "Una persona cammina sola.",
			expected: 1,
		},
		{
			name:     "english word number",
			input:    "Three people are standing near the car.",
			expected: 3,
		},
		{
			name:     "negation overrides digit match",
			input:    "Si vedono 4 persone riflesse, ma non ci sono persone visibili nella foto.",
			expected: 0,
		},
		{
			name:     "plain negation",
			input:    "Non ci sono persone visibili nella foto.",
			expected: 0,
		},
		{
			name:     "no mention",
			input:    "Un tavolo con una lampada.",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Extract(tt.input)
			if record.DetectedFaces != tt.expected {
				t.Errorf("DetectedFaces = %d, want %d", record.DetectedFaces, tt.expected)
			}
		})
	}
}

func TestExtractObjects(t *testing.T) {
	record := Extract("Un tavolo con sopra un libro, un telefono e una tazza, accanto a una sedia e un tavolo più piccolo.")

	want := []string{"table", "chair", "book", "phone", "cup"}
	if len(record.DetectedObjects) != len(want) {
		t.Fatalf("DetectedObjects = %v, want %v", record.DetectedObjects, want)
	}
	for i, obj := range want {
		if record.DetectedObjects[i] != obj {
			t.Errorf("DetectedObjects[%d] = %q, want %q", i, record.DetectedObjects[i], obj)
		}
	}
}

func TestExtractObjectsCapped(t *testing.T) {
	input := "tavolo sedia finestra porta macchina albero fiore cane gatto libro telefono computer bicicletta lampada quadro orologio"
	record := Extract(input)
	if len(record.DetectedObjects) > 12 {
		t.Errorf("DetectedObjects has %d entries, cap is 12", len(record.DetectedObjects))
	}
}

func TestExtractTags(t *testing.T) {
	record := Extract("Una cucina moderna e luminosa con un tavolo, una sedia e una lampada di design.")

	if len(record.Tags) > 8 {
		t.Fatalf("Tags has %d entries, cap is 8", len(record.Tags))
	}
	if len(record.Tags) == 0 || record.Tags[0] != CategoryIndoor {
		t.Fatalf("Tags = %v, want category %q first", record.Tags, CategoryIndoor)
	}

	seen := map[string]bool{}
	for _, tag := range record.Tags {
		if seen[tag] {
			t.Errorf("duplicate tag %q in %v", tag, record.Tags)
		}
		seen[tag] = true
	}
	if !seen["modern"] || !seen["bright"] {
		t.Errorf("Tags = %v, want semantic hits modern and bright", record.Tags)
	}
}

func TestExtractTotality(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"x",
		strings.Repeat("Una lunga descrizione di una scena complessa con molte persone e oggetti. ", 100),
		// Multi-byte runes straddling both length caps.
		strings.Repeat("a", 1999) + "è lunga",
		strings.Repeat("b", 199) + "à e poi altro.",
		strings.Repeat("La città è così però già più. ", 100),
	}

	for _, input := range inputs {
		record := Extract(input)
		if record.DescriptionFull == "" {
			t.Errorf("Extract(%q): empty DescriptionFull", input)
		}
		if len(record.DescriptionFull) > 2000 {
			t.Errorf("Extract: DescriptionFull %d chars, cap is 2000", len(record.DescriptionFull))
		}
		if len(record.DescriptionShort) > 200 {
			t.Errorf("Extract: DescriptionShort %d chars, cap is 200", len(record.DescriptionShort))
		}
		if !utf8.ValidString(record.DescriptionFull) {
			t.Errorf("Extract: DescriptionFull is not valid UTF-8 after truncation: trailing bytes %q", record.DescriptionFull[len(record.DescriptionFull)-4:])
		}
		if !utf8.ValidString(record.DescriptionShort) {
			t.Errorf("Extract: DescriptionShort is not valid UTF-8 after truncation: trailing bytes %q", record.DescriptionShort[len(record.DescriptionShort)-4:])
		}
		if record.Confidence < 0.0 || record.Confidence > 0.90 {
			t.Errorf("Extract(%q): confidence %.2f out of [0, 0.90]", input, record.Confidence)
		}
		for _, text := range record.ExtractedText {
			if text == "" {
				t.Errorf("Extract(%q): empty string in ExtractedText", input)
			}
		}
	}
}

func TestExtractConfidenceCeiling(t *testing.T) {
	// Every bonus at once must still clamp to 0.90.
	input := strings.Repeat("Una scena ricca di dettagli interessanti da osservare. ", 15) +
		`Ci sono 3 persone intorno al tavolo con una sedia, un libro, un telefono, una tazza e una lampada. ` +
		`Sul cartello si legge "BENVENUTI". La stanza è moderna e luminosa.`

	record := Extract(input)
	if record.Confidence != 0.90 {
		t.Errorf("Confidence = %.2f, want ceiling 0.90", record.Confidence)
	}
}

func TestExtractShortDescription(t *testing.T) {
	record := Extract("La prima frase è questa. La seconda frase è molto più lunga e non deve comparire.")
	if record.DescriptionShort != "La prima frase è questa." {
		t.Errorf("DescriptionShort = %q, want first sentence", record.DescriptionShort)
	}
}
