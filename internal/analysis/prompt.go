package analysis

import (
	"strings"

	"photodiary/internal/prompts"
)

// Placeholders supported in externally managed templates.
const (
	placeholderLocation = "{{location}}"
	placeholderFaces    = "{{faces}}"
	placeholderModel    = "{{model}}"
)

// fallbackPromptTemplate is used when the template store has no active
// default template.
const fallbackPromptTemplate = `Sei un assistente che descrive fotografie personali per un diario.

Osserva attentamente la foto e scrivi una descrizione dettagliata in italiano, in prosa continua, che copra:
1. La scena complessiva e l'ambiente (interno, esterno, natura, città)
2. Le persone presenti: quante sono e cosa stanno facendo
3. Gli oggetti principali visibili
4. Qualsiasi testo leggibile nell'immagine, riportato tra virgolette esattamente come appare
5. Colori, luce e atmosfera generale

Se non ci sono persone visibili, dillo esplicitamente. Se non c'è testo leggibile, dillo esplicitamente.
Scrivi almeno 150 parole. Non usare elenchi puntati né intestazioni.`

// BuildPrompt assembles the instruction text for one request. The active
// template from the store wins over the built-in one; hints replace their
// placeholders, or are appended when the template has none.
func BuildPrompt(store prompts.Store, req AnalysisRequest, model string) string {
	template := fallbackPromptTemplate
	if text, ok := store.ActiveTemplate(); ok {
		template = text
	}

	prompt := template
	appended := []string{}

	if strings.Contains(prompt, placeholderLocation) {
		prompt = strings.ReplaceAll(prompt, placeholderLocation, req.LocationHint)
	} else if req.LocationHint != "" {
		appended = append(appended, "La foto è stata scattata a: "+req.LocationHint+".")
	}

	if strings.Contains(prompt, placeholderFaces) {
		prompt = strings.ReplaceAll(prompt, placeholderFaces, req.FaceHint)
	} else if req.FaceHint != "" {
		appended = append(appended, "Contesto sulle persone: "+req.FaceHint+".")
	}

	prompt = strings.ReplaceAll(prompt, placeholderModel, model)

	if len(appended) > 0 {
		prompt = prompt + "\n\n" + strings.Join(appended, "\n")
	}
	return prompt
}
