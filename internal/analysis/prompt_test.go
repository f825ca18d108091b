package analysis

import (
	"strings"
	"testing"

	"photodiary/internal/prompts"
)

type stubStore struct {
	text string
}

func (s stubStore) ActiveTemplate() (string, bool) {
	return s.text, s.text != ""
}

func TestBuildPromptFallbackTemplate(t *testing.T) {
	prompt := BuildPrompt(prompts.EmptyStore{}, AnalysisRequest{}, "qwen2.5vl:3b")

	if !strings.Contains(prompt, "descrizione dettagliata") {
		t.Errorf("fallback template not used: %q", prompt)
	}
	if strings.Contains(prompt, "{{") {
		t.Errorf("unreplaced placeholder left in prompt: %q", prompt)
	}
}

func TestBuildPromptPlaceholderSubstitution(t *testing.T) {
	store := stubStore{text: "Descrivi la foto scattata a {{location}}. Persone note: {{faces}}. Modello: {{model}}."}
	req := AnalysisRequest{
		LocationHint: "Firenze",
		FaceHint:     "probabilmente Anna",
	}

	prompt := BuildPrompt(store, req, "test-model")

	want := "Descrivi la foto scattata a Firenze. Persone note: probabilmente Anna. Modello: test-model."
	if prompt != want {
		t.Errorf("prompt = %q, want %q", prompt, want)
	}
}

func TestBuildPromptHintsAppendedWithoutPlaceholders(t *testing.T) {
	store := stubStore{text: "Descrivi la foto."}
	req := AnalysisRequest{
		LocationHint: "Milano",
		FaceHint:     "Luca e Sara",
	}

	prompt := BuildPrompt(store, req, "test-model")

	if !strings.HasPrefix(prompt, "Descrivi la foto.") {
		t.Errorf("template text missing: %q", prompt)
	}
	if !strings.Contains(prompt, "Milano") {
		t.Errorf("location hint not appended: %q", prompt)
	}
	if !strings.Contains(prompt, "Luca e Sara") {
		t.Errorf("face hint not appended: %q", prompt)
	}
}

func TestBuildPromptEmptyHintsNotAppended(t *testing.T) {
	store := stubStore{text: "Descrivi la foto."}
	prompt := BuildPrompt(store, AnalysisRequest{}, "test-model")

	if prompt != "Descrivi la foto." {
		t.Errorf("prompt = %q, want template unchanged", prompt)
	}
}
