package analysis

import "testing"

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "foreign tags mapped",
			input:    []string{"cibo", "natura", "persone"},
			expected: []string{"food", "nature", "people"},
		},
		{
			name:     "lookup is case insensitive",
			input:    []string{"Cibo", "NATURA"},
			expected: []string{"food", "nature"},
		},
		{
			name:     "unmapped tags pass through trimmed",
			input:    []string{"  skyline  ", "Duomo"},
			expected: []string{"skyline", "Duomo"},
		},
		{
			name:     "order preserved no dedup",
			input:    []string{"cibo", "food", "cibo"},
			expected: []string{"food", "food", "food"},
		},
		{
			name:     "nil stays nil",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("NormalizeTags(%v) = %v, want %v", tt.input, got, tt.expected)
			}
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("NormalizeTags(%v)[%d] = %q, want %q", tt.input, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestNormalizeTagsIdempotent(t *testing.T) {
	canonical := []string{"food", "table", "modern", "bright"}
	got := NormalizeTags(canonical)
	if len(got) != len(canonical) {
		t.Fatalf("NormalizeTags(%v) = %v", canonical, got)
	}
	for i := range canonical {
		if got[i] != canonical[i] {
			t.Errorf("already-canonical tag changed: %q -> %q", canonical[i], got[i])
		}
	}
}
