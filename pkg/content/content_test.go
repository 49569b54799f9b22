package content

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		wantIntro string
		wantItems []string
	}{
		{
			name:      "intro followed by numbered list",
			answer:    "Basismerkmale\n1. Bremsen\n2. Sicherheitsgurt",
			wantIntro: "Basismerkmale\n",
			wantItems: []string{"1. Bremsen", "2. Sicherheitsgurt"},
		},
		{
			name:      "no list markers",
			answer:    "Erste Zeile\nZweite Zeile",
			wantIntro: "Erste Zeile\nZweite Zeile\n",
			wantItems: nil,
		},
		{
			name:      "html line breaks",
			answer:    "Einleitung<br>- erstens<br/>- zweitens",
			wantIntro: "Einleitung\n",
			wantItems: []string{"- erstens", "- zweitens"},
		},
		{
			name:      "continuation line after first marker becomes item",
			answer:    "1. Bremsen\nmüssen immer funktionieren\n2. Gurte",
			wantItems: []string{"1. Bremsen", "müssen immer funktionieren", "2. Gurte"},
		},
		{
			name:      "single character line is not a marker",
			answer:    "A\n1) eins",
			wantIntro: "A\n",
			wantItems: []string{"1) eins"},
		},
		{
			name:      "digit without separator is not a marker",
			answer:    "3 Gründe sprechen dafür",
			wantIntro: "3 Gründe sprechen dafür\n",
		},
		{
			name:      "bullet markers without intro",
			answer:    "• eins\n• zwei",
			wantItems: []string{"• eins", "• zwei"},
		},
		{
			name:      "blank lines are dropped",
			answer:    "Intro\n\n\n1. eins\n\n2. zwei",
			wantIntro: "Intro\n",
			wantItems: []string{"1. eins", "2. zwei"},
		},
		{
			name:   "empty answer",
			answer: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse("Frage", tt.answer)
			if got.Question != "Frage" {
				t.Errorf("Question = %q, want %q", got.Question, "Frage")
			}
			if got.Intro != tt.wantIntro {
				t.Errorf("Intro = %q, want %q", got.Intro, tt.wantIntro)
			}
			if !reflect.DeepEqual(got.Items, tt.wantItems) {
				t.Errorf("Items = %v, want %v", got.Items, tt.wantItems)
			}
		})
	}
}

func TestParseNeverLeavesListMode(t *testing.T) {
	got := Parse("Frage", "Einleitung\n1. eins\nEin Satz ohne Marker\n2. zwei")
	if got.Intro != "Einleitung\n" {
		t.Errorf("Intro = %q, want %q", got.Intro, "Einleitung\n")
	}
	want := []string{"1. eins", "Ein Satz ohne Marker", "2. zwei"}
	if !reflect.DeepEqual(got.Items, want) {
		t.Errorf("Items = %v, want %v", got.Items, want)
	}
}
