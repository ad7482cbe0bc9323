package usecase

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"Special characters stripped", "Code & Coffee!!", "code-coffee"},
		{"Simple title", "Hackathon 2025", "hackathon-2025"},
		{"Extra whitespace", "  Intro   to Go  ", "intro-to-go"},
		{"Already hyphenated", "AI-ML Workshop", "ai-ml-workshop"},
		{"Only special characters", "!!!", "event"},
		{"Mixed case", "ReactJS BootCamp", "reactjs-bootcamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.title)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
