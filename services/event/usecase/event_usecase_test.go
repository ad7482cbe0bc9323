package usecase

import "testing"

func TestDisambiguateSlug(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		taken map[string]bool
		want  string
	}{
		{"Free slug kept", "code-coffee", map[string]bool{}, "code-coffee"},
		{"First collision", "code-coffee", map[string]bool{"code-coffee": true}, "code-coffee-1"},
		{"Second collision", "code-coffee", map[string]bool{"code-coffee": true, "code-coffee-1": true}, "code-coffee-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := disambiguateSlug(tt.base, func(candidate string) (bool, error) {
				return tt.taken[candidate], nil
			})
			if err != nil {
				t.Fatalf("disambiguateSlug() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("disambiguateSlug(%q) = %q, want %q", tt.base, got, tt.want)
			}
		})
	}
}

func TestDisambiguateSlugMatchesSlugifyPipeline(t *testing.T) {
	// Two events titled "Code & Coffee!!" end up as code-coffee and
	// code-coffee-1.
	taken := map[string]bool{}
	for i, want := range []string{"code-coffee", "code-coffee-1"} {
		got, err := disambiguateSlug(Slugify("Code & Coffee!!"), func(c string) (bool, error) {
			return taken[c], nil
		})
		if err != nil {
			t.Fatalf("event %d: %v", i, err)
		}
		if got != want {
			t.Errorf("event %d slug = %q, want %q", i, got, want)
		}
		taken[got] = true
	}
}
