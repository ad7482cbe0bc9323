package usecase

import (
	"reflect"
	"strings"
	"testing"

	eventmodels "github.com/techclub-services/services/event/models"
	"github.com/techclub-services/services/registration/models"
)

func completePayload() *models.Payload {
	return &models.Payload{
		Name:           "Jordan Lee",
		RegistrationNo: "21bcs1234",
		PhoneNumber:    "9876543210",
		Course:         "B.Tech",
		Section:        "A",
		Year:           "3",
		Department:     "CSE",
	}
}

func TestNormalizeRegNo(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"21bcs1234", "21BCS1234"},
		{"  21BCS1234  ", "21BCS1234"},
		{" 21bCs1234 ", "21BCS1234"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeRegNo(tt.in); got != tt.want {
			t.Errorf("NormalizeRegNo(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMissingFieldsComplete(t *testing.T) {
	if missing := MissingFields(completePayload()); len(missing) != 0 {
		t.Errorf("expected no missing fields, got %v", missing)
	}
}

func TestMissingFieldsReportsAllAtOnce(t *testing.T) {
	p := &models.Payload{Name: "Jordan Lee", PhoneNumber: "9876543210"}
	want := []string{"registrationNo", "course", "section", "year", "department"}
	if got := MissingFields(p); !reflect.DeepEqual(got, want) {
		t.Errorf("MissingFields = %v, want %v", got, want)
	}
}

func TestMissingFieldsWhitespaceOnly(t *testing.T) {
	p := completePayload()
	p.Name = "   "
	got := MissingFields(p)
	if !reflect.DeepEqual(got, []string{"name"}) {
		t.Errorf("MissingFields = %v, want [name]", got)
	}
}

func teamEvent(minSize, maxSize int) *eventmodels.Event {
	return &eventmodels.Event{
		EventType: eventmodels.EventTypeHackathon,
		TeamSettings: eventmodels.TeamSettings{
			Enabled:     true,
			MinTeamSize: minSize,
			MaxTeamSize: maxSize,
		},
	}
}

func member(n int) models.TeamMember {
	return models.TeamMember{
		Name:           "Member",
		RegistrationNo: "21BCS000" + string(rune('0'+n)),
		PhoneNumber:    "9876543210",
		Course:         "B.Tech",
	}
}

func TestValidateTeamNameRequired(t *testing.T) {
	p := completePayload()
	p.TeamMembers = []models.TeamMember{member(1)}

	err := ValidateTeam(teamEvent(2, 4), p)
	if err == nil || !strings.Contains(err.Message, "Team name is required") {
		t.Fatalf("expected team name error, got %v", err)
	}
}

func TestValidateTeamSizeBounds(t *testing.T) {
	// Bounds 2..4 count the leader, so 1..3 extra members pass.
	tests := []struct {
		name    string
		members int
		wantErr bool
	}{
		{"below minimum", 0, true},
		{"at minimum", 1, false},
		{"mid range", 2, false},
		{"at maximum", 3, false},
		{"above maximum", 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := completePayload()
			p.TeamName = "Byte Bandits"
			for i := 0; i < tt.members; i++ {
				p.TeamMembers = append(p.TeamMembers, member(i))
			}

			err := ValidateTeam(teamEvent(2, 4), p)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected size error, got nil")
				}
				if !strings.Contains(err.Message, "between 2 and 4") {
					t.Errorf("unexpected message: %q", err.Message)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateTeamDefaultsWhenUnconfigured(t *testing.T) {
	p := completePayload()
	p.TeamName = "Solo Act"

	// No members and no configured bounds: size 1 within default 1..4.
	if err := ValidateTeam(teamEvent(0, 0), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 4; i++ {
		p.TeamMembers = append(p.TeamMembers, member(i))
	}
	if err := ValidateTeam(teamEvent(0, 0), p); err == nil {
		t.Fatal("expected size error for 5 members against default max 4")
	}
}

func TestValidateTeamIncompleteMember(t *testing.T) {
	p := completePayload()
	p.TeamName = "Byte Bandits"
	bad := member(1)
	bad.Course = ""
	p.TeamMembers = []models.TeamMember{bad}

	err := ValidateTeam(teamEvent(2, 4), p)
	if err == nil || !strings.Contains(err.Message, "All team members") {
		t.Fatalf("expected member completeness error, got %v", err)
	}
}
