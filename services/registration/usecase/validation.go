package usecase

import (
	"fmt"
	"strings"

	apperrors "github.com/techclub-services/common/errors"
	eventmodels "github.com/techclub-services/services/event/models"
	"github.com/techclub-services/services/registration/models"
)

// requiredFields are validated all at once; the error lists every missing
// field rather than failing on the first.
var requiredFields = []string{"name", "registrationNo", "phoneNumber", "course", "section", "year", "department"}

// NormalizeRegNo is the de-duplication key normalization: trim + uppercase.
func NormalizeRegNo(regNo string) string {
	return strings.ToUpper(strings.TrimSpace(regNo))
}

// MissingFields returns the names of every required field absent from the
// payload, in declaration order.
func MissingFields(p *models.Payload) []string {
	values := map[string]string{
		"name":           p.Name,
		"registrationNo": p.RegistrationNo,
		"phoneNumber":    p.PhoneNumber,
		"course":         p.Course,
		"section":        p.Section,
		"year":           p.Year,
		"department":     p.Department,
	}

	var missing []string
	for _, field := range requiredFields {
		if strings.TrimSpace(values[field]) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// ValidateTeam enforces team rules for hackathon events with team mode
// enabled: a team name, a team size of 1+len(teamMembers) within the
// configured [min,max] inclusive, and complete member records.
func ValidateTeam(event *eventmodels.Event, p *models.Payload) *apperrors.AppError {
	if strings.TrimSpace(p.TeamName) == "" {
		return apperrors.NewValidation("Team name is required for hackathon registration")
	}

	minSize := event.TeamSettings.MinTeamSize
	if minSize <= 0 {
		minSize = 1
	}
	maxSize := event.TeamSettings.MaxTeamSize
	if maxSize <= 0 {
		maxSize = 4
	}

	teamSize := len(p.TeamMembers) + 1 // +1 for the leader
	if teamSize < minSize || teamSize > maxSize {
		return apperrors.NewValidation(fmt.Sprintf(
			"Team must have between %d and %d members (including team leader)", minSize, maxSize))
	}

	for _, member := range p.TeamMembers {
		if strings.TrimSpace(member.Name) == "" ||
			strings.TrimSpace(member.RegistrationNo) == "" ||
			strings.TrimSpace(member.PhoneNumber) == "" ||
			strings.TrimSpace(member.Course) == "" {
			return apperrors.NewValidation("All team members must have name, registration number, phone, and course")
		}
	}
	return nil
}
