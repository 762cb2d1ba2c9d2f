package activities

import (
	"fmt"
	"slices"

	"mergington-activities/src/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateCatalog ตรวจ seed catalog ก่อนเริ่ม registry
func validateCatalog(catalog map[string]models.Activity) error {
	for name, a := range catalog {
		if name == "" {
			return fmt.Errorf("activity with empty name")
		}
		if err := validate.Struct(a); err != nil {
			return fmt.Errorf("activity %q: %w", name, err)
		}
		if len(a.Participants) > a.MaxParticipants {
			return fmt.Errorf("activity %q: %d participants exceed capacity %d",
				name, len(a.Participants), a.MaxParticipants)
		}
	}
	return nil
}

func cloneCatalog(catalog map[string]models.Activity) map[string]*models.Activity {
	out := make(map[string]*models.Activity, len(catalog))
	for name, a := range catalog {
		c := a.Clone()
		out[name] = &c
	}
	return out
}

// removeParticipant ลบ email ออกโดยคงลำดับของคนที่เหลือ
func removeParticipant(participants []string, email string) ([]string, bool) {
	i := slices.Index(participants, email)
	if i < 0 {
		return participants, false
	}
	return slices.Delete(participants, i, i+1), true
}
