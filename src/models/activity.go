package models

// Activity กิจกรรมชมรม
type Activity struct {
	Description     string   `json:"description" validate:"required" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string   `json:"schedule" validate:"required" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int      `json:"max_participants" validate:"gt=0" example:"12"`
	Participants    []string `json:"participants" validate:"unique,dive,required,email" example:"michael@mergington.edu,daniel@mergington.edu"`
}

// SpotsLeft returns how many more participants fit in the roster.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Clone returns a copy that shares no memory with a.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
