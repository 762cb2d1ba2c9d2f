package seeder

import "mergington-activities/src/models"

// SampleActivities returns a fresh copy of the catalog the registry starts with.
func SampleActivities() map[string]models.Activity {
	return map[string]models.Activity{
		"Baseball Team": {
			Description:     "Join our competitive baseball team and compete in regional tournaments",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		"Basketball Club": {
			Description:     "Play basketball and develop teamwork skills",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"james@mergington.edu", "sophia@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore painting, drawing, and sculpture techniques",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"isabella@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Perform in theatrical productions and develop acting skills",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"lucas@mergington.edu", "ava@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Compete in debate competitions and improve argumentation skills",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"mason@mergington.edu"},
		},
		"Science Club": {
			Description:     "Conduct experiments and explore scientific concepts",
			Schedule:        "Fridays, 3:30 PM - 4:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"ethan@mergington.edu", "charlotte@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
