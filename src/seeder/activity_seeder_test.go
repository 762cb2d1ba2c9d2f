package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleActivities(t *testing.T) {
	catalog := SampleActivities()

	assert.Len(t, catalog, 9)
	for name, a := range catalog {
		assert.NotEmpty(t, name)
		assert.LessOrEqual(t, len(a.Participants), a.MaxParticipants, name)
	}

	debate := catalog["Debate Team"]
	assert.Equal(t, 10, debate.MaxParticipants)
	assert.Equal(t, []string{"mason@mergington.edu"}, debate.Participants)
}

func TestSampleActivitiesReturnsFreshCopy(t *testing.T) {
	first := SampleActivities()
	first["Chess Club"].Participants[0] = "changed@mergington.edu"

	second := SampleActivities()
	assert.Equal(t, "michael@mergington.edu", second["Chess Club"].Participants[0])
}
