package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	c := New()

	c.ObserveRequest(OperationSignup, "ok")
	c.ObserveRequest(OperationSignup, "ok")
	c.ObserveRequest(OperationSignup, "full")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requests.WithLabelValues(OperationSignup, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues(OperationSignup, "full")))
}

func TestObserveRoster(t *testing.T) {
	c := New()

	c.ObserveRoster("Chess Club", 2, 12)
	c.ObserveRoster("Chess Club", 3, 12)
	c.ObserveRoster("Art Club", 0, 15)

	expected := `
# HELP activities_roster_size Current number of participants per activity.
# TYPE activities_roster_size gauge
activities_roster_size{activity="Art Club"} 0
activities_roster_size{activity="Chess Club"} 3
# HELP activities_max_participants Configured capacity per activity.
# TYPE activities_max_participants gauge
activities_max_participants{activity="Art Club"} 15
activities_max_participants{activity="Chess Club"} 12
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected),
		"activities_roster_size", "activities_max_participants"))
}

func TestRegistryIncludesRuntimeCollectors(t *testing.T) {
	c := New()

	families, err := c.Registry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
}
