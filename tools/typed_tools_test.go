package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleListPlans(t *testing.T) {
	pc, _, fake := newTestClient(t, map[string]string{
		"GET /services/v2/service_types/5/plans": `{"data": [
			{"type": "Plan", "id": "10", "attributes": {"title": "Easter"}},
			{"type": "Plan", "id": "11", "attributes": {"title": "Pentecost"}}
		], "links": {}}`,
	})

	res, err := handleListPlans(context.Background(), newRequest(map[string]any{
		"service_type_id": "5",
		"filter":          "future",
		"order":           "-sort_date",
		"include":         "plan_times, series",
		"limit":           "1",
	}), pc.Services)
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))
	text := resultText(t, res)
	assert.Contains(t, text, "Easter")
	assert.NotContains(t, text, "Pentecost")

	q := fake.last().Query
	assert.Equal(t, "future", q.Get("filter"))
	assert.Equal(t, "-sort_date", q.Get("order"))
	assert.Equal(t, "plan_times,series", q.Get("include"))
}

func TestHandleListPlans_InvalidInput(t *testing.T) {
	pc, _, fake := newTestClient(t, nil)

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing id", map[string]any{}, "service_type_id is required"},
		{"bad id", map[string]any{"service_type_id": "abc"}, "invalid service_type_id"},
		{"bad limit", map[string]any{"service_type_id": "5", "limit": "many"}, "invalid limit"},
		{"bad filter", map[string]any{"service_type_id": "5", "filter": "someday"}, "invalid options"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := handleListPlans(context.Background(), newRequest(tt.args), pc.Services)
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, resultText(t, res), tt.want)
		})
	}
	assert.Equal(t, 0, fake.count())
}

func TestHandleListTeams(t *testing.T) {
	pc, _, fake := newTestClient(t, map[string]string{
		"GET /services/v2/teams": `{"data": [{"type": "Team", "id": "1", "attributes": {"name": "Band"}}], "links": {}}`,
	})

	res, err := handleListTeams(context.Background(), newRequest(map[string]any{"name": "Band", "include": "team_leaders"}), pc.Services)
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))
	assert.Contains(t, resultText(t, res), "Band")

	q := fake.last().Query
	assert.Equal(t, "Band", q.Get("where[name]"))
	assert.Equal(t, "team_leaders", q.Get("include"))
}

func TestHandleListGroupMemberships(t *testing.T) {
	pc, _, fake := newTestClient(t, map[string]string{
		"GET /groups/v2/groups/3/memberships": `{"data": [{"type": "Membership", "id": "8", "attributes": {"role": "leader"}}], "links": {}}`,
	})

	res, err := handleListGroupMemberships(context.Background(), newRequest(map[string]any{"group_id": "3", "role": "leader"}), pc.Groups)
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))
	assert.Contains(t, resultText(t, res), "leader")

	q := fake.last().Query
	assert.Equal(t, "leader", q.Get("where[role]"))
	assert.Equal(t, "person", q.Get("include"))

	res, err = handleListGroupMemberships(context.Background(), newRequest(map[string]any{}), pc.Groups)
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleSearchPeople(t *testing.T) {
	pc, _, fake := newTestClient(t, map[string]string{
		"GET /people/v2/people": `{"data": [{"type": "Person", "id": "1", "attributes": {"first_name": "Ann"}}], "links": {}}`,
	})

	res, err := handleSearchPeople(context.Background(), newRequest(map[string]any{"query": "ann@example.com", "status": "active"}), pc.People)
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))
	assert.Contains(t, resultText(t, res), "Ann")

	q := fake.last().Query
	assert.Equal(t, "ann@example.com", q.Get("where[search_name_or_email_or_phone_number]"))
	assert.Equal(t, "active", q.Get("where[status]"))
	assert.Equal(t, "emails,phone_numbers", q.Get("include"))

	res, err = handleSearchPeople(context.Background(), newRequest(map[string]any{}), pc.People)
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleGetPerson(t *testing.T) {
	pc, _, fake := newTestClient(t, map[string]string{
		"GET /people/v2/people/1": `{"data": {"type": "Person", "id": "1", "attributes": {"first_name": "Ann"}}}`,
	})

	res, err := handleGetPerson(context.Background(), newRequest(map[string]any{"id": "1", "include": "emails"}), pc.People)
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))
	assert.Contains(t, resultText(t, res), "Ann")
	assert.Equal(t, "emails", fake.last().Query.Get("include"))

	res, err = handleGetPerson(context.Background(), newRequest(map[string]any{"id": "2"}), pc.People)
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "HTTP 404")
}
