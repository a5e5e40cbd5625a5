package groups

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/jakenesler/planningcenter/pco"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	urls []*url.URL
}

func (r *recorder) first() *url.URL {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.urls[0]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.urls)
}

func newTestApp(t *testing.T, routes map[string]string) (*App, *recorder) {
	t.Helper()
	seen := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.mu.Lock()
		seen.urls = append(seen.urls, r.URL)
		seen.mu.Unlock()
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	c, err := pco.NewClient(srv.URL, &pco.BearerAuth{Token: "tok"}, pco.WithAPIVersions(map[string]string{Name: "2023-07-10"}))
	require.NoError(t, err)
	return New(c), seen
}

func TestGroups_ListWithIncludes(t *testing.T) {
	app, seen := newTestApp(t, map[string]string{
		"/groups/v2/groups": `{
			"data": [{"type": "Group", "id": "1",
				"attributes": {"name": "Young Adults", "created_at": "2023-01-01T00:00:00Z",
					"archived_at": null, "header_image": {"thumbnail": "t.png"}},
				"relationships": {
					"group_type": {"data": {"type": "GroupType", "id": "2"}},
					"location": {"data": {"type": "Location", "id": "3"}},
					"enrollment": {"data": {"type": "Enrollment", "id": "4"}}
				}}],
			"included": [
				{"type": "GroupType", "id": "2", "attributes": {"name": "Small Groups", "position": 1}},
				{"type": "Location", "id": "3", "attributes": {"name": "Cafe", "latitude": "41.88", "longitude": "-87.63"}},
				{"type": "Enrollment", "id": "4", "attributes": {"status": "open", "date_limit": "2024-05-01", "member_limit": 12}}
			]
		}`,
	})

	groups, err := app.Groups.List(context.Background(), &GroupOptions{
		Include: []GroupInclude{IncludeGroupType, IncludeLocation, IncludeEnrollment},
		Order:   "-name",
		Where:   GroupWhere{ArchiveStatus: "not_archived"},
	})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	g := groups[0]
	assert.False(t, g.Attributes.Archived())
	assert.Equal(t, "t.png", g.Attributes.HeaderImage["thumbnail"])
	require.NotNil(t, g.GroupType)
	assert.Equal(t, "Small Groups", g.GroupType.Attributes.Name)
	require.NotNil(t, g.Location)
	lat, err := g.Location.Attributes.Latitude.Float64()
	require.NoError(t, err)
	assert.InDelta(t, 41.88, lat, 0.001)
	require.NotNil(t, g.Enrollment)
	assert.Equal(t, 12, *g.Enrollment.Attributes.MemberLimit)
	assert.Equal(t, "2024-05-01", g.Enrollment.Attributes.DateLimit.String())

	q := seen.first().Query()
	assert.Equal(t, "group_type,location,enrollment", q.Get("include"))
	assert.Equal(t, "not_archived", q.Get("where[archive_status]"))
	assert.Equal(t, "-name", q.Get("order"))
}

func TestGroups_RejectsBadArchiveStatus(t *testing.T) {
	app, seen := newTestApp(t, nil)

	_, err := app.Groups.List(context.Background(), &GroupOptions{Where: GroupWhere{ArchiveStatus: "never"}})
	var valErr *pco.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Contains(t, err.Error(), "must be one of: not_archived only include")
	assert.Zero(t, seen.count())
}

func TestGroups_Memberships(t *testing.T) {
	app, seen := newTestApp(t, map[string]string{
		"/groups/v2/groups/1/memberships": `{
			"data": [{"type": "Membership", "id": "9",
				"attributes": {"role": "leader", "joined_at": "2022-02-02T00:00:00Z"},
				"relationships": {"person": {"data": {"type": "Person", "id": "5"}}}}],
			"included": [{"type": "Person", "id": "5", "attributes": {
				"first_name": "Ann", "created_at": "2020-01-01T00:00:00Z",
				"email_addresses": [
					{"address": "old@example.com", "location": "Home", "primary": false},
					{"address": "ann@example.com", "location": "Work", "primary": true}
				]}}]
		}`,
	})

	members, err := app.Groups.With(1).Memberships.List(context.Background(), &MembershipOptions{
		Include: []MembershipInclude{IncludePerson},
		Where:   MembershipWhere{Role: RoleLeader},
	})
	require.NoError(t, err)
	require.Len(t, members, 1)
	m := members[0]
	assert.Equal(t, RoleLeader, m.Attributes.Role)
	require.NotNil(t, m.Person)
	assert.Equal(t, "ann@example.com", m.Person.Attributes.PrimaryEmail())
	assert.Equal(t, "leader", seen.first().Query().Get("where[role]"))

	_, err = app.Groups.With(0).Memberships.List(context.Background(), nil)
	var missing *pco.MissingParentError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "groups", missing.Parent)
}

func TestGroupTypes_Resources(t *testing.T) {
	app, seen := newTestApp(t, map[string]string{
		"/groups/v2/group_types/2/resources": `{"data": [{"type": "Resource", "id": "6",
			"attributes": {"name": "Guide", "type": "FileResource", "visibility": "members",
				"last_updated": "2024-01-01T00:00:00Z"},
			"relationships": {"created_by": {"data": {"type": "Person", "id": "5"}}}}]}`,
	})

	resources, err := app.GroupTypes.With(2).Resources.List(context.Background(), &ResourceOptions{Order: "-last_updated"})
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, FileResource, resources[0].Attributes.Type)
	assert.Equal(t, pco.ID(5), resources[0].Relationships.CreatedBy.ID)
	assert.Equal(t, "-last_updated", seen.first().Query().Get("order"))
}

func TestPeople_ListWhere(t *testing.T) {
	app, seen := newTestApp(t, map[string]string{
		"/groups/v2/people": `{"data": [{"type": "Person", "id": "5", "attributes": {"first_name": "Ann", "last_name": "Lee"}}]}`,
	})

	people, err := app.People.List(context.Background(), &PeopleOptions{Where: PeopleWhere{LastName: "Lee"}})
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "Ann", people[0].Attributes.FirstName)
	q := seen.first().Query()
	assert.Equal(t, "Lee", q.Get("where[last_name]"))
	assert.Empty(t, q.Get("where[first_name]"))
}

func TestDescribe(t *testing.T) {
	var memberships pco.Descriptor
	for _, d := range Describe() {
		if d.Name == "memberships" && len(d.Parents) == 1 && d.Parents[0] == "groups" {
			memberships = d
		}
	}
	assert.Equal(t, []string{"person"}, memberships.Options.Includes)
	assert.Equal(t, []string{"role"}, memberships.Options.Where)
	assert.Equal(t, []string{"joined_at", "role", "-joined_at", "-role"}, memberships.Options.Orders)
}
