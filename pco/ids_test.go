package pco

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type teamKind struct{}

func (teamKind) Kind() string { return "Team" }

func TestID_JSON(t *testing.T) {
	var ids []ID
	require.NoError(t, json.Unmarshal([]byte(`["12", 34, null]`), &ids))
	assert.Equal(t, []ID{12, 34, 0}, ids)

	b, err := json.Marshal(ID(56))
	require.NoError(t, err)
	assert.Equal(t, `"56"`, string(b))

	var bad ID
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &bad))
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.March, 9)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-09"`, string(b))

	var got Date
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, got.Equal(d.Time))

	var empty struct {
		D *Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d": null}`), &empty))
	assert.Nil(t, empty.D)

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestRef_Unmarshal(t *testing.T) {
	var ref Ref[teamKind]
	require.NoError(t, json.Unmarshal([]byte(`{"type": "Team", "id": "4"}`), &ref))
	assert.Equal(t, ID(4), ref.ID)
	assert.Equal(t, Identifier{Type: "Team", ID: 4}, ref.Identifier())

	err := json.Unmarshal([]byte(`{"type": "Person", "id": "4"}`), &ref)
	var kindErr *KindError
	require.True(t, errors.As(err, &kindErr))
	assert.Equal(t, "Team", kindErr.Want)
	assert.Equal(t, "Person", kindErr.Got)
}

func TestRelationship_RoundTrip(t *testing.T) {
	b, err := json.Marshal(map[string]Relationship{
		"one":  One("Team", 1),
		"many": Many("Person", 2, 3),
		"none": {ToMany: true},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"one": {"data": {"type": "Team", "id": "1"}},
		"many": {"data": [{"type": "Person", "id": "2"}, {"type": "Person", "id": "3"}]},
		"none": {"data": []}
	}`, string(b))

	var rels map[string]Relationship
	require.NoError(t, json.Unmarshal(b, &rels))
	assert.False(t, rels["one"].ToMany)
	assert.True(t, rels["many"].ToMany)
	assert.True(t, rels["none"].Empty())
}
