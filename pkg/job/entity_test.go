package job

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobUnmarshalLenient(t *testing.T) {
	var j Job
	err := json.Unmarshal([]byte(`{"title": "Data Scientist", "description": null, "company": 42, "extra": true}`), &j)
	require.NoError(t, err)

	assert.Equal(t, "Data Scientist", j.Title)
	assert.Equal(t, "", j.Description)
	assert.Equal(t, "", j.Company)
	assert.Equal(t, "", j.Location)
	assert.Equal(t, j.DerivedID(), j.ID)
}

func TestJobUnmarshalKeepsValidID(t *testing.T) {
	id := uuid.New()
	var j Job
	require.NoError(t, json.Unmarshal([]byte(`{"id": "`+id.String()+`", "title": "x"}`), &j))
	assert.Equal(t, id, j.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "not-a-uuid", "title": "x"}`), &j))
	assert.Equal(t, j.DerivedID(), j.ID)
}

func TestJobUnmarshalRejectsNonObject(t *testing.T) {
	var j Job
	assert.Error(t, json.Unmarshal([]byte(`"just a string"`), &j))
}

func TestJobRoundTripThroughJSON(t *testing.T) {
	in := New("Go Developer", "Build services", "Acme", "Remote")
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Job
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestDerivedIDStable(t *testing.T) {
	a := New("t", "d", "c", "l")
	b := New("t", "d", "c", "l")
	c := New("t", "d", "c", "x")
	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.NotEqual(t, uuid.Nil, a.ID)
}

func TestSkillTextAndTexts(t *testing.T) {
	j := New("Data Scientist", "Python", "Acme", "Remote")
	assert.Equal(t, "Data Scientist\nPython", j.SkillText())
	assert.Equal(t, []string{"Data Scientist\nPython", "\n"}, Texts([]Job{j, {}}))
	assert.Empty(t, Texts(nil))
}
