package project

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechListUnmarshalArray(t *testing.T) {
	var tech TechList
	require.NoError(t, json.Unmarshal([]byte(`["React", "Go", "PostgreSQL"]`), &tech))
	assert.Equal(t, TechList{"React", "Go", "PostgreSQL"}, tech)
}

func TestTechListUnmarshalCSVString(t *testing.T) {
	var tech TechList
	require.NoError(t, json.Unmarshal([]byte(`"React, Go"`), &tech))
	assert.Equal(t, TechList{"React", "Go"}, tech)
}

func TestTechListUnmarshalDropsEmptyTags(t *testing.T) {
	var tech TechList
	require.NoError(t, json.Unmarshal([]byte(`"React,, Go ,"`), &tech))
	assert.Equal(t, TechList{"React", "Go"}, tech)

	require.NoError(t, json.Unmarshal([]byte(`[" React ", "", "Go"]`), &tech))
	assert.Equal(t, TechList{"React", "Go"}, tech)
}

func TestTechListUnmarshalRejectsOtherTypes(t *testing.T) {
	var tech TechList
	assert.Error(t, json.Unmarshal([]byte(`42`), &tech))
	assert.Error(t, json.Unmarshal([]byte(`{"a": 1}`), &tech))
}

func TestTechListMarshalNilAsEmptyArray(t *testing.T) {
	var tech TechList
	encoded, err := json.Marshal(tech)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(encoded))
}

func TestTechListStorageRoundTrip(t *testing.T) {
	cases := []TechList{
		{},
		{"React"},
		{"React", "Go", "PostgreSQL"},
		{"C++", "Node.js", `tag "quoted"`, "comma, inside"},
	}

	for _, original := range cases {
		stored, err := original.Serialize()
		require.NoError(t, err)

		parsed, err := ParseTechList(stored)
		require.NoError(t, err)
		assert.Equal(t, original, parsed)
	}
}

func TestParseTechListEmptyColumn(t *testing.T) {
	parsed, err := ParseTechList("")
	require.NoError(t, err)
	assert.Equal(t, TechList{}, parsed)

	parsed, err = ParseTechList("null")
	require.NoError(t, err)
	assert.Equal(t, TechList{}, parsed)
}

func TestParseTechListCorruptColumn(t *testing.T) {
	_, err := ParseTechList("{not json")
	assert.Error(t, err)
}
