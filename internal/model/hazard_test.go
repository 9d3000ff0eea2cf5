package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHazardListUnmarshalArray(t *testing.T) {
	data := []byte(`[
		{"title": "Working at height", "beforeTotal": "16"},
		{"title": "Silica dust", "beforeTotal": "12"}
	]`)

	var list HazardList
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Working at height", list[0].Title)
	assert.Equal(t, "12", list[1].BeforeTotal)
}

func TestHazardListUnmarshalSingleObject(t *testing.T) {
	data := []byte(`{
		"title": "Manual handling",
		"whoMightBeHarmed": "Operatives",
		"controlMeasures": [{"description": "Mechanical lifting aids"}]
	}`)

	var list HazardList
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Manual handling", list[0].Title)
	require.Len(t, list[0].ControlMeasures, 1)
	assert.Equal(t, "Mechanical lifting aids", list[0].ControlMeasures[0].Description)
}

func TestHazardListUnmarshalNull(t *testing.T) {
	var list HazardList
	require.NoError(t, json.Unmarshal([]byte(`null`), &list))
	assert.Nil(t, list)
}

func TestHazardListUnmarshalInvalid(t *testing.T) {
	var list HazardList
	assert.Error(t, json.Unmarshal([]byte(`"not a hazard"`), &list))
}

func TestHazardListSingleAndArrayDecodeEqual(t *testing.T) {
	single := []byte(`{"hazards": {"title": "Noise", "beforeTotal": "9"}}`)
	array := []byte(`{"hazards": [{"title": "Noise", "beforeTotal": "9"}]}`)

	var docSingle, docArray ReportDocument
	require.NoError(t, json.Unmarshal(single, &docSingle))
	require.NoError(t, json.Unmarshal(array, &docArray))
	assert.Equal(t, docArray, docSingle)
}
