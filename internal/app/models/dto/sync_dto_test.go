package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalFloatStates(t *testing.T) {
	var in ItemGradeInput
	require.NoError(t, json.Unmarshal([]byte(`{"studentId":"a1","itemId":"i1","courseId":"c1"}`), &in))
	assert.False(t, in.Value.Set, "absent field must not count as set")

	require.NoError(t, json.Unmarshal([]byte(`{"studentId":"a1","itemId":"i1","courseId":"c1","value":null}`), &in))
	assert.True(t, in.Value.Set)
	assert.Nil(t, in.Value.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"studentId":"a1","itemId":"i1","courseId":"c1","value":7.5}`), &in))
	assert.True(t, in.Value.Set)
	require.NotNil(t, in.Value.Value)
	assert.Equal(t, 7.5, *in.Value.Value)
}

func TestOptionalFloatRejectsNonNumber(t *testing.T) {
	var in ItemGradeInput
	err := json.Unmarshal([]byte(`{"studentId":"a1","itemId":"i1","courseId":"c1","value":"seven"}`), &in)
	require.Error(t, err)
}

func TestItemGradeInputCandidate(t *testing.T) {
	var in ItemGradeInput
	require.NoError(t, json.Unmarshal([]byte(`{"studentId":"a1","itemId":"i1","courseId":"c1","value":null}`), &in))

	cand := in.Candidate()
	assert.Equal(t, "a1", cand.StudentID)
	assert.Equal(t, "i1", cand.ItemID)
	assert.Equal(t, "c1", cand.CourseID)
	assert.True(t, cand.ValueSet)
	assert.Nil(t, cand.Value)
}
