package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleStage_IsActive(t *testing.T) {
	t.Parallel()

	active := []LifecycleStage{StageActive, StageInProgress, StageObservation, StageIntermittent, StagePendingClosure}
	for _, s := range active {
		assert.True(t, s.IsActive(), s)
	}
	for _, s := range []LifecycleStage{StageResolved, StageFalsePositive, "Cerrada", ""} {
		assert.False(t, s.IsActive(), s)
	}
}

func TestIncidentRecord_CountsAsIndependentActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		record   IncidentRecord
		expected bool
	}{
		{
			name:     "active without parent",
			record:   IncidentRecord{LifecycleStage: StageActive, Failure: &FailureDetail{}},
			expected: true,
		},
		{
			name:     "active linked by wan1 parent",
			record:   IncidentRecord{LifecycleStage: StageActive, Failure: &FailureDetail{Wan1MassiveIncidentID: "12"}},
			expected: false,
		},
		{
			name:     "active flagged massive",
			record:   IncidentRecord{LifecycleStage: StageInProgress, Failure: &FailureDetail{IsMassive: true}},
			expected: false,
		},
		{
			name:     "resolved",
			record:   IncidentRecord{LifecycleStage: StageResolved, Failure: &FailureDetail{}},
			expected: false,
		},
		{
			name:     "active degradation",
			record:   IncidentRecord{LifecycleStage: StageActive, Degradation: &DegradationDetail{}},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.record.CountsAsIndependentActive())
		})
	}
}

func TestFlexibleID_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var row struct {
		A FlexibleID `json:"a"`
		B FlexibleID `json:"b"`
		C FlexibleID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"L_123","b":4567,"c":null}`), &row))
	assert.Equal(t, FlexibleID("L_123"), row.A)
	assert.Equal(t, FlexibleID("4567"), row.B)
	assert.Equal(t, FlexibleID(""), row.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a":{}}`), &row))
}
