package controllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWorkingHoursItems(t *testing.T) {
	payload := new(workingHourPayload)
	require.NoError(t, json.Unmarshal([]byte(`{
		"items": [{"weekday": 1, "start_time": "09:00", "end_time": "13:00"}]
	}`), payload))

	items := normalizeWorkingHours(payload)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Weekday)
	assert.Equal(t, "09:00", items[0].StartTime)
}

func TestNormalizeWorkingHoursDays(t *testing.T) {
	payload := new(workingHourPayload)
	require.NoError(t, json.Unmarshal([]byte(`{
		"days": [
			{"weekday": 3, "ranges": [
				{"start": "09:00", "end": "13:00"},
				{"start": "15:00", "end": "19:00"}
			]}
		]
	}`), payload))

	items := normalizeWorkingHours(payload)
	require.Len(t, items, 2)
	assert.Equal(t, "15:00", items[1].StartTime)
	assert.Equal(t, "19:00", items[1].EndTime)
}

func TestNormalizeWorkingHoursUnknownShape(t *testing.T) {
	payload := new(workingHourPayload)
	require.NoError(t, json.Unmarshal([]byte(`{"week": []}`), payload))
	assert.Nil(t, normalizeWorkingHours(payload))
}

func TestValidateWorkingHours(t *testing.T) {
	cases := []struct {
		name  string
		items []workingHourItem
		want  string
	}{
		{
			name:  "nil payload",
			items: nil,
			want:  "Invalid payload. Send {items:[...]} or {days:[...]}",
		},
		{
			name:  "empty template is fine",
			items: []workingHourItem{},
			want:  "",
		},
		{
			name: "valid split shifts",
			items: []workingHourItem{
				{Weekday: 3, StartTime: "09:00", EndTime: "13:00"},
				{Weekday: 3, StartTime: "15:00", EndTime: "19:00"},
			},
			want: "",
		},
		{
			name:  "weekday out of range",
			items: []workingHourItem{{Weekday: 7, StartTime: "09:00", EndTime: "13:00"}},
			want:  "weekday must be between 0 and 6",
		},
		{
			name:  "bad time format",
			items: []workingHourItem{{Weekday: 1, StartTime: "9:00", EndTime: "13:00"}},
			want:  "Invalid time (HH:MM format)",
		},
		{
			name:  "start not before end",
			items: []workingHourItem{{Weekday: 1, StartTime: "13:00", EndTime: "13:00"}},
			want:  "A range has start >= end",
		},
		{
			name: "overlapping ranges same weekday",
			items: []workingHourItem{
				{Weekday: 5, StartTime: "09:00", EndTime: "13:00"},
				{Weekday: 5, StartTime: "12:30", EndTime: "16:00"},
			},
			want: "Overlapping ranges on weekday=5",
		},
		{
			name: "touching ranges do not overlap",
			items: []workingHourItem{
				{Weekday: 5, StartTime: "09:00", EndTime: "13:00"},
				{Weekday: 5, StartTime: "13:00", EndTime: "16:00"},
			},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validateWorkingHours(tc.items))
		})
	}
}
