package graph_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/social-data-provider/internal/graph"
)

func TestTime_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "graph layout",
			input: `"2024-05-01T12:30:00+0000"`,
			want:  time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			input: `"2024-05-01T12:30:00Z"`,
			want:  time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			name:  "null",
			input: `null`,
		},
		{
			name:    "garbage",
			input:   `"yesterday"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got graph.Time
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %v", got.Time)
		})
	}
}

func TestTime_MarshalJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(graph.Time{Time: time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-05-01T12:30:00Z"`, string(b))

	b, err = json.Marshal(graph.Time{})
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(b))
}

func TestError_Is(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, &graph.Error{Code: 190}, graph.ErrInvalidToken)
	assert.ErrorIs(t, &graph.Error{StatusCode: 401}, graph.ErrInvalidToken)
	assert.NotErrorIs(t, &graph.Error{Code: 100, StatusCode: 400}, graph.ErrInvalidToken)
	assert.Equal(t, "fallback", (&graph.Error{Message: "fallback"}).UserFacingMessage())
}
