package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedup_KeepsFirstOccurrence(t *testing.T) {
	in := []Character{
		{ID: "1", Name: "Luke"},
		{ID: "2", Name: "Leia"},
		{ID: "1", Name: "Luke (dup)"},
		{ID: "3", Name: "Han"},
		{ID: "2", Name: "Leia (dup)"},
	}

	got := Dedup(in)

	require.Len(t, got, 3)
	assert.Equal(t, "Luke", got[0].Name)
	assert.Equal(t, "Leia", got[1].Name)
	assert.Equal(t, "Han", got[2].Name)
	assert.Len(t, in, 5, "input must not be modified")
}

func TestDedup_Empty(t *testing.T) {
	got := Dedup[Planet](nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEmptyPage(t *testing.T) {
	p := EmptyPage[Starship]()
	assert.Empty(t, p.Items)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.NextCursor)
	assert.False(t, p.HasMore)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "character", want: KindCharacter},
		{in: "people", want: KindCharacter},
		{in: "ships", want: KindStarship},
		{in: "planets", want: KindPlanet},
		{in: "droid", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
