package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	c, err := New(v)
	require.NoError(t, err)

	assert.Equal(t, 20, c.Guide.Length)
	assert.Equal(t, "GG", c.Guide.PAM)
	assert.Equal(t, 50.0, c.Scoring.MinScore)
	assert.Equal(t, 10, c.Scoring.Top)
	assert.Equal(t, 4, c.OffTarget.MaxMismatches)
	assert.Equal(t, "Medium", c.OffTarget.MaxRisk)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]any
	}{
		{"zero guide length", map[string]any{"guide.length": 0}},
		{"empty pam", map[string]any{"guide.pam": ""}},
		{"mismatches too high", map[string]any{"offtarget.max-mismatches": 5}},
		{"mismatches zero", map[string]any{"offtarget.max-mismatches": 0}},
		{"bad risk level", map[string]any{"offtarget.max-risk": "extreme"}},
		{"negative workers", map[string]any{"offtarget.workers": -1}},
		{"negative top", map[string]any{"scoring.top": -2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			for k, val := range tc.set {
				v.Set(k, val)
			}
			_, err := New(v)
			assert.Error(t, err)
		})
	}
}

func TestOverride(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("offtarget.max-risk", "High")
	v.Set("scoring.top", 3)

	c, err := New(v)
	require.NoError(t, err)
	assert.Equal(t, "High", c.OffTarget.MaxRisk)
	assert.Equal(t, 3, c.Scoring.Top)
}
