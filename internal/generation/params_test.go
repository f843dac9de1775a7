package generation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParamsValid(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())
	assert.Equal(t, 0.6, p.Roughness)
	assert.Equal(t, 0.35, p.WaterLevel)
	assert.Equal(t, 8, p.CityCount)
	assert.Equal(t, 4, p.CastleCount)
	assert.Equal(t, 4, p.LakeCount)
	assert.Equal(t, 3, p.ShipCount)
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		key  string
		v    float64
	}{
		{"roughness too high", "roughness", 2},
		{"water below floor", "water_level", 0.05},
		{"no cities", "city_count", 0},
		{"too many ships", "ship_count", 11},
		{"nan vegetation", "vegetation", math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			require.True(t, p.Set(tt.key, tt.v))
			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestClamp(t *testing.T) {
	p := Params{Roughness: 9, Vegetation: -1, HillDensity: math.NaN(), WaterLevel: 0, CityCount: 100, CastleCount: -3}
	c := p.Clamp()
	require.NoError(t, c.Validate())
	assert.Equal(t, 1.5, c.Roughness)
	assert.Equal(t, 0.0, c.Vegetation)
	assert.Equal(t, 0.3, c.HillDensity)
	assert.Equal(t, 0.1, c.WaterLevel)
	assert.Equal(t, 30, c.CityCount)
	assert.Equal(t, 0, c.CastleCount)
}

func TestSetRoundsIntegers(t *testing.T) {
	p := DefaultParams()
	assert.True(t, p.Set("lake_count", 6.6))
	assert.Equal(t, 7, p.LakeCount)
	assert.False(t, p.Set("dragons", 1))
}

func TestControlsCopy(t *testing.T) {
	c := Controls()
	require.Len(t, c, 8)
	c[0].Max = 100
	assert.Equal(t, 1.5, Controls()[0].Max)
}
