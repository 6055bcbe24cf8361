package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aklein/lobbyscribe/internal/catalog"
	"github.com/aklein/lobbyscribe/internal/domain"
	"github.com/aklein/lobbyscribe/internal/engine"
)

func TestWizardBoundsComeFromCatalog(t *testing.T) {
	e := engine.New(catalog.Definitions())

	spec := rangeSpecFor(e, catalog.MaxPlayers)
	def, ok := catalog.ByID(catalog.MaxPlayers)
	require.True(t, ok)
	assert.Equal(t, def.Spec.(domain.RangeSpec), spec)
	assert.Equal(t, "Max Players (4-15)", rangeTitle("Max Players", spec))

	v := validateIntIn(int(spec.Min), int(spec.Max))
	assert.NoError(t, v("4"))
	assert.NoError(t, v("15"))
	assert.Error(t, v("16"))
}

func TestValidateJoinCode(t *testing.T) {
	assert.Error(t, validateJoinCode(""))
	assert.Error(t, validateJoinCode("ABCD"))
	assert.NoError(t, validateJoinCode("ABCDE"))
}

func TestValidateIntIn(t *testing.T) {
	v := validateIntIn(4, 15)
	assert.NoError(t, v("4"))
	assert.NoError(t, v("15"))
	assert.Error(t, v("3"))
	assert.Error(t, v("16"))
	assert.Error(t, v("ten"))
	assert.Error(t, v("7.5"))
}

func TestValidateFloatIn(t *testing.T) {
	v := validateFloatIn(0.5, 1.5)
	assert.NoError(t, v("0.5"))
	assert.NoError(t, v("1.25"))
	assert.Error(t, v("0.4"))
	assert.Error(t, v("fast"))
}
