package share_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aklein/lobbyscribe/internal/catalog"
	"github.com/aklein/lobbyscribe/internal/domain"
	"github.com/aklein/lobbyscribe/internal/engine"
	"github.com/aklein/lobbyscribe/internal/share"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	src := engine.New(catalog.Definitions())
	src.ApplyChange(catalog.MoveSpeed, domain.Number(0.75))
	src.ApplyChange(catalog.Sheriff, domain.Flag(false))
	src.ApplyChange(catalog.Region, domain.Choice("europe"))
	src.ApplyRaw(domain.SubID(catalog.Platforms, catalog.PlatformConsole), "off")

	code, err := share.Encode(src)
	require.NoError(t, err)

	dst := engine.New(catalog.Definitions())
	applied, err := share.Apply(dst, code)
	require.NoError(t, err)
	assert.Equal(t, 4, applied)

	assert.InDelta(t, 0.75, dst.Num(catalog.MoveSpeed), 1e-9)
	assert.False(t, dst.Flag(catalog.Sheriff))
	assert.Equal(t, "europe", dst.Choice(catalog.Region))
	assert.False(t, dst.Flag(domain.SubID(catalog.Platforms, catalog.PlatformConsole)))
	assert.Equal(t, 4, dst.NonDefaultCount())
}

func TestEncode_OmitsDefaultsAndJoinCode(t *testing.T) {
	e := engine.New(catalog.Definitions())
	e.ApplyRaw(catalog.JoinCode, "QWZXC")
	e.ApplyChange(catalog.Medic, domain.Flag(false))

	code, err := share.Encode(e)
	require.NoError(t, err)

	values, err := share.Decode(code)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{catalog.Medic: "false"}, values)
}

func TestEncode_AllDefaultsIsValidAndEmpty(t *testing.T) {
	e := engine.New(catalog.Definitions())
	code, err := share.Encode(e)
	require.NoError(t, err)

	values, err := share.Decode(code)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestDecode_Errors(t *testing.T) {
	_, err := share.Decode("")
	assert.ErrorIs(t, err, share.ErrEmptyCode)

	_, err = share.Decode("   ")
	assert.ErrorIs(t, err, share.ErrEmptyCode)

	_, err = share.Decode("!!! not base64 !!!")
	assert.ErrorIs(t, err, share.ErrMalformedCode)

	// Valid base64 wrapping invalid JSON.
	garbage := base64.RawURLEncoding.EncodeToString([]byte("not json"))
	_, err = share.Decode(garbage)
	assert.ErrorIs(t, err, share.ErrMalformedCode)

	future := base64.RawURLEncoding.EncodeToString([]byte(`{"v":2,"s":{}}`))
	_, err = share.Decode(future)
	assert.ErrorIs(t, err, share.ErrVersionUnknown)
}

func TestApply_SkipsUnknownAndInvalidValues(t *testing.T) {
	raw := `{"v":1,"s":{"gravity":"9.8","move-speed":"99","sheriff":"off"}}`
	code := base64.RawURLEncoding.EncodeToString([]byte(raw))

	e := engine.New(catalog.Definitions())
	applied, err := share.Apply(e, code)
	require.NoError(t, err)

	// Only the sheriff toggle is known and in bounds.
	assert.Equal(t, 1, applied)
	assert.False(t, e.Flag(catalog.Sheriff))
	assert.InDelta(t, 1.0, e.Num(catalog.MoveSpeed), 1e-9)
}

func TestApply_StripsSmuggledJoinCode(t *testing.T) {
	raw := `{"v":1,"s":{"join-code":"EVIL1","medic":"off"}}`
	code := base64.RawURLEncoding.EncodeToString([]byte(raw))

	e := engine.New(catalog.Definitions())
	applied, err := share.Apply(e, code)
	require.NoError(t, err)

	assert.Equal(t, 1, applied)
	assert.Equal(t, "", e.Text(catalog.JoinCode))
	assert.False(t, e.Flag(catalog.Medic))
}
