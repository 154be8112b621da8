package systems

import (
	"testing"

	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySizePreset_KeepsFeetPlanted(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	_, _, obj := playerParts(player)
	stepWorld(e, dt)

	bottom := obj.Y + obj.H
	centerX := obj.X + obj.W/2

	ApplySizePreset(player, cfg.SizeLarge)

	assert.InDelta(t, bottom, obj.Y+obj.H, 1e-9, "feet must stay planted through a resize")
	assert.InDelta(t, centerX, obj.X+obj.W/2, 1e-9)
	assert.Equal(t, cfg.SizePresets[cfg.SizeLarge].HitboxW, obj.W)
	assert.Equal(t, cfg.SizePresets[cfg.SizeLarge].HitboxH, obj.H)
}

func TestApplySizePreset_Idempotent(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	_, _, obj := playerParts(player)
	stepWorld(e, dt)

	ApplySizePreset(player, cfg.SizeSmall)
	x, y, w, h := obj.X, obj.Y, obj.W, obj.H

	ApplySizePreset(player, cfg.SizeSmall)

	assert.Equal(t, x, obj.X, "re-applying the active preset must change nothing")
	assert.Equal(t, y, obj.Y)
	assert.Equal(t, w, obj.W)
	assert.Equal(t, h, obj.H)
}

func TestApplySizePreset_RoundTrip(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	_, _, obj := playerParts(player)
	stepWorld(e, dt)

	x, y, w, h := obj.X, obj.Y, obj.W, obj.H

	ApplySizePreset(player, cfg.SizeLarge)
	ApplySizePreset(player, cfg.SizeNormal)

	assert.InDelta(t, x, obj.X, 1e-9, "nothing may accumulate across preset changes")
	assert.InDelta(t, y, obj.Y, 1e-9)
	assert.Equal(t, w, obj.W)
	assert.Equal(t, h, obj.H)
	assert.Equal(t, cfg.SizeNormal, components.Player.Get(player).SizePreset)
}

func TestApplySizePreset_UpdatesSpriteScale(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	stepWorld(e, dt)

	ApplySizePreset(player, cfg.SizeLarge)

	sprite := components.Sprite.Get(player)
	require.NotNil(t, sprite)
	assert.Equal(t, cfg.SizePresets[cfg.SizeLarge].Scale, sprite.ScaleX)
	assert.Equal(t, cfg.SizePresets[cfg.SizeLarge].Scale, sprite.ScaleY)
}
