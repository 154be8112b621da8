package systems

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The unit image is created lazily; creating ebiten images requires the
// game to be running, and the render systems never run in tests.
var (
	unitImageOnce sync.Once
	unitImage     *ebiten.Image
)

func whitePixel() *ebiten.Image {
	unitImageOnce.Do(func() {
		unitImage = ebiten.NewImage(1, 1)
		unitImage.Fill(color.White)
	})
	return unitImage
}

// DrawLevel renders all level geometry as flat rectangles. While a
// rotation transaction is in flight, each rect is additionally spun about
// its own center by the transaction's current angle; the orbit around the
// pivot is already baked into the positions.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs)
	if !ok {
		return
	}

	spin := 0.0
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		spin = components.Level.Get(levelEntry).VisualSpin
	}

	components.Object.Each(ecs.World, func(entry *donburi.Entry) {
		var clr color.RGBA
		switch {
		case entry.HasComponent(tags.Wall):
			clr = cfg.WallColor
		case entry.HasComponent(tags.FloatingPlatform):
			clr = platformColor
		case entry.HasComponent(tags.Water):
			clr = cfg.WaterColor
		default:
			return
		}
		drawRect(screen, components.Object.Get(entry).Object, clr, camX, camY, spin, 1, 1)
	})
}

var platformColor = color.RGBA{R: 150, G: 140, B: 120, A: 255}

// DrawSprites renders every entity with a sprite component, honoring its
// angle and squash scale. The sprite rect is centered on the collision
// object's center.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs)
	if !ok {
		return
	}

	components.Sprite.Each(ecs.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Object) {
			return
		}
		sprite := components.Sprite.Get(entry)
		obj := components.Object.Get(entry)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sprite.W, sprite.H)
		op.GeoM.Translate(-sprite.W/2, -sprite.H/2)
		op.GeoM.Scale(sprite.ScaleX, sprite.ScaleY)
		op.GeoM.Rotate(sprite.Angle)
		op.GeoM.Translate(obj.X+obj.W/2-camX, obj.Y+obj.H/2-camY)
		op.ColorScale.ScaleWithColor(sprite.Color)
		screen.DrawImage(whitePixel(), op)
	})
}

func drawRect(screen *ebiten.Image, obj *resolv.Object, clr color.RGBA, camX, camY, angle, scaleX, scaleY float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(obj.W, obj.H)
	op.GeoM.Translate(-obj.W/2, -obj.H/2)
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(obj.X+obj.W/2-camX, obj.Y+obj.H/2-camY)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(whitePixel(), op)
}

// cameraOffset converts the camera's world position to the translation
// applied to all world drawing.
func cameraOffset(ecs *ecs.ECS) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X - float64(cfg.C.Width)/2,
		camera.Position.Y - float64(cfg.C.Height)/2,
		true
}
