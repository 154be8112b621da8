package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossrock/turnstone/assets"
	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/events"
	"github.com/mossrock/turnstone/leveldata"
	"github.com/mossrock/turnstone/systems"
	"github.com/mossrock/turnstone/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one level: locomotion, rotation, triggers and FX.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
	failed       bool
}

// NewWorldScene creates a gameplay scene for the given level index.
func NewWorldScene(sc SceneChanger, levelIndex int) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	if ws.failed {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}

	ws.ecs.Update()

	pause := systems.GetOrCreatePause(ws.ecs)
	if pause.RestartRequested {
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.levelIndex))
		return
	}

	if systems.IsLevelComplete(ws.ecs) {
		ws.advance()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ws.ecs == nil || ws.failed {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) advance() {
	paths, err := assets.LevelPaths()
	if err != nil || ws.levelIndex+1 >= len(paths) {
		// Ran the whole campaign; wipe progress and return to the menu.
		_ = systems.SaveProgress(0)
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}

	next := ws.levelIndex + 1
	_ = systems.SaveProgress(next)
	ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, next))
}

func (ws *WorldScene) configure() {
	data, ok := ws.loadLevel()
	if !ok {
		ws.failed = true
		return
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateTime)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdatePause)

	// Game systems gated on the pause state
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlatforms))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateLocomotion))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateRotation))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateFood))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateBed))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateWater))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateFootsteps))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))

	// Deliver locomotion notifications to the FX subscribers last, after
	// all systems have published for the frame.
	e.AddSystem(func(e *ecs.ECS) {
		events.Process(e.World)
	})

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = e

	systems.SubscribeFX(e.World)

	// Space first so every factory call below lands in it.
	factory.CreateSpace(ws.ecs, data.MapWidth, data.MapHeight,
		cfg.Physics.SpaceCellSize, cfg.Physics.SpaceCellSize)
	factory.CreateLevel(ws.ecs, data)

	player := factory.CreatePlayer(ws.ecs, data.Spawn.X, data.Spawn.Y)
	systems.RegisterActor(ws.ecs, player)

	playerObj := components.Object.Get(player)
	factory.CreateCamera(ws.ecs, playerObj.X, playerObj.Y)

	systems.PlayMusic(ws.ecs, cfg.Sound.LevelMusic)
	_ = systems.SaveProgress(ws.levelIndex)
}

func (ws *WorldScene) loadLevel() (*leveldata.Level, bool) {
	paths, err := assets.LevelPaths()
	if err != nil || len(paths) == 0 {
		log.Printf("Warning: no levels available: %v", err)
		return nil, false
	}
	if ws.levelIndex < 0 || ws.levelIndex >= len(paths) {
		ws.levelIndex = 0
	}

	data, err := leveldata.Load(assets.LevelFS(), paths[ws.levelIndex])
	if err != nil {
		log.Printf("Warning: could not load level %s: %v", paths[ws.levelIndex], err)
		return nil, false
	}
	return data, true
}
