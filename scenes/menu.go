package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/systems"
	"github.com/mossrock/turnstone/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once

	startLevel int
	shouldPlay bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	// ECS runs for audio; the menu itself is ebitenui.
	ms.ecs.Update()
	ms.menuUI.Update()

	if ms.shouldPlay {
		systems.StopMusicWithFade(ms.ecs)
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, ms.startLevel))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.ecs.AddSystem(systems.UpdateAudio)

	hasProgress := false
	continueLevel := 0
	if progress, err := systems.LoadProgress(); err == nil && progress != nil && progress.LevelIndex > 0 {
		hasProgress = true
		continueLevel = progress.LevelIndex
	}

	audio := systems.GetOrCreateAudio(ms.ecs)

	ms.menuUI = ui.NewMenuUI(
		hasProgress,
		audio.Muted,
		func() {
			ms.startLevel = 0
			ms.shouldPlay = true
		},
		func() {
			ms.startLevel = continueLevel
			ms.shouldPlay = true
		},
		func() bool {
			muted := !systems.GetOrCreateAudio(ms.ecs).Muted
			systems.SetMuted(ms.ecs, muted)
			return muted
		},
		func() {
			os.Exit(0)
		},
	)

	systems.PlayMusic(ms.ecs, cfg.Sound.MenuMusic)
}
