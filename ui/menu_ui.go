package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the title screen
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay     func()
	OnContinue func()
	OnMute     func() bool // flips mute, returns new state
	OnQuit     func()

	muteButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the title screen UI. hasProgress enables the Continue
// button; muted sets the initial mute label.
func NewMenuUI(hasProgress, muted bool, onPlay, onContinue func(), onMute func() bool, onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnPlay:     onPlay,
		OnContinue: onContinue,
		OnMute:     onMute,
		OnQuit:     onQuit,
	}

	mui.loadFonts()
	mui.buildUI(hasProgress, muted)

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (mui *MenuUI) buildUI(hasProgress, muted bool) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{18, 16, 28, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("TURNSTONE", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 220, 120, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitleLabel := widget.NewLabel(
		widget.LabelOpts.Text("turn the world, find the bed", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 180, 255},
		}),
	)
	contentContainer.AddChild(subtitleLabel)

	contentContainer.AddChild(mui.menuButton("PLAY", func() {
		if mui.OnPlay != nil {
			mui.OnPlay()
		}
	}))

	if hasProgress {
		contentContainer.AddChild(mui.menuButton("CONTINUE", func() {
			if mui.OnContinue != nil {
				mui.OnContinue()
			}
		}))
	}

	mui.muteButton = mui.menuButton(muteLabel(muted), func() {
		if mui.OnMute == nil {
			return
		}
		nowMuted := mui.OnMute()
		if textWidget := mui.muteButton.Text(); textWidget != nil {
			textWidget.Label = muteLabel(nowMuted)
		}
	})
	contentContainer.AddChild(mui.muteButton)

	contentContainer.AddChild(mui.menuButton("QUIT", func() {
		if mui.OnQuit != nil {
			mui.OnQuit()
		}
	}))

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("arrows move, space jumps, Z/X turn the world", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{120, 120, 140, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) menuButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 26),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update drives the ebitenui event loop.
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func muteLabel(muted bool) string {
	if muted {
		return "SOUND: OFF"
	}
	return "SOUND: ON"
}
