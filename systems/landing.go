package systems

import (
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/events"
	"github.com/yohamta/donburi"
)

// OnJumped is the FX subscriber for jump notifications: sound plus a
// vertical stretch on takeoff.
func OnJumped(w donburi.World, ev events.Jumped) {
	EnqueueSFX(w, cfg.SoundJump)
	if ev.Entry.Valid() {
		TriggerSquashStretch(ev.Entry, cfg.Landing.JumpStretchX, cfg.Landing.JumpStretchY)
	}
}

// OnLanded classifies a landing by fall distance and plays the matching
// feedback. Hard landings additionally shake the camera. Because the
// notification comes from the debounced grounded signal, a skim across a
// ledge lip never fires this.
func OnLanded(w donburi.World, ev events.Landed) {
	blocks := ev.FallDistance / cfg.Landing.BlockHeight

	if blocks >= cfg.Landing.HardLandingBlocks {
		EnqueueSFX(w, cfg.SoundLandHard)
		TriggerScreenShake(w, cfg.Camera.HardLandShakeIntensity, cfg.Camera.HardLandShakeFrames)
		if ev.Entry.Valid() {
			TriggerSquashStretch(ev.Entry, cfg.Landing.HardSquashX, cfg.Landing.HardSquashY)
		}
		return
	}

	EnqueueSFX(w, cfg.SoundLandSoft)
	if ev.Entry.Valid() {
		TriggerSquashStretch(ev.Entry, cfg.Landing.SoftSquashX, cfg.Landing.SoftSquashY)
	}
}

// SubscribeFX wires the jump and landing subscribers into a world. Called
// once per scene; subscriptions die with the world.
func SubscribeFX(w donburi.World) {
	events.JumpedEvent.Subscribe(w, OnJumped)
	events.LandedEvent.Subscribe(w, OnLanded)
}
