package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = ecs.LayerDefault

// GameConfig contains global game configuration
type GameConfig struct {
	Title    string
	Width    int
	Height   int
	TickRate int // fixed updates per second
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (units are pixels and seconds)
	MaxSpeed          float64
	Acceleration      float64 // toward target speed while input held
	Deceleration      float64 // toward zero with no input
	AirDecelFactor    float64 // deceleration penalty while airborne
	JumpSpeed         float64
	Gravity           float64
	FallGravityMult   float64 // extra gravity while falling (>1 for a snappier arc)
	MaxFallSpeed      float64
	AllowDoubleJump   bool
	CoyoteTime        float64 // seconds a jump stays legal after leaving ground
	JumpBufferTime    float64 // seconds an early jump input is held pending
	GroundedHoldTime  float64 // seconds of continuous raw=false before stable flips
	FacingDeadzone    float64 // minimum input/velocity magnitude to change facing
	GroundProbeDepth  float64 // pixels below the feet checked for ground
	FootstepInterval  float64 // pixels of ground travel between footstep sounds
	FootstepMinSpeed  float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// PhysicsConfig contains global physics configuration values
type PhysicsConfig struct {
	VerticalSpeedClamp float64 // max vertical speed magnitude per step, pixels
	SpaceCellSize      int
}

// RotationConfig tunes the level-rotation transaction
type RotationConfig struct {
	StepDegrees    float64 // rotation per transaction, normally 90
	Duration       float64 // unscaled seconds per transaction
	Cooldown       float64 // unscaled seconds before new input is accepted
	PivotPolicy    PivotPolicyID
	FixedPivot     int  // actor index used by PivotFixedIndex
	GroundRule     GroundRuleID
	KeepUpright    bool // counter-rotate actors so they stay level
	AllowEmpty     bool // permit rotation with zero registered actors
	GroundSnap     bool // snap actors down onto new geometry on completion
	SnapPivotOnly  bool // ground-snap only the pivot actor
	MaxSnapDist    float64
	SnapSkinOffset float64
}

// PivotPolicyID selects how the rotation pivot is chosen
type PivotPolicyID int

const (
	PivotFixedIndex PivotPolicyID = iota
	PivotFirstActor
	PivotViewportCenter
	PivotCentroidNearest
)

// GroundRuleID selects the precondition gating a rotation
type GroundRuleID int

const (
	GroundRuleAllActors GroundRuleID = iota
	GroundRulePivotActor
)

// CameraConfig contains camera follow and shake configuration
type CameraConfig struct {
	FollowSmoothing         float64
	LookAheadDistanceX      float64
	LookAheadSmoothing      float64
	LookAheadSpeedThreshold float64
	HardLandShakeIntensity  float64
	HardLandShakeFrames     int
	SplashShakeIntensity    float64
	SplashShakeFrames       int
}

// LandingConfig classifies landings for FX purposes
type LandingConfig struct {
	BlockHeight       float64 // pixels per "block" of fall distance
	HardLandingBlocks float64 // fall distance in blocks at or above which a landing is hard
	SoftSquashX       float64
	SoftSquashY       float64
	HardSquashX       float64
	HardSquashY       float64
	SquashLerpSpeed   float64
	JumpStretchX      float64
	JumpStretchY      float64
}

// SizePresetID identifies a player size preset
type SizePresetID int

const (
	SizeSmall SizePresetID = iota
	SizeNormal
	SizeLarge
)

// SizePreset holds the scale and hitbox applied by a preset. Applying the
// same preset twice yields the same result; nothing accumulates.
type SizePreset struct {
	Scale   float64
	HitboxW float64
	HitboxH float64
}

// LevelConfig contains level sequencing configuration
type LevelConfig struct {
	SleepDelay float64 // unscaled seconds between falling asleep and leaving the level
}

// PauseConfig contains pause menu layout and colors
type PauseConfig struct {
	MenuOptions       []string
	MenuItemHeight    float64
	MenuItemGap       float64
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
}

var (
	C        GameConfig
	Player   PlayerConfig
	Physics  PhysicsConfig
	Rotation RotationConfig
	Camera   CameraConfig
	Landing  LandingConfig
	Level    LevelConfig
	Pause    PauseConfig

	SizePresets map[SizePresetID]SizePreset

	PlayerColor = color.RGBA{R: 235, G: 180, B: 52, A: 255}
	WallColor   = color.RGBA{R: 90, G: 85, B: 110, A: 255}
	WaterColor  = color.RGBA{R: 60, G: 120, B: 210, A: 160}
	FoodColor   = color.RGBA{R: 120, G: 200, B: 90, A: 255}
	BedColor    = color.RGBA{R: 190, G: 110, B: 170, A: 255}
)

func init() {
	C = GameConfig{
		Title:    "Turnstone",
		Width:    640,
		Height:   360,
		TickRate: 60,
	}

	Player = PlayerConfig{
		MaxSpeed:         140.0,
		Acceleration:     900.0,
		Deceleration:     1100.0,
		AirDecelFactor:   0.35,
		JumpSpeed:        290.0,
		Gravity:          900.0,
		FallGravityMult:  1.6,
		MaxFallSpeed:     420.0,
		AllowDoubleJump:  true,
		CoyoteTime:       0.12,
		JumpBufferTime:   0.12,
		GroundedHoldTime: 0.08,
		FacingDeadzone:   0.1,
		GroundProbeDepth: 1.0,
		FootstepInterval: 28.0,
		FootstepMinSpeed: 30.0,
		CollisionWidth:   12.0,
		CollisionHeight:  16.0,
	}

	Physics = PhysicsConfig{
		VerticalSpeedClamp: 16.0,
		SpaceCellSize:      16,
	}

	Rotation = RotationConfig{
		StepDegrees:    90.0,
		Duration:       0.4,
		Cooldown:       0.25,
		PivotPolicy:    PivotCentroidNearest,
		FixedPivot:     0,
		GroundRule:     GroundRuleAllActors,
		KeepUpright:    true,
		AllowEmpty:     false,
		GroundSnap:     true,
		SnapPivotOnly:  false,
		MaxSnapDist:    24.0,
		SnapSkinOffset: 0.5,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.08,
		LookAheadDistanceX:      48.0,
		LookAheadSmoothing:      0.06,
		LookAheadSpeedThreshold: 20.0,
		HardLandShakeIntensity:  4.0,
		HardLandShakeFrames:     18,
		SplashShakeIntensity:    2.5,
		SplashShakeFrames:       12,
	}

	Landing = LandingConfig{
		BlockHeight:       16.0,
		HardLandingBlocks: 5.0,
		SoftSquashX:       1.15,
		SoftSquashY:       0.85,
		HardSquashX:       1.35,
		HardSquashY:       0.6,
		SquashLerpSpeed:   0.2,
		JumpStretchX:      0.85,
		JumpStretchY:      1.2,
	}

	Level = LevelConfig{
		SleepDelay: 2.0,
	}

	Pause = PauseConfig{
		MenuOptions:       []string{"Resume", "Restart", "Exit"},
		MenuItemHeight:    24,
		MenuItemGap:       8,
		OverlayColor:      color.RGBA{R: 0, G: 0, B: 0, A: 160},
		TextColorNormal:   color.RGBA{R: 200, G: 200, B: 200, A: 255},
		TextColorSelected: color.RGBA{R: 255, G: 220, B: 120, A: 255},
	}

	SizePresets = map[SizePresetID]SizePreset{
		SizeSmall:  {Scale: 0.75, HitboxW: 9, HitboxH: 12},
		SizeNormal: {Scale: 1.0, HitboxW: 12, HitboxH: 16},
		SizeLarge:  {Scale: 1.35, HitboxW: 16, HitboxH: 22},
	}
}
