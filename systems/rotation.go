package systems

import (
	"math"

	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/gamemath"
	"github.com/mossrock/turnstone/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRotation drives the world-rotation transaction. The transaction is
// a strict three-phase machine: Idle accepts input, Rotating eases the
// world around the pivot with all participants frozen, Cooldown rejects
// input until the timer runs out. At most one transaction exists at a
// time; the phase field is the mutual exclusion.
func UpdateRotation(ecs *ecs.ECS) {
	rot := GetOrCreateRotation(ecs)
	t := GetOrCreateTime(ecs)

	switch rot.Phase {
	case components.RotationIdle:
		in := getOrCreateInput(ecs)
		dir := 0.0
		if GetAction(in, cfg.ActionRotateCW).JustPressed {
			dir = 1
		} else if GetAction(in, cfg.ActionRotateCCW).JustPressed {
			dir = -1
		}
		if dir != 0 {
			StartRotation(ecs, dir)
		}
	case components.RotationRotating:
		stepRotation(ecs, rot, t.Unscaled)
	case components.RotationCooldown:
		rot.CooldownLeft -= t.Unscaled
		if rot.CooldownLeft <= 0 {
			rot.CooldownLeft = 0
			rot.Phase = components.RotationIdle
		}
	}
}

// GetOrCreateRotation returns the singleton transaction state.
func GetOrCreateRotation(ecs *ecs.ECS) *components.RotationData {
	if _, ok := components.Rotation.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Rotation))
		components.Rotation.SetValue(ent, components.RotationData{})
	}

	ent, _ := components.Rotation.First(ecs.World)
	return components.Rotation.Get(ent)
}

// RegisterActor adds an entity to the set frozen and carried by future
// rotation transactions. Registering twice is a no-op.
func RegisterActor(ecs *ecs.ECS, entry *donburi.Entry) {
	rot := GetOrCreateRotation(ecs)
	for _, a := range rot.Actors {
		if a == entry {
			return
		}
	}
	rot.Actors = append(rot.Actors, entry)
}

// UnregisterActor removes an entity from the participant set. Safe to call
// for entities that were never registered.
func UnregisterActor(ecs *ecs.ECS, entry *donburi.Entry) {
	rot := GetOrCreateRotation(ecs)
	for i, a := range rot.Actors {
		if a == entry {
			rot.Actors = append(rot.Actors[:i], rot.Actors[i+1:]...)
			return
		}
	}
}

// StartRotation attempts to begin a transaction in the given direction
// (+1 clockwise, -1 counter-clockwise). It reports whether the trigger was
// accepted. Rejection leaves no trace: phase, actors and geometry are
// untouched.
func StartRotation(ecs *ecs.ECS, dir float64) bool {
	rot := GetOrCreateRotation(ecs)
	if rot.Phase != components.RotationIdle || dir == 0 {
		return false
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	level := components.Level.Get(levelEntry)

	actors := liveActors(rot)
	if len(actors) == 0 && !cfg.Rotation.AllowEmpty {
		return false
	}

	px, py, pivotEntry := selectPivot(ecs, level, actors)
	if !groundRuleHolds(actors, pivotEntry) {
		return false
	}

	rot.Phase = components.RotationRotating
	rot.Direction = gamemath.Sign(dir)
	rot.PivotX = px
	rot.PivotY = py
	rot.PivotEntry = pivotEntry
	rot.Applied = 0

	snapshotParticipants(rot, level, actors)

	EnqueueSFX(ecs.World, cfg.SoundRotate)

	if cfg.Rotation.Duration <= 0 {
		applyRotation(level, rot, stepRadians(rot.Direction))
		finishRotation(ecs, level, rot)
		return true
	}

	rot.Tween = gween.New(0, 1, float32(cfg.Rotation.Duration), ease.InOutQuad)
	return true
}

func stepRotation(ecs *ecs.ECS, rot *components.RotationData, dt float64) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		// Level torn down mid-transaction; abandon it but unfreeze any
		// surviving actors.
		for i := range rot.Snapshot {
			s := &rot.Snapshot[i]
			if !s.Entry.Valid() {
				continue
			}
			if s.Entry.HasComponent(components.Physics) {
				components.Physics.Get(s.Entry).Simulated = s.Simulated
			}
			if s.Entry.HasComponent(components.Locomotion) {
				components.Locomotion.Get(s.Entry).Enabled = s.LocomotionEnabled
			}
		}
		rot.Phase = components.RotationIdle
		rot.Tween = nil
		rot.Snapshot = rot.Snapshot[:0]
		rot.Geometry = rot.Geometry[:0]
		return
	}
	level := components.Level.Get(levelEntry)

	progress, finished := rot.Tween.Update(float32(dt))
	applyRotation(level, rot, float64(progress)*stepRadians(rot.Direction))

	if finished {
		finishRotation(ecs, level, rot)
	}
}

// applyRotation places every participant at the eased angle. Positions are
// always derived fresh from the transaction snapshot, never integrated, so
// no error accumulates over the flight.
func applyRotation(level *components.LevelData, rot *components.RotationData, angle float64) {
	rot.Applied = angle
	level.VisualSpin = angle

	for i := range rot.Geometry {
		g := &rot.Geometry[i]
		cx, cy := g.StartX+g.StartW/2, g.StartY+g.StartH/2
		ncx, ncy := gamemath.RotateAround(cx, cy, rot.PivotX, rot.PivotY, angle)
		g.Object.X = ncx - g.StartW/2
		g.Object.Y = ncy - g.StartH/2
		g.Object.Update()
	}

	for i := range rot.Snapshot {
		s := &rot.Snapshot[i]
		if !s.Entry.Valid() {
			continue
		}
		obj := components.Object.Get(s.Entry)
		cx, cy := s.StartX+obj.W/2, s.StartY+obj.H/2
		ncx, ncy := gamemath.RotateAround(cx, cy, rot.PivotX, rot.PivotY, angle)
		obj.X = ncx - obj.W/2
		obj.Y = ncy - obj.H/2
		obj.Update()

		if s.Entry.HasComponent(components.Sprite) {
			sprite := components.Sprite.Get(s.Entry)
			if cfg.Rotation.KeepUpright {
				sprite.Angle = s.StartAngle
			} else {
				sprite.Angle = s.StartAngle + angle
			}
		}
	}
}

// finishRotation snaps all participants to the exact quarter-turn pose,
// swaps geometry extents, optionally ground-snaps actors, unfreezes and
// enters the cooldown phase.
func finishRotation(ecs *ecs.ECS, level *components.LevelData, rot *components.RotationData) {
	q := int(math.Round(cfg.Rotation.StepDegrees/90)) * int(rot.Direction)

	for i := range rot.Geometry {
		g := &rot.Geometry[i]
		cx, cy := g.StartX+g.StartW/2, g.StartY+g.StartH/2
		ncx, ncy := gamemath.RotateAroundQuarters(cx, cy, rot.PivotX, rot.PivotY, q)

		w, h := g.StartW, g.StartH
		if q%2 != 0 {
			w, h = h, w
			g.Object.W, g.Object.H = w, h
			g.Object.SetShape(resolv.NewRectangle(0, 0, w, h))
		}
		g.Object.X = ncx - w/2
		g.Object.Y = ncy - h/2
		g.Object.Update()

		reanchorPlatform(g.Object, rot, q, w, h)
	}

	for i := range rot.Snapshot {
		s := &rot.Snapshot[i]
		if !s.Entry.Valid() {
			continue
		}
		obj := components.Object.Get(s.Entry)
		cx, cy := s.StartX+obj.W/2, s.StartY+obj.H/2
		ncx, ncy := gamemath.RotateAroundQuarters(cx, cy, rot.PivotX, rot.PivotY, q)
		obj.X = ncx - obj.W/2
		obj.Y = ncy - obj.H/2
		obj.Update()

		if s.Entry.HasComponent(components.Sprite) {
			sprite := components.Sprite.Get(s.Entry)
			if cfg.Rotation.KeepUpright {
				sprite.Angle = s.StartAngle
			} else {
				sprite.Angle = s.StartAngle + stepRadians(rot.Direction)
			}
		}
	}

	if cfg.Rotation.GroundSnap {
		groundSnapActors(rot)
	}

	// Unfreeze. Velocities stay zeroed; everyone resumes from rest.
	for i := range rot.Snapshot {
		s := &rot.Snapshot[i]
		if !s.Entry.Valid() {
			continue
		}
		if s.Entry.HasComponent(components.Physics) {
			components.Physics.Get(s.Entry).Simulated = s.Simulated
		}
		if s.Entry.HasComponent(components.Locomotion) {
			components.Locomotion.Get(s.Entry).Enabled = s.LocomotionEnabled
		}
	}

	level.Angle += stepRadians(rot.Direction)
	level.VisualSpin = 0

	rot.Quarters += q
	rot.Applied = 0
	rot.Tween = nil
	rot.PivotEntry = nil
	rot.Snapshot = rot.Snapshot[:0]
	rot.Geometry = rot.Geometry[:0]
	rot.Phase = components.RotationCooldown
	rot.CooldownLeft = cfg.Rotation.Cooldown
}

// reanchorPlatform rotates a floating platform's oscillation frame along
// with the world: the origin moves rigidly with the rotation and the
// travel axis turns by the same quarter count, so the tween offset stays
// valid and motion resumes on the rotated track.
func reanchorPlatform(obj *resolv.Object, rot *components.RotationData, q int, w, h float64) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Tween) {
		return
	}
	tw := components.Tween.Get(entry)

	ocx, ocy := tw.OriginX+h/2, tw.OriginY+w/2
	if q%2 == 0 {
		ocx, ocy = tw.OriginX+w/2, tw.OriginY+h/2
	}
	nocx, nocy := gamemath.RotateAroundQuarters(ocx, ocy, rot.PivotX, rot.PivotY, q)
	tw.OriginX = nocx - w/2
	tw.OriginY = nocy - h/2
	tw.AxisX, tw.AxisY = gamemath.RotateAroundQuarters(tw.AxisX, tw.AxisY, 0, 0, q)
}

// groundSnapActors pulls actors straight down onto whatever geometry ended
// up beneath them, within the configured reach. Actors left hanging beyond
// that distance simply fall once unfrozen.
func groundSnapActors(rot *components.RotationData) {
	for i := range rot.Snapshot {
		s := &rot.Snapshot[i]
		if !s.Entry.Valid() {
			continue
		}
		if cfg.Rotation.SnapPivotOnly && s.Entry != rot.PivotEntry {
			continue
		}
		obj := components.Object.Get(s.Entry)

		check := obj.Check(0, cfg.Rotation.MaxSnapDist, tags.ResolvSolid, tags.ResolvPlatform)
		if check == nil {
			continue
		}

		// Nearest contact below; the cell query can also report geometry
		// beyond snapping reach.
		nearest := math.Inf(1)
		for _, tag := range []string{tags.ResolvSolid, tags.ResolvPlatform} {
			for _, ground := range check.ObjectsByTags(tag) {
				if ground.X >= obj.X+obj.W || ground.X+ground.W <= obj.X {
					continue
				}
				if c := check.ContactWithObject(ground).Y(); c >= 0 && c < nearest {
					nearest = c
				}
			}
		}
		if nearest > cfg.Rotation.MaxSnapDist {
			continue
		}

		if dy := nearest - cfg.Rotation.SnapSkinOffset; dy > 0 {
			obj.Y += dy
			obj.Update()
		}
	}
}

func snapshotParticipants(rot *components.RotationData, level *components.LevelData, actors []*donburi.Entry) {
	rot.Snapshot = rot.Snapshot[:0]
	for _, entry := range actors {
		obj := components.Object.Get(entry)
		snap := components.ActorSnapshot{
			Entry:  entry,
			StartX: obj.X,
			StartY: obj.Y,
		}
		if entry.HasComponent(components.Sprite) {
			snap.StartAngle = components.Sprite.Get(entry).Angle
		}
		if entry.HasComponent(components.Physics) {
			phys := components.Physics.Get(entry)
			snap.VelX, snap.VelY = phys.VelX, phys.VelY
			snap.Simulated = phys.Simulated
			phys.VelX, phys.VelY = 0, 0
			phys.Simulated = false
			phys.OnGround = nil
		}
		if entry.HasComponent(components.Locomotion) {
			loco := components.Locomotion.Get(entry)
			snap.LocomotionEnabled = loco.Enabled
			loco.Enabled = false
		}
		rot.Snapshot = append(rot.Snapshot, snap)
	}

	rot.Geometry = rot.Geometry[:0]
	for _, obj := range level.Geometry {
		rot.Geometry = append(rot.Geometry, components.GeometrySnapshot{
			Object: obj,
			StartX: obj.X,
			StartY: obj.Y,
			StartW: obj.W,
			StartH: obj.H,
		})
	}
}

// selectPivot resolves the configured pivot policy against the current
// actor set. The pivot is clamped into level bounds; with no actors it
// defaults to the level center.
func selectPivot(ecs *ecs.ECS, level *components.LevelData, actors []*donburi.Entry) (float64, float64, *donburi.Entry) {
	var px, py float64
	var pivotEntry *donburi.Entry

	switch {
	case len(actors) == 0:
		px, py = float64(level.Width)/2, float64(level.Height)/2
	default:
		switch cfg.Rotation.PivotPolicy {
		case cfg.PivotFixedIndex:
			idx := cfg.Rotation.FixedPivot
			if idx < 0 {
				idx = 0
			}
			if idx >= len(actors) {
				idx = len(actors) - 1
			}
			pivotEntry = actors[idx]
			px, py = actorCenter(pivotEntry)
		case cfg.PivotFirstActor:
			pivotEntry = actors[0]
			px, py = actorCenter(pivotEntry)
		case cfg.PivotViewportCenter:
			cx, cy := float64(level.Width)/2, float64(level.Height)/2
			if camEntry, ok := components.Camera.First(ecs.World); ok {
				cam := components.Camera.Get(camEntry)
				cx, cy = cam.Position.X, cam.Position.Y
			}
			pivotEntry = nearestActor(actors, cx, cy)
			px, py = actorCenter(pivotEntry)
		default: // PivotCentroidNearest
			pivotEntry = nearestToCentroid(actors)
			px, py = actorCenter(pivotEntry)
		}
	}

	px = gamemath.Clamp(px, 0, float64(level.Width))
	py = gamemath.Clamp(py, 0, float64(level.Height))
	return px, py, pivotEntry
}

func nearestToCentroid(actors []*donburi.Entry) *donburi.Entry {
	var sx, sy float64
	for _, a := range actors {
		x, y := actorCenter(a)
		sx += x
		sy += y
	}
	return nearestActor(actors, sx/float64(len(actors)), sy/float64(len(actors)))
}

func nearestActor(actors []*donburi.Entry, cx, cy float64) *donburi.Entry {
	best := actors[0]
	bestDist := math.Inf(1)
	for _, a := range actors {
		x, y := actorCenter(a)
		d := (x-cx)*(x-cx) + (y-cy)*(y-cy)
		if d < bestDist {
			bestDist = d
			best = a
		}
	}
	return best
}

func actorCenter(entry *donburi.Entry) (float64, float64) {
	obj := components.Object.Get(entry)
	return obj.X + obj.W/2, obj.Y + obj.H/2
}

// groundRuleHolds evaluates the configured precondition. The raw grounded
// signal is authoritative here; a debounced signal would let a rotation
// start during the grace window after stepping off a ledge.
func groundRuleHolds(actors []*donburi.Entry, pivotEntry *donburi.Entry) bool {
	switch cfg.Rotation.GroundRule {
	case cfg.GroundRulePivotActor:
		if pivotEntry == nil {
			return true
		}
		return actorGrounded(pivotEntry)
	default: // GroundRuleAllActors
		for _, a := range actors {
			if !actorGrounded(a) {
				return false
			}
		}
		return true
	}
}

func actorGrounded(entry *donburi.Entry) bool {
	if entry.HasComponent(components.Locomotion) {
		return components.Locomotion.Get(entry).GroundedRaw
	}
	if entry.HasComponent(components.Object) {
		return groundContact(components.Object.Get(entry).Object, 1)
	}
	return true
}

func liveActors(rot *components.RotationData) []*donburi.Entry {
	live := rot.Actors[:0]
	for _, a := range rot.Actors {
		if a.Valid() {
			live = append(live, a)
		}
	}
	rot.Actors = live
	return live
}

func stepRadians(dir float64) float64 {
	return cfg.Rotation.StepDegrees * math.Pi / 180 * dir
}
