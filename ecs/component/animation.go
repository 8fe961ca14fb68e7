package component

import "github.com/jakecoffman/cp"

// AnimationID identifies an animation resource. The named constants are the
// animations gameplay branches on; catalogs hand out ids from
// AnimationCustom upwards for everything else.
type AnimationID uint16

const (
	AnimationNone AnimationID = iota
	AnimationStand
	AnimationRun
	AnimationAir
	AnimationBrick
	AnimationQuestion
	AnimationQuestion2
	AnimationQuestBounce
	AnimationExplosion
	AnimationCoin
	AnimationPoleTop
	AnimationGoombaSquash
	AnimationCustom
)

var reservedAnimations = map[string]AnimationID{
	"Stand":        AnimationStand,
	"Run":          AnimationRun,
	"Air":          AnimationAir,
	"Brick":        AnimationBrick,
	"Question":     AnimationQuestion,
	"Question2":    AnimationQuestion2,
	"Quest_Bounce": AnimationQuestBounce,
	"Explosion":    AnimationExplosion,
	"Coin":         AnimationCoin,
	"PoleTop":      AnimationPoleTop,
	"GoombaSquash": AnimationGoombaSquash,
}

// ReservedAnimationID returns the fixed id for a gameplay-relevant animation
// name.
func ReservedAnimationID(name string) (AnimationID, bool) {
	id, ok := reservedAnimations[name]
	return id, ok
}

// AnimationDef is a named animation resource.
type AnimationDef struct {
	ID         AnimationID
	Name       string
	FrameW     int
	FrameH     int
	FrameCount int
	// FrameTime is how many game frames each animation frame is shown.
	FrameTime int
	Loop      bool
}

// Size is the pixel size of a single frame.
func (d AnimationDef) Size() cp.Vector {
	return cp.Vector{X: float64(d.FrameW), Y: float64(d.FrameH)}
}

func (d AnimationDef) frameTime() int {
	if d.FrameTime < 1 {
		return 1
	}
	return d.FrameTime
}

// Animation binds an animation resource to an entity together with its
// playback position.
type Animation struct {
	Def     AnimationDef
	Elapsed int
	Repeat  bool
}

func NewAnimation(def AnimationDef, repeat bool) Animation {
	return Animation{Def: def, Repeat: repeat}
}

func (a Animation) Name() string {
	return a.Def.Name
}

func (a Animation) Is(id AnimationID) bool {
	return a.Def.ID == id
}

// Update advances playback by one game frame.
func (a *Animation) Update() {
	a.Elapsed++
}

// Frame is the index of the frame currently shown.
func (a Animation) Frame() int {
	if a.Def.FrameCount <= 0 {
		return 0
	}
	frame := a.Elapsed / a.Def.frameTime()
	if a.Repeat {
		return frame % a.Def.FrameCount
	}
	return min(frame, a.Def.FrameCount-1)
}

// HasEnded reports whether the last frame has been shown for its full
// duration.
func (a Animation) HasEnded() bool {
	return a.Elapsed >= a.Def.FrameCount*a.Def.frameTime()
}

var AnimationComponent = NewComponent[Animation]()
