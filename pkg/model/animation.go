package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/svgmotion/svgmotion/pkg/errclass"
)

// SVGNamespace is the only namespace an svg root is allowed to declare as its default.
const SVGNamespace = "http://www.w3.org/2000/svg"

// Reserved markers identifying engine-owned artifacts inside a document.
// Embedder, remover and detector must all agree on these values; a document
// carries no other record of what the engine added to it.
const (
	StyleID            = "svgmotion-style"
	ScriptID           = "svgmotion-script"
	WrapperClassPrefix = "svgmotion-wrap-"
)

// AnimationType identifies one of the fixed animation presets.
type AnimationType string

const (
	AnimationNone        AnimationType = "none"
	AnimationSpin        AnimationType = "spin"
	AnimationPulse       AnimationType = "pulse"
	AnimationBounce      AnimationType = "bounce"
	AnimationShake       AnimationType = "shake"
	AnimationFade        AnimationType = "fade"
	AnimationDraw        AnimationType = "draw"
	AnimationDrawReverse AnimationType = "draw-reverse"
	AnimationDrawLoop    AnimationType = "draw-loop"
)

var allTypes = []AnimationType{
	AnimationNone,
	AnimationSpin,
	AnimationPulse,
	AnimationBounce,
	AnimationShake,
	AnimationFade,
	AnimationDraw,
	AnimationDrawReverse,
	AnimationDrawLoop,
}

// Types returns every known animation type in display order.
func Types() []AnimationType {
	out := make([]AnimationType, len(allTypes))
	copy(out, allTypes)
	return out
}

// ParseAnimationType maps a user-supplied name onto a known type.
func ParseAnimationType(s string) (AnimationType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range allTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errclass.ErrAnimationUnknown.WithMessagef("unknown animation type %q", s)
}

// IsDrawFamily reports whether the type needs injected measuring script.
func (t AnimationType) IsDrawFamily() bool {
	switch t {
	case AnimationDraw, AnimationDrawReverse, AnimationDrawLoop:
		return true
	}
	return false
}

// IsCSSFamily reports whether the type is pure declarative styling.
func (t AnimationType) IsCSSFamily() bool {
	switch t {
	case AnimationSpin, AnimationPulse, AnimationBounce, AnimationShake, AnimationFade:
		return true
	}
	return false
}

// Family returns "draw", "css" or "none".
func (t AnimationType) Family() string {
	switch {
	case t.IsDrawFamily():
		return "draw"
	case t.IsCSSFamily():
		return "css"
	}
	return "none"
}

func (t AnimationType) String() string {
	return string(t)
}

// Direction is a CSS animation-direction value.
type Direction string

const (
	DirectionNormal           Direction = "normal"
	DirectionReverse          Direction = "reverse"
	DirectionAlternate        Direction = "alternate"
	DirectionAlternateReverse Direction = "alternate-reverse"
)

// IterationInfinite is the iteration value for endlessly repeating animations.
const IterationInfinite = "infinite"

// Settings holds the user-tunable animation parameters.
// Values are embedded verbatim; Validate is available to callers that want
// to reject out-of-range input before embedding.
type Settings struct {
	Duration  float64   `json:"duration" yaml:"duration"`   // seconds
	Timing    string    `json:"timing" yaml:"timing"`       // easing keyword or function
	Iteration string    `json:"iteration" yaml:"iteration"` // positive integer or "infinite"
	Direction Direction `json:"direction" yaml:"direction"`
	Delay     float64   `json:"delay" yaml:"delay"` // seconds
}

// DefaultSettings returns the settings used when nothing better is known.
func DefaultSettings() Settings {
	return Settings{
		Duration:  1,
		Timing:    "ease",
		Iteration: IterationInfinite,
		Direction: DirectionNormal,
		Delay:     0,
	}
}

// DrawLoopSettings returns the fixed settings reported for a detected draw-loop.
func DrawLoopSettings() Settings {
	return Settings{
		Duration:  2,
		Timing:    "ease-in-out",
		Iteration: IterationInfinite,
		Direction: DirectionNormal,
		Delay:     0,
	}
}

var (
	namedTimings = map[string]bool{
		"linear": true, "ease": true, "ease-in": true, "ease-out": true,
		"ease-in-out": true, "step-start": true, "step-end": true,
	}
	timingFuncRegex = regexp.MustCompile(`^(cubic-bezier|steps)\([^()]*\)$`)
)

// Validate checks the documented ranges.
func (s Settings) Validate() error {
	if s.Duration <= 0 {
		return errclass.ErrSettingsInvalid.WithMessagef("duration must be positive: %s", FormatSeconds(s.Duration))
	}
	if s.Delay < 0 {
		return errclass.ErrSettingsInvalid.WithMessagef("delay must not be negative: %s", FormatSeconds(s.Delay))
	}
	if !namedTimings[s.Timing] && !timingFuncRegex.MatchString(s.Timing) {
		return errclass.ErrSettingsInvalid.WithMessagef("unsupported timing function: %q", s.Timing)
	}
	if s.Iteration != IterationInfinite {
		n, err := strconv.Atoi(s.Iteration)
		if err != nil || n <= 0 {
			return errclass.ErrSettingsInvalid.WithMessagef("iteration must be a positive integer or %q: %q", IterationInfinite, s.Iteration)
		}
	}
	switch s.Direction {
	case DirectionNormal, DirectionReverse, DirectionAlternate, DirectionAlternateReverse:
	default:
		return errclass.ErrSettingsInvalid.WithMessagef("unsupported direction: %q", s.Direction)
	}
	return nil
}

// AnimationShorthand renders the settings as the tail of a CSS animation
// shorthand: "<duration>s <timing> <delay>s <iteration> <direction>".
func (s Settings) AnimationShorthand() string {
	return fmt.Sprintf("%ss %s %ss %s %s",
		FormatSeconds(s.Duration), s.Timing, FormatSeconds(s.Delay), s.Iteration, s.Direction)
}

// FormatSeconds renders a second count with the shortest exact representation.
func FormatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Detected is an animation recovered from a document.
type Detected struct {
	Type     AnimationType `json:"type"`
	Settings Settings      `json:"settings"`
}

var wrapperSeq atomic.Uint64

// NewWrapperClass returns a wrapper group class name: <prefix><seq36>-<rand8>.
// The sequence keeps names distinct within a process, the random part across processes.
func NewWrapperClass() string {
	n := wrapperSeq.Add(1)
	id := uuid.New()
	return fmt.Sprintf("%s%s-%x", WrapperClassPrefix, strconv.FormatUint(n, 36), id[:4])
}
