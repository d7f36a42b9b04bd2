// Package draw generates the stylesheet and measuring script for the
// draw animation family. It performs no document I/O.
package draw

import (
	"fmt"
	"strings"

	"github.com/svgmotion/svgmotion/pkg/model"
)

// Keyframe names. The detector recognizes the family by these.
const (
	KeyframesDraw        = "draw"
	KeyframesDrawReverse = "draw-reverse"
	KeyframesDrawLoop    = "draw-loop"

	fillSuffix = "-fill"

	// PathLengthProperty carries each shape's measured length.
	PathLengthProperty = "--path-length"
)

// Drawable lists the element types whose outline can be traced.
var Drawable = []string{"path", "line", "polyline", "polygon", "circle", "ellipse", "rect"}

// Artifacts is the generated markup payload for one draw animation.
type Artifacts struct {
	CSS    string
	Script string
}

// Build returns the one-shot draw (or undraw when reverse is set) artifacts.
func Build(s model.Settings, reverse bool) Artifacts {
	name := KeyframesDraw
	from, to := "var("+PathLengthProperty+")", "0"
	fillFrom, fillTo := "0", "1"
	if reverse {
		name = KeyframesDrawReverse
		from, to = to, from
		fillFrom, fillTo = fillTo, fillFrom
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s { from { stroke-dashoffset: %s; } to { stroke-dashoffset: %s; } }\n", name, from, to)
	fmt.Fprintf(&b, "@keyframes %s%s { from { fill-opacity: %s; } to { fill-opacity: %s; } }\n", name, fillSuffix, fillFrom, fillTo)
	writeRule(&b, from, name, s)
	return Artifacts{CSS: b.String(), Script: measureScript}
}

// BuildLoop returns the cyclic draw-then-erase artifacts. The cycle is
// symmetric, so iteration and direction are fixed.
func BuildLoop(s model.Settings) Artifacts {
	s.Iteration = model.IterationInfinite
	s.Direction = model.DirectionNormal
	length := "var(" + PathLengthProperty + ")"

	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s { 0%% { stroke-dashoffset: %s; } 50%% { stroke-dashoffset: 0; } 100%% { stroke-dashoffset: calc(%s * -1); } }\n",
		KeyframesDrawLoop, length, length)
	fmt.Fprintf(&b, "@keyframes %s%s { 0%%, 100%% { fill-opacity: 0; } 40%%, 60%% { fill-opacity: 1; } }\n",
		KeyframesDrawLoop, fillSuffix)
	writeRule(&b, length, KeyframesDrawLoop, s)
	return Artifacts{CSS: b.String(), Script: measureScript}
}

func writeRule(b *strings.Builder, initialOffset, name string, s model.Settings) {
	shorthand := s.AnimationShorthand()
	fmt.Fprintf(b, "%s {\n", strings.Join(Drawable, ", "))
	fmt.Fprintf(b, "  stroke-dasharray: var(%s);\n", PathLengthProperty)
	fmt.Fprintf(b, "  stroke-dashoffset: %s;\n", initialOffset)
	fmt.Fprintf(b, "  animation: %s %s both, %s%s %s both;\n", name, shorthand, name, fillSuffix, shorthand)
	b.WriteString("}\n")
}

// measureScript stores each drawable's rendered length on the element as a
// custom property. The script sits before the shapes it measures, so the
// measuring waits until the document has been parsed. It must stay free of
// '<', '&' and "]]>" so it survives both CDATA wrapping and inlining into HTML.
var measureScript = `(function () {
  var script = document.currentScript;
  function run() {
    var root = script ? script.closest('svg') : document.documentElement;
    if (!root) { return; }
    var shapes = root.querySelectorAll('` + strings.Join(Drawable, ", ") + `');
    Array.prototype.forEach.call(shapes, function (el) {
      if (typeof el.getTotalLength !== 'function') { return; }
      var length = Math.ceil(el.getTotalLength());
      el.style.setProperty('` + PathLengthProperty + `', String(length));
    });
  }
  if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', run);
  } else {
    run();
  }
})();
`
