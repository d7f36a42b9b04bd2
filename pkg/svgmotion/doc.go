// Package svgmotion embeds, removes and detects animation presets inside svg
// documents. The document itself is the only record of the animation: the
// artifacts written by Embed are recognized later by Detect and removed by
// StripOwnedArtifacts through a small set of reserved markers (see
// model.StyleID, model.ScriptID and model.WrapperClassPrefix).
//
// # Guarantees
//
//   - Document operations never fail. Malformed input is handled by a
//     text-pattern fallback and, failing that, returned unchanged.
//   - StripOwnedArtifacts is stable: applying it twice equals applying it once.
//   - Embed never accumulates artifacts: re-embedding replaces the previous
//     animation, including transitions between the CSS and draw families.
//   - Detect(Embed(doc, t, s)) recovers t and, for the CSS family, s exactly.
//
// # Concurrency Safety
//
// EnsureNamespace, StripOwnedArtifacts, Embed and Detect are pure functions
// of their input and safe to call concurrently. A PreviewCache is safe for
// concurrent Materialize calls; Clear must not overlap with them.
//
// # Usage
//
//	out := svgmotion.Embed(src, model.AnimationSpin, model.Settings{
//	    Duration: 2, Timing: "linear", Iteration: "infinite", Direction: model.DirectionNormal,
//	})
//	if d := svgmotion.Detect(out); d != nil {
//	    fmt.Println(d.Type, d.Settings.Duration)
//	}
package svgmotion
