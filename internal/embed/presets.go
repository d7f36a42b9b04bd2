package embed

import "github.com/svgmotion/svgmotion/pkg/model"

// keyframes for the CSS family, keyed by type. The keyframe name always
// equals the type name so the detector can map it back.
var keyframes = map[model.AnimationType]string{
	model.AnimationSpin: `@keyframes spin {
  from { transform: rotate(0deg); }
  to { transform: rotate(360deg); }
}`,
	model.AnimationPulse: `@keyframes pulse {
  0%, 100% { transform: scale(1); opacity: 1; }
  50% { transform: scale(1.1); opacity: 0.75; }
}`,
	model.AnimationBounce: `@keyframes bounce {
  0%, 20%, 50%, 80%, 100% { transform: translateY(0); }
  40% { transform: translateY(-15%); }
  60% { transform: translateY(-7%); }
}`,
	model.AnimationShake: `@keyframes shake {
  0%, 100% { transform: translateX(0); }
  10%, 30%, 50%, 70%, 90% { transform: translateX(-6%); }
  20%, 40%, 60%, 80% { transform: translateX(6%); }
}`,
	model.AnimationFade: `@keyframes fade {
  0%, 100% { opacity: 1; }
  50% { opacity: 0.3; }
}`,
}

// cssRule renders the preset stylesheet with the animation applied to selector.
func cssRule(t model.AnimationType, selector string, s model.Settings) string {
	return keyframes[t] + "\n" +
		selector + " {\n" +
		"  animation: " + string(t) + " " + s.AnimationShorthand() + ";\n" +
		"  transform-origin: center center;\n" +
		"  transform-box: fill-box;\n" +
		"}\n"
}
