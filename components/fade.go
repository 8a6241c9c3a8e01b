package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// FadeData is the full-screen fade overlay. Alpha 1 is fully covered.
type FadeData struct {
	Alpha float32
	Tween *gween.Tween
}

var Fade = donburi.NewComponentType[FadeData]()

// FadeTo tweens Alpha to target over seconds. A non-positive duration jumps
// straight there.
func (f *FadeData) FadeTo(target float32, seconds float64) {
	if seconds <= 0 {
		f.Alpha = target
		f.Tween = nil
		return
	}
	f.Tween = gween.New(f.Alpha, target, float32(seconds), ease.Linear)
}

// Update advances the running fade by dt seconds.
func (f *FadeData) Update(dt float64) {
	if f.Tween == nil {
		return
	}
	a, done := f.Tween.Update(float32(dt))
	f.Alpha = a
	if done {
		f.Tween = nil
	}
}
