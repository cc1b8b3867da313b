package blit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 values on a World entity simultaneously.
// Create one via the convenience constructors (TweenSpritePosition,
// TweenSpriteRotation, TweenSpriteScale, TweenBackground) and call
// Update(dt) each frame. Values are written back through the World, so they
// respect liveness: when the target entity is removed the group stops
// immediately.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	alive  func() bool
	apply  func(vals [4]float32)
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values. If the
// target entity has been removed, Done is set and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.alive != nil && !g.alive() {
		g.Done = true
		return
	}

	var vals [4]float32
	allDone := true
	for i := 0; i < g.count; i++ {
		v, finished := g.tweens[i].Update(dt)
		vals[i] = v
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(vals)
}

// TweenSpritePosition animates a sprite's center to (toX, toY) over duration
// seconds using the easing function.
func TweenSpritePosition(w *World, id SpriteID, toX, toY float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	x, y, _ := w.SpritePosition(id)
	g := &TweenGroup{
		count: 2,
		alive: func() bool { return w.SpriteActive(id) },
		apply: func(v [4]float32) { w.SetSpritePosition(id, v[0], v[1]) },
	}
	g.tweens[0] = gween.New(x, toX, duration, fn)
	g.tweens[1] = gween.New(y, toY, duration, fn)
	return g
}

// TweenSpriteRotation animates a sprite's rotation to the target angle.
// Every Update rebakes the sprite's display bitmap from its original, so
// this is far more expensive per frame than a position tween; reserve it for
// sprites that actually need animated rotation.
func TweenSpriteRotation(w *World, id SpriteID, to float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	from, _ := w.SpriteRotation(id)
	g := &TweenGroup{
		count: 1,
		alive: func() bool { return w.SpriteActive(id) },
		apply: func(v [4]float32) { w.SetSpriteRotation(id, v[0]) },
	}
	g.tweens[0] = gween.New(from, to, duration, fn)
	return g
}

// TweenSpriteScale animates a sprite's scale factors to (toSX, toSY).
// Rebakes every Update, same cost caveat as TweenSpriteRotation.
func TweenSpriteScale(w *World, id SpriteID, toSX, toSY float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	sx, sy, _ := w.SpriteScale(id)
	g := &TweenGroup{
		count: 2,
		alive: func() bool { return w.SpriteActive(id) },
		apply: func(v [4]float32) { w.SetSpriteScale(id, v[0], v[1]) },
	}
	g.tweens[0] = gween.New(sx, toSX, duration, fn)
	g.tweens[1] = gween.New(sy, toSY, duration, fn)
	return g
}

// TweenBackground animates a scene's background color to the target color.
func TweenBackground(w *World, scene SceneID, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	si := int(scene)
	var from Color
	if w.scenes.alive(si) {
		from = w.scenes.background[si]
	}
	g := &TweenGroup{
		count: 4,
		alive: func() bool { return w.SceneActive(scene) },
		apply: func(v [4]float32) {
			w.SetBackground(scene, Color{
				clampByte(v[0]), clampByte(v[1]), clampByte(v[2]), clampByte(v[3]),
			})
		},
	}
	g.tweens[0] = gween.New(float32(from.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(from.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(from.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(from.A), float32(to.A), duration, fn)
	return g
}

func clampByte(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
