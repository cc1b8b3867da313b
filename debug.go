package blit

import "fmt"

// globalDebug enables invariant validation in store mutators. Plain bool, no
// atomics, since blit is single-threaded by contract.
var globalDebug bool

// SetDebugMode toggles invariant validation. When enabled, store mutations
// verify the structural invariants (bitmap lengths, parallel array lengths,
// member IDs in range) and panic with a diagnostic message on violation.
// Off by default; the checks cost real time on large worlds.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugCheckSprite validates a single sprite's store entry.
func debugCheckSprite(w *World, id SpriteID) {
	i := int(id)
	s := &w.sprites
	if want := s.origW[i] * s.origH[i] * 4; len(s.original[i]) != want {
		panic(fmt.Sprintf("blit debug: sprite %d original bitmap %d bytes, want %d", id, len(s.original[i]), want))
	}
	if want := s.dispW[i] * s.dispH[i] * 4; len(s.display[i]) != want {
		panic(fmt.Sprintf("blit debug: sprite %d display bitmap %d bytes, want %d", id, len(s.display[i]), want))
	}
}

// debugCheckScene validates a single scene's store entry, including that
// every member ID is in range of the sprite store.
func debugCheckScene(w *World, scene SceneID) {
	si := int(scene)
	s := &w.scenes
	if want := s.width[si] * s.height[si] * 4; len(s.buf[si]) != want {
		panic(fmt.Sprintf("blit debug: scene %d buffer %d bytes, want %d", scene, len(s.buf[si]), want))
	}
	for _, m := range s.members[si] {
		if int(m) >= len(w.sprites.active) {
			panic(fmt.Sprintf("blit debug: scene %d member %d out of range (%d sprites)", scene, m, len(w.sprites.active)))
		}
	}
	if !s.bgDirty[si] && len(s.bgRow[si]) != s.width[si]*4 {
		panic(fmt.Sprintf("blit debug: scene %d background row %d bytes with clean flag, want %d", scene, len(s.bgRow[si]), s.width[si]*4))
	}
}
