package blit

// sceneStore holds every scene's attributes as parallel arrays indexed by
// SceneID, following the same structure-of-arrays pattern as spriteStore.
// Two derived values are cached per scene with an explicit dirty flag each:
// the z-sorted render order and a pre-filled row of background-colored bytes.
// Mutators set the flags; renderScene rebuilds stale caches up front.
type sceneStore struct {
	buf    [][]byte
	width  []int
	height []int

	background []Color
	sampling   []SamplingMethod

	// member sprite IDs in insertion order, no duplicates
	members [][]SpriteID

	// cached ascending-by-z-index permutation of the active members
	sorted    [][]SpriteID
	sortDirty []bool

	// cached row of background-colored bytes, width*4 long
	bgRow   [][]byte
	bgDirty []bool

	active []bool
}

// add appends a scene and returns its index.
func (s *sceneStore) add(width, height int) int {
	s.buf = append(s.buf, make([]byte, width*height*4))
	s.width = append(s.width, width)
	s.height = append(s.height, height)
	s.background = append(s.background, ColorBlack)
	s.sampling = append(s.sampling, SamplingNearest)
	s.members = append(s.members, nil)
	s.sorted = append(s.sorted, nil)
	s.sortDirty = append(s.sortDirty, true)
	s.bgRow = append(s.bgRow, nil)
	s.bgDirty = append(s.bgDirty, true)
	s.active = append(s.active, true)
	return len(s.active) - 1
}

// alive reports whether index i names a currently existing scene.
func (s *sceneStore) alive(i int) bool {
	return i >= 0 && i < len(s.active) && s.active[i]
}

// attach adds a sprite to the member list, preserving insertion order and
// ignoring duplicates.
func (s *sceneStore) attach(i int, id SpriteID) {
	for _, m := range s.members[i] {
		if m == id {
			return
		}
	}
	s.members[i] = append(s.members[i], id)
	s.sortDirty[i] = true
}

// detach removes a sprite from the member list. No-op if absent.
func (s *sceneStore) detach(i int, id SpriteID) {
	members := s.members[i]
	for j, m := range members {
		if m == id {
			copy(members[j:], members[j+1:])
			s.members[i] = members[:len(members)-1]
			s.sortDirty[i] = true
			return
		}
	}
}

// contains reports whether a sprite is a member of scene i.
func (s *sceneStore) contains(i int, id SpriteID) bool {
	for _, m := range s.members[i] {
		if m == id {
			return true
		}
	}
	return false
}

// resize reallocates the pixel buffer zero-filled and invalidates the
// background row. Sprite bitmaps are untouched; they are resampled only by
// explicit bakes.
func (s *sceneStore) resize(i, width, height int) {
	s.buf[i] = make([]byte, width*height*4)
	s.width[i] = width
	s.height[i] = height
	s.bgDirty[i] = true
}
