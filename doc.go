// Package blit is a software 2D sprite rasterizer. It stores sprites and
// scenes in flat structure-of-arrays stores, bakes affine transforms into
// display bitmaps, and composites sprites by z-order onto raw RGBA pixel
// buffers entirely on the CPU.
//
// # Quick start
//
// The simplest way to see output is [Run], which opens a window and renders
// the default scene every frame:
//
//	world := blit.NewWorld(640, 480)
//	hero := world.CreateRectSprite(40, 40, blit.Color{R: 255, A: 255})
//	world.AttachSprite(blit.DefaultScene, hero)
//	blit.Run(world, blit.RunConfig{Title: "My Game"})
//
// For full control, call [World.Render] yourself and read the frame back
// with [World.Frame]: raw RGBA bytes, row-major, top-left origin:
//
//	world.Render()
//	pixels := world.Frame()
//
// # Sprites and scenes
//
// A sprite is a transformable bitmap with a position (its geometric center,
// in scene coordinates whose origin is the buffer's center), a z-index, and
// an immutable original bitmap. Rotation and scale are not applied per
// frame: they are baked once into a new display bitmap by resampling the
// original through the inverse transform, so repeated renders pay nothing
// and repeated transforms never accumulate resampling error.
//
// A scene is a render target: a pixel buffer, a background color, a sampling
// method, and a member list of sprite IDs. [NewWorld] creates the default
// scene ([DefaultScene]); more can be added with [World.CreateScene].
//
// IDs are array indices: sequential, stable, and never reused. Removal flips
// a liveness flag; mutators aimed at a removed ID are silent no-ops and
// accessors report absence, so a stale ID can never corrupt the stores.
//
// # Sampling
//
// Each scene composites with one of three kernels ([SamplingNearest],
// [SamplingBilinear], [SamplingSupersampling]); bakes always use bilinear.
//
// # Extras
//
// Tweens (via [gween]) animate sprite position, rotation, scale, and scene
// background through [TweenGroup]. [World.LoadSheet] cuts sprites out of a
// TexturePacker-style sheet. [World.WritePNG] saves a rendered scene.
//
// blit is single-threaded by contract: all calls must come from one
// goroutine, and no internal locking is performed.
//
// [gween]: https://github.com/tanema/gween
package blit
