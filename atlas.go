package blit

import (
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
)

// sheetFrame is one region entry in a TexturePacker-style sheet JSON.
type sheetFrame struct {
	Frame struct {
		X int `json:"x"`
		Y int `json:"y"`
		W int `json:"w"`
		H int `json:"h"`
	} `json:"frame"`
}

// sheetFile is the top-level hash-format sheet JSON: a "frames" object
// mapping region names to frame rects.
type sheetFile struct {
	Frames map[string]sheetFrame `json:"frames"`
}

// CreateSpriteFromImage creates a sprite from any image.Image, converting it
// to straight-alpha RGBA bytes.
func (w *World) CreateSpriteFromImage(img image.Image) SpriteID {
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	return w.CreateSprite(nrgba.Pix, bounds.Dx(), bounds.Dy())
}

// LoadSheet parses TexturePacker hash-format JSON and creates one sprite per
// named frame, cutting each region out of the sheet image. Returns a map
// from frame name to the created sprite's ID.
//
// Frames that fall outside the image bounds are an error; nothing is created
// for a malformed sheet (sprites made before the bad frame was encountered
// are removed again).
func (w *World) LoadSheet(jsonData []byte, img image.Image) (map[string]SpriteID, error) {
	var sheet sheetFile
	if err := json.Unmarshal(jsonData, &sheet); err != nil {
		return nil, fmt.Errorf("blit: failed to parse sheet JSON: %w", err)
	}
	if len(sheet.Frames) == 0 {
		return nil, fmt.Errorf("blit: sheet JSON has no frames")
	}

	bounds := img.Bounds()
	ids := make(map[string]SpriteID, len(sheet.Frames))
	for name, f := range sheet.Frames {
		rect := image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H).
			Add(bounds.Min)
		if !rect.In(bounds) {
			for _, id := range ids {
				w.RemoveSprite(id)
			}
			return nil, fmt.Errorf("blit: sheet frame %q (%v) outside image bounds %v", name, rect, bounds)
		}

		nrgba := image.NewNRGBA(image.Rect(0, 0, f.Frame.W, f.Frame.H))
		draw.Draw(nrgba, nrgba.Bounds(), img, rect.Min, draw.Src)
		ids[name] = w.CreateSprite(nrgba.Pix, f.Frame.W, f.Frame.H)
	}
	return ids, nil
}
