package annotate

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/uiscout/uiscout/internal/model"
)

var (
	boxColor       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	labelTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	labelBackColor = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

// Annotate draws bounding boxes and short-id labels for every actionable
// element of a UI map onto a captured window image. windowFrame is the
// captured window's frame in screen points; element frames are
// screen-absolute and get converted to image pixels via the ratio of image
// dimensions to window dimensions (which also absorbs HiDPI scaling).
func Annotate(img image.Image, elements map[string]model.UIElement, windowFrame model.Rect) *image.RGBA {
	rgba := toRGBA(img)

	bounds := rgba.Bounds()
	scaleX, scaleY := 1.0, 1.0
	if windowFrame.Width > 0 {
		scaleX = float64(bounds.Dx()) / windowFrame.Width
	}
	if windowFrame.Height > 0 {
		scaleY = float64(bounds.Dy()) / windowFrame.Height
	}

	// Draw in sequence order so overlapping labels stack deterministically.
	ids := make([]string, 0, len(elements))
	for id := range elements {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return elements[ids[i]].ElementID < elements[ids[j]].ElementID
	})

	for _, id := range ids {
		el := elements[id]
		if !el.Actionable || el.Frame.IsZero() {
			continue
		}
		x := int((el.Frame.X - windowFrame.X) * scaleX)
		y := int((el.Frame.Y - windowFrame.Y) * scaleY)
		w := int(el.Frame.Width * scaleX)
		h := int(el.Frame.Height * scaleY)

		drawBox(rgba, x, y, x+w, y+h)
		drawLabel(rgba, x, y, el.ID)
	}
	return rgba
}

func toRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

// drawBox outlines the rectangle (x1,y1)-(x2,y2) with a 1px border.
func drawBox(img *image.RGBA, x1, y1, x2, y2 int) {
	for x := x1; x <= x2; x++ {
		setPixel(img, x, y1)
		setPixel(img, x, y2)
	}
	for y := y1; y <= y2; y++ {
		setPixel(img, x1, y)
		setPixel(img, x2, y)
	}
}

func setPixel(img *image.RGBA, x, y int) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.Set(x, y, boxColor)
	}
}

// drawLabel renders the short id on a filled background at the box's
// top-left corner.
func drawLabel(img *image.RGBA, x, y int, label string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, label).Ceil()
	height := face.Metrics().Height.Ceil()

	back := image.Rect(x, y, x+width+4, y+height+2)
	draw.Draw(img, back.Intersect(img.Bounds()), &image.Uniform{labelBackColor}, image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{labelTextColor},
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x + 2),
			Y: fixed.I(y + face.Metrics().Ascent.Ceil() + 1),
		},
	}
	d.DrawString(label)
}
