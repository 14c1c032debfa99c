package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// grayShades maps a palette index to a greyscale byte the way
// original_source's lcd.rs/renderer.rs map the four shades, darkest last.
var grayShades = [4]byte{0xFF, 0xAA, 0x55, 0x00}

// PNGRenderer periodically dumps a completed frame to disk as a PNG,
// the same idea as _examples/LJS360d-RoBA/main.go's saveFrame (which
// saved the GBA's RGBA555 frame via image/png after the first frame
// completed). The LR35902 frame buffer is 2-bit palette indices rather
// than GBA RGBA555, so this converts through grayShades first instead of
// handing the buffer to image.RGBA directly.
type PNGRenderer struct {
	dir      string
	prefix   string
	interval int // dump every Nth Draw call; 1 dumps every frame
	scale    int // nearest-neighbor upscale factor, matching --scale
	count    int
}

// NewPNGRenderer dumps every interval-th frame to dir/prefixNNNN.png,
// upscaled by scale (matching the CLI's --scale flag, since a 160x144
// PNG viewed at 1:1 is hard to inspect on a modern display).
// interval<=0 and scale<=0 are both treated as 1.
func NewPNGRenderer(dir, prefix string, interval, scale int) *PNGRenderer {
	if interval <= 0 {
		interval = 1
	}
	if scale <= 0 {
		scale = 1
	}
	return &PNGRenderer{dir: dir, prefix: prefix, interval: interval, scale: scale}
}

var _ Renderer = (*PNGRenderer)(nil)

func (r *PNGRenderer) Draw(frame []byte) error {
	defer func() { r.count++ }()
	if r.count%r.interval != 0 {
		return nil
	}

	img := image.NewGray(image.Rect(0, 0, width*r.scale, height*r.scale))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			var shade byte
			if idx < len(frame) {
				shade = grayShades[frame[idx]&0x3]
			} else {
				shade = grayShades[0]
			}
			for sy := 0; sy < r.scale; sy++ {
				for sx := 0; sx < r.scale; sx++ {
					img.SetGray(x*r.scale+sx, y*r.scale+sy, color.Gray{Y: shade})
				}
			}
		}
	}

	path := fmt.Sprintf("%s/%s%04d.png", r.dir, r.prefix, r.count)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: png: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render: png: %w", err)
	}
	return nil
}
