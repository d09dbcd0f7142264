package camctl

import (
	"image"
	"image/color"
	"time"

	"github.com/Prowler1000/go-camctl/pkg/controls"
)

// Frame is one synthesized frame together with the metadata captured at
// synthesis time.
type Frame struct {
	Sequence  uint64
	Timestamp time.Time
	Image     *image.RGBA

	// Metadata holds the control values that produced the frame plus the
	// per-frame outputs such as SensorTimestamp.
	Metadata *controls.ControlList
}

type renderParams struct {
	mode       TestPatternMode
	brightness float32
	contrast   float32
	saturation float32
	redGain    float32
	blueGain   float32
	ccm        controls.Matrix3x3
}

func (c *Camera) renderParamsLocked() renderParams {
	p := renderParams{
		mode:       TestPatternColourBars,
		contrast:   1,
		saturation: 1,
		redGain:    1,
		blueGain:   1,
		ccm:        controls.Identity(),
	}
	if v := c.current.Get(TestPatternModeID); v != nil {
		if n, err := v.Int32(); err == nil {
			p.mode = TestPatternMode(n)
		}
	}
	if v := c.current.Get(uint32(controls.Brightness)); v != nil {
		if f, err := v.Float(); err == nil {
			p.brightness = f
		}
	}
	if v := c.current.Get(uint32(controls.Contrast)); v != nil {
		if f, err := v.Float(); err == nil {
			p.contrast = f
		}
	}
	if v := c.current.Get(uint32(controls.Saturation)); v != nil {
		if f, err := v.Float(); err == nil {
			p.saturation = f
		}
	}
	if v := c.current.Get(uint32(controls.ColourGains)); v != nil {
		if gains, err := v.Floats(); err == nil && len(gains) == 2 {
			p.redGain, p.blueGain = gains[0], gains[1]
		}
	}
	if v := c.current.Get(uint32(controls.ColourCorrectionMatrix)); v != nil {
		if m, err := v.Matrix(); err == nil {
			p.ccm = m
		}
	}
	return p
}

// Frame synthesizes the next frame from the camera's current control
// values.
func (c *Camera) Frame() (*Frame, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrCameraClosed
	}
	seq := c.seq
	c.seq++
	params := c.renderParamsLocked()
	frameDuration := int64(33333)
	if v := c.current.Get(uint32(controls.FrameDurationLimits)); v != nil {
		if limits, err := v.Int64s(); err == nil && len(limits) == 2 {
			frameDuration = limits[0]
		}
	}
	meta := controls.NewControlList()
	for it := c.current.Iterate(); !it.End(); it.Next() {
		meta.Set(it.ID(), it.Value())
	}
	c.mu.Unlock()

	now := time.Now()
	meta.Set(uint32(controls.SensorTimestamp), controls.NewInt64(now.UnixNano()))
	meta.Set(uint32(controls.FrameDuration), controls.NewInt64(frameDuration))
	meta.Set(uint32(controls.Lux), controls.NewFloat(400))

	return &Frame{
		Sequence:  seq,
		Timestamp: now,
		Image:     renderPattern(int(c.cfg.Size.Width), int(c.cfg.Size.Height), seq, params),
		Metadata:  meta,
	}, nil
}

// SMPTE-style bar colours, white to black.
var colourBars = [8][3]float32{
	{1, 1, 1}, {1, 1, 0}, {0, 1, 1}, {0, 1, 0},
	{1, 0, 1}, {1, 0, 0}, {0, 0, 1}, {0, 0, 0},
}

func basePixel(mode TestPatternMode, x, y, w, h int, seq uint64) (float32, float32, float32) {
	switch mode {
	case TestPatternGradient:
		// horizontal ramp, scrolling one pixel per frame
		v := float32((x+int(seq))%w) / float32(w-1)
		return v, v, v
	case TestPatternCheckers:
		const square = 32
		parity := (x/square + y/square + int(seq)) % 2
		if parity == 0 {
			return 0, 0, 0
		}
		return 1, 1, 1
	case TestPatternSolid:
		return 0.5, 0.5, 0.5
	default:
		bar := x * len(colourBars) / w
		if bar >= len(colourBars) {
			bar = len(colourBars) - 1
		}
		c := colourBars[bar]
		return c[0], c[1], c[2]
	}
}

// renderPattern draws the base pattern and then runs the usual processing
// chain over it: channel gains, colour correction, saturation, contrast,
// brightness.
func renderPattern(w, h int, seq uint64, p renderParams) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	m := p.ccm
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := basePixel(p.mode, x, y, w, h, seq)

			r *= p.redGain
			b *= p.blueGain

			cr := m[0]*r + m[1]*g + m[2]*b
			cg := m[3]*r + m[4]*g + m[5]*b
			cb := m[6]*r + m[7]*g + m[8]*b

			luma := 0.299*cr + 0.587*cg + 0.114*cb
			cr = luma + (cr-luma)*p.saturation
			cg = luma + (cg-luma)*p.saturation
			cb = luma + (cb-luma)*p.saturation

			cr = (cr-0.5)*p.contrast + 0.5 + p.brightness
			cg = (cg-0.5)*p.contrast + 0.5 + p.brightness
			cb = (cb-0.5)*p.contrast + 0.5 + p.brightness

			img.SetRGBA(x, y, color.RGBA{clamp8(cr), clamp8(cg), clamp8(cb), 0xff})
		}
	}
	return img
}

func clamp8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	default:
		return uint8(v*255 + 0.5)
	}
}
