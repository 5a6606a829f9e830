package render

// hsvColour carries hue in degrees [0, 360) and saturation/value on the
// 0-255 scale used by the panel firmware colour utilities.
type hsvColour struct {
	h, s, v int
}

// rgbToHSV converts integer RGB to hsvColour. Inputs above 255 are
// accepted (blown-out source colours); the value channel then also
// exceeds 255.
func rgbToHSV(r, g, b int) hsvColour {
	maxc := r
	if g > maxc {
		maxc = g
	}
	if b > maxc {
		maxc = b
	}
	minc := r
	if g < minc {
		minc = g
	}
	if b < minc {
		minc = b
	}

	c := hsvColour{v: maxc}
	if maxc == 0 {
		return c
	}
	delta := maxc - minc
	c.s = delta * 255 / maxc
	if delta == 0 {
		return c
	}

	var h int
	switch maxc {
	case r:
		h = 60 * (g - b) / delta
	case g:
		h = 60*(b-r)/delta + 120
	default:
		h = 60*(r-g)/delta + 240
	}
	if h < 0 {
		h += 360
	}
	c.h = h
	return c
}

// hsvToRGB converts hsvColour back to integer RGB. Hue outside
// [0, 360) is wrapped first.
func hsvToRGB(c hsvColour) (r, g, b int) {
	if c.s == 0 {
		return c.v, c.v, c.v
	}

	h := c.h % 360
	if h < 0 {
		h += 360
	}
	region := h / 60
	f := float64(h%60) / 60.0

	p := c.v * (255 - c.s) / 255
	q := int(float64(c.v) * (255 - f*float64(c.s)) / 255)
	t := int(float64(c.v) * (255 - (1-f)*float64(c.s)) / 255)

	switch region {
	case 0:
		return c.v, t, p
	case 1:
		return q, c.v, p
	case 2:
		return p, c.v, t
	case 3:
		return p, q, c.v
	case 4:
		return t, p, c.v
	default:
		return c.v, p, q
	}
}
