package render

import (
	"image/color"

	"github.com/automoto/lootbound/status"
)

// mix blends half of tint into c.
func mix(c, tint color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((uint16(c.R) + uint16(tint.R)) / 2),
		G: uint8((uint16(c.G) + uint16(tint.G)) / 2),
		B: uint8((uint16(c.B) + uint16(tint.B)) / 2),
		A: c.A,
	}
}

// tintOf colors c by a status effect kind, leaving it unchanged for none.
func tintOf(kind status.Kind, c color.RGBA) color.RGBA {
	p, ok := status.PolicyFor(kind)
	if !ok {
		return c
	}
	return mix(c, p.Tint)
}
