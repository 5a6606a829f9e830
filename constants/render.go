package constants

// Panel Blending
const (
	// FractionColourToKeep is the minimum blend weight of a live source,
	// so a source never becomes fully invisible before removal
	FractionColourToKeep = 0.05

	// CoreDistanceScale converts panel distance into the bright-core
	// falloff domain (high-energy sources)
	CoreDistanceScale = 0.015

	// CoreAgeScale shrinks the bright core as diffusion age grows
	CoreAgeScale = 0.2

	// FalloffDistanceScale converts panel distance into the plain
	// inverse-distance falloff domain (low-energy sources)
	FalloffDistanceScale = 0.008

	// HueShiftPerDistance is the hue rotation in degrees per unit of
	// panel distance
	HueShiftPerDistance = 0.10

	// ValueShiftPerSource is added to the HSV value channel after each
	// source blend, wrapped modulo 360 (see render package notes)
	ValueShiftPerSource = 10
)

// Base colour of a panel with no source contribution
const (
	BaseColourR = 0
	BaseColourG = 0
	BaseColourB = 0
)
