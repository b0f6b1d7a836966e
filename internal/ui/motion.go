package ui

import "math"

// Card motion is a pure function of the drag offset.
const (
	// MaxRotation is the tilt in degrees at ±RotationRange
	MaxRotation   = 30.0
	RotationRange = 300.0

	// FadeStart is where the card starts to fade; it is fully gone at FadeEnd
	FadeStart = 100.0
	FadeEnd   = 300.0

	// IndicatorRange is the offset at which a decision indicator is fully shown
	IndicatorRange = 100.0
)

// Rotation maps an offset to a tilt in degrees, clamped to ±MaxRotation
func Rotation(offset float64) float64 {
	if math.IsNaN(offset) {
		return 0
	}
	return clamp(offset/RotationRange, -1, 1) * MaxRotation
}

// Opacity is 1 while |offset| <= FadeStart and falls linearly to 0 at FadeEnd
func Opacity(offset float64) float64 {
	if math.IsNaN(offset) {
		return 1
	}
	d := math.Abs(offset)
	if d <= FadeStart {
		return 1
	}
	return clamp(1-(d-FadeStart)/(FadeEnd-FadeStart), 0, 1)
}

// RejectIndicator grows from 0 at offset 0 to 1 at -IndicatorRange
func RejectIndicator(offset float64) float64 {
	if math.IsNaN(offset) {
		return 0
	}
	return clamp(-offset/IndicatorRange, 0, 1)
}

// AcceptIndicator grows from 0 at offset 0 to 1 at +IndicatorRange
func AcceptIndicator(offset float64) float64 {
	if math.IsNaN(offset) {
		return 0
	}
	return clamp(offset/IndicatorRange, 0, 1)
}

// Shift converts an offset into whole terminal columns
func Shift(offset, cellUnits float64) int {
	if cellUnits <= 0 || math.IsNaN(offset) {
		return 0
	}
	return int(math.Round(offset / cellUnits))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
