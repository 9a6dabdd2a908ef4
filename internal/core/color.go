package core

// Color is a semantic foreground color for a screen cell.
// The platform layer resolves it against the active light or dark palette,
// so game code never picks concrete terminal colors.
type Color uint8

const (
	ColorDefault  Color = iota
	ColorMuted          // road markings, hints
	ColorAccent         // headings, active controls
	ColorCar            // the player's car
	ColorObstacle       // road works
	ColorDanger         // game over, validation errors
	ColorSuccess        // confirmations
)

// String returns the palette slot name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorMuted:
		return "muted"
	case ColorAccent:
		return "accent"
	case ColorCar:
		return "car"
	case ColorObstacle:
		return "obstacle"
	case ColorDanger:
		return "danger"
	case ColorSuccess:
		return "success"
	default:
		return "unknown"
	}
}
