package render

import (
	"image/color"

	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/pkg/vpa"
)

// Passability colors for visualization.
var (
	ColorPassable      = color.NRGBA{R: 80, G: 190, B: 90, A: 255}   // Green - traversable
	ColorBlocked       = color.NRGBA{R: 205, G: 70, B: 70, A: 255}   // Red - blocked
	ColorBlockedNPC    = color.NRGBA{R: 235, G: 150, B: 60, A: 255}  // Orange - blocked for NPCs
	ColorBlockedPlayer = color.NRGBA{R: 225, G: 215, B: 80, A: 255}  // Yellow - blocked for player
	ColorScripted      = color.NRGBA{R: 150, G: 85, B: 205, A: 255}  // Purple - script controlled
	ColorUnclassified  = color.NRGBA{R: 128, G: 128, B: 128, A: 255} // Gray - unknown class
)

// BackgroundColor is the viewport clear color.
var BackgroundColor = color.NRGBA{R: 26, G: 26, B: 31, A: 255}

// PassabilityColor returns the display color for a passability category.
func PassabilityColor(p vpa.Passability) color.NRGBA {
	switch p {
	case vpa.Passable:
		return ColorPassable
	case vpa.Blocked:
		return ColorBlocked
	case vpa.BlockedNPC:
		return ColorBlockedNPC
	case vpa.BlockedPlayer:
		return ColorBlockedPlayer
	case vpa.Scripted:
		return ColorScripted
	default:
		return ColorUnclassified
	}
}

// LegendEntries lists the passability categories in legend display order.
var LegendEntries = []vpa.Passability{
	vpa.Passable,
	vpa.Blocked,
	vpa.BlockedNPC,
	vpa.BlockedPlayer,
	vpa.Scripted,
	vpa.Unclassified,
}
