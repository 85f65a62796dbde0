package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer.
type Color uint8

// Palette used by the games.
const (
	ColorDefault    Color = iota
	ColorRed              // Lives, game over
	ColorGreen            // Shooter player, level cleared
	ColorYellow           // Pause panel
	ColorBlue             // Deposit zones
	ColorCyan             // Carry gauge, full bucket
	ColorWhite            // Bucket
	ColorBrightCyan       // Projectiles and droplets
	ColorBrightBlue       // Titles
	ColorBrown            // Pollutant enemies
	ColorGray             // Clouds, hints
)
