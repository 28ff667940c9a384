package rider

// Params holds the tunable constants of a game.
// A Game copies its Params on construction and never changes them afterwards.
type Params struct {
	SpeedScale         float64 // World pixels scrolled per tick at speed 1.0
	Gravity            float64 // Downward acceleration while airborne
	ControlRotateScale float64 // How strongly rotational velocity turns the rider
	MinSpeed           float64 // Speed floor once the rider is up to speed

	ScreenWidth  float64 // World viewport width in pixels
	ScreenHeight float64 // World viewport height in pixels
	PlayerWidth  float64 // Rider sprite width
	PlayerHeight float64 // Rider sprite height
}

// DefaultParams returns the tuning the game was designed around.
func DefaultParams() Params {
	return Params{
		SpeedScale:         7.0,
		Gravity:            0.1,
		ControlRotateScale: 0.1,
		MinSpeed:           0.3,
		ScreenWidth:        600,
		ScreenHeight:       400,
		PlayerWidth:        30,
		PlayerHeight:       30,
	}
}
