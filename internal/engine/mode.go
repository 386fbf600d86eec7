package engine

// Mode is the screen the player is on.
type Mode int

const (
	ModeMenu Mode = iota
	ModeSkins
	ModePlaying
	ModeGameOver
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeSkins:
		return "skins"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Menu entries.
var (
	MainMenuItems     = []string{"Start Game", "Skins"}
	GameOverMenuItems = []string{"Play Again", "Main Menu"}
)

const (
	menuStart = 0
	menuSkins = 1

	overPlayAgain = 0
	overMainMenu  = 1
)
