package idle

// Game associates a level with a running session.
type Game struct {
	level *Level
}

// NewGame wraps the given level
func NewGame(level *Level) *Game {
	return &Game{level: level}
}

// Level being played
func (g *Game) Level() *Level {
	return g.level
}
