package model

type Player struct {
	ID    string
	Color PlayerColor
}

type ClientPlayer struct {
	ID       string      `json:"name"`
	Color    PlayerColor `json:"color"`
	TimeLeft int         `json:"timeLeft"`
}

// MatchFoundEvent is pushed to a queued player when matchmaking pairs
// them into a game.
type MatchFoundEvent struct {
	GameID string      `json:"gameId"`
	Color  PlayerColor `json:"color"`
}

// BotPlayerID is the reserved player id the automated opponent plays
// under in games created against the bot.
const BotPlayerID = "bot"
