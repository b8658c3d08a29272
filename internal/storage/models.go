package storage

import "time"

// Result sources recorded with each archived battle.
const (
	SourceManual     = "manual"
	SourceAI         = "ai"
	SourceTournament = "tournament"
)

// BattleRecord is the archived outcome of a finished battle.
type BattleRecord struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	BattleID    string    `gorm:"uniqueIndex;size:36" json:"battleId"`
	Player1ID   string    `gorm:"index" json:"player1Id"`
	Player1Name string    `json:"player1Name"`
	Player2ID   string    `gorm:"index" json:"player2Id"`
	Player2Name string    `json:"player2Name"`
	WinnerSide  string    `json:"winnerSide"`
	WinnerID    string    `gorm:"index" json:"winnerId"`
	Turns       int       `json:"turns"`
	Source      string    `json:"source"`
	StartedAt   time.Time `json:"startedAt"`
	FinishedAt  time.Time `gorm:"index" json:"finishedAt"`
}

// CharacterStanding is the running win/loss tally of one character.
type CharacterStanding struct {
	CharacterID string    `gorm:"primaryKey" json:"characterId"`
	Name        string    `json:"name"`
	Battles     int       `json:"battles"`
	Wins        int       `json:"wins"`
	Losses      int       `json:"losses"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// WinRate is wins over battles, 0 when nothing was played.
func (s CharacterStanding) WinRate() float64 {
	if s.Battles == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Battles)
}
