package storage

type Repository interface {
	// SaveRecord archives a finished battle and updates both characters'
	// standings. Saving the same battle twice is a no-op.
	SaveRecord(rec *BattleRecord) error
	// ListRecords returns the most recently finished battles first.
	ListRecords(limit int) ([]BattleRecord, error)
	// Standings returns characters ordered by wins, then fewest losses.
	Standings(limit int) ([]CharacterStanding, error)
	CountRecords() (int64, error)
}
