package storage

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultListLimit = 20

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveRecord(rec *BattleRecord) error {
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = time.Now().UTC()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "battle_id"}},
			DoNothing: true,
		}).Create(rec)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// already archived
			return nil
		}
		if err := bumpStanding(tx, rec.Player1ID, rec.Player1Name, rec.WinnerID, rec.FinishedAt); err != nil {
			return err
		}
		if rec.Player2ID == rec.Player1ID {
			// mirror match: one battle, one result for the character
			return nil
		}
		return bumpStanding(tx, rec.Player2ID, rec.Player2Name, rec.WinnerID, rec.FinishedAt)
	})
}

func bumpStanding(tx *gorm.DB, characterID, name, winnerID string, at time.Time) error {
	win, loss := 0, 0
	switch {
	case winnerID == "":
	case winnerID == characterID:
		win = 1
	default:
		loss = 1
	}
	s := CharacterStanding{CharacterID: characterID, Name: name, Battles: 1, Wins: win, Losses: loss, UpdatedAt: at}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "character_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"name":       name,
			"battles":    gorm.Expr("battles + ?", 1),
			"wins":       gorm.Expr("wins + ?", win),
			"losses":     gorm.Expr("losses + ?", loss),
			"updated_at": at,
		}),
	}).Create(&s).Error
}

func (r *sqliteRepository) ListRecords(limit int) ([]BattleRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	var recs []BattleRecord
	if err := r.db.Model(&BattleRecord{}).
		Order("finished_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Standings returns top N characters ordered by Wins desc, then Losses asc.
func (r *sqliteRepository) Standings(limit int) ([]CharacterStanding, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	var out []CharacterStanding
	if err := r.db.Model(&CharacterStanding{}).
		Order("wins DESC").
		Order("losses ASC").
		Order("character_id ASC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sqliteRepository) CountRecords() (int64, error) {
	var n int64
	err := r.db.Model(&BattleRecord{}).Count(&n).Error
	return n, err
}
