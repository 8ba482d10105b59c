// services/snapshot_service.go
package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"elo-board-system/models"
)

// SnapshotService persists the container to the database and restores
// it on startup. The snapshot carries every game's configuration, every
// player's rating map and the full state of in-progress dart matches,
// so resumable matches survive a restart.
type SnapshotService struct {
	DB        *gorm.DB
	Container *models.GameContainer
}

func NewSnapshotService(db *gorm.DB, container *models.GameContainer) *SnapshotService {
	return &SnapshotService{DB: db, Container: container}
}

// Migrate creates the snapshot tables.
func (s *SnapshotService) Migrate() error {
	return s.DB.AutoMigrate(
		&models.GameRecord{},
		&models.PlayerRecord{},
		&models.TeamRecord{},
		&models.TableMatchRecord{},
		&models.DartMatchRecord{},
	)
}

// Save writes one consistent snapshot in a single transaction. Rows for
// entities that no longer exist are dropped so the table mirrors the
// container exactly.
func (s *SnapshotService) Save() error {
	snap, err := s.Container.Snapshot()
	if err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []interface{}{
			&models.DartMatchRecord{},
			&models.TableMatchRecord{},
			&models.TeamRecord{},
			&models.GameRecord{},
			&models.PlayerRecord{},
		} {
			if err := session.Delete(model).Error; err != nil {
				return err
			}
		}

		if len(snap.Players) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&snap.Players).Error; err != nil {
				return err
			}
		}
		if len(snap.Games) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&snap.Games).Error; err != nil {
				return err
			}
		}
		if len(snap.Teams) > 0 {
			if err := tx.Create(&snap.Teams).Error; err != nil {
				return err
			}
		}
		if len(snap.TableMatches) > 0 {
			if err := tx.Create(&snap.TableMatches).Error; err != nil {
				return err
			}
		}
		if len(snap.DartMatches) > 0 {
			if err := tx.Create(&snap.DartMatches).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Load reads the latest snapshot into the container. Returns false when
// the database holds no snapshot yet, leaving the container untouched.
func (s *SnapshotService) Load() (bool, error) {
	snap := &models.Snapshot{}

	if err := s.DB.Find(&snap.Players).Error; err != nil {
		return false, err
	}
	if err := s.DB.Find(&snap.Games).Error; err != nil {
		return false, err
	}
	if len(snap.Players) == 0 && len(snap.Games) == 0 {
		return false, nil
	}
	if err := s.DB.Find(&snap.Teams).Error; err != nil {
		return false, err
	}
	if err := s.DB.Order("played_at").Find(&snap.TableMatches).Error; err != nil {
		return false, err
	}
	if err := s.DB.Order("started_at").Find(&snap.DartMatches).Error; err != nil {
		return false, err
	}

	if err := s.Container.Restore(snap); err != nil {
		return false, fmt.Errorf("restore snapshot: %w", err)
	}

	log.Printf("✅ Restored snapshot: %d games, %d players, %d dart matches",
		len(snap.Games), len(snap.Players), len(snap.DartMatches))
	return true, nil
}
