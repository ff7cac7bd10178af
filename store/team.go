package store

import (
	"context"
	"fmt"

	"ekrishi/models"

	"gorm.io/gorm"
)

// TeamStore persists teams in the `team` table.
type TeamStore struct {
	db *gorm.DB
}

func NewTeamStore(db *gorm.DB) *TeamStore {
	return &TeamStore{db: db}
}

// InitSchema creates the team table if it does not exist yet. Safe to call repeatedly.
func (s *TeamStore) InitSchema(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Team{}); err != nil {
		return fmt.Errorf("migrate team table: %w", err)
	}
	return nil
}

func (s *TeamStore) Insert(ctx context.Context, name, captain string) (uint, error) {
	team := models.Team{Name: name, Captain: captain}
	if err := s.db.WithContext(ctx).Create(&team).Error; err != nil {
		return 0, fmt.Errorf("insert team: %w", err)
	}
	return team.ID, nil
}

// ListAll returns every team in storage order.
func (s *TeamStore) ListAll(ctx context.Context) ([]models.Team, error) {
	teams := []models.Team{}
	if err := s.db.WithContext(ctx).Order("id").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}
