package models

// Team is the only persisted entity; rows live in the `team` table.
type Team struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `json:"name"`
	Captain string `json:"captain"`
}

func (Team) TableName() string {
	return "team"
}
