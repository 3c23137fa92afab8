package entities

import "time"

// Prediction is one recorded suitability check.
type Prediction struct {
	ID          uint     `gorm:"primaryKey" json:"-"`
	PublicID    string   `gorm:"uniqueIndex;size:36" json:"id"`
	UserID      string   `gorm:"index" json:"user_id"`
	Crop        string   `json:"crop"`
	SoilType    string   `json:"soil_type"`
	Temperature float64  `json:"temperature"`
	PH          *float64 `json:"ph,omitempty"`
	Season      string   `json:"season,omitempty"`
	Location    string   `json:"location,omitempty"`
	Score       int      `json:"score"`
	Suitable    bool     `json:"suitable"`
	Result      string   `json:"result"`
	Penalties   []string `gorm:"serializer:json" json:"penalties"`
	RankedCount int      `json:"ranked_count"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
