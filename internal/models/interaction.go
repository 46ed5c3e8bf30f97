package models

import (
	"time"

	"gorm.io/datatypes"
)

// Interaction is one completed question/answer exchange. Records are
// append-only; the answer column already carries the resolver
// annotation exactly as it was sent to the client.
type Interaction struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" bson:"id" json:"id"`
	UserID   string `gorm:"column:user_id;type:text;index" bson:"user_id" json:"user_id"`
	Question string `gorm:"column:question;type:text" bson:"question" json:"question"`
	Answer   string `gorm:"column:answer;type:text" bson:"answer" json:"answer"`

	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb" bson:"metadata,omitempty" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;index" bson:"created_at" json:"created_at"`
}

func (Interaction) TableName() string { return "interactions" }
