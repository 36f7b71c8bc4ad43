// Package domain contains the team member model and the payout category
// classification the calculator branches on.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Role string

const (
	RoleChatter         Role = "chatter"
	RoleChattingManager Role = "chatting_manager"
	RoleVA              Role = "va"
	RoleVAManager       Role = "va_manager"
	RoleAffiliator      Role = "affiliator"
	RoleOther           Role = "other"
)

type Department string

const (
	DepartmentChatting   Department = "chatting"
	DepartmentMarketing  Department = "marketing"
	DepartmentProduction Department = "production"
	DepartmentOps        Department = "ops"
	DepartmentAffiliate  Department = "affiliate"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type PayoutType string

const (
	PayoutTypePercentage PayoutType = "percentage"
	PayoutTypeFlatFee    PayoutType = "flat_fee"
	PayoutTypeHybrid     PayoutType = "hybrid"
	PayoutTypeNone       PayoutType = "none"
)

// TeamMember is externally owned; the engine only reads it.
type TeamMember struct {
	ID         snowflake.ID `gorm:"primaryKey"`
	Name       string       `gorm:"type:text;not null"`
	Role       Role         `gorm:"type:text;not null"`
	Department Department   `gorm:"type:text;not null"`
	Status     Status       `gorm:"type:text;not null;default:'active'"`
	PayoutType PayoutType   `gorm:"type:text;not null;default:'none'"`

	// Chatter percentages apply to that chatter's own sales.
	PayoutPercentage         float64 `gorm:"not null;default:0"`
	PayoutPercentageChatters float64 `gorm:"not null;default:0"`

	// Manager/VA percentages apply to agency revenue buckets. For each
	// bucket at most one of the total-net and messages/tips-net
	// percentages may be set; both set is a configuration error.
	ChattingPercentage         float64 `gorm:"not null;default:0"`
	ChattingPercentageMsgsTips float64 `gorm:"not null;default:0"`
	GunzoPercentage            float64 `gorm:"not null;default:0"`
	GunzoPercentageMsgsTips    float64 `gorm:"not null;default:0"`

	PayoutFlatFee float64 `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (TeamMember) TableName() string { return "team_members" }

func (m TeamMember) IsActive() bool { return m.Status == StatusActive }

// Repository is the read contract the engine uses for team members.
type Repository interface {
	List(ctx context.Context) ([]TeamMember, error)
}

var ErrUnknownRole = errors.New("unknown_role")
