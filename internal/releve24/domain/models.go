package domain

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// NumberPrefix scopes slip numbers by document year, e.g. RL24-2025-.
func NumberPrefix(year int) string {
	return fmt.Sprintf("RL24-%d-", year)
}

// SlipType is the filing type reported to Revenu Québec.
type SlipType string

const (
	TypeOriginal  SlipType = "original"
	TypeAmended   SlipType = "amended"
	TypeCancelled SlipType = "cancelled"
)

// FilingCode is the single-letter type code carried on the filed form.
func (t SlipType) FilingCode() string {
	switch t {
	case TypeOriginal:
		return "R"
	case TypeAmended:
		return "A"
	case TypeCancelled:
		return "D"
	}
	return ""
}

type SlipStatus string

const (
	StatusDraft     SlipStatus = "draft"
	StatusGenerated SlipStatus = "generated"
	StatusSent      SlipStatus = "sent"
	StatusFiled     SlipStatus = "filed"
	StatusAmended   SlipStatus = "amended"
)

// Slip certifies eligible childcare expenses paid for one child in one
// document year. RecipientSIN is stored formatted and only ever logged
// masked.
type Slip struct {
	ID            snowflake.ID    `json:"id"`
	SlipNumber    string          `json:"slip_number"`
	DocumentYear  int             `json:"document_year"`
	TotalEligible decimal.Decimal `json:"total_eligible"`
	FamilyID      snowflake.ID    `json:"family_id"`
	ChildID       snowflake.ID    `json:"child_id"`
	RecipientSIN  string          `json:"recipient_sin,omitempty"`
	SlipType      SlipType        `json:"slip_type"`
	Status        SlipStatus      `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
