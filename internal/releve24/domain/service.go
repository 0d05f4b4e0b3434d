package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Store answers whether an Original slip already exists for a person and
// document year. personID is the child the slip certifies care for.
type Store interface {
	HasOriginal(ctx context.Context, personID snowflake.ID, year int) (bool, error)
}

type BuildRequest struct {
	DocumentYear  int
	TotalEligible decimal.Decimal
	FamilyID      snowflake.ID
	ChildID       snowflake.ID
	RecipientSIN  string
}

// AmendResult pairs the superseded slip with its replacement draft.
type AmendResult struct {
	Superseded Slip `json:"superseded"`
	Amendment  Slip `json:"amendment"`
}

type Service interface {
	DetermineSlipType(ctx context.Context, personID snowflake.ID, year int) (SlipType, error)
	Build(ctx context.Context, req BuildRequest) (Slip, error)
	Amend(ctx context.Context, slip Slip) (AmendResult, error)
	Cancel(slip Slip) (Slip, error)
	MarkGenerated(slip Slip) (Slip, error)
	MarkSent(slip Slip) (Slip, error)
	MarkFiled(slip Slip) (Slip, error)
}

var (
	ErrInvalidYear        = errors.New("invalid_document_year")
	ErrInvalidPerson      = errors.New("invalid_person")
	ErrInvalidEligible    = errors.New("invalid_eligible_amount")
	ErrInvalidSIN         = errors.New("invalid_sin")
	ErrSlipNotAmendable   = errors.New("slip_not_amendable")
	ErrSlipNotCancellable = errors.New("slip_not_cancellable")
	ErrInvalidTransition  = errors.New("invalid_slip_transition")
)
