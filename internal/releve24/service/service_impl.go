package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/gibbonedu/finance/internal/clock"
	"github.com/gibbonedu/finance/internal/observability/logger"
	"github.com/gibbonedu/finance/internal/releve24/domain"
	sequencedomain "github.com/gibbonedu/finance/internal/sequence/domain"
	"github.com/gibbonedu/finance/internal/sin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Numbers sequencedomain.Generator
	Store   domain.Store
}

type Service struct {
	log     *zap.Logger
	genID   *snowflake.Node
	clock   clock.Clock
	numbers sequencedomain.Generator
	store   domain.Store
}

func NewService(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("releve24.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		numbers: p.Numbers,
		store:   p.Store,
	}
}

// DetermineSlipType resolves Original vs Amended from the prior-slip
// lookup. Store failures propagate: a wrong type misfiles with Revenu
// Québec, so there is no safe fallback here.
func (s *Service) DetermineSlipType(ctx context.Context, personID snowflake.ID, year int) (domain.SlipType, error) {
	exists, err := s.store.HasOriginal(ctx, personID, year)
	if err != nil {
		logger.WithContext(ctx, s.log).Error("prior slip lookup failed",
			zap.Int64("person_id", int64(personID)),
			zap.Int("document_year", year),
			zap.Error(err),
		)
		return "", err
	}
	if exists {
		return domain.TypeAmended, nil
	}
	return domain.TypeOriginal, nil
}

// Build mints a Draft slip: type resolved from prior slips, number from
// the year-scoped sequence, SIN validated and stored formatted.
func (s *Service) Build(ctx context.Context, req domain.BuildRequest) (domain.Slip, error) {
	if req.DocumentYear <= 0 {
		return domain.Slip{}, domain.ErrInvalidYear
	}
	if req.FamilyID == 0 || req.ChildID == 0 {
		return domain.Slip{}, domain.ErrInvalidPerson
	}
	if req.TotalEligible.IsNegative() {
		return domain.Slip{}, domain.ErrInvalidEligible
	}
	if !sin.Valid(req.RecipientSIN) {
		return domain.Slip{}, domain.ErrInvalidSIN
	}

	slipType, err := s.DetermineSlipType(ctx, req.ChildID, req.DocumentYear)
	if err != nil {
		return domain.Slip{}, err
	}

	slip := domain.Slip{
		ID:            s.genID.Generate(),
		SlipNumber:    s.numbers.Next(ctx, domain.NumberPrefix(req.DocumentYear)),
		DocumentYear:  req.DocumentYear,
		TotalEligible: req.TotalEligible.Round(2),
		FamilyID:      req.FamilyID,
		ChildID:       req.ChildID,
		RecipientSIN:  sin.Format(req.RecipientSIN),
		SlipType:      slipType,
		Status:        domain.StatusDraft,
		CreatedAt:     s.clock.Now(),
	}

	logger.WithContext(ctx, s.log).Info("slip built",
		zap.String("slip_number", slip.SlipNumber),
		zap.Int("document_year", slip.DocumentYear),
		zap.String("slip_type", string(slip.SlipType)),
		zap.String("recipient_sin", sin.Mask(slip.RecipientSIN)),
	)
	return slip, nil
}

// Amend supersedes a sent or filed slip with a fresh amendment draft. The
// original keeps its number and moves to Amended.
func (s *Service) Amend(ctx context.Context, slip domain.Slip) (domain.AmendResult, error) {
	if !domain.CanAmend(slip) {
		return domain.AmendResult{}, domain.ErrSlipNotAmendable
	}

	amendment := slip
	amendment.ID = s.genID.Generate()
	amendment.SlipNumber = s.numbers.Next(ctx, domain.NumberPrefix(slip.DocumentYear))
	amendment.SlipType = domain.TypeAmended
	amendment.Status = domain.StatusDraft
	amendment.CreatedAt = s.clock.Now()

	superseded := slip
	superseded.Status = domain.StatusAmended

	logger.WithContext(ctx, s.log).Info("slip amended",
		zap.String("slip_number", superseded.SlipNumber),
		zap.String("amendment_number", amendment.SlipNumber),
		zap.Int("document_year", slip.DocumentYear),
	)
	return domain.AmendResult{Superseded: superseded, Amendment: amendment}, nil
}

// Cancel voids a draft Original before it is generated.
func (s *Service) Cancel(slip domain.Slip) (domain.Slip, error) {
	if !domain.CanCancel(slip) {
		return slip, domain.ErrSlipNotCancellable
	}
	slip.SlipType = domain.TypeCancelled

	s.log.Info("slip cancelled", zap.String("slip_number", slip.SlipNumber))
	return slip, nil
}

func (s *Service) MarkGenerated(slip domain.Slip) (domain.Slip, error) {
	if slip.Status != domain.StatusDraft {
		return slip, domain.ErrInvalidTransition
	}
	slip.Status = domain.StatusGenerated
	return slip, nil
}

func (s *Service) MarkSent(slip domain.Slip) (domain.Slip, error) {
	if slip.Status != domain.StatusGenerated {
		return slip, domain.ErrInvalidTransition
	}
	slip.Status = domain.StatusSent
	return slip, nil
}

// MarkFiled accepts Generated directly so a slip can be filed without a
// separate send step.
func (s *Service) MarkFiled(slip domain.Slip) (domain.Slip, error) {
	switch slip.Status {
	case domain.StatusGenerated, domain.StatusSent:
	default:
		return slip, domain.ErrInvalidTransition
	}
	slip.Status = domain.StatusFiled
	return slip, nil
}
