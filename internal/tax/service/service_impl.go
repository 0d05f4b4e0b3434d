package service

import (
	"github.com/gibbonedu/finance/internal/tax/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Cfg Config
}

type Service struct {
	gst decimal.Decimal
	qst decimal.Decimal
}

func NewService(p Params) domain.Service {
	cfg := p.Cfg.withDefaults()
	return &Service{
		gst: cfg.GSTRate,
		qst: cfg.QSTRate,
	}
}

func (s *Service) GST(subtotal decimal.Decimal) (decimal.Decimal, error) {
	if subtotal.IsNegative() {
		return decimal.Zero, domain.ErrNegativeAmount
	}
	return subtotal.Mul(s.gst).Round(2), nil
}

func (s *Service) QST(subtotal decimal.Decimal) (decimal.Decimal, error) {
	if subtotal.IsNegative() {
		return decimal.Zero, domain.ErrNegativeAmount
	}
	return subtotal.Mul(s.qst).Round(2), nil
}

func (s *Service) Total(subtotal decimal.Decimal) (decimal.Decimal, error) {
	breakdown, err := s.Breakdown(subtotal)
	if err != nil {
		return decimal.Zero, err
	}
	return breakdown.Total, nil
}

// Breakdown rounds each component to cents before summing, so the penny
// result is reproducible: 99.99 yields GST 5.00, never 4.9995.
func (s *Service) Breakdown(subtotal decimal.Decimal) (domain.Breakdown, error) {
	if subtotal.IsNegative() {
		return domain.Breakdown{}, domain.ErrNegativeAmount
	}

	sub := subtotal.Round(2)
	gst := sub.Mul(s.gst).Round(2)
	qst := sub.Mul(s.qst).Round(2)

	return domain.Breakdown{
		Subtotal: sub,
		GST:      gst,
		QST:      qst,
		Total:    sub.Add(gst).Add(qst),
	}, nil
}
