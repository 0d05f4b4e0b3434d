package app

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	invoicedomain "github.com/gibbonedu/finance/internal/invoice/domain"
	paymentdomain "github.com/gibbonedu/finance/internal/payment/domain"
	releve24domain "github.com/gibbonedu/finance/internal/releve24/domain"
	releve24memory "github.com/gibbonedu/finance/internal/releve24/memory"
	sequencedomain "github.com/gibbonedu/finance/internal/sequence/domain"
	sequencememory "github.com/gibbonedu/finance/internal/sequence/memory"
	taxdomain "github.com/gibbonedu/finance/internal/tax/domain"
	"github.com/shopspring/decimal"
)

func amt(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse amount %q: %v", s, err)
	}
	return d
}

// recordNumber plays the gateway role: after a generated number is
// persisted, its sequence is written back so the next lookup sees it.
func recordNumber(t *testing.T, store *sequencememory.Store, prefix, number string) {
	t.Helper()
	seq, err := sequencedomain.ParseNumber(prefix, number)
	if err != nil {
		t.Fatalf("parse %q: %v", number, err)
	}
	store.Record(prefix, seq)
}

func TestInvoiceLifecycle(t *testing.T) {
	var (
		taxSvc   taxdomain.Service
		invSvc   invoicedomain.Service
		paySvc   paymentdomain.Service
		seqStore *sequencememory.Store
	)
	app := testApp(t, &taxSvc, &invSvc, &paySvc, &seqStore)
	defer app.RequireStart().RequireStop()

	ctx := context.Background()

	breakdown, err := taxSvc.Breakdown(amt(t, "1000.00"))
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	if !breakdown.Total.Equal(amt(t, "1149.75")) {
		t.Fatalf("total = %s, want 1149.75", breakdown.Total)
	}

	issued, err := invSvc.Issue(ctx, invoicedomain.Invoice{
		ID:          snowflake.ID(1001),
		TotalAmount: breakdown.Total,
		Status:      invoicedomain.StatusPending,
	})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if issued.InvoiceNumber != "INV-000001" {
		t.Fatalf("invoice number = %q, want INV-000001", issued.InvoiceNumber)
	}
	if issued.Status != invoicedomain.StatusIssued {
		t.Fatalf("status = %q, want %q", issued.Status, invoicedomain.StatusIssued)
	}
	if issued.InvoiceDate.IsZero() {
		t.Fatalf("expected invoice date stamped")
	}
	recordNumber(t, seqStore, invoicedomain.NumberPrefix, issued.InvoiceNumber)

	second, err := invSvc.Issue(ctx, invoicedomain.Invoice{
		ID:          snowflake.ID(1002),
		TotalAmount: amt(t, "250.00"),
		Status:      invoicedomain.StatusPending,
	})
	if err != nil {
		t.Fatalf("issue second: %v", err)
	}
	if second.InvoiceNumber != "INV-000002" {
		t.Fatalf("second invoice number = %q, want INV-000002", second.InvoiceNumber)
	}

	partial, err := paySvc.Record(ctx, issued, paymentdomain.RecordRequest{
		Amount: amt(t, "500.00"),
		Method: paymentdomain.MethodCash,
	})
	if err != nil {
		t.Fatalf("record partial: %v", err)
	}
	if partial.Invoice.Status != invoicedomain.StatusPartial {
		t.Fatalf("status = %q, want %q", partial.Invoice.Status, invoicedomain.StatusPartial)
	}
	if !partial.Invoice.Balance().Equal(amt(t, "649.75")) {
		t.Fatalf("balance = %s, want 649.75", partial.Invoice.Balance())
	}
	if partial.Invoice.PaidAt != nil {
		t.Fatalf("expected no paid_at on a partial invoice")
	}
	if partial.ReceiptNumber != "REC-000001" {
		t.Fatalf("receipt = %q, want REC-000001", partial.ReceiptNumber)
	}
	if partial.Payment.InvoiceID != issued.ID {
		t.Fatalf("payment bound to %d, want %d", partial.Payment.InvoiceID, issued.ID)
	}
	recordNumber(t, seqStore, paymentdomain.ReceiptNumberPrefix, partial.ReceiptNumber)

	final, err := paySvc.Record(ctx, partial.Invoice, paymentdomain.RecordRequest{
		Amount:    amt(t, "649.75"),
		Method:    paymentdomain.MethodBankTransfer,
		Reference: "WIRE-20260114",
	})
	if err != nil {
		t.Fatalf("record final: %v", err)
	}
	if final.Invoice.Status != invoicedomain.StatusPaid {
		t.Fatalf("status = %q, want %q", final.Invoice.Status, invoicedomain.StatusPaid)
	}
	if !final.Invoice.Balance().IsZero() {
		t.Fatalf("balance = %s, want 0", final.Invoice.Balance())
	}
	if final.Invoice.PaidAt == nil {
		t.Fatalf("expected paid_at stamped on full payment")
	}
	if final.ReceiptNumber != "REC-000002" {
		t.Fatalf("receipt = %q, want REC-000002", final.ReceiptNumber)
	}

	_, err = paySvc.Record(ctx, final.Invoice, paymentdomain.RecordRequest{
		Amount: amt(t, "10.00"),
		Method: paymentdomain.MethodCash,
	})
	if !errors.Is(err, paymentdomain.ErrInvoiceNotPayable) {
		t.Fatalf("err = %v, want %v", err, paymentdomain.ErrInvoiceNotPayable)
	}
}

func TestSlipFiling(t *testing.T) {
	var (
		slipSvc   releve24domain.Service
		slipStore *releve24memory.Store
		seqStore  *sequencememory.Store
	)
	app := testApp(t, &slipSvc, &slipStore, &seqStore)
	defer app.RequireStart().RequireStop()

	ctx := context.Background()
	prefix := releve24domain.NumberPrefix(2025)

	req := releve24domain.BuildRequest{
		DocumentYear:  2025,
		TotalEligible: amt(t, "8400.00"),
		FamilyID:      snowflake.ID(71),
		ChildID:       snowflake.ID(204),
		RecipientSIN:  "046454286",
	}
	original, err := slipSvc.Build(ctx, req)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if original.SlipNumber != "RL24-2025-000001" {
		t.Fatalf("slip number = %q, want RL24-2025-000001", original.SlipNumber)
	}
	if original.SlipType != releve24domain.TypeOriginal {
		t.Fatalf("slip type = %q, want %q", original.SlipType, releve24domain.TypeOriginal)
	}
	if original.Status != releve24domain.StatusDraft {
		t.Fatalf("status = %q, want %q", original.Status, releve24domain.StatusDraft)
	}
	if original.RecipientSIN != "046-454-286" {
		t.Fatalf("sin = %q, want 046-454-286", original.RecipientSIN)
	}
	slipStore.RecordOriginal(req.ChildID, req.DocumentYear)
	recordNumber(t, seqStore, prefix, original.SlipNumber)

	replacement, err := slipSvc.Build(ctx, req)
	if err != nil {
		t.Fatalf("build replacement: %v", err)
	}
	if replacement.SlipType != releve24domain.TypeAmended {
		t.Fatalf("slip type = %q, want %q", replacement.SlipType, releve24domain.TypeAmended)
	}
	if replacement.SlipNumber != "RL24-2025-000002" {
		t.Fatalf("slip number = %q, want RL24-2025-000002", replacement.SlipNumber)
	}
	recordNumber(t, seqStore, prefix, replacement.SlipNumber)

	generated, err := slipSvc.MarkGenerated(original)
	if err != nil {
		t.Fatalf("mark generated: %v", err)
	}
	sent, err := slipSvc.MarkSent(generated)
	if err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	filed, err := slipSvc.MarkFiled(sent)
	if err != nil {
		t.Fatalf("mark filed: %v", err)
	}
	if filed.Status != releve24domain.StatusFiled {
		t.Fatalf("status = %q, want %q", filed.Status, releve24domain.StatusFiled)
	}

	amended, err := slipSvc.Amend(ctx, filed)
	if err != nil {
		t.Fatalf("amend: %v", err)
	}
	if amended.Superseded.Status != releve24domain.StatusAmended {
		t.Fatalf("superseded status = %q, want %q", amended.Superseded.Status, releve24domain.StatusAmended)
	}
	if amended.Amendment.SlipType != releve24domain.TypeAmended {
		t.Fatalf("amendment type = %q, want %q", amended.Amendment.SlipType, releve24domain.TypeAmended)
	}
	if amended.Amendment.SlipNumber != "RL24-2025-000003" {
		t.Fatalf("amendment number = %q, want RL24-2025-000003", amended.Amendment.SlipNumber)
	}

	if _, err := slipSvc.Cancel(filed); !errors.Is(err, releve24domain.ErrSlipNotCancellable) {
		t.Fatalf("cancel filed: err = %v, want %v", err, releve24domain.ErrSlipNotCancellable)
	}

	fresh, err := slipSvc.Build(ctx, releve24domain.BuildRequest{
		DocumentYear:  2025,
		TotalEligible: amt(t, "1200.00"),
		FamilyID:      snowflake.ID(71),
		ChildID:       snowflake.ID(205),
		RecipientSIN:  "046454286",
	})
	if err != nil {
		t.Fatalf("build fresh: %v", err)
	}
	cancelled, err := slipSvc.Cancel(fresh)
	if err != nil {
		t.Fatalf("cancel draft: %v", err)
	}
	if cancelled.SlipType != releve24domain.TypeCancelled {
		t.Fatalf("slip type = %q, want %q", cancelled.SlipType, releve24domain.TypeCancelled)
	}
}
