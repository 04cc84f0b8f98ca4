package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pagovia/settlements/internal/domain"
)

// StoredReport is the queryable header row kept for each generated report.
// The full report value is stored alongside as a JSON payload; the header
// columns exist so listings and idempotency checks never deserialize it.
type StoredReport struct {
	ID                 string              `json:"id"`
	ClientID           string              `json:"client_id"`
	ServiceID          string              `json:"service_id"`
	FileHash           string              `json:"file_hash"`
	Format             domain.ReportFormat `json:"format"`
	PeriodStart        time.Time           `json:"period_start"`
	PeriodEnd          time.Time           `json:"period_end"`
	TransactionCount   int                 `json:"transaction_count"`
	TotalAmount        decimal.Decimal     `json:"total_amount"`
	ProviderCommission decimal.Decimal     `json:"provider_commission"`
	PlatformCommission decimal.Decimal     `json:"platform_commission"`
	ClientPayout       decimal.Decimal     `json:"client_payout"`
	CreatedAt          time.Time           `json:"created_at"`
}

type ReportRepo struct {
	db *sql.DB
}

func NewReportRepo(db *sql.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// ExistsByHash checks whether a report for the given file hash has already
// been generated (idempotency check).
func (r *ReportRepo) ExistsByHash(hash string) (bool, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM reports WHERE file_hash = ?", hash,
	).Scan(&count)
	return count > 0, err
}

// Insert stores the report header, its transactions and its allocation
// breakdown in a single database transaction.
func (r *ReportRepo) Insert(sr *StoredReport, rpt *domain.Report) error {
	payload, err := json.Marshal(rpt)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO reports
		(id, client_id, service_id, file_hash, format, period_start, period_end,
		 transaction_count, total_amount, provider_commission, platform_commission,
		 client_payout, payload, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		sr.ID, sr.ClientID, sr.ServiceID, sr.FileHash, string(sr.Format),
		timeOrNil(sr.PeriodStart), timeOrNil(sr.PeriodEnd),
		sr.TransactionCount, sr.TotalAmount.String(), sr.ProviderCommission.String(),
		sr.PlatformCommission.String(), sr.ClientPayout.String(),
		string(payload), sr.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO report_transactions
		(report_id, seq, external_id, ts, device, masked_card, card_class,
		 subtotal, tip, total, refunded, provider_commission, provider_rate,
		 platform_commission, platform_rate, client_payout)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare transactions: %w", err)
	}
	defer stmt.Close()

	for i := range rpt.Transactions {
		t := &rpt.Transactions[i]
		if _, err := stmt.Exec(
			sr.ID, i, t.ExternalID, timeOrNil(t.Timestamp), t.Device, t.MaskedCard,
			string(t.CardClass), t.Subtotal.String(), t.Tip.String(), t.Total.String(),
			t.Refunded.String(), t.ProviderCommission.String(), t.ProviderRate.String(),
			t.PlatformCommission.String(), t.PlatformRate.String(), t.ClientPayout.String(),
		); err != nil {
			return fmt.Errorf("insert transaction %d: %w", i, err)
		}
	}

	allocStmt, err := tx.Prepare(
		`INSERT INTO report_allocations
		(report_id, seq, recipient_id, name, role, percentage, amount)
		VALUES (?,?,?,?,?,?,?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare allocations: %w", err)
	}
	defer allocStmt.Close()

	for i, a := range rpt.Summary.Allocations {
		if _, err := allocStmt.Exec(
			sr.ID, i, a.RecipientID, a.Name, string(a.Role),
			a.Percentage.String(), a.Amount.String(),
		); err != nil {
			return fmt.Errorf("insert allocation %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// List returns report headers newest first, optionally filtered by client.
func (r *ReportRepo) List(clientID string, page, limit int) ([]StoredReport, int, error) {
	where := ""
	args := []any{}
	if clientID != "" {
		where = " WHERE client_id = ?"
		args = append(args, clientID)
	}

	var total int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM reports"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	args = append(args, limit, (page-1)*limit)
	rows, err := r.db.Query(
		`SELECT id, client_id, service_id, file_hash, format, period_start, period_end,
		        transaction_count, total_amount, provider_commission, platform_commission,
		        client_payout, created_at
		 FROM reports`+where+` ORDER BY created_at DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var reports []StoredReport
	for rows.Next() {
		sr, err := scanStoredReport(rows)
		if err != nil {
			return nil, 0, err
		}
		reports = append(reports, sr)
	}
	return reports, total, rows.Err()
}

// GetByID returns the header and the full report payload.
func (r *ReportRepo) GetByID(id string) (*StoredReport, *domain.Report, error) {
	row := r.db.QueryRow(
		`SELECT id, client_id, service_id, file_hash, format, period_start, period_end,
		        transaction_count, total_amount, provider_commission, platform_commission,
		        client_payout, created_at, payload
		 FROM reports WHERE id = ?`, id)

	var sr StoredReport
	var periodStart, periodEnd sql.NullString
	var totalAmount, providerComm, platformComm, payout, createdAt, payload string
	err := row.Scan(
		&sr.ID, &sr.ClientID, &sr.ServiceID, &sr.FileHash, &sr.Format,
		&periodStart, &periodEnd, &sr.TransactionCount,
		&totalAmount, &providerComm, &platformComm, &payout, &createdAt, &payload,
	)
	if err != nil {
		return nil, nil, err
	}

	sr.PeriodStart = parseNullTime(periodStart)
	sr.PeriodEnd = parseNullTime(periodEnd)
	sr.TotalAmount = mustDecimal(totalAmount)
	sr.ProviderCommission = mustDecimal(providerComm)
	sr.PlatformCommission = mustDecimal(platformComm)
	sr.ClientPayout = mustDecimal(payout)
	sr.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	var rpt domain.Report
	if err := json.Unmarshal([]byte(payload), &rpt); err != nil {
		return nil, nil, fmt.Errorf("unmarshal payload: %w", err)
	}

	return &sr, &rpt, nil
}

// ListTransactions returns the stored transaction rows of a report in
// original export order.
func (r *ReportRepo) ListTransactions(reportID string) ([]domain.Transaction, error) {
	rows, err := r.db.Query(
		`SELECT external_id, ts, device, masked_card, card_class, subtotal, tip,
		        total, refunded, provider_commission, provider_rate,
		        platform_commission, platform_rate, client_payout
		 FROM report_transactions WHERE report_id = ? ORDER BY seq`, reportID)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var ts sql.NullString
		var subtotal, tip, total, refunded, provComm, provRate, platComm, platRate, payout string
		if err := rows.Scan(
			&t.ExternalID, &ts, &t.Device, &t.MaskedCard, &t.CardClass,
			&subtotal, &tip, &total, &refunded, &provComm, &provRate,
			&platComm, &platRate, &payout,
		); err != nil {
			return nil, err
		}
		t.Timestamp = parseNullTime(ts)
		t.Subtotal = mustDecimal(subtotal)
		t.Tip = mustDecimal(tip)
		t.Total = mustDecimal(total)
		t.Refunded = mustDecimal(refunded)
		t.ProviderCommission = mustDecimal(provComm)
		t.ProviderRate = mustDecimal(provRate)
		t.PlatformCommission = mustDecimal(platComm)
		t.PlatformRate = mustDecimal(platRate)
		t.ClientPayout = mustDecimal(payout)
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// --- helpers ---

func scanStoredReport(rows *sql.Rows) (StoredReport, error) {
	var sr StoredReport
	var periodStart, periodEnd sql.NullString
	var totalAmount, providerComm, platformComm, payout, createdAt string
	err := rows.Scan(
		&sr.ID, &sr.ClientID, &sr.ServiceID, &sr.FileHash, &sr.Format,
		&periodStart, &periodEnd, &sr.TransactionCount,
		&totalAmount, &providerComm, &platformComm, &payout, &createdAt,
	)
	if err != nil {
		return sr, fmt.Errorf("scan: %w", err)
	}
	sr.PeriodStart = parseNullTime(periodStart)
	sr.PeriodEnd = parseNullTime(periodEnd)
	sr.TotalAmount = mustDecimal(totalAmount)
	sr.ProviderCommission = mustDecimal(providerComm)
	sr.PlatformCommission = mustDecimal(platformComm)
	sr.ClientPayout = mustDecimal(payout)
	sr.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return sr, nil
}

func timeOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}

func parseNullTime(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, s.String)
	return t
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
