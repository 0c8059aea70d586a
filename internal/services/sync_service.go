package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "ledgerdash/internal/errors"
	"ledgerdash/internal/logger"
	"ledgerdash/internal/models"
	"ledgerdash/internal/sheets"
)

// amountEpsilon is the tolerance for detecting amount changes between a
// stored document and its spreadsheet row.
const amountEpsilon = 0.001

// EntityCounts tracks the outcome of syncing one entity type.
type EntityCounts struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}

// SyncSummary is the result of a full sheet sync run. Totals are
// VAT-inclusive sums over the whole ledger after the run.
type SyncSummary struct {
	Income        EntityCounts `json:"income"`
	Expenses      EntityCounts `json:"expenses"`
	TotalIncome   float64      `json:"total_income"`
	TotalExpenses float64      `json:"total_expenses"`
	NetPosition   float64      `json:"net_position"`
	SyncedAt      time.Time    `json:"synced_at"`
}

// syncService pulls the income and expense sheets and upserts rows by
// their spreadsheet row_id.
type syncService struct {
	db           *gorm.DB
	reader       sheets.RangeReader
	categories   CategoryServicer
	incomeRange  string
	expenseRange string
}

// NewSyncService creates a new SyncServicer.
func NewSyncService(db *gorm.DB, reader sheets.RangeReader, categories CategoryServicer, incomeRange, expenseRange string) SyncServicer {
	return &syncService{
		db:           db,
		reader:       reader,
		categories:   categories,
		incomeRange:  incomeRange,
		expenseRange: expenseRange,
	}
}

// Run fetches both sheet ranges concurrently, then applies them to the
// database sequentially. A row without a row_id is skipped entirely; an
// existing row is updated only when a tracked field changed.
func (s *syncService) Run(ctx context.Context) (*SyncSummary, error) {
	log := logger.Get()

	var incomeData, expenseData [][]string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomeData, err = s.reader.ReadRange(gctx, s.incomeRange)
		return err
	})
	g.Go(func() error {
		var err error
		expenseData, err = s.reader.ReadRange(gctx, s.expenseRange)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &SyncSummary{SyncedAt: time.Now().UTC()}

	if err := s.syncIncome(newSheetTable(incomeData), &summary.Income); err != nil {
		return nil, err
	}
	if err := s.syncExpenses(newSheetTable(expenseData), &summary.Expenses); err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Income{}).
		Select("COALESCE(SUM(grand_total), 0)").Scan(&summary.TotalIncome).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(grand_total), 0)").Scan(&summary.TotalExpenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary.NetPosition = summary.TotalIncome - summary.TotalExpenses

	log.Infow("sheet sync complete",
		"income_inserted", summary.Income.Inserted,
		"income_updated", summary.Income.Updated,
		"income_skipped", summary.Income.Skipped,
		"expenses_inserted", summary.Expenses.Inserted,
		"expenses_updated", summary.Expenses.Updated,
		"expenses_skipped", summary.Expenses.Skipped,
	)
	return summary, nil
}

func (s *syncService) syncIncome(table sheetTable, counts *EntityCounts) error {
	for _, row := range table.rows {
		rowID := strings.TrimSpace(table.cell(row, "row_id"))
		if rowID == "" {
			continue
		}

		amount := parseAmount(table.cell(row, "amount"))
		vat := parseAmount(table.cell(row, "vat"))
		doc := models.Income{
			RowID:      rowID,
			DocNo:      docNoOrAuto(table.cell(row, "doc_no"), rowID),
			DocDate:    parseSheetDate(table.cell(row, "doc_date")),
			Customer:   defaultString(table.cell(row, "customer"), "Unknown"),
			Currency:   defaultString(table.cell(row, "currency"), "THB"),
			Amount:     amount,
			VAT:        vat,
			GrandTotal: grandTotalOrSum(table.cell(row, "grand_total"), amount, vat),
			Status:     parseDocStatus(table.cell(row, "status")),
			Location:   titleCase(defaultString(table.cell(row, "location"), "Unknown")),
		}

		var existing models.Income
		err := s.db.Where("row_id = ?", rowID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := s.db.Create(&doc).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			counts.Inserted++
		case err != nil:
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		case incomeChanged(&existing, &doc):
			doc.ID = existing.ID
			doc.CreatedAt = existing.CreatedAt
			if err := s.db.Save(&doc).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			counts.Updated++
		default:
			counts.Skipped++
		}
	}
	return nil
}

func (s *syncService) syncExpenses(table sheetTable, counts *EntityCounts) error {
	for _, row := range table.rows {
		rowID := strings.TrimSpace(table.cell(row, "row_id"))
		if rowID == "" {
			continue
		}

		categoryName := table.cell(row, "category")
		leaf, err := s.categories.ResolveLeaf(categoryName, table.cell(row, "subcategory"))
		if err != nil {
			return err
		}

		isRecurring := IsRecurringCategory(categoryName)
		var recurrence *string
		if isRecurring {
			monthly := "monthly"
			recurrence = &monthly
		}

		amount := parseAmount(table.cell(row, "amount"))
		vat := parseAmount(table.cell(row, "vat"))
		doc := models.Expense{
			RowID:            rowID,
			DocNo:            docNoOrAuto(table.cell(row, "doc_no"), rowID),
			DocDate:          parseSheetDate(table.cell(row, "doc_date")),
			OverdueDate:      parseOptionalSheetDate(table.cell(row, "overdue_date")),
			Supplier:         defaultString(table.cell(row, "supplier"), "Unknown"),
			Currency:         defaultString(table.cell(row, "currency"), "THB"),
			Amount:           amount,
			VAT:              vat,
			GrandTotal:       grandTotalOrSum(table.cell(row, "grand_total"), amount, vat),
			Status:           parseDocStatus(table.cell(row, "status")),
			Type:             parseExpenseType(table.cell(row, "type")),
			Location:         titleCase(defaultString(table.cell(row, "location"), "Unknown")),
			CategoryID:       leaf.ID,
			IsRecurring:      isRecurring,
			RecurrencePeriod: recurrence,
		}

		var existing models.Expense
		err = s.db.Where("row_id = ?", rowID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := s.db.Create(&doc).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			counts.Inserted++
		case err != nil:
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		case expenseChanged(&existing, &doc):
			doc.ID = existing.ID
			doc.CreatedAt = existing.CreatedAt
			if err := s.db.Save(&doc).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			counts.Updated++
		default:
			counts.Skipped++
		}
	}
	return nil
}

func incomeChanged(existing, next *models.Income) bool {
	return !existing.DocDate.Equal(next.DocDate) ||
		existing.DocNo != next.DocNo ||
		existing.Customer != next.Customer ||
		existing.Currency != next.Currency ||
		amountDiffers(existing.Amount, next.Amount) ||
		amountDiffers(existing.VAT, next.VAT) ||
		amountDiffers(existing.GrandTotal, next.GrandTotal) ||
		existing.Status != next.Status ||
		existing.Location != next.Location
}

func expenseChanged(existing, next *models.Expense) bool {
	return !existing.DocDate.Equal(next.DocDate) ||
		!optionalDateEqual(existing.OverdueDate, next.OverdueDate) ||
		existing.DocNo != next.DocNo ||
		existing.Supplier != next.Supplier ||
		existing.Currency != next.Currency ||
		amountDiffers(existing.Amount, next.Amount) ||
		amountDiffers(existing.VAT, next.VAT) ||
		amountDiffers(existing.GrandTotal, next.GrandTotal) ||
		existing.Status != next.Status ||
		existing.Type != next.Type ||
		existing.Location != next.Location ||
		existing.CategoryID != next.CategoryID
}

func amountDiffers(a, b float64) bool {
	return math.Abs(a-b) > amountEpsilon
}

func optionalDateEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// sheetTable indexes a fetched range by its header row. Column lookup
// is by normalized header name (lowercased, spaces as underscores).
type sheetTable struct {
	index map[string]int
	rows  [][]string
}

func newSheetTable(data [][]string) sheetTable {
	t := sheetTable{index: make(map[string]int)}
	if len(data) == 0 {
		return t
	}
	for i, name := range data[0] {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
		if key != "" {
			t.index[key] = i
		}
	}
	t.rows = data[1:]
	return t
}

func (t sheetTable) cell(row []string, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseAmount parses a numeric cell, tolerating thousands separators.
// Empty or unparseable cells count as zero.
func parseAmount(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseSheetDate parses a DD/MM/YYYY cell, falling back to the current
// UTC date when the cell is empty or malformed.
func parseSheetDate(s string) time.Time {
	if t, err := time.Parse("02/01/2006", s); err == nil {
		return t
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseOptionalSheetDate(s string) *time.Time {
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return nil
	}
	return &t
}

func parseDocStatus(s string) models.DocStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paid":
		return models.DocStatusPaid
	case "overdue":
		return models.DocStatusOverdue
	case "cancelled":
		return models.DocStatusCancelled
	default:
		return models.DocStatusPending
	}
}

func parseExpenseType(s string) models.ExpenseType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CAPEX":
		return models.ExpenseTypeCAPEX
	case "COGS":
		return models.ExpenseTypeCOGS
	default:
		return models.ExpenseTypeOPEX
	}
}

func docNoOrAuto(docNo, rowID string) string {
	if docNo != "" {
		return docNo
	}
	return fmt.Sprintf("AUTO-%s", rowID)
}

func grandTotalOrSum(cell string, amount, vat float64) float64 {
	if strings.TrimSpace(strings.ReplaceAll(cell, ",", "")) == "" {
		return amount + vat
	}
	return parseAmount(cell)
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// titleCase capitalizes the first letter of each word, lowering the
// rest, matching how locations are normalized in the sheet.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
