// Package report serves the financial statements: filtered lists, partial
// updates, topic lists and the derived dashboard summaries.
package report

import (
	"context"
	"fmt"

	"github.com/findash/backend/internal/domain/shared"
	"github.com/findash/backend/internal/domain/statement"
	"github.com/findash/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

const spanService = "report"

// QueryCache caches filtered statement lists per statement kind
type QueryCache interface {
	Generation(kind string) uint64
	Get(kind, key string) (interface{}, bool)
	Set(kind string, gen uint64, key string, v interface{})
	Invalidate(kind string)
}

type noCache struct{}

func (noCache) Generation(string) uint64 { return 0 }
func (noCache) Get(string, string) (interface{}, bool) { return nil, false }
func (noCache) Set(string, uint64, string, interface{}) {}
func (noCache) Invalidate(string) {}

// ErrTopicRequired is returned by the summary operations when no topic is given
var ErrTopicRequired = shared.NewDomainError("INVALID_INPUT", "topic is required")

// ReportService provides statement operations over the statement repositories
type ReportService struct {
	profitLoss    statement.ProfitLossRepository
	balanceSheets statement.BalanceSheetRepository
	cashFlows     statement.CashFlowRepository
	cache         QueryCache
	logger        *zap.Logger
}

// Option configures a ReportService
type Option func(*ReportService)

// WithQueryCache caches filtered lists in c
func WithQueryCache(c QueryCache) Option {
	return func(s *ReportService) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *ReportService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewReportService creates a new ReportService
func NewReportService(
	profitLoss statement.ProfitLossRepository,
	balanceSheets statement.BalanceSheetRepository,
	cashFlows statement.CashFlowRepository,
	opts ...Option,
) *ReportService {
	s := &ReportService{
		profitLoss:    profitLoss,
		balanceSheets: balanceSheets,
		cashFlows:     cashFlows,
		cache:         noCache{},
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ===================== Profit and Loss =====================

// ListProfitLoss returns the profit and loss statements passing filter
func (s *ReportService) ListProfitLoss(ctx context.Context, filter statement.Filter) []statement.ProfitLossStatement {
	return list(ctx, s, statement.KindProfitLoss, s.profitLoss, statement.CloneProfitLoss, filter)
}

// UpdateProfitLoss patches one profit and loss statement
func (s *ReportService) UpdateProfitLoss(ctx context.Context, id string, patch statement.Patch) (statement.ProfitLossStatement, error) {
	return update(ctx, s, statement.KindProfitLoss, s.profitLoss, id, patch)
}

// ProfitLossSummary derives the dashboard figures for topic
func (s *ReportService) ProfitLossSummary(ctx context.Context, topic string) (*ProfitLossSummary, error) {
	rows, err := summaryRows(ctx, s, statement.KindProfitLoss, s.profitLoss, topic)
	if err != nil {
		return nil, err
	}
	return SummarizeProfitLoss(rows), nil
}

// ===================== Balance Sheet =====================

// ListBalanceSheets returns the balance sheets passing filter
func (s *ReportService) ListBalanceSheets(ctx context.Context, filter statement.Filter) []statement.BalanceSheet {
	return list(ctx, s, statement.KindBalanceSheet, s.balanceSheets, statement.CloneBalanceSheet, filter)
}

// UpdateBalanceSheet patches one balance sheet
func (s *ReportService) UpdateBalanceSheet(ctx context.Context, id string, patch statement.Patch) (statement.BalanceSheet, error) {
	return update(ctx, s, statement.KindBalanceSheet, s.balanceSheets, id, patch)
}

// BalanceSheetSummary derives the dashboard figures for topic
func (s *ReportService) BalanceSheetSummary(ctx context.Context, topic string) (*BalanceSheetSummary, error) {
	rows, err := summaryRows(ctx, s, statement.KindBalanceSheet, s.balanceSheets, topic)
	if err != nil {
		return nil, err
	}
	return SummarizeBalanceSheet(rows), nil
}

// ===================== Cash Flow =====================

// ListCashFlows returns the cash flow statements passing filter
func (s *ReportService) ListCashFlows(ctx context.Context, filter statement.Filter) []statement.CashFlowStatement {
	return list(ctx, s, statement.KindCashFlow, s.cashFlows, statement.CloneCashFlow, filter)
}

// UpdateCashFlow patches one cash flow statement
func (s *ReportService) UpdateCashFlow(ctx context.Context, id string, patch statement.Patch) (statement.CashFlowStatement, error) {
	return update(ctx, s, statement.KindCashFlow, s.cashFlows, id, patch)
}

// CashFlowSummary derives the dashboard figures for topic
func (s *ReportService) CashFlowSummary(ctx context.Context, topic string) (*CashFlowSummary, error) {
	rows, err := summaryRows(ctx, s, statement.KindCashFlow, s.cashFlows, topic)
	if err != nil {
		return nil, err
	}
	return SummarizeCashFlow(rows), nil
}

// ===================== Topics =====================

// Topics returns the distinct topics of kind in first-seen order
func (s *ReportService) Topics(ctx context.Context, kind statement.Kind) ([]string, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "topics",
		telemetry.WithAttribute(telemetry.AttrStatementKind, string(kind)))
	defer span.End()

	var topics []string
	switch kind {
	case statement.KindProfitLoss:
		topics = distinctTopics(s.profitLoss.FindAll(ctx))
	case statement.KindBalanceSheet:
		topics = distinctTopics(s.balanceSheets.FindAll(ctx))
	case statement.KindCashFlow:
		topics = distinctTopics(s.cashFlows.FindAll(ctx))
	default:
		err := shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("unknown statement kind %q", kind))
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span, telemetry.AttrResultCount, len(topics))
	return topics, nil
}

// ===================== helpers =====================

func list[S any](
	ctx context.Context,
	s *ReportService,
	kind statement.Kind,
	repo statement.Repository[S],
	clone func(S) S,
	filter statement.Filter,
) []S {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "list",
		telemetry.WithAttribute(telemetry.AttrStatementKind, string(kind)),
		telemetry.WithAttribute(telemetry.AttrTopic, filter.Topic),
		telemetry.WithAttribute(telemetry.AttrStartPeriod, filter.StartPeriod.String()),
		telemetry.WithAttribute(telemetry.AttrEndPeriod, filter.EndPeriod.String()),
	)
	defer span.End()

	key := filter.Key()
	if cached, ok := s.cache.Get(string(kind), key); ok {
		if rows, ok := cached.([]S); ok {
			telemetry.SetAttributes(span, telemetry.AttrCacheHit, true, telemetry.AttrResultCount, len(rows))
			return cloneAll(rows, clone)
		}
	}

	gen := s.cache.Generation(string(kind))
	rows := repo.FindFiltered(ctx, filter)
	s.cache.Set(string(kind), gen, key, cloneAll(rows, clone))

	telemetry.SetAttributes(span, telemetry.AttrCacheHit, false, telemetry.AttrResultCount, len(rows))
	return rows
}

func update[S any](
	ctx context.Context,
	s *ReportService,
	kind statement.Kind,
	repo statement.Repository[S],
	id string,
	patch statement.Patch,
) (S, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "update",
		telemetry.WithAttribute(telemetry.AttrStatementKind, string(kind)),
		telemetry.WithAttribute(telemetry.AttrRecordID, id),
	)
	defer span.End()

	var zero S
	updated, found, err := repo.Update(ctx, id, patch)
	if !found {
		return zero, shared.NewNotFoundError(kind.Label())
	}
	if err != nil {
		telemetry.RecordError(span, err)
		return zero, err
	}

	s.cache.Invalidate(string(kind))
	s.logger.Info("statement updated",
		zap.String("kind", string(kind)),
		zap.String("id", id),
		zap.Int("fields", len(patch.Values)),
	)
	return updated, nil
}

func summaryRows[S any](
	ctx context.Context,
	s *ReportService,
	kind statement.Kind,
	repo statement.Repository[S],
	topic string,
) ([]S, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "summary",
		telemetry.WithAttribute(telemetry.AttrStatementKind, string(kind)),
		telemetry.WithAttribute(telemetry.AttrTopic, topic),
	)
	defer span.End()

	filter := statement.Filter{Topic: topic}
	if !filter.HasTopic() {
		return nil, ErrTopicRequired
	}
	rows := repo.FindFiltered(ctx, filter)
	if len(rows) == 0 {
		return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("No %s found for topic %q", kindPlural(kind), topic))
	}
	telemetry.SetAttributes(span, telemetry.AttrResultCount, len(rows))
	return rows, nil
}

func cloneAll[S any](rows []S, clone func(S) S) []S {
	out := make([]S, len(rows))
	for i, r := range rows {
		out[i] = clone(r)
	}
	return out
}

type topicRecord interface {
	StatementTopic() string
}

func distinctTopics[S any, P interface {
	*S
	topicRecord
}](rows []S) []string {
	seen := make(map[string]struct{})
	topics := make([]string, 0)
	for i := range rows {
		t := P(&rows[i]).StatementTopic()
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		topics = append(topics, t)
	}
	return topics
}

func kindPlural(kind statement.Kind) string {
	switch kind {
	case statement.KindProfitLoss:
		return "profit and loss statements"
	case statement.KindBalanceSheet:
		return "balance sheets"
	case statement.KindCashFlow:
		return "cash flow statements"
	default:
		return "statements"
	}
}
