package report

import (
	"context"
	"fmt"

	"finview/internal/amqp"
	"finview/internal/core"
	applog "finview/internal/log"
	"finview/internal/source"
)

// EventPublisher announces a persisted report to interested consumers.
type EventPublisher interface {
	PublishReportGenerated(ctx context.Context, msg *amqp.ReportGeneratedMessage) error
}

// Service runs the report operations end to end: load records, format,
// persist, announce.
type Service struct {
	src    source.Reader
	sink   Sink
	events EventPublisher
	logger *applog.Logger
}

// NewService creates the report service. events may be nil, in which
// case no report announcements are published.
func NewService(src source.Reader, sink Sink, events EventPublisher, logger *applog.Logger) *Service {
	return &Service{
		src:    src,
		sink:   sink,
		events: events,
		logger: logger.WithComponent(applog.ComponentReport),
	}
}

// SpendingByCategory builds the category report for the 3-month window
// ending at dateStr (current date when empty) and persists it to the
// sink. A sink failure is returned as an error, but the formatted text
// is still returned alongside it. A publish failure is only logged.
func (s *Service) SpendingByCategory(ctx context.Context, category, dateStr string) (string, error) {
	s.logger.Info("category report requested",
		applog.FieldOperation, applog.OpReport,
		applog.FieldCategory, category,
		applog.FieldDate, dateStr,
	)

	ref, err := core.ParseReportDate(dateStr)
	if err != nil {
		s.logger.Error("category report failed", applog.FieldOperation, applog.OpReport, applog.FieldError, err.Error())
		return "", err
	}
	txs, err := s.src.ReadAll(ctx)
	if err != nil {
		s.logger.Error("category report failed", applog.FieldOperation, applog.OpReport, applog.FieldError, err.Error())
		return "", err
	}

	matched := categoryWindow(txs, category, ref)
	text, err := encodeJSON(toRecords(matched))
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	if err := s.sink.Persist(text); err != nil {
		s.logger.Error("report persist failed",
			applog.FieldOperation, applog.OpPersist,
			applog.FieldPath, s.sink.Path(),
			applog.FieldError, err.Error(),
		)
		return text, err
	}

	if s.events != nil {
		msg := amqp.NewReportGeneratedMessage(category, ref.Format(core.DateLayout), len(matched), s.sink.Path())
		if err := s.events.PublishReportGenerated(ctx, msg); err != nil {
			s.logger.Warn("report event publish failed", applog.FieldOperation, applog.OpPublish, applog.FieldError, err.Error())
		}
	}

	s.logger.Info("category report written",
		applog.FieldOperation, applog.OpReport,
		applog.FieldCategory, category,
		applog.FieldRecords, len(matched),
		applog.FieldPath, s.sink.Path(),
	)
	return text, nil
}

// Search renders every record matching the keyword. Nothing is
// persisted.
func (s *Service) Search(ctx context.Context, keyword string) (string, error) {
	s.logger.Info("search requested", applog.FieldOperation, applog.OpSearch, applog.FieldKeyword, keyword)

	txs, err := s.src.ReadAll(ctx)
	if err != nil {
		s.logger.Error("search failed", applog.FieldOperation, applog.OpSearch, applog.FieldError, err.Error())
		return "", err
	}
	text, err := FormatSearchResults(txs, keyword)
	if err != nil {
		s.logger.Error("search failed", applog.FieldOperation, applog.OpSearch, applog.FieldError, err.Error())
		return "", err
	}
	s.logger.Info("search finished", applog.FieldOperation, applog.OpSearch, applog.FieldKeyword, keyword)
	return text, nil
}
