package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-timeclock/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// SummaryRefresher is the slice of the report service the consumer needs.
type SummaryRefresher interface {
	RefreshSummary(ctx context.Context, companyID string, date time.Time) error
}

// ConsumeShiftTransitions keeps the live dashboard summary warm: every
// published transition triggers a recompute of that company's daily summary
// cache.
func ConsumeShiftTransitions(
	ctx context.Context,
	reader *kafkago.Reader,
	refresher SummaryRefresher,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.shift_transitions")
	log.Info("shift transition consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("shift transition consumer stopped")
				return
			}
			log.Error("fetch shift transition message failed", zap.Error(err))
			continue
		}

		var event events.ShiftTransitionEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode shift transition event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		date, err := time.Parse("2006-01-02", event.WorkDate)
		if err != nil {
			log.Error("invalid work_date in shift transition event",
				zap.String("work_date", event.WorkDate),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := refresher.RefreshSummary(ctx, event.CompanyID, date); err != nil {
			log.Error("refresh daily summary failed",
				zap.String("company_id", event.CompanyID),
				zap.String("work_date", event.WorkDate),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit shift transition message failed", zap.Error(err))
			continue
		}

		log.Debug("daily summary refreshed from transition",
			zap.String("event_type", event.EventType),
			zap.String("company_id", event.CompanyID),
			zap.String("employee_id", event.EmployeeID),
		)
	}
}
