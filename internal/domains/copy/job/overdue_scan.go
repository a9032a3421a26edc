package job

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"library-backend/internal/domains/copy/repository"
	"library-backend/pkg/logger"
)

// TypeOverdueScan is the task type for the daily overdue-loan sweep.
const TypeOverdueScan = "copy:overdue_scan"

// NewOverdueScanTask creates the periodic scan task. It carries no
// payload; the scan always runs against the current date.
func NewOverdueScanTask() *asynq.Task {
	return asynq.NewTask(TypeOverdueScan, nil)
}

// OverdueScanHandler walks every on-loan copy whose due date has
// passed and logs it for librarian follow-up.
type OverdueScanHandler struct {
	repo repository.RepositoryInterface
}

func NewOverdueScanHandler(repo repository.RepositoryInterface) *OverdueScanHandler {
	return &OverdueScanHandler{repo: repo}
}

func (h *OverdueScanHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	overdue, err := h.repo.ListOverdue(ctx, time.Now())
	if err != nil {
		logger.Error("overdue scan failed", err)
		return err
	}

	for _, c := range overdue {
		fields := map[string]interface{}{
			"copy_id": c.ID,
			"imprint": c.Imprint,
		}
		if c.DueDate != nil {
			fields["due_date"] = c.DueDate.Format("2006-01-02")
		}
		if c.BorrowerID != nil {
			fields["borrower_id"] = *c.BorrowerID
		}
		logger.Warn("copy overdue", fields)
	}

	logger.Info("overdue scan complete", map[string]interface{}{
		"overdue_count": len(overdue),
	})
	return nil
}
