package steps

import (
	"context"
	"fmt"
	"strings"
)

func (lc *logisticsContext) theJournalShouldHoldRunWithOperations(runID string, operations int) error {
	if lc.journal == nil {
		return fmt.Errorf("no run journal configured")
	}
	summary, err := lc.journal.FindByID(context.Background(), runID)
	if err != nil {
		return err
	}
	if summary.Operations != operations {
		return fmt.Errorf("expected run %s to hold %d operations, got %d", runID, operations, summary.Operations)
	}
	if summary.Succeeded != lc.report.Succeeded || summary.Failed != lc.report.Failed || summary.Ignored != lc.report.Ignored {
		return fmt.Errorf("journal counts %d/%d/%d do not match the report %d/%d/%d",
			summary.Succeeded, summary.Failed, summary.Ignored,
			lc.report.Succeeded, lc.report.Failed, lc.report.Ignored)
	}
	return nil
}

func (lc *logisticsContext) thePersistedLogOfRunShouldContain(runID, message string) error {
	if lc.logRepo == nil {
		return fmt.Errorf("no run journal configured")
	}
	entries, err := lc.logRepo.GetLogs(context.Background(), runID, nil, 0)
	if err != nil {
		return err
	}

	messages := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Message == message {
			return nil
		}
		messages = append(messages, entry.Message)
	}
	return fmt.Errorf("message %q not persisted for run %s; got:\n%s", message, runID, strings.Join(messages, "\n"))
}
