package app

import (
	"context"

	"github.com/example/foundry/internal/logger"
	"github.com/example/foundry/internal/ports/secondary"
)

// Activity actions.
const (
	ActionDesignIntentSubmitted = "design_intent_submitted"
	ActionConfigurationSelected = "configuration_selected"
	ActionDFMEvaluated          = "dfm_evaluated"
	ActionCostSimulated         = "cost_simulated"
	ActionVendorsRanked         = "vendors_ranked"
	ActionWhatIfSimulated       = "whatif_simulated"
	ActionQuoteGenerated        = "quote_generated"
	ActionSnapshotCreated       = "snapshot_created"
	ActionVersionTagged         = "version_tagged"
)

// recordActivity appends to the activity log. Failures are logged and
// swallowed: the log is write-only and never gates an operation.
func recordActivity(ctx context.Context, activity secondary.ActivityLog, log *logger.Logger, partID, action, detail string) {
	if activity == nil {
		return
	}
	err := activity.Append(ctx, &secondary.ActivityRecord{
		PartID: partID,
		Action: action,
		Detail: detail,
	})
	if err != nil {
		log.Warn("activity append failed", "part_id", partID, "action", action, "error", err)
	}
}
