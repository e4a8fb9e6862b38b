package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across the application so that
// entries are easy to filter and analyze.
const (
	FieldAction        = "action"
	FieldStep          = "step"
	FieldTransactionID = "transaction_id"
	FieldGoalID        = "goal_id"
	FieldLiabilityID   = "liability_id"
	FieldCategory      = "category"
	FieldAmount        = "amount"
	FieldStrategy      = "strategy"
	FieldOperation     = "operation"
	FieldCount         = "count"
	FieldReason        = "reason"
)
