package models

// Transaction types
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Liability types
const (
	LiabilityTypeLoan       = "loan"
	LiabilityTypeCreditCard = "credit_card"
	LiabilityTypeMortgage   = "mortgage"
	LiabilityTypePurchase   = "purchase"
	LiabilityTypeOther      = "other"
)

// Reserved categories used by reconciliation
const (
	CategorySavings          = "Savings"
	CategoryGoalWithdrawal   = "Goal Withdrawal"
	CategoryInternalTransfer = "Internal Transfer"
	CategoryDebtPayment      = "Debt Payment"
	CategoryLoan             = "Loan"
	CategoryEmergency        = "Emergency"
	CategoryOther            = "Other"
)

// Advisory categories assigned by the categorizer
const (
	CategoryGroceries      = "Groceries"
	CategoryFoodDining     = "Food & Dining"
	CategoryTransportation = "Transportation"
	CategoryHousing        = "Housing"
	CategoryUtilities      = "Utilities"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategoryHealthcare     = "Healthcare"
	CategorySalary         = "Salary"
)

// Budget periods
const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// Recurring transaction frequencies
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)
