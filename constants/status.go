package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RoleUser  = 0
	RoleAdmin = 1
)

// Mood category
const (
	MoodCategoryLow     = "low"
	MoodCategoryMedium  = "medium"
	MoodCategoryHigh    = "high"
	MoodCategoryGeneral = "general"
)

// System log type
const (
	LogTypeInfo    = "info"
	LogTypeWarning = "warning"
	LogTypeError   = "error"
	LogTypeAudit   = "audit"
)
