package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldAccountID   = "account_id"
	FieldAccountName = "account_name"
	FieldExpenseID   = "expense_id"
	FieldExpenseDesc = "description"
	FieldAmount      = "amount"
	FieldDate        = "date"
	FieldRemoved     = "removed"
	FieldBackend     = "backend"
	FieldDBPath      = "db_path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpCreate  = "create"
	OpList    = "list"
	OpDelete  = "delete"
	OpSummary = "summary"
	OpReceipt = "receipt"
	OpStartup = "startup"
)
