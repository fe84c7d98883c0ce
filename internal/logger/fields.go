package logger

// Standard field names for structured logging.
const (
	FieldFile       = "file"
	FieldOutput     = "output"
	FieldLanguage   = "language"
	FieldFormat     = "format"
	FieldLine       = "line"
	FieldReason     = "reason"
	FieldCount      = "count"
	FieldClasses    = "classes"
	FieldInterfaces = "interfaces"
	FieldEnums      = "enums"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
)
