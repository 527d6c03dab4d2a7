package validators

// Violation messages reported in the validation envelope.
const (
	msgRequired      = "is required"
	msgNotString     = "must be a string"
	msgNotInteger    = "must be an integer"
	msgNotNumber     = "must be a number"
	msgNotBool       = "must be a boolean"
	msgNotStringList = "must be a list of strings"
	msgNotInEnum     = "must be one of: "
	msgTooSmall      = "must be greater than or equal to "
	msgTooLarge      = "must be less than or equal to "
	msgTooShort      = "must be at least %d characters long"
	msgTooLong       = "must be at most %d characters long"
	msgTooFewItems   = "must contain at least %d items"
	msgTooManyItems  = "must contain at most %d items"
	msgItemTooLong   = "items must be at most %d characters long"
	msgNoFields      = "at least one field must be provided"
)
