package models

// Reference table defaults
const (
	DefaultTable = "zip_lookup"
	ZipCodeLen   = 5
)

// Lookup outcome constants, used as metric labels
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Response messages for GET /api/search
const (
	MsgZipMissing  = "ZIP code missing"
	MsgZipNotFound = "ZIP not found"
)

// Domain types

// ZipRecord is one row of the reference table. The table is owned by an
// external loader; this service only reads it.
type ZipRecord struct {
	ZipCode string `json:"zip_code"`
	State   string `json:"state"`
	MSA     string `json:"msa"`
}

// Response types

// ErrorResponse is returned for 400 and 500 responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned when a lookup has no match.
type MessageResponse struct {
	Message string `json:"message"`
}

// WrappedRecord is the {"result": record} envelope older backends return.
type WrappedRecord struct {
	Result *ZipRecord `json:"result"`
}
