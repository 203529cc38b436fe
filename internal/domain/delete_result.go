package domain

// DeleteResult describes the outcome of a delete operation.
// Raw is always the empty array on the wire; Affected is 0 or 1 in this domain.
type DeleteResult struct {
	Raw      []any `json:"raw"`
	Affected int64 `json:"affected"`
}

// NewDeleteResult creates a DeleteResult for the given number of affected rows.
func NewDeleteResult(affected int64) *DeleteResult {
	return &DeleteResult{
		Raw:      []any{},
		Affected: affected,
	}
}
