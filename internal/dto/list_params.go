package dto

// ListRecordsParams defines the query parameters for listing invoices or
// bills: column sort plus the composed text/date-range filter. All fields
// are optional; an empty struct returns the collection in insertion order.
type ListRecordsParams struct {
	SortBy  string `form:"sortBy" binding:"omitempty,oneof=clientName vendor creationDate referenceNumber amount status category"`
	SortDir string `form:"sortDir" binding:"omitempty,oneof=ASC DESC"`
	Search  string `form:"search"`
	From    string `form:"from"`
	To      string `form:"to"`
}
