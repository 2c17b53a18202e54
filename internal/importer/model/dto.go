package model

// FieldsResponse represents the importable field schema response.
type FieldsResponse struct {
	Fields []Field `json:"fields"`
	Total  int     `json:"total"`
}

// RowError describes one spreadsheet row that could not be imported.
// Row numbers are 1-based and include the header row.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResponse represents the result of a bulk player import.
type ImportResponse struct {
	Imported int        `json:"imported"`
	Failed   int        `json:"failed"`
	Errors   []RowError `json:"errors,omitempty"`
}
