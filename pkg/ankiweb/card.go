package ankiweb

// Card is one row of the AnkiWeb search result table.
type Card struct {
	SortField string   `json:"sort_field"`
	Cells     []string `json:"cells"`
}
