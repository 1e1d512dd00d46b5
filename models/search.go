package models

// SearchParams carries user-entered search criteria. Only the fields relevant
// to Mode are ever sent to the search endpoint; the rest are ignored by the
// query builder.
type SearchParams struct {
	Mode        Mode   `json:"mode"`
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	DepartDate  string `json:"departDate,omitempty"`
	ReturnDate  string `json:"returnDate,omitempty"`
	Travelers   int    `json:"travelers,omitempty"`
	City        string `json:"city,omitempty"`
	CheckIn     string `json:"checkIn,omitempty"`
	CheckOut    string `json:"checkOut,omitempty"`
}
