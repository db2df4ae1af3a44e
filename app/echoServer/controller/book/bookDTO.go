package book

type BookReq struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Category string `json:"category" validate:"required"`
	SerialNo string `json:"serial_no" validate:"required"`
	// Defaults to false unless explicitly true.
	Available bool `json:"available"`
}

type SearchReq struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
}
