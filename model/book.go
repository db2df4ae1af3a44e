// model/book.go
package model

type Book struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	SerialNo  string `json:"serial_no"`
	Available bool   `json:"available"`
}
