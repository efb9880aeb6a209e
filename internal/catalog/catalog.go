// Package catalog holds the fixed bookstore catalog: the category shelf
// and the bestseller table shown on the landing page.
//
// Both tables are process-wide constants. The accessors return copies so
// callers can never mutate what other renders see.
package catalog

// Category is one shelf sign on the landing page.
type Category struct {
	Icon  string `json:"icon" validate:"required"`
	Title string `json:"title" validate:"required"`
	Count int    `json:"count" validate:"gte=0"`
	Color string `json:"color" validate:"required,hexcolor,len=7"`
}

// Book is one bestseller card.
type Book struct {
	Title      string  `json:"title" validate:"required"`
	Author     string  `json:"author" validate:"required"`
	Rating     float64 `json:"rating" validate:"gte=0,lte=5"`
	Price      float64 `json:"price" validate:"gte=0"`
	CoverColor string  `json:"coverColor" validate:"required,hexcolor,len=7"`
}

var categories = [...]Category{
	{Icon: "fas fa-palette", Title: "Art & Crafts", Count: 125, Color: "#FF7F50"},
	{Icon: "fas fa-chart-pie", Title: "Infographics", Count: 90, Color: "#6A5ACD"},
	{Icon: "fas fa-child", Title: "Children's Books", Count: 200, Color: "#3CB371"},
	{Icon: "fas fa-book-open", Title: "Fiction & Fantasies", Count: 350, Color: "#DAA520"},
	{Icon: "fas fa-code", Title: "Business & Development", Count: 180, Color: "#4682B4"},
	{Icon: "fas fa-utensils", Title: "Cookbooks", Count: 70, Color: "#DC143C"},
	{Icon: "fas fa-mask", Title: "Comics & Graphic Novels", Count: 150, Color: "#8A2BE2"},
	{Icon: "fas fa-brain", Title: "Science & Philosophy", Count: 110, Color: "#008080"},
}

var bestsellers = [...]Book{
	{Title: "The Silent Code", Author: "Eva Grisham", Rating: 4.8, Price: 35.00, CoverColor: "#A0D9D9"},
	{Title: "A Martian Odyssey", Author: "Frank Herbert", Rating: 4.9, Price: 29.50, CoverColor: "#82B3C9"},
	{Title: "Digital Fortress", Author: "Todd Phillips", Rating: 4.7, Price: 24.00, CoverColor: "#C4A7E3"},
	{Title: "The Design of Everyday Things", Author: "Mark Owen", Rating: 4.6, Price: 18.00, CoverColor: "#FFD1AA"},
	{Title: "She Rises at Dawn", Author: "Eva Grey", Rating: 4.5, Price: 16.50, CoverColor: "#AED4DF"},
	{Title: "The Ocean at the End of the Lane", Author: "Niel Gaiman", Rating: 4.7, Price: 19.99, CoverColor: "#C0E0A0"},
	{Title: "Bruja Born", Author: "Zoraida Cordova", Rating: 4.8, Price: 21.00, CoverColor: "#FFC9C9"},
	{Title: "The Wood Beyond", Author: "James Henry", Rating: 4.6, Price: 22.00, CoverColor: "#D6A6A6"},
}

// Categories returns the category shelf in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// Bestsellers returns the bestseller table in display order.
func Bestsellers() []Book {
	out := make([]Book, len(bestsellers))
	copy(out, bestsellers[:])
	return out
}

// HexDigits returns color without its leading '#'. ok is false unless
// color is exactly '#' followed by six hex digits.
func HexDigits(color string) (digits string, ok bool) {
	if len(color) != 7 || color[0] != '#' {
		return "", false
	}
	for i := 1; i < len(color); i++ {
		if !isHex(color[i]) {
			return "", false
		}
	}
	return color[1:], true
}

func isHex(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
