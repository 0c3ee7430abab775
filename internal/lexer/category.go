package lexer

// Category is the semantic class of a token.
type Category uint8

const (
	Text      Category = iota // Unclassified text between matches.
	Year                      // Four-digit 19xx or 20xx run.
	Label                     // Two or more uppercase letters.
	Delimiter                 // Whitespace, '.' or '-'.
	Arg                       // Literal flag spelling (optional).
)

// priority is the order the merger visits categories in. A later entry
// wins when two matches start at the same offset.
var priority = [...]Category{Year, Label, Delimiter, Arg}

var categoryNames = [...]string{
	Text:      "Text",
	Year:      "Year",
	Label:     "Label",
	Delimiter: "Delimiter",
	Arg:       "Arg",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(?)"
}

// rank returns the position of c in the priority order, or -1 for Text and
// unknown values.
func (c Category) rank() int {
	for i, p := range priority {
		if p == c {
			return i
		}
	}
	return -1
}
