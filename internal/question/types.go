package question

// Question is a single trivia question as stored and served to clients.
// CategoryID is nullable: deleting a category orphans its questions rather
// than removing them, and orphans still play in the ALL scope.
type Question struct {
	ID         int    `json:"id"`
	Text       string `json:"question"`
	Answer     string `json:"answer"`
	CategoryID *int   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category groups questions under a display label.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// NewQuestion carries the fields required to insert a question; the store
// assigns the ID.
type NewQuestion struct {
	Text       string
	Answer     string
	CategoryID *int
	Difficulty int
}

// ListResult is the answer to a paginated question listing.
type ListResult struct {
	Questions  []Question
	Total      int
	Categories []Category
}

// SearchResult holds one page of a substring search. Total counts the full
// filtered set, not the page.
type SearchResult struct {
	Questions []Question
	Total     int
}

// CategoryResult holds one page of a category-scoped listing.
type CategoryResult struct {
	Questions []Question
	Total     int
	Category  Category
}

// CreateResult returns the created question together with a refreshed
// first-page listing, mirroring what list clients render after an insert.
type CreateResult struct {
	Created    Question
	Questions  []Question
	Total      int
	Categories []Category
}

// DeleteResult returns the refreshed listing after a delete.
type DeleteResult struct {
	Deleted    int
	Questions  []Question
	Total      int
	Categories []Category
}
