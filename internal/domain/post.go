package domain

// Post is a blog entry. ID is assigned as len(posts)+1 at creation time, so
// it is not stable across deletions — deleting a post and creating another
// can reuse an ID. Author is free text, not a reference to a User.
type Post struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
	Author  string `json:"author"`
	Excerpt string `json:"excerpt"`
	Date    string `json:"date"`
}
