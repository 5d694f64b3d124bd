package model

// Field limits mirror the backend's column constraints.
const (
	TitleMaxLength       = 50
	DescriptionMaxLength = 200
	MediaURLMaxLength    = 100
)

// Course is the backend's course record. The gateway holds transient
// copies only; the backend owns the data.
type Course struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	InstructorName string `json:"instructorName"`
	MediaURL       string `json:"mediaUrl,omitempty"`
}

// Normalize fills the defaults the front-end applied to partial records.
func (c *Course) Normalize() {
	if c.Title == "" {
		c.Title = "Untitled Course"
	}
}
