package models

// PostSummary is the reduced projection used in list responses. It carries
// no timestamps.
type PostSummary struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Summary returns the reduced projection of the post.
func (p *Post) Summary() PostSummary {
	return PostSummary{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Author:  p.Author,
	}
}

// PostInput is the decoded body of a post create or update request. Pointer
// fields distinguish "absent" from "blank" so that partial updates can skip
// fields that were not supplied.
type PostInput struct {
	Title   *string `json:"title" validate:"omitempty,max=200"`
	Content *string `json:"content"`
	Author  *string `json:"author" validate:"omitempty,max=100"`
}

// Validate checks the input. With partial set, absent fields are allowed and
// only the supplied ones are checked; otherwise title, content and author
// are all required.
func (in *PostInput) Validate(partial bool) error {
	errs := ValidationError{}

	if partial {
		if in.Title != nil {
			requireField(errs, "title", in.Title)
		}
		if in.Content != nil {
			requireField(errs, "content", in.Content)
		}
		if in.Author != nil {
			requireField(errs, "author", in.Author)
		}
	} else {
		requireField(errs, "title", in.Title)
		requireField(errs, "content", in.Content)
		requireField(errs, "author", in.Author)
	}

	runValidator(in, errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply copies the supplied fields onto the post, leaving absent ones alone.
func (in *PostInput) Apply(post *Post) {
	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Author != nil {
		post.Author = *in.Author
	}
}
