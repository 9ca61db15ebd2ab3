package models

// CommentInput is the decoded body of a comment create request.
type CommentInput struct {
	Content *string `json:"content"`
	Author  *string `json:"author" validate:"omitempty,max=100"`
}

// Validate checks that content and author are present and within bounds.
func (in *CommentInput) Validate() error {
	errs := ValidationError{}

	requireField(errs, "content", in.Content)
	requireField(errs, "author", in.Author)

	runValidator(in, errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}
