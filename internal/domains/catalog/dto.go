package catalog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AddCommentRequest - composer input for one book's thread
type AddCommentRequest struct {
	BookID int    `json:"book_id"`
	Text   string `json:"comment_text"`
}

func (r AddCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.Required),
		validation.Field(&r.Text,
			validation.Required.Error("comment text is required"),
			validation.RuneLength(1, 200).Error("comment must be 1-200 characters"),
		),
	)
}
