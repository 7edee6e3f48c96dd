package chat

type messageRequest struct {
	// Text may be blank: an empty checkout reply is still recorded.
	Text    string `json:"text" validate:"max=2000"`
	VegOnly bool   `json:"vegOnly"`
}

type imageRequest struct {
	ImageURL string `json:"imageUrl" validate:"required,url"`
	VegOnly  bool   `json:"vegOnly"`
}
