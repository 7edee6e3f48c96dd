package voice

type eventRequest struct {
	Kind       string `json:"kind" validate:"required,oneof=interim final error ended"`
	Transcript string `json:"transcript"`
	Message    string `json:"message"`
}
