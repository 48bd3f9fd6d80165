package response

type DocumentResponse struct {
	Document string `json:"document"`
}

type ShareResponse struct {
	Message string `json:"message"`
}
