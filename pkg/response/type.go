package response

// Detail is the standard error body: a single textual detail message.
type Detail struct {
	Detail string `json:"detail"`
}
