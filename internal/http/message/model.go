package message

// Greeting is the fixed payload served by the API.
const Greeting = "Hello from the backend!"

// Data models the response payload for the message endpoint.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello from the backend!"`
}

// GetOutput is the response envelope for GET /api.
type GetOutput struct {
	Body Data
}
