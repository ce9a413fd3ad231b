package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/hello-fullstack/internal/http/message"
)

// Register wires all API routes into the provided API router.
func Register(api huma.API) {
	message.Register(api)
}
