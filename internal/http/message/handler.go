package message

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-fullstack/internal/platform/logging"
)

// Path is the only route the API server answers.
const Path = "/api"

// Register wires the message route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-message",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Get the backend greeting",
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "message get", zap.String("path", Path))
	return &GetOutput{Body: Data{Message: Greeting}}, nil
}
