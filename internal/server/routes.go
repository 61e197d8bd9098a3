package server

import (
	"net/http"

	"servicematch/internal/handler"
	"servicematch/internal/middleware"
)

func NewMux(api *handler.API) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/recommend", api.HandleRecommend)
	mux.HandleFunc("/generate-description", api.HandleGenerateDescription)
	mux.HandleFunc("/health", api.HandleHealth)

	return middleware.CORS(mux)
}
