package handlers

import "github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/provider"

// Handler API handler entry point
type Handler struct {
	*provider.Container
}

// New creates the handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
