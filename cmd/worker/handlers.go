package main

import (
	"github.com/hibiken/asynq"

	copyJob "library-backend/internal/domains/copy/job"
	"library-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	overdueScan *copyJob.OverdueScanHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		overdueScan: copyJob.NewOverdueScanHandler(c.CopyRepo),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(copyJob.TypeOverdueScan, h.overdueScan.ProcessTask)
}
