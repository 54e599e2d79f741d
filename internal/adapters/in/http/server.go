// Package http provides the REST API of the tracking service.
// It translates HTTP requests into commands and queries and maps the error
// taxonomy onto status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP endpoints to the application use cases.
type Server struct {
	// Command handlers
	createTrackedOrderHandler         commands.CreateTrackedOrderCommandHandler
	updateTrackedOrderHandler         commands.UpdateTrackedOrderCommandHandler
	updateTrackedOrderForOrderHandler commands.UpdateTrackedOrderForOrderCommandHandler
	deleteTrackedOrderHandler         commands.DeleteTrackedOrderCommandHandler
	addCheckpointHandler              commands.AddCheckpointCommandHandler
	updateCheckpointHandler           commands.UpdateCheckpointCommandHandler
	updateCheckpointForOrderHandler   commands.UpdateCheckpointForOrderCommandHandler
	deleteCheckpointHandler           commands.DeleteCheckpointCommandHandler
	revertHandler                     commands.RevertToPreviousCheckpointCommandHandler
	resyncHandler                     commands.RevertToLastCheckpointCommandHandler

	// Query handlers
	getTrackedOrderHandler      queries.GetTrackedOrderQueryHandler
	getTrackedOrdersHandler     queries.GetTrackedOrdersQueryHandler
	getCheckpointHistoryHandler queries.GetCheckpointHistoryQueryHandler
	getLastCheckpointHandler    queries.GetLastCheckpointQueryHandler
	getCheckpointCountHandler   queries.GetCheckpointCountQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createTrackedOrderHandler commands.CreateTrackedOrderCommandHandler,
	updateTrackedOrderHandler commands.UpdateTrackedOrderCommandHandler,
	updateTrackedOrderForOrderHandler commands.UpdateTrackedOrderForOrderCommandHandler,
	deleteTrackedOrderHandler commands.DeleteTrackedOrderCommandHandler,
	addCheckpointHandler commands.AddCheckpointCommandHandler,
	updateCheckpointHandler commands.UpdateCheckpointCommandHandler,
	updateCheckpointForOrderHandler commands.UpdateCheckpointForOrderCommandHandler,
	deleteCheckpointHandler commands.DeleteCheckpointCommandHandler,
	revertHandler commands.RevertToPreviousCheckpointCommandHandler,
	resyncHandler commands.RevertToLastCheckpointCommandHandler,
	getTrackedOrderHandler queries.GetTrackedOrderQueryHandler,
	getTrackedOrdersHandler queries.GetTrackedOrdersQueryHandler,
	getCheckpointHistoryHandler queries.GetCheckpointHistoryQueryHandler,
	getLastCheckpointHandler queries.GetLastCheckpointQueryHandler,
	getCheckpointCountHandler queries.GetCheckpointCountQueryHandler,
) *Server {
	return &Server{
		createTrackedOrderHandler:         createTrackedOrderHandler,
		updateTrackedOrderHandler:         updateTrackedOrderHandler,
		updateTrackedOrderForOrderHandler: updateTrackedOrderForOrderHandler,
		deleteTrackedOrderHandler:         deleteTrackedOrderHandler,
		addCheckpointHandler:              addCheckpointHandler,
		updateCheckpointHandler:           updateCheckpointHandler,
		updateCheckpointForOrderHandler:   updateCheckpointForOrderHandler,
		deleteCheckpointHandler:           deleteCheckpointHandler,
		revertHandler:                     revertHandler,
		resyncHandler:                     resyncHandler,
		getTrackedOrderHandler:            getTrackedOrderHandler,
		getTrackedOrdersHandler:           getTrackedOrdersHandler,
		getCheckpointHistoryHandler:       getCheckpointHistoryHandler,
		getLastCheckpointHandler:          getLastCheckpointHandler,
		getCheckpointCountHandler:         getCheckpointCountHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1 plus the health endpoint.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/tracked-orders", s.CreateTrackedOrder)
	api.GET("/tracked-orders", s.GetTrackedOrders)
	api.GET("/tracked-orders/:id", s.GetTrackedOrder)
	api.PUT("/tracked-orders/:id", s.UpdateTrackedOrder)
	api.DELETE("/tracked-orders/:id", s.DeleteTrackedOrder)
	api.POST("/tracked-orders/:id/checkpoints", s.AddCheckpoint)
	api.GET("/tracked-orders/:id/checkpoints", s.GetCheckpointHistory)
	api.GET("/tracked-orders/:id/checkpoints/last", s.GetLastCheckpoint)
	api.GET("/tracked-orders/:id/checkpoints/count", s.GetCheckpointCount)
	api.POST("/tracked-orders/:id/revert", s.RevertToPreviousCheckpoint)
	api.POST("/tracked-orders/:id/resync", s.RevertToLastCheckpoint)
	api.PUT("/tracked-orders/:id/checkpoints/:checkpointId", s.UpdateCheckpointForOrder)
	api.PUT("/orders/:orderId/tracked-orders/:id", s.UpdateTrackedOrderForOrder)
	api.PUT("/checkpoints/:id", s.UpdateCheckpoint)
	api.DELETE("/checkpoints/:id", s.DeleteCheckpoint)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateTrackedOrder handles POST /api/v1/tracked-orders.
func (s *Server) CreateTrackedOrder(ctx echo.Context) error {
	var body NewTrackedOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.NewID(body.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order_id: "+err.Error())
	}

	status, err := trackedorder.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewCreateTrackedOrderCommand(
		orderID, deliveryDateFromDate(body.EstimatedDeliveryDate), body.DeliveryAddress, status)
	if err != nil {
		return badRequest(ctx, "Invalid tracked order data: "+err.Error())
	}

	id, err := s.createTrackedOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.Int64()})
}

// GetTrackedOrders handles GET /api/v1/tracked-orders.
func (s *Server) GetTrackedOrders(ctx echo.Context) error {
	query := queries.NewGetTrackedOrdersQuery()

	orders, err := s.getTrackedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]TrackedOrder, len(orders))
	for i, order := range orders {
		response[i] = trackedOrderFromReadModel(order)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTrackedOrder handles GET /api/v1/tracked-orders/:id.
func (s *Server) GetTrackedOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	query, err := queries.NewGetTrackedOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	order, err := s.getTrackedOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackedOrderFromReadModel(*order))
}

// UpdateTrackedOrder handles PUT /api/v1/tracked-orders/:id.
func (s *Server) UpdateTrackedOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	var body UpdateTrackedOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := trackedorder.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateTrackedOrderCommand(
		id, deliveryDateFromDate(body.EstimatedDeliveryDate), status)
	if err != nil {
		return badRequest(ctx, "Invalid tracked order data: "+err.Error())
	}

	if err = s.updateTrackedOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteTrackedOrder handles DELETE /api/v1/tracked-orders/:id.
// The order's checkpoint history is removed with it.
func (s *Server) DeleteTrackedOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	cmd, err := commands.NewDeleteTrackedOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	if !s.deleteTrackedOrderHandler.Handle(ctx.Request().Context(), cmd) {
		return notFound(ctx, "Tracked order not found")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddCheckpoint handles POST /api/v1/tracked-orders/:id/checkpoints.
func (s *Server) AddCheckpoint(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	var body NewCheckpoint
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := newCheckpointCommand(id, body)
	if err != nil {
		return badRequest(ctx, "Invalid checkpoint data: "+err.Error())
	}

	checkpointID, err := s.addCheckpointHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: checkpointID.Int64()})
}

// GetCheckpointHistory handles GET /api/v1/tracked-orders/:id/checkpoints.
func (s *Server) GetCheckpointHistory(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	query, err := queries.NewGetCheckpointHistoryQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	history, err := s.getCheckpointHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Checkpoint, len(history))
	for i, cp := range history {
		response[i] = checkpointFromHistoryModel(cp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLastCheckpoint handles GET /api/v1/tracked-orders/:id/checkpoints/last.
func (s *Server) GetLastCheckpoint(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	query, err := queries.NewGetLastCheckpointQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	last, err := s.getLastCheckpointHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if last == nil {
		return notFound(ctx, "No checkpoints recorded for this order")
	}

	return ctx.JSON(http.StatusOK, checkpointFromLastModel(*last))
}

// GetCheckpointCount handles GET /api/v1/tracked-orders/:id/checkpoints/count.
func (s *Server) GetCheckpointCount(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	query, err := queries.NewGetCheckpointCountQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	count, err := s.getCheckpointCountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CheckpointCount{Count: count})
}

// RevertToPreviousCheckpoint handles POST /api/v1/tracked-orders/:id/revert.
func (s *Server) RevertToPreviousCheckpoint(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	cmd, err := commands.NewRevertToPreviousCheckpointCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	if err = s.revertHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RevertToLastCheckpoint handles POST /api/v1/tracked-orders/:id/resync.
func (s *Server) RevertToLastCheckpoint(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	cmd, err := commands.NewRevertToLastCheckpointCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	if !s.resyncHandler.Handle(ctx.Request().Context(), cmd) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to re-sync the order to its last checkpoint",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCheckpointForOrder handles PUT /api/v1/tracked-orders/:id/checkpoints/:checkpointId.
// The edit is applied only when the checkpoint belongs to the addressed order.
func (s *Server) UpdateCheckpointForOrder(ctx echo.Context) error {
	trackedOrderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	checkpointID, err := namedPathID(ctx, "checkpointId")
	if err != nil {
		return badRequest(ctx, "Invalid checkpoint id: "+err.Error())
	}

	var body NewCheckpoint
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := trackedorder.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateCheckpointForOrderCommand(
		checkpointID, trackedOrderID, body.Timestamp, body.Location, body.Description, status)
	if err != nil {
		return badRequest(ctx, "Invalid checkpoint data: "+err.Error())
	}

	if !s.updateCheckpointForOrderHandler.Handle(ctx.Request().Context(), cmd) {
		return notFound(ctx, "Checkpoint not found for this order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateTrackedOrderForOrder handles PUT /api/v1/orders/:orderId/tracked-orders/:id.
// The update is applied only when the tracked order references the addressed purchase.
func (s *Server) UpdateTrackedOrderForOrder(ctx echo.Context) error {
	trackedOrderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	orderID, err := namedPathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body UpdateTrackedOrderForOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := trackedorder.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateTrackedOrderForOrderCommand(
		trackedOrderID, orderID,
		deliveryDateFromDate(body.EstimatedDeliveryDate), body.DeliveryAddress, status)
	if err != nil {
		return badRequest(ctx, "Invalid tracked order data: "+err.Error())
	}

	if !s.updateTrackedOrderForOrderHandler.Handle(ctx.Request().Context(), cmd) {
		return notFound(ctx, "Tracked order not found for this purchase")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCheckpoint handles PUT /api/v1/checkpoints/:id.
// The owning order's status is re-synced to the edited checkpoint.
func (s *Server) UpdateCheckpoint(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	var body NewCheckpoint
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := trackedorder.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateCheckpointCommand(
		id, body.Timestamp, body.Location, body.Description, status)
	if err != nil {
		return badRequest(ctx, "Invalid checkpoint data: "+err.Error())
	}

	if err = s.updateCheckpointHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCheckpoint handles DELETE /api/v1/checkpoints/:id.
func (s *Server) DeleteCheckpoint(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	cmd, err := commands.NewDeleteCheckpointCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	if !s.deleteCheckpointHandler.Handle(ctx.Request().Context(), cmd) {
		return notFound(ctx, "Checkpoint not found")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func newCheckpointCommand(trackedOrderID kernel.ID, body NewCheckpoint) (commands.AddCheckpointCommand, error) {
	status, err := trackedorder.StatusFromString(body.Status)
	if err != nil {
		return commands.AddCheckpointCommand{}, err
	}

	timestamp := body.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	return commands.NewAddCheckpointCommand(
		trackedOrderID, timestamp, body.Location, body.Description, status)
}

func pathID(ctx echo.Context) (kernel.ID, error) {
	return namedPathID(ctx, "id")
}

func namedPathID(ctx echo.Context, name string) (kernel.ID, error) {
	raw, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return kernel.NewID(raw)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

// errorResponse maps the error taxonomy onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, err.Error())
	case errors.Is(err, errs.ErrInvalidOperation):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}
