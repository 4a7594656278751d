// Package http provides the echo adapter over the core command and
// query handlers. The adapter is a thin pass-through: request payloads
// feed the core constructors, which own all validation; errors map to
// status codes by kind.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"radiopharm/internal/core/application/usecases/commands"
	"radiopharm/internal/core/application/usecases/queries"
	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/core/domain/model/order"
	"radiopharm/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeStatusHandler      commands.ChangeOrderStatusCommandHandler
	changeStatusBulkHandler  commands.ChangeOrderStatusBulkCommandHandler
	createCycleHandler       commands.CreateReactorCycleCommandHandler
	updateCycleHandler       commands.UpdateReactorCycleCommandHandler
	removeCycleHandler       commands.RemoveReactorCycleCommandHandler
	checkAvailabilityHandler queries.CheckAvailabilityQueryHandler
	getArchivedCyclesHandler queries.GetArchivedCyclesQueryHandler
}

// NewServer creates an HTTP server over the command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	changeStatusBulkHandler commands.ChangeOrderStatusBulkCommandHandler,
	createCycleHandler commands.CreateReactorCycleCommandHandler,
	updateCycleHandler commands.UpdateReactorCycleCommandHandler,
	removeCycleHandler commands.RemoveReactorCycleCommandHandler,
	checkAvailabilityHandler queries.CheckAvailabilityQueryHandler,
	getArchivedCyclesHandler queries.GetArchivedCyclesQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		changeStatusHandler:      changeStatusHandler,
		changeStatusBulkHandler:  changeStatusBulkHandler,
		createCycleHandler:       createCycleHandler,
		updateCycleHandler:       updateCycleHandler,
		removeCycleHandler:       removeCycleHandler,
		checkAvailabilityHandler: checkAvailabilityHandler,
		getArchivedCyclesHandler: getArchivedCyclesHandler,
	}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.PlaceOrder)
	v1.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	v1.POST("/orders/status", s.ChangeOrderStatusBulk)
	v1.GET("/reactor-cycles/availability", s.CheckAvailability)
	v1.GET("/reactor-cycles/archived", s.GetArchivedCycles)
	v1.POST("/reactor-cycles", s.CreateReactorCycle)
	v1.PATCH("/reactor-cycles/:id", s.UpdateReactorCycle)
	v1.DELETE("/reactor-cycles/:id", s.RemoveReactorCycle)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

const dateLayout = "2006-01-02"

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps a core error to its HTTP status: not found to 404,
// conflict to 409, value validation to 400, anything else to 500.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// PlaceOrderRequest is the payload for POST /api/v1/orders.
type PlaceOrderRequest struct {
	ClinicID       int64  `json:"clinic_id"`
	ReactorName    string `json:"reactor_name"`
	CycleID        int64  `json:"cycle_id"`
	InjectionDate  string `json:"injection_date"`
	ElbowCount     int    `json:"elbow_count"`
	DosagePerElbow string `json:"dosage_per_elbow"`
	Notes          string `json:"notes"`
}

// OrderResponse describes one order.
type OrderResponse struct {
	ID               int64      `json:"id"`
	Number           string     `json:"number"`
	ClinicID         int64      `json:"clinic_id"`
	ReactorID        int64      `json:"reactor_id"`
	CycleID          int64      `json:"cycle_id"`
	ElbowCount       int        `json:"elbow_count"`
	DosagePerElbow   string     `json:"dosage_per_elbow"`
	TotalDosage      string     `json:"total_dosage"`
	InjectionDate    string     `json:"injection_date"`
	Notes            string     `json:"notes,omitempty"`
	Status           string     `json:"status"`
	PlacedAt         time.Time  `json:"placed_at"`
	ConfirmedAt      *time.Time `json:"confirmed_at,omitempty"`
	ShippedAt        *time.Time `json:"shipped_at,omitempty"`
	OutForDeliveryAt *time.Time `json:"out_for_delivery_at,omitempty"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID(),
		Number:           o.Number(),
		ClinicID:         o.ClinicID(),
		ReactorID:        o.ReactorID(),
		CycleID:          o.CycleID(),
		ElbowCount:       o.ElbowCount(),
		DosagePerElbow:   o.DosagePerElbow().String(),
		TotalDosage:      o.TotalDosage().String(),
		InjectionDate:    o.InjectionDate().Format(dateLayout),
		Notes:            o.Notes(),
		Status:           o.Status().String(),
		PlacedAt:         o.PlacedAt(),
		ConfirmedAt:      o.ConfirmedAt(),
		ShippedAt:        o.ShippedAt(),
		OutForDeliveryAt: o.OutForDeliveryAt(),
		DeliveredAt:      o.DeliveredAt(),
		CancelledAt:      o.CancelledAt(),
	}
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	injectionDate, err := time.Parse(dateLayout, req.InjectionDate)
	if err != nil {
		return badRequest(ctx, "Invalid injection_date, expected YYYY-MM-DD")
	}

	perElbow, err := kernel.DosageFromString(req.DosagePerElbow)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		req.ClinicID, req.ReactorName, req.CycleID,
		injectionDate, req.ElbowCount, perElbow, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(placed))
}

// ChangeStatusRequest is the payload for PATCH /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// ChangeStatusBulkRequest is the payload for POST /api/v1/orders/status.
type ChangeStatusBulkRequest struct {
	OrderIDs []int64 `json:"order_ids"`
	Status   string  `json:"status"`
}

// ChangeOrderStatusBulk handles POST /api/v1/orders/status. The batch
// applies atomically; any failure changes nothing.
func (s *Server) ChangeOrderStatusBulk(ctx echo.Context) error {
	var req ChangeStatusBulkRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusBulkCommand(req.OrderIDs, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.changeStatusBulkHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(updated))
	for i, o := range updated {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AvailableCycleResponse describes one cycle able to supply a dose.
type AvailableCycleResponse struct {
	CycleID        int64  `json:"cycle_id"`
	Name           string `json:"name"`
	AvailableMass  string `json:"available_mass"`
	StartDate      string `json:"start_date"`
	ExpirationDate string `json:"expiration_date"`
}

// CheckAvailability handles GET /api/v1/reactor-cycles/availability.
// Query parameters: reactor (name), date (YYYY-MM-DD), and the optional
// exclude_order_id.
func (s *Server) CheckAvailability(ctx echo.Context) error {
	date, err := time.Parse(dateLayout, ctx.QueryParam("date"))
	if err != nil {
		return badRequest(ctx, "Invalid date, expected YYYY-MM-DD")
	}

	var excludeOrderID int64
	if raw := ctx.QueryParam("exclude_order_id"); raw != "" {
		excludeOrderID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(ctx, "Invalid exclude_order_id")
		}
	}

	query, err := queries.NewCheckAvailabilityQuery(ctx.QueryParam("reactor"), date, excludeOrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cycles, err := s.checkAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AvailableCycleResponse, len(cycles))
	for i, c := range cycles {
		response[i] = AvailableCycleResponse{
			CycleID:        c.CycleID,
			Name:           c.Name,
			AvailableMass:  c.AvailableMass.String(),
			StartDate:      c.Window.Start().Format(dateLayout),
			ExpirationDate: c.Window.End().Format(dateLayout),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ArchivedCycleResponse describes one archived cycle.
type ArchivedCycleResponse struct {
	CycleID        int64  `json:"cycle_id"`
	Name           string `json:"name"`
	ReactorID      int64  `json:"reactor_id"`
	Mass           string `json:"mass"`
	StartDate      string `json:"start_date"`
	ExpirationDate string `json:"expiration_date"`
	ArchivedStatus string `json:"archived_status"`
}

// GetArchivedCycles handles GET /api/v1/reactor-cycles/archived.
func (s *Server) GetArchivedCycles(ctx echo.Context) error {
	query := queries.NewGetArchivedCyclesQuery()

	cycles, err := s.getArchivedCyclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ArchivedCycleResponse, len(cycles))
	for i, c := range cycles {
		response[i] = ArchivedCycleResponse{
			CycleID:        c.CycleID,
			Name:           c.Name,
			ReactorID:      c.ReactorID,
			Mass:           c.Mass.String(),
			StartDate:      c.Window.Start().Format(dateLayout),
			ExpirationDate: c.Window.End().Format(dateLayout),
			ArchivedStatus: c.ArchivedStatus.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCycleRequest is the payload for POST /api/v1/reactor-cycles.
type CreateCycleRequest struct {
	Name           string `json:"name"`
	ReactorID      int64  `json:"reactor_id"`
	Mass           string `json:"mass"`
	StartDate      string `json:"start_date"`
	ExpirationDate string `json:"expiration_date"`
}

// CycleResponse describes one reactor cycle.
type CycleResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ReactorID      int64  `json:"reactor_id"`
	Mass           string `json:"mass"`
	StartDate      string `json:"start_date"`
	ExpirationDate string `json:"expiration_date"`
	IsEnabled      bool   `json:"is_enabled"`
	IsArchived     bool   `json:"is_archived"`
	ArchivedStatus string `json:"archived_status,omitempty"`
}

// CreateReactorCycle handles POST /api/v1/reactor-cycles.
func (s *Server) CreateReactorCycle(ctx echo.Context) error {
	var req CreateCycleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	mass, err := kernel.DosageFromString(req.Mass)
	if err != nil {
		return writeError(ctx, err)
	}

	window, err := parseWindow(req.StartDate, req.ExpirationDate)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateReactorCycleCommand(req.Name, req.ReactorID, mass, window)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createCycleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CycleResponse{
		ID:             created.ID(),
		Name:           created.Name(),
		ReactorID:      created.ReactorID(),
		Mass:           created.Mass().String(),
		StartDate:      created.Window().Start().Format(dateLayout),
		ExpirationDate: created.Window().End().Format(dateLayout),
		IsEnabled:      created.IsEnabled(),
		IsArchived:     created.IsArchived(),
		ArchivedStatus: created.ArchivedStatus().String(),
	})
}

// UpdateCycleRequest is the payload for PATCH /api/v1/reactor-cycles/:id.
// Absent fields stay unchanged; start_date and expiration_date must be
// provided together.
type UpdateCycleRequest struct {
	Name           *string `json:"name"`
	ReactorID      *int64  `json:"reactor_id"`
	Mass           *string `json:"mass"`
	StartDate      *string `json:"start_date"`
	ExpirationDate *string `json:"expiration_date"`
	IsEnabled      *bool   `json:"is_enabled"`
}

// UpdateReactorCycle handles PATCH /api/v1/reactor-cycles/:id.
func (s *Server) UpdateReactorCycle(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, "Invalid reactor cycle id")
	}

	var req UpdateCycleRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var mass *kernel.Dosage
	if req.Mass != nil {
		parsed, massErr := kernel.DosageFromString(*req.Mass)
		if massErr != nil {
			return writeError(ctx, massErr)
		}
		mass = &parsed
	}

	var window *kernel.DateWindow
	if req.StartDate != nil || req.ExpirationDate != nil {
		if req.StartDate == nil || req.ExpirationDate == nil {
			return badRequest(ctx, "start_date and expiration_date must be provided together")
		}
		parsed, windowErr := parseWindow(*req.StartDate, *req.ExpirationDate)
		if windowErr != nil {
			return badRequest(ctx, windowErr.Error())
		}
		window = &parsed
	}

	cmd, err := commands.NewUpdateReactorCycleCommand(id, req.Name, req.ReactorID, mass, window, req.IsEnabled)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updateCycleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CycleResponse{
		ID:             updated.ID(),
		Name:           updated.Name(),
		ReactorID:      updated.ReactorID(),
		Mass:           updated.Mass().String(),
		StartDate:      updated.Window().Start().Format(dateLayout),
		ExpirationDate: updated.Window().End().Format(dateLayout),
		IsEnabled:      updated.IsEnabled(),
		IsArchived:     updated.IsArchived(),
		ArchivedStatus: updated.ArchivedStatus().String(),
	})
}

// RemoveReactorCycle handles DELETE /api/v1/reactor-cycles/:id.
func (s *Server) RemoveReactorCycle(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, "Invalid reactor cycle id")
	}

	cmd, err := commands.NewRemoveReactorCycleCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeCycleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseWindow(start, end string) (kernel.DateWindow, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return kernel.DateWindow{}, errors.New("invalid start_date, expected YYYY-MM-DD")
	}

	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return kernel.DateWindow{}, errors.New("invalid expiration_date, expected YYYY-MM-DD")
	}

	return kernel.NewDateWindow(startDate, endDate)
}
