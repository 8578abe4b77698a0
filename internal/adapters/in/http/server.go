package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"quotation/internal/core/application/usecases/commands"
	"quotation/internal/core/application/usecases/queries"
	"quotation/internal/core/domain/model/access"
	"quotation/internal/core/domain/model/quote"
	"quotation/internal/core/domain/services"
	"quotation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server exposes the quote use cases over HTTP.
type Server struct {
	// Command handlers
	reserveNumberHandler commands.ReserveQuoteNumberCommandHandler
	saveQuoteHandler     commands.SaveQuoteCommandHandler
	updateQuoteHandler   commands.UpdateQuoteCommandHandler
	voidQuoteHandler     commands.VoidQuoteCommandHandler

	// Query handlers
	listQuotesHandler     queries.ListQuotesQueryHandler
	previewPricingHandler queries.PreviewPricingQueryHandler
	getDocumentHandler    queries.GetQuoteDocumentQueryHandler
	getSummaryHandler     queries.GetQuoteSummaryQueryHandler

	now    func() time.Time
	logger *slog.Logger
}

// Handlers groups the use cases served by a Server.
type Handlers struct {
	ReserveNumber  commands.ReserveQuoteNumberCommandHandler
	SaveQuote      commands.SaveQuoteCommandHandler
	UpdateQuote    commands.UpdateQuoteCommandHandler
	VoidQuote      commands.VoidQuoteCommandHandler
	ListQuotes     queries.ListQuotesQueryHandler
	PreviewPricing queries.PreviewPricingQueryHandler
	GetDocument    queries.GetQuoteDocumentQueryHandler
	GetSummary     queries.GetQuoteSummaryQueryHandler
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		reserveNumberHandler:  h.ReserveNumber,
		saveQuoteHandler:      h.SaveQuote,
		updateQuoteHandler:    h.UpdateQuote,
		voidQuoteHandler:      h.VoidQuote,
		listQuotesHandler:     h.ListQuotes,
		previewPricingHandler: h.PreviewPricing,
		getDocumentHandler:    h.GetDocument,
		getSummaryHandler:     h.GetSummary,
		now:                   time.Now,
		logger:                logger.With("component", "http"),
	}
}

// Register mounts the health check and the /api/v1 routes on e and installs
// the request validator and error handler. Requests under /api/v1 are checked
// against the embedded OpenAPI description before they reach a handler.
func (s *Server) Register(e *echo.Echo) error {
	doc, err := LoadOpenAPI(context.Background())
	if err != nil {
		return err
	}
	openAPI, err := OpenAPIMiddleware(doc)
	if err != nil {
		return err
	}

	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = s.HTTPErrorHandler

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", IdentityMiddleware(), openAPI)
	api.POST("/pricing/preview", s.PreviewPricing)
	api.GET("/quotes", s.GetQuotes)
	api.GET("/quotes/summary", s.GetQuoteSummary)
	api.POST("/quotes/numbers", s.ReserveQuoteNumber)
	api.POST("/quotes", s.SaveQuote)
	api.PATCH("/quotes/:quoteNo", s.UpdateQuote)
	api.POST("/quotes/:quoteNo/void", s.VoidQuote)
	api.GET("/quotes/:quoteNo/document", s.GetQuoteDocument)
	return nil
}

// PreviewPricing handles POST /api/v1/pricing/preview.
func (s *Server) PreviewPricing(c echo.Context) error {
	var req PreviewRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}

	query := queries.NewPreviewPricingQuery(toItems(req.Items, s.now()), quote.ModeOfService(req.ModeOfService))
	preview, err := s.previewPricingHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, PreviewResponse{
		Items:       toPricedItemResponses(preview.Items),
		Totals:      toTotalsResponse(preview.Totals),
		TransitTime: preview.TransitTime,
	})
}

// GetQuotes handles GET /api/v1/quotes. Repeat ?status= to filter and pass
// ?q= to search.
func (s *Server) GetQuotes(c echo.Context) error {
	var names *[]string
	if err := runtime.BindQueryParameter("form", true, false, "status", c.QueryParams(), &names); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status filter").SetInternal(err)
	}
	var search *string
	if err := runtime.BindQueryParameter("form", true, false, "q", c.QueryParams(), &search); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid search term").SetInternal(err)
	}

	var statuses []quote.Status
	if names != nil {
		for _, name := range *names {
			status, err := quote.ParseStatus(name)
			if err != nil {
				return s.fail(c, err)
			}
			statuses = append(statuses, status)
		}
	}
	term := ""
	if search != nil {
		term = *search
	}

	query, err := queries.NewListQuotesQuery(term, statuses...)
	if err != nil {
		return s.fail(c, err)
	}

	quotes, err := s.listQuotesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		response[i] = toQuoteResponse(q)
	}
	return c.JSON(http.StatusOK, response)
}

// GetQuoteSummary handles GET /api/v1/quotes/summary. Administrators get the
// counts of every user.
func (s *Server) GetQuoteSummary(c echo.Context) error {
	ctx := c.Request().Context()
	id, _ := access.FromContext(ctx)
	owner := id.UserID
	if id.IsAdmin() {
		owner = ""
	}

	summary, err := s.getSummaryHandler.Handle(ctx, queries.NewGetQuoteSummaryQuery(owner))
	if err != nil {
		return s.fail(c, err)
	}

	counts := make(map[string]int, len(summary.Counts))
	for status, n := range summary.Counts {
		counts[status.String()] = n
	}
	return c.JSON(http.StatusOK, SummaryResponse{Counts: counts, Total: summary.Total})
}

// ReserveQuoteNumber handles POST /api/v1/quotes/numbers.
func (s *Server) ReserveQuoteNumber(c echo.Context) error {
	number, err := s.reserveNumberHandler.Handle(c.Request().Context(), commands.NewReserveQuoteNumberCommand())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, QuoteNumberResponse{QuoteNo: number})
}

// SaveQuote handles POST /api/v1/quotes. Without a status the quote is
// saved as a Draft.
func (s *Server) SaveQuote(c echo.Context) error {
	var req SaveQuoteRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}

	status := quote.Draft
	if req.Status != "" {
		parsed, err := quote.ParseStatus(req.Status)
		if err != nil {
			return s.fail(c, err)
		}
		status = parsed
	}

	cmd, err := commands.NewSaveQuoteCommand(req.FormData.toForm(), toItems(req.Items, s.now()), status)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.saveQuoteHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	if len(result.Violations) > 0 {
		return s.unprocessable(c, result.Violations)
	}

	return c.JSON(http.StatusCreated, toQuoteResponse(result.Quote))
}

// UpdateQuote handles PATCH /api/v1/quotes/:quoteNo.
func (s *Server) UpdateQuote(c echo.Context) error {
	var req UpdateQuoteRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}

	params := commands.UpdateQuoteParams{VoidReason: req.VoidReason}
	if req.Status != nil {
		status, err := quote.ParseStatus(*req.Status)
		if err != nil {
			return s.fail(c, err)
		}
		params.Status = &status
	}
	if req.FormData != nil {
		form := req.FormData.toForm()
		params.Form = &form
	}
	if req.Items != nil {
		params.Items = toItems(req.Items, s.now())
	}

	cmd, err := commands.NewUpdateQuoteCommand(c.Param("quoteNo"), params)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.updateQuoteHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	if len(result.Violations) > 0 {
		return s.unprocessable(c, result.Violations)
	}
	return c.JSON(http.StatusOK, toQuoteResponse(result.Quote))
}

// VoidQuote handles POST /api/v1/quotes/:quoteNo/void.
func (s *Server) VoidQuote(c echo.Context) error {
	var req VoidQuoteRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewVoidQuoteCommand(c.Param("quoteNo"), req.Reason)
	if err != nil {
		return s.fail(c, err)
	}

	voided, err := s.voidQuoteHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toQuoteResponse(voided))
}

// GetQuoteDocument handles GET /api/v1/quotes/:quoteNo/document.
func (s *Server) GetQuoteDocument(c echo.Context) error {
	query, err := queries.NewGetQuoteDocumentQuery(c.Param("quoteNo"))
	if err != nil {
		return s.fail(c, err)
	}

	doc, err := s.getDocumentHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// bind decodes and validates the body. Both failures are returned as
// *echo.HTTPError with status 400.
func (s *Server) bind(c echo.Context, dest any) error {
	if err := c.Bind(dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}
	return c.Validate(dest)
}

// HTTPErrorHandler renders echo errors, including unknown routes and bad
// request bodies, as an ErrorResponse.
func (s *Server) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		_ = s.fail(c, err)
		return
	}

	resp := ErrorResponse{Code: httpErr.Code, Message: http.StatusText(httpErr.Code)}
	if msg, ok := httpErr.Message.(string); ok {
		resp.Message = msg
	} else if httpErr.Message != nil {
		resp.Message = "Invalid request body"
		resp.Details = httpErr.Message
	}

	if writeErr := c.JSON(httpErr.Code, resp); writeErr != nil {
		s.logger.ErrorContext(c.Request().Context(), "write error response", "error", writeErr)
	}
}

func (s *Server) unprocessable(c echo.Context, violations []services.Violation) error {
	return c.JSON(http.StatusUnprocessableEntity, ViolationsResponse{
		Code:       http.StatusUnprocessableEntity,
		Message:    services.Summarize(violations),
		Violations: violations,
	})
}

// fail maps a use case error to a response.
func (s *Server) fail(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status, message = http.StatusBadRequest, err.Error()
	default:
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}
