package extract

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/teds/teds/internal/platform/auth"
	"github.com/teds/teds/internal/validation"
	"github.com/teds/teds/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	submitGroup := api.Group("", auth.RequireRole("admin", "provider"))
	submitGroup.POST("/extracts", h.IngestExtract)

	readGroup := api.Group("", auth.RequireRole("admin", "provider", "reviewer"))
	readGroup.GET("/extracts", h.ListExtracts)
	readGroup.GET("/extracts/:id", h.GetExtract)
}

// ingestRequest is the submission payload: extract metadata plus the raw
// rows. known_admission_ids optionally extends the duplicate set for this
// call.
type ingestRequest struct {
	Meta
	Records           []map[string]string `json:"records"`
	KnownAdmissionIDs []string            `json:"known_admission_ids,omitempty"`
}

type ingestResponse struct {
	ExtractID         uuid.UUID     `json:"extract_id"`
	Status            ExtractStatus `json:"status"`
	RecordCount       int           `json:"record_count"`
	FailedRecordCount int           `json:"failed_record_count"`
	WarnedRecordCount int           `json:"warned_record_count"`
}

type rejectionResponse struct {
	Issues []validation.Issue `json:"issues"`
}

func (h *Handler) IngestExtract(c echo.Context) error {
	var req ingestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	known := make(map[string]struct{}, len(req.KnownAdmissionIDs))
	for _, id := range req.KnownAdmissionIDs {
		known[id] = struct{}{}
	}

	e, issues, err := h.svc.Ingest(c.Request().Context(), req.Meta, req.Records, known)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(issues) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, rejectionResponse{Issues: issues})
	}

	return c.JSON(http.StatusCreated, ingestResponse{
		ExtractID:         e.ID,
		Status:            e.Status,
		RecordCount:       len(e.Records),
		FailedRecordCount: e.FailedRecordCount(),
		WarnedRecordCount: e.WarnedRecordCount(),
	})
}

func (h *Handler) GetExtract(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	e, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "extract not found")
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) ListExtracts(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), c.QueryParam("provider_id"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
