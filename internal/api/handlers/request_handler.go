package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"formulab/internal/dto"
	"formulab/internal/models"
	"formulab/internal/report"
	"formulab/internal/service"
	"formulab/internal/store"
)

type RequestHandler struct {
	requests *service.RequestService
	similar  *service.RecommendService
	reports  *service.ReportService
	logger   *zap.Logger
}

func NewRequestHandler(
	requests *service.RequestService,
	similar *service.RecommendService,
	reports *service.ReportService,
	logger *zap.Logger,
) *RequestHandler {
	return &RequestHandler{
		requests: requests,
		similar:  similar,
		reports:  reports,
		logger:   logger,
	}
}

// CreateRequest godoc
// @Summary Submit a development request
// @Description Store a submitted intake form and assign its date-sequence identifier
// @Tags requests
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestBody true "Form fields"
// @Success 201 {object} dto.RequestResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/requests [post]
func (h *RequestHandler) CreateRequest(c *fiber.Ctx) error {
	var body dto.CreateRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	rec, err := h.requests.Create(body.ToFields())
	if err != nil {
		h.logger.Error("Failed to create request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create request",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewRequestResponse(rec))
}

// ListRequests godoc
// @Summary List development requests
// @Tags requests
// @Produce json
// @Success 200 {array} dto.RequestResponse
// @Router /api/v1/requests [get]
func (h *RequestHandler) ListRequests(c *fiber.Ctx) error {
	return c.JSON(dto.NewRequestListResponse(h.requests.List()))
}

// GetRequest godoc
// @Summary Get one development request
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.RequestResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/requests/{id} [get]
func (h *RequestHandler) GetRequest(c *fiber.Ctx) error {
	rec, err := h.requests.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Request not found",
			})
		}
		h.logger.Error("Failed to get request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get request",
		})
	}

	return c.JSON(dto.NewRequestResponse(rec))
}

// UpdateRequest godoc
// @Summary Edit a development request
// @Description Merge the given fields into the request; identifier and creation date never change
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param patch body models.FieldPatch true "Fields to replace"
// @Success 200 {object} dto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/requests/{id} [patch]
func (h *RequestHandler) UpdateRequest(c *fiber.Ctx) error {
	var patch models.FieldPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	rec, err := h.requests.Update(c.Params("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Request not found",
			})
		}
		h.logger.Error("Failed to update request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update request",
		})
	}

	return c.JSON(dto.NewRequestResponse(rec))
}

// SimilarRequests godoc
// @Summary Rank similar formulations
// @Description Rank the catalog (or the session's other requests) by similarity to this request
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Param pool query string false "Candidate pool: catalog or store" default(catalog)
// @Param top_k query int false "Maximum matches" default(3)
// @Param skin_type_filter query bool false "Keep only candidates with the same skin type"
// @Param cluster_filter query bool false "Keep only candidates in the query's cluster"
// @Success 200 {object} dto.SimilarResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/requests/{id}/similar [get]
func (h *RequestHandler) SimilarRequests(c *fiber.Ctx) error {
	opts := service.SimilarOptions{
		Pool:           service.PoolSource(c.Query("pool")),
		TopK:           c.QueryInt("top_k", 0),
		SkinTypeFilter: c.QueryBool("skin_type_filter", false),
		ClusterFilter:  c.QueryBool("cluster_filter", false),
	}

	res, err := h.similar.SimilarTo(c.Params("id"), opts)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Request not found",
			})
		}
		h.logger.Error("Similarity lookup failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(dto.NewSimilarResponse(res))
}

// GenerateReport godoc
// @Summary Generate a report for a request
// @Description Render the request (optionally with its ranked-similarity section) and run the requested exports. Export failures are reported in the response, not as request failures.
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param options body dto.GenerateReportBody true "Report options"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/requests/{id}/report [post]
func (h *RequestHandler) GenerateReport(c *fiber.Ctx) error {
	var body dto.GenerateReportBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	res, err := h.reports.Generate(c.Context(), c.Params("id"), reportOptions(body))
	if err != nil {
		return h.reportError(c, err)
	}

	return c.JSON(dto.NewReportResponse(res))
}

// DownloadReport godoc
// @Summary Download a rendered report
// @Tags reports
// @Produce octet-stream
// @Param id path string true "Request ID"
// @Param format query string false "txt or pdf" default(txt)
// @Param include_similar query bool false "Embed the ranked-similarity section" default(true)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/requests/{id}/report/download [get]
func (h *RequestHandler) DownloadReport(c *fiber.Ctx) error {
	opts := service.ReportOptions{
		Format:         report.Format(c.Query("format", string(report.FormatText))),
		IncludeSimilar: c.QueryBool("include_similar", true),
		Similar: service.SimilarOptions{
			Pool: service.PoolSource(c.Query("pool")),
			TopK: c.QueryInt("top_k", 0),
		},
	}

	res, err := h.reports.Generate(c.Context(), c.Params("id"), opts)
	if err != nil {
		return h.reportError(c, err)
	}

	c.Set(fiber.HeaderContentType, res.Document.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Document.Filename+`"`)
	return c.Send(res.Document.Bytes)
}

func reportOptions(body dto.GenerateReportBody) service.ReportOptions {
	return service.ReportOptions{
		Format:         report.Format(body.Format),
		IncludeSimilar: body.IncludeSimilar,
		Similar: service.SimilarOptions{
			Pool:           service.PoolSource(body.Pool),
			TopK:           body.TopK,
			SkinTypeFilter: body.SkinTypeFilter,
			ClusterFilter:  body.ClusterFilter,
		},
		AppendToSheet: body.AppendToSheet,
		SendMail:      body.SendMail,
	}
}

func (h *RequestHandler) reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Request not found",
		})
	}
	if errors.Is(err, report.ErrUnknownFormat) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown report format",
		})
	}
	h.logger.Error("Failed to generate report", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to generate report",
	})
}
