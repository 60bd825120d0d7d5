package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-api/internal/app"
	"github.com/jsamuelsen/quotes-api/internal/domain"
)

// QuoteHandler serves the read-only /api/RNGQuote endpoints.
type QuoteHandler struct {
	service         *app.QuoteService
	defaultPageSize uint32
}

// NewQuoteHandler creates a quote handler. A zero defaultPageSize falls
// back to domain.DefaultPageSize.
func NewQuoteHandler(service *app.QuoteService, defaultPageSize uint32) *QuoteHandler {
	if defaultPageSize == 0 {
		defaultPageSize = domain.DefaultPageSize
	}

	return &QuoteHandler{
		service:         service,
		defaultPageSize: defaultPageSize,
	}
}

// GetRandomQuote handles GET /api/RNGQuote.
//
// @Summary Get a random quote
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/RNGQuote [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	quote, err := h.service.GetRandomQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// GetQuoteByID handles GET /api/RNGQuote/{id}.
//
// @Summary Get a quote by its quote ID
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/RNGQuote/{id} [get]
func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	var path dto.QuoteIDPath
	if err := dto.BindURIAndValidate(c, &path); err != nil {
		dto.HandleError(c, err)
		return
	}

	quote, err := h.service.GetQuoteByID(c.Request.Context(), path.ID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// GetPage handles GET /api/RNGQuote/all/{page}?entries={n}.
//
// @Summary List one page of quotes
// @Produce json
// @Param page path int true "1-based page number"
// @Param entries query int false "Page size"
// @Success 200 {array} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/RNGQuote/all/{page} [get]
func (h *QuoteHandler) GetPage(c *gin.Context) {
	var (
		path  dto.PagePath
		query dto.PageQuery
	)

	if err := dto.BindURIAndValidate(c, &path); err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleError(c, err)
		return
	}

	quotes, err := h.service.GetPage(c.Request.Context(), uint64(path.Page), query.PageSize(h.defaultPageSize))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponses(quotes))
}

// GetPageCount handles GET /api/RNGQuote/all/PageCount?entries={n}.
//
// @Summary Number of pages for a page size
// @Produce json
// @Param entries query int false "Page size"
// @Success 200 {integer} int
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/RNGQuote/all/PageCount [get]
func (h *QuoteHandler) GetPageCount(c *gin.Context) {
	var query dto.PageQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleError(c, err)
		return
	}

	pages, err := h.service.PageCount(c.Request.Context(), query.PageSize(h.defaultPageSize))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pages)
}

// GetQuotesCount handles GET /api/RNGQuote/QuotesCount.
//
// @Summary Total number of stored quotes
// @Produce json
// @Success 200 {integer} int
// @Router /api/RNGQuote/QuotesCount [get]
func (h *QuoteHandler) GetQuotesCount(c *gin.Context) {
	total, err := h.service.Count(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, total)
}

// RegisterQuoteRoutes registers the quote routes under /RNGQuote on rg.
// Static segments win over {id} and {page}.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/RNGQuote")
	quotes.GET("", h.GetRandomQuote)
	quotes.GET("/QuotesCount", h.GetQuotesCount)
	quotes.GET("/all/PageCount", h.GetPageCount)
	quotes.GET("/all/:page", h.GetPage)
	quotes.GET("/:id", h.GetQuoteByID)
}
