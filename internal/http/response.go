package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/flashe-service/internal/domain/dto"
	"github.com/guttosm/flashe-service/internal/i18n"
	"github.com/guttosm/flashe-service/internal/middleware"
	"github.com/guttosm/flashe-service/internal/service"
)

var successResponsePool = sync.Pool{
	New: func() any {
		return &dto.SuccessResponse{}
	},
}

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

// ResponseBuilder writes the API envelopes.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in a SuccessResponse. messageKey may be empty.
func (b *ResponseBuilder) Success(statusCode int, data any, messageKey string) {
	resp := getSuccessResponse()
	defer putSuccessResponse(resp)

	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()
	if messageKey != "" {
		resp.Message = i18n.GetTranslator().Translate(messageKey)
	}

	// gin serializes synchronously, so resp can go back to the pool after this.
	b.c.JSON(statusCode, resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data, "")
}

// Error sends an error response with the given status code and message key.
// err, when set, is attached to the context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	resp := dto.NewError(dto.ErrCodeFromStatus(statusCode), i18n.GetTranslator().Translate(messageKey)).
		WithRequestID(middleware.GetRequestID(b.c))
	b.c.AbortWithStatusJSON(statusCode, resp)
}

// ValidationFailed sends a 422 naming the failing order field.
func (b *ResponseBuilder) ValidationFailed(verr *service.ValidationError) {
	code := dto.ErrCodeValidation
	if verr.Region != "" {
		code = dto.ErrCodeRegionUnavailable
	}
	resp := dto.NewError(code, verr.Message()).
		WithRequestID(middleware.GetRequestID(b.c)).
		WithDetail("field", verr.Field)
	if verr.Region != "" {
		resp = resp.WithDetail("region", verr.Region)
	}
	b.c.AbortWithStatusJSON(http.StatusUnprocessableEntity, resp)
}
