// Package http exposes the cart and checkout REST API.
package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/i18n"
	"github.com/guttosm/cart-service/internal/middleware"
)

var (
	successResponsePool = sync.Pool{
		New: func() interface{} { return &dto.SuccessResponse{} },
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} { return &dto.ErrorResponse{} },
	}
)

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

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// ResponseBuilder writes the success and error envelopes of the API.
// Envelopes come from a sync.Pool; gin serializes synchronously so they can
// be returned right after writing.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error sends an error envelope whose code is derived from statusCode and
// whose message is messageKey translated for the request locale.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithCode(statusCode, dto.ErrCodeFromStatus(statusCode), messageKey, nil, err)
}

// ErrorWithCode is Error with an explicit error code and optional field details.
// err, when set, is attached to the gin context for ErrorHandler to log.
func (b *ResponseBuilder) ErrorWithCode(statusCode int, code, messageKey string, details map[string]string, err error) {
	resp := getErrorResponse()
	resp.Error = code
	resp.Message = i18n.T(b.c, messageKey)
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil && statusCode >= http.StatusInternalServerError {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

// BuildRequest binds the JSON body of c into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
