package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondAppError memetakan AppError ke status code-nya; error lain dianggap 500.
// Details (mis. insufficient_items) ikut di field data.
func RespondAppError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, JSONResponse{
			Status:  false,
			Message: appErr.Message,
			Data:    appErr.Details,
		})
		return
	}
	if ErrorLogger != nil {
		ErrorLogger.Printf("unhandled error: %v", err)
	}
	c.JSON(500, JSONResponse{
		Status:  false,
		Message: "internal server error",
	})
}
