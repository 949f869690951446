package router

import (
	"context"
	"net/http"
	"time"

	"github.com/freelancedao/backend/pkg/errorx"
	"github.com/freelancedao/backend/pkg/xcontext"
	"github.com/gin-gonic/gin"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = ginCtx.ShouldBindQuery(&req)
		default:
			err = ginCtx.ShouldBindJSON(&req)
		}

		ctx := mergeContext(ginCtx.Request.Context(), router.baseCtx)
		if err != nil {
			writeError(ginCtx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
			return
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			writeError(ginCtx, err)
			return
		}

		ginCtx.JSON(http.StatusOK, newResponse(resp))
	}
}

// mergedContext keeps the request's deadline and cancellation while looking
// up values from the process-wide base context.
type mergedContext struct {
	context.Context
	values context.Context
}

func mergeContext(request, values context.Context) context.Context {
	return &mergedContext{Context: request, values: values}
}

func (c *mergedContext) Value(key any) any {
	if v := c.Context.Value(key); v != nil {
		return v
	}

	return c.values.Value(key)
}

// Logger logs one line per request after it is served.
func Logger(ctx context.Context) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		begin := time.Now()
		ginCtx.Next()
		xcontext.Logger(ctx).Infof("%s %s %d (%s)",
			ginCtx.Request.Method, ginCtx.Request.URL.Path,
			ginCtx.Writer.Status(), time.Since(begin))
	}
}
