package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// Router registers typed handlers on a gin engine. Every handler receives a
// context carrying the process-wide values (configs, logger, db) merged with
// the request's cancellation.
type Router struct {
	Inner   gin.IRouter
	baseCtx context.Context
}

func New(ctx context.Context) *Router {
	gin.SetMode(gin.ReleaseMode)
	return &Router{Inner: gin.New(), baseCtx: ctx}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Use(middleware gin.HandlerFunc) {
	r.Inner.Use(middleware)
}

func (r *Router) Group(pattern string) *Router {
	return &Router{Inner: r.Inner.Group(pattern), baseCtx: r.baseCtx}
}

func (r *Router) Handler() http.Handler {
	return r.Inner.(*gin.Engine)
}
