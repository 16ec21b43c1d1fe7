package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adeilh/go-httpstatus/status"
)

// Validator runs before route handlers; return an error to stop the pipeline.
type Validator func(Context) error

type Server struct {
	app      *App
	address  string
	srv      *http.Server
	shutdown time.Duration
}

type RouteRegistrar func(*App)

type StartOption func(*Server)

func WithShutdownTimeout(d time.Duration) StartOption {
	return func(s *Server) {
		if d > 0 {
			s.shutdown = d
		}
	}
}

func NewServer(opts ...ServerOption) *Server {
	cfg := defaultServerOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = echo.HTTPErrorHandler(cfg.ErrorHandler)
	if cfg.Logger != nil {
		e.Logger = cfg.Logger
	}
	e.Logger.SetLevel(cfg.LogLevel)
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout
	for _, mw := range cfg.Middlewares {
		e.Use(mw)
	}
	if cfg.CORS != nil {
		e.Use(CORSMiddleware(cfg.CORS))
	}
	if len(cfg.Validators) > 0 {
		e.Use(validatorMiddleware(cfg.Validators...))
	}

	return &Server{
		app:      &App{e},
		address:  cfg.Address,
		shutdown: 5 * time.Second,
	}
}

func (s *Server) RegisterRoutes(reg RouteRegistrar) {
	if reg != nil {
		reg(s.app)
	}
}

func (s *Server) Handler() http.Handler {
	return s.app.e
}

// Logger exposes the echo logger so callers log through the same sink as the request logger.
func (s *Server) Logger() echo.Logger {
	return s.app.e.Logger
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, opts ...StartOption) error {
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	e := s.app.e
	s.srv = &http.Server{
		Addr:         s.address,
		Handler:      e,
		ReadTimeout:  e.Server.ReadTimeout,
		WriteTimeout: e.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		e.Logger.Infof("httpx: listening on %s", s.address)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			e.Logger.Warnf("httpx: shutdown: %v", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("httpx: serve: %w", err)
		}
		return nil
	}
}

// ErrorBody is the JSON payload written for failed requests.
type ErrorBody struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

// StatusErrorHandler renders *status.Error and *echo.HTTPError values as an
// ErrorBody, taking the reason phrase from the registry. Anything else, and
// any code the registry does not define, is reported as 500. An
// *echo.HTTPError carrying a registered 1xx-3xx code is written without a body.
func StatusErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := status.InternalServerError
	msg := ""

	var se *status.Error
	var he *echo.HTTPError
	switch {
	case errors.As(err, &se):
		code = se.Code
		msg = se.Error()
	case errors.As(err, &he):
		if known, ok := status.Lookup(he.Code); ok {
			if !known.IsError() {
				// 1xx-3xx are not failures; send the code without an error body.
				if werr := c.NoContent(known.Int()); werr != nil {
					c.Logger().Error(werr)
				}
				return
			}
			code = known
			msg = httpErrorMessage(he)
		} else {
			c.Logger().Warnf("httpx: unregistered status %d: %v", he.Code, he.Message)
		}
	default:
		c.Logger().Errorf("httpx: unhandled error: %v", err)
	}
	if msg == "" {
		msg = code.Message()
	}

	body := ErrorBody{Code: code.Int(), Status: describe(code), Error: msg}
	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code.Int())
	} else {
		werr = c.JSON(code.Int(), body)
	}
	if werr != nil {
		c.Logger().Error(werr)
	}
}

func httpErrorMessage(he *echo.HTTPError) string {
	switch m := he.Message.(type) {
	case nil:
		return ""
	case string:
		return m
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}

// describe yields "HTTP 404 Not Found" for any registry code.
func describe(c status.Code) string {
	if e, ok := status.NewError(c); ok {
		return e.Description()
	}
	return "HTTP " + c.String()
}

func validatorMiddleware(v ...Validator) MiddlewareFunc {
	copied := append([]Validator(nil), v...)
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			for _, validator := range copied {
				if validator == nil {
					continue
				}
				if err := validator(c); err != nil {
					return err
				}
			}
			return next(c)
		}
	}
}
