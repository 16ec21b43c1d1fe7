package httpx

import (
	"strconv"
	"strings"

	"github.com/adeilh/go-httpstatus/status"
)

// StatusView is the JSON shape of a registry entry served by the catalogue.
type StatusView struct {
	Code         int    `json:"code"`
	Message      string `json:"message"`
	Class        string `json:"class"`
	WebDAV       bool   `json:"webdav,omitempty"`
	Experimental bool   `json:"experimental,omitempty"`
}

// NewStatusView converts a registry code.
func NewStatusView(c status.Code) StatusView {
	return StatusView{
		Code:         c.Int(),
		Message:      c.Message(),
		Class:        c.Class().String(),
		WebDAV:       status.IsWebDAV(c),
		Experimental: status.IsExperimental(c),
	}
}

func views(codes []status.Code) []StatusView {
	out := make([]StatusView, len(codes))
	for i, c := range codes {
		out[i] = NewStatusView(c)
	}
	return out
}

// RegisterCatalog serves the status registry read-only under prefix:
//
//	GET {prefix}               every code, or one class with ?class=4xx
//	GET {prefix}/errors        4xx then 5xx
//	GET {prefix}/webdav        the WebDAV subset
//	GET {prefix}/experimental  the experimental subset
//	GET {prefix}/:code         a single code
func RegisterCatalog(a *App, prefix string) *Router {
	if prefix = strings.Trim(prefix, "/"); prefix != "" {
		prefix = "/" + prefix
	}
	r := a.Group(prefix)
	r.GET("", listStatuses).
		GET("/errors", fixedList(status.ErrorCodes)).
		GET("/webdav", fixedList(status.WebDAVCodes)).
		GET("/experimental", fixedList(status.ExperimentalCodes)).
		GET("/:code", getStatus)
	return r
}

func listStatuses(c Context) error {
	q := c.QueryParam("class")
	if q == "" {
		return c.JSON(StatusOK, views(status.All()))
	}
	class, ok := status.ParseClass(q)
	if !ok {
		return HTTPError(StatusBadRequest, "unknown status class "+strconv.Quote(q))
	}
	return c.JSON(StatusOK, views(status.InClass(class)))
}

func fixedList(codes func() []status.Code) HandlerFunc {
	return func(c Context) error {
		return c.JSON(StatusOK, views(codes()))
	}
}

func getStatus(c Context) error {
	raw := c.Param("code")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return HTTPError(StatusBadRequest, "status code must be an integer: "+strconv.Quote(raw))
	}
	code, ok := status.Lookup(n)
	if !ok {
		return HTTPError(StatusNotFound, "unknown status code "+strconv.Itoa(n))
	}
	return c.JSON(StatusOK, NewStatusView(code))
}
