package reports

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"absensi-backend/internal/store"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/reports/daily", h.GetDaily)
	r.GET("/reports/daily/csv", h.GetDailyCSV)
	r.GET("/reports/daily/xlsx", h.GetDailyXLSX)
	r.GET("/reports/period", h.GetPeriod)
	r.GET("/reports/period/xlsx", h.GetPeriodXLSX)
}

// GET /reports/daily?class=X IPA 1&date=2024-03-01
func (h *Handler) GetDaily(c *gin.Context) {
	sheet, err := h.svc.Daily(c.Request.Context(), c.Query("class"), c.Query("date"))
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, sheet)
}

func (h *Handler) GetDailyCSV(c *gin.Context) {
	name, data, err := h.svc.DailyCSV(c.Request.Context(), c.Query("class"), c.Query("date"))
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	serveDownload(c, name, contentTypeCSV, data)
}

func (h *Handler) GetDailyXLSX(c *gin.Context) {
	name, data, err := h.svc.DailyXLSX(c.Request.Context(), c.Query("class"), c.Query("date"))
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	serveDownload(c, name, contentTypeXLSX, data)
}

// GET /reports/period?class=&start=2024-03-01&end=2024-03-31
func (h *Handler) GetPeriod(c *gin.Context) {
	sheet, err := h.svc.Period(c.Request.Context(), c.Query("class"), c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, sheet)
}

func (h *Handler) GetPeriodXLSX(c *gin.Context) {
	name, data, err := h.svc.PeriodXLSX(c.Request.Context(), c.Query("class"), c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	serveDownload(c, name, contentTypeXLSX, data)
}

func serveDownload(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}

// ===== helpers =====

type errDTO struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newErrDTO(err error) errDTO {
	var e errDTO
	var de *store.DomainError
	if errors.As(err, &de) {
		e.Error.Code = de.Code
		e.Error.Message = de.Message
		return e
	}
	e.Error.Code = store.ErrCodeInternal
	e.Error.Message = err.Error()
	return e
}

func toHTTPStatus(err error) int {
	var de *store.DomainError
	if errors.As(err, &de) {
		switch de.Code {
		case store.ErrCodeInvalidArgument:
			return http.StatusBadRequest
		case store.ErrCodeNotFound:
			return http.StatusNotFound
		case store.ErrCodeConflict:
			return http.StatusConflict
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
