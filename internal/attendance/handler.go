package attendance

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"absensi-backend/internal/store"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/attendance/sheet", h.GetSheet)
	r.POST("/attendance/sheet", h.SaveSheet)
	r.GET("/attendance/summary", h.GetPeriodSummary)
	r.GET("/dashboard", h.GetDashboard)
}

// GET /attendance/sheet?class=X IPA 1&date=2024-03-01
func (h *Handler) GetSheet(c *gin.Context) {
	rows, err := h.svc.Sheet(c.Request.Context(), c.Query("class"), c.Query("date"))
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "total": len(rows)})
}

func (h *Handler) SaveSheet(c *gin.Context) {
	var req SaveSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrDTO(store.NewInvalidArgumentError("invalid json")))
		return
	}
	res, err := h.svc.SaveSheet(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /attendance/summary?class=&start=2024-03-01&end=2024-03-31
func (h *Handler) GetPeriodSummary(c *gin.Context) {
	rows, err := h.svc.Period(c.Request.Context(), c.Query("class"), c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "total": len(rows)})
}

// GET /dashboard?date=today
func (h *Handler) GetDashboard(c *gin.Context) {
	res, err := h.svc.Dashboard(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, res)
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
