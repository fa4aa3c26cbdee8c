package settings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"absensi-backend/internal/store"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/settings", h.Get)
	r.PUT("/settings/school", h.SaveSchoolProfile)
	r.PUT("/settings/teacher", h.SaveTeacherProfile)
	r.PUT("/settings/theme", h.SetTheme)
	r.POST("/settings/logo", h.SetLogo)
	r.POST("/settings/reset", h.Reset)
}

func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Get(c.Request.Context()))
}

func (h *Handler) SaveSchoolProfile(c *gin.Context) {
	var req SchoolProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrDTO(store.NewInvalidArgumentError("invalid json")))
		return
	}
	res, err := h.svc.SaveSchoolProfile(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) SaveTeacherProfile(c *gin.Context) {
	var req TeacherProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrDTO(store.NewInvalidArgumentError("invalid json")))
		return
	}
	res, err := h.svc.SaveTeacherProfile(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrDTO(store.NewInvalidArgumentError("invalid json")))
		return
	}
	if err := h.svc.SetTheme(c.Request.Context(), req); err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) SetLogo(c *gin.Context) {
	var req LogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrDTO(store.NewInvalidArgumentError("invalid json")))
		return
	}
	res, err := h.svc.SetLogo(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /settings/reset wipes everything; the frontend double-confirms before
// calling this.
func (h *Handler) Reset(c *gin.Context) {
	if err := h.svc.Reset(c.Request.Context()); err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.Status(http.StatusNoContent)
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
