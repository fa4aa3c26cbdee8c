package roster

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"absensi-backend/internal/store"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// students
	r.GET("/students", h.ListStudents)
	r.POST("/students", h.CreateStudent)
	r.PUT("/students/:id", h.UpdateStudent)
	r.DELETE("/students/:id", h.DeleteStudent)

	// classes
	r.GET("/classes", h.ListClasses)
	r.POST("/classes", h.CreateClass)
	r.DELETE("/classes/:name", h.DeleteClass)
}

// GET /students?class=X IPA 1
func (h *Handler) ListStudents(c *gin.Context) {
	items := h.svc.ListStudents(c.Request.Context(), c.Query("class"))
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *Handler) CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrDTO(store.NewInvalidArgumentError("invalid json")))
		return
	}
	res, err := h.svc.CreateStudent(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.Header("Location", "/students/"+res.ID)
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) UpdateStudent(c *gin.Context) {
	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrDTO(store.NewInvalidArgumentError("invalid json")))
		return
	}
	res, err := h.svc.UpdateStudent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteStudent(c *gin.Context) {
	if err := h.svc.DeleteStudent(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListClasses(c *gin.Context) {
	items := h.svc.ListClasses(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrDTO(store.NewInvalidArgumentError("invalid json")))
		return
	}
	if err := h.svc.CreateClass(c.Request.Context(), req); err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.Status(http.StatusCreated)
}

func (h *Handler) DeleteClass(c *gin.Context) {
	if err := h.svc.DeleteClass(c.Request.Context(), c.Param("name")); err != nil {
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
