package roster

// ===== Requests =====

type CreateStudentRequest struct {
	Name  string `json:"name" binding:"required"`
	NIS   string `json:"nis" binding:"required"`
	Class string `json:"class"`
}

// Update is a full replace of the record, so every field is required again.
type UpdateStudentRequest struct {
	Name  string `json:"name" binding:"required"`
	NIS   string `json:"nis" binding:"required"`
	Class string `json:"class"`
}

type CreateClassRequest struct {
	Name string `json:"name" binding:"required"`
}

// ===== Responses =====

type StudentResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	NIS   string `json:"nis"`
	Class string `json:"class"`
}
