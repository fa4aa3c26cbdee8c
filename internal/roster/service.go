package roster

import (
	"context"

	"absensi-backend/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) ListStudents(ctx context.Context, class string) []StudentResponse {
	students := s.store.StudentsByClass(class)
	out := make([]StudentResponse, 0, len(students))
	for _, st := range students {
		out = append(out, toStudentDTO(st))
	}
	return out
}

func (s *Service) CreateStudent(ctx context.Context, req CreateStudentRequest) (StudentResponse, error) {
	st, err := s.store.AddStudent(ctx, req.Name, req.NIS, req.Class)
	if err != nil {
		return StudentResponse{}, err
	}
	return toStudentDTO(st), nil
}

func (s *Service) UpdateStudent(ctx context.Context, id string, req UpdateStudentRequest) (StudentResponse, error) {
	st, err := s.store.UpdateStudent(ctx, id, req.Name, req.NIS, req.Class)
	if err != nil {
		return StudentResponse{}, err
	}
	return toStudentDTO(st), nil
}

// DeleteStudent cascades to the student's attendance records. Unknown ids
// are a no-op so the delete button can be pressed twice without an error.
func (s *Service) DeleteStudent(ctx context.Context, id string) error {
	return s.store.DeleteStudent(ctx, id)
}

func (s *Service) ListClasses(ctx context.Context) []string {
	return s.store.Classes()
}

func (s *Service) CreateClass(ctx context.Context, req CreateClassRequest) error {
	return s.store.AddClass(ctx, req.Name)
}

func (s *Service) DeleteClass(ctx context.Context, name string) error {
	return s.store.DeleteClass(ctx, name)
}

func toStudentDTO(st store.Student) StudentResponse {
	return StudentResponse{ID: st.ID, Name: st.Name, NIS: st.NIS, Class: st.Class}
}
