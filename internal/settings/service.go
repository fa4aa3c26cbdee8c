package settings

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"absensi-backend/internal/store"
)

// MaxLogoBytes caps the decoded logo image at 2MB.
const MaxLogoBytes = 2 * 1024 * 1024

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Get(ctx context.Context) SettingsResponse {
	return toDTO(s.store.Settings())
}

func (s *Service) SaveSchoolProfile(ctx context.Context, req SchoolProfileRequest) (SettingsResponse, error) {
	if strings.TrimSpace(req.SchoolName) == "" &&
		strings.TrimSpace(req.PrincipalName) == "" &&
		strings.TrimSpace(req.PrincipalNIP) == "" {
		return SettingsResponse{}, store.NewInvalidArgumentError("at least one field is required")
	}
	st, err := s.store.SaveSchoolProfile(ctx, req.SchoolName, req.PrincipalName, req.PrincipalNIP)
	if err != nil {
		return SettingsResponse{}, err
	}
	return toDTO(st), nil
}

func (s *Service) SaveTeacherProfile(ctx context.Context, req TeacherProfileRequest) (SettingsResponse, error) {
	if strings.TrimSpace(req.TeacherName) == "" && strings.TrimSpace(req.TeacherNIP) == "" {
		return SettingsResponse{}, store.NewInvalidArgumentError("at least one field is required")
	}
	st, err := s.store.SaveTeacherProfile(ctx, req.TeacherName, req.TeacherNIP)
	if err != nil {
		return SettingsResponse{}, err
	}
	return toDTO(st), nil
}

func (s *Service) SetTheme(ctx context.Context, req ThemeRequest) error {
	return s.store.SetDarkMode(ctx, req.DarkMode)
}

// SetLogo decodes, size-checks and content-sniffs the uploaded image, then
// stores it as a data URI with its detected kind. The declared filename or
// extension is ignored; only the bytes decide.
func (s *Service) SetLogo(ctx context.Context, req LogoRequest) (SettingsResponse, error) {
	raw, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return SettingsResponse{}, store.NewInvalidArgumentError("logo must be valid base64")
	}
	if len(raw) == 0 {
		return SettingsResponse{}, store.NewInvalidArgumentError("logo is empty")
	}
	if len(raw) > MaxLogoBytes {
		return SettingsResponse{}, store.NewInvalidArgumentError("logo must be at most 2MB")
	}

	mtype := mimetype.Detect(raw)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return SettingsResponse{}, store.NewInvalidArgumentError("logo must be an image file")
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", mtype.String(), base64.StdEncoding.EncodeToString(raw))
	st, err := s.store.SetLogo(ctx, dataURI)
	if err != nil {
		return SettingsResponse{}, err
	}
	return toDTO(st), nil
}

// Reset wipes every collection and reseeds the factory defaults.
func (s *Service) Reset(ctx context.Context) error {
	return s.store.ResetAll(ctx)
}

func toDTO(st store.Settings) SettingsResponse {
	return SettingsResponse{
		TeacherName:    st.TeacherName,
		TeacherNIP:     st.TeacherNIP,
		DarkMode:       st.DarkMode,
		SchoolName:     st.SchoolName,
		SchoolLogo:     st.SchoolLogo,
		SchoolLogoType: st.SchoolLogoType,
		PrincipalName:  st.PrincipalName,
		PrincipalNIP:   st.PrincipalNIP,
	}
}
