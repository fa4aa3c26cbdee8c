package settings

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"absensi-backend/internal/store"
)

type memPersister struct{ snap store.Snapshot }

func (m *memPersister) LoadAll(ctx context.Context) (store.Snapshot, error) { return m.snap, nil }
func (m *memPersister) SaveAll(ctx context.Context, snap store.Snapshot) error {
	m.snap = snap
	return nil
}
func (m *memPersister) Wipe(ctx context.Context) error { m.snap = store.Snapshot{}; return nil }

func setupService(t *testing.T) *Service {
	t.Helper()
	st := store.New(&memPersister{})
	require.NoError(t, st.Load(context.Background()))
	return NewService(st)
}

// pngBytes returns data carrying a real PNG signature so content sniffing
// sees an image.
func pngBytes(size int) []byte {
	sig := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	if size < len(sig) {
		size = len(sig)
	}
	return append(sig, bytes.Repeat([]byte{0}, size-len(sig))...)
}

func TestSaveSchoolProfile(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	t.Run("updates given fields, keeps the rest", func(t *testing.T) {
		res, err := svc.SaveSchoolProfile(ctx, SchoolProfileRequest{SchoolName: "SMA Merdeka"})
		require.NoError(t, err)
		assert.Equal(t, "SMA Merdeka", res.SchoolName)
		assert.Equal(t, "Dr. Ahmad Suryanto, M.Pd", res.PrincipalName)
	})

	t.Run("all blank is a validation error", func(t *testing.T) {
		_, err := svc.SaveSchoolProfile(ctx, SchoolProfileRequest{SchoolName: "   "})
		var de *store.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, store.ErrCodeInvalidArgument, de.Code)
	})
}

func TestSaveTeacherProfile(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	res, err := svc.SaveTeacherProfile(ctx, TeacherProfileRequest{TeacherName: "Bu Rina"})
	require.NoError(t, err)
	assert.Equal(t, "Bu Rina", res.TeacherName)

	_, err = svc.SaveTeacherProfile(ctx, TeacherProfileRequest{})
	assert.Error(t, err)
}

func TestSetLogo(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	t.Run("accepts an image and records its kind", func(t *testing.T) {
		req := LogoRequest{Data: base64.StdEncoding.EncodeToString(pngBytes(64))}
		res, err := svc.SetLogo(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, store.LogoTypeImage, res.SchoolLogoType)
		assert.Contains(t, res.SchoolLogo, "data:image/png;base64,")
	})

	t.Run("rejects invalid base64", func(t *testing.T) {
		_, err := svc.SetLogo(ctx, LogoRequest{Data: "not base64!!"})
		assert.Error(t, err)
	})

	t.Run("rejects non-image content", func(t *testing.T) {
		req := LogoRequest{Data: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 not a logo"))}
		_, err := svc.SetLogo(ctx, req)
		var de *store.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, store.ErrCodeInvalidArgument, de.Code)
	})

	t.Run("rejects oversized images", func(t *testing.T) {
		req := LogoRequest{Data: base64.StdEncoding.EncodeToString(pngBytes(MaxLogoBytes + 1))}
		_, err := svc.SetLogo(ctx, req)
		assert.Error(t, err)
	})
}

func TestTheme(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetTheme(ctx, ThemeRequest{DarkMode: true}))
	assert.True(t, svc.Get(ctx).DarkMode)
}

func TestReset(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.SaveTeacherProfile(ctx, TeacherProfileRequest{TeacherName: "Bu Rina"})
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx))
	assert.Equal(t, "Guru", svc.Get(ctx).TeacherName)
	assert.Equal(t, store.LogoTypeEmoji, svc.Get(ctx).SchoolLogoType)
}
