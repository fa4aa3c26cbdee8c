package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePersister keeps snapshots in memory and counts writes.
type fakePersister struct {
	snap      Snapshot
	saveCalls int
	wipeCalls int
	failSave  bool
}

func (f *fakePersister) LoadAll(ctx context.Context) (Snapshot, error) {
	return f.snap, nil
}

func (f *fakePersister) SaveAll(ctx context.Context, snap Snapshot) error {
	if f.failSave {
		return errors.New("quota exceeded")
	}
	f.saveCalls++
	f.snap = snap
	return nil
}

func (f *fakePersister) Wipe(ctx context.Context) error {
	f.wipeCalls++
	f.snap = Snapshot{}
	return nil
}

func setupStore(t *testing.T) (*Store, *fakePersister) {
	t.Helper()
	fp := &fakePersister{}
	s := New(fp)
	// start from an explicitly empty but non-seeding state
	s.classes = []string{"A", "B"}
	return s, fp
}

func addStudent(t *testing.T, s *Store, name, class string) Student {
	t.Helper()
	st, err := s.AddStudent(context.Background(), name, "2024"+name, class)
	require.NoError(t, err)
	return st
}

func TestLoadSeedsDefaults(t *testing.T) {
	fp := &fakePersister{}
	s := New(fp)
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, []string{"X IPA 1", "X IPA 2", "X IPS 1", "XI IPA 1", "XI IPA 2", "XII IPA 1"}, s.Classes())
	assert.Len(t, s.StudentsByClass(""), 5)
	assert.Equal(t, "Guru", s.Settings().TeacherName)
	// seeding must have written back
	assert.Equal(t, 1, fp.saveCalls)
}

func TestLoadKeepsExistingData(t *testing.T) {
	fp := &fakePersister{snap: Snapshot{
		Students: []Student{{ID: "s1", Name: "Ana", NIS: "1", Class: "A"}},
		Classes:  []string{"A"},
		Settings: &Settings{TeacherName: "Bu Rina"},
	}}
	s := New(fp)
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, []string{"A"}, s.Classes())
	assert.Equal(t, "Bu Rina", s.Settings().TeacherName)
	assert.Equal(t, 0, fp.saveCalls)
}

func TestAddStudent(t *testing.T) {
	s, fp := setupStore(t)
	ctx := context.Background()

	t.Run("generates unique ids and persists", func(t *testing.T) {
		a, err := s.AddStudent(ctx, "Ana", "2024001", "A")
		require.NoError(t, err)
		b, err := s.AddStudent(ctx, "Budi", "2024002", "A")
		require.NoError(t, err)

		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, 2, fp.saveCalls)
	})

	t.Run("requires name and nis", func(t *testing.T) {
		_, err := s.AddStudent(ctx, "", "2024003", "A")
		assert.Error(t, err)
		_, err = s.AddStudent(ctx, "Cici", "", "A")
		assert.Error(t, err)
	})

	t.Run("duplicate nis is allowed", func(t *testing.T) {
		_, err := s.AddStudent(ctx, "Dina", "2024001", "A")
		assert.NoError(t, err)
	})
}

func TestUpdateStudent(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()
	st := addStudent(t, s, "Ana", "A")

	t.Run("full replace", func(t *testing.T) {
		got, err := s.UpdateStudent(ctx, st.ID, "Ana Putri", "999", "B")
		require.NoError(t, err)
		assert.Equal(t, Student{ID: st.ID, Name: "Ana Putri", NIS: "999", Class: "B"}, got)
	})

	t.Run("unknown id is NOT_FOUND", func(t *testing.T) {
		_, err := s.UpdateStudent(ctx, "missing", "X", "1", "A")
		var de *DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, ErrCodeNotFound, de.Code)
	})
}

func TestDeleteStudentCascades(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()
	ana := addStudent(t, s, "Ana", "A")
	budi := addStudent(t, s, "Budi", "A")

	_, err := s.UpsertAttendance(ctx, ana.ID, "2024-01-01", "A", StatusHadir)
	require.NoError(t, err)
	_, err = s.UpsertAttendance(ctx, ana.ID, "2024-01-02", "A", StatusSakit)
	require.NoError(t, err)
	_, err = s.UpsertAttendance(ctx, budi.ID, "2024-01-01", "A", StatusAlfa)
	require.NoError(t, err)

	require.NoError(t, s.DeleteStudent(ctx, ana.ID))

	assert.Len(t, s.StudentsByClass(""), 1)
	recs := s.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, budi.ID, recs[0].StudentID)
}

func TestDeleteStudentIdempotent(t *testing.T) {
	s, fp := setupStore(t)
	ctx := context.Background()

	before := fp.saveCalls
	assert.NoError(t, s.DeleteStudent(ctx, "missing"))
	// no-op delete must not trigger a save
	assert.Equal(t, before, fp.saveCalls)
}

func TestAddClass(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	t.Run("appends in insertion order", func(t *testing.T) {
		require.NoError(t, s.AddClass(ctx, "XII IPS 2"))
		require.NoError(t, s.AddClass(ctx, "X Bahasa"))
		assert.Equal(t, []string{"A", "B", "XII IPS 2", "X Bahasa"}, s.Classes())
	})

	t.Run("duplicate name is CONFLICT", func(t *testing.T) {
		err := s.AddClass(ctx, "A")
		var de *DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, ErrCodeConflict, de.Code)
	})
}

func TestDeleteClassUnassignsStudents(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()
	ana := addStudent(t, s, "Ana", "A")
	budi := addStudent(t, s, "Budi", "B")

	_, err := s.UpsertAttendance(ctx, ana.ID, "2024-01-01", "A", StatusHadir)
	require.NoError(t, err)

	require.NoError(t, s.DeleteClass(ctx, "A"))

	assert.Equal(t, []string{"B"}, s.Classes())

	gotAna, _ := s.StudentByID(ana.ID)
	assert.Equal(t, "", gotAna.Class)
	gotBudi, _ := s.StudentByID(budi.ID)
	assert.Equal(t, "B", gotBudi.Class)

	// attendance snapshots keep the deleted class name
	recs := s.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, "A", recs[0].Class)
}

func TestUpsertAttendance(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()
	ana := addStudent(t, s, "Ana", "A")

	t.Run("second call wins and leaves one record", func(t *testing.T) {
		first, err := s.UpsertAttendance(ctx, ana.ID, "2024-01-01", "A", StatusHadir)
		require.NoError(t, err)
		second, err := s.UpsertAttendance(ctx, ana.ID, "2024-01-01", "A", StatusSakit)
		require.NoError(t, err)

		recs := s.Records()
		require.Len(t, recs, 1)
		assert.Equal(t, StatusSakit, recs[0].Status)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("different dates coexist", func(t *testing.T) {
		_, err := s.UpsertAttendance(ctx, ana.ID, "2024-01-02", "A", StatusHadir)
		require.NoError(t, err)
		assert.Len(t, s.Records(), 2)
	})

	t.Run("canonicalized date hits the same uniqueness key", func(t *testing.T) {
		before := len(s.Records())
		_, err := s.UpsertAttendance(ctx, ana.ID, "2024-1-2", "A", StatusIzin)
		require.NoError(t, err)
		assert.Len(t, s.Records(), before)
	})

	t.Run("date is canonicalized", func(t *testing.T) {
		rec, err := s.UpsertAttendance(ctx, ana.ID, "2024-1-3", "A", StatusHadir)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-03", rec.Date)
	})

	t.Run("unknown student is NOT_FOUND", func(t *testing.T) {
		_, err := s.UpsertAttendance(ctx, "missing", "2024-01-01", "A", StatusHadir)
		var de *DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, ErrCodeNotFound, de.Code)
	})

	t.Run("unknown status rejected on write", func(t *testing.T) {
		_, err := s.UpsertAttendance(ctx, ana.ID, "2024-01-01", "A", Status("bolos"))
		var de *DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, ErrCodeInvalidArgument, de.Code)
	})
}

func TestSaveAttendanceSheet(t *testing.T) {
	s, fp := setupStore(t)
	ctx := context.Background()
	ana := addStudent(t, s, "Ana", "A")
	budi := addStudent(t, s, "Budi", "A")

	t.Run("commits all drafts with one write", func(t *testing.T) {
		before := fp.saveCalls
		saved, err := s.SaveAttendanceSheet(ctx, "A", "2024-01-01", map[string]Status{
			ana.ID:  StatusHadir,
			budi.ID: StatusAlfa,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, saved)
		assert.Equal(t, before+1, fp.saveCalls)
		assert.Len(t, s.Records(), 2)
	})

	t.Run("empty draft saves nothing", func(t *testing.T) {
		saved, err := s.SaveAttendanceSheet(ctx, "A", "2024-01-01", nil)
		require.NoError(t, err)
		assert.Equal(t, 0, saved)
	})

	t.Run("unknown student rejects the whole sheet", func(t *testing.T) {
		recsBefore := s.Records()
		_, err := s.SaveAttendanceSheet(ctx, "A", "2024-01-02", map[string]Status{
			ana.ID:    StatusHadir,
			"missing": StatusHadir,
		})
		var de *DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, ErrCodeNotFound, de.Code)
		assert.Equal(t, recsBefore, s.Records())
	})
}

func TestSettingsSaves(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	t.Run("school profile keeps blank fields", func(t *testing.T) {
		got, err := s.SaveSchoolProfile(ctx, "SMA Merdeka", "", "")
		require.NoError(t, err)
		assert.Equal(t, "SMA Merdeka", got.SchoolName)
		assert.Equal(t, defaultSettings().PrincipalName, got.PrincipalName)
	})

	t.Run("teacher profile", func(t *testing.T) {
		got, err := s.SaveTeacherProfile(ctx, "Bu Rina", "1987")
		require.NoError(t, err)
		assert.Equal(t, "Bu Rina", got.TeacherName)
		assert.Equal(t, "1987", got.TeacherNIP)
	})

	t.Run("dark mode", func(t *testing.T) {
		require.NoError(t, s.SetDarkMode(ctx, true))
		assert.True(t, s.Settings().DarkMode)
	})
}

func TestResetAll(t *testing.T) {
	s, fp := setupStore(t)
	ctx := context.Background()
	ana := addStudent(t, s, "Ana", "A")
	_, err := s.UpsertAttendance(ctx, ana.ID, "2024-01-01", "A", StatusHadir)
	require.NoError(t, err)
	_, err = s.SaveTeacherProfile(ctx, "Bu Rina", "")
	require.NoError(t, err)

	require.NoError(t, s.ResetAll(ctx))

	assert.Equal(t, 1, fp.wipeCalls)
	assert.Empty(t, s.Records())
	assert.Len(t, s.StudentsByClass(""), 5)
	assert.Equal(t, defaultClasses(), s.Classes())
	assert.Equal(t, defaultSettings(), s.Settings())
}

func TestStorageFailureSurfacesButKeepsMemory(t *testing.T) {
	s, fp := setupStore(t)
	ctx := context.Background()
	ana := addStudent(t, s, "Ana", "A")

	fp.failSave = true
	_, err := s.UpsertAttendance(ctx, ana.ID, "2024-01-01", "A", StatusHadir)

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrCodeStorage, de.Code)
	// the mutation itself stays applied in memory
	assert.Len(t, s.Records(), 1)
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", got)

	// non-padded input comes out canonical
	got, err = NormalizeDate("2024-3-5")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", got)

	_, err = NormalizeDate("05-03-2024")
	assert.Error(t, err)
	_, err = NormalizeDate("2024-13-01")
	assert.Error(t, err)
	_, err = NormalizeDate("")
	assert.Error(t, err)
}
