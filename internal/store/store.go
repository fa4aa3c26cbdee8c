package store

import (
	"context"
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const DateLayout = "2006-01-02"

// NormalizeDate parses v as a calendar date and re-formats it into the
// canonical zero-padded form. Every date string held by the store goes
// through here, so lexicographic range comparison matches calendar order.
func NormalizeDate(v string) (string, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(v), time.UTC)
	if err != nil {
		return "", NewInvalidArgumentError("date must be YYYY-MM-DD")
	}
	return t.Format(DateLayout), nil
}

// Persister writes and reads the four collections as one unit. There are no
// partial updates: every successful mutation is followed by a full SaveAll.
type Persister interface {
	LoadAll(ctx context.Context) (Snapshot, error)
	SaveAll(ctx context.Context, snap Snapshot) error
	Wipe(ctx context.Context) error
}

// Store holds the whole application state in memory and is the only owner of
// it. Handlers run concurrently under gin, so one mutex serializes every
// operation; with a single user behind the API that is the intended
// run-to-completion model, not a bottleneck.
type Store struct {
	mu      sync.Mutex
	persist Persister
	now     func() time.Time

	students   []Student
	classes    []string
	attendance []AttendanceRecord
	settings   Settings
}

func New(p Persister) *Store {
	return &Store{
		persist:  p,
		now:      time.Now,
		settings: defaultSettings(),
	}
}

// Load pulls the persisted snapshot into memory and seeds factory defaults
// for whichever collections are empty (first run). Seeding triggers one
// write-back so the next start sees a populated database.
func (s *Store) Load(ctx context.Context) error {
	snap, err := s.persist.LoadAll(ctx)
	if err != nil {
		return NewStorageError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = snap.Students
	s.classes = snap.Classes
	s.attendance = snap.Attendance
	if snap.Settings != nil {
		s.settings = *snap.Settings
	} else {
		s.settings = defaultSettings()
	}

	seeded := false
	if len(s.classes) == 0 {
		s.classes = defaultClasses()
		seeded = true
	}
	if len(s.students) == 0 {
		s.students = s.sampleStudents()
		seeded = true
	}
	if seeded {
		return s.saveLocked(ctx)
	}
	return nil
}

func (s *Store) newID() string {
	t := s.now()
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// saveLocked persists all four collections. Callers hold s.mu. A failed save
// is surfaced but the in-memory state stays as mutated.
func (s *Store) saveLocked(ctx context.Context) error {
	settings := s.settings
	snap := Snapshot{
		Students:   append([]Student(nil), s.students...),
		Classes:    append([]string(nil), s.classes...),
		Attendance: append([]AttendanceRecord(nil), s.attendance...),
		Settings:   &settings,
	}
	if err := s.persist.SaveAll(ctx, snap); err != nil {
		return NewStorageError(err)
	}
	return nil
}

// ===== students =====

func (s *Store) AddStudent(ctx context.Context, name, nis, class string) (Student, error) {
	name = strings.TrimSpace(name)
	nis = strings.TrimSpace(nis)
	class = strings.TrimSpace(class)
	if name == "" {
		return Student{}, NewInvalidArgumentError("name is required")
	}
	if nis == "" {
		return Student{}, NewInvalidArgumentError("nis is required")
	}
	// nis uniqueness is intentionally not enforced.

	s.mu.Lock()
	defer s.mu.Unlock()

	st := Student{ID: s.newID(), Name: name, NIS: nis, Class: class}
	s.students = append(s.students, st)
	if err := s.saveLocked(ctx); err != nil {
		return Student{}, err
	}
	return st, nil
}

// UpdateStudent replaces the whole record, it does not merge.
func (s *Store) UpdateStudent(ctx context.Context, id, name, nis, class string) (Student, error) {
	name = strings.TrimSpace(name)
	nis = strings.TrimSpace(nis)
	class = strings.TrimSpace(class)
	if name == "" {
		return Student{}, NewInvalidArgumentError("name is required")
	}
	if nis == "" {
		return Student{}, NewInvalidArgumentError("nis is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.students {
		if s.students[i].ID == id {
			s.students[i] = Student{ID: id, Name: name, NIS: nis, Class: class}
			if err := s.saveLocked(ctx); err != nil {
				return Student{}, err
			}
			return s.students[i], nil
		}
	}
	return Student{}, NewNotFoundError("student not found: " + id)
}

// DeleteStudent removes the student and every attendance record pointing at
// it. Deleting an unknown id is a no-op, not an error.
func (s *Store) DeleteStudent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	kept := s.students[:0]
	for _, st := range s.students {
		if st.ID == id {
			found = true
			continue
		}
		kept = append(kept, st)
	}
	if !found {
		return nil
	}
	s.students = kept

	keptAtt := s.attendance[:0]
	for _, a := range s.attendance {
		if a.StudentID == id {
			continue
		}
		keptAtt = append(keptAtt, a)
	}
	s.attendance = keptAtt

	return s.saveLocked(ctx)
}

// ===== classes =====

func (s *Store) AddClass(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewInvalidArgumentError("class name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.classes {
		if c == name {
			return NewConflictError("class already exists: " + name)
		}
	}
	// insertion order is display order
	s.classes = append(s.classes, name)
	return s.saveLocked(ctx)
}

// DeleteClass unassigns every student in the class (class becomes "").
// Attendance snapshots keep the old class name as recorded.
func (s *Store) DeleteClass(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	kept := s.classes[:0]
	for _, c := range s.classes {
		if c == name {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return nil
	}
	s.classes = kept

	for i := range s.students {
		if s.students[i].Class == name {
			s.students[i].Class = ""
		}
	}
	return s.saveLocked(ctx)
}

// ===== attendance =====

// UpsertAttendance is the only write path for attendance: any prior record
// for (studentID, date) is dropped and a fresh one inserted.
func (s *Store) UpsertAttendance(ctx context.Context, studentID, date, class string, status Status) (AttendanceRecord, error) {
	date, err := NormalizeDate(date)
	if err != nil {
		return AttendanceRecord{}, err
	}
	if !status.Known() {
		return AttendanceRecord{}, NewInvalidArgumentError("status must be one of hadir, izin, sakit, alfa")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.studentLocked(studentID); !ok {
		return AttendanceRecord{}, NewNotFoundError("student not found: " + studentID)
	}

	rec := s.upsertLocked(studentID, date, class, status)
	if err := s.saveLocked(ctx); err != nil {
		return AttendanceRecord{}, err
	}
	return rec, nil
}

func (s *Store) upsertLocked(studentID, date, class string, status Status) AttendanceRecord {
	kept := s.attendance[:0]
	for _, a := range s.attendance {
		if a.StudentID == studentID && a.Date == date {
			continue
		}
		kept = append(kept, a)
	}
	rec := AttendanceRecord{
		ID:        s.newID(),
		StudentID: studentID,
		Date:      date,
		Class:     class,
		Status:    status,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
	s.attendance = append(kept, rec)
	return rec
}

// SaveAttendanceSheet commits one attendance-entry session: a draft map of
// studentID to status, staged in the UI, written in a single action. The
// whole sheet is validated before anything mutates, then persisted once.
func (s *Store) SaveAttendanceSheet(ctx context.Context, class, date string, drafts map[string]Status) (int, error) {
	date, err := NormalizeDate(date)
	if err != nil {
		return 0, err
	}
	for id, status := range drafts {
		if !status.Known() {
			return 0, NewInvalidArgumentError("status must be one of hadir, izin, sakit, alfa")
		}
		if id == "" {
			return 0, NewInvalidArgumentError("studentId is required")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range drafts {
		if _, ok := s.studentLocked(id); !ok {
			return 0, NewNotFoundError("student not found: " + id)
		}
	}
	if len(drafts) == 0 {
		return 0, nil
	}

	// apply in roster order so record order stays deterministic
	saved := 0
	for _, st := range s.students {
		status, ok := drafts[st.ID]
		if !ok {
			continue
		}
		s.upsertLocked(st.ID, date, class, status)
		saved++
	}
	if err := s.saveLocked(ctx); err != nil {
		return 0, err
	}
	return saved, nil
}

// ===== settings =====

// SaveSchoolProfile updates the non-empty fields and keeps the rest, which
// is how the profile form behaves (blank input means "leave as is").
func (s *Store) SaveSchoolProfile(ctx context.Context, schoolName, principalName, principalNIP string) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v := strings.TrimSpace(schoolName); v != "" {
		s.settings.SchoolName = v
	}
	if v := strings.TrimSpace(principalName); v != "" {
		s.settings.PrincipalName = v
	}
	if v := strings.TrimSpace(principalNIP); v != "" {
		s.settings.PrincipalNIP = v
	}
	if err := s.saveLocked(ctx); err != nil {
		return Settings{}, err
	}
	return s.settings, nil
}

func (s *Store) SaveTeacherProfile(ctx context.Context, name, nip string) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v := strings.TrimSpace(name); v != "" {
		s.settings.TeacherName = v
	}
	if v := strings.TrimSpace(nip); v != "" {
		s.settings.TeacherNIP = v
	}
	if err := s.saveLocked(ctx); err != nil {
		return Settings{}, err
	}
	return s.settings, nil
}

func (s *Store) SetDarkMode(ctx context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.DarkMode = on
	return s.saveLocked(ctx)
}

// SetLogo stores an uploaded logo as a data URI. Validation (size cap, image
// sniffing) happens in the settings service before this is called.
func (s *Store) SetLogo(ctx context.Context, dataURI string) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.SchoolLogo = dataURI
	s.settings.SchoolLogoType = LogoTypeImage
	if err := s.saveLocked(ctx); err != nil {
		return Settings{}, err
	}
	return s.settings, nil
}

// ResetAll wipes durable storage and reinitializes every collection to the
// factory seed. This is the only way settings go back to defaults.
func (s *Store) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist.Wipe(ctx); err != nil {
		return NewStorageError(err)
	}
	s.classes = defaultClasses()
	s.students = s.sampleStudents()
	s.attendance = nil
	s.settings = defaultSettings()
	return s.saveLocked(ctx)
}

// ===== accessors =====

func (s *Store) studentLocked(id string) (Student, bool) {
	for _, st := range s.students {
		if st.ID == id {
			return st, true
		}
	}
	return Student{}, false
}

func (s *Store) StudentByID(id string) (Student, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.studentLocked(id)
}

// StudentsByClass returns students in insertion order, optionally filtered
// by class name ("" means all).
func (s *Store) StudentsByClass(class string) []Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Student, 0, len(s.students))
	for _, st := range s.students {
		if class != "" && st.Class != class {
			continue
		}
		out = append(out, st)
	}
	return out
}

func (s *Store) Classes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.classes...)
}

func (s *Store) Records() []AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]AttendanceRecord(nil), s.attendance...)
}

func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}
