package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	academicModel "edumanage_backend/internals/features/academics/model"
	model "edumanage_backend/internals/features/exams/model"
)

type fixture struct {
	db       *gorm.DB
	svc      *ReportCardService
	student  *academicModel.Student
	examDays int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&academicModel.Student{},
		&academicModel.Subject{},
		&model.ExamSchedule{},
		&model.MarksEntry{},
		&model.GradeRule{},
	))

	student := &academicModel.Student{
		UserID:       uuid.New(),
		Name:         "Test Student",
		RollNo:       "17",
		ClassID:      uuid.New(),
		SectionID:    uuid.New(),
		SchoolYearID: uuid.New(),
	}
	require.NoError(t, db.Create(student).Error)

	return &fixture{db: db, svc: NewReportCardService(db), student: student}
}

func (f *fixture) addSubject(t *testing.T, name, code string) *academicModel.Subject {
	t.Helper()
	subject := &academicModel.Subject{
		Name:    name,
		Code:    code,
		ClassID: f.student.ClassID,
	}
	require.NoError(t, f.db.Create(subject).Error)
	return subject
}

// addSchedule assigns strictly increasing exam dates so the report
// card's exam_date ordering is deterministic across schedules.
func (f *fixture) addSchedule(t *testing.T, subjectID uuid.UUID, total float64) *model.ExamSchedule {
	t.Helper()
	f.examDays++
	schedule := &model.ExamSchedule{
		ExamTypeID: uuid.New(),
		Name:       "Midterm",
		ClassID:    f.student.ClassID,
		SubjectID:  subjectID,
		ExamDate:   time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, f.examDays),
		StartTime:  "09:00",
		EndTime:    "11:00",
		TotalMarks: total,
		PassMarks:  total * 0.4,
	}
	require.NoError(t, f.db.Create(schedule).Error)
	return schedule
}

func (f *fixture) addMarks(t *testing.T, scheduleID uuid.UUID, obtained float64, createdAt time.Time) *model.MarksEntry {
	t.Helper()
	entry := &model.MarksEntry{
		ExamScheduleID: scheduleID,
		StudentID:      f.student.ID,
		MarksObtained:  obtained,
		EnteredBy:      uuid.New(),
		CreatedAt:      createdAt,
	}
	require.NoError(t, f.db.Create(entry).Error)
	return entry
}

func (f *fixture) addGradeRule(t *testing.T, name string, min, max float64) {
	t.Helper()
	require.NoError(t, f.db.Create(&model.GradeRule{
		Name:          name,
		MinPercentage: min,
		MaxPercentage: max,
	}).Error)
}

func TestReportCardStudentNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Build(uuid.New(), nil)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestReportCardNoMarks(t *testing.T) {
	f := newFixture(t)
	math := f.addSubject(t, "Mathematics", "MATH")
	f.addSchedule(t, math.ID, 100)

	card, err := f.svc.Build(f.student.ID, nil)
	require.NoError(t, err)

	assert.Empty(t, card.Results)
	assert.Zero(t, card.OverallPercentage)
	assert.Equal(t, "N/A", card.Grade)
}

func TestReportCardAggregation(t *testing.T) {
	f := newFixture(t)
	math := f.addSubject(t, "Mathematics", "MATH")
	eng := f.addSubject(t, "English", "ENG")

	s1 := f.addSchedule(t, math.ID, 100)
	s2 := f.addSchedule(t, eng.ID, 50)
	now := time.Now().UTC()
	f.addMarks(t, s1.ID, 90, now)
	f.addMarks(t, s2.ID, 25, now)

	card, err := f.svc.Build(f.student.ID, nil)
	require.NoError(t, err)

	require.Len(t, card.Results, 2)
	assert.Equal(t, 115.0, card.TotalMarksObtained)
	assert.Equal(t, 150.0, card.TotalMarksPossible)
	assert.Equal(t, 76.67, card.OverallPercentage)
	assert.Equal(t, 90.0, card.Results[0].Percentage)
	assert.Equal(t, 50.0, card.Results[1].Percentage)
}

func TestReportCardSkipsSchedulesWithoutMarks(t *testing.T) {
	f := newFixture(t)
	math := f.addSubject(t, "Mathematics", "MATH")
	eng := f.addSubject(t, "English", "ENG")

	s1 := f.addSchedule(t, math.ID, 100)
	f.addSchedule(t, eng.ID, 100) // no marks entered
	f.addMarks(t, s1.ID, 80, time.Now().UTC())

	card, err := f.svc.Build(f.student.ID, nil)
	require.NoError(t, err)

	require.Len(t, card.Results, 1)
	assert.Equal(t, "Mathematics", card.Results[0].SubjectName)
	assert.Equal(t, 100.0, card.TotalMarksPossible)
	assert.Equal(t, 80.0, card.OverallPercentage)
}

func TestReportCardDuplicateMarksFirstWins(t *testing.T) {
	f := newFixture(t)
	math := f.addSubject(t, "Mathematics", "MATH")
	s1 := f.addSchedule(t, math.ID, 100)

	base := time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC)
	f.addMarks(t, s1.ID, 60, base)
	f.addMarks(t, s1.ID, 95, base.Add(time.Hour))

	card, err := f.svc.Build(f.student.ID, nil)
	require.NoError(t, err)

	require.Len(t, card.Results, 1)
	assert.Equal(t, 60.0, card.Results[0].MarksObtained)
	assert.Equal(t, 60.0, card.OverallPercentage)
}

func TestReportCardExamTypeFilter(t *testing.T) {
	f := newFixture(t)
	math := f.addSubject(t, "Mathematics", "MATH")

	s1 := f.addSchedule(t, math.ID, 100)
	s2 := f.addSchedule(t, math.ID, 100)
	now := time.Now().UTC()
	f.addMarks(t, s1.ID, 70, now)
	f.addMarks(t, s2.ID, 90, now)

	card, err := f.svc.Build(f.student.ID, &s1.ExamTypeID)
	require.NoError(t, err)

	require.Len(t, card.Results, 1)
	assert.Equal(t, 70.0, card.OverallPercentage)
}

func TestReportCardGradeResolution(t *testing.T) {
	f := newFixture(t)
	f.addGradeRule(t, "A+", 90, 100)
	f.addGradeRule(t, "A", 80, 89.99)
	f.addGradeRule(t, "B", 70, 79.99)

	math := f.addSubject(t, "Mathematics", "MATH")
	s1 := f.addSchedule(t, math.ID, 100)
	f.addMarks(t, s1.ID, 85, time.Now().UTC())

	card, err := f.svc.Build(f.student.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "A", card.Grade)
}

func TestReportCardOverlappingBandsHighestMinWins(t *testing.T) {
	f := newFixture(t)
	f.addGradeRule(t, "A+", 90, 100)
	f.addGradeRule(t, "X", 85, 100) // erroneous overlap
	f.addGradeRule(t, "A", 80, 89.99)

	math := f.addSubject(t, "Mathematics", "MATH")
	s1 := f.addSchedule(t, math.ID, 100)
	f.addMarks(t, s1.ID, 95, time.Now().UTC())

	card, err := f.svc.Build(f.student.ID, nil)
	require.NoError(t, err)

	// rules scan in descending min order; A+ (min 90) beats X (min 85)
	assert.Equal(t, "A+", card.Grade)
}

func TestReportCardNoMatchingBand(t *testing.T) {
	f := newFixture(t)
	f.addGradeRule(t, "A+", 90, 100)

	math := f.addSubject(t, "Mathematics", "MATH")
	s1 := f.addSchedule(t, math.ID, 100)
	f.addMarks(t, s1.ID, 40, time.Now().UTC())

	card, err := f.svc.Build(f.student.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "N/A", card.Grade)
}

func TestReportCardUnknownSubject(t *testing.T) {
	f := newFixture(t)
	s1 := f.addSchedule(t, uuid.New(), 100) // subject never created
	f.addMarks(t, s1.ID, 55, time.Now().UTC())

	card, err := f.svc.Build(f.student.ID, nil)
	require.NoError(t, err)

	require.Len(t, card.Results, 1)
	assert.Equal(t, "Unknown", card.Results[0].SubjectName)
	assert.Equal(t, "", card.Results[0].SubjectCode)
}

func TestReportCardZeroTotalMarksSchedule(t *testing.T) {
	f := newFixture(t)
	math := f.addSubject(t, "Mathematics", "MATH")
	eng := f.addSubject(t, "English", "ENG")

	bad := f.addSchedule(t, math.ID, 0)
	good := f.addSchedule(t, eng.ID, 100)
	now := time.Now().UTC()
	f.addMarks(t, bad.ID, 10, now)
	f.addMarks(t, good.ID, 50, now)

	card, err := f.svc.Build(f.student.ID, nil)
	require.NoError(t, err)

	require.Len(t, card.Results, 2)
	assert.Zero(t, card.Results[0].Percentage)
	// the zero-total schedule stays out of both totals
	assert.Equal(t, 50.0, card.TotalMarksObtained)
	assert.Equal(t, 100.0, card.TotalMarksPossible)
	assert.Equal(t, 50.0, card.OverallPercentage)
}
