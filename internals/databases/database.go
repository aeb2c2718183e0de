package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"edumanage_backend/internals/configs"
	academicModel "edumanage_backend/internals/features/academics/model"
	attendanceModel "edumanage_backend/internals/features/attendance/model"
	examModel "edumanage_backend/internals/features/exams/model"
	financeModel "edumanage_backend/internals/features/finance/model"
	timetableModel "edumanage_backend/internals/features/timetable/model"
	userModel "edumanage_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=edumanage&options=-c statement_timeout=3000",
		configs.GetEnv("DB_USER"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST"),
		configs.GetEnv("DB_PORT"),
		configs.GetEnv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // needed for PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connect failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates every table the app touches.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.User{},
		&academicModel.SchoolYear{},
		&academicModel.Section{},
		&academicModel.Class{},
		&academicModel.Subject{},
		&academicModel.Teacher{},
		&academicModel.Student{},
		&academicModel.Parent{},
		&academicModel.Settings{},
		&timetableModel.TimetableEntry{},
		&attendanceModel.Attendance{},
		&examModel.ExamType{},
		&examModel.ExamSchedule{},
		&examModel.MarksEntry{},
		&examModel.GradeRule{},
		&financeModel.FeeType{},
		&financeModel.FeeStructure{},
		&financeModel.Invoice{},
		&financeModel.Payment{},
		&financeModel.Income{},
		&financeModel.Expense{},
	)
}
