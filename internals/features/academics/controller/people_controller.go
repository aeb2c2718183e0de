package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "edumanage_backend/internals/features/academics/dto"
	model "edumanage_backend/internals/features/academics/model"
	helper "edumanage_backend/internals/helpers"
)

type TeacherController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validator: validator.New()}
}

// POST /api/teachers (admin)
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	teacher, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}
	if err := ctl.DB.Create(teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Teacher created", teacher)
}

// GET /api/teachers
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	var teachers []model.Teacher
	if err := ctl.DB.Order("name ASC").Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", teachers)
}

// GET /api/teachers/:id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	var teacher model.Teacher
	if err := ctl.DB.First(&teacher, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", teacher)
}

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validator: validator.New()}
}

// POST /api/students (admin). Roll number must be unique within
// (class, school year); the composite unique index backs this up.
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	student, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}

	var count int64
	if err := ctl.DB.Model(&model.Student{}).
		Where("roll_no = ? AND class_id = ? AND school_year_id = ?",
			student.RollNo, student.ClassID, student.SchoolYearID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Roll number already taken in this class")
	}

	if err := ctl.DB.Create(student).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Roll number already taken in this class")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Student created", student)
}

// GET /api/students?class_id=&section_id=&school_year_id=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Student{})
	for param, column := range map[string]string{
		"class_id":       "class_id",
		"section_id":     "section_id",
		"school_year_id": "school_year_id",
	} {
		raw := strings.TrimSpace(c.Query(param))
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+param)
		}
		q = q.Where(column+" = ?", id)
	}

	var students []model.Student
	if err := q.Order("roll_no ASC").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", students)
}

// GET /api/students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student model.Student
	if err := ctl.DB.First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", student)
}

// PUT /api/students/:id (admin|teacher)
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student model.Student
	if err := ctl.DB.First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&student)
	if err := ctl.DB.Save(&student).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Roll number already taken in this class")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Student updated", student)
}

type ParentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db, Validator: validator.New()}
}

// POST /api/parents (admin)
func (ctl *ParentController) Create(c *fiber.Ctx) error {
	var req dto.CreateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	parent, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student list")
	}
	if err := ctl.DB.Create(parent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Parent created", parent)
}

// GET /api/parents
func (ctl *ParentController) List(c *fiber.Ctx) error {
	var parents []model.Parent
	if err := ctl.DB.Order("name ASC").Find(&parents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", parents)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(strings.ToUpper(err.Error()), "UNIQUE")
}
