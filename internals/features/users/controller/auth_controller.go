// internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"edumanage_backend/internals/configs"
	dto "edumanage_backend/internals/features/users/dto"
	model "edumanage_backend/internals/features/users/model"
	helper "edumanage_backend/internals/helpers"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// ========== Register ==========
// POST /api/auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.Model(&model.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username already registered")
	}
	if err := ctl.DB.Model(&model.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := req.ToModel(string(hash))
	if err := ctl.DB.Create(user).Error; err != nil {
		// the pre-checks race with concurrent registrations; the unique
		// indexes are the source of truth
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Username or email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "User registered", dto.FromModelUser(user))
}

// ========== Login ==========
// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.User
	if err := ctl.DB.First(&user, "username = ?", req.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect username or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect username or password")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "User account is inactive")
	}

	return ctl.respondWithToken(c, &user)
}

// ========== Google Login ==========
// POST /api/auth/login-google
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	clientID := configs.GetEnv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Google login is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{clientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}

	var user model.User
	if err := ctl.DB.First(&user, "email = ?", claimSet.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "No account for this Google user")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "User account is inactive")
	}

	return ctl.respondWithToken(c, &user)
}

// ========== Me ==========
// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var user model.User
	if err := ctl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	return helper.JsonOK(c, "OK", dto.FromModelUser(&user))
}

func (ctl *AuthController) respondWithToken(c *fiber.Ctx, user *model.User) error {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":     user.Username,
		"user_id": user.ID.String(),
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.JsonOK(c, "Login success", dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.FromModelUser(user),
	})
}
