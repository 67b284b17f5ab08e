// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"attendanceku_backend/internals/configs"
	dto "attendanceku_backend/internals/features/users/auth/dto"
	model "attendanceku_backend/internals/features/users/auth/model"
	helper "attendanceku_backend/internals/helpers"
)

const (
	accessTokenTTL  = 1 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// POST /api/auth/signup
func (ctl *AuthController) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := req.ToModel(string(hashed))
	if err := ctl.DB.WithContext(c.Context()).Create(user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.Error(c, fiber.StatusConflict, "Username is already taken")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "SUCCESS SIGNUP", user)
}

// POST /api/auth/signin
func (ctl *AuthController) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ctl.DB.WithContext(c.Context()).
		Where("user_username = ?", req.Username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Username or password is incorrect")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign in")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Username or password is incorrect")
	}

	tokens, err := issueTokens(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	if err := ctl.saveRefreshToken(c, user.UserID, tokens.RefreshToken); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to persist refresh token")
	}

	return helper.Success(c, "SUCCESS SIGN IN", tokens)
}

// POST /api/auth/refresh
// Rotates the refresh token: the presented token must match the stored one.
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	idRaw, _ := claims["id"].(string)
	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", idRaw).
		First(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	if user.UserRefreshToken == nil || *user.UserRefreshToken != req.RefreshToken {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	tokens, err := issueTokens(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	if err := ctl.saveRefreshToken(c, user.UserID, tokens.RefreshToken); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to persist refresh token")
	}

	return helper.Success(c, "SUCCESS REFRESH", tokens)
}

func (ctl *AuthController) saveRefreshToken(c *fiber.Ctx, userID uuid.UUID, token string) error {
	return ctl.DB.WithContext(c.Context()).
		Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_refresh_token", token).Error
}

func issueTokens(user *model.UserModel) (*dto.TokenResponse, error) {
	access, err := signToken(user, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := signToken(user, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func signToken(user *model.UserModel, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       user.UserID.String(),
		"username": user.UserUsername,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
