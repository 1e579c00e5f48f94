package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"freshlaundry/models"
	"freshlaundry/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// VerifyPasswordComplexity enforces the minimum password rules.
func VerifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

// Register validates the request, persists the account and returns a
// fresh session token.
func (s *DefaultUserService) Register(req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.FullName == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Phone:        req.Phone,
		Address:      req.Address,
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("Register: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	userObj.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.cacheTokenHash(userObj.ID, userObj.TokenHash)

	return &AuthResponse{
		ID:       userObj.ID,
		Token:    token,
		FullName: userObj.FullName,
		Email:    userObj.Email,
		IsAdmin:  userObj.IsAdmin,
	}, nil
}

// cacheTokenHash mirrors the stored token hash into the auth cache so the
// auth middleware can skip the DB on the hot path. Best-effort.
func (s *DefaultUserService) cacheTokenHash(userID, hash string) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return
	}
	ctx := context.Background()
	if err := authCache.Set(ctx, utils.AuthCachePrefix+userID, hash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache auth token hash", zap.String("userID", userID), zap.Error(err))
	}
}
