package user

import (
	"context"
	"fmt"

	"freshlaundry/utils"

	"go.uber.org/zap"
)

// Authenticate verifies the credentials and rotates the session token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := comparePassword(userRec.PasswordHash, password); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.SetTokenHash(userRec.ID, tokenHash); err != nil {
		utils.GetLogger().Error("Authenticate: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	s.cacheTokenHash(userRec.ID, tokenHash)

	return &AuthResponse{
		ID:       userRec.ID,
		Token:    token,
		FullName: userRec.FullName,
		Email:    userRec.Email,
		IsAdmin:  userRec.IsAdmin,
	}, nil
}

// RevokeAuthToken signs the user out everywhere: the stored hash and the
// cache entry are both cleared.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.SetTokenHash(userID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if authCache := utils.GetAuthCacheClient(); authCache != nil {
		_ = authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err()
	}
	return nil
}
