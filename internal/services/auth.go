package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-diet-tracker/internal/logger"
	"github.com/sbilibin2017/gw-diet-tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidUserInput   = errors.New("username, password and email are required")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string, email string) (int64, error)
}

// FridgeCreator creates the virtual fridge of a new user.
type FridgeCreator interface {
	CreateFridge(ctx context.Context, userID int64) (int64, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, username string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	fridges FridgeCreator
	jwt     JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, fridges FridgeCreator, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		fridges: fridges,
		jwt:     jwt,
	}
}

// Register creates a user with a bcrypt password hash and an empty fridge.
// Callers run it inside one transaction so that both rows exist or neither does.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) (int64, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" || email == "" {
		return 0, ErrInvalidUserInput
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return 0, err
	}
	if user != nil {
		log.Warnw("user already exists", "username", username, "email", email)
		return 0, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	userID, err := svc.writer.Save(ctx, username, string(hashedPassword), email)
	if err != nil {
		log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	fridgeID, err := svc.fridges.CreateFridge(ctx, userID)
	if err != nil {
		log.Errorw("failed to create fridge", "user_id", userID, "err", err)
		return 0, err
	}

	log.Infow("user registered", "user_id", userID, "fridge_id", fridgeID)

	return userID, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		log.Warnw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warnw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
