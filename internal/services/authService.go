package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"jobportal-backend/internal/models"
)

// AuthService registers and authenticates users. No session state is kept:
// the signed token is the sole credential artifact.
type AuthService struct {
	users     *mongo.Collection
	jwtSecret string
}

func NewAuthService(users *mongo.Collection, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

// AuthResponse is the public view of a user plus a freshly signed token.
type AuthResponse struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Role  string             `json:"role"`
	Token string             `json:"token"`
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken signs an HS256 token carrying the user id and role.
func (s *AuthService) GenerateToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   userID,
		"role": role,
		"exp":  time.Now().Add(30 * 24 * time.Hour).Unix(), // Token expires in 30 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// Register creates a new user and returns its public fields plus a token.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (AuthResponse, error) {
	if name == "" || email == "" || password == "" || role == "" {
		return AuthResponse{}, ErrMissingFields
	}
	if role != models.RoleJobSeeker && role != models.RoleJobProvider {
		return AuthResponse{}, ErrInvalidRole
	}
	if len(password) < 6 {
		return AuthResponse{}, ErrPasswordTooShort
	}

	email = strings.ToLower(strings.TrimSpace(email))

	// Check if user already exists
	err := s.users.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return AuthResponse{}, ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return AuthResponse{}, err
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return AuthResponse{}, err
	}

	now := time.Now()
	user := models.User{
		ID:          primitive.NewObjectID(),
		Name:        strings.TrimSpace(name),
		Email:       email,
		Password:    hashedPassword,
		Role:        role,
		SavedJobs:   []primitive.ObjectID{},
		AppliedJobs: []primitive.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		// The unique email index catches the race between the existence
		// check and the insert.
		if mongo.IsDuplicateKeyError(err) {
			return AuthResponse{}, ErrEmailTaken
		}
		return AuthResponse{}, err
	}

	token, err := s.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role, Token: token}, nil
}

// Login authenticates a user by email and password. Unknown email and wrong
// password return the same generic error.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return AuthResponse{}, ErrInvalidCredentials
		}
		return AuthResponse{}, err
	}

	if !VerifyPassword(password, user.Password) {
		return AuthResponse{}, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role, Token: token}, nil
}
