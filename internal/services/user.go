package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"

	"inkwell/internal/apperr"
	"inkwell/internal/auth"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserService owns registration, login and profile maintenance. The raw
// password exists only transiently; the store only ever sees the bcrypt hash.
type UserService struct {
	users     repository.UserRepository
	uploader  Uploader
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUserService(users repository.UserRepository, uploader Uploader, jwtSecret []byte, tokenTTL time.Duration) *UserService {
	return &UserService{
		users:     users,
		uploader:  uploader,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *UserService) Register(ctx context.Context, firstName, lastName, email, password string) (*models.PublicUser, error) {
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", apperr.ErrValidation)
	}
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email", apperr.ErrValidation)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", apperr.ErrValidation)
	}

	// Email lookup is case-sensitive, matching the unique index.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already exists", apperr.ErrConflict)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", apperr.ErrStore, err)
	}

	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	public := user.Public()
	return &public, nil
}

// Authenticate verifies the credentials and issues a signed, time-limited
// token. Unknown email and wrong password produce the same failure so the
// response cannot be used for account enumeration.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.PublicUser, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", apperr.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: incorrect email or password", apperr.ErrUnauthenticated)
		}
		return nil, "", err
	}

	if !auth.CheckPasswordHash(password, user.Password) {
		return nil, "", fmt.Errorf("%w: incorrect email or password", apperr.ErrUnauthenticated)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("%w: sign token: %v", apperr.ErrStore, err)
	}

	public := user.Public()
	return &public, token, nil
}

// ProfileUpdate carries a partial profile edit. Nil fields stay untouched.
type ProfileUpdate struct {
	FirstName  *string
	LastName   *string
	Occupation *string
	Bio        *string
	Instagram  *string
	Facebook   *string
	LinkedIn   *string
	GitHub     *string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate, photo io.Reader, photoName string) (*models.PublicUser, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if photo != nil {
		url, err := s.uploader.Upload(ctx, photo, photoName, "profile_photos")
		if err != nil {
			return nil, err
		}
		user.PhotoURL = url
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Occupation != nil {
		user.Occupation = *update.Occupation
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.Instagram != nil {
		user.Instagram = *update.Instagram
	}
	if update.Facebook != nil {
		user.Facebook = *update.Facebook
	}
	if update.LinkedIn != nil {
		user.LinkedIn = *update.LinkedIn
	}
	if update.GitHub != nil {
		user.GitHub = *update.GitHub
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	public := user.Public()
	return &public, nil
}

func (s *UserService) Get(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}
	return public, nil
}
