package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/curioapp/curio/internal/domain/entity"
	repo "github.com/curioapp/curio/internal/domain/repository"
	"github.com/curioapp/curio/pkg/helpers"
)

// UserService handles signup, sign-in/out and the user-facing reads, plus
// the admin-only account deletion.
type UserService struct {
	Users     repo.UserRepository
	Authority *SessionService
	Policy    *Policy
	Logger    *logrus.Logger
}

func NewUserService(users repo.UserRepository, authority *SessionService, policy *Policy, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Authority: authority, Policy: policy, Logger: logger}
}

// SignupInput carries the profile fields collected at registration.
type SignupInput struct {
	FirstName     string
	LastName      string
	UserName      string
	Email         string
	Password      string
	Country       string
	AboutMe       string
	DOB           string
	ContactNumber string
}

// Signup registers a new nonadmin account. Duplicate username/email fail
// before anything is written; uniqueness is additionally enforced by store
// constraints since multiple instances may race.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if existing, err := s.Users.GetByUserName(ctx, in.UserName); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrDuplicateUserName
	}
	if existing, err := s.Users.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrDuplicateEmail
	}

	salt, err := helpers.NewSalt()
	if err != nil {
		return nil, err
	}
	hash, err := helpers.HashPassword(salt, in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		UUID:          uuid.NewString(),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		UserName:      in.UserName,
		Email:         in.Email,
		Password:      hash,
		Salt:          salt,
		Country:       in.Country,
		AboutMe:       in.AboutMe,
		DOB:           in.DOB,
		Role:          entity.RoleNonAdmin,
		ContactNumber: in.ContactNumber,
		CreatedAt:     time.Now(),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_uuid", u.UUID).Info("user registered")
	}
	return u, nil
}

// Signin verifies credentials and opens a new session. Unknown username and
// wrong password surface as distinct failures.
func (s *UserService) Signin(ctx context.Context, userName, password string) (*entity.Session, error) {
	u, err := s.Users.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUnknownUserName
	}
	if !helpers.CheckPassword(u.Password, u.Salt, password) {
		return nil, ErrWrongPassword
	}
	return s.Authority.Create(ctx, u)
}

// Signout closes the session behind the token and returns the owner's uuid.
func (s *UserService) Signout(ctx context.Context, token string) (string, error) {
	return s.Authority.Close(ctx, token)
}

// GetUserProfile returns any user's profile to a signed-in caller.
func (s *UserService) GetUserProfile(ctx context.Context, token, userUUID string) (*entity.User, error) {
	if _, err := s.Policy.RequireSignedIn(ctx, token); err != nil {
		return nil, err
	}
	u, err := s.Users.GetByUUID(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// DeleteUser removes an account; admin only. The target is resolved before
// the role gate so a missing user reports UserNotFound regardless of the
// caller. Dependent content goes away via the store's cascade rules.
func (s *UserService) DeleteUser(ctx context.Context, token, userUUID string) (string, error) {
	target, err := s.Users.GetByUUID(ctx, userUUID)
	if err != nil {
		return "", err
	}
	if target == nil {
		return "", ErrUserNotFound
	}
	sess, err := s.Policy.RequireSignedIn(ctx, token)
	if err != nil {
		return "", err
	}
	if err := s.Policy.RequireAdmin(sess); err != nil {
		return "", err
	}
	if err := s.Users.Delete(ctx, userUUID); err != nil {
		return "", err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_uuid": userUUID, "admin_uuid": sess.User.UUID}).Info("user deleted")
	}
	return userUUID, nil
}
