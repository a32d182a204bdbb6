package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"supernote-be/internal/dto"
	"supernote-be/internal/entity"
	"supernote-be/internal/pkg/mailer"
	"supernote-be/internal/pkg/serverutils"
	"supernote-be/internal/repository/specification"
	"supernote-be/internal/repository/unitofwork"

	"supernote-be/pkg/events"
	pktNats "supernote-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Session(ctx context.Context, userId uuid.UUID) (*dto.SessionResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	jwtSecret      string
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	jwtSecret string,
) IAuthService {
	if jwtSecret == "" {
		jwtSecret = os.Getenv("JWT_SECRET")
	}
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		jwtSecret:      jwtSecret,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewApiError(409, "Username already taken")
	}

	existingEmail, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existingEmail != nil {
		return nil, serverutils.NewApiError(409, "Email already registered")
	}

	var dob *time.Time
	if req.Dob != "" {
		parsed, err := time.Parse("2006-01-02", req.Dob)
		if err != nil {
			return nil, serverutils.BadRequest("Invalid date of birth, expected YYYY-MM-DD")
		}
		dob = &parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  dob,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	// Welcome mail is best effort; signup never fails on SMTP problems.
	if s.emailService != nil {
		go func() {
			if emailErr := s.emailService.SendWelcome(user.Email, user.Username); emailErr != nil {
				fmt.Printf("Error sending welcome email: %v\n", emailErr)
			}
		}()
	}

	if s.eventPublisher != nil {
		evt := events.New(events.TypeUserRegistered, map[string]interface{}{
			"user_id":  user.Id,
			"username": user.Username,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("Warning: failed to publish user registered event: %v\n", err)
		}
	}

	return &dto.SignupResponse{Id: user.Id, Username: user.Username}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, serverutils.Unauthorized("Invalid credentials")
	}
	if user == nil {
		return nil, serverutils.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.Unauthorized("Invalid credentials")
	}

	claims := jwt.MapClaims{
		"sub":     user.Username,
		"user_id": user.Id.String(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := s.jwtSecret
	if secret == "" {
		secret = "default_secret"
	}
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: signedToken, Username: user.Username}, nil
}

func (s *authService) Session(ctx context.Context, userId uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.Unauthorized("Session expired")
	}

	return &dto.SessionResponse{
		LoggedIn:  true,
		Id:        &user.Id,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: &user.CreatedAt,
	}, nil
}
