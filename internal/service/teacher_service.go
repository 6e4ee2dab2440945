package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gyruslabs/gyrus-api/internal/dto"
	"github.com/gyruslabs/gyrus-api/internal/models"
	"github.com/gyruslabs/gyrus-api/internal/repository"
)

const (
	dobLayout     = "2006-01-02"
	tokenLifetime = 24 * time.Hour
)

// TeacherService exposes teacher registration, approval and login use cases.
type TeacherService interface {
	JoinRequest(ctx context.Context, payload dto.TeacherJoinRequest) (dto.TeacherResponse, error)
	SetStatus(ctx context.Context, id uint, payload dto.TeacherStatusRequest) (dto.TeacherResponse, error)
	ListPending(ctx context.Context) ([]dto.TeacherResponse, error)
	List(ctx context.Context) ([]dto.TeacherResponse, error)
	Get(ctx context.Context, id uint) (dto.TeacherResponse, error)
	GetByEmail(ctx context.Context, email string) (dto.TeacherResponse, error)
	Login(ctx context.Context, payload dto.TeacherLoginRequest) error
	VerifyLogin(ctx context.Context, payload dto.TeacherVerifyRequest) (dto.TokenResponse, error)
}

type teacherService struct {
	teachers  repository.TeacherRepository
	otp       OTPService
	validator *validator.Validate
	logger    zerolog.Logger
	jwtSecret string
	now       func() time.Time
}

// NewTeacherService builds a new teacher service.
func NewTeacherService(teachers repository.TeacherRepository, otp OTPService, validate *validator.Validate, jwtSecret string, logger zerolog.Logger) TeacherService {
	return &teacherService{
		teachers:  teachers,
		otp:       otp,
		validator: validate,
		logger:    logger.With().Str("component", "teacher_service").Logger(),
		jwtSecret: jwtSecret,
		now:       time.Now,
	}
}

func (s *teacherService) JoinRequest(ctx context.Context, payload dto.TeacherJoinRequest) (dto.TeacherResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TeacherResponse{}, err
	}

	dob, err := time.Parse(dobLayout, payload.DOB)
	if err != nil {
		return dto.TeacherResponse{}, NewValidationError("dob", "date of birth must be formatted as YYYY-MM-DD")
	}

	if _, err := s.teachers.GetByEmail(ctx, payload.Email); err == nil {
		return dto.TeacherResponse{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.TeacherResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.TeacherResponse{}, err
	}

	teacher := models.Teacher{
		Name:         payload.Name,
		Email:        payload.Email,
		DOB:          dob,
		Department:   payload.Department,
		PasswordHash: string(hash),
		Phone:        payload.Phone,
		School:       payload.School,
		Status:       models.TeacherStatusPending,
	}

	if err := s.teachers.Create(ctx, &teacher); err != nil {
		return dto.TeacherResponse{}, err
	}

	s.logger.Info().Uint("teacher_id", teacher.ID).Str("email", teacher.Email).Msg("join request created")

	return dto.NewTeacherResponse(teacher), nil
}

func (s *teacherService) SetStatus(ctx context.Context, id uint, payload dto.TeacherStatusRequest) (dto.TeacherResponse, error) {
	if id == 0 {
		return dto.TeacherResponse{}, ErrInvalidIdentity
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.TeacherResponse{}, err
	}

	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TeacherResponse{}, ErrTeacherNotFound
		}
		return dto.TeacherResponse{}, err
	}

	teacher.Status = payload.Status
	if err := s.teachers.Update(ctx, &teacher); err != nil {
		return dto.TeacherResponse{}, err
	}

	s.logger.Info().Uint("teacher_id", teacher.ID).Str("status", teacher.Status).Msg("join request resolved")

	return dto.NewTeacherResponse(teacher), nil
}

func (s *teacherService) ListPending(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.teachers.ListByStatus(ctx, models.TeacherStatusPending)
	if err != nil {
		return nil, err
	}

	return dto.NewTeacherResponseSlice(teachers), nil
}

func (s *teacherService) List(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewTeacherResponseSlice(teachers), nil
}

func (s *teacherService) Get(ctx context.Context, id uint) (dto.TeacherResponse, error) {
	if id == 0 {
		return dto.TeacherResponse{}, ErrInvalidIdentity
	}

	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TeacherResponse{}, ErrTeacherNotFound
		}
		return dto.TeacherResponse{}, err
	}

	return dto.NewTeacherResponse(teacher), nil
}

func (s *teacherService) GetByEmail(ctx context.Context, email string) (dto.TeacherResponse, error) {
	teacher, err := s.teachers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TeacherResponse{}, ErrTeacherNotFound
		}
		return dto.TeacherResponse{}, err
	}

	return dto.NewTeacherResponse(teacher), nil
}

// Login verifies the password and sends a one-time passcode to the
// teacher's email. The bearer credential is only issued after the passcode
// is verified.
func (s *teacherService) Login(ctx context.Context, payload dto.TeacherLoginRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}

	teacher, err := s.teachers.GetByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(payload.Password)); err != nil {
		return ErrInvalidCredentials
	}

	if !teacher.IsApproved() {
		return ErrTeacherNotApproved
	}

	return s.otp.Issue(ctx, teacher.Email)
}

func (s *teacherService) VerifyLogin(ctx context.Context, payload dto.TeacherVerifyRequest) (dto.TokenResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TokenResponse{}, err
	}

	if err := s.otp.Verify(ctx, payload.Email, payload.Code); err != nil {
		return dto.TokenResponse{}, err
	}

	teacher, err := s.teachers.GetByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TokenResponse{}, ErrTeacherNotFound
		}
		return dto.TokenResponse{}, err
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub":  teacher.Email,
		"name": teacher.Name,
		"role": "teacher",
		"iat":  now.Unix(),
		"exp":  now.Add(tokenLifetime).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return dto.TokenResponse{}, err
	}

	s.logger.Info().Str("email", teacher.Email).Msg("teacher signed in")

	return dto.TokenResponse{
		Token:   token,
		Teacher: dto.NewTeacherResponse(teacher),
	}, nil
}
