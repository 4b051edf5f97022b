package service

import (
	"log/slog"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/models"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/repository"
)

// UserService defines user management and saved jobs operations
type UserService interface {
	ListUsers() ([]models.User, error)
	DeleteUser(id int64) (*models.User, error)
	GetSavedJobs(userID int64) ([]models.Job, error)
	SaveJob(userID, jobID int64) (*models.User, error)
	UnsaveJob(userID, jobID int64) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

func (s *userService) DeleteUser(id int64) (*models.User, error) {
	storeID, err := toStoreID(id, repository.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Delete(storeID)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to delete user", "user_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("🗑️ [UserService] User deleted", "user_id", id)
	return user, nil
}

func (s *userService) GetSavedJobs(userID int64) ([]models.Job, error) {
	storeID, err := toStoreID(userID, repository.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindWithSavedJobs(storeID)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to load saved jobs", "user_id", userID, "error", err)
		return nil, err
	}

	if user.SavedJobs == nil {
		return []models.Job{}, nil
	}
	return user.SavedJobs, nil
}

func (s *userService) SaveJob(userID, jobID int64) (*models.User, error) {
	storeUserID, storeJobID, err := toStorePair(userID, jobID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.SaveJob(storeUserID, storeJobID)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to save job", "user_id", userID, "job_id", jobID, "error", err)
		return nil, err
	}

	s.logger.Info("⭐ [UserService] Job saved", "user_id", userID, "job_id", jobID)
	return user, nil
}

func (s *userService) UnsaveJob(userID, jobID int64) (*models.User, error) {
	storeUserID, storeJobID, err := toStorePair(userID, jobID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.UnsaveJob(storeUserID, storeJobID)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to unsave job", "user_id", userID, "job_id", jobID, "error", err)
		return nil, err
	}

	s.logger.Info("➖ [UserService] Job unsaved", "user_id", userID, "job_id", jobID)
	return user, nil
}

// toStoreID converts a validated request id to a primary key. Negative ids
// can never have been assigned, so they are reported as notFound directly.
func toStoreID(id int64, notFound error) (uint, error) {
	if id < 0 {
		return 0, notFound
	}
	return uint(id), nil
}

func toStorePair(userID, jobID int64) (uint, uint, error) {
	storeUserID, err := toStoreID(userID, repository.ErrUserNotFound)
	if err != nil {
		return 0, 0, err
	}
	storeJobID, err := toStoreID(jobID, repository.ErrJobNotFound)
	if err != nil {
		return 0, 0, err
	}
	return storeUserID, storeJobID, nil
}
