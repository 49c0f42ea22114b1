package services

import (
	"warehouse-app/database"
	"warehouse-app/models"
	"warehouse-app/repositories"
)

type UserService struct {
	repo *repositories.UserRepository
}

func NewUserService(store database.Store) *UserService {
	return &UserService{repo: repositories.NewUserRepository(store)}
}

// Create user
func (s *UserService) CreateUser(input models.UserInput) (models.User, error) {
	return s.repo.Add(input)
}

// Get user by ID
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.repo.Find(id)
}

// Get all users
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.List()
}

// Update user
func (s *UserService) UpdateUser(id string, patch models.UserPatch) error {
	return s.repo.Update(id, patch)
}

// Delete user. deleted is false when the account is the last one left.
func (s *UserService) DeleteUser(id string) (bool, error) {
	return s.repo.Remove(id)
}

func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	return s.repo.FindByCredentials(username, password)
}
