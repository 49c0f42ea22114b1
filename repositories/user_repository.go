package repositories

import (
	"warehouse-app/controllers/idgen"
	"warehouse-app/database"
	"warehouse-app/models"
	seed "warehouse-app/seeder"
)

type UserRepository struct {
	store database.Store
}

func NewUserRepository(store database.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Get all users, seeding the admin account on an empty store
func (r *UserRepository) List() ([]models.User, error) {
	users, ok, err := loadCollection[models.User](r.store, database.KeyUsers)
	if err != nil {
		return nil, err
	}
	if ok {
		return users, nil
	}

	users = seed.DefaultUsers()
	if err := saveCollection(r.store, database.KeyUsers, users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Find(id string) (*models.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// FindByCredentials compares username and password as stored.
func (r *UserRepository) FindByCredentials(username, password string) (*models.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username && users[i].Password == password {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Create user
func (r *UserRepository) Add(input models.UserInput) (models.User, error) {
	users, err := r.List()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:       idgen.NewUUID(),
		Username: input.Username,
		Password: input.Password,
		Role:     input.Role,
	}
	if err := saveCollection(r.store, database.KeyUsers, append(users, user)); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Update user
func (r *UserRepository) Update(id string, patch models.UserPatch) error {
	users, err := r.List()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users[i] = patch.Apply(users[i])
		}
	}
	return saveCollection(r.store, database.KeyUsers, users)
}

// Remove reports false without writing when only one user is left.
func (r *UserRepository) Remove(id string) (bool, error) {
	users, err := r.List()
	if err != nil {
		return false, err
	}
	if len(users) <= 1 {
		return false, nil
	}

	kept := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return true, saveCollection(r.store, database.KeyUsers, kept)
}
