package repository

import (
	"context"
	"errors"
	"fmt"

	"vagas/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrEmailTaken error = errors.New("email already registered")

// Migrate creates or synchronizes the users and jobs tables.
func Migrate(database Database) error {
	err := database.MigrateModels(&User{}, &Job{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

type UserRepository struct {
	db Database
}

func NewUserRepository(db Database) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) SeedUsers(ctx context.Context, users []User) error {
	if len(users) == 0 {
		return nil
	}

	err := r.db.Seed(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	return nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	err := r.db.GetAll(ctx, &users)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uint) (User, error) {
	return r.getUserBy(ctx, "id", id)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return r.getUserBy(ctx, "email", email)
}

func (r *UserRepository) CreateUser(ctx context.Context, user User) (User, error) {
	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// UpdateUser applies changes to the stored user and returns the result.
func (r *UserRepository) UpdateUser(ctx context.Context, id uint, changes UserChanges) (User, error) {
	user, err := r.GetUserByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if changes.Empty() {
		return user, nil
	}

	changes.merge(&user)

	err = r.db.Update(ctx, &user, "CreatedAt")
	if err != nil {
		switch {
		case errors.Is(err, db.ErrNotFound):
			return User{}, ErrUserNotFound
		case errors.Is(err, db.ErrDuplicate):
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

// DeleteUser removes the user and returns the row as it was before deletion.
func (r *UserRepository) DeleteUser(ctx context.Context, id uint) (User, error) {
	var user User

	err := r.db.Delete(ctx, &user, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("delete user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) getUserBy(ctx context.Context, column string, value any) (User, error) {
	var user User

	err := r.db.GetBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}
