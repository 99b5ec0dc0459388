package impl

import (
	"context"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"

	"github.com/google/uuid"
)

// Map-backed fakes standing in for the GORM repositories. They implement
// just enough semantics (not-found errors, generated IDs) for the use case
// tests to exercise real control flow.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) delete(id uuid.UUID) {
	delete(r.users, id)
}

type fakeTodoRepo struct {
	todos map[uuid.UUID]*entity.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: make(map[uuid.UUID]*entity.Todo)}
}

func (r *fakeTodoRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Todo, error) {
	todo, ok := r.todos[id]
	if !ok {
		return nil, repository.ErrTodoNotFound
	}

	clone := *todo

	return &clone, nil
}

func (r *fakeTodoRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Todo, error) {
	var todos []*entity.Todo
	for _, todo := range r.todos {
		if todo.UserID == userID {
			clone := *todo
			todos = append(todos, &clone)
		}
	}

	return todos, nil
}

func (r *fakeTodoRepo) Create(_ context.Context, todo *entity.Todo) error {
	if todo.ID == uuid.Nil {
		todo.ID = uuid.New()
	}
	clone := *todo
	r.todos[todo.ID] = &clone

	return nil
}

func (r *fakeTodoRepo) Update(_ context.Context, todo *entity.Todo) error {
	if _, ok := r.todos[todo.ID]; !ok {
		return repository.ErrTodoNotFound
	}
	clone := *todo
	r.todos[todo.ID] = &clone

	return nil
}

func (r *fakeTodoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.todos[id]; !ok {
		return repository.ErrTodoNotFound
	}
	delete(r.todos, id)

	return nil
}

type fakeCommentRepo struct {
	comments map[uuid.UUID]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uuid.UUID]*entity.Comment)}
}

func (r *fakeCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrCommentNotFound
	}

	clone := *comment

	return &clone, nil
}

func (r *fakeCommentRepo) FindByTodoID(_ context.Context, todoID uuid.UUID) ([]*entity.Comment, error) {
	var comments []*entity.Comment
	for _, comment := range r.comments {
		if comment.TodoID == todoID {
			clone := *comment
			comments = append(comments, &clone)
		}
	}

	return comments, nil
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	clone := *comment
	r.comments[comment.ID] = &clone

	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.comments[id]; !ok {
		return repository.ErrCommentNotFound
	}
	delete(r.comments, id)

	return nil
}

// fakeTxManager satisfies TransactionManager without a database; the fakes
// have no transactional state, so Execute just hands the callback a factory
// over the same repositories.
type fakeTxManager struct {
	factory *fakeFactory
}

type fakeFactory struct {
	userRepo    *fakeUserRepo
	todoRepo    *fakeTodoRepo
	commentRepo *fakeCommentRepo
}

func (f *fakeFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *fakeFactory) TodoRepo() repository.TodoRepository {
	return f.todoRepo
}

func (f *fakeFactory) CommentRepo() repository.CommentRepository {
	return f.commentRepo
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}
