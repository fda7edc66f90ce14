package usecases

import (
	"context"

	"atende/internal/domain/user"
	"atende/internal/domain/workspace"
	"atende/internal/shared/logger"
)

type mockWorkspaceRepository struct {
	SaveFunc        func(ctx context.Context, w *workspace.Workspace) error
	UpdateFunc      func(ctx context.Context, w *workspace.Workspace) error
	DeleteFunc      func(ctx context.Context, id uint) error
	FindByIDFunc    func(ctx context.Context, id uint) (*workspace.Workspace, error)
	FindBySlugFunc  func(ctx context.Context, slug string) (*workspace.Workspace, error)
	FindDefaultFunc func(ctx context.Context) (*workspace.Workspace, error)
	ListFunc        func(ctx context.Context) ([]*workspace.Workspace, error)
	FindByIDsFunc   func(ctx context.Context, ids []uint) ([]*workspace.Workspace, error)
}

func (m *mockWorkspaceRepository) Save(ctx context.Context, w *workspace.Workspace) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, w)
	}
	return nil
}

func (m *mockWorkspaceRepository) Update(ctx context.Context, w *workspace.Workspace) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, w)
	}
	return nil
}

func (m *mockWorkspaceRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockWorkspaceRepository) FindByID(ctx context.Context, id uint) (*workspace.Workspace, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkspaceRepository) FindBySlug(ctx context.Context, slug string) (*workspace.Workspace, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockWorkspaceRepository) FindDefault(ctx context.Context) (*workspace.Workspace, error) {
	if m.FindDefaultFunc != nil {
		return m.FindDefaultFunc(ctx)
	}
	return nil, nil
}

func (m *mockWorkspaceRepository) List(ctx context.Context) ([]*workspace.Workspace, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockWorkspaceRepository) FindByIDs(ctx context.Context, ids []uint) ([]*workspace.Workspace, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

type mockPermissionRepository struct {
	GetWorkspaceIDsForUserFunc func(ctx context.Context, userID uint) ([]uint, error)
	ReplaceForUserFunc         func(ctx context.Context, userID uint, ids []uint) error
	DeleteByWorkspaceIDFunc    func(ctx context.Context, workspaceID uint) error
}

func (m *mockPermissionRepository) GetWorkspaceIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	if m.GetWorkspaceIDsForUserFunc != nil {
		return m.GetWorkspaceIDsForUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockPermissionRepository) ReplaceForUser(ctx context.Context, userID uint, ids []uint) error {
	if m.ReplaceForUserFunc != nil {
		return m.ReplaceForUserFunc(ctx, userID, ids)
	}
	return nil
}

func (m *mockPermissionRepository) DeleteByWorkspaceID(ctx context.Context, workspaceID uint) error {
	if m.DeleteByWorkspaceIDFunc != nil {
		return m.DeleteByWorkspaceIDFunc(ctx, workspaceID)
	}
	return nil
}

type mockUserRepository struct {
	SaveFunc        func(ctx context.Context, u *user.User) error
	FindByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	FindByIDsFunc   func(ctx context.Context, ids []uint) ([]*user.User, error)
	ListFunc        func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockTransactor struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
