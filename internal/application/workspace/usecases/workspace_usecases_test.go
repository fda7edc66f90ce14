package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atende/internal/domain/user"
	"atende/internal/domain/workspace"
	vo "atende/internal/domain/workspace/value_objects"
	apperrors "atende/internal/shared/errors"
)

func reconstructTestWorkspace(t *testing.T, id uint, slug string, isDefault bool) *workspace.Workspace {
	t.Helper()
	s, err := vo.NewSlug(slug)
	require.NoError(t, err)
	now := time.Now().UTC()
	ws, err := workspace.ReconstructWorkspace(id, "Workspace "+slug, s, "", isDefault, now, now)
	require.NoError(t, err)
	return ws
}

func reconstructTestUser(t *testing.T, id uint) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, "u@example.com", "U", "hash", true, now, now)
	require.NoError(t, err)
	return u
}

func TestCreateWorkspaceUseCase_Execute(t *testing.T) {
	var saved *workspace.Workspace
	mockRepo := &mockWorkspaceRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*workspace.Workspace, error) {
			return nil, errors.New("record not found")
		},
		SaveFunc: func(ctx context.Context, w *workspace.Workspace) error {
			saved = w
			return w.SetID(7)
		},
	}

	useCase := NewCreateWorkspaceUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateWorkspaceCommand{
		Name:        "Suporte Técnico",
		Description: "fila de suporte",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.Workspace.ID)
	assert.Equal(t, "suporte-tecnico", result.Workspace.Slug)
	assert.False(t, result.Workspace.IsDefault)

	require.NotNil(t, saved)
	assert.False(t, saved.IsDefault())
}

func TestCreateWorkspaceUseCase_Execute_DuplicateSlug(t *testing.T) {
	existing := reconstructTestWorkspace(t, 1, "suporte", false)
	mockRepo := &mockWorkspaceRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*workspace.Workspace, error) {
			return existing, nil
		},
	}

	useCase := NewCreateWorkspaceUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateWorkspaceCommand{Name: "Suporte"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestCreateWorkspaceUseCase_Execute_RaceOnUniqueIndex(t *testing.T) {
	mockRepo := &mockWorkspaceRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*workspace.Workspace, error) {
			return nil, errors.New("record not found")
		},
		SaveFunc: func(ctx context.Context, w *workspace.Workspace) error {
			return errors.New("Error 1062: Duplicate entry 'suporte' for key 'workspaces.slug'")
		},
	}

	useCase := NewCreateWorkspaceUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateWorkspaceCommand{Name: "Suporte"})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestUpdateWorkspaceUseCase_Execute_KeepsDefaultFlag(t *testing.T) {
	existing := reconstructTestWorkspace(t, 1, "geral", true)

	var updated *workspace.Workspace
	mockRepo := &mockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*workspace.Workspace, error) {
			return existing, nil
		},
		FindBySlugFunc: func(ctx context.Context, slug string) (*workspace.Workspace, error) {
			return nil, errors.New("record not found")
		},
		UpdateFunc: func(ctx context.Context, w *workspace.Workspace) error {
			updated = w
			return nil
		},
	}

	useCase := NewUpdateWorkspaceUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateWorkspaceCommand{
		WorkspaceID: 1,
		Name:        "Geral Renomeado",
		Slug:        "geral-novo",
	})

	require.NoError(t, err)
	assert.Equal(t, "geral-novo", result.Workspace.Slug)
	assert.True(t, result.Workspace.IsDefault)
	require.NotNil(t, updated)
	assert.True(t, updated.IsDefault())
}

func TestUpdateWorkspaceUseCase_Execute_SlugTakenByOther(t *testing.T) {
	existing := reconstructTestWorkspace(t, 1, "geral", false)
	other := reconstructTestWorkspace(t, 2, "suporte", false)

	mockRepo := &mockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*workspace.Workspace, error) {
			return existing, nil
		},
		FindBySlugFunc: func(ctx context.Context, slug string) (*workspace.Workspace, error) {
			return other, nil
		},
	}

	useCase := NewUpdateWorkspaceUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateWorkspaceCommand{
		WorkspaceID: 1,
		Name:        "Geral",
		Slug:        "suporte",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestUpdateWorkspaceUseCase_Execute_OwnSlugIsNotAConflict(t *testing.T) {
	existing := reconstructTestWorkspace(t, 1, "geral", false)

	mockRepo := &mockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*workspace.Workspace, error) {
			return existing, nil
		},
		FindBySlugFunc: func(ctx context.Context, slug string) (*workspace.Workspace, error) {
			return existing, nil
		},
	}

	useCase := NewUpdateWorkspaceUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateWorkspaceCommand{
		WorkspaceID: 1,
		Name:        "Geral Renomeado",
		Slug:        "geral",
	})

	require.NoError(t, err)
	assert.Equal(t, "geral", result.Workspace.Slug)
}

func TestDeleteWorkspaceUseCase_Execute_CascadesPermissions(t *testing.T) {
	existing := reconstructTestWorkspace(t, 5, "antigo", false)

	permissionsDeleted := false
	workspaceDeleted := false

	mockRepo := &mockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*workspace.Workspace, error) {
			return existing, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			workspaceDeleted = true
			assert.True(t, permissionsDeleted, "permissions must be removed before the workspace")
			return nil
		},
	}
	mockPerms := &mockPermissionRepository{
		DeleteByWorkspaceIDFunc: func(ctx context.Context, workspaceID uint) error {
			permissionsDeleted = true
			assert.Equal(t, uint(5), workspaceID)
			return nil
		},
	}

	useCase := NewDeleteWorkspaceUseCase(mockRepo, mockPerms, &mockTransactor{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteWorkspaceCommand{WorkspaceID: 5})

	require.NoError(t, err)
	assert.Equal(t, uint(5), result.WorkspaceID)
	assert.True(t, workspaceDeleted)
}

func TestDeleteWorkspaceUseCase_Execute_RejectsDefault(t *testing.T) {
	def := reconstructTestWorkspace(t, 1, "geral", true)

	mockRepo := &mockWorkspaceRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*workspace.Workspace, error) {
			return def, nil
		},
	}

	useCase := NewDeleteWorkspaceUseCase(mockRepo, &mockPermissionRepository{}, &mockTransactor{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteWorkspaceCommand{WorkspaceID: 1})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestListUserWorkspacesUseCase_Execute_DefaultPlusGrants(t *testing.T) {
	def := reconstructTestWorkspace(t, 1, "geral", true)
	granted := reconstructTestWorkspace(t, 3, "suporte", false)

	mockRepo := &mockWorkspaceRepository{
		FindDefaultFunc: func(ctx context.Context) (*workspace.Workspace, error) {
			return def, nil
		},
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]*workspace.Workspace, error) {
			assert.Equal(t, []uint{3}, ids)
			return []*workspace.Workspace{granted}, nil
		},
	}
	mockPerms := &mockPermissionRepository{
		GetWorkspaceIDsForUserFunc: func(ctx context.Context, userID uint) ([]uint, error) {
			return []uint{3}, nil
		},
	}

	useCase := NewListUserWorkspacesUseCase(mockRepo, mockPerms, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListUserWorkspacesCommand{UserID: 10})

	require.NoError(t, err)
	require.Len(t, result.Workspaces, 2)
	assert.True(t, result.Workspaces[0].IsDefault)
	assert.Equal(t, "suporte", result.Workspaces[1].Slug)
}

func TestGetUserPermissionsUseCase_Execute_IncludesImplicitDefault(t *testing.T) {
	def := reconstructTestWorkspace(t, 1, "geral", true)

	mockRepo := &mockWorkspaceRepository{
		FindDefaultFunc: func(ctx context.Context) (*workspace.Workspace, error) {
			return def, nil
		},
	}
	mockPerms := &mockPermissionRepository{
		GetWorkspaceIDsForUserFunc: func(ctx context.Context, userID uint) ([]uint, error) {
			return []uint{3, 5}, nil
		},
	}
	mockUsers := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructTestUser(t, id), nil
		},
	}

	useCase := NewGetUserPermissionsUseCase(mockRepo, mockPerms, mockUsers, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetUserPermissionsCommand{UserID: 10})

	require.NoError(t, err)
	assert.Equal(t, []uint{1, 3, 5}, result.Permissions.WorkspaceIDs)
}

func TestGetUserPermissionsUseCase_Execute_UnknownUser(t *testing.T) {
	mockUsers := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, errors.New("record not found")
		},
	}

	useCase := NewGetUserPermissionsUseCase(&mockWorkspaceRepository{}, &mockPermissionRepository{}, mockUsers, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetUserPermissionsCommand{UserID: 404})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSetUserPermissionsUseCase_Execute_StripsDefaultAndDuplicates(t *testing.T) {
	def := reconstructTestWorkspace(t, 1, "geral", true)

	var replacedIDs []uint
	mockRepo := &mockWorkspaceRepository{
		FindDefaultFunc: func(ctx context.Context) (*workspace.Workspace, error) {
			return def, nil
		},
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]*workspace.Workspace, error) {
			out := make([]*workspace.Workspace, 0, len(ids))
			for _, id := range ids {
				out = append(out, reconstructTestWorkspace(t, id, "ws", false))
			}
			return out, nil
		},
	}
	mockPerms := &mockPermissionRepository{
		ReplaceForUserFunc: func(ctx context.Context, userID uint, ids []uint) error {
			replacedIDs = ids
			return nil
		},
	}
	mockUsers := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructTestUser(t, id), nil
		},
	}

	useCase := NewSetUserPermissionsUseCase(mockRepo, mockPerms, mockUsers, &mockLogger{})
	result, err := useCase.Execute(context.Background(), SetUserPermissionsCommand{
		UserID:       10,
		WorkspaceIDs: []uint{1, 3, 3, 5},
	})

	require.NoError(t, err)
	// Default id 1 is never stored, duplicates collapse.
	assert.Equal(t, []uint{3, 5}, replacedIDs)
	// Response re-unions the implicit default.
	assert.Equal(t, []uint{1, 3, 5}, result.Permissions.WorkspaceIDs)
}

func TestSetUserPermissionsUseCase_Execute_EmptyReplaceRevokesAll(t *testing.T) {
	def := reconstructTestWorkspace(t, 1, "geral", true)

	var replacedIDs []uint
	replaced := false
	mockRepo := &mockWorkspaceRepository{
		FindDefaultFunc: func(ctx context.Context) (*workspace.Workspace, error) {
			return def, nil
		},
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]*workspace.Workspace, error) {
			return nil, nil
		},
	}
	mockPerms := &mockPermissionRepository{
		ReplaceForUserFunc: func(ctx context.Context, userID uint, ids []uint) error {
			replaced = true
			replacedIDs = ids
			return nil
		},
	}
	mockUsers := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructTestUser(t, id), nil
		},
	}

	useCase := NewSetUserPermissionsUseCase(mockRepo, mockPerms, mockUsers, &mockLogger{})
	result, err := useCase.Execute(context.Background(), SetUserPermissionsCommand{
		UserID:       10,
		WorkspaceIDs: nil,
	})

	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Empty(t, replacedIDs)
	// The default grant survives every revocation.
	assert.Equal(t, []uint{1}, result.Permissions.WorkspaceIDs)
}

func TestSetUserPermissionsUseCase_Execute_UnknownWorkspace(t *testing.T) {
	def := reconstructTestWorkspace(t, 1, "geral", true)

	mockRepo := &mockWorkspaceRepository{
		FindDefaultFunc: func(ctx context.Context) (*workspace.Workspace, error) {
			return def, nil
		},
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]*workspace.Workspace, error) {
			return nil, nil
		},
	}
	mockUsers := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructTestUser(t, id), nil
		},
	}

	useCase := NewSetUserPermissionsUseCase(mockRepo, &mockPermissionRepository{}, mockUsers, &mockLogger{})
	result, err := useCase.Execute(context.Background(), SetUserPermissionsCommand{
		UserID:       10,
		WorkspaceIDs: []uint{999},
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}
