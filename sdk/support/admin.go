package support

import (
	"context"
	"fmt"
	"strconv"
)

// Admin is the wire format for an admin grant record.
type Admin struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	IsOwner   bool   `json:"is_owner"`
	CreatedBy *uint  `json:"created_by,omitempty"`
}

// UserPermissions is the wire format for a user's workspace grants. The
// default workspace id is always present.
type UserPermissions struct {
	UserID       uint   `json:"user_id"`
	WorkspaceIDs []uint `json:"workspace_ids"`
}

// ListUsers returns every registered user, admin flag included.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var result struct {
		Users []User `json:"users"`
	}
	if err := c.get(ctx, "/admin/users", &result); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return result.Users, nil
}

// ListAdmins returns every admin grant.
func (c *Client) ListAdmins(ctx context.Context) ([]Admin, error) {
	var result struct {
		Admins []Admin `json:"admins"`
	}
	if err := c.get(ctx, "/admin/admins", &result); err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return result.Admins, nil
}

// GrantAdmin makes the given user an admin.
func (c *Client) GrantAdmin(ctx context.Context, userID uint) (*Admin, error) {
	body := map[string]uint{"userId": userID}
	var result struct {
		Admin Admin `json:"admin"`
	}
	if err := c.post(ctx, "/admin/admins/add", body, &result); err != nil {
		return nil, fmt.Errorf("grant admin to user %d: %w", userID, err)
	}
	return &result.Admin, nil
}

// RevokeAdmin removes the given user's admin grant. Revoking an owner is
// refused by the server.
func (c *Client) RevokeAdmin(ctx context.Context, userID uint) error {
	body := map[string]uint{"userId": userID}
	if err := c.post(ctx, "/admin/admins/remove", body, nil); err != nil {
		return fmt.Errorf("revoke admin from user %d: %w", userID, err)
	}
	return nil
}

// ListAllTickets returns a page of every user's tickets, annotated with
// owner name and email.
func (c *Client) ListAllTickets(ctx context.Context, opts TicketListOptions) (*TicketPage, error) {
	var page TicketPage
	if err := c.get(ctx, "/admin/tickets"+opts.query(), &page); err != nil {
		return nil, fmt.Errorf("list all tickets: %w", err)
	}
	return &page, nil
}

// UpdateTicket changes a ticket's status and/or priority. A nil field is
// left untouched. Status changes append a history row server-side.
func (c *Client) UpdateTicket(ctx context.Context, ticketID uint, status, prioridade *string) error {
	body := map[string]*string{"status": status, "prioridade": prioridade}
	path := "/admin/tickets/" + strconv.FormatUint(uint64(ticketID), 10)
	if err := c.put(ctx, path, body, nil); err != nil {
		return fmt.Errorf("update ticket %d: %w", ticketID, err)
	}
	return nil
}

// ListWorkspaces returns every workspace, the default one first.
func (c *Client) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	var result struct {
		Workspaces []Workspace `json:"workspaces"`
	}
	if err := c.get(ctx, "/admin/workspaces", &result); err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	return result.Workspaces, nil
}

// CreateWorkspace creates a workspace. A blank slug is derived from the
// name server-side.
func (c *Client) CreateWorkspace(ctx context.Context, name, slug, description string) (*Workspace, error) {
	body := map[string]string{"name": name, "slug": slug, "description": description}
	var result struct {
		Workspace Workspace `json:"workspace"`
	}
	if err := c.post(ctx, "/admin/workspaces", body, &result); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &result.Workspace, nil
}

// UpdateWorkspace renames or re-slugs a workspace. The default flag cannot
// be changed through this call.
func (c *Client) UpdateWorkspace(ctx context.Context, workspaceID uint, name, slug, description string) (*Workspace, error) {
	body := map[string]string{"name": name, "slug": slug, "description": description}
	var result struct {
		Workspace Workspace `json:"workspace"`
	}
	path := "/admin/workspaces/" + strconv.FormatUint(uint64(workspaceID), 10)
	if err := c.put(ctx, path, body, &result); err != nil {
		return nil, fmt.Errorf("update workspace %d: %w", workspaceID, err)
	}
	return &result.Workspace, nil
}

// DeleteWorkspace removes a workspace and every grant referencing it. The
// default workspace is refused by the server.
func (c *Client) DeleteWorkspace(ctx context.Context, workspaceID uint) error {
	path := "/admin/workspaces/" + strconv.FormatUint(uint64(workspaceID), 10)
	if err := c.delete(ctx, path, nil); err != nil {
		return fmt.Errorf("delete workspace %d: %w", workspaceID, err)
	}
	return nil
}

// GetUserPermissions returns the workspace ids granted to a user.
func (c *Client) GetUserPermissions(ctx context.Context, userID uint) (*UserPermissions, error) {
	var result struct {
		Permissions UserPermissions `json:"permissions"`
	}
	path := "/admin/workspaces/permissions/" + strconv.FormatUint(uint64(userID), 10)
	if err := c.get(ctx, path, &result); err != nil {
		return nil, fmt.Errorf("get permissions of user %d: %w", userID, err)
	}
	return &result.Permissions, nil
}

// SetUserPermissions replaces a user's workspace grants with the given
// set. The default workspace is re-added server-side when omitted.
func (c *Client) SetUserPermissions(ctx context.Context, userID uint, workspaceIDs []uint) (*UserPermissions, error) {
	body := map[string]any{"userId": userID, "workspaceIds": workspaceIDs}
	var result struct {
		Permissions UserPermissions `json:"permissions"`
	}
	if err := c.put(ctx, "/admin/workspaces/permissions", body, &result); err != nil {
		return nil, fmt.Errorf("set permissions of user %d: %w", userID, err)
	}
	return &result.Permissions, nil
}
