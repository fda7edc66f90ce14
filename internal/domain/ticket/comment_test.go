package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "atende/internal/domain/ticket/value_objects"
)

func TestNewComment(t *testing.T) {
	tests := []struct {
		name       string
		ticketID   uint
		userID     uint
		authorRole vo.AuthorRole
		body       string
		wantErr    string
	}{
		{
			name:       "valid user comment",
			ticketID:   1,
			userID:     2,
			authorRole: vo.AuthorRoleUser,
			body:       "ainda com problema",
		},
		{
			name:       "valid staff comment",
			ticketID:   1,
			userID:     9,
			authorRole: vo.AuthorRoleStaff,
			body:       "estamos verificando",
		},
		{
			name:       "missing ticket",
			ticketID:   0,
			userID:     2,
			authorRole: vo.AuthorRoleUser,
			body:       "oi",
			wantErr:    "ticket ID is required",
		},
		{
			name:       "blank body after trim",
			ticketID:   1,
			userID:     2,
			authorRole: vo.AuthorRoleUser,
			body:       "   \n ",
			wantErr:    "comment cannot be empty",
		},
		{
			name:       "body too long",
			ticketID:   1,
			userID:     2,
			authorRole: vo.AuthorRoleUser,
			body:       strings.Repeat("a", 5001),
			wantErr:    "maximum length",
		},
		{
			name:       "invalid role",
			ticketID:   1,
			userID:     2,
			authorRole: vo.AuthorRole("bot"),
			body:       "oi",
			wantErr:    "invalid author role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.ticketID, tt.userID, tt.authorRole, tt.body)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.authorRole, c.AuthorRole())
			assert.Equal(t, strings.TrimSpace(tt.body), c.Body())
			assert.False(t, c.CreatedAt().IsZero())
		})
	}
}

func TestNewStatusHistory(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		h, err := NewStatusHistory(1, vo.StatusAberto, vo.StatusVisto, 9)
		require.NoError(t, err)
		assert.Equal(t, vo.StatusAberto, h.OldStatus())
		assert.Equal(t, vo.StatusVisto, h.NewStatus())
		assert.Equal(t, uint(9), h.ChangedBy())
	})

	t.Run("unchanged status rejected", func(t *testing.T) {
		_, err := NewStatusHistory(1, vo.StatusVisto, vo.StatusVisto, 9)
		require.Error(t, err)
	})

	t.Run("missing actor rejected", func(t *testing.T) {
		_, err := NewStatusHistory(1, vo.StatusAberto, vo.StatusVisto, 0)
		require.Error(t, err)
	})
}
