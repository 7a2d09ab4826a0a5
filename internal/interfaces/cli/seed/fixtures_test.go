package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/migrations"
	"github.com/orris-inc/helpdesk/internal/infrastructure/repository"
	"github.com/orris-inc/helpdesk/internal/shared/config"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

const demoFixtures = `
users:
  - email: admin@example.com
    password: adminpass123
    role: admin
  - email: alice@example.com
    password: password123
tickets:
  - owner: alice@example.com
    subject: Cannot log in
    description: The login page keeps spinning after I submit.
    priority: high
    status: resolved
    replies:
      - author: alice@example.com
        message: Tried two browsers already.
      - author: admin@example.com
        message: Deployed a fix, please retry.
  - owner: alice@example.com
    subject: Invoice copy
    description: Please send a copy of last month's invoice.
`

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Driver: config.DriverSQLite, Database: ":memory:"}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		users   int
		tickets int
		wantErr bool
	}{
		{name: "demo", input: demoFixtures, users: 2, tickets: 2},
		{name: "empty document", input: "", users: 0, tickets: 0},
		{name: "unknown key", input: "users:\n  - email: a@x.com\n    nickname: al\n", wantErr: true},
		{name: "malformed", input: "users: [", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Load(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, f.Users, tt.users)
			assert.Len(t, f.Tickets, tt.tickets)
		})
	}
}

func TestLifecyclePath(t *testing.T) {
	tests := []struct {
		target  vo.TicketStatus
		want    []vo.TicketStatus
		wantErr bool
	}{
		{target: vo.StatusOpen, want: nil},
		{target: vo.StatusInProgress, want: []vo.TicketStatus{vo.StatusInProgress}},
		{target: vo.StatusResolved, want: []vo.TicketStatus{vo.StatusInProgress, vo.StatusResolved}},
		{target: vo.StatusClosed, want: []vo.TicketStatus{vo.StatusInProgress, vo.StatusResolved, vo.StatusClosed}},
		{target: "ARCHIVED", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			got, err := lifecyclePath(tt.target)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeeder_Apply(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	fixtures, err := Load(strings.NewReader(demoFixtures))
	require.NoError(t, err)

	seeder := NewSeeder(db, bcrypt.MinCost, logger.NewNop())
	sum, err := seeder.Apply(ctx, fixtures)
	require.NoError(t, err)
	assert.Equal(t, &Summary{UsersCreated: 2, Tickets: 2, Replies: 2}, sum)

	tickets, total, err := repository.NewTicketRepository(db).List(ctx, ticket.TicketFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)

	byStatus := map[string]vo.TicketStatus{}
	for _, tk := range tickets {
		byStatus[tk.Subject()] = tk.Status()
	}
	assert.Equal(t, vo.StatusResolved, byStatus["Cannot log in"])
	assert.Equal(t, vo.StatusOpen, byStatus["Invoice copy"])

	again, err := NewSeeder(db, bcrypt.MinCost, logger.NewNop()).Apply(ctx, &Fixtures{Users: fixtures.Users})
	require.NoError(t, err)
	assert.Equal(t, 0, again.UsersCreated)
	assert.Equal(t, 2, again.UsersSkipped)
}

func TestSeeder_Apply_Errors(t *testing.T) {
	tests := []struct {
		name     string
		fixtures *Fixtures
		errPart  string
	}{
		{
			name:     "unknown owner",
			fixtures: &Fixtures{Tickets: []TicketFixture{{Owner: "ghost@example.com", Subject: "s", Description: "long enough text"}}},
			errPart:  "unknown user",
		},
		{
			name:     "unknown role",
			fixtures: &Fixtures{Users: []UserFixture{{Email: "a@example.com", Password: "password123", Role: "owner"}}},
			errPart:  "unknown role",
		},
		{
			name: "status without admin",
			fixtures: &Fixtures{
				Users:   []UserFixture{{Email: "a@example.com", Password: "password123"}},
				Tickets: []TicketFixture{{Owner: "a@example.com", Subject: "s", Description: "long enough text", Status: "CLOSED"}},
			},
			errPart: "requires an admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			_, err := NewSeeder(db, bcrypt.MinCost, logger.NewNop()).Apply(context.Background(), tt.fixtures)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}
