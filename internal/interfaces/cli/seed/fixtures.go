package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	ticketUsecases "github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	userUsecases "github.com/orris-inc/helpdesk/internal/application/user/usecases"
	"github.com/orris-inc/helpdesk/internal/domain/shared/events"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/infrastructure/repository"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	apperrors "github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/services/markdown"
)

// Fixtures is the YAML document loaded by the seed command.
type Fixtures struct {
	Users   []UserFixture   `yaml:"users"`
	Tickets []TicketFixture `yaml:"tickets"`
}

type UserFixture struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type TicketFixture struct {
	Owner       string         `yaml:"owner"`
	Subject     string         `yaml:"subject"`
	Description string         `yaml:"description"`
	Priority    string         `yaml:"priority"`
	Status      string         `yaml:"status"`
	Replies     []ReplyFixture `yaml:"replies"`
}

type ReplyFixture struct {
	Author  string `yaml:"author"`
	Message string `yaml:"message"`
}

// Summary counts what Apply wrote.
type Summary struct {
	UsersCreated int
	UsersSkipped int
	Tickets      int
	Replies      int
}

// Load decodes fixtures, rejecting unknown keys.
func Load(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &f, nil
}

// Seeder writes fixtures through the regular use cases so every domain rule
// applies. No event subscribers are attached, so seeding sends no email.
type Seeder struct {
	users        user.Repository
	signup       userUsecases.SignupExecutor
	ensureAdmin  *userUsecases.EnsureAdminUseCase
	createTicket ticketUsecases.CreateTicketExecutor
	createReply  ticketUsecases.CreateReplyExecutor
	updateStatus ticketUsecases.UpdateStatusExecutor
	logger       logger.Interface

	// admin performs status changes for tickets whose replies name no admin.
	admin *ticketUsecases.Caller
}

func NewSeeder(gdb *gorm.DB, bcryptCost int, log logger.Interface) *Seeder {
	userRepo := repository.NewUserRepository(gdb, log)
	ticketRepo := repository.NewTicketRepository(gdb)
	replyRepo := repository.NewReplyRepository(gdb)
	tx := db.NewTransactionManager(gdb)
	hasher := auth.NewBcryptPasswordHasher(bcryptCost)
	renderer := markdown.NewRenderer()
	publisher := events.NewDispatcher()

	return &Seeder{
		users:        userRepo,
		signup:       userUsecases.NewSignupUseCase(userRepo, hasher, log),
		ensureAdmin:  userUsecases.NewEnsureAdminUseCase(userRepo, hasher, log),
		createTicket: ticketUsecases.NewCreateTicketUseCase(ticketRepo, tx, publisher, renderer, log),
		createReply:  ticketUsecases.NewCreateReplyUseCase(ticketRepo, replyRepo, tx, publisher, renderer, log),
		updateStatus: ticketUsecases.NewUpdateStatusUseCase(ticketRepo, tx, publisher, log),
		logger:       log,
	}
}

// Apply creates users first, then tickets with their replies, then walks each
// ticket along the lifecycle to its fixture status. Existing users are left
// untouched; tickets are always added.
func (s *Seeder) Apply(ctx context.Context, f *Fixtures) (*Summary, error) {
	sum := &Summary{}

	for _, u := range f.Users {
		created, err := s.applyUser(ctx, u)
		if err != nil {
			return sum, fmt.Errorf("user %s: %w", u.Email, err)
		}
		if created {
			sum.UsersCreated++
		} else {
			sum.UsersSkipped++
		}
	}

	for i, t := range f.Tickets {
		replies, err := s.applyTicket(ctx, t)
		if err != nil {
			return sum, fmt.Errorf("ticket #%d (%s): %w", i+1, t.Subject, err)
		}
		sum.Tickets++
		sum.Replies += replies
	}

	s.logger.Infow("fixtures applied",
		"users_created", sum.UsersCreated,
		"users_skipped", sum.UsersSkipped,
		"tickets", sum.Tickets,
		"replies", sum.Replies)
	return sum, nil
}

func (s *Seeder) applyUser(ctx context.Context, u UserFixture) (bool, error) {
	role := authorization.UserRole(strings.ToUpper(u.Role))
	if u.Role == "" {
		role = authorization.RoleUser
	}

	switch role {
	case authorization.RoleAdmin:
		result, err := s.ensureAdmin.Execute(ctx, userUsecases.EnsureAdminCommand{Email: u.Email, Password: u.Password})
		if err != nil {
			return false, err
		}
		if s.admin == nil {
			s.admin = &ticketUsecases.Caller{ID: result.User.ID, Role: authorization.RoleAdmin}
		}
		return result.Created || result.Promoted, nil
	case authorization.RoleUser:
		_, err := s.signup.Execute(ctx, userUsecases.SignupCommand{Email: u.Email, Password: u.Password})
		if apperrors.IsConflictError(err) {
			return false, nil
		}
		return err == nil, err
	default:
		return false, fmt.Errorf("unknown role %q", u.Role)
	}
}

func (s *Seeder) applyTicket(ctx context.Context, t TicketFixture) (int, error) {
	owner, err := s.caller(ctx, t.Owner)
	if err != nil {
		return 0, err
	}

	priority := t.Priority
	if priority == "" {
		priority = vo.PriorityMedium.String()
	}
	created, err := s.createTicket.Execute(ctx, ticketUsecases.CreateTicketCommand{
		Caller:      owner,
		Subject:     t.Subject,
		Description: t.Description,
		Priority:    strings.ToUpper(priority),
	})
	if err != nil {
		return 0, err
	}

	for _, r := range t.Replies {
		author, err := s.caller(ctx, r.Author)
		if err != nil {
			return 0, err
		}
		if _, err := s.createReply.Execute(ctx, ticketUsecases.CreateReplyCommand{
			Caller:   author,
			TicketID: created.ID,
			Message:  r.Message,
		}); err != nil {
			return 0, fmt.Errorf("reply by %s: %w", r.Author, err)
		}
	}

	if t.Status == "" {
		return len(t.Replies), nil
	}

	path, err := lifecyclePath(vo.TicketStatus(strings.ToUpper(t.Status)))
	if err != nil {
		return 0, err
	}
	if len(path) == 0 {
		return len(t.Replies), nil
	}

	admin, err := s.anyAdmin(ctx, t.Replies)
	if err != nil {
		return 0, err
	}
	for _, status := range path {
		if _, err := s.updateStatus.Execute(ctx, ticketUsecases.UpdateStatusCommand{
			Caller:   admin,
			TicketID: created.ID,
			Status:   status.String(),
		}); err != nil {
			return 0, fmt.Errorf("move to %s: %w", status, err)
		}
	}

	return len(t.Replies), nil
}

func (s *Seeder) caller(ctx context.Context, email string) (ticketUsecases.Caller, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return ticketUsecases.Caller{}, err
	}
	if u == nil {
		return ticketUsecases.Caller{}, fmt.Errorf("unknown user %q", email)
	}
	return ticketUsecases.Caller{ID: u.ID(), Role: u.Role()}, nil
}

// anyAdmin prefers an admin who replied on the ticket and otherwise falls back
// to the first admin in the seeded users.
func (s *Seeder) anyAdmin(ctx context.Context, replies []ReplyFixture) (ticketUsecases.Caller, error) {
	for _, r := range replies {
		c, err := s.caller(ctx, r.Author)
		if err == nil && c.Role.IsAdmin() {
			return c, nil
		}
	}
	if s.admin == nil {
		return ticketUsecases.Caller{}, fmt.Errorf("setting a status requires an admin in the fixture users")
	}
	return *s.admin, nil
}

// lifecyclePath lists the statuses a new ticket passes through to reach target.
func lifecyclePath(target vo.TicketStatus) ([]vo.TicketStatus, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("invalid status %q", target)
	}
	if target == vo.StatusOpen {
		return nil, nil
	}

	var path []vo.TicketStatus
	for _, status := range vo.AllStatuses()[1:] {
		path = append(path, status)
		if status == target {
			break
		}
	}
	return path, nil
}
