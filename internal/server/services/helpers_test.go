package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/shivtchandra/CivicWatch/internal/dbx"
	"github.com/shivtchandra/CivicWatch/internal/server/config"
	"github.com/shivtchandra/CivicWatch/internal/server/models"
	conversationsrepo "github.com/shivtchandra/CivicWatch/internal/server/repositories/conversations"
	reportsrepo "github.com/shivtchandra/CivicWatch/internal/server/repositories/reports"
	usersrepo "github.com/shivtchandra/CivicWatch/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
}

// --- fakes ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	updateOut *models.User
	updateErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) UpdateProfile(ctx context.Context, id, name, city, phone string) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

type fakeReportsRepo struct {
	createOut *models.Report
	createErr error

	listOut    []*models.Report
	listErr    error
	listFilter reportsrepo.ListFilter

	byIDOut *models.Report
	byIDErr error

	updateOut *models.Report
	updateErr error

	deleteErr    error
	deleteCalled bool
}

func (f *fakeReportsRepo) Create(ctx context.Context, r *models.Report) (*models.Report, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return r, nil
}

func (f *fakeReportsRepo) List(ctx context.Context, filter reportsrepo.ListFilter) ([]*models.Report, error) {
	f.listFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeReportsRepo) GetByID(ctx context.Context, id string) (*models.Report, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeReportsRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Report, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeReportsRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalled = true
	return f.deleteErr
}

type fakeConversationsRepo struct {
	findOrCreateOut *models.Conversation
	findOrCreateErr error

	byIDOut *models.Conversation
	byIDErr error

	listOut []*models.Conversation
	listErr error

	messagesOut []*models.Message
	messagesErr error

	createMsgOut *models.Message
	createMsgErr error
	lastMsg      *models.Message

	markReadErr    error
	markReadCalled bool
}

func (f *fakeConversationsRepo) FindOrCreate(ctx context.Context, a, b string) (*models.Conversation, error) {
	if f.findOrCreateErr != nil {
		return nil, f.findOrCreateErr
	}
	return f.findOrCreateOut, nil
}

func (f *fakeConversationsRepo) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeConversationsRepo) ListForUser(ctx context.Context, userID string) ([]*models.Conversation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeConversationsRepo) ListMessages(ctx context.Context, conversationID string) ([]*models.Message, error) {
	if f.messagesErr != nil {
		return nil, f.messagesErr
	}
	return f.messagesOut, nil
}

func (f *fakeConversationsRepo) CreateMessage(ctx context.Context, msg *models.Message) (*models.Message, error) {
	f.lastMsg = msg
	if f.createMsgErr != nil {
		return nil, f.createMsgErr
	}
	if f.createMsgOut != nil {
		return f.createMsgOut, nil
	}
	return msg, nil
}

func (f *fakeConversationsRepo) MarkRead(ctx context.Context, conversationID, userID string) error {
	f.markReadCalled = true
	return f.markReadErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeReportsRepo
	c *fakeConversationsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Reports(db dbx.DBTX) reportsrepo.Repository  { return m.r }
func (m *fakeRepoManager) Conversations(db dbx.DBTX) conversationsrepo.Repository {
	return m.c
}
