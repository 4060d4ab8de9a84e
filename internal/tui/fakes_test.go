package tui

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/models"
)

type fakeAuth struct {
	session   models.Session
	err       error
	loggedOut bool
}

func (f *fakeAuth) RestoreSession(ctx context.Context) (models.Session, error) {
	return f.session, f.err
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (models.Session, error) {
	if f.err != nil {
		return models.Session{}, f.err
	}
	f.session = models.Session{User: models.User{ID: "u1", Username: username, Role: models.RoleUser}, Token: "token-" + password}
	return f.session, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.loggedOut = true
	return nil
}

type fakeKeys struct {
	keys    []models.Key
	err     error
	calls   []string
	suggest string
}

func (f *fakeKeys) record(call string) { f.calls = append(f.calls, call) }

func (f *fakeKeys) ListKeys(ctx context.Context, all bool) ([]models.Key, error) {
	f.record("list")
	return f.keys, f.err
}

func (f *fakeKeys) GetKey(ctx context.Context, keyID string) (models.Key, error) {
	return models.Key{ID: keyID}, f.err
}

func (f *fakeKeys) KeyHistory(ctx context.Context, keyID string) ([]models.CheckoutRecord, error) {
	f.record("history " + keyID)
	return nil, f.err
}

func (f *fakeKeys) SuggestCode(ctx context.Context) (string, error) {
	return f.suggest, f.err
}

func (f *fakeKeys) CreateKey(ctx context.Context, code, address string, color models.KeyColor) (models.Key, error) {
	f.record("create " + code + " " + address + " " + string(color))
	return models.Key{ID: "new", VisibleCode: code}, f.err
}

func (f *fakeKeys) RenameKey(ctx context.Context, keyID, code string) (models.Key, error) {
	f.record("rename " + keyID + " " + code)
	return models.Key{ID: keyID, VisibleCode: code}, f.err
}

func (f *fakeKeys) CheckoutSelf(ctx context.Context, keyID string) (models.Key, error) {
	f.record("checkout-self " + keyID)
	return models.Key{ID: keyID, Status: models.KeyStatusCheckedOut}, f.err
}

func (f *fakeKeys) CheckoutOther(ctx context.Context, keyID, holderName, holderPhone string) (models.Key, error) {
	f.record("checkout-other " + keyID + " " + holderName + " " + holderPhone)
	return models.Key{ID: keyID, Status: models.KeyStatusCheckedOut}, f.err
}

func (f *fakeKeys) ReturnKey(ctx context.Context, keyID string) (models.Key, error) {
	f.record("return " + keyID)
	return models.Key{ID: keyID, Status: models.KeyStatusAvailable}, f.err
}

func (f *fakeKeys) DeleteKey(ctx context.Context, keyID, reason string) (models.Key, error) {
	f.record("delete " + keyID + " " + reason)
	return models.Key{ID: keyID, Status: models.KeyStatusDeleted}, f.err
}

type fakeAudit struct {
	entries  []models.AuditLogView
	overdue  []models.OverdueCheckout
	reminder models.Reminder
	exported string
	err      error
}

func (f *fakeAudit) Entries(ctx context.Context) ([]models.AuditLogView, error) {
	return f.entries, f.err
}

func (f *fakeAudit) Overdue(ctx context.Context) ([]models.OverdueCheckout, error) {
	return f.overdue, f.err
}

func (f *fakeAudit) Reminder(ctx context.Context, entryID string) (models.Reminder, error) {
	return f.reminder, f.err
}

func (f *fakeAudit) Export(ctx context.Context, dir string) (string, error) {
	f.exported = dir
	return dir + "/historial_llaves_2026-05-10.json", f.err
}

type fakeAccounts struct {
	added []models.AddAccountRequest
}

func (f *fakeAccounts) ListAccounts(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func (f *fakeAccounts) AddAccount(ctx context.Context, request models.AddAccountRequest) (models.User, error) {
	f.added = append(f.added, request)
	return models.User{ID: "new", Username: request.Username, Role: request.Role}, nil
}

type fakeServices struct {
	auth     *fakeAuth
	keys     *fakeKeys
	audit    *fakeAudit
	accounts *fakeAccounts
}

func newFakeServices() (*service.ClientServices, fakeServices) {
	f := fakeServices{
		auth:     &fakeAuth{},
		keys:     &fakeKeys{},
		audit:    &fakeAudit{},
		accounts: &fakeAccounts{},
	}
	return &service.ClientServices{
		AuthService:    f.auth,
		KeyService:     f.keys,
		AuditService:   f.audit,
		AccountService: f.accounts,
	}, f
}
