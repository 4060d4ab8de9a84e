package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/models"
)

func isSessionError(err error) bool {
	return errors.Is(err, service.ErrTokenIsExpiredOrInvalid) || errors.Is(err, service.ErrNotLoggedIn)
}

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, username, password)
		return loggedInMsg{session: session, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdLoadKeys() tea.Cmd {
	ctx := m.ctx
	svc := m.services.KeyService
	all := m.list.showAll && m.isAdmin()
	return func() tea.Msg {
		keys, err := svc.ListKeys(ctx, all)
		return keysLoadedMsg{keys: keys, err: err}
	}
}

func (m appModel) cmdLoadHistory(keyID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.KeyService
	return func() tea.Msg {
		history, err := svc.KeyHistory(ctx, keyID)
		return historyLoadedMsg{keyID: keyID, history: history, err: err}
	}
}

func (m appModel) cmdSuggestCode() tea.Cmd {
	ctx := m.ctx
	svc := m.services.KeyService
	return func() tea.Msg {
		code, err := svc.SuggestCode(ctx)
		return suggestedCodeMsg{code: code, err: err}
	}
}

func (m appModel) cmdCheckout(form checkoutFormModel) tea.Cmd {
	ctx := m.ctx
	svc := m.services.KeyService
	keyID := form.key.ID
	mode := form.mode()
	name, phone := form.form.value(0), form.form.value(1)
	return func() tea.Msg {
		var (
			key models.Key
			err error
		)
		if mode == models.CheckoutSelf {
			key, err = svc.CheckoutSelf(ctx, keyID)
		} else {
			key, err = svc.CheckoutOther(ctx, keyID, name, phone)
		}
		return keySavedMsg{key: key, status: fmt.Sprintf("Llave %s retirada", key.VisibleCode), err: err}
	}
}

func (m appModel) cmdReturn(keyID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.KeyService
	return func() tea.Msg {
		key, err := svc.ReturnKey(ctx, keyID)
		return keySavedMsg{key: key, status: fmt.Sprintf("Llave %s devuelta", key.VisibleCode), err: err}
	}
}

func (m appModel) cmdSaveKey(form keyFormModel) tea.Cmd {
	ctx := m.ctx
	svc := m.services.KeyService
	code := form.form.value(0)
	if form.renaming {
		keyID := form.keyID
		return func() tea.Msg {
			key, err := svc.RenameKey(ctx, keyID, code)
			return keySavedMsg{key: key, status: "Llave renombrada a " + code, err: err}
		}
	}

	address, color := form.form.value(1), form.color()
	return func() tea.Msg {
		key, err := svc.CreateKey(ctx, code, address, color)
		return keySavedMsg{key: key, status: fmt.Sprintf("Llave %s creada", code), err: err}
	}
}

func (m appModel) cmdDelete(keyID, reason string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.KeyService
	return func() tea.Msg {
		key, err := svc.DeleteKey(ctx, keyID, reason)
		return keySavedMsg{key: key, status: fmt.Sprintf("Llave %s eliminada", key.VisibleCode), err: err}
	}
}

func (m appModel) cmdLoadAudit() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AuditService
	return func() tea.Msg {
		entries, err := svc.Entries(ctx)
		if err != nil {
			return auditLoadedMsg{err: err}
		}
		overdue, err := svc.Overdue(ctx)
		return auditLoadedMsg{entries: entries, overdue: overdue, err: err}
	}
}

func (m appModel) cmdReminder(entryID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AuditService
	copyText := m.copy
	return func() tea.Msg {
		reminder, err := svc.Reminder(ctx, entryID)
		if err != nil {
			return failedMsg{err: err}
		}
		if err = copyText(reminder.URL); err != nil {
			return failedMsg{err: fmt.Errorf("copiar al portapapeles: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copy
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return failedMsg{err: fmt.Errorf("copiar al portapapeles: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m appModel) cmdExport() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AuditService
	dir := m.exportDir
	return func() tea.Msg {
		path, err := svc.Export(ctx, dir)
		return exportedMsg{path: path, err: err}
	}
}

func (m appModel) cmdLoadAccounts() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	return func() tea.Msg {
		accounts, err := svc.ListAccounts(ctx)
		return accountsLoadedMsg{accounts: accounts, err: err}
	}
}

func (m appModel) cmdAddAccount(request models.AddAccountRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	return func() tea.Msg {
		account, err := svc.AddAccount(ctx, request)
		return accountSavedMsg{account: account, err: err}
	}
}

// cmdRefresh re-reads what the current screen shows. Screens with a form
// open are left alone.
func (m appModel) cmdRefresh() tea.Cmd {
	switch m.currentScreen {
	case screenKeys:
		return m.cmdLoadKeys()
	case screenDetail:
		return m.cmdLoadHistory(m.detail.key.ID)
	case screenAudit:
		return m.cmdLoadAudit()
	default:
		return nil
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
