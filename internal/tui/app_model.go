package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/models"
)

type screen int

const (
	screenLogin screen = iota
	screenKeys
	screenDetail
	screenCheckout
	screenKeyForm
	screenDelete
	screenAudit
	screenAccounts
	screenAccountForm
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	threshold time.Duration
	exportDir string
	now       func() time.Time
	copy      func(string) error

	currentScreen screen
	session       models.Session

	login       loginModel
	list        listModel
	detail      detailModel
	checkout    checkoutFormModel
	keyForm     keyFormModel
	deleteForm  deleteFormModel
	audit       auditModel
	accounts    accountsModel
	accountForm accountFormModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingReturn string
	showBuildInfo bool

	err error
}

func newAppModel(ctx context.Context, services *service.ClientServices, opts Options, session *models.Session) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     opts.BuildInfo,
		threshold:     opts.OverdueThreshold,
		exportDir:     opts.ExportDir,
		now:           time.Now,
		copy:          clipboard.WriteAll,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		list:          newListModel(),
	}
	if m.threshold <= 0 {
		m.threshold = service.DefaultOverdueThreshold
	}
	if session != nil && session.Token != "" {
		m.session = *session
		m.currentScreen = screenKeys
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenKeys {
		return tea.Batch(m.list.spinner.Tick, m.cmdLoadKeys())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case loggedInMsg:
		m.login.form.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.session = msg.session
		m.login = newLoginModel()
		m.list = newListModel()
		m.currentScreen = screenKeys
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadKeys())
	case loggedOutMsg:
		m.session = models.Session{}
		m.currentScreen = screenLogin
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil
	case keysLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.list.setItems(msg.keys)
		return m, nil
	case historyLoadedMsg:
		if msg.keyID != m.detail.key.ID {
			return m, nil
		}
		m.detail.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.detail.history = msg.history
		return m, nil
	case suggestedCodeMsg:
		if msg.err == nil && m.currentScreen == screenKeyForm && !m.keyForm.renaming && m.keyForm.form.value(0) == "" {
			m.keyForm.form.inputs[0].SetValue(msg.code)
		}
		return m, nil
	case keySavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.list.status = msg.status
		if m.currentScreen == screenDetail && m.detail.key.ID == msg.key.ID {
			m.detail.key = msg.key
			return m, tea.Batch(m.cmdLoadKeys(), m.cmdLoadHistory(msg.key.ID), cmdClearStatus())
		}
		m.currentScreen = screenKeys
		return m, tea.Batch(m.cmdLoadKeys(), cmdClearStatus())
	case auditLoadedMsg:
		m.audit.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.audit.set(msg.entries, msg.overdue)
		return m, nil
	case exportedMsg:
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.audit.status = "Registro exportado a " + msg.path
		return m, cmdClearStatus()
	case accountsLoadedMsg:
		m.accounts.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.accounts.items = msg.accounts
		return m, nil
	case accountSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.currentScreen = screenAccounts
		m.accounts.loading = true
		return m, m.cmdLoadAccounts()
	case failedMsg:
		return m.failed(msg.err)
	case refreshMsg:
		return m, m.cmdRefresh()
	case copiedMsg:
		m.audit.status = "Link de recordatorio copiado"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		m.audit.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenKeys:
		return m.updateKeys(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenCheckout:
		return m.updateCheckout(msg)
	case screenKeyForm:
		return m.updateKeyForm(msg)
	case screenDelete:
		return m.updateDelete(msg)
	case screenAudit:
		return m.updateAudit(msg)
	case screenAccounts:
		return m.updateAccounts(msg)
	case screenAccountForm:
		return m.updateAccountForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	now := m.now()

	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenKeys:
		body = m.list.View(m.session, now, m.threshold)
	case screenDetail:
		body = m.detail.View(now)
	case screenCheckout:
		body = m.checkout.View(m.session.User.Username)
	case screenKeyForm:
		body = m.keyForm.View()
	case screenDelete:
		body = m.deleteForm.View()
	case screenAudit:
		body = m.audit.View()
	case screenAccounts:
		body = m.accounts.View()
	case screenAccountForm:
		body = m.accountForm.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// failed shows err. A rejected session sends the operator back to login.
func (m appModel) failed(err error) (tea.Model, tea.Cmd) {
	m.showErrorf(humanizeError(err))
	if isSessionError(err) {
		m.session = models.Session{}
		m.currentScreen = screenLogin
	}
	return m, nil
}

func (m *appModel) setSubmitting(v bool) {
	m.login.form.submitting = v
	m.checkout.form.submitting = v
	m.keyForm.form.submitting = v
	m.deleteForm.form.submitting = v
	m.accountForm.form.submitting = v
}

func (m appModel) isAdmin() bool {
	return m.session.User.IsAdmin()
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		keyID := m.pendingReturn
		m.pendingReturn = ""
		if keyID == "" {
			return m, nil
		}
		return m, m.cmdReturn(keyID)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingReturn = ""
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.err = ErrUserQuit
			return m, tea.Quit
		case keyMsg.String() == "f1":
			m.showBuildInfo = true
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.form = m.login.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.form = m.login.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.form.submitting {
				return m, nil
			}
			username, password := m.login.form.value(0), m.login.form.inputs[1].Value()
			if username == "" || password == "" {
				m.showErrorf("Usuario y contraseña son obligatorios")
				return m, nil
			}
			m.login.form.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.login.form, cmd = m.login.form.update(msg)
	return m, cmd
}

func (m appModel) updateKeys(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	selected, hasSelected := m.list.current()

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if hasSelected {
			return m.openDetail(selected)
		}
	case key.Matches(keyMsg, keys.checkout):
		if hasSelected {
			return m.startCheckout(selected)
		}
	case key.Matches(keyMsg, keys.giveBack):
		if hasSelected {
			return m.askReturn(selected)
		}
	case key.Matches(keyMsg, keys.refresh):
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadKeys())
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	if !m.isAdmin() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.newItem):
		m.keyForm = newCreateKeyFormModel()
		m.currentScreen = screenKeyForm
		return m, m.cmdSuggestCode()
	case key.Matches(keyMsg, keys.rename):
		if hasSelected && selected.IsActive() {
			m.keyForm = newRenameKeyFormModel(selected)
			m.currentScreen = screenKeyForm
		}
	case key.Matches(keyMsg, keys.delete):
		if hasSelected && selected.IsActive() {
			m.deleteForm = newDeleteFormModel(selected)
			m.currentScreen = screenDelete
		}
	case key.Matches(keyMsg, keys.showAll):
		m.list.showAll = !m.list.showAll
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadKeys())
	case key.Matches(keyMsg, keys.auditLog):
		m.audit = auditModel{loading: true}
		m.currentScreen = screenAudit
		return m, m.cmdLoadAudit()
	case key.Matches(keyMsg, keys.accounts):
		m.accounts = accountsModel{loading: true}
		m.currentScreen = screenAccounts
		return m, m.cmdLoadAccounts()
	}

	return m, nil
}

func (m appModel) openDetail(selected models.Key) (tea.Model, tea.Cmd) {
	m.detail = detailModel{key: selected, loading: true}
	m.currentScreen = screenDetail
	return m, m.cmdLoadHistory(selected.ID)
}

func (m appModel) startCheckout(selected models.Key) (tea.Model, tea.Cmd) {
	if selected.Status != models.KeyStatusAvailable {
		m.showErrorf("La llave no está en la inmobiliaria")
		return m, nil
	}
	m.checkout = newCheckoutFormModel(selected)
	m.currentScreen = screenCheckout
	return m, nil
}

func (m appModel) askReturn(selected models.Key) (tea.Model, tea.Cmd) {
	if selected.Status != models.KeyStatusCheckedOut {
		m.showErrorf("La llave no está retirada")
		return m, nil
	}
	holder := ""
	if selected.CheckoutLog != nil {
		holder = " (" + selected.CheckoutLog.PersonName + ")"
	}
	m.confirm.message = fmt.Sprintf("¿Confirmar la devolución de la llave %s%s?", selected.VisibleCode, holder)
	m.pendingReturn = selected.ID
	m.showConfirm = true
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenKeys
	case key.Matches(keyMsg, keys.checkout):
		return m.startCheckout(m.detail.key)
	case key.Matches(keyMsg, keys.giveBack):
		return m.askReturn(m.detail.key)
	}
	return m, nil
}

func (m appModel) updateCheckout(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		_, onMode := m.checkout.form.selector()
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenKeys
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			if m.checkout.mode() == models.CheckoutOther {
				m.checkout.form = m.checkout.form.next()
			}
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			if m.checkout.mode() == models.CheckoutOther {
				m.checkout.form = m.checkout.form.prev()
			}
			return m, nil
		case onMode && (key.Matches(keyMsg, keys.left) || key.Matches(keyMsg, keys.right)):
			m.checkout.modeIdx = cycle(m.checkout.modeIdx, 1, len(checkoutModes))
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.checkout.form.submitting {
				return m, nil
			}
			if m.checkout.mode() == models.CheckoutOther && (m.checkout.form.value(0) == "" || m.checkout.form.value(1) == "") {
				m.showErrorf("Nombre y teléfono son obligatorios")
				return m, nil
			}
			m.checkout.form.submitting = true
			return m, m.cmdCheckout(m.checkout)
		}
	}

	var cmd tea.Cmd
	m.checkout.form, cmd = m.checkout.form.update(msg)
	return m, cmd
}

func (m appModel) updateKeyForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		_, onColor := m.keyForm.form.selector()
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenKeys
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.keyForm.form = m.keyForm.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.keyForm.form = m.keyForm.form.prev()
			return m, nil
		case onColor && key.Matches(keyMsg, keys.left):
			m.keyForm.colorIdx = cycle(m.keyForm.colorIdx, -1, len(keyColors))
			return m, nil
		case onColor && key.Matches(keyMsg, keys.right):
			m.keyForm.colorIdx = cycle(m.keyForm.colorIdx, 1, len(keyColors))
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.keyForm.form.submitting {
				return m, nil
			}
			m.keyForm.form.submitting = true
			return m, m.cmdSaveKey(m.keyForm)
		}
	}

	var cmd tea.Cmd
	m.keyForm.form, cmd = m.keyForm.form.update(msg)
	return m, cmd
}

func (m appModel) updateDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenKeys
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.deleteForm.form.submitting {
				return m, nil
			}
			if m.deleteForm.form.value(0) == "" {
				m.showErrorf("El motivo es obligatorio")
				return m, nil
			}
			m.deleteForm.form.submitting = true
			return m, m.cmdDelete(m.deleteForm.key.ID, m.deleteForm.form.value(0))
		}
	}

	var cmd tea.Cmd
	m.deleteForm.form, cmd = m.deleteForm.form.update(msg)
	return m, cmd
}

func (m appModel) updateAudit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenKeys
		return m, m.cmdLoadKeys()
	case key.Matches(keyMsg, keys.up):
		if m.audit.idx > 0 {
			m.audit.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.audit.idx < len(m.audit.entries)-1 {
			m.audit.idx++
		}
	case key.Matches(keyMsg, keys.copy):
		entry, ok := m.audit.current()
		if !ok {
			return m, nil
		}
		o, flagged := m.audit.overdue[entry.ID]
		if !flagged {
			m.showErrorf("Solo los retiros vencidos tienen recordatorio")
			return m, nil
		}
		if o.Reminder != nil {
			return m, m.cmdCopy(o.Reminder.URL)
		}
		return m, m.cmdReminder(entry.ID)
	case key.Matches(keyMsg, keys.export):
		return m, m.cmdExport()
	case key.Matches(keyMsg, keys.refresh):
		m.audit.loading = true
		return m, m.cmdLoadAudit()
	}
	return m, nil
}

func (m appModel) updateAccounts(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenKeys
	case key.Matches(keyMsg, keys.newItem):
		m.accountForm = newAccountFormModel()
		m.currentScreen = screenAccountForm
	}
	return m, nil
}

func (m appModel) updateAccountForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		_, onRole := m.accountForm.form.selector()
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenAccounts
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.accountForm.form = m.accountForm.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.accountForm.form = m.accountForm.form.prev()
			return m, nil
		case onRole && (key.Matches(keyMsg, keys.left) || key.Matches(keyMsg, keys.right)):
			m.accountForm.roleIdx = cycle(m.accountForm.roleIdx, 1, len(accountRoles))
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.accountForm.form.submitting {
				return m, nil
			}
			m.accountForm.form.submitting = true
			return m, m.cmdAddAccount(m.accountForm.request())
		}
	}

	var cmd tea.Cmd
	m.accountForm.form, cmd = m.accountForm.form.update(msg)
	return m, cmd
}
