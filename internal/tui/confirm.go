package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y/s sí    n no"
	return overlayBoxStyle.Render(content)
}
