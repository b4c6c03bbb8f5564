package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gcmdr/internal/utils"
)

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()

	var mainContent string
	switch m.mode {
	case modeConfirmDelete:
		mainContent = m.renderConfirmDelete()
	case modeRename:
		mainContent = m.renderInputDialog("Rename", fmt.Sprintf("Rename '%s' to:", m.renameFrom.name))
	case modeMkdir:
		mainContent = m.renderInputDialog("Create Directory", "Enter directory name:")
	case modeNewFile:
		mainContent = m.renderInputDialog("Create File", "Enter file name:")
	case modeSortMenu:
		mainContent = m.renderSortMenu()
	case modeThemePicker:
		mainContent = m.renderThemePicker()
	case modeViewer:
		mainContent = m.renderViewer()
	case modeDrives:
		mainContent = m.renderDrives()
	case modeHelp:
		mainContent = m.renderHelp()
	case modeErrorDialog:
		mainContent = m.renderErrorDialog()
	default:
		leftPane := m.renderPane(paneLeft, m.width/2)
		rightPane := m.renderPane(paneRight, m.width-m.width/2)
		mainContent = lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
	}

	statusBar := m.renderStatusBar()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		mainContent,
		statusBar,
		footer,
	)
}

func (m *model) renderHeader() string {
	scheme := m.themes.Scheme()
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(scheme.HeaderFg).
		Background(scheme.HeaderBg).
		Padding(0, 1).
		Width(m.width)

	title := fmt.Sprintf("gcmdr - %s", m.activePane().dir)
	if p := m.activePane(); p.filter != "" {
		title += fmt.Sprintf("  [filter: %s]", p.filter)
	}
	return headerStyle.Render(title)
}

// renderPane renders one directory view, width columns wide
func (m *model) renderPane(side, width int) string {
	scheme := m.themes.Scheme()
	p := &m.panes[side]
	isActive := side == m.active

	borderColor := scheme.PanelBorder
	if isActive {
		borderColor = scheme.CursorBg
	}
	paneStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Background(scheme.PanelBg).
		Width(width - 2).
		Height(m.getContentHeight() + 1)

	innerWidth := width - 4
	if innerWidth < 20 {
		innerWidth = 20
	}

	// Pane header: directory plus selection count
	headerText := p.dir
	if n := len(p.selected); n > 0 {
		headerText = fmt.Sprintf("%s [%d selected]", p.dir, n)
	}
	if len(headerText) > innerWidth {
		headerText = "..." + headerText[len(headerText)-innerWidth+3:]
	}
	paneHeader := lipgloss.NewStyle().
		Bold(true).
		Foreground(scheme.HeaderFg).
		Background(scheme.HeaderBg).
		Width(innerWidth).
		Render(headerText)

	rows := []string{paneHeader}
	visible := m.getContentHeight()
	end := p.scrollOffset + visible
	if end > len(p.visible) {
		end = len(p.visible)
	}

	for i := p.scrollOffset; i < end; i++ {
		rows = append(rows, m.renderRow(p, i, isActive, innerWidth))
	}

	return paneStyle.Render(strings.Join(rows, "\n"))
}

// renderRow formats one entry: marker, name, size, date
func (m *model) renderRow(p *pane, i int, isActive bool, width int) string {
	scheme := m.themes.Scheme()
	item := p.visible[i]

	marker := " "
	if p.selected[item.path] {
		marker = ">"
	}

	sizeStr := "<DIR>"
	if !item.isDir {
		sizeStr = utils.FormatFileSize(item.size)
	}
	dateStr := utils.FormatDate(item.modTime)

	nameWidth := width - 32
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := item.name
	if len(name) > nameWidth {
		name = name[:nameWidth-3] + "..."
	}

	line := fmt.Sprintf("%s %-*s %10s %16s", marker, nameWidth, name, sizeStr, dateStr)
	if len(line) > width {
		line = line[:width]
	}

	// Cursor row wins over type coloring
	if isActive && i == p.cursor {
		return lipgloss.NewStyle().
			Background(scheme.CursorBg).
			Foreground(scheme.CursorFg).
			Bold(true).
			Width(width).
			Render(line)
	}

	style := lipgloss.NewStyle().Background(scheme.PanelBg).Width(width)
	switch utils.Classify(item.name, item.isDir) {
	case utils.ClassDirectory:
		style = style.Foreground(scheme.DirectoryFg).Bold(true)
	case utils.ClassExecutable:
		style = style.Foreground(scheme.ExecutableFg)
	case utils.ClassArchive:
		style = style.Foreground(scheme.ArchiveFg)
	default:
		style = style.Foreground(scheme.PanelFg)
	}
	if p.selected[item.path] {
		style = style.Background(scheme.SelectedBg).Foreground(scheme.SelectedFg).Bold(true)
	}
	return style.Render(line)
}

// dialogStyle is the shared frame for modal dialogs
func (m *model) dialogStyle() lipgloss.Style {
	scheme := m.themes.Scheme()
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(scheme.PanelBorder).
		Background(scheme.PanelBg).
		Foreground(scheme.PanelFg).
		Padding(1, 2).
		Width(60)
}

func (m *model) centered(content string) string {
	return lipgloss.Place(m.width, m.getContentHeight()+3, lipgloss.Center, lipgloss.Center, content)
}

func (m *model) renderConfirmDelete() string {
	batch := m.pendingDel
	if batch == nil || batch.index >= len(batch.items) {
		return ""
	}
	item := batch.items[batch.index]

	itemType := "file"
	if item.isDir {
		itemType = "directory"
	}

	title := "Confirm Delete"
	if len(batch.items) > 1 {
		title = fmt.Sprintf("Confirm Delete (%d/%d)", batch.index+1, len(batch.items))
	}

	warnStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	var b strings.Builder
	b.WriteString(warnStyle.Render(title) + "\n\n")
	b.WriteString(fmt.Sprintf("Delete %s: %s?\n\n", itemType, item.name))
	if len(batch.items) > 1 {
		b.WriteString("y: yes   n: skip   a: yes to all   esc: stop")
	} else {
		b.WriteString("y: yes   n/esc: no")
	}

	return m.centered(m.dialogStyle().Render(b.String()))
}

func (m *model) renderInputDialog(title, prompt string) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title) + "\n\n")
	b.WriteString(prompt + "\n")
	b.WriteString(m.textInput.View() + "\n\n")
	b.WriteString("enter: ok   esc: cancel")
	return m.centered(m.dialogStyle().Render(b.String()))
}

func (m *model) renderSortMenu() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Sort Files By") + "\n\n")
	for i, opt := range sortOptions {
		marker := "  "
		if opt.order == m.sortOrder {
			marker = "* "
		}
		line := marker + opt.label
		if i == m.sortCursor {
			scheme := m.themes.Scheme()
			line = lipgloss.NewStyle().
				Background(scheme.CursorBg).
				Foreground(scheme.CursorFg).
				Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\nenter: select   esc: cancel")
	return m.centered(m.dialogStyle().Render(b.String()))
}

func (m *model) renderThemePicker() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Switch Theme") + "\n\n")
	b.WriteString(m.textInput.View() + "\n\n")
	for i, name := range m.themeMatches {
		marker := "  "
		if name == m.themes.Current() {
			marker = "* "
		}
		line := marker + name
		if i == m.themeCursor {
			scheme := m.themes.Scheme()
			line = lipgloss.NewStyle().
				Background(scheme.CursorBg).
				Foreground(scheme.CursorFg).
				Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\nenter: select   esc: cancel")
	return m.centered(m.dialogStyle().Render(b.String()))
}

func (m *model) renderViewer() string {
	scheme := m.themes.Scheme()
	height := m.getContentHeight() + 1

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(scheme.HeaderFg).
		Background(scheme.HeaderBg).
		Width(m.width - 2).
		Padding(0, 1)

	end := utils.Min(m.viewerScroll+height-2, len(m.viewerLines))
	lines := make([]string, 0, height)
	lines = append(lines, titleStyle.Render(fmt.Sprintf("File: %s  (%d/%d)", m.viewerTitle, m.viewerScroll+1, len(m.viewerLines))))
	for _, line := range m.viewerLines[m.viewerScroll:end] {
		if len(line) > m.width-4 {
			line = line[:m.width-4]
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(scheme.PanelBorder).
		Width(m.width - 2).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

func (m *model) renderDrives() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Drives") + "\n\n")
	if len(m.driveList) == 0 {
		b.WriteString("No drives found\n")
	}
	for i, drive := range m.driveList {
		sizeInfo := ""
		if drive.Total > 0 {
			sizeInfo = fmt.Sprintf("%s free / %s",
				utils.FormatFileSize(int64(drive.Free)),
				utils.FormatFileSize(int64(drive.Total)))
		}
		line := fmt.Sprintf("%-12s %-24s %s", drive.Label, drive.Path, sizeInfo)
		if i == m.driveCursor {
			scheme := m.themes.Scheme()
			line = lipgloss.NewStyle().
				Background(scheme.CursorBg).
				Foreground(scheme.CursorFg).
				Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\nenter: open in active pane   esc: cancel")
	return m.centered(m.dialogStyle().Width(70).Render(b.String()))
}

func (m *model) renderHelp() string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("gcmdr - Keys"),
		"",
		fmt.Sprintf("  %s      Switch active pane", keyStyle.Render("tab")),
		fmt.Sprintf("  %s  Navigate", keyStyle.Render("arrows/jk")),
		fmt.Sprintf("  %s    Enter directory / open file", keyStyle.Render("enter")),
		fmt.Sprintf("  %s  Parent directory", keyStyle.Render("backspc")),
		fmt.Sprintf("  %s    Toggle selection", keyStyle.Render("space")),
		fmt.Sprintf("  %s        Filter entries in pane", keyStyle.Render("/")),
		"",
		fmt.Sprintf("  %s     View file", keyStyle.Render("f3/v")),
		fmt.Sprintf("  %s     Edit file", keyStyle.Render("f4/e")),
		fmt.Sprintf("  %s     Copy to other pane", keyStyle.Render("f5/c")),
		fmt.Sprintf("  %s     Move to other pane", keyStyle.Render("f6/m")),
		fmt.Sprintf("  %s     Make directory", keyStyle.Render("f7/n")),
		fmt.Sprintf("  %s        New empty file", keyStyle.Render("N")),
		fmt.Sprintf("  %s     Delete", keyStyle.Render("f8/d")),
		fmt.Sprintf("  %s        Rename", keyStyle.Render("r")),
		fmt.Sprintf("  %s        Undo last operation", keyStyle.Render("u")),
		"",
		fmt.Sprintf("  %s        Sort order", keyStyle.Render("s")),
		fmt.Sprintf("  %s     Next theme", keyStyle.Render("f2/t")),
		fmt.Sprintf("  %s        Pick theme", keyStyle.Render("T")),
		fmt.Sprintf("  %s        Toggle hidden files", keyStyle.Render(".")),
		fmt.Sprintf("  %s   Drives view", keyStyle.Render("ctrl+d")),
		fmt.Sprintf("  %s        Copy path to clipboard", keyStyle.Render("y")),
		"",
		fmt.Sprintf("  %s   Quit", keyStyle.Render("q/f10")),
	}

	start := m.helpScroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	end := utils.Min(start+m.getContentHeight()+1, len(lines))

	return m.centered(m.dialogStyle().Render(strings.Join(lines[start:end], "\n")))
}

func (m *model) renderErrorDialog() string {
	errStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	var b strings.Builder
	b.WriteString(errStyle.Render(m.errorTitle) + "\n\n")
	b.WriteString(m.errorDetails + "\n\n")
	b.WriteString("press any key to continue")
	return m.centered(m.dialogStyle().Render(b.String()))
}

func (m *model) renderStatusBar() string {
	scheme := m.themes.Scheme()
	style := lipgloss.NewStyle().
		Foreground(scheme.FooterFg).
		Background(scheme.FooterBg).
		Padding(0, 1).
		Width(m.width)

	if m.statusMsg != "" {
		return style.Render(m.statusMsg)
	}
	// Idle: preview what undo would do next
	return style.Render(m.undoMgr.LastActionDescription())
}

func (m *model) renderFooter() string {
	scheme := m.themes.Scheme()
	style := lipgloss.NewStyle().
		Foreground(scheme.FooterFg).
		Background(scheme.FooterBg).
		Padding(0, 1).
		Width(m.width)

	return style.Render("F1 Help  F2 Theme  F3 View  F4 Edit  F5 Copy  F6 Move  F7 MkDir  F8 Delete  F10 Quit")
}
