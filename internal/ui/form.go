package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/christoffel/internal/flow"
	"github.com/five82/christoffel/internal/menu"
)

type formField int

const (
	fieldName formField = iota
	fieldDescription
	fieldCategory
	fieldPrice
	fieldImage
	fieldIngredients
	fieldCount
)

const categoryPlaceholder = "Please select a category"

var fieldLabels = [fieldCount]string{
	fieldName:        "Item Name",
	fieldDescription: "Description",
	fieldCategory:    "Category",
	fieldPrice:       "Price",
	fieldImage:       "Image URL",
	fieldIngredients: "Ingredients",
}

// formState holds the add form's inputs. The category slot of inputs is
// unused; the category is a selector indexed into menu.Categories, with 0
// meaning unset.
type formState struct {
	inputs   [fieldCount]textinput.Model
	category int
	focus    formField
}

func newFormState() formState {
	var f formState
	placeholders := [fieldCount]string{
		fieldName:        "Item Name",
		fieldDescription: "Description",
		fieldPrice:       "Price (e.g. 100)",
		fieldImage:       "Image URL",
		fieldIngredients: "Ingredients (comma separated)",
	}
	for i := range f.inputs {
		if formField(i) == fieldCategory {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.Width = 40
		f.inputs[i] = ti
	}
	f.inputs[fieldPrice].CharLimit = 32
	f.setFocus(fieldName)
	return f
}

// reset clears every field and focuses the name input.
func (f *formState) reset() {
	for i := range f.inputs {
		if formField(i) != fieldCategory {
			f.inputs[i].SetValue("")
		}
	}
	f.category = 0
	f.setFocus(fieldName)
}

func (f *formState) resize(width int) {
	w := clamp(width-formLabelWidth-10, 10, 60)
	for i := range f.inputs {
		f.inputs[i].Width = w
	}
}

func (f *formState) setFocus(field formField) {
	for i := range f.inputs {
		if formField(i) == fieldCategory {
			continue
		}
		if formField(i) == field {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	f.focus = field
}

func (f *formState) next() {
	f.setFocus((f.focus + 1) % fieldCount)
}

func (f *formState) prev() {
	f.setFocus((f.focus - 1 + fieldCount) % fieldCount)
}

func (f *formState) cycleCategory(delta int) {
	n := len(menu.Categories()) + 1
	f.category = (f.category + delta + n) % n
}

func (f formState) categoryValue() string {
	if f.category <= 0 {
		return ""
	}
	cats := menu.Categories()
	if f.category > len(cats) {
		return ""
	}
	return cats[f.category-1]
}

// entry returns the raw field text exactly as typed.
func (f formState) entry() menu.Entry {
	return menu.Entry{
		Name:        f.inputs[fieldName].Value(),
		Description: f.inputs[fieldDescription].Value(),
		Category:    f.categoryValue(),
		Price:       f.inputs[fieldPrice].Value(),
		Image:       f.inputs[fieldImage].Value(),
		Ingredients: f.inputs[fieldIngredients].Value(),
	}
}

// openAddForm moves to the form with a blank entry.
func (m *Model) openAddForm() {
	if _, err := m.flow.OpenAddForm(); err != nil {
		m.status = err.Error()
		return
	}
	m.form.reset()
	m.status = ""
}

// handleFormKey processes keyboard input on the add form.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		if err := m.flow.Cancel(); err != nil {
			m.logger.Debugw("cancel add form", "error", err)
		}
		m.updateListViewport()
		return m, nil

	case key.Matches(msg, m.keys.Save):
		m.submitForm()
		return m, nil

	case msg.String() == "enter":
		if m.form.focus == fieldCount-1 {
			m.submitForm()
		} else {
			m.form.next()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.form.next()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.form.prev()
		return m, nil
	}

	if m.form.focus == fieldCategory {
		switch {
		case key.Matches(msg, m.keys.PrevOpt):
			m.form.cycleCategory(-1)
		case key.Matches(msg, m.keys.NextOpt):
			m.form.cycleCategory(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// submitForm hands the entry to the flow. Validation failures open a
// notice and leave every field as typed.
func (m *Model) submitForm() {
	d, err := m.flow.Submit(m.form.entry())
	if err != nil {
		var notice menu.Notice
		if errors.As(err, &notice) {
			m.modal = noticeModal{title: notice.Title(), message: notice.Message()}
			return
		}
		m.status = err.Error()
		return
	}
	m.selected = len(m.flow.Items()) - 1
	m.status = fmt.Sprintf("Added %s", d.Name)
	m.form.reset()
	m.updateListViewport()
}

// renderForm renders the add form screen.
func (m Model) renderForm() string {
	contentHeight := m.height - 2
	innerWidth := maxInt(m.width-2, 10)
	bgColor := m.theme.FocusBg
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	var lines []string
	add := func(s string) { lines = append(lines, bg.FillLine(s, innerWidth)) }

	if r, ok := m.flow.Route().(flow.AddFormRoute); ok {
		add(bg.Space() + bg.Render(fmt.Sprintf("The menu currently has %d items.", len(r.Items)), styles.MutedText))
	}
	add("")

	for i := formField(0); i < fieldCount; i++ {
		label := padRight(fieldLabels[i], formLabelWidth)
		labelStyle := styles.MutedText
		if i == m.form.focus {
			labelStyle = styles.AccentText.Bold(true)
		}
		marker := bg.Spaces(2)
		if i == m.form.focus {
			marker = bg.Render("▸", styles.AccentText) + bg.Space()
		}

		var value string
		if i == fieldCategory {
			value = m.renderCategory(styles, bg)
		} else {
			value = m.form.inputs[i].View()
		}
		add(marker + bg.Render(label, labelStyle) + bg.Space() + value)
		add("")
	}

	buttons := m.theme.Styles().Button.Render("Save Item") + bg.Spaces(2) +
		bg.Render("ctrl+s", styles.FaintText) + bg.Spaces(4) +
		lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Text)).
			Background(lipgloss.Color(m.theme.SurfaceAlt)).
			Padding(0, 2).
			Render("Back") + bg.Spaces(2) +
		bg.Render("esc", styles.FaintText)
	add(bg.Spaces(2) + buttons)

	if m.status != "" {
		add("")
		add(bg.Spaces(2) + bg.Render(m.status, styles.DangerText))
	}

	return m.renderTitledBox("Add New Item", strings.Join(lines, "\n"), m.width, contentHeight, true)
}

func (m Model) renderCategory(styles Styles, bg BgStyle) string {
	value := m.form.categoryValue()
	text := value
	style := styles.Text
	if value == "" {
		text = categoryPlaceholder
		style = styles.FaintText
	}
	if m.form.focus != fieldCategory {
		return bg.Render(text, style)
	}
	return bg.Render("‹", styles.AccentText) + bg.Space() +
		bg.Render(text, style) + bg.Space() +
		bg.Render("›", styles.AccentText)
}
