package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/pkg/contact"
)

// formFields lists the inputs in focus order.
var formFields = []contact.Field{
	contact.FieldName,
	contact.FieldEmail,
	contact.FieldPhone,
	contact.FieldMessage,
}

var fieldLabels = map[contact.Field]string{
	contact.FieldName:    "Name *",
	contact.FieldEmail:   "Email *",
	contact.FieldPhone:   "Phone *",
	contact.FieldMessage: "Message",
}

var fieldPlaceholders = map[contact.Field]string{
	contact.FieldName:    "Enter full name",
	contact.FieldEmail:   "Enter email address",
	contact.FieldPhone:   "Enter phone number",
	contact.FieldMessage: "Enter a message (optional)",
}

// formState holds the new-contact form: one input per field, the errors
// shown after a submit attempt and whether a create is in flight.
type formState struct {
	inputs     []textinput.Model
	errors     map[contact.Field]string
	submitting bool
}

func newFormState() formState {
	inputs := make([]textinput.Model, len(formFields))
	for i, f := range formFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fieldPlaceholders[f]
		ti.CharLimit = 256
		inputs[i] = ti
	}
	return formState{
		inputs: inputs,
		errors: make(map[contact.Field]string),
	}
}

// input returns the current field values.
func (fs formState) input() contact.Input {
	return contact.Input{
		Name:    fs.inputs[0].Value(),
		Email:   fs.inputs[1].Value(),
		Phone:   fs.inputs[2].Value(),
		Message: fs.inputs[3].Value(),
	}
}

// canSubmit reports whether the submit action is enabled: every required
// field has text, no error is shown and no create is running.
func (fs formState) canSubmit() bool {
	in := fs.input()
	return strings.TrimSpace(in.Name) != "" &&
		strings.TrimSpace(in.Email) != "" &&
		strings.TrimSpace(in.Phone) != "" &&
		len(fs.errors) == 0 &&
		!fs.submitting
}

// validate replaces the shown errors with the current field errors and
// reports whether the input is valid.
func (fs *formState) validate() bool {
	fs.errors = make(map[contact.Field]string)
	for field, verr := range fs.input().FieldErrors() {
		fs.errors[field] = verr.Reason
	}
	return len(fs.errors) == 0
}

// focus moves the cursor to input i and blurs the rest. An index outside
// the inputs blurs them all.
func (fs *formState) focus(i int) tea.Cmd {
	var cmd tea.Cmd
	for j := range fs.inputs {
		if j == i {
			cmd = fs.inputs[j].Focus()
		} else {
			fs.inputs[j].Blur()
		}
	}
	return cmd
}

// update forwards msg to input i. A change to the value clears that
// field's error.
func (fs *formState) update(i int, msg tea.Msg) tea.Cmd {
	before := fs.inputs[i].Value()
	var cmd tea.Cmd
	fs.inputs[i], cmd = fs.inputs[i].Update(msg)
	if fs.inputs[i].Value() != before {
		delete(fs.errors, formFields[i])
	}
	return cmd
}

// reset empties every field and error.
func (fs *formState) reset() {
	for i := range fs.inputs {
		fs.inputs[i].Reset()
	}
	fs.errors = make(map[contact.Field]string)
}

// View renders the form with inputs sized to width.
func (fs formState) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add New Contact"))
	b.WriteString("\n")

	for i, f := range formFields {
		input := fs.inputs[i]
		if width > 4 {
			input.Width = width - 4
		}
		fmt.Fprintf(&b, "\n%s\n> %s", labelStyle.Render(fieldLabels[f]), input.View())
		if msg, ok := fs.errors[f]; ok {
			fmt.Fprintf(&b, "\n%s", errorStyle.Render(msg))
		}
	}

	b.WriteString("\n\n")
	switch {
	case fs.submitting:
		b.WriteString(disabledButtonStyle.Render("Adding..."))
	case fs.canSubmit():
		b.WriteString(buttonStyle.Render("Add Contact"))
	default:
		b.WriteString(disabledButtonStyle.Render("Add Contact"))
	}
	return b.String()
}
