package ui

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user"
)

type authMode int

const (
	authLogin authMode = iota
	authRegister
)

// field indexes of the register form; login uses fieldEmail/fieldPassword.
const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldConfirm
	fieldRole
	fieldCount
)

// authForm is the login/registration modal. It only collects input;
// submission happens in the parent model.
type authForm struct {
	mode    authMode
	inputs  [fieldCount - 1]textinput.Model // all text fields, role is a selector
	roles   []user.Role
	roleIdx int
	focus   int
	errMsg  string            // auth failure, stays until the modal closes or a retry succeeds
	fields  map[string]string // inline validation messages keyed by field
	styles  Styles
}

func newAuthForm(styles Styles) authForm {
	f := authForm{styles: styles, fields: map[string]string{}}

	mk := func(placeholder string, secret bool) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 100
		ti.Width = 32
		if secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		return ti
	}

	f.inputs[fieldName] = mk("Ваше имя", false)
	f.inputs[fieldEmail] = mk("Ваш email", false)
	f.inputs[fieldPassword] = mk("Пароль (мин. 6 символов)", true)
	f.inputs[fieldConfirm] = mk("Повторите пароль", true)
	return f
}

// open resets the form for the given mode and focuses the first field.
func (f *authForm) open(mode authMode, roles []user.Role) {
	f.mode = mode
	f.roles = roles
	f.roleIdx = 0
	f.errMsg = ""
	f.fields = map[string]string{}
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = f.firstField()
	f.inputs[f.focus].Focus()
}

func (f *authForm) firstField() int {
	if f.mode == authLogin {
		return fieldEmail
	}
	return fieldName
}

// visible returns the focusable field indexes for the current mode.
func (f *authForm) visible() []int {
	if f.mode == authLogin {
		return []int{fieldEmail, fieldPassword}
	}
	return []int{fieldName, fieldEmail, fieldPassword, fieldConfirm, fieldRole}
}

func (f *authForm) cycleFocus(dir int) {
	vis := f.visible()
	cur := 0
	for i, idx := range vis {
		if idx == f.focus {
			cur = i
			break
		}
	}
	next := vis[(cur+dir+len(vis))%len(vis)]

	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
	f.focus = next
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Focus()
	}
}

// update handles one key press. submit is true when the user confirmed
// the form.
func (f *authForm) update(msg tea.KeyMsg) (cmd tea.Cmd, submit bool) {
	switch msg.String() {
	case "tab", "down":
		f.cycleFocus(1)
		return nil, false
	case "shift+tab", "up":
		f.cycleFocus(-1)
		return nil, false
	case "enter":
		return nil, true
	case "left", "right":
		if f.focus == fieldRole && len(f.roles) > 0 {
			dir := 1
			if msg.String() == "left" {
				dir = -1
			}
			f.roleIdx = (f.roleIdx + dir + len(f.roles)) % len(f.roles)
			return nil, false
		}
	}

	if f.focus < len(f.inputs) {
		var c tea.Cmd
		f.inputs[f.focus], c = f.inputs[f.focus].Update(msg)
		return c, false
	}
	return nil, false
}

// loginRequest builds the DTO from the form fields.
func (f *authForm) loginRequest() user.LoginRequest {
	return user.LoginRequest{
		Email:    strings.TrimSpace(f.inputs[fieldEmail].Value()),
		Password: f.inputs[fieldPassword].Value(),
	}
}

// registerRequest builds the DTO from the form fields.
func (f *authForm) registerRequest() user.RegisterRequest {
	req := user.RegisterRequest{
		Name:            strings.TrimSpace(f.inputs[fieldName].Value()),
		Email:           strings.TrimSpace(f.inputs[fieldEmail].Value()),
		Password:        f.inputs[fieldPassword].Value(),
		PasswordConfirm: f.inputs[fieldConfirm].Value(),
	}
	if len(f.roles) > 0 {
		req.RoleID = f.roles[f.roleIdx].ID
	}
	return req
}

// setError records a failure: validation errors become inline field
// messages, anything else a dismissible form-level message.
func (f *authForm) setError(err error) {
	f.fields = map[string]string{}
	f.errMsg = ""

	var ve validation.Errors
	if errors.As(err, &ve) {
		for field, ferr := range ve {
			f.fields[field] = ferr.Error()
		}
		return
	}

	switch err {
	case user.ErrInvalidCredentials:
		f.errMsg = "Неверный email или пароль"
	case user.ErrDuplicateUser:
		f.errMsg = "Пользователь с таким email уже существует"
	default:
		f.errMsg = "Ошибка соединения с сервером"
	}
}

// view renders the modal body.
func (f *authForm) view() string {
	var b strings.Builder

	title := "Вход в систему"
	if f.mode == authRegister {
		title = "Регистрация"
	}
	b.WriteString(f.styles.PanelTitle.Render(title))
	b.WriteString("\n\n")

	labels := map[int]string{
		fieldName:     "Имя",
		fieldEmail:    "Email",
		fieldPassword: "Пароль",
		fieldConfirm:  "Подтверждение пароля",
	}
	fieldKeys := map[int]string{
		fieldName:     "name",
		fieldEmail:    "email",
		fieldPassword: "password",
		fieldConfirm:  "PasswordConfirm",
	}

	for _, idx := range f.visible() {
		if idx == fieldRole {
			b.WriteString("Роль: " + f.roleLine())
			if msg, ok := f.fields["role_id"]; ok {
				b.WriteString("\n" + f.styles.FieldError.Render(msg))
			}
			b.WriteString("\n")
			continue
		}
		b.WriteString(labels[idx] + "\n")
		b.WriteString(f.inputs[idx].View() + "\n")
		if msg, ok := f.fields[fieldKeys[idx]]; ok {
			b.WriteString(f.styles.FieldError.Render(msg) + "\n")
		}
	}

	if f.errMsg != "" {
		b.WriteString("\n" + f.styles.FieldError.Render(f.errMsg) + "\n")
	}

	submit := "войти"
	if f.mode == authRegister {
		submit = "зарегистрироваться"
	}
	b.WriteString("\n" + f.styles.Help.Render("enter: "+submit+" · tab: следующее поле · esc: отмена"))
	return b.String()
}

func (f *authForm) roleLine() string {
	if len(f.roles) == 0 {
		return f.styles.CardMeta.Render("Роли не загружены")
	}
	parts := make([]string, len(f.roles))
	for i, r := range f.roles {
		if i == f.roleIdx {
			parts[i] = f.styles.UserBadge.Render("[" + r.Name + "]")
		} else {
			parts[i] = f.styles.CardMeta.Render(" " + r.Name + " ")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// sortedFieldMessages lists inline errors deterministically, for tests.
func (f *authForm) sortedFieldMessages() []string {
	keys := make([]string, 0, len(f.fields))
	for k := range f.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k + ": " + f.fields[k]
	}
	return out
}
