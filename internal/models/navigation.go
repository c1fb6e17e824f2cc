package models

// TabName identifies one of the role home screens.
type TabName string

const (
	TabAcademy TabName = "index"
	TabTeacher TabName = "teacher"
	TabStudent TabName = "student"
)

// Tab is a bottom-navigation entry and the roles allowed to open it.
type Tab struct {
	Name  TabName    `json:"name"`
	Title string     `json:"title"`
	Roles []UserRole `json:"-"`
}

// Allows reports whether the role may open the tab.
func (t Tab) Allows(role UserRole) bool {
	for _, r := range t.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleStrings renders the allowed roles for RBAC middleware.
func (t Tab) RoleStrings() []string {
	out := make([]string, len(t.Roles))
	for i, r := range t.Roles {
		out[i] = string(r)
	}
	return out
}

// HomeScreen is the static content of a placeholder home screen.
type HomeScreen struct {
	Tab         TabName `json:"tab"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Note        string  `json:"note,omitempty"`
}
