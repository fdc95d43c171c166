package rbac

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"

	roleAuthenticated = "authenticated"
)

// DefaultPolicies maps each role to the resource/action pairs it may use.
func DefaultPolicies() [][]string {
	return [][]string{
		{roleAuthenticated, "session", "read"},

		{RoleAdmin, "employee", "read"},
		{RoleAdmin, "employee", "create"},
		{RoleAdmin, "employee", "delete"},
		{RoleAdmin, "leave", "manage"},
		{RoleAdmin, "leave", "decide"},

		{RoleEmployee, "attendance", "create"},
		{RoleEmployee, "attendance", "read"},
		{RoleEmployee, "leave", "create"},
		{RoleEmployee, "leave", "read"},
	}
}

func DefaultGroupings() [][]string {
	return [][]string{
		{RoleAdmin, roleAuthenticated},
		{RoleEmployee, roleAuthenticated},
	}
}
