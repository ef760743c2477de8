package backoffice

// Permission predicates encode which roles may perform which back-office
// actions. They mirror the server's enforcement; consult them before offering
// an action, not instead of handling a 403.

func CanCreateQuotation(user User) bool {
	return user.Role == RoleClient || user.Role == RoleAccountSpecialist
}

func CanEditQuotation(user User) bool   { return user.Role == RoleAccountSpecialist }
func CanDeleteQuotation(user User) bool { return user.Role == RoleAccountSpecialist }

func CanCreateArticle(user User) bool { return user.Role == RoleMarketing }
func CanEditArticle(user User) bool   { return user.Role == RoleMarketing }
func CanDeleteArticle(user User) bool { return user.Role == RoleMarketing }

func CanManageUsers(user User) bool    { return user.Role == RoleHumanResource }
func CanViewAllQueries(user User) bool { return user.Role == RoleAccountSpecialist }

func CanViewAnalytics(user User) bool {
	switch user.Role {
	case RoleAccountSpecialist, RoleMarketing, RoleHumanResource:
		return true
	}
	return false
}
