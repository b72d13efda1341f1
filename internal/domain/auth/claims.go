package auth

// Claims are the access-token fields the API relies on.
type Claims struct {
	EmployeeID string
	Username   string
	IsAdmin    bool
}

// ClaimsFromMap reads Claims from decoded JWT claims.
func ClaimsFromMap(m map[string]interface{}) (Claims, error) {
	employeeID, ok := m["employee_id"].(string)
	if !ok || employeeID == "" {
		return Claims{}, ErrInvalidToken
	}
	username, _ := m["username"].(string)
	isAdmin, _ := m["is_admin"].(bool)

	return Claims{
		EmployeeID: employeeID,
		Username:   username,
		IsAdmin:    isAdmin,
	}, nil
}

// CanAccess reports whether the caller may read or write employeeID's records.
func (c Claims) CanAccess(employeeID string) bool {
	return c.IsAdmin || c.EmployeeID == employeeID
}
