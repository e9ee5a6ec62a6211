package dto

// UserItem is the public user view; it never carries the password hash.
type UserItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

type EmployeesResponse struct {
	Employees []UserItem `json:"employees"`
}
