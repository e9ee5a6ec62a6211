package dto

// RegisterRequest accepts both full_name/fullName and name: different
// frontends send different keys.
type RegisterRequest struct {
	FullName *string `json:"fullName"`
	Name     *string `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     *string `json:"role"`
}

type RegisterResponse struct {
	Message string   `json:"message"`
	User    UserItem `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserItem `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
