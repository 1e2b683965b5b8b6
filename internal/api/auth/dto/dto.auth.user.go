package authdto

// UserRegisterInput đầu vào đăng ký người dùng.
type UserRegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
}

// UserLoginInput đầu vào đăng nhập người dùng.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserCreateInput đầu vào tạo người dùng (CRUD).
type UserCreateInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	RoleID   string `json:"roleId,omitempty" transform:"str_objectid,optional"`
}

// UserUpdateInput đầu vào cập nhật người dùng.
type UserUpdateInput struct {
	Name string `json:"name"`
}

// UserChangePasswordInput đầu vào đổi mật khẩu.
type UserChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UserSetRoleInput đầu vào gán role cho người dùng.
type UserSetRoleInput struct {
	RoleID string `json:"roleId" validate:"required"`
}

// BlockUserInput đầu vào khóa người dùng.
type BlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"required"`
}

// UnBlockUserInput đầu vào mở khóa người dùng.
type UnBlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
}

// UserLoginResult kết quả đăng nhập: token JWT và thông tin người dùng.
type UserLoginResult struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}
