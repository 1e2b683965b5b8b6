package authsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "meta_content/internal/api/auth/dto"
	models "meta_content/internal/api/auth/models"
	basesvc "meta_content/internal/api/base/service"
	"meta_content/internal/logger"
)

// InitService khởi tạo dữ liệu mặc định cho hệ thống: permission catalogue,
// role Super Admin và role mặc định, user admin đầu tiên.
// Tất cả các bước đều idempotent, chạy lại không tạo bản ghi trùng.
type InitService struct {
	permissionService *PermissionService
	roleService       *RoleService
	userService       *UserService
}

// NewInitService tạo mới InitService
func NewInitService() (*InitService, error) {
	permissionService, err := NewPermissionService()
	if err != nil {
		return nil, err
	}
	roleService, err := NewRoleService()
	if err != nil {
		return nil, err
	}
	userService, err := NewUserService()
	if err != nil {
		return nil, err
	}
	return &InitService{
		permissionService: permissionService,
		roleService:       roleService,
		userService:       userService,
	}, nil
}

// permissionModules là các module có CRUD permission trong hệ thống
var permissionModules = []string{
	"users", "roles", "permissions",
	"categories", "sections", "articles", "reviews", "comments",
}

// permissionActions là các action chuẩn cho mỗi module
var permissionActions = []string{"create", "read", "update", "delete"}

// actionLabels dùng cho tên hiển thị của permission
var actionLabels = map[string]string{
	"create": "Tạo",
	"read":   "Xem",
	"update": "Cập nhật",
	"delete": "Xóa",
}

// InitPermissions tạo catalogue permission theo lưới module:action.
// Permission đã tồn tại (theo code) được bỏ qua.
func (s *InitService) InitPermissions(ctx context.Context) error {
	inputs := make([]authdto.PermissionCreateInput, 0, len(permissionModules)*len(permissionActions))
	for _, module := range permissionModules {
		for _, action := range permissionActions {
			inputs = append(inputs, authdto.PermissionCreateInput{
				Code:     fmt.Sprintf("%s:%s", module, action),
				Name:     fmt.Sprintf("%s %s", actionLabels[action], module),
				Module:   module,
				Describe: fmt.Sprintf("Quyền %s trên module %s", action, module),
			})
		}
	}

	result, err := s.permissionService.BulkCreate(ctx, inputs)
	if err != nil {
		return fmt.Errorf("failed to init permissions: %w", err)
	}

	logger.GetAppLogger().Infof("Initialized permissions: %d created, %d already existed",
		len(result.Created), len(result.DuplicatesSkipped))
	return nil
}

// InitSuperAdminRole tạo role Super Admin nếu chưa có và đồng bộ cho nó
// toàn bộ permission ID trong hệ thống. Role này được resolver bypass theo
// tên nên danh sách permission chỉ mang tính khai báo, nhưng vẫn đồng bộ
// để admin xem được đầy đủ trên UI.
func (s *InitService) InitSuperAdminRole(ctx context.Context) (models.Role, error) {
	var zero models.Role

	permissions, err := s.permissionService.List(ctx, "")
	if err != nil {
		return zero, fmt.Errorf("failed to list permissions: %w", err)
	}
	permissionIDs := make([]primitive.ObjectID, 0, len(permissions))
	for _, p := range permissions {
		permissionIDs = append(permissionIDs, p.ID)
	}

	role, err := s.roleService.Upsert(ctx, bson.M{"name": models.SuperAdminRoleName}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"permissionIds": permissionIDs,
		},
		SetOnInsert: map[string]interface{}{
			"name":      models.SuperAdminRoleName,
			"describe":  "Quyền cao nhất của hệ thống, bỏ qua mọi kiểm tra permission",
			"isDefault": false,
		},
	})
	if err != nil {
		return zero, fmt.Errorf("failed to upsert Super Admin role: %w", err)
	}

	logger.GetAppLogger().Infof("Super Admin role synchronized with %d permissions", len(permissionIDs))
	return role, nil
}

// InitDefaultRole tạo role Member mặc định cho user đăng ký mới.
// Chỉ đánh dấu isDefault khi hệ thống chưa có role mặc định nào để không
// ghi đè lựa chọn của admin.
func (s *InitService) InitDefaultRole(ctx context.Context) (models.Role, error) {
	var zero models.Role

	if existing, err := s.roleService.GetDefaultRole(ctx); err == nil {
		return existing, nil
	}

	role, err := s.roleService.Upsert(ctx, bson.M{"name": "Member"}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isDefault": true,
		},
		SetOnInsert: map[string]interface{}{
			"name":          "Member",
			"describe":      "Role mặc định cho người dùng đăng ký mới",
			"permissionIds": []primitive.ObjectID{},
		},
	})
	if err != nil {
		return zero, fmt.Errorf("failed to upsert Member role: %w", err)
	}

	logger.GetAppLogger().Info("Default Member role ensured")
	return role, nil
}

// InitAdminUser tạo user admin đầu tiên từ cấu hình env và gán role Super
// Admin. Bỏ qua khi email/password không được cấu hình. User đã tồn tại
// chỉ được đồng bộ lại role, không đổi mật khẩu.
func (s *InitService) InitAdminUser(ctx context.Context, email, password string, superAdminRoleID primitive.ObjectID) error {
	log := logger.GetAppLogger()

	if email == "" || password == "" {
		log.Info("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin user seeding")
		return nil
	}

	existing, err := s.userService.FindOne(ctx, bson.M{"email": email}, nil)
	if err == nil {
		if existing.RoleID != superAdminRoleID {
			if _, err := s.userService.UpdateById(ctx, existing.ID, &basesvc.UpdateData{
				Set: map[string]interface{}{"roleId": superAdminRoleID},
			}); err != nil {
				return fmt.Errorf("failed to sync admin role: %w", err)
			}
			log.Infof("Admin user %s role synchronized", email)
		}
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if _, err := s.userService.InsertOne(ctx, models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		RoleID:   superAdminRoleID,
		IsActive: true,
	}); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Infof("Admin user %s created", email)
	return nil
}
