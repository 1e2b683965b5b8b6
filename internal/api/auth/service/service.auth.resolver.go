// Package authsvc - resolver phân giải permission của người dùng.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "meta_content/internal/api/auth/models"
	basesvc "meta_content/internal/api/base/service"
	"meta_content/internal/api/events"
	"meta_content/internal/common"
	"meta_content/internal/global"
	"meta_content/internal/utility"
)

// PermissionResolver phân giải danh sách permission code của một user
// theo chuỗi user → role → permissionIds → codes.
// Kết quả được cache theo user ID, cache bị xóa toàn bộ khi dữ liệu
// users/roles/permissions thay đổi (qua events.OnDataChanged).
// Các dependency khai báo theo interface để test thay được bằng fake.
type PermissionResolver struct {
	UserCRUD       basesvc.BaseServiceMongo[models.User]
	RoleCRUD       basesvc.BaseServiceMongo[models.Role]
	PermissionCRUD basesvc.BaseServiceMongo[models.Permission]
	Cache          *utility.Cache
}

var (
	resolverInstance *PermissionResolver
	resolverOnce     sync.Once
)

// GetPermissionResolver trả về instance duy nhất của PermissionResolver (singleton pattern)
func GetPermissionResolver() *PermissionResolver {
	resolverOnce.Do(func() {
		var err error
		resolverInstance, err = newPermissionResolver()
		if err != nil {
			panic(err)
		}
	})
	return resolverInstance
}

// newPermissionResolver khởi tạo một instance mới của PermissionResolver (private constructor)
func newPermissionResolver() (*PermissionResolver, error) {
	userService, err := NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	roleService, err := NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}

	permissionService, err := NewPermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create permission service: %v", err)
	}

	resolver := &PermissionResolver{
		UserCRUD:       userService,
		RoleCRUD:       roleService,
		PermissionCRUD: permissionService,
		Cache:          utility.NewCache(5*time.Minute, 10*time.Minute),
	}

	// Xóa cache khi dữ liệu phân quyền thay đổi
	events.OnDataChanged(resolver.onDataChanged)

	return resolver, nil
}

// onDataChanged xử lý event thay đổi dữ liệu: mọi thay đổi trên
// users/roles/permissions đều làm cache permission cũ không còn đúng.
func (r *PermissionResolver) onDataChanged(_ context.Context, event events.DataChangeEvent) {
	switch event.CollectionName {
	case global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Roles,
		global.MongoDB_ColNames.Permissions:
		r.Cache.Flush()
	}
}

// cacheKey trả về cache key cho permission set của user
func (r *PermissionResolver) cacheKey(userID primitive.ObjectID) string {
	return "user_permissions:" + userID.Hex()
}

// ResolvePermissions trả về tập permission code của user.
// User không có role, hoặc role đã bị xóa (dangling roleId), trả về
// tập rỗng chứ không phải lỗi. Permission ID còn sót trong role
// (permission đã bị xóa) được bỏ qua.
func (r *PermissionResolver) ResolvePermissions(ctx context.Context, userID primitive.ObjectID) (map[string]struct{}, error) {
	key := r.cacheKey(userID)
	if cached, found := r.Cache.Get(key); found {
		return cached.(map[string]struct{}), nil
	}

	permissions := make(map[string]struct{})

	user, err := r.UserCRUD.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}

	// User chưa được gán role
	if user.RoleID.IsZero() {
		r.Cache.Set(key, permissions)
		return permissions, nil
	}

	role, err := r.RoleCRUD.FindOneById(ctx, user.RoleID)
	if err != nil {
		// Role đã bị xóa: coi như không có quyền nào
		if errors.Is(err, common.ErrNotFound) {
			r.Cache.Set(key, permissions)
			return permissions, nil
		}
		return nil, err
	}

	if len(role.PermissionIDs) > 0 {
		found, err := r.PermissionCRUD.FindManyByIds(ctx, role.PermissionIDs)
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			permissions[p.Code] = struct{}{}
		}
	}

	r.Cache.Set(key, permissions)
	return permissions, nil
}

// resolveRoleName trả về tên role của user, chuỗi rỗng nếu user không có
// role hợp lệ. Dùng cho bypass Super Admin.
func (r *PermissionResolver) resolveRoleName(ctx context.Context, userID primitive.ObjectID) (string, error) {
	user, err := r.UserCRUD.FindOneById(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.RoleID.IsZero() {
		return "", nil
	}

	role, err := r.RoleCRUD.FindOneById(ctx, user.RoleID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return role.Name, nil
}

// HasPermission kiểm tra user có permission code cụ thể không.
// User mang role Super Admin luôn được phép, không cần tra danh sách.
func (r *PermissionResolver) HasPermission(ctx context.Context, userID primitive.ObjectID, code string) (bool, error) {
	roleName, err := r.resolveRoleName(ctx, userID)
	if err != nil {
		return false, err
	}
	if roleName == models.SuperAdminRoleName {
		return true, nil
	}

	permissions, err := r.ResolvePermissions(ctx, userID)
	if err != nil {
		return false, err
	}

	_, ok := permissions[code]
	return ok, nil
}

// HasAnyPermission kiểm tra user có ít nhất một trong các permission code không.
// User mang role Super Admin luôn được phép.
func (r *PermissionResolver) HasAnyPermission(ctx context.Context, userID primitive.ObjectID, codes ...string) (bool, error) {
	roleName, err := r.resolveRoleName(ctx, userID)
	if err != nil {
		return false, err
	}
	if roleName == models.SuperAdminRoleName {
		return true, nil
	}

	permissions, err := r.ResolvePermissions(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, code := range codes {
		if _, ok := permissions[code]; ok {
			return true, nil
		}
	}
	return false, nil
}

// InvalidateUser xóa cache permission của một user cụ thể
// (dùng khi gán role trực tiếp mà không muốn flush toàn bộ cache).
func (r *PermissionResolver) InvalidateUser(userID primitive.ObjectID) {
	r.Cache.Delete(r.cacheKey(userID))
}
