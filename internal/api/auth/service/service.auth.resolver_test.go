package authsvc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "meta_content/internal/api/auth/models"
	basesvc "meta_content/internal/api/base/service"
	"meta_content/internal/api/events"
	"meta_content/internal/common"
	"meta_content/internal/global"
	"meta_content/internal/utility"
)

// fakeMongoService giả lập BaseServiceMongo cho resolver test.
// Chỉ khai báo các method resolver dùng, method khác panic qua embedded nil.
type fakeMongoService[T any] struct {
	basesvc.BaseServiceMongo[T]

	findOneByIdFn    func(ctx context.Context, id primitive.ObjectID) (T, error)
	findManyByIdsFn  func(ctx context.Context, ids []primitive.ObjectID) ([]T, error)
	findOneByIdCalls int
}

func (f *fakeMongoService[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	f.findOneByIdCalls++
	return f.findOneByIdFn(ctx, id)
}

func (f *fakeMongoService[T]) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]T, error) {
	return f.findManyByIdsFn(ctx, ids)
}

// newFakeResolver dựng resolver trên fake: một user, một role, một tập permission.
// roleErr mô phỏng role đã bị xóa (dangling roleId).
func newFakeResolver(t *testing.T, user models.User, role models.Role, roleErr error, permissions []models.Permission) (*PermissionResolver, *fakeMongoService[models.User]) {
	t.Helper()

	userFake := &fakeMongoService[models.User]{
		findOneByIdFn: func(_ context.Context, _ primitive.ObjectID) (models.User, error) {
			return user, nil
		},
	}
	roleFake := &fakeMongoService[models.Role]{
		findOneByIdFn: func(_ context.Context, _ primitive.ObjectID) (models.Role, error) {
			if roleErr != nil {
				return models.Role{}, roleErr
			}
			return role, nil
		},
	}
	permFake := &fakeMongoService[models.Permission]{
		findManyByIdsFn: func(_ context.Context, ids []primitive.ObjectID) ([]models.Permission, error) {
			// Permission đã bị xóa không được trả về, giống $in trên Mongo
			byID := make(map[primitive.ObjectID]models.Permission, len(permissions))
			for _, p := range permissions {
				byID[p.ID] = p
			}
			found := []models.Permission{}
			for _, id := range ids {
				if p, ok := byID[id]; ok {
					found = append(found, p)
				}
			}
			return found, nil
		},
	}

	r := &PermissionResolver{
		UserCRUD:       userFake,
		RoleCRUD:       roleFake,
		PermissionCRUD: permFake,
		Cache:          utility.NewCache(1*time.Minute, 1*time.Minute),
	}
	t.Cleanup(r.Cache.Stop)
	return r, userFake
}

// TestResolvePermissions kiểm tra phân giải user → role → permission codes
func TestResolvePermissions(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	roleID := primitive.NewObjectID()

	t.Run("User chưa được gán role trả về tập rỗng", func(t *testing.T) {
		r, _ := newFakeResolver(t, models.User{ID: userID}, models.Role{}, nil, nil)

		permissions, err := r.ResolvePermissions(ctx, userID)
		assert.NoError(t, err)
		assert.Empty(t, permissions)
	})

	t.Run("Role đã bị xóa trả về tập rỗng, không phải lỗi", func(t *testing.T) {
		r, _ := newFakeResolver(t, models.User{ID: userID, RoleID: roleID}, models.Role{}, common.ErrNotFound, nil)

		permissions, err := r.ResolvePermissions(ctx, userID)
		assert.NoError(t, err)
		assert.Empty(t, permissions)
	})

	t.Run("Tập code đúng theo permission của role", func(t *testing.T) {
		permRead := models.Permission{ID: primitive.NewObjectID(), Code: "articles:read"}
		permCreate := models.Permission{ID: primitive.NewObjectID(), Code: "articles:create"}
		role := models.Role{
			ID:            roleID,
			Name:          "Biên tập viên",
			PermissionIDs: []primitive.ObjectID{permRead.ID, permCreate.ID},
		}
		r, _ := newFakeResolver(t, models.User{ID: userID, RoleID: roleID}, role, nil, []models.Permission{permRead, permCreate})

		permissions, err := r.ResolvePermissions(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, permissions, 2)
		assert.Contains(t, permissions, "articles:read")
		assert.Contains(t, permissions, "articles:create")
	})

	t.Run("Permission ID còn sót của permission đã xóa bị bỏ qua", func(t *testing.T) {
		permRead := models.Permission{ID: primitive.NewObjectID(), Code: "articles:read"}
		deletedID := primitive.NewObjectID()
		role := models.Role{
			ID:            roleID,
			Name:          "Biên tập viên",
			PermissionIDs: []primitive.ObjectID{permRead.ID, deletedID},
		}
		r, _ := newFakeResolver(t, models.User{ID: userID, RoleID: roleID}, role, nil, []models.Permission{permRead})

		permissions, err := r.ResolvePermissions(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, permissions, 1)
		assert.Contains(t, permissions, "articles:read")
	})

	t.Run("Lần resolve thứ hai lấy từ cache, không truy vấn lại", func(t *testing.T) {
		r, userFake := newFakeResolver(t, models.User{ID: userID}, models.Role{}, nil, nil)

		_, err := r.ResolvePermissions(ctx, userID)
		assert.NoError(t, err)
		_, err = r.ResolvePermissions(ctx, userID)
		assert.NoError(t, err)

		assert.Equal(t, 1, userFake.findOneByIdCalls)
	})
}

// TestHasPermission kiểm tra quyết định cho phép / từ chối theo permission code
func TestHasPermission(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	roleID := primitive.NewObjectID()

	permRead := models.Permission{ID: primitive.NewObjectID(), Code: "articles:read"}
	editorRole := models.Role{
		ID:            roleID,
		Name:          "Biên tập viên",
		PermissionIDs: []primitive.ObjectID{permRead.ID},
	}

	t.Run("User có permission thì được phép", func(t *testing.T) {
		r, _ := newFakeResolver(t, models.User{ID: userID, RoleID: roleID}, editorRole, nil, []models.Permission{permRead})

		ok, err := r.HasPermission(ctx, userID, "articles:read")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("User thiếu permission thì bị từ chối", func(t *testing.T) {
		r, _ := newFakeResolver(t, models.User{ID: userID, RoleID: roleID}, editorRole, nil, []models.Permission{permRead})

		ok, err := r.HasPermission(ctx, userID, "articles:delete")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Role Super Admin được phép với mọi code, kể cả khi không có permission nào", func(t *testing.T) {
		superRole := models.Role{ID: roleID, Name: models.SuperAdminRoleName}
		r, _ := newFakeResolver(t, models.User{ID: userID, RoleID: roleID}, superRole, nil, nil)

		ok, err := r.HasPermission(ctx, userID, "permissions:delete")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("User không có role bị từ chối", func(t *testing.T) {
		r, _ := newFakeResolver(t, models.User{ID: userID}, models.Role{}, nil, nil)

		ok, err := r.HasPermission(ctx, userID, "articles:read")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

// TestHasAnyPermission kiểm tra logic giao giữa tập permission và danh sách code
func TestHasAnyPermission(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	roleID := primitive.NewObjectID()

	permRead := models.Permission{ID: primitive.NewObjectID(), Code: "articles:read"}
	editorRole := models.Role{
		ID:            roleID,
		Name:          "Biên tập viên",
		PermissionIDs: []primitive.ObjectID{permRead.ID},
	}

	t.Run("Chỉ cần một code khớp là được phép", func(t *testing.T) {
		r, _ := newFakeResolver(t, models.User{ID: userID, RoleID: roleID}, editorRole, nil, []models.Permission{permRead})

		ok, err := r.HasAnyPermission(ctx, userID, "articles:delete", "articles:read")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Không code nào khớp thì bị từ chối", func(t *testing.T) {
		r, _ := newFakeResolver(t, models.User{ID: userID, RoleID: roleID}, editorRole, nil, []models.Permission{permRead})

		ok, err := r.HasAnyPermission(ctx, userID, "roles:update", "users:update")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Danh sách code rỗng thì bị từ chối", func(t *testing.T) {
		r, _ := newFakeResolver(t, models.User{ID: userID, RoleID: roleID}, editorRole, nil, []models.Permission{permRead})

		ok, err := r.HasAnyPermission(ctx, userID)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Role Super Admin luôn được phép", func(t *testing.T) {
		superRole := models.Role{ID: roleID, Name: models.SuperAdminRoleName}
		r, _ := newFakeResolver(t, models.User{ID: userID, RoleID: roleID}, superRole, nil, nil)

		ok, err := r.HasAnyPermission(ctx, userID, "roles:delete")
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

// TestResolverCacheKey kiểm tra cache key theo từng user
func TestResolverCacheKey(t *testing.T) {
	r := &PermissionResolver{}
	userID := utility.String2ObjectID("507f1f77bcf86cd799439011")

	assert.Equal(t, "user_permissions:507f1f77bcf86cd799439011", r.cacheKey(userID))

	// Hai user khác nhau có key khác nhau
	other := primitive.NewObjectID()
	assert.NotEqual(t, r.cacheKey(userID), r.cacheKey(other))
}

// TestResolverInvalidateUser kiểm tra xóa cache của một user cụ thể
func TestResolverInvalidateUser(t *testing.T) {
	r := &PermissionResolver{Cache: utility.NewCache(1*time.Minute, 1*time.Minute)}
	defer r.Cache.Stop()

	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()
	r.Cache.Set(r.cacheKey(userA), map[string]struct{}{"articles:read": {}})
	r.Cache.Set(r.cacheKey(userB), map[string]struct{}{"roles:read": {}})

	r.InvalidateUser(userA)

	_, found := r.Cache.Get(r.cacheKey(userA))
	assert.False(t, found)
	_, found = r.Cache.Get(r.cacheKey(userB))
	assert.True(t, found, "cache của user khác phải giữ nguyên")
}

// TestResolverOnDataChanged kiểm tra flush cache khi dữ liệu phân quyền thay đổi
func TestResolverOnDataChanged(t *testing.T) {
	// Tên collection được set khi bootstrap, test set trực tiếp
	original := global.MongoDB_ColNames
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Roles = "roles"
	global.MongoDB_ColNames.Permissions = "permissions"
	defer func() { global.MongoDB_ColNames = original }()

	r := &PermissionResolver{Cache: utility.NewCache(1*time.Minute, 1*time.Minute)}
	defer r.Cache.Stop()

	userID := primitive.NewObjectID()
	ctx := context.Background()

	t.Run("Thay đổi trên roles thì flush toàn bộ", func(t *testing.T) {
		r.Cache.Set(r.cacheKey(userID), map[string]struct{}{})
		r.onDataChanged(ctx, events.DataChangeEvent{CollectionName: "roles", Operation: events.OpUpdate})

		_, found := r.Cache.Get(r.cacheKey(userID))
		assert.False(t, found)
	})

	t.Run("Thay đổi trên collection khác thì giữ cache", func(t *testing.T) {
		r.Cache.Set(r.cacheKey(userID), map[string]struct{}{})
		r.onDataChanged(ctx, events.DataChangeEvent{CollectionName: "articles", Operation: events.OpInsert})

		_, found := r.Cache.Get(r.cacheKey(userID))
		assert.True(t, found)
	})
}
