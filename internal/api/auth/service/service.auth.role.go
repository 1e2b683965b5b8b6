// Package authsvc - service vai trò (Role).
package authsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "meta_content/internal/api/auth/dto"
	models "meta_content/internal/api/auth/models"
	basesvc "meta_content/internal/api/base/service"
	"meta_content/internal/common"
	"meta_content/internal/global"
	"meta_content/internal/utility"
)

// RoleService là cấu trúc chứa các phương thức liên quan đến vai trò
type RoleService struct {
	*basesvc.BaseServiceMongoImpl[models.Role]
}

// NewRoleService tạo mới RoleService
func NewRoleService() (*RoleService, error) {
	roleCollection, err := global.RegistryCollections.Get(global.MongoDB_ColNames.Roles)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles collection: %v", err)
	}

	return &RoleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Role](roleCollection),
	}, nil
}

// clearDefaultExcept bỏ cờ isDefault của mọi role khác ngoài exceptID.
// Gọi trước khi set một role thành default để đảm bảo tối đa một default.
// exceptID là NilObjectID khi tạo mới (chưa có ID để loại trừ).
func (s *RoleService) clearDefaultExcept(ctx context.Context, exceptID primitive.ObjectID) error {
	filter := bson.M{"isDefault": true}
	if !exceptID.IsZero() {
		filter["_id"] = bson.M{"$ne": exceptID}
	}

	_, err := s.UpdateMany(ctx, filter, &basesvc.UpdateData{
		Set: map[string]interface{}{"isDefault": false},
	}, nil)
	return err
}

// Create tạo mới một role.
// Kiểm tra trùng tên trước khi insert. Nếu role mới là default,
// bỏ cờ default của role hiện tại trước.
func (s *RoleService) Create(ctx context.Context, input *authdto.RoleCreateInput) (models.Role, error) {
	var zero models.Role

	exists, err := s.DocumentExists(ctx, bson.M{"name": input.Name})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Role với tên '%s' đã tồn tại", input.Name),
			common.StatusBadRequest,
			nil,
		)
	}

	if input.IsDefault {
		if err := s.clearDefaultExcept(ctx, primitive.NilObjectID); err != nil {
			return zero, err
		}
	}

	role := models.Role{
		Name:          input.Name,
		Describe:      input.Describe,
		IsDefault:     input.IsDefault,
		IsActive:      true,
		PermissionIDs: []primitive.ObjectID{},
	}

	return s.InsertOne(ctx, role)
}

// Update cập nhật một role.
// Nếu input set isDefault=true, role hiện tại đang default sẽ bị bỏ cờ trước.
func (s *RoleService) Update(ctx context.Context, id primitive.ObjectID, input *authdto.RoleUpdateInput) (models.Role, error) {
	var zero models.Role

	current, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	if input.Name != "" && input.Name != current.Name {
		exists, err := s.DocumentExists(ctx, bson.M{"name": input.Name, "_id": bson.M{"$ne": id}})
		if err != nil {
			return zero, err
		}
		if exists {
			return zero, common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Role với tên '%s' đã tồn tại", input.Name),
				common.StatusBadRequest,
				nil,
			)
		}
	}

	set := make(map[string]interface{})
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Describe != "" {
		set["describe"] = input.Describe
	}
	if input.IsDefault != nil {
		if *input.IsDefault {
			if err := s.clearDefaultExcept(ctx, id); err != nil {
				return zero, err
			}
		}
		set["isDefault"] = *input.IsDefault
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// Delete xóa một role theo ID.
// Role default không xóa được. Role đang được user sử dụng bị chặn
// bởi relationship tag trên model (lỗi trả về số user đang dùng).
func (s *RoleService) Delete(ctx context.Context, id primitive.ObjectID) error {
	role, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	if role.IsDefault {
		return common.NewError(
			common.ErrCodeBusinessOperation,
			"Không thể xóa role mặc định. Vui lòng đặt role khác làm mặc định trước.",
			common.StatusBadRequest,
			nil,
		)
	}

	return s.DeleteById(ctx, id)
}

// UpdatePermissions thay thế toàn bộ danh sách permission của role.
// Danh sách ID được dedupe trước, mọi ID phải trỏ tới permission tồn tại,
// ngược lại trả lỗi 400 và không thay đổi gì. Kết quả trả về role sau khi
// cập nhật kèm danh sách permission đã populate.
func (s *RoleService) UpdatePermissions(ctx context.Context, roleID primitive.ObjectID, permissionIDs []primitive.ObjectID) (*authdto.RoleWithPermissions, error) {
	if _, err := s.FindOneById(ctx, roleID); err != nil {
		return nil, err
	}

	uniqueIDs := utility.Unique(permissionIDs)

	// Mọi ID phải tồn tại trong collection permissions.
	// Fetch luôn bản ghi để populate vào kết quả.
	permissions := []models.Permission{}
	if len(uniqueIDs) > 0 {
		permissionCollection, err := global.RegistryCollections.Get(global.MongoDB_ColNames.Permissions)
		if err != nil {
			return nil, fmt.Errorf("failed to get permissions collection: %v", err)
		}

		cursor, err := permissionCollection.Find(ctx, bson.M{"_id": bson.M{"$in": uniqueIDs}})
		if err != nil {
			return nil, common.ConvertMongoError(err)
		}
		if err := cursor.All(ctx, &permissions); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		if len(permissions) != len(uniqueIDs) {
			return nil, common.ErrInvalidReference
		}
	}

	updated, err := s.UpdateById(ctx, roleID, &basesvc.UpdateData{
		Set: map[string]interface{}{"permissionIds": uniqueIDs},
	})
	if err != nil {
		return nil, err
	}

	return &authdto.RoleWithPermissions{
		Role:        updated,
		Permissions: orderPermissionsByIds(uniqueIDs, permissions),
	}, nil
}

// orderPermissionsByIds sắp xếp danh sách permission theo đúng thứ tự ids
// (Mongo trả kết quả $in theo thứ tự bất kỳ). ID không có bản ghi tương ứng
// bị bỏ qua.
func orderPermissionsByIds(ids []primitive.ObjectID, permissions []models.Permission) []models.Permission {
	byID := make(map[primitive.ObjectID]models.Permission, len(permissions))
	for _, p := range permissions {
		byID[p.ID] = p
	}

	ordered := make([]models.Permission, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

// GetDefaultRole trả về role mặc định hiện tại, ErrNotFound nếu chưa có
func (s *RoleService) GetDefaultRole(ctx context.Context) (models.Role, error) {
	return s.FindOne(ctx, bson.M{"isDefault": true}, nil)
}

// CountUsersByRole đếm số user đang được gán role này
func (s *RoleService) CountUsersByRole(ctx context.Context, roleID primitive.ObjectID) (int64, error) {
	userCollection, err := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if err != nil {
		return 0, fmt.Errorf("failed to get users collection: %v", err)
	}

	count, err := userCollection.CountDocuments(ctx, bson.M{"roleId": roleID})
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}
