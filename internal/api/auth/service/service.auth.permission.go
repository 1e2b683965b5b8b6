// Package authsvc - service quyền (Permission).
package authsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	authdto "meta_content/internal/api/auth/dto"
	models "meta_content/internal/api/auth/models"
	basesvc "meta_content/internal/api/base/service"
	"meta_content/internal/common"
	"meta_content/internal/global"
	"meta_content/internal/utility"
)

// PermissionService là cấu trúc chứa các phương thức liên quan đến quyền
type PermissionService struct {
	*basesvc.BaseServiceMongoImpl[models.Permission]
}

// NewPermissionService tạo mới PermissionService
func NewPermissionService() (*PermissionService, error) {
	permissionCollection, err := global.RegistryCollections.Get(global.MongoDB_ColNames.Permissions)
	if err != nil {
		return nil, fmt.Errorf("failed to get permissions collection: %v", err)
	}

	return &PermissionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Permission](permissionCollection),
	}, nil
}

// Create tạo mới một permission.
// Kiểm tra trùng code trước khi insert để trả về lỗi nghiệp vụ rõ ràng
// thay vì lỗi duplicate key từ MongoDB.
func (s *PermissionService) Create(ctx context.Context, input *authdto.PermissionCreateInput) (models.Permission, error) {
	var zero models.Permission

	exists, err := s.DocumentExists(ctx, bson.M{"code": input.Code})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Permission với code '%s' đã tồn tại", input.Code),
			common.StatusBadRequest,
			nil,
		)
	}

	permission := models.Permission{
		Code:     input.Code,
		Name:     input.Name,
		Module:   input.Module,
		Describe: input.Describe,
	}

	return s.InsertOne(ctx, permission)
}

// BulkCreate tạo nhiều permission cùng lúc.
// Các code đã tồn tại được bỏ qua (không lỗi), các code mới được tạo.
// Kết quả trả về danh sách đã tạo và danh sách code bị bỏ qua.
func (s *PermissionService) BulkCreate(ctx context.Context, inputs []authdto.PermissionCreateInput) (*authdto.PermissionBulkCreateResult, error) {
	result := &authdto.PermissionBulkCreateResult{
		Created:           []models.Permission{},
		DuplicatesSkipped: []string{},
	}

	// Lấy danh sách code đã tồn tại trong một query
	codes := make([]string, 0, len(inputs))
	for _, input := range inputs {
		codes = append(codes, input.Code)
	}

	existing, err := s.Find(ctx, bson.M{"code": bson.M{"$in": codes}}, nil)
	if err != nil {
		return nil, err
	}
	existingCodes := make(map[string]bool, len(existing))
	for _, p := range existing {
		existingCodes[p.Code] = true
	}

	toCreate, skipped := partitionPermissionInputs(inputs, existingCodes)
	result.DuplicatesSkipped = append(result.DuplicatesSkipped, skipped...)

	for _, input := range toCreate {
		created, err := s.InsertOne(ctx, models.Permission{
			Code:     input.Code,
			Name:     input.Name,
			Module:   input.Module,
			Describe: input.Describe,
		})
		if err != nil {
			// Race với request khác tạo cùng code: coi như duplicate, không fail cả batch
			result.DuplicatesSkipped = append(result.DuplicatesSkipped, input.Code)
			continue
		}
		result.Created = append(result.Created, created)
	}

	return result, nil
}

// partitionPermissionInputs tách inputs thành danh sách cần tạo và danh sách
// code bị bỏ qua (đã tồn tại trong DB hoặc trùng lặp trong cùng batch).
func partitionPermissionInputs(inputs []authdto.PermissionCreateInput, existingCodes map[string]bool) (toCreate []authdto.PermissionCreateInput, skipped []string) {
	seen := make(map[string]bool, len(inputs))
	for _, input := range inputs {
		if existingCodes[input.Code] || seen[input.Code] {
			skipped = append(skipped, input.Code)
			continue
		}
		seen[input.Code] = true
		toCreate = append(toCreate, input)
	}
	return toCreate, skipped
}

// Update cập nhật một permission.
// Nếu code thay đổi, kiểm tra code mới chưa bị permission khác sử dụng.
func (s *PermissionService) Update(ctx context.Context, id primitive.ObjectID, input *authdto.PermissionUpdateInput) (models.Permission, error) {
	var zero models.Permission

	current, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	if input.Code != "" && input.Code != current.Code {
		exists, err := s.DocumentExists(ctx, bson.M{"code": input.Code, "_id": bson.M{"$ne": id}})
		if err != nil {
			return zero, err
		}
		if exists {
			return zero, common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Permission với code '%s' đã tồn tại", input.Code),
				common.StatusBadRequest,
				nil,
			)
		}
	}

	set := make(map[string]interface{})
	if input.Code != "" {
		set["code"] = input.Code
	}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Module != "" {
		set["module"] = input.Module
	}
	if input.Describe != "" {
		set["describe"] = input.Describe
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// List trả về danh sách permission sắp xếp theo module rồi đến name.
// module khác rỗng thì chỉ trả về permission thuộc module đó.
func (s *PermissionService) List(ctx context.Context, module string) ([]models.Permission, error) {
	filter := bson.D{}
	if module != "" {
		filter = bson.D{{Key: "module", Value: module}}
	}

	opts := mongoopts.Find().SetSort(bson.D{
		{Key: "module", Value: 1},
		{Key: "name", Value: 1},
	})
	return s.Find(ctx, filter, opts)
}

// GroupByModule trả về permission được gom nhóm theo module
func (s *PermissionService) GroupByModule(ctx context.Context) (map[string][]models.Permission, error) {
	permissions, err := s.List(ctx, "")
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.Permission)
	for _, p := range permissions {
		grouped[p.Module] = append(grouped[p.Module], p)
	}
	return grouped, nil
}

// FindManyByCodes trả về permission theo danh sách code
func (s *PermissionService) FindManyByCodes(ctx context.Context, codes []string) ([]models.Permission, error) {
	return s.Find(ctx, bson.M{"code": bson.M{"$in": utility.Unique(codes)}}, nil)
}

// Delete xóa một permission theo ID.
// Permission đang được gán cho role vẫn xóa được: permission ID còn sót
// trong role sẽ bị resolver bỏ qua khi resolve.
func (s *PermissionService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}
