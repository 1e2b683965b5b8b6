package basesvc

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meta_content/internal/common"
	"meta_content/internal/global"
)

// RelationshipDef định nghĩa một quan hệ được khai báo trong struct tag.
// Cú pháp tag: relationship:"collection:<tên collection>,field:<tên field>,message:<thông báo lỗi có %d>"
type RelationshipDef struct {
	CollectionName string // Tên collection chứa record tham chiếu
	FieldName      string // Tên field trong collection đó trỏ về record này
	ErrorMessage   string // Thông báo lỗi khi còn record tham chiếu (%d là số lượng)
}

// RelationshipCheck là một phép kiểm tra quan hệ cần thực hiện trước khi xóa
type RelationshipCheck struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string
}

// ParseRelationshipTag đọc struct tag `relationship` trên model và trả về danh sách quan hệ.
// Field không có tag hoặc tag sai cú pháp sẽ bị bỏ qua.
func ParseRelationshipTag(modelType reflect.Type) []RelationshipDef {
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}
	if modelType.Kind() != reflect.Struct {
		return nil
	}

	var defs []RelationshipDef
	for i := 0; i < modelType.NumField(); i++ {
		tag := modelType.Field(i).Tag.Get("relationship")
		if tag == "" {
			continue
		}

		def := RelationshipDef{}
		for _, part := range strings.Split(tag, ",") {
			kv := strings.SplitN(strings.TrimSpace(part), ":", 2)
			if len(kv) != 2 {
				continue
			}
			switch kv[0] {
			case "collection":
				def.CollectionName = kv[1]
			case "field":
				def.FieldName = kv[1]
			case "message":
				def.ErrorMessage = kv[1]
			}
		}

		if def.CollectionName == "" || def.FieldName == "" {
			continue
		}
		if def.ErrorMessage == "" {
			def.ErrorMessage = "Không thể xóa vì còn %d bản ghi đang tham chiếu"
		}
		defs = append(defs, def)
	}
	return defs
}

// CheckRelationshipExists đếm số record đang tham chiếu tới recordID theo từng check.
// Nếu còn record tham chiếu, trả về lỗi nghiệp vụ với số lượng được format vào message.
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, err := global.RegistryCollections.Get(check.CollectionName)
		if err != nil {
			// Collection chưa được đăng ký, bỏ qua check này
			continue
		}

		count, err := collection.CountDocuments(ctx, bson.M{check.FieldName: recordID})
		if err != nil {
			return common.ConvertMongoError(err)
		}

		if count > 0 {
			return common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf(check.ErrorMessage, count),
				common.StatusBadRequest,
				nil,
			)
		}
	}
	return nil
}
