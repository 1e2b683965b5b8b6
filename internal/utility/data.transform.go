package utility

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransformTagConfig chứa cấu hình được parse từ struct tag transform
type TransformTagConfig struct {
	Type     string // Loại transform: str_objectid, str_objectid_ptr, str_time, str_int64, str_bool
	Format   string // Format cho time converter
	Default  string // Giá trị mặc định
	Optional bool   // Nếu không có giá trị thì bỏ qua
	Required bool   // Bắt buộc phải có giá trị
	MapTo    string // Map sang field khác trong Model (ví dụ: map=CategoryID)
}

// ParseTransformTag parse tag transform thành config.
// Format: "[type][,format=<value>][,default=<value>][,map=<field>][,optional|required]"
// Naming convention: <input_type>_<output_type>
// Ví dụ:
//   - transform:"str_objectid" - Convert string → primitive.ObjectID
//   - transform:"str_objectid_ptr" - Convert string → *primitive.ObjectID
//   - transform:"str_time,format=2006-01-02" - Convert string → int64 timestamp
//   - transform:"str_objectid,optional" - Field không bắt buộc
func ParseTransformTag(tag string) (*TransformTagConfig, error) {
	config := &TransformTagConfig{
		Format: "2006-01-02T15:04:05",
	}

	if tag == "" {
		return config, nil
	}

	parts := strings.Split(tag, ",")

	// Phần đầu tiên là transform type
	typeStr := strings.TrimSpace(parts[0])
	if typeStr != "" {
		config.Type = typeStr
	}

	// Parse các options từ phần còn lại
	for i := 1; i < len(parts); i++ {
		part := strings.TrimSpace(parts[i])
		if part == "" {
			continue
		}

		if part == "optional" {
			config.Optional = true
			continue
		}
		if part == "required" {
			config.Required = true
			continue
		}

		if strings.Contains(part, "=") {
			kv := strings.SplitN(part, "=", 2)
			key := strings.TrimSpace(kv[0])
			value := strings.TrimSpace(kv[1])

			switch key {
			case "format":
				config.Format = value
			case "default":
				config.Default = value
			case "map":
				config.MapTo = value
			}
		}
	}

	return config, nil
}

// TransformFieldValue transform giá trị từ DTO field sang Model field theo config
func TransformFieldValue(value interface{}, config *TransformTagConfig, targetFieldType reflect.Type) (interface{}, error) {
	if value == nil {
		if config.Default != "" {
			return applyTransform(config.Default, config)
		}
		if config.Required {
			return nil, fmt.Errorf("field là required nhưng không có giá trị")
		}
		return nil, nil
	}

	// String rỗng coi như không có giá trị
	if strValue, ok := value.(string); ok && strValue == "" {
		if config.Default != "" {
			return applyTransform(config.Default, config)
		}
		if config.Required {
			return nil, fmt.Errorf("field là required nhưng giá trị rỗng")
		}
		return nil, nil
	}

	return applyTransform(value, config)
}

// applyTransform apply transform type cho value
func applyTransform(value interface{}, config *TransformTagConfig) (interface{}, error) {
	switch config.Type {
	case "str_objectid":
		return transformToObjectID(value)
	case "str_objectid_ptr":
		return transformToObjectIDPtr(value)
	case "str_time":
		return transformToTime(value, config.Format)
	case "str_int64":
		return transformToInt64(value)
	case "str_bool":
		return transformToBool(value)
	default:
		// Không transform, return giá trị gốc
		return value, nil
	}
}

func transformToObjectID(value interface{}) (primitive.ObjectID, error) {
	strValue, ok := value.(string)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return primitive.NilObjectID, nil
	}

	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("không thể convert string '%s' sang ObjectID: %w", strValue, err)
	}
	return objID, nil
}

func transformToObjectIDPtr(value interface{}) (*primitive.ObjectID, error) {
	strValue, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return nil, nil
	}

	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return nil, fmt.Errorf("không thể convert string '%s' sang ObjectID: %w", strValue, err)
	}
	return &objID, nil
}

func transformToTime(value interface{}, format string) (int64, error) {
	strValue, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return 0, nil
	}

	t, err := time.Parse(format, strValue)
	if err != nil {
		return 0, fmt.Errorf("không thể parse time '%s' với format '%s': %w", strValue, format, err)
	}
	return t.UnixMilli(), nil
}

func transformToInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("không thể convert %T sang int64", value)
	}
}

func transformToBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	default:
		return false, fmt.Errorf("không thể convert %T sang bool", value)
	}
}
