package basehdl

// Package basehdl cung cấp base handler với các chức năng CRUD cơ bản
// và các tiện ích xử lý request/response cho các Fiber handler.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "meta_content/internal/api/base/service"
	"meta_content/internal/common"
	"meta_content/internal/global"
	"meta_content/internal/utility"
)

// FilterOptions cấu hình cho việc validate filter
type FilterOptions struct {
	DeniedFields     []string // Các trường bị cấm filter
	AllowedOperators []string // Các operator MongoDB được phép
	MaxFields        int      // Số lượng field tối đa trong một filter
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng CRUD cơ bản.
// Struct này sử dụng Generic Type để có thể tái sử dụng cho nhiều loại model khác nhau.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: Kiểu dữ liệu của input khi tạo mới
// - UpdateInput: Kiểu dữ liệu của input khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
	filterOptions FilterOptions               // Cấu hình validate filter
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"token",
				"secret",
				"salt",
				"hash",
			},
			AllowedOperators: []string{
				"$eq",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
			},
			MaxFields: 10,
		},
	}
}

// ValidateInput thực hiện validate chi tiết dữ liệu đầu vào
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	// Validate với validator từ global
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	// Kiểm tra các trường đặc biệt
	val := reflect.ValueOf(input)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	// Chỉ xử lý nếu input là struct
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		// Kiểm tra độ dài tối đa cho field string (tag maxLength)
		if field.Kind() == reflect.String {
			if maxTag := fieldType.Tag.Get("maxLength"); maxTag != "" {
				maxLen, err := strconv.Atoi(maxTag)
				if err == nil && len(field.String()) > maxLen {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s vượt quá độ dài cho phép (%d ký tự)", fieldType.Name, maxLen),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return nil
}

// ParseRequestParams parse và validate các tham số từ URI.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestParams(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().URI(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return nil
}

// ProcessFilter xử lý và validate filter từ query string
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (map[string]interface{}, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị filter nhận được: %s", err, filterStr),
			common.StatusBadRequest,
			err,
		)
	}

	// Normalize filter: chuyển đổi các string ObjectId thành ObjectID
	filter = h.normalizeFilter(filter)

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return filter, nil
}

// normalizeFilter chuyển đổi các string có format ObjectId thành ObjectID trong filter.
// Áp dụng cho các trường có tên kết thúc bằng "Id" hoặc "ID" và trường "_id".
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return filter
	}

	normalized := make(map[string]interface{})
	for field, value := range filter {
		fieldLower := strings.ToLower(field)
		isIDField := field == "_id" || (strings.HasSuffix(fieldLower, "id") && len(fieldLower) > 2)

		normalized[field] = h.normalizeFilterValue(value, isIDField)
	}

	return normalized
}

// normalizeFilterValue chuyển đổi giá trị trong filter, hỗ trợ nested structures
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	if value == nil {
		return value
	}

	// Hỗ trợ MongoDB Extended JSON format: {"$oid": "..."}
	if mapValue, ok := value.(map[string]interface{}); ok {
		if oidValue, hasOid := mapValue["$oid"]; hasOid {
			if oidStr, ok := oidValue.(string); ok && primitive.IsValidObjectID(oidStr) {
				if objID, err := primitive.ObjectIDFromHex(oidStr); err == nil {
					return objID
				}
			}
			return value
		}
	}

	// String trên ID field: thử chuyển thành ObjectID
	if strValue, ok := value.(string); ok && isIDField {
		if primitive.IsValidObjectID(strValue) {
			if objID, err := primitive.ObjectIDFromHex(strValue); err == nil {
				return objID
			}
		}
		return strValue
	}

	// Mảng: xử lý từng phần tử
	if arrValue, ok := value.([]interface{}); ok {
		normalizedArr := make([]interface{}, len(arrValue))
		for i, item := range arrValue {
			normalizedArr[i] = h.normalizeFilterValue(item, isIDField)
		}
		return normalizedArr
	}

	// Map (các operator như $in, $nin, $eq): xử lý đệ quy
	if mapValue, ok := value.(map[string]interface{}); ok {
		normalizedMap := make(map[string]interface{})
		for key, val := range mapValue {
			normalizedMap[key] = h.normalizeFilterValue(val, isIDField)
		}
		return normalizedMap
	}

	return value
}

// validateFilter kiểm tra tính hợp lệ của filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	deniedFields := h.filterOptions.DeniedFields
	allowedOperators := h.filterOptions.AllowedOperators
	maxFields := h.filterOptions.MaxFields
	if maxFields == 0 {
		maxFields = 10
	}

	// Kiểm tra số lượng field
	if len(filter) > maxFields {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter vượt quá số lượng trường cho phép. Tối đa %d trường, hiện tại có %d trường.", maxFields, len(filter)),
			common.StatusBadRequest,
			nil,
		)
	}

	// Kiểm tra từng field và operator
	for field, value := range filter {
		if utility.Contains(deniedFields, field) {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Trường '%s' không được phép sử dụng trong filter vì lý do bảo mật.", field),
				common.StatusBadRequest,
				nil,
			)
		}

		if mapValue, ok := value.(map[string]interface{}); ok {
			for op := range mapValue {
				if strings.HasPrefix(op, "$") && !utility.Contains(allowedOperators, op) {
					return common.NewError(
						common.ErrCodeValidationFormat,
						fmt.Sprintf("Toán tử MongoDB '%s' không được phép sử dụng. Các toán tử được phép: %v", op, allowedOperators),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// processMongoOptions xử lý options từ query string và chuyển đổi sang MongoDB options
func (h *BaseHandler[T, CreateInput, UpdateInput]) processMongoOptions(c fiber.Ctx, isFindOne bool) (interface{}, error) {
	var rawOptions map[string]interface{}

	optionsStr := c.Query("options", "{}")
	if err := json.Unmarshal([]byte(optionsStr), &rawOptions); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị options nhận được: %s", err, optionsStr),
			common.StatusBadRequest,
			err,
		)
	}

	if err := h.validateMongoOptions(rawOptions); err != nil {
		return nil, err
	}

	if isFindOne {
		opts := mongoopts.FindOne()
		if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
			opts.SetProjection(projection)
		}
		if sort, ok := rawOptions["sort"].(map[string]interface{}); ok {
			opts.SetSort(parseSortWithOrder(sort, optionsStr))
		}
		return opts, nil
	}

	opts := mongoopts.Find()
	if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
		opts.SetProjection(projection)
	}
	if sort, ok := rawOptions["sort"].(map[string]interface{}); ok {
		opts.SetSort(parseSortWithOrder(sort, optionsStr))
	}
	if limit, ok := rawOptions["limit"].(float64); ok {
		opts.SetLimit(int64(limit))
	}
	if skip, ok := rawOptions["skip"].(float64); ok {
		opts.SetSkip(int64(skip))
	}
	return opts, nil
}

// parseSortWithOrder parse sort object từ JSON string gốc để giữ nguyên thứ tự các key.
// Map Go không giữ thứ tự key nên phải parse lại bằng json.Decoder với Token().
func parseSortWithOrder(sortMap map[string]interface{}, optionsJSON string) bson.D {
	// Fallback: parse sort từ map (không đảm bảo thứ tự)
	parseSortMap := func() bson.D {
		sortBson := bson.D{}
		for field, value := range sortMap {
			var sortValue int
			switch v := value.(type) {
			case float64:
				sortValue = int(v)
			case int:
				sortValue = v
			default:
				continue
			}
			if sortValue != 1 && sortValue != -1 {
				continue
			}
			sortBson = append(sortBson, bson.E{Key: field, Value: sortValue})
		}
		return sortBson
	}

	var tempOptions map[string]json.RawMessage
	if err := json.Unmarshal([]byte(optionsJSON), &tempOptions); err != nil {
		return parseSortMap()
	}

	sortRaw, ok := tempOptions["sort"]
	if !ok {
		return bson.D{}
	}

	decoder := json.NewDecoder(bytes.NewReader(sortRaw))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil || token != json.Delim('{') {
		return parseSortMap()
	}

	sortBson := bson.D{}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			break
		}
		field, ok := keyToken.(string)
		if !ok {
			continue
		}

		valueToken, err := decoder.Token()
		if err != nil {
			break
		}

		var sortValue int
		switch v := valueToken.(type) {
		case json.Number:
			intVal, err := v.Int64()
			if err != nil {
				continue
			}
			sortValue = int(intVal)
		case float64:
			sortValue = int(v)
		default:
			continue
		}

		if sortValue != 1 && sortValue != -1 {
			continue
		}

		sortBson = append(sortBson, bson.E{Key: field, Value: sortValue})
	}

	if len(sortBson) == 0 {
		return parseSortMap()
	}
	return sortBson
}

// validateMongoOptions kiểm tra tính hợp lệ của các options
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateMongoOptions(options map[string]interface{}) error {
	deniedFields := h.filterOptions.DeniedFields

	// Danh sách các options được phép
	allowedOptions := map[string]bool{
		"projection": true,
		"sort":       true,
		"limit":      true,
		"skip":       true,
	}

	for key := range options {
		if !allowedOptions[key] {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Option '%s' không được hỗ trợ. Các options được phép: projection, sort, limit, skip", key),
				common.StatusBadRequest,
				nil,
			)
		}
	}

	if projection, ok := options["projection"].(map[string]interface{}); ok {
		for field := range projection {
			if utility.Contains(deniedFields, field) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Trường '%s' không được phép sử dụng trong projection vì lý do bảo mật", field),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	if sort, ok := options["sort"].(map[string]interface{}); ok {
		for field, value := range sort {
			if utility.Contains(deniedFields, field) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Trường '%s' không được phép sử dụng trong sort vì lý do bảo mật", field),
					common.StatusBadRequest,
					nil,
				)
			}
			if v, ok := value.(float64); !ok || (v != 1 && v != -1) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Giá trị sort cho trường '%s' phải là 1 (tăng dần) hoặc -1 (giảm dần), giá trị hiện tại: %v", field, value),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	if limit, ok := options["limit"].(float64); ok {
		if limit <= 0 {
			return common.NewError(
				common.ErrCodeValidationFormat,
				"Giá trị limit phải lớn hơn 0",
				common.StatusBadRequest,
				nil,
			)
		}
		if limit > 1000 {
			return common.NewError(
				common.ErrCodeValidationFormat,
				"Giá trị limit không được vượt quá 1000 để đảm bảo hiệu năng hệ thống",
				common.StatusBadRequest,
				nil,
			)
		}
	}

	if skip, ok := options["skip"].(float64); ok {
		if skip < 0 {
			return common.NewError(
				common.ErrCodeValidationFormat,
				"Giá trị skip không được âm",
				common.StatusBadRequest,
				nil,
			)
		}
	}

	return nil
}

// ParsePagination parse thông tin phân trang từ query string.
// page mặc định 1, limit mặc định 10.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page := utility.P2Int64(c.Query("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit := utility.P2Int64(c.Query("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	return page, limit
}

// GetIDFromContext lấy ID từ URI params của request
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetIDFromContext(c fiber.Ctx) string {
	return c.Params("id")
}

// TransformCreateInputToModel transform CreateInput (DTO) sang Model (T).
// Sử dụng struct tag `transform` để tự động convert các field (ví dụ: string → ObjectID).
// Hỗ trợ map field từ DTO sang Model với tên khác nhau thông qua option `map=<field_name>`.
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input *CreateInput) (*T, error) {
	model := new(T)
	if err := transformInputToModel(input, model); err != nil {
		return nil, err
	}
	return model, nil
}

// TransformUpdateInputToModel transform UpdateInput (DTO) sang Model (T)
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformUpdateInputToModel(input *UpdateInput) (*T, error) {
	model := new(T)
	if err := transformInputToModel(input, model); err != nil {
		return nil, err
	}
	return model, nil
}

// transformInputToModel copy các field từ DTO sang Model, áp dụng struct tag `transform`
func transformInputToModel(input interface{}, model interface{}) error {
	inputVal := reflect.ValueOf(input)
	if inputVal.Kind() == reflect.Ptr {
		inputVal = inputVal.Elem()
	}
	if inputVal.Kind() != reflect.Struct {
		return fmt.Errorf("input phải là struct hoặc pointer đến struct")
	}

	modelVal := reflect.ValueOf(model)
	if modelVal.Kind() == reflect.Ptr {
		modelVal = modelVal.Elem()
	}
	if modelVal.Kind() != reflect.Struct {
		return fmt.Errorf("model phải là struct hoặc pointer đến struct")
	}

	inputType := inputVal.Type()
	modelType := modelVal.Type()

	for i := 0; i < inputVal.NumField(); i++ {
		inputField := inputVal.Field(i)
		inputFieldType := inputType.Field(i)

		if !inputField.CanInterface() {
			continue
		}

		fieldValue := inputField.Interface()

		transformTag := inputFieldType.Tag.Get("transform")
		if transformTag != "" {
			transformConfig, err := utility.ParseTransformTag(transformTag)
			if err != nil {
				return fmt.Errorf("lỗi parse transform tag cho field %s: %w", inputFieldType.Name, err)
			}

			// Xác định field target trong Model (mặc định: cùng tên)
			targetFieldName := inputFieldType.Name
			if transformConfig.MapTo != "" {
				targetFieldName = transformConfig.MapTo
			}

			modelField, found := modelType.FieldByName(targetFieldName)
			if !found {
				if transformConfig.Optional {
					continue
				}
				return fmt.Errorf("không tìm thấy field '%s' trong Model (map từ field '%s' trong DTO)", targetFieldName, inputFieldType.Name)
			}

			transformedValue, err := utility.TransformFieldValue(fieldValue, transformConfig, modelField.Type)
			if err != nil {
				if transformConfig.Optional {
					continue
				}
				return fmt.Errorf("lỗi transform field '%s' sang '%s': %w", inputFieldType.Name, targetFieldName, err)
			}

			modelFieldVal := modelVal.FieldByName(targetFieldName)
			if !modelFieldVal.IsValid() || !modelFieldVal.CanSet() {
				return fmt.Errorf("không thể set giá trị vào field '%s' trong Model", targetFieldName)
			}

			if transformedValue != nil {
				transformedVal := reflect.ValueOf(transformedValue)
				if transformedVal.Type().AssignableTo(modelFieldVal.Type()) {
					modelFieldVal.Set(transformedVal)
				} else if transformedVal.Type().ConvertibleTo(modelFieldVal.Type()) {
					modelFieldVal.Set(transformedVal.Convert(modelFieldVal.Type()))
				} else {
					return fmt.Errorf("không thể convert giá trị từ type %v sang type %v cho field '%s'", transformedVal.Type(), modelFieldVal.Type(), targetFieldName)
				}
			}
		} else {
			// Không có transform tag: copy trực tiếp nếu field cùng tên và type tương thích
			targetFieldName := inputFieldType.Name
			if _, found := modelType.FieldByName(targetFieldName); !found {
				continue
			}

			modelFieldVal := modelVal.FieldByName(targetFieldName)
			if !modelFieldVal.IsValid() || !modelFieldVal.CanSet() {
				continue
			}

			inputValReflect := reflect.ValueOf(fieldValue)
			if inputValReflect.Type().AssignableTo(modelFieldVal.Type()) {
				modelFieldVal.Set(inputValReflect)
			} else if inputValReflect.Type().ConvertibleTo(modelFieldVal.Type()) {
				modelFieldVal.Set(inputValReflect.Convert(modelFieldVal.Type()))
			}
		}
	}

	return nil
}
