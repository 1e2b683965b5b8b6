package utility

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestContains kiểm tra tìm phần tử trong slice
func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b", "c"}, "b"))
	assert.False(t, Contains([]string{"a", "b", "c"}, "d"))
	assert.False(t, Contains([]string{}, "a"))
	assert.True(t, Contains([]int64{1, 2, 3}, int64(3)))
}

// TestUnique kiểm tra loại bỏ phần tử trùng lặp, giữ nguyên thứ tự
func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Unique([]string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, []string{"x"}, Unique([]string{"x", "x", "x"}))
	assert.Empty(t, Unique([]string{}))
}

// TestString2ObjectID kiểm tra chuyển đổi hex string sang ObjectID
func TestString2ObjectID(t *testing.T) {
	hex := "507f1f77bcf86cd799439011"
	objID := String2ObjectID(hex)
	assert.Equal(t, hex, objID.Hex())

	// Chuỗi không hợp lệ trả về NilObjectID
	assert.Equal(t, primitive.NilObjectID, String2ObjectID("abc"))
	assert.Equal(t, primitive.NilObjectID, String2ObjectID(""))
}

// TestToMap kiểm tra chuyển struct sang map theo bson tag
func TestToMap(t *testing.T) {
	type sample struct {
		Name  string `bson:"name"`
		Count int64  `bson:"count"`
	}

	result, err := ToMap(sample{Name: "Tin tức", Count: 5})
	assert.NoError(t, err)
	assert.Equal(t, "Tin tức", result["name"])
	assert.Equal(t, int64(5), result["count"])
	// Key theo bson tag chứ không theo tên field Go
	assert.NotContains(t, result, "Name")
}

// TestParseTransformTag kiểm tra parse tag transform
func TestParseTransformTag(t *testing.T) {
	t.Run("Chỉ có transform type", func(t *testing.T) {
		config, err := ParseTransformTag("str_objectid")
		assert.NoError(t, err)
		assert.Equal(t, "str_objectid", config.Type)
		assert.False(t, config.Optional)
		assert.False(t, config.Required)
	})

	t.Run("Type kèm options", func(t *testing.T) {
		config, err := ParseTransformTag("str_time,format=2006-01-02,required")
		assert.NoError(t, err)
		assert.Equal(t, "str_time", config.Type)
		assert.Equal(t, "2006-01-02", config.Format)
		assert.True(t, config.Required)
	})

	t.Run("Option optional và map", func(t *testing.T) {
		config, err := ParseTransformTag("str_objectid_ptr,optional,map=CategoryID")
		assert.NoError(t, err)
		assert.True(t, config.Optional)
		assert.Equal(t, "CategoryID", config.MapTo)
	})

	t.Run("Tag rỗng dùng format mặc định", func(t *testing.T) {
		config, err := ParseTransformTag("")
		assert.NoError(t, err)
		assert.Empty(t, config.Type)
		assert.Equal(t, "2006-01-02T15:04:05", config.Format)
	})
}

// TestTransformFieldValue kiểm tra chuyển đổi giá trị DTO sang Model
func TestTransformFieldValue(t *testing.T) {
	objIDType := reflect.TypeOf(primitive.ObjectID{})

	t.Run("str_objectid với hex hợp lệ", func(t *testing.T) {
		config, _ := ParseTransformTag("str_objectid")
		value, err := TransformFieldValue("507f1f77bcf86cd799439011", config, objIDType)
		assert.NoError(t, err)
		objID, ok := value.(primitive.ObjectID)
		assert.True(t, ok)
		assert.Equal(t, "507f1f77bcf86cd799439011", objID.Hex())
	})

	t.Run("str_objectid với hex không hợp lệ", func(t *testing.T) {
		config, _ := ParseTransformTag("str_objectid")
		_, err := TransformFieldValue("xyz", config, objIDType)
		assert.Error(t, err)
	})

	t.Run("String rỗng với required báo lỗi", func(t *testing.T) {
		config, _ := ParseTransformTag("str_objectid,required")
		_, err := TransformFieldValue("", config, objIDType)
		assert.Error(t, err)
	})

	t.Run("String rỗng với optional trả về nil", func(t *testing.T) {
		config, _ := ParseTransformTag("str_objectid,optional")
		value, err := TransformFieldValue("", config, objIDType)
		assert.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("str_objectid_ptr cho string rỗng", func(t *testing.T) {
		config, _ := ParseTransformTag("str_objectid_ptr")
		value, err := TransformFieldValue("", config, reflect.TypeOf(&primitive.ObjectID{}))
		assert.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("str_time parse theo format", func(t *testing.T) {
		config, _ := ParseTransformTag("str_time,format=2006-01-02")
		value, err := TransformFieldValue("2024-06-01", config, reflect.TypeOf(int64(0)))
		assert.NoError(t, err)
		assert.Equal(t, int64(1717200000000), value)
	})

	t.Run("str_int64 từ nhiều kiểu nguồn", func(t *testing.T) {
		config, _ := ParseTransformTag("str_int64")
		for _, input := range []interface{}{int(7), int64(7), float64(7), "7"} {
			value, err := TransformFieldValue(input, config, reflect.TypeOf(int64(0)))
			assert.NoError(t, err)
			assert.Equal(t, int64(7), value)
		}
	})

	t.Run("str_bool từ string", func(t *testing.T) {
		config, _ := ParseTransformTag("str_bool")
		value, err := TransformFieldValue("true", config, reflect.TypeOf(false))
		assert.NoError(t, err)
		assert.Equal(t, true, value)
	})

	t.Run("Default được áp dụng khi không có giá trị", func(t *testing.T) {
		config, _ := ParseTransformTag("str_bool,default=true")
		value, err := TransformFieldValue(nil, config, reflect.TypeOf(false))
		assert.NoError(t, err)
		assert.Equal(t, true, value)
	})
}
