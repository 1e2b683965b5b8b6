package basesvc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sampleModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	IsActive    bool               `bson:"isActive" default:"true"`
	Order       int64              `bson:"order" default:"10"`
	Status      string             `bson:"status" default:"draft"`
	SkippedBool bool               `bson:"-" default:"true"`
}

// TestToUpdateData kiểm tra chuyển đổi dữ liệu update sang UpdateData
func TestToUpdateData(t *testing.T) {
	t.Run("UpdateData pointer giữ nguyên", func(t *testing.T) {
		original := &UpdateData{Set: map[string]interface{}{"name": "x"}}
		result, err := ToUpdateData(original)
		assert.NoError(t, err)
		assert.Same(t, original, result)
	})

	t.Run("UpdateData value được copy", func(t *testing.T) {
		original := UpdateData{Unset: map[string]interface{}{"slug": ""}}
		result, err := ToUpdateData(original)
		assert.NoError(t, err)
		assert.Equal(t, original.Unset, result.Unset)
	})

	t.Run("Map có operator $set được tách đúng", func(t *testing.T) {
		data := map[string]interface{}{
			"$set":   map[string]interface{}{"name": "mới"},
			"$unset": map[string]interface{}{"slug": ""},
		}
		result, err := ToUpdateData(data)
		assert.NoError(t, err)
		assert.Equal(t, "mới", result.Set["name"])
		assert.Contains(t, result.Unset, "slug")
		assert.Nil(t, result.Push)
	})

	t.Run("Map thường được wrap trong $set", func(t *testing.T) {
		result, err := ToUpdateData(map[string]interface{}{"name": "bài viết"})
		assert.NoError(t, err)
		assert.Equal(t, "bài viết", result.Set["name"])
		assert.Nil(t, result.Unset)
	})

	t.Run("Dữ liệu không marshal được báo lỗi", func(t *testing.T) {
		_, err := ToUpdateData(make(chan int))
		assert.Error(t, err)
	})
}

// TestGetInsertDefaults kiểm tra đọc giá trị default từ struct tag
func TestGetInsertDefaults(t *testing.T) {
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(sampleModel{}))

	assert.Equal(t, true, defaults["isActive"])
	assert.Equal(t, int64(10), defaults["order"])
	assert.Equal(t, "draft", defaults["status"])
	// Field không có bson key thì bỏ qua
	assert.Len(t, defaults, 3)

	// Pointer type cũng đọc được
	assert.Equal(t, defaults, getInsertDefaultsFromModelType(reflect.TypeOf(&sampleModel{})))

	// Kiểu không phải struct trả về nil
	assert.Nil(t, getInsertDefaultsFromModelType(reflect.TypeOf("x")))
}

// TestApplyInsertDefaults kiểm tra áp dụng default lên model trước khi insert
func TestApplyInsertDefaults(t *testing.T) {
	t.Run("Field zero được set default", func(t *testing.T) {
		model := sampleModel{Name: "Tin tức"}
		applyInsertDefaultsToModel(&model)

		assert.True(t, model.IsActive)
		assert.Equal(t, int64(10), model.Order)
		assert.Equal(t, "draft", model.Status)
		assert.Equal(t, "Tin tức", model.Name)
	})

	t.Run("Field đã có giá trị thì giữ nguyên", func(t *testing.T) {
		model := sampleModel{Order: 99, Status: "published"}
		applyInsertDefaultsToModel(&model)

		assert.Equal(t, int64(99), model.Order)
		assert.Equal(t, "published", model.Status)
		assert.True(t, model.IsActive)
	})

	t.Run("Không phải pointer thì bỏ qua an toàn", func(t *testing.T) {
		model := sampleModel{}
		applyInsertDefaultsToModel(model)
		assert.False(t, model.IsActive)

		applyInsertDefaultsToModel(nil)
	})
}

// TestParseDefaultValue kiểm tra chuyển chuỗi default sang đúng kiểu
func TestParseDefaultValue(t *testing.T) {
	assert.Equal(t, true, parseDefaultValue("true", reflect.TypeOf(false)))
	assert.Equal(t, false, parseDefaultValue("không-phải-bool", reflect.TypeOf(false)))
	assert.Equal(t, int64(7), parseDefaultValue("7", reflect.TypeOf(int64(0))))
	assert.Equal(t, "x", parseDefaultValue("x", reflect.TypeOf("")))
	// Kiểu không hỗ trợ trả về nil
	assert.Nil(t, parseDefaultValue("1.5", reflect.TypeOf(float64(0))))
}

// TestGetIDFromModel kiểm tra lấy ObjectID từ model bằng reflection
func TestGetIDFromModel(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("Struct có field ID", func(t *testing.T) {
		got, ok := getIDFromModel(sampleModel{ID: id})
		assert.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("Pointer tới struct", func(t *testing.T) {
		got, ok := getIDFromModel(&sampleModel{ID: id})
		assert.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("Struct không có field ID", func(t *testing.T) {
		_, ok := getIDFromModel(struct{ Name string }{})
		assert.False(t, ok)
	})

	t.Run("Không phải struct", func(t *testing.T) {
		_, ok := getIDFromModel("x")
		assert.False(t, ok)
	})
}
