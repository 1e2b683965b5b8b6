package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meta_content/internal/common"
)

type testDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	CategoryID primitive.ObjectID `bson:"categoryId"`
	Order      int64              `bson:"order"`
}

type testCreateInput struct {
	Title      string `json:"title"`
	CategoryID string `json:"categoryId" transform:"str_objectid,required"`
	Order      int64  `json:"order"`
}

type testUpdateInput struct {
	Title string `json:"title"`
}

func newTestHandler() *BaseHandler[testDoc, testCreateInput, testUpdateInput] {
	return NewBaseHandler[testDoc, testCreateInput, testUpdateInput](nil)
}

// TestParseSortWithOrder kiểm tra parse sort giữ nguyên thứ tự key trong JSON
func TestParseSortWithOrder(t *testing.T) {
	t.Run("Thứ tự key theo JSON gốc", func(t *testing.T) {
		optionsJSON := `{"sort":{"order":-1,"createdAt":1,"title":-1}}`
		sortMap := map[string]interface{}{"order": float64(-1), "createdAt": float64(1), "title": float64(-1)}

		result := parseSortWithOrder(sortMap, optionsJSON)
		expected := bson.D{
			{Key: "order", Value: -1},
			{Key: "createdAt", Value: 1},
			{Key: "title", Value: -1},
		}
		assert.Equal(t, expected, result)
	})

	t.Run("Giá trị sort không hợp lệ bị bỏ qua", func(t *testing.T) {
		optionsJSON := `{"sort":{"a":2,"b":1}}`
		sortMap := map[string]interface{}{"a": float64(2), "b": float64(1)}

		result := parseSortWithOrder(sortMap, optionsJSON)
		assert.Equal(t, bson.D{{Key: "b", Value: 1}}, result)
	})

	t.Run("JSON hỏng fallback về map", func(t *testing.T) {
		sortMap := map[string]interface{}{"order": float64(-1)}
		result := parseSortWithOrder(sortMap, "không-phải-json")
		assert.Equal(t, bson.D{{Key: "order", Value: -1}}, result)
	})

	t.Run("Options không có sort trả về rỗng", func(t *testing.T) {
		result := parseSortWithOrder(map[string]interface{}{}, `{"limit":10}`)
		assert.Empty(t, result)
	})
}

// TestNormalizeFilter kiểm tra chuyển đổi string ObjectID trong filter
func TestNormalizeFilter(t *testing.T) {
	h := newTestHandler()
	hex := "507f1f77bcf86cd799439011"
	objID, _ := primitive.ObjectIDFromHex(hex)

	t.Run("Trường _id và trường kết thúc bằng Id", func(t *testing.T) {
		filter := map[string]interface{}{
			"_id":        hex,
			"categoryId": hex,
			"title":      hex,
		}
		normalized := h.normalizeFilter(filter)

		assert.Equal(t, objID, normalized["_id"])
		assert.Equal(t, objID, normalized["categoryId"])
		// Trường không phải ID giữ nguyên string
		assert.Equal(t, hex, normalized["title"])
	})

	t.Run("Extended JSON $oid", func(t *testing.T) {
		filter := map[string]interface{}{
			"title": map[string]interface{}{"$oid": hex},
		}
		normalized := h.normalizeFilter(filter)
		assert.Equal(t, objID, normalized["title"])
	})

	t.Run("Operator $in trên ID field xử lý từng phần tử", func(t *testing.T) {
		filter := map[string]interface{}{
			"articleId": map[string]interface{}{
				"$in": []interface{}{hex, "không-phải-oid"},
			},
		}
		normalized := h.normalizeFilter(filter)

		inner, ok := normalized["articleId"].(map[string]interface{})
		assert.True(t, ok)
		arr, ok := inner["$in"].([]interface{})
		assert.True(t, ok)
		assert.Equal(t, objID, arr[0])
		assert.Equal(t, "không-phải-oid", arr[1])
	})

	t.Run("Filter nil giữ nguyên", func(t *testing.T) {
		assert.Nil(t, h.normalizeFilter(nil))
	})
}

// TestValidateFilter kiểm tra các ràng buộc bảo mật trên filter
func TestValidateFilter(t *testing.T) {
	h := newTestHandler()

	t.Run("Filter hợp lệ", func(t *testing.T) {
		err := h.validateFilter(map[string]interface{}{
			"title": "x",
			"order": map[string]interface{}{"$gte": float64(1)},
		})
		assert.NoError(t, err)
	})

	t.Run("Trường nhạy cảm bị cấm", func(t *testing.T) {
		err := h.validateFilter(map[string]interface{}{"password": "x"})
		assert.Error(t, err)

		var customErr *common.Error
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Toán tử không được phép", func(t *testing.T) {
		err := h.validateFilter(map[string]interface{}{
			"title": map[string]interface{}{"$where": "1==1"},
		})
		assert.Error(t, err)
	})

	t.Run("Vượt quá số trường tối đa", func(t *testing.T) {
		filter := make(map[string]interface{})
		for i := 0; i < 11; i++ {
			filter[string(rune('a'+i))] = i
		}
		err := h.validateFilter(filter)
		assert.Error(t, err)
	})
}

// TestValidateMongoOptions kiểm tra validate options truy vấn
func TestValidateMongoOptions(t *testing.T) {
	h := newTestHandler()

	t.Run("Options hợp lệ", func(t *testing.T) {
		err := h.validateMongoOptions(map[string]interface{}{
			"sort":  map[string]interface{}{"createdAt": float64(-1)},
			"limit": float64(20),
			"skip":  float64(0),
		})
		assert.NoError(t, err)
	})

	t.Run("Option không được hỗ trợ", func(t *testing.T) {
		err := h.validateMongoOptions(map[string]interface{}{"hint": "x"})
		assert.Error(t, err)
	})

	t.Run("Giá trị sort khác 1 và -1", func(t *testing.T) {
		err := h.validateMongoOptions(map[string]interface{}{
			"sort": map[string]interface{}{"createdAt": float64(2)},
		})
		assert.Error(t, err)
	})

	t.Run("Limit vượt giới hạn", func(t *testing.T) {
		err := h.validateMongoOptions(map[string]interface{}{"limit": float64(1001)})
		assert.Error(t, err)

		err = h.validateMongoOptions(map[string]interface{}{"limit": float64(0)})
		assert.Error(t, err)
	})

	t.Run("Skip âm", func(t *testing.T) {
		err := h.validateMongoOptions(map[string]interface{}{"skip": float64(-1)})
		assert.Error(t, err)
	})

	t.Run("Projection chứa trường nhạy cảm", func(t *testing.T) {
		err := h.validateMongoOptions(map[string]interface{}{
			"projection": map[string]interface{}{"password": float64(1)},
		})
		assert.Error(t, err)
	})
}

// TestTransformInputToModel kiểm tra transform DTO sang Model qua struct tag
func TestTransformInputToModel(t *testing.T) {
	h := newTestHandler()
	hex := "507f1f77bcf86cd799439011"

	t.Run("Transform str_objectid và copy cùng tên", func(t *testing.T) {
		input := testCreateInput{Title: "Bài viết", CategoryID: hex, Order: 3}
		model, err := h.TransformCreateInputToModel(&input)
		assert.NoError(t, err)
		assert.Equal(t, "Bài viết", model.Title)
		assert.Equal(t, hex, model.CategoryID.Hex())
		assert.Equal(t, int64(3), model.Order)
	})

	t.Run("Field required rỗng báo lỗi", func(t *testing.T) {
		input := testCreateInput{Title: "x", CategoryID: ""}
		_, err := h.TransformCreateInputToModel(&input)
		assert.Error(t, err)
	})

	t.Run("Hex không hợp lệ báo lỗi", func(t *testing.T) {
		input := testCreateInput{Title: "x", CategoryID: "xyz"}
		_, err := h.TransformCreateInputToModel(&input)
		assert.Error(t, err)
	})

	t.Run("Update input chỉ copy field trùng tên", func(t *testing.T) {
		model, err := h.TransformUpdateInputToModel(&testUpdateInput{Title: "mới"})
		assert.NoError(t, err)
		assert.Equal(t, "mới", model.Title)
		assert.True(t, model.CategoryID.IsZero())
	})

	t.Run("Option map chuyển sang field khác tên", func(t *testing.T) {
		type mappedInput struct {
			Parent string `transform:"str_objectid,map=CategoryID"`
		}
		model := &testDoc{}
		err := transformInputToModel(&mappedInput{Parent: hex}, model)
		assert.NoError(t, err)
		assert.Equal(t, hex, model.CategoryID.Hex())
	})

	t.Run("Input không phải struct báo lỗi", func(t *testing.T) {
		err := transformInputToModel("x", &testDoc{})
		assert.Error(t, err)
	})
}
