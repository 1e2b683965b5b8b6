package basesvc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type parentModel struct {
	ID primitive.ObjectID `bson:"_id,omitempty"`

	_RefChildren struct{} `relationship:"collection:children,field:parentId,message:Không thể xóa vì còn %d mục con"`
	_RefOrphans  struct{} `relationship:"collection:orphans,field:ownerId"`
	_RefBroken   struct{} `relationship:"field:thiếu-collection"`
}

// TestParseRelationshipTag kiểm tra đọc khai báo quan hệ từ struct tag
func TestParseRelationshipTag(t *testing.T) {
	defs := ParseRelationshipTag(reflect.TypeOf(parentModel{}))
	assert.Len(t, defs, 2)

	t.Run("Tag đầy đủ collection, field, message", func(t *testing.T) {
		assert.Equal(t, "children", defs[0].CollectionName)
		assert.Equal(t, "parentId", defs[0].FieldName)
		assert.Equal(t, "Không thể xóa vì còn %d mục con", defs[0].ErrorMessage)
	})

	t.Run("Tag thiếu message dùng thông báo mặc định", func(t *testing.T) {
		assert.Equal(t, "orphans", defs[1].CollectionName)
		assert.Equal(t, "ownerId", defs[1].FieldName)
		assert.Equal(t, "Không thể xóa vì còn %d bản ghi đang tham chiếu", defs[1].ErrorMessage)
	})

	t.Run("Pointer type cho kết quả giống value type", func(t *testing.T) {
		assert.Equal(t, defs, ParseRelationshipTag(reflect.TypeOf(&parentModel{})))
	})

	t.Run("Model không có tag trả về rỗng", func(t *testing.T) {
		assert.Empty(t, ParseRelationshipTag(reflect.TypeOf(struct{ Name string }{})))
		assert.Nil(t, ParseRelationshipTag(reflect.TypeOf("x")))
	})
}
