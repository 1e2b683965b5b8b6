package authsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "meta_content/internal/api/auth/models"
)

func TestOrderPermissionsByIds(t *testing.T) {
	idCreate := primitive.NewObjectID()
	idRead := primitive.NewObjectID()
	idUpdate := primitive.NewObjectID()

	permCreate := models.Permission{ID: idCreate, Code: "articles:create"}
	permRead := models.Permission{ID: idRead, Code: "articles:read"}
	permUpdate := models.Permission{ID: idUpdate, Code: "articles:update"}

	t.Run("Kết quả theo đúng thứ tự ids, không theo thứ tự fetch", func(t *testing.T) {
		// Mongo trả $in theo thứ tự bất kỳ
		fetched := []models.Permission{permUpdate, permCreate, permRead}

		ordered := orderPermissionsByIds([]primitive.ObjectID{idCreate, idRead, idUpdate}, fetched)

		assert.Equal(t, []models.Permission{permCreate, permRead, permUpdate}, ordered)
	})

	t.Run("ID không có bản ghi tương ứng bị bỏ qua", func(t *testing.T) {
		missing := primitive.NewObjectID()
		fetched := []models.Permission{permRead}

		ordered := orderPermissionsByIds([]primitive.ObjectID{missing, idRead}, fetched)

		assert.Equal(t, []models.Permission{permRead}, ordered)
	})

	t.Run("Danh sách ids rỗng trả về slice rỗng, không phải nil", func(t *testing.T) {
		ordered := orderPermissionsByIds(nil, nil)

		assert.NotNil(t, ordered)
		assert.Empty(t, ordered)
	})
}
