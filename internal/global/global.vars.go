package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"meta_content/config"
	"meta_content/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users       string // Tên collection cho người dùng
	Permissions string // Tên collection cho quyền
	Roles       string // Tên collection cho vai trò
	Categories  string // Tên collection cho danh mục
	Sections    string // Tên collection cho chuyên mục
	Articles    string // Tên collection cho bài viết
	Reviews     string // Tên collection cho đánh giá
	Comments    string // Tên collection cho bình luận
}

// Các biến toàn cục
var Validate *validator.Validate                                               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                 // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)     // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
