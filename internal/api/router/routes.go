// Package router định tuyến toàn bộ API của ứng dụng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "meta_content/internal/api/auth/handler"
	contenthdl "meta_content/internal/api/content/handler"
	"meta_content/internal/api/middleware"
)

// LƯU Ý FIBER V3: chữ ký route method là (path, handler, middleware...) -
// middleware khai báo SAU handler nhưng chạy TRƯỚC handler, theo đúng thứ tự
// khai báo. Không gắn middleware cho từng route bằng Group(prefix).Use(mw):
// .Use() match theo path prefix nên middleware sẽ chạy cho MỌI route cùng
// prefix, không riêng route cần bảo vệ.

// CRUDHandler định nghĩa interface cho các handler CRUD
type CRUDHandler interface {
	// Create
	InsertOne(c fiber.Ctx) error
	InsertMany(c fiber.Ctx) error

	// Read
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindManyByIds(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error

	// Update
	UpdateOne(c fiber.Ctx) error
	UpdateMany(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error

	// Delete
	DeleteOne(c fiber.Ctx) error
	DeleteMany(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error

	// Other
	CountDocuments(c fiber.Ctx) error
	Distinct(c fiber.Ctx) error
	DocumentExists(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// CRUDConfig cấu hình các operation được phép cho mỗi collection
type CRUDConfig struct {
	// Create
	InsOne  bool // Insert One
	InsMany bool // Insert Many

	// Read
	Find     bool // Find All
	FindOne  bool // Find One
	FindById bool // Find By Id
	FindIds  bool // Find Many By Ids
	Paginate bool // Find With Pagination

	// Update
	UpdOne  bool // Update One
	UpdMany bool // Update Many
	UpdById bool // Update By Id

	// Delete
	DelOne  bool // Delete One
	DelMany bool // Delete Many
	DelById bool // Delete By Id

	// Other
	Count    bool // Count Documents
	Distinct bool // Distinct
	Exists   bool // Document Exists
}

// Config cho từng collection
var (
	readOnlyConfig = CRUDConfig{
		InsOne: false, InsMany: false,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: false, UpdMany: false, UpdById: false,
		DelOne: false, DelMany: false, DelById: false,
		Count: true, Distinct: true, Exists: true,
	}

	readWriteConfig = CRUDConfig{
		InsOne: true, InsMany: true,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: true, UpdMany: true, UpdById: true,
		DelOne: true, DelMany: true, DelById: true,
		Count: true, Distinct: true, Exists: true,
	}

	// Auth Module: create/update/delete đi qua các route nghiệp vụ riêng,
	// CRUD generic chỉ phục vụ tra cứu
	userConfig = readOnlyConfig
	permConfig = readOnlyConfig
	roleConfig = readOnlyConfig

	// Content Module
	categoryConfig = readWriteConfig
	sectionConfig  = readWriteConfig

	// Article/Review/Comment tạo qua route riêng để gắn user đang đăng nhập
	articleConfig = CRUDConfig{
		InsOne: false, InsMany: false,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: true, UpdMany: true, UpdById: true,
		DelOne: true, DelMany: true, DelById: true,
		Count: true, Distinct: true, Exists: true,
	}
	reviewConfig  = articleConfig
	commentConfig = articleConfig
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// registerRouteWithMiddleware đăng ký route kèm middleware chỉ áp dụng cho
// đúng route đó. Middleware chạy theo thứ tự khai báo, trước handler, nên
// chuỗi kiểm tra (xác thực rồi đến permission) giữ nguyên thứ tự truyền vào.
func registerRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	full := prefix + path
	// Fiber v3 chạy các handler theo thứ tự truyền vào, nên middleware phải
	// đứng trước handler trong danh sách tham số.
	chain := make([]any, 0, len(middlewares)+1)
	for _, m := range middlewares {
		chain = append(chain, m)
	}
	chain = append(chain, handler)
	first, rest := chain[0], chain[1:]
	switch method {
	case "GET":
		router.Get(full, first, rest...)
	case "POST":
		router.Post(full, first, rest...)
	case "PUT":
		router.Put(full, first, rest...)
	case "PATCH":
		router.Patch(full, first, rest...)
	case "DELETE":
		router.Delete(full, first, rest...)
	}
}

// registerCRUDRoutes đăng ký các route CRUD cho một collection.
// permissionModule là phần module trong permission code, ví dụ "articles"
// sinh ra các code articles:create, articles:read, articles:update,
// articles:delete.
func (r *Router) registerCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig, permissionModule string) {
	protect := middleware.Protect()
	requireCreate := middleware.RequirePermission(permissionModule + ":create")
	requireRead := middleware.RequirePermission(permissionModule + ":read")
	requireUpdate := middleware.RequirePermission(permissionModule + ":update")
	requireDelete := middleware.RequirePermission(permissionModule + ":delete")

	// Create operations
	if config.InsOne {
		registerRouteWithMiddleware(router, prefix, "POST", "/insert-one", []fiber.Handler{protect, requireCreate}, h.InsertOne)
	}
	if config.InsMany {
		registerRouteWithMiddleware(router, prefix, "POST", "/insert-many", []fiber.Handler{protect, requireCreate}, h.InsertMany)
	}

	// Read operations
	if config.Find {
		registerRouteWithMiddleware(router, prefix, "GET", "/find", []fiber.Handler{protect, requireRead}, h.Find)
	}
	if config.FindOne {
		registerRouteWithMiddleware(router, prefix, "GET", "/find-one", []fiber.Handler{protect, requireRead}, h.FindOne)
	}
	if config.FindById {
		registerRouteWithMiddleware(router, prefix, "GET", "/find-by-id/:id", []fiber.Handler{protect, requireRead}, h.FindOneById)
	}
	if config.FindIds {
		registerRouteWithMiddleware(router, prefix, "POST", "/find-by-ids", []fiber.Handler{protect, requireRead}, h.FindManyByIds)
	}
	if config.Paginate {
		registerRouteWithMiddleware(router, prefix, "GET", "/find-with-pagination", []fiber.Handler{protect, requireRead}, h.FindWithPagination)
	}

	// Update operations
	if config.UpdOne {
		registerRouteWithMiddleware(router, prefix, "PUT", "/update-one", []fiber.Handler{protect, requireUpdate}, h.UpdateOne)
	}
	if config.UpdMany {
		registerRouteWithMiddleware(router, prefix, "PUT", "/update-many", []fiber.Handler{protect, requireUpdate}, h.UpdateMany)
	}
	if config.UpdById {
		registerRouteWithMiddleware(router, prefix, "PUT", "/update-by-id/:id", []fiber.Handler{protect, requireUpdate}, h.UpdateById)
	}

	// Delete operations
	if config.DelOne {
		registerRouteWithMiddleware(router, prefix, "DELETE", "/delete-one", []fiber.Handler{protect, requireDelete}, h.DeleteOne)
	}
	if config.DelMany {
		registerRouteWithMiddleware(router, prefix, "DELETE", "/delete-many", []fiber.Handler{protect, requireDelete}, h.DeleteMany)
	}
	if config.DelById {
		registerRouteWithMiddleware(router, prefix, "DELETE", "/delete-by-id/:id", []fiber.Handler{protect, requireDelete}, h.DeleteById)
	}

	// Other operations
	if config.Count {
		registerRouteWithMiddleware(router, prefix, "GET", "/count", []fiber.Handler{protect, requireRead}, h.CountDocuments)
	}
	if config.Distinct {
		registerRouteWithMiddleware(router, prefix, "GET", "/distinct", []fiber.Handler{protect, requireRead}, h.Distinct)
	}
	if config.Exists {
		registerRouteWithMiddleware(router, prefix, "GET", "/exists", []fiber.Handler{protect, requireRead}, h.DocumentExists)
	}
}

// CÁC HÀM ĐĂNG KÝ ROUTES

// registerSystemRoutes đăng ký route health check (public)
func registerSystemRoutes(app *fiber.App) {
	app.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"code":    fiber.StatusOK,
			"message": "OK",
			"data": fiber.Map{
				"status": "healthy",
			},
		})
	})
}

// registerAuthRoutes đăng ký các route xác thực cá nhân
func (r *Router) registerAuthRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %v", err)
	}

	// Public: đăng ký và đăng nhập
	router.Post("/auth/register", userHandler.HandleRegister)
	router.Post("/auth/login", userHandler.HandleLogin)

	// Các route cá nhân chỉ cần đăng nhập, không cần permission
	protect := middleware.Protect()
	registerRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{protect}, userHandler.HandleLogout)
	registerRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{protect}, userHandler.HandleGetProfile)
	registerRouteWithMiddleware(router, "/auth", "GET", "/my-permissions", []fiber.Handler{protect}, userHandler.HandleGetMyPermissions)
	registerRouteWithMiddleware(router, "/auth", "PUT", "/change-password", []fiber.Handler{protect}, userHandler.HandleChangePassword)

	return nil
}

// registerRBACRoutes đăng ký các route quản trị phân quyền
func (r *Router) registerRBACRoutes(router fiber.Router) error {
	protect := middleware.Protect()

	// User routes (Quản lý người dùng)
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %v", err)
	}
	usersUpdateMiddleware := middleware.RequirePermission("users:update")
	registerRouteWithMiddleware(router, "/user", "POST", "/set-role", []fiber.Handler{protect, usersUpdateMiddleware}, userHandler.HandleSetRole)
	registerRouteWithMiddleware(router, "/user", "POST", "/block", []fiber.Handler{protect, usersUpdateMiddleware}, userHandler.HandleBlockUser)
	registerRouteWithMiddleware(router, "/user", "POST", "/unblock", []fiber.Handler{protect, usersUpdateMiddleware}, userHandler.HandleUnBlockUser)
	r.registerCRUDRoutes(router, "/user", userHandler, userConfig, "users")

	// Permission routes
	permHandler, err := authhdl.NewPermissionHandler()
	if err != nil {
		return fmt.Errorf("failed to create permission handler: %v", err)
	}
	permCreateMiddleware := middleware.RequirePermission("permissions:create")
	permReadMiddleware := middleware.RequirePermission("permissions:read")
	permUpdateMiddleware := middleware.RequirePermission("permissions:update")
	permDeleteMiddleware := middleware.RequirePermission("permissions:delete")
	registerRouteWithMiddleware(router, "/permission", "POST", "/create", []fiber.Handler{protect, permCreateMiddleware}, permHandler.HandleCreate)
	registerRouteWithMiddleware(router, "/permission", "POST", "/bulk-create", []fiber.Handler{protect, permCreateMiddleware}, permHandler.HandleBulkCreate)
	registerRouteWithMiddleware(router, "/permission", "GET", "/list", []fiber.Handler{protect, permReadMiddleware}, permHandler.HandleList)
	registerRouteWithMiddleware(router, "/permission", "GET", "/group-by-module", []fiber.Handler{protect, permReadMiddleware}, permHandler.HandleGroupByModule)
	registerRouteWithMiddleware(router, "/permission", "PUT", "/update/:id", []fiber.Handler{protect, permUpdateMiddleware}, permHandler.HandleUpdate)
	registerRouteWithMiddleware(router, "/permission", "DELETE", "/delete/:id", []fiber.Handler{protect, permDeleteMiddleware}, permHandler.HandleDelete)
	r.registerCRUDRoutes(router, "/permission", permHandler, permConfig, "permissions")

	// Role routes
	roleHandler, err := authhdl.NewRoleHandler()
	if err != nil {
		return fmt.Errorf("failed to create role handler: %v", err)
	}
	roleCreateMiddleware := middleware.RequirePermission("roles:create")
	roleReadMiddleware := middleware.RequirePermission("roles:read")
	roleUpdateMiddleware := middleware.RequirePermission("roles:update")
	roleDeleteMiddleware := middleware.RequirePermission("roles:delete")
	registerRouteWithMiddleware(router, "/role", "POST", "/create", []fiber.Handler{protect, roleCreateMiddleware}, roleHandler.HandleCreate)
	registerRouteWithMiddleware(router, "/role", "PUT", "/update/:id", []fiber.Handler{protect, roleUpdateMiddleware}, roleHandler.HandleUpdate)
	registerRouteWithMiddleware(router, "/role", "DELETE", "/delete/:id", []fiber.Handler{protect, roleDeleteMiddleware}, roleHandler.HandleDelete)
	registerRouteWithMiddleware(router, "/role", "PUT", "/set-permissions/:id", []fiber.Handler{protect, roleUpdateMiddleware}, roleHandler.HandleSetPermissions)
	registerRouteWithMiddleware(router, "/role", "GET", "/users/:id", []fiber.Handler{protect, roleReadMiddleware}, roleHandler.HandleGetUsers)
	r.registerCRUDRoutes(router, "/role", roleHandler, roleConfig, "roles")

	return nil
}

// registerContentRoutes đăng ký các route cho Content Module
func (r *Router) registerContentRoutes(router fiber.Router) error {
	protect := middleware.Protect()

	// Category routes
	categoryHandler, err := contenthdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %v", err)
	}
	r.registerCRUDRoutes(router, "/category", categoryHandler, categoryConfig, "categories")

	// Section routes
	sectionHandler, err := contenthdl.NewSectionHandler()
	if err != nil {
		return fmt.Errorf("failed to create section handler: %v", err)
	}
	r.registerCRUDRoutes(router, "/section", sectionHandler, sectionConfig, "sections")

	// Article routes
	articleHandler, err := contenthdl.NewArticleHandler()
	if err != nil {
		return fmt.Errorf("failed to create article handler: %v", err)
	}
	articleCreateMiddleware := middleware.RequirePermission("articles:create")
	articleReadMiddleware := middleware.RequirePermission("articles:read")
	articleUpdateMiddleware := middleware.RequirePermission("articles:update")
	registerRouteWithMiddleware(router, "/article", "POST", "/create", []fiber.Handler{protect, articleCreateMiddleware}, articleHandler.HandleCreate)
	registerRouteWithMiddleware(router, "/article", "GET", "/find-by-slug/:slug", []fiber.Handler{protect, articleReadMiddleware}, articleHandler.HandleFindBySlug)
	registerRouteWithMiddleware(router, "/article", "PATCH", "/publish/:id", []fiber.Handler{protect, articleUpdateMiddleware}, articleHandler.HandlePublish)
	registerRouteWithMiddleware(router, "/article", "PATCH", "/unpublish/:id", []fiber.Handler{protect, articleUpdateMiddleware}, articleHandler.HandleUnpublish)
	r.registerCRUDRoutes(router, "/article", articleHandler, articleConfig, "articles")

	// Review routes
	reviewHandler, err := contenthdl.NewReviewHandler()
	if err != nil {
		return fmt.Errorf("failed to create review handler: %v", err)
	}
	reviewCreateMiddleware := middleware.RequirePermission("reviews:create")
	reviewReadMiddleware := middleware.RequirePermission("reviews:read")
	registerRouteWithMiddleware(router, "/review", "POST", "/create", []fiber.Handler{protect, reviewCreateMiddleware}, reviewHandler.HandleCreate)
	registerRouteWithMiddleware(router, "/review", "GET", "/average/:articleId", []fiber.Handler{protect, reviewReadMiddleware}, reviewHandler.HandleAverageRating)
	r.registerCRUDRoutes(router, "/review", reviewHandler, reviewConfig, "reviews")

	// Comment routes
	commentHandler, err := contenthdl.NewCommentHandler()
	if err != nil {
		return fmt.Errorf("failed to create comment handler: %v", err)
	}
	commentCreateMiddleware := middleware.RequirePermission("comments:create")
	commentReadMiddleware := middleware.RequirePermission("comments:read")
	registerRouteWithMiddleware(router, "/comment", "POST", "/create", []fiber.Handler{protect, commentCreateMiddleware}, commentHandler.HandleCreate)
	registerRouteWithMiddleware(router, "/comment", "GET", "/find-by-article/:articleId", []fiber.Handler{protect, commentReadMiddleware}, commentHandler.HandleFindByArticle)
	r.registerCRUDRoutes(router, "/comment", commentHandler, commentConfig, "comments")

	return nil
}

// SetupRoutes thiết lập tất cả các route cho ứng dụng
func SetupRoutes(app *fiber.App) error {
	// Health check nằm ngoài prefix version
	registerSystemRoutes(app)

	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)

	router := NewRouter(app)

	// 1. Auth Routes (Xác thực cá nhân)
	if err := router.registerAuthRoutes(v1); err != nil {
		return fmt.Errorf("failed to register auth routes: %v", err)
	}

	// 2. RBAC Routes (Bao gồm User Management)
	if err := router.registerRBACRoutes(v1); err != nil {
		return fmt.Errorf("failed to register RBAC routes: %v", err)
	}

	// 3. Content Routes
	if err := router.registerContentRoutes(v1); err != nil {
		return fmt.Errorf("failed to register content routes: %v", err)
	}

	return nil
}
