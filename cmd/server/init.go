package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"meta_content/config"
	authmodels "meta_content/internal/api/auth/models"
	contentmodels "meta_content/internal/api/content/models"
	"meta_content/internal/database"
	"meta_content/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Permissions = "permissions"
	global.MongoDB_ColNames.Roles = "roles"

	// Content Module Collections
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Sections = "sections"
	global.MongoDB_ColNames.Articles = "articles"
	global.MongoDB_ColNames.Reviews = "reviews"
	global.MongoDB_ColNames.Comments = "comments"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký các custom validator: no_xss, strong_password, exists, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	indexTargets := []struct {
		collection string
		model      interface{}
	}{
		{global.MongoDB_ColNames.Users, authmodels.User{}},
		{global.MongoDB_ColNames.Permissions, authmodels.Permission{}},
		{global.MongoDB_ColNames.Roles, authmodels.Role{}},
		{global.MongoDB_ColNames.Categories, contentmodels.Category{}},
		{global.MongoDB_ColNames.Sections, contentmodels.Section{}},
		{global.MongoDB_ColNames.Articles, contentmodels.Article{}},
		{global.MongoDB_ColNames.Reviews, contentmodels.Review{}},
		{global.MongoDB_ColNames.Comments, contentmodels.Comment{}},
	}
	for _, target := range indexTargets {
		if err := database.CreateIndexes(context.TODO(), db.Collection(target.collection), target.model); err != nil {
			logrus.Fatalf("Failed to create indexes for %s: %v", target.collection, err)
		}
	}
	logrus.Info("Created indexes for all collections")
}
