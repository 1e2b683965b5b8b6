package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"meta_content/config"
	"meta_content/internal/global"
)

// InitRegistry khởi tạo registry và đăng ký các collections
func InitRegistry() {
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections đăng ký các collection MongoDB vào registry toàn cục
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Permissions,
		global.MongoDB_ColNames.Roles,
		global.MongoDB_ColNames.Categories,
		global.MongoDB_ColNames.Sections,
		global.MongoDB_ColNames.Articles,
		global.MongoDB_ColNames.Reviews,
		global.MongoDB_ColNames.Comments,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Warnf("Collection %s already registered", name)
		}
	}

	return nil
}
